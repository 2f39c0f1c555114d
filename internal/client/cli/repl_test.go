package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// execStub records REPL dispatch for assertions.
type execStub struct {
	loggedIn bool
	calls    []string
	gotoPath string
}

func (s *execStub) isLoggedIn() bool { return s.loggedIn }

func (s *execStub) getStatus() string { return "(test)" }

func (s *execStub) Login(ctx context.Context) error {
	s.calls = append(s.calls, "login")
	return nil
}

func (s *execStub) Logout(ctx context.Context) error {
	s.calls = append(s.calls, "logout")
	return nil
}

func (s *execStub) Whoami(ctx context.Context) {
	s.calls = append(s.calls, "whoami")
}

func (s *execStub) Refresh(ctx context.Context) error {
	s.calls = append(s.calls, "refresh")
	return nil
}

func (s *execStub) Status() {
	s.calls = append(s.calls, "status")
}

func (s *execStub) Goto(path string) {
	s.calls = append(s.calls, "goto")
	s.gotoPath = path
}

func runScript(t *testing.T, stub *execStub, script string) string {
	t.Helper()
	var out bytes.Buffer
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), scanner, &out, stub)
	return out.String()
}

func TestREPL_DispatchesCommands(t *testing.T) {
	stub := &execStub{}

	runScript(t, stub, "login\nwhoami\nrefresh\nstatus\nlogout\nexit\n")

	assert.Equal(t, []string{"login", "whoami", "refresh", "status", "logout"}, stub.calls)
}

func TestREPL_GotoPassesPath(t *testing.T) {
	stub := &execStub{}

	runScript(t, stub, "goto /admin/dashboard\nexit\n")

	assert.Equal(t, []string{"goto"}, stub.calls)
	assert.Equal(t, "/admin/dashboard", stub.gotoPath)
}

func TestREPL_GotoWithoutPathPrintsUsage(t *testing.T) {
	stub := &execStub{}

	out := runScript(t, stub, "goto\nexit\n")

	assert.Empty(t, stub.calls)
	assert.Contains(t, out, "Usage: goto <path>")
}

func TestREPL_HelpDependsOnLoginState(t *testing.T) {
	loggedOut := runScript(t, &execStub{}, "help\nexit\n")
	assert.Contains(t, loggedOut, "login, status")
	assert.NotContains(t, loggedOut, "whoami")

	loggedIn := runScript(t, &execStub{loggedIn: true}, "help\nexit\n")
	assert.Contains(t, loggedIn, "whoami, refresh")
	assert.NotContains(t, loggedIn, "login,")
}

func TestREPL_UnknownCommand(t *testing.T) {
	stub := &execStub{}

	out := runScript(t, stub, "frobnicate\nexit\n")

	assert.Empty(t, stub.calls)
	assert.Contains(t, out, "Unknown command: frobnicate")
}

func TestREPL_ExitStopsTheLoop(t *testing.T) {
	stub := &execStub{}

	out := runScript(t, stub, "exit\nlogin\n")

	assert.Empty(t, stub.calls)
	assert.Contains(t, out, "Bye!")
}

func TestREPL_StopsOnEOF(t *testing.T) {
	stub := &execStub{}

	runScript(t, stub, "status\n")

	assert.Equal(t, []string{"status"}, stub.calls)
}

func TestREPL_BlankLinesAreIgnored(t *testing.T) {
	stub := &execStub{}

	runScript(t, stub, "\n   \nstatus\nexit\n")

	assert.Equal(t, []string{"status"}, stub.calls)
}
