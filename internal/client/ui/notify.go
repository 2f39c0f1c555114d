// Package ui contains the console-facing output helpers.
package ui

import "github.com/pterm/pterm"

// Notifier shows non-blocking user-visible notifications. The transport and
// the session service emit through this port; tests substitute a recorder.
type Notifier interface {
	Success(text string)
	Error(text string)
}

// PTermNotifier renders notifications as pterm status lines.
type PTermNotifier struct{}

func NewPTermNotifier() *PTermNotifier { return &PTermNotifier{} }

func (*PTermNotifier) Success(text string) {
	pterm.Success.Println(text)
}

func (*PTermNotifier) Error(text string) {
	pterm.Error.Println(text)
}
