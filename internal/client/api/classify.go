package api

import "net/http"

// Fallback notification texts used when the server does not provide a message.
const (
	MsgSessionExpired = "Not logged in or session expired, please log in again"
	MsgForbidden      = "Permission denied"
	MsgNotFound       = "Requested resource does not exist"
	MsgServerError    = "Server error"
	MsgRequestFailed  = "Request failed"
	MsgNetworkError   = "Network error, please check your connection"
)

// Classify translates the two-layer status scheme of a completed HTTP
// exchange into a single outcome. A nil return means domain success and the
// envelope's Data may be consumed.
//
// The transport status takes precedence: a domain-success envelope carried
// on a non-2xx response is still dispatched by the HTTP status.
func Classify(httpStatus int, env *Envelope) error {
	if httpStatus >= 200 && httpStatus < 300 {
		if env.Code == CodeOK {
			return nil
		}
		return &RequestError{Code: env.Code, Message: messageOr(env.Message, MsgRequestFailed)}
	}

	switch httpStatus {
	case http.StatusUnauthorized:
		return ErrSessionExpired
	case http.StatusForbidden:
		return &HTTPError{Status: httpStatus, Message: messageOr(env.Message, MsgForbidden)}
	case http.StatusNotFound:
		return &HTTPError{Status: httpStatus, Message: messageOr(env.Message, MsgNotFound)}
	case http.StatusInternalServerError:
		return &HTTPError{Status: httpStatus, Message: messageOr(env.Message, MsgServerError)}
	default:
		return &HTTPError{Status: httpStatus, Message: messageOr(env.Message, MsgRequestFailed)}
	}
}

func messageOr(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}
