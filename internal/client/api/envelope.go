package api

import "encoding/json"

// CodeOK is the envelope's domain success sentinel. It is a business-level
// status and must not be confused with the HTTP status of the response
// carrying it.
const CodeOK = 200

// Envelope is the uniform wrapper every backend response carries.
type Envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}
