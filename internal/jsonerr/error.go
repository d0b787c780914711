// Package jsonerr writes webhook endpoint outcomes as JSON error
// payloads, keeping rejection responses uniform across handlers.
package jsonerr

import (
	"encoding/json"
	"net/http"

	"go.ellipsesearch.dev/ingest-sdk/pkg/auth"
)

type payload struct {
	// Code is the http.StatusText of the response status, e.g.
	// "Unauthorized"; successful writes use the literal "ok" instead.
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error writes structured error information to w using JSON encoding.
// The given status code is used if it is non-zero, otherwise it is set
// to 500.
//
// If err is nil it sets the status to 200 OK and writes:
//
//	{"code": "ok", "message": ""}
func Error(w http.ResponseWriter, err error, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	if err == nil {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"code":"ok","message":""}` + "\n"))
		return
	}

	if code == 0 {
		code = http.StatusInternalServerError
	}
	data, _ := json.Marshal(&payload{
		Code:    http.StatusText(code),
		Message: err.Error(),
	})
	w.WriteHeader(code)
	_, _ = w.Write(data)
}

// Reject writes a rejected webhook verdict, using the verdict's status
// hint and reason. The reason never contains secret material, so it is
// safe to return to the caller verbatim.
func Reject(w http.ResponseWriter, verdict auth.Verdict) {
	Error(w, verdict.Err, verdict.StatusHint)
}
