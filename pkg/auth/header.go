package auth

import (
	"crypto/hmac"
	"net/http"
)

// Header names carrying the signature material. The Authorization
// header keeps its standard name.
const (
	TimestampHeader = "X-Webhook-Timestamp"
	SignatureHeader = "X-Webhook-Signature"
)

// Headers are the headers that authenticate a webhook request.
type Headers struct {
	Authorization string `header:"Authorization"`
	Timestamp     string `header:"X-Webhook-Timestamp"`
	Signature     string `header:"X-Webhook-Signature"`
}

// Equal returns true if the headers are equal.
//
// Each field is compared with hmac.Equal to prevent timing attacks.
func (h *Headers) Equal(other *Headers) bool {
	authMatches := hmac.Equal([]byte(h.Authorization), []byte(other.Authorization))
	tsMatches := hmac.Equal([]byte(h.Timestamp), []byte(other.Timestamp))
	sigMatches := hmac.Equal([]byte(h.Signature), []byte(other.Signature))
	return authMatches && tsMatches && sigMatches
}

// Apply sets the non-empty headers onto an outbound header map.
func (h *Headers) Apply(header http.Header) {
	if h.Authorization != "" {
		header.Set("Authorization", h.Authorization)
	}
	if h.Timestamp != "" {
		header.Set(TimestampHeader, h.Timestamp)
	}
	if h.Signature != "" {
		header.Set(SignatureHeader, h.Signature)
	}
}

// FromHTTPRequest lifts the authentication headers off req into a
// verifier Request. The body must already have been read in full;
// FromHTTPRequest does not touch req.Body.
func FromHTTPRequest(req *http.Request, body []byte) Request {
	return Request{
		Body:          body,
		Authorization: req.Header.Get("Authorization"),
		Timestamp:     req.Header.Get(TimestampHeader),
		Signature:     req.Header.Get(SignatureHeader),
	}
}
