package jsonerr

import (
	"net/http"
	"net/http/httptest"
	"testing"

	qt "github.com/frankban/quicktest"

	"go.ellipsesearch.dev/ingest-sdk/pkg/auth"
)

func TestError(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	rec := httptest.NewRecorder()
	Error(rec, auth.ErrInvalidSignature, http.StatusUnauthorized)
	c.Assert(rec.Code, qt.Equals, http.StatusUnauthorized)
	c.Assert(rec.Header().Get("Content-Type"), qt.Equals, "application/json")
	c.Assert(rec.Body.String(), qt.Equals, `{"code":"Unauthorized","message":"invalid webhook signature"}`)

	// A nil error is a success body with the literal "ok" code.
	rec = httptest.NewRecorder()
	Error(rec, nil, 0)
	c.Assert(rec.Code, qt.Equals, http.StatusOK)
	c.Assert(rec.Body.String(), qt.Equals, `{"code":"ok","message":""}`+"\n")

	// A zero code on failure defaults to 500.
	rec = httptest.NewRecorder()
	Error(rec, auth.ErrInvalidSignature, 0)
	c.Assert(rec.Code, qt.Equals, http.StatusInternalServerError)
	c.Assert(rec.Body.String(), qt.Contains, `"code":"Internal Server Error"`)
}

func TestReject(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	rec := httptest.NewRecorder()
	Reject(rec, auth.NewVerifier(auth.Secrets{}, nil).Verify(auth.Request{}))
	c.Assert(rec.Code, qt.Equals, http.StatusUnauthorized)
	c.Assert(rec.Body.String(), qt.Equals, `{"code":"Unauthorized","message":"webhook secret not configured"}`)
}
