package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func serveWithRequestID(t *testing.T, inbound string) (ctxID string, rec *httptest.ResponseRecorder) {
	t.Helper()
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = RequestIDFromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if inbound != "" {
		req.Header.Set(HeaderRequestID, inbound)
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return ctxID, rec
}

func TestRequestIDReusesWellFormedInboundID(t *testing.T) {
	inbound := uuid.NewString()
	ctxID, rec := serveWithRequestID(t, inbound)
	if ctxID != inbound {
		t.Fatalf("context id = %q, want inbound %q", ctxID, inbound)
	}
	if got := rec.Header().Get(HeaderRequestID); got != inbound {
		t.Fatalf("response header = %q, want %q", got, inbound)
	}
}

func TestRequestIDReplacesMalformedInboundID(t *testing.T) {
	ctxID, rec := serveWithRequestID(t, "not-a-uuid\ninjected=1")
	if ctxID == "not-a-uuid\ninjected=1" {
		t.Fatalf("malformed inbound id must not be reused")
	}
	if _, err := uuid.Parse(ctxID); err != nil {
		t.Fatalf("replacement id %q is not a uuid: %v", ctxID, err)
	}
	if got := rec.Header().Get(HeaderRequestID); got != ctxID {
		t.Fatalf("response header = %q, want %q", got, ctxID)
	}
}

func TestRequestIDGeneratedWhenAbsent(t *testing.T) {
	ctxID, _ := serveWithRequestID(t, "")
	if _, err := uuid.Parse(ctxID); err != nil {
		t.Fatalf("generated id %q is not a uuid: %v", ctxID, err)
	}
}
