package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/nba-ratings-service/internal/http/middleware"
	"github.com/preston-bernstein/nba-ratings-service/internal/testutil"
)

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId"`
}

func TestWriteErrorUsesMiddlewareRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	h := middleware.LoggingMiddleware(logger, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusBadRequest, "player and team are required", logger)
	}))

	req := httptest.NewRequest(http.MethodPost, "/ratings", nil)
	req.Header.Set(middleware.HeaderRequestID, "abc123")
	rr := testutil.ServeRequest(h, req)

	testutil.AssertStatus(t, rr, http.StatusBadRequest)
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected content type json, got %s", got)
	}
	var body errorBody
	testutil.DecodeJSON(t, rr, &body)
	if body.RequestID != "abc123" || body.Error != "player and team are required" {
		t.Fatalf("unexpected error body %+v", body)
	}
}

func TestWriteErrorFallsBackToHeaderRequestID(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ratings/roster", nil)
	req.Header.Set(middleware.HeaderRequestID, "header-id")
	writeError(rr, req, http.StatusRequestEntityTooLarge, "request body too large", nil)

	var body errorBody
	testutil.DecodeJSON(t, rr, &body)
	if body.RequestID != "header-id" {
		t.Fatalf("expected header request id used when context missing, got %+v", body)
	}
}

func TestWriteErrorOmitsMissingRequestID(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, httptest.NewRequest(http.MethodGet, "/ratings", nil), http.StatusMethodNotAllowed, "method not allowed", nil)

	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if _, ok := body["requestId"]; ok {
		t.Fatalf("expected no requestId, got %+v", body)
	}
}

func TestWriteJSONLogsEncodeError(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := httptest.NewRecorder()
	writeJSON(rr, http.StatusOK, make(chan int), logger)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status written even on encode error, got %d", rr.Code)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected logger to record encode error")
	}
}
