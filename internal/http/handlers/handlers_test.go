package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appratings "github.com/preston-bernstein/nba-ratings-service/internal/app/ratings"
	"github.com/preston-bernstein/nba-ratings-service/internal/poller"
	engine "github.com/preston-bernstein/nba-ratings-service/internal/ratings"
	"github.com/preston-bernstein/nba-ratings-service/internal/teststubs"
	"github.com/preston-bernstein/nba-ratings-service/internal/testutil"
)

func rateBody(player string) string {
	return `{"player":` + testutil.SamplePlayerJSON(player) + `,"team":` + testutil.SampleTeamJSON + `}`
}

func newTestHandler() *Handler {
	return NewHandler(testutil.NewRatingsService(nil), nil, nil)
}

func TestHealth(t *testing.T) {
	rr := testutil.Serve(newTestHandler(), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	req = req.WithContext(ctx)
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req)

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "shutting down" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestReady(t *testing.T) {
	cases := []struct {
		name     string
		statusFn func() poller.Status
		want     int
		wantBody string
	}{
		{name: "no poller", want: http.StatusOK, wantBody: "ready"},
		{name: "no targets", statusFn: func() poller.Status { return poller.Status{} }, want: http.StatusOK, wantBody: "ready"},
		{name: "never warmed", statusFn: func() poller.Status { return poller.Status{Targets: 2} }, want: http.StatusServiceUnavailable, wantBody: "not ready"},
		{name: "last error surfaced", statusFn: func() poller.Status {
			return poller.Status{Targets: 2, LastError: "E2024/BAR: boom"}
		}, want: http.StatusServiceUnavailable, wantBody: "E2024/BAR: boom"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHandler(testutil.NewRatingsService(nil), nil, tc.statusFn)
			rr := testutil.Serve(h, http.MethodGet, "/ready", nil)
			testutil.AssertStatus(t, rr, tc.want)
			if !strings.Contains(rr.Body.String(), tc.wantBody) {
				t.Fatalf("expected body to contain %q, got %s", tc.wantBody, rr.Body.String())
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler()
	cases := map[string]string{
		"/health":          http.MethodPost,
		"/ready":           http.MethodDelete,
		"/ratings":         http.MethodGet,
		"/ratings/blended": http.MethodGet,
		"/ratings/roster":  http.MethodPut,
	}
	for path, method := range cases {
		rr := testutil.Serve(h, method, path, nil)
		testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
	}
}

func TestUnknownPathReturnsNotFound(t *testing.T) {
	rr := testutil.Serve(newTestHandler(), http.MethodGet, "/games/today", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestRateReturnsRatingResult(t *testing.T) {
	rr := testutil.PostJSON(newTestHandler(), "/ratings", rateBody("Mike James"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var res engine.RatingResult
	testutil.DecodeJSON(t, rr, &res)
	if res.OffRating == nil || res.DefRating == nil || res.NetRating == nil {
		t.Fatalf("expected all ratings populated, got %+v", res)
	}
	if diff := *res.OffRating - *res.DefRating; diff-*res.NetRating > 1e-9 || *res.NetRating-diff > 1e-9 {
		t.Fatalf("expected net = off - def, got off=%v def=%v net=%v", *res.OffRating, *res.DefRating, *res.NetRating)
	}
}

func TestRateMatchesDirectComputation(t *testing.T) {
	rr := testutil.PostJSON(newTestHandler(), "/ratings", rateBody("Mike James"))
	var res engine.RatingResult
	testutil.DecodeJSON(t, rr, &res)

	want := engine.Rate(testutil.SamplePlayerLine("Mike James"), testutil.SampleTeamLine("BAR"))
	if *res.OffRating != *want.OffRating || *res.DefRating != *want.DefRating {
		t.Fatalf("expected handler to match engine, got off=%v def=%v want off=%v def=%v",
			*res.OffRating, *res.DefRating, *want.OffRating, *want.DefRating)
	}
}

func TestRateRejectsBadBodies(t *testing.T) {
	h := newTestHandler()
	cases := map[string]string{
		"malformed":      `{"player":`,
		"missing team":   `{"player":{"name":"A"}}`,
		"missing player": `{"team":{"code":"BAR"}}`,
		"wrong type":     `{"player":[1,2],"team":{}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/ratings", strings.NewReader(body))
			req.Header.Set("X-Request-ID", "req-1")
			rr := testutil.ServeRequest(h, req)
			testutil.AssertStatus(t, rr, http.StatusBadRequest)

			var resp map[string]string
			testutil.DecodeJSON(t, rr, &resp)
			if resp["error"] == "" || resp["requestId"] != "req-1" {
				t.Fatalf("expected error with request id, got %v", resp)
			}
		})
	}
}

func TestRateRejectsOversizedBody(t *testing.T) {
	body := `{"player":{"name":"` + strings.Repeat("x", maxBodyBytes) + `"},"team":{}}`
	rr := testutil.PostJSON(newTestHandler(), "/ratings", body)
	testutil.AssertStatus(t, rr, http.StatusRequestEntityTooLarge)
}

func TestRateBlendedFallsBackWithoutSource(t *testing.T) {
	rr := testutil.PostJSON(newTestHandler(), "/ratings/blended", rateBody("Mike James"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var res engine.BlendedRatingResult
	testutil.DecodeJSON(t, rr, &res)
	if res.Fallback != engine.FallbackNoSource {
		t.Fatalf("expected %s fallback, got %q", engine.FallbackNoSource, res.Fallback)
	}
	if *res.Final.OffRating != *res.Base.OffRating {
		t.Fatalf("expected final to equal base on fallback")
	}
}

func TestRateBlendedUsesOnCourtData(t *testing.T) {
	provider := testutil.GoodProvider{Dataset: testutil.SampleDataset("E2024", "BAR", "JAMES, MIKE")}
	h := NewHandler(testutil.NewRatingsService(provider), nil, nil)

	body := `{"player":` + testutil.SamplePlayerJSON("Mike James") + `,"team":` + testutil.SampleTeamJSON + `,"season":"E2024"}`
	rr := testutil.PostJSON(h, "/ratings/blended", body)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var res engine.BlendedRatingResult
	testutil.DecodeJSON(t, rr, &res)
	if res.Fallback != "" || res.TeamOn == nil {
		t.Fatalf("expected blended result, got fallback %q", res.Fallback)
	}
	if res.TeamOn.MatchedBy != "normalized" {
		t.Fatalf("expected normalized match, got %q", res.TeamOn.MatchedBy)
	}
	if *res.Final.OffRating == *res.Base.OffRating {
		t.Fatalf("expected blend to move the offensive rating")
	}
}

func TestRateBlendedResolvesSeasonWhenOmitted(t *testing.T) {
	stub := &teststubs.StubProvider{Dataset: testutil.SampleDataset("", "BAR", "Mike James")}
	h := NewHandler(testutil.NewRatingsServiceAt(stub, testutil.InSeason(2024)), nil, nil)

	rr := testutil.PostJSON(h, "/ratings/blended", rateBody("Mike James"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	if got := stub.Seasons(); len(got) != 1 || got[0] != "E2024" {
		t.Fatalf("expected season E2024 requested, got %v", got)
	}
	if got := stub.Teams(); len(got) != 1 || got[0] != "BAR" {
		t.Fatalf("expected team BAR requested, got %v", got)
	}
}

func TestRateRosterKeepsInputOrder(t *testing.T) {
	body := `{"team":` + testutil.SampleTeamJSON + `,"players":[` +
		testutil.SamplePlayerJSON("A") + `,` + testutil.SamplePlayerJSON("B") + `,` + testutil.SamplePlayerJSON("C") + `]}`
	rr := testutil.PostJSON(newTestHandler(), "/ratings/roster", body)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var res appratings.RosterResult
	testutil.DecodeJSON(t, rr, &res)
	if len(res.Ratings) != 3 {
		t.Fatalf("expected 3 ratings, got %d", len(res.Ratings))
	}
	for i, name := range []string{"A", "B", "C"} {
		if res.Ratings[i].Player != name {
			t.Fatalf("expected player %s at %d, got %s", name, i, res.Ratings[i].Player)
		}
		if res.Ratings[i].Blended != nil {
			t.Fatalf("expected no blend when not requested")
		}
	}
}

func TestRateRosterBlends(t *testing.T) {
	body := `{"team":` + testutil.SampleTeamJSON + `,"players":[` + testutil.SamplePlayerJSON("A") + `],"season":"E2024","blend":true}`
	rr := testutil.PostJSON(newTestHandler(), "/ratings/roster", body)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var res appratings.RosterResult
	testutil.DecodeJSON(t, rr, &res)
	if res.Season != "E2024" || len(res.Ratings) != 1 || res.Ratings[0].Blended == nil {
		t.Fatalf("expected blended roster entry, got %+v", res)
	}
}

func TestRateRosterRequiresTeam(t *testing.T) {
	rr := testutil.PostJSON(newTestHandler(), "/ratings/roster", `{"players":[]}`)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestHandlerLogsWithRequestLogger(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	h := NewHandler(testutil.NewRatingsService(nil), logger, nil)

	rr := testutil.PostJSON(h, "/ratings", rateBody("Mike James"))
	testutil.AssertStatus(t, rr, http.StatusOK)
	if !strings.Contains(buf.String(), "rated player") {
		t.Fatalf("expected rating log, got %s", buf.String())
	}
}

func TestRateBlendedLogsResolvedSeason(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	stub := &teststubs.StubProvider{Dataset: testutil.SampleDataset("", "BAR", "Mike James")}
	h := NewHandler(testutil.NewRatingsServiceAt(stub, testutil.InSeason(2024)), logger, nil)

	rr := testutil.PostJSON(h, "/ratings/blended", rateBody("Mike James"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var res engine.BlendedRatingResult
	testutil.DecodeJSON(t, rr, &res)
	if res.Season != "E2024" {
		t.Fatalf("expected resolved season in response, got %q", res.Season)
	}
	if !strings.Contains(buf.String(), "season=E2024") {
		t.Fatalf("expected resolved season logged, got %s", buf.String())
	}
}
