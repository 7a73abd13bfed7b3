package http

import (
	"net/http"
	"testing"

	"github.com/preston-bernstein/courtside-sim/internal/app/league"
	"github.com/preston-bernstein/courtside-sim/internal/http/handlers"
	"github.com/preston-bernstein/courtside-sim/internal/testutil"
)

func newRouter(token string) http.Handler {
	lg := testutil.NewLeague(league.Deps{})
	h := handlers.NewHandler(handlers.Services{
		League:  lg.League,
		Teams:   lg.Teams,
		Players: lg.Players,
		Games:   lg.Games,
	}, handlers.NewAdminGuard(token, nil), nil, nil)
	return NewRouter(h)
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newRouter("")

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/ready", http.StatusOK},
		{http.MethodGet, "/teams", http.StatusOK},
		{http.MethodGet, "/teams/bos", http.StatusOK},
		{http.MethodGet, "/teams/nope", http.StatusNotFound},
		{http.MethodGet, "/players/bos-PG-1", http.StatusOK},
		{http.MethodGet, "/games", http.StatusOK},
		{http.MethodGet, "/games/g2024-10-22-1", http.StatusOK},
		{http.MethodGet, "/games/foo", http.StatusNotFound},
		{http.MethodPost, "/rounds/next", http.StatusOK},
		{http.MethodGet, "/stats?stream=regular", http.StatusOK},
		{http.MethodGet, "/standings", http.StatusOK},
		{http.MethodGet, "/roles", http.StatusOK},
		{http.MethodGet, "/roles/fit?player=lal-C-1", http.StatusOK},
	}

	for _, tc := range cases {
		rr := testutil.Serve(router, tc.method, tc.path, nil)
		if rr.Code != tc.want {
			t.Fatalf("%s %s expected status %d, got %d", tc.method, tc.path, tc.want, rr.Code)
		}
	}
}

func TestRouterGuardsSeasonEndpoints(t *testing.T) {
	router := newRouter("secret")

	testutil.AssertStatus(t, testutil.Serve(router, http.MethodPost, "/rounds/next", nil), http.StatusUnauthorized)
	testutil.AssertStatus(t, testutil.Serve(router, http.MethodPost, "/games/g2024-10-22-1/play", nil), http.StatusUnauthorized)
	testutil.AssertStatus(t, testutil.ServeAuthorized(router, http.MethodPost, "/games/g2024-10-22-1/play", "secret"), http.StatusOK)
	testutil.AssertStatus(t, testutil.Serve(router, http.MethodGet, "/games/g2024-10-22-1", nil), http.StatusOK)
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	rr := testutil.Serve(newRouter(""), http.MethodGet, "/does-not-exist", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown route, got %d", rr.Code)
	}
}
