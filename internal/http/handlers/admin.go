package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/courtside-sim/internal/http/requestutil"
	"github.com/preston-bernstein/courtside-sim/internal/logging"
)

// AdminGuard gates the endpoints that advance the season. An empty token
// leaves them open.
type AdminGuard struct {
	token  string
	logger *slog.Logger
}

// NewAdminGuard constructs an AdminGuard for token.
func NewAdminGuard(token string, logger *slog.Logger) *AdminGuard {
	return &AdminGuard{token: token, logger: logger}
}

// Wrap rejects requests without the configured bearer token with 401.
func (g *AdminGuard) Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !g.authorize(r) {
			logging.Warn(g.logger, "admin unauthorized",
				slog.String(logging.FieldPath, r.URL.Path),
				slog.String("client_ip", requestutil.ClientIP(r)),
			)
			writeError(w, r, http.StatusUnauthorized, "unauthorized", g.logger)
			return
		}
		next(w, r)
	}
}

func (g *AdminGuard) authorize(r *http.Request) bool {
	if g == nil || g.token == "" {
		return true
	}
	got := requestutil.BearerToken(r)
	return subtle.ConstantTimeCompare([]byte(got), []byte(g.token)) == 1
}
