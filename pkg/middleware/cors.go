package middleware

import (
	"net/http"
	"slices"

	"go.uber.org/zap"
)

const allowedMethods = "GET,HEAD,PUT,PATCH,POST,DELETE"

// OriginAllowed reports whether a request from origin may proceed. Requests
// without an Origin header (curl, server-to-server) are always allowed.
func OriginAllowed(origin string, allowList []string) bool {
	if origin == "" {
		return true
	}
	return slices.Contains(allowList, origin)
}

// CORS rejects requests whose Origin is not in allowList and answers
// preflight requests for the ones that are.
func CORS(allowList []string, logger *zap.Logger) func(http.Handler) http.Handler {
	allowed := slices.Clone(allowList)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if !OriginAllowed(origin, allowed) {
				logger.Warn("CORS origin rejected",
					zap.String("origin", origin),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
				)
				http.Error(w, "Not allowed by CORS", http.StatusForbidden)
				return
			}

			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Add("Vary", "Origin")

			// preflight
			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", allowedMethods)
				if reqHeaders := r.Header.Get("Access-Control-Request-Headers"); reqHeaders != "" {
					h.Set("Access-Control-Allow-Headers", reqHeaders)
					h.Add("Vary", "Access-Control-Request-Headers")
				}
				h.Set("Content-Length", "0")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
