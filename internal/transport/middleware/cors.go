package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/curator-backend/internal/config"
)

// CORS returns middleware that handles Cross-Origin Resource Sharing.
// Preflight requests (OPTIONS with Access-Control-Request-Method) are
// answered here; every other request reaches next.
func CORS(cfg config.CORSConfig) Middleware {
	allowAny, origins := parseOrigins(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			allowed := origin != "" && (allowAny || origins[origin])
			if allowed {
				if allowAny && !cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Origin", "*")
				} else {
					h.Set("Access-Control-Allow-Origin", origin)
				}
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
				if cfg.ExposedHeaders != "" {
					h.Set("Access-Control-Expose-Headers", cfg.ExposedHeaders)
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				if allowed {
					h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
					h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
					h.Set("Access-Control-Max-Age", maxAge)
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func parseOrigins(list string) (wildcard bool, set map[string]bool) {
	set = make(map[string]bool)
	for _, o := range strings.Split(list, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			wildcard = true
		default:
			set[o] = true
		}
	}
	return wildcard, set
}
