package middlewares

import (
	"net/http"
	"os"
	"strings"
)

// CorsMiddleware mengizinkan origin dari ALLOWED_ORIGINS (dipisah koma);
// kosong berarti semua origin diizinkan.
func CorsMiddleware(next http.Handler) http.Handler {
	allowed := strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && originAllowed(allowed, origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func originAllowed(allowed []string, origin string) bool {
	for _, candidate := range allowed {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		if candidate == "*" || candidate == origin {
			return true
		}
	}
	// Tanpa daftar eksplisit, semua origin lolos.
	for _, candidate := range allowed {
		if strings.TrimSpace(candidate) != "" {
			return false
		}
	}
	return true
}
