package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/PauloHFS/goth-paginator/internal/contextkeys"
)

// Locale resolves the request language: ?lang= first, then the lang
// cookie, then Accept-Language. Only the primary subtag is kept.
func Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale := "pt"

		if q := r.URL.Query().Get("lang"); q != "" {
			locale = q
		} else if cookie, err := r.Cookie("lang"); err == nil && cookie.Value != "" {
			locale = cookie.Value
		} else if accept := r.Header.Get("Accept-Language"); accept != "" {
			locale = accept
		}

		ctx := context.WithValue(r.Context(), contextkeys.LocaleKey, primaryTag(locale))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// primaryTag turns "en-US,en;q=0.9" into "en".
func primaryTag(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ",;"); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexAny(s, "-_"); i >= 0 {
		s = s[:i]
	}
	return strings.ToLower(s)
}
