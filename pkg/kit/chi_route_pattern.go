package kit

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RoutePattern labels metrics with the chi route pattern so path parameters
// do not explode label cardinality; unmatched requests fall back to the
// raw path.
func RoutePattern(r *http.Request) string {
	if rp := chi.RouteContext(r.Context()).RoutePattern(); rp != "" {
		return rp
	}
	return r.URL.Path
}
