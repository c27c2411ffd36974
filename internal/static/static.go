package static

import (
	"net/http"
	"strings"
)

// Handler serves the front-end from dir. Paths with a dot-prefixed segment
// (.env, .git/...) are reported as not found.
func Handler(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasHiddenSegment(r.URL.Path) {
			http.NotFound(w, r)
			return
		}
		fs.ServeHTTP(w, r)
	})
}

func hasHiddenSegment(path string) bool {
	for _, segment := range strings.Split(path, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}
