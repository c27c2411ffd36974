package static

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>重庆</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DEEPSEEK_API_KEY=secret"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	h := Handler(dir)

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{path: "/", wantStatus: http.StatusOK, wantBody: "<h1>重庆</h1>"},
		{path: "/app.js", wantStatus: http.StatusOK, wantBody: "console.log(1)"},
		{path: "/.env", wantStatus: http.StatusNotFound},
		{path: "/.git/config", wantStatus: http.StatusNotFound},
		{path: "/missing.css", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
			assert.NotContains(t, w.Body.String(), "secret")
		})
	}
}
