package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog"

	"github.com/madeindra/chongqing-story/internal/util"
)

func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			zerolog.Ctx(r.Context()).Error().
				Str("panic", fmt.Sprint(rec)).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			util.SendError(w, "Internal server error", nil, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
