package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/blaisecz/gym-dashboard/pkg/problem"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Recovery recovers from panics and returns a 500 problem response.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}
				log.Printf("[http] panic recovered (request_id=%s): %v\n%s", chimw.GetReqID(r.Context()), err, debug.Stack())
				problem.InternalError("An unexpected error occurred").Write(w)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
