package middleware

import (
	"fmt"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/rs/zerolog"
)

type recoveryLogger struct {
	logger zerolog.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.logger.Error().Msg(fmt.Sprint(v...))
}

// Recover turns a handler panic into a 500 and logs the panic value. The
// request scoped logger from AccessLog is used when present so the line
// carries the request id; logger is the fallback.
func Recover(logger zerolog.Logger) func(http.Handler) http.Handler {
	fallback := logger.With().Str("component", "recovery").Logger()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := fallback
			if reqLogger := zerolog.Ctx(r.Context()); reqLogger.GetLevel() != zerolog.Disabled {
				l = *reqLogger
			}
			handlers.RecoveryHandler(
				handlers.RecoveryLogger(recoveryLogger{logger: l}),
				handlers.PrintRecoveryStack(false),
			)(next).ServeHTTP(w, r)
		})
	}
}

// Chain wraps h so that the first middleware is the outermost.
func Chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
