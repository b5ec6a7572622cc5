package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"fasterpost/internal/repository/accounts"
	"fasterpost/pkg/logger"
)

type contextKey struct{}

var courierIDKey contextKey

const bearerPrefix = "Bearer "

// CourierID возвращает идентификатор курьера, положенный middleware в контекст.
func CourierID(ctx context.Context) (string, bool) {
	courierID, ok := ctx.Value(courierIDKey).(string)
	return courierID, ok
}

// WithCourierID кладет идентификатор курьера в контекст запроса.
func WithCourierID(ctx context.Context, courierID string) context.Context {
	return context.WithValue(ctx, courierIDKey, courierID)
}

func Middleware(log handlerLogger, verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			token := strings.TrimPrefix(header, bearerPrefix)

			courierID, err := verifier.CourierIDByToken(r.Context(), token)
			if err != nil {
				if errors.Is(err, accounts.ErrTokenNotFound) {
					w.WriteHeader(http.StatusUnauthorized)
					return
				}

				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Error("token verification failed")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			ctx := WithCourierID(r.Context(), courierID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
