package middleware

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"wasteCollect/internal/render"
	"wasteCollect/pkg/e"

	"github.com/google/uuid"
)

const (
	HeaderAPIKey = "X-API-Key"
	HeaderUserID = "X-User-ID"
)

const (
	msgBadAPIKey = "Chave de API inválida"
	msgNoUser    = "Cabeçalho X-User-ID ausente ou inválido"
)

type userIDKey struct{}

// APIKeyMiddleware rejects requests whose X-API-Key does not match apiKey.
func APIKeyMiddleware(apiKey string, logger *slog.Logger) func(http.Handler) http.Handler {
	want := []byte(apiKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get(HeaderAPIKey))
			if len(want) == 0 || subtle.ConstantTimeCompare(got, want) != 1 {
				logger.Warn("api key rejected", slog.String("path", r.URL.Path), slog.String("remote", r.RemoteAddr))
				_ = render.Fail(w, e.CodeUnauthorized, msgBadAPIKey)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireUser reads the acting user from X-User-ID. The gateway in front of
// the API authenticates the user; this only checks the header is a UUID.
func RequireUser(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get(HeaderUserID))
			id, err := uuid.Parse(raw)
			if err != nil || id == uuid.Nil {
				uerr := fmt.Errorf("%w: %q", e.ErrInvalidUserID, raw)
				logger.Warn("request rejected", slog.Any("error", uerr), slog.String("path", r.URL.Path))
				_, _ = render.Error(w, e.Unauthorized(msgNoUser, uerr))
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), id)))
		})
	}
}

func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return id, ok && id != uuid.Nil
}
