package address

import (
	"log/slog"
	"net/http"

	"wasteCollect/internal/middleware"
	"wasteCollect/internal/render"
	"wasteCollect/pkg/e"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const (
	msgCreated   = "Endereço criado com sucesso"
	msgFound     = "Endereço encontrado com sucesso"
	msgListed    = "Endereços do usuário encontrados com sucesso"
	msgUpdated   = "Endereço atualizado com sucesso"
	msgInvalidID = "ID inválido"
	msgNoUser    = "Usuário não identificado"
)

func invalidID(err error) error {
	return e.Validation(msgInvalidID, err)
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.log(r).Warn("request without user id")
		if err := render.Fail(w, e.CodeUnauthorized, msgNoUser); err != nil {
			h.log(r).Error("json encode failed", slog.Any("error", err))
		}
	}
	return id, ok
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	be, werr := render.Error(w, err)
	l := h.log(r).With(slog.String("code", string(be.Code)))
	if be.Code == e.CodeInternal {
		l.Error("request failed", slog.Any("error", err))
	} else {
		l.Info("request rejected", slog.String("message", be.Message))
	}
	if werr != nil {
		l.Error("json encode failed", slog.Any("error", werr))
	}
}

func (h *Handler) success(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	if err := render.Success(w, status, message, data); err != nil {
		h.log(r).Error("json encode failed", slog.Any("error", err))
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}
