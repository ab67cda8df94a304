package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/linkdeck/linkdeck/internal/entity"
)

type dashboardUseCase interface {
	Summary(ctx context.Context, userID int64) (*entity.Dashboard, error)
}

type dashboardHandler struct {
	useCase dashboardUseCase
}

func newDashboardHandler(useCase dashboardUseCase) *dashboardHandler {
	return &dashboardHandler{useCase: useCase}
}

func (h *dashboardHandler) summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(w, r)
	if !ok {
		return
	}

	dashboard, err := h.useCase.Summary(r.Context(), userID)
	if err != nil {
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toDashboardResponse(dashboard))
}
