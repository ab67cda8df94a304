package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/linkdeck/linkdeck/internal/entity"
)

type categoryUseCase interface {
	List(ctx context.Context, userID int64, page, perPage int) (*entity.Page[entity.Category], error)
	Create(ctx context.Context, userID int64, name, description, color string) (*entity.Category, error)
	Get(ctx context.Context, userID, id int64) (*entity.Category, error)
	Update(ctx context.Context, userID, id int64, changes entity.CategoryChanges) (*entity.Category, error)
	Delete(ctx context.Context, userID, id int64) error
}

type categoryHandler struct {
	useCase  categoryUseCase
	validate *validator.Validate
}

func newCategoryHandler(useCase categoryUseCase, validate *validator.Validate) *categoryHandler {
	return &categoryHandler{
		useCase:  useCase,
		validate: validate,
	}
}

func (h *categoryHandler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(w, r)
	if !ok {
		return
	}

	page := queryIntParam(r, "page", 1)
	perPage := queryIntParam(r, "per_page", 0)

	result, err := h.useCase.List(r.Context(), userID, page, perPage)
	if err != nil {
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	data := make([]categoryResponse, 0, len(result.Items))
	for i := range result.Items {
		data = append(data, toCategoryResponse(&result.Items[i]))
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, pageResponse[categoryResponse]{
		Data: data,
		Meta: toPageMeta(result),
	})
}

func (h *categoryHandler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(w, r)
	if !ok {
		return
	}

	var req createCategoryRequest

	if err := render.DecodeJSON(r.Body, &req); err != nil {
		if errors.Is(err, io.EOF) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, emptyRequestBodyResponse)
			return
		}

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidRequestBodyResponse)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, validationErrorResponse(err))
		return
	}

	cat, err := h.useCase.Create(r.Context(), userID, req.Name, req.Description, req.Color)
	if err != nil {
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toCategoryResponse(cat))
}

func (h *categoryHandler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(w, r)
	if !ok {
		return
	}

	id, err := idParam(r)
	if err != nil {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, categoryNotFoundResponse)
		return
	}

	cat, err := h.useCase.Get(r.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrCategoryNotFound):
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, categoryNotFoundResponse)
		case errors.Is(err, entity.ErrPermissionDenied):
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, forbiddenResponse)
		default:
			httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, serverErrorResponse)
		}
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toCategoryResponse(cat))
}

func (h *categoryHandler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(w, r)
	if !ok {
		return
	}

	id, err := idParam(r)
	if err != nil {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, categoryNotFoundResponse)
		return
	}

	var req updateCategoryRequest

	if err := render.DecodeJSON(r.Body, &req); err != nil {
		if errors.Is(err, io.EOF) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, emptyRequestBodyResponse)
			return
		}

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidRequestBodyResponse)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, validationErrorResponse(err))
		return
	}

	cat, err := h.useCase.Update(r.Context(), userID, id, req.toChanges())
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrCategoryNotFound):
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, categoryNotFoundResponse)
		case errors.Is(err, entity.ErrPermissionDenied):
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, forbiddenResponse)
		default:
			httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, serverErrorResponse)
		}
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toCategoryResponse(cat))
}

func (h *categoryHandler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(w, r)
	if !ok {
		return
	}

	id, err := idParam(r)
	if err != nil {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, categoryNotFoundResponse)
		return
	}

	if err := h.useCase.Delete(r.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, entity.ErrCategoryNotFound):
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, categoryNotFoundResponse)
		case errors.Is(err, entity.ErrPermissionDenied):
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, forbiddenResponse)
		default:
			httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, serverErrorResponse)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
