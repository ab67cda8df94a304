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

type linkUseCase interface {
	List(ctx context.Context, userID int64, page, perPage int, categoryID *int64) (*entity.Page[entity.ReferralLink], error)
	Create(ctx context.Context, userID, categoryID int64, name, url, description string) (*entity.ReferralLink, error)
	Get(ctx context.Context, userID, id int64) (*entity.ReferralLink, error)
	Update(ctx context.Context, userID, id int64, changes entity.LinkChanges) (*entity.ReferralLink, error)
	Delete(ctx context.Context, userID, id int64) error
}

type linkHandler struct {
	useCase  linkUseCase
	validate *validator.Validate
}

func newLinkHandler(useCase linkUseCase, validate *validator.Validate) *linkHandler {
	return &linkHandler{
		useCase:  useCase,
		validate: validate,
	}
}

func (h *linkHandler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(w, r)
	if !ok {
		return
	}

	page := queryIntParam(r, "page", 1)
	perPage := queryIntParam(r, "per_page", 0)

	var categoryID *int64
	if v := queryIntParam(r, "category_id", 0); v > 0 {
		id := int64(v)
		categoryID = &id
	}

	result, err := h.useCase.List(r.Context(), userID, page, perPage, categoryID)
	if err != nil {
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	data := make([]linkResponse, 0, len(result.Items))
	for i := range result.Items {
		data = append(data, toLinkResponse(&result.Items[i]))
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, pageResponse[linkResponse]{
		Data: data,
		Meta: toPageMeta(result),
	})
}

func (h *linkHandler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(w, r)
	if !ok {
		return
	}

	var req createLinkRequest

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

	link, err := h.useCase.Create(r.Context(), userID, req.CategoryID, req.Name, req.URL, req.Description)
	if err != nil {
		// A foreign-owned category is reported exactly like a missing one.
		if errors.Is(err, entity.ErrCategoryNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, categoryNotFoundResponse)
			return
		}

		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toLinkResponse(link))
}

func (h *linkHandler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(w, r)
	if !ok {
		return
	}

	id, err := idParam(r)
	if err != nil {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, linkNotFoundResponse)
		return
	}

	link, err := h.useCase.Get(r.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrLinkNotFound):
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, linkNotFoundResponse)
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
	render.JSON(w, r, toLinkResponse(link))
}

func (h *linkHandler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(w, r)
	if !ok {
		return
	}

	id, err := idParam(r)
	if err != nil {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, linkNotFoundResponse)
		return
	}

	var req updateLinkRequest

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

	link, err := h.useCase.Update(r.Context(), userID, id, req.toChanges())
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrLinkNotFound):
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, linkNotFoundResponse)
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
	render.JSON(w, r, toLinkResponse(link))
}

func (h *linkHandler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(w, r)
	if !ok {
		return
	}

	id, err := idParam(r)
	if err != nil {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, linkNotFoundResponse)
		return
	}

	if err := h.useCase.Delete(r.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, entity.ErrLinkNotFound):
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, linkNotFoundResponse)
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
