package http

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/linkdeck/linkdeck/internal/entity"
)

const statusError = "error"

// createCategoryRequest represents the payload for creating a category.
type createCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Color       string `json:"color" validate:"omitempty,hexcolor"`
}

// updateCategoryRequest represents a partial category update. Absent fields
// are left untouched.
type updateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitnil,required,max=255"`
	Description *string `json:"description" validate:"omitnil,max=1000"`
	Color       *string `json:"color" validate:"omitnil,hexcolor"`
}

func (req updateCategoryRequest) toChanges() entity.CategoryChanges {
	return entity.CategoryChanges{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	}
}

// createLinkRequest represents the payload for creating a referral link.
type createLinkRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	URL         string `json:"url" validate:"required,url,max=2000"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	CategoryID  int64  `json:"category_id" validate:"required,gt=0"`
}

// updateLinkRequest represents a partial referral-link update.
type updateLinkRequest struct {
	Name        *string `json:"name" validate:"omitnil,required,max=255"`
	URL         *string `json:"url" validate:"omitnil,required,url,max=2000"`
	Description *string `json:"description" validate:"omitnil,max=1000"`
	CategoryID  *int64  `json:"category_id" validate:"omitnil,gt=0"`
}

func (req updateLinkRequest) toChanges() entity.LinkChanges {
	return entity.LinkChanges{
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	}
}

// categoryResponse represents a category in API responses.
type categoryResponse struct {
	ID                 int64          `json:"id"`
	Name               string         `json:"name"`
	Description        string         `json:"description,omitempty"`
	Color              string         `json:"color"`
	ReferralLinksCount int64          `json:"referral_links_count"`
	ReferralLinks      []linkResponse `json:"referral_links,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

func toCategoryResponse(cat *entity.Category) categoryResponse {
	resp := categoryResponse{
		ID:                 cat.ID,
		Name:               cat.Name,
		Description:        cat.Description,
		Color:              cat.Color,
		ReferralLinksCount: cat.ReferralLinksCount,
		CreatedAt:          cat.CreatedAt,
		UpdatedAt:          cat.UpdatedAt,
	}

	for i := range cat.Links {
		resp.ReferralLinks = append(resp.ReferralLinks, toLinkResponse(&cat.Links[i]))
	}

	return resp
}

// linkResponse represents a referral link in API responses.
type linkResponse struct {
	ID           int64               `json:"id"`
	Name         string              `json:"name"`
	URL          string              `json:"url"`
	Description  string              `json:"description,omitempty"`
	ClickCount   int64               `json:"click_count"`
	SocialShares entity.SocialShares `json:"social_shares,omitempty"`
	CategoryID   int64               `json:"category_id"`
	Category     *categoryResponse   `json:"category,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

func toLinkResponse(link *entity.ReferralLink) linkResponse {
	resp := linkResponse{
		ID:           link.ID,
		Name:         link.Name,
		URL:          link.URL,
		Description:  link.Description,
		ClickCount:   link.ClickCount,
		SocialShares: link.SocialShares,
		CategoryID:   link.CategoryID,
		CreatedAt:    link.CreatedAt,
		UpdatedAt:    link.UpdatedAt,
	}

	if link.Category != nil {
		cat := toCategoryResponse(link.Category)
		resp.Category = &cat
	}

	return resp
}

// pageMeta carries the pagination details of a listing response.
type pageMeta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// pageResponse is the envelope for paginated listings.
type pageResponse[T any] struct {
	Data []T      `json:"data"`
	Meta pageMeta `json:"meta"`
}

func toPageMeta[T any](page *entity.Page[T]) pageMeta {
	return pageMeta{
		Page:       page.Page,
		PerPage:    page.PerPage,
		Total:      page.Total,
		TotalPages: page.TotalPages(),
	}
}

// dashboardStats carries the counter section of the dashboard snapshot.
type dashboardStats struct {
	TotalCategories int64 `json:"total_categories"`
	TotalLinks      int64 `json:"total_links"`
	TotalClicks     int64 `json:"total_clicks"`
}

// dashboardResponse represents the aggregate dashboard snapshot.
type dashboardResponse struct {
	Stats            dashboardStats     `json:"stats"`
	RecentCategories []categoryResponse `json:"recent_categories"`
	RecentLinks      []linkResponse     `json:"recent_links"`
	TopLinks         []linkResponse     `json:"top_links"`
}

func toDashboardResponse(d *entity.Dashboard) dashboardResponse {
	resp := dashboardResponse{
		Stats: dashboardStats{
			TotalCategories: d.TotalCategories,
			TotalLinks:      d.TotalLinks,
			TotalClicks:     d.TotalClicks,
		},
		RecentCategories: make([]categoryResponse, 0, len(d.RecentCategories)),
		RecentLinks:      make([]linkResponse, 0, len(d.RecentLinks)),
		TopLinks:         make([]linkResponse, 0, len(d.TopLinks)),
	}

	for i := range d.RecentCategories {
		resp.RecentCategories = append(resp.RecentCategories, toCategoryResponse(&d.RecentCategories[i]))
	}
	for i := range d.RecentLinks {
		resp.RecentLinks = append(resp.RecentLinks, toLinkResponse(&d.RecentLinks[i]))
	}
	for i := range d.TopLinks {
		resp.TopLinks = append(resp.TopLinks, toLinkResponse(&d.TopLinks[i]))
	}

	return resp
}

// validationError represents an individual validation error.
type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorResponse represents a structured error response.
type errorResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Errors  []validationError `json:"errors,omitempty"`
}

// Predefined error responses for common scenarios.
var (
	emptyRequestBodyResponse = errorResponse{
		Status:  statusError,
		Message: "empty request body",
	}

	invalidRequestBodyResponse = errorResponse{
		Status:  statusError,
		Message: "invalid request body",
	}

	unauthenticatedResponse = errorResponse{
		Status:  statusError,
		Message: "authentication required",
	}

	forbiddenResponse = errorResponse{
		Status:  statusError,
		Message: "access denied",
	}

	categoryNotFoundResponse = errorResponse{
		Status:  statusError,
		Message: "category not found",
	}

	linkNotFoundResponse = errorResponse{
		Status:  statusError,
		Message: "referral link not found",
	}

	serverErrorResponse = errorResponse{
		Status:  statusError,
		Message: "server error occurred",
	}
)

// messageForTag returns a user-friendly message based on the validation tag.
func messageForTag(tag string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "url":
		return "invalid url"
	case "max":
		return "value is too long"
	case "hexcolor":
		return "invalid hex color"
	case "gt":
		return "invalid value"
	default:
		return "invalid value"
	}
}

// getValidationErrors processes validation errors and returns a list of validationError.
func getValidationErrors(err error) []validationError {
	var validationErrs []validationError

	errs, ok := err.(validator.ValidationErrors)
	if ok {
		for _, e := range errs {
			validationErrs = append(validationErrs, validationError{
				Field:   e.Field(),
				Message: messageForTag(e.Tag()),
			})
		}
	}

	return validationErrs
}

// validationErrorResponse constructs an errorResponse for validation errors.
func validationErrorResponse(err error) errorResponse {
	return errorResponse{
		Status:  statusError,
		Message: "validation error",
		Errors:  getValidationErrors(err),
	}
}
