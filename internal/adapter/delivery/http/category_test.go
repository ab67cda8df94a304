package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/stretchr/testify/mock"

	"github.com/linkdeck/linkdeck/internal/entity"
)

func (suite *HandlersTestSuite) TestListCategories() {
	const path = "/api/v1/categories"

	suite.Run("server error", func() {
		suite.categoryUCMock.
			On("List", mock.Anything, int64(1), 1, 0).
			Once().
			Return(nil, errors.New("unknown error"))

		resp := suite.e.GET(path).
			WithHeader("Authorization", suite.authHeader("1")).
			Expect().
			Status(http.StatusInternalServerError).
			JSON().Object()

		resp.HasValue("status", "error")
		resp.ContainsKey("message")
	})

	suite.Run("success", func() {
		suite.categoryUCMock.
			On("List", mock.Anything, int64(1), 2, 0).
			Once().
			Return(&entity.Page[entity.Category]{
				Items: []entity.Category{
					{ID: 13, Name: "Tools", Color: "#3b82f6", UserID: 1, ReferralLinksCount: 2},
				},
				Page:    2,
				PerPage: 12,
				Total:   13,
			}, nil)

		resp := suite.e.GET(path).
			WithQuery("page", 2).
			WithHeader("Authorization", suite.authHeader("1")).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.Value("data").Array().Length().IsEqual(1)
		resp.Value("data").Array().Value(0).Object().
			HasValue("id", 13).
			HasValue("name", "Tools").
			HasValue("referral_links_count", 2)
		resp.Value("meta").Object().
			HasValue("page", 2).
			HasValue("per_page", 12).
			HasValue("total", 13).
			HasValue("total_pages", 2)
	})
}

func (suite *HandlersTestSuite) TestCreateCategory() {
	const path = "/api/v1/categories"

	suite.Run("empty request body", func() {
		resp := suite.e.POST(path).
			WithHeader("Authorization", suite.authHeader("1")).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object()

		resp.HasValue("status", "error")
		resp.ContainsKey("message")
	})

	suite.Run("validation error on missing name", func() {
		resp := suite.e.POST(path).
			WithHeader("Authorization", suite.authHeader("1")).
			WithJSON(map[string]string{"description": "no name given"}).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object()

		resp.HasValue("status", "error")
		resp.Value("errors").Array().Value(0).Object().
			HasValue("field", "name").
			ContainsKey("message")
	})

	suite.Run("success with default color", func() {
		suite.categoryUCMock.
			On("Create", mock.Anything, int64(1), "Tools", "", "").
			Once().
			Return(&entity.Category{
				ID:     1,
				Name:   "Tools",
				Color:  entity.DefaultCategoryColor,
				UserID: 1,
			}, nil)

		resp := suite.e.POST(path).
			WithHeader("Authorization", suite.authHeader("1")).
			WithJSON(map[string]string{"name": "Tools"}).
			Expect().
			Status(http.StatusCreated).
			JSON().Object()

		resp.HasValue("id", 1)
		resp.HasValue("name", "Tools")
		resp.HasValue("color", "#3b82f6")
		resp.ContainsKey("created_at")
	})
}

func (suite *HandlersTestSuite) TestGetCategory() {
	path := "/api/v1/categories/%v"

	suite.Run("non-numeric id", func() {
		suite.e.GET(fmt.Sprintf(path, "abc")).
			WithHeader("Authorization", suite.authHeader("1")).
			Expect().
			Status(http.StatusNotFound)
	})

	suite.Run("category not found", func() {
		suite.categoryUCMock.
			On("Get", mock.Anything, int64(1), int64(42)).
			Once().
			Return(nil, entity.ErrCategoryNotFound)

		suite.e.GET(fmt.Sprintf(path, 42)).
			WithHeader("Authorization", suite.authHeader("1")).
			Expect().
			Status(http.StatusNotFound)
	})

	suite.Run("owned by another user", func() {
		suite.categoryUCMock.
			On("Get", mock.Anything, int64(1), int64(42)).
			Once().
			Return(nil, entity.ErrPermissionDenied)

		resp := suite.e.GET(fmt.Sprintf(path, 42)).
			WithHeader("Authorization", suite.authHeader("1")).
			Expect().
			Status(http.StatusForbidden).
			JSON().Object()

		resp.HasValue("status", "error")
	})

	suite.Run("success with links attached", func() {
		suite.categoryUCMock.
			On("Get", mock.Anything, int64(1), int64(42)).
			Once().
			Return(&entity.Category{
				ID:                 42,
				Name:               "Tools",
				Color:              "#3b82f6",
				UserID:             1,
				ReferralLinksCount: 1,
				Links: []entity.ReferralLink{
					{ID: 7, Name: "Store X", URL: "https://example.com/ref", CategoryID: 42, UserID: 1},
				},
			}, nil)

		resp := suite.e.GET(fmt.Sprintf(path, 42)).
			WithHeader("Authorization", suite.authHeader("1")).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.HasValue("id", 42)
		resp.Value("referral_links").Array().Length().IsEqual(1)
		resp.Value("referral_links").Array().Value(0).Object().
			HasValue("name", "Store X")
	})
}

func (suite *HandlersTestSuite) TestUpdateCategory() {
	path := "/api/v1/categories/%v"

	suite.Run("validation error on bad color", func() {
		resp := suite.e.PATCH(fmt.Sprintf(path, 42)).
			WithHeader("Authorization", suite.authHeader("1")).
			WithJSON(map[string]string{"color": "blue"}).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object()

		resp.Value("errors").Array().Value(0).Object().
			HasValue("field", "color")
	})

	suite.Run("owned by another user", func() {
		name := "Renamed"

		suite.categoryUCMock.
			On("Update", mock.Anything, int64(1), int64(42), entity.CategoryChanges{Name: &name}).
			Once().
			Return(nil, entity.ErrPermissionDenied)

		suite.e.PATCH(fmt.Sprintf(path, 42)).
			WithHeader("Authorization", suite.authHeader("1")).
			WithJSON(map[string]string{"name": "Renamed"}).
			Expect().
			Status(http.StatusForbidden)
	})

	suite.Run("success", func() {
		name := "Renamed"

		suite.categoryUCMock.
			On("Update", mock.Anything, int64(1), int64(42), entity.CategoryChanges{Name: &name}).
			Once().
			Return(&entity.Category{ID: 42, Name: "Renamed", Color: "#3b82f6", UserID: 1}, nil)

		resp := suite.e.PATCH(fmt.Sprintf(path, 42)).
			WithHeader("Authorization", suite.authHeader("1")).
			WithJSON(map[string]string{"name": "Renamed"}).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.HasValue("name", "Renamed")
	})
}

func (suite *HandlersTestSuite) TestDeleteCategory() {
	path := "/api/v1/categories/%v"

	suite.Run("owned by another user", func() {
		suite.categoryUCMock.
			On("Delete", mock.Anything, int64(1), int64(42)).
			Once().
			Return(entity.ErrPermissionDenied)

		suite.e.DELETE(fmt.Sprintf(path, 42)).
			WithHeader("Authorization", suite.authHeader("1")).
			Expect().
			Status(http.StatusForbidden)
	})

	suite.Run("success", func() {
		suite.categoryUCMock.
			On("Delete", mock.Anything, int64(1), int64(42)).
			Once().
			Return(nil)

		suite.e.DELETE(fmt.Sprintf(path, 42)).
			WithHeader("Authorization", suite.authHeader("1")).
			Expect().
			Status(http.StatusNoContent)
	})
}
