package http

import (
	"fmt"
	"net/http"

	"github.com/stretchr/testify/mock"

	"github.com/linkdeck/linkdeck/internal/entity"
)

func (suite *HandlersTestSuite) TestListLinks() {
	const path = "/api/v1/links"

	suite.Run("success without filter", func() {
		suite.linkUCMock.
			On("List", mock.Anything, int64(1), 1, 0, (*int64)(nil)).
			Once().
			Return(&entity.Page[entity.ReferralLink]{
				Items: []entity.ReferralLink{
					{
						ID:         3,
						Name:       "Store X",
						URL:        "https://example.com/ref",
						CategoryID: 7,
						UserID:     1,
						Category:   &entity.Category{ID: 7, Name: "Tools", Color: "#3b82f6", UserID: 1},
					},
				},
				Page:    1,
				PerPage: 15,
				Total:   1,
			}, nil)

		resp := suite.e.GET(path).
			WithHeader("Authorization", suite.authHeader("1")).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.Value("data").Array().Length().IsEqual(1)
		resp.Value("data").Array().Value(0).Object().
			HasValue("name", "Store X").
			HasValue("category_id", 7).
			Value("category").Object().HasValue("name", "Tools")
		resp.Value("meta").Object().
			HasValue("per_page", 15).
			HasValue("total", 1)
	})

	suite.Run("success with category filter", func() {
		categoryID := int64(7)

		suite.linkUCMock.
			On("List", mock.Anything, int64(1), 1, 0, &categoryID).
			Once().
			Return(&entity.Page[entity.ReferralLink]{
				Items:   []entity.ReferralLink{},
				Page:    1,
				PerPage: 15,
				Total:   0,
			}, nil)

		resp := suite.e.GET(path).
			WithQuery("category_id", 7).
			WithHeader("Authorization", suite.authHeader("1")).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.Value("data").Array().IsEmpty()
	})
}

func (suite *HandlersTestSuite) TestCreateLink() {
	const path = "/api/v1/links"

	suite.Run("validation error on all required fields", func() {
		resp := suite.e.POST(path).
			WithHeader("Authorization", suite.authHeader("1")).
			WithJSON(map[string]string{"description": "missing everything"}).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object()

		fields := resp.Value("errors").Array()
		fields.Length().IsEqual(3)
		fields.Value(0).Object().HasValue("field", "name")
		fields.Value(1).Object().HasValue("field", "url")
		fields.Value(2).Object().HasValue("field", "category_id")
	})

	suite.Run("validation error on malformed url", func() {
		resp := suite.e.POST(path).
			WithHeader("Authorization", suite.authHeader("1")).
			WithJSON(map[string]any{
				"name":        "Store X",
				"url":         "not a url",
				"category_id": 7,
			}).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object()

		resp.Value("errors").Array().Value(0).Object().
			HasValue("field", "url")
	})

	suite.Run("category missing or foreign-owned", func() {
		suite.linkUCMock.
			On("Create", mock.Anything, int64(1), int64(7), "Store X", "https://example.com/ref", "").
			Once().
			Return(nil, entity.ErrCategoryNotFound)

		resp := suite.e.POST(path).
			WithHeader("Authorization", suite.authHeader("1")).
			WithJSON(map[string]any{
				"name":        "Store X",
				"url":         "https://example.com/ref",
				"category_id": 7,
			}).
			Expect().
			Status(http.StatusNotFound).
			JSON().Object()

		resp.HasValue("status", "error")
		resp.HasValue("message", "category not found")
	})

	suite.Run("success", func() {
		suite.linkUCMock.
			On("Create", mock.Anything, int64(1), int64(7), "Store X", "https://example.com/ref", "").
			Once().
			Return(&entity.ReferralLink{
				ID:         1,
				Name:       "Store X",
				URL:        "https://example.com/ref",
				CategoryID: 7,
				UserID:     1,
			}, nil)

		resp := suite.e.POST(path).
			WithHeader("Authorization", suite.authHeader("1")).
			WithJSON(map[string]any{
				"name":        "Store X",
				"url":         "https://example.com/ref",
				"category_id": 7,
			}).
			Expect().
			Status(http.StatusCreated).
			JSON().Object()

		resp.HasValue("id", 1)
		resp.HasValue("name", "Store X")
		resp.HasValue("click_count", 0)
	})
}

func (suite *HandlersTestSuite) TestGetLink() {
	path := "/api/v1/links/%v"

	suite.Run("link not found", func() {
		suite.linkUCMock.
			On("Get", mock.Anything, int64(1), int64(42)).
			Once().
			Return(nil, entity.ErrLinkNotFound)

		suite.e.GET(fmt.Sprintf(path, 42)).
			WithHeader("Authorization", suite.authHeader("1")).
			Expect().
			Status(http.StatusNotFound)
	})

	suite.Run("owned by another user", func() {
		suite.linkUCMock.
			On("Get", mock.Anything, int64(1), int64(42)).
			Once().
			Return(nil, entity.ErrPermissionDenied)

		suite.e.GET(fmt.Sprintf(path, 42)).
			WithHeader("Authorization", suite.authHeader("1")).
			Expect().
			Status(http.StatusForbidden)
	})

	suite.Run("success", func() {
		suite.linkUCMock.
			On("Get", mock.Anything, int64(1), int64(42)).
			Once().
			Return(&entity.ReferralLink{
				ID:           42,
				Name:         "Store X",
				URL:          "https://example.com/ref",
				ClickCount:   5,
				SocialShares: entity.SocialShares{"twitter": 3},
				CategoryID:   7,
				UserID:       1,
				Category:     &entity.Category{ID: 7, Name: "Tools", Color: "#3b82f6", UserID: 1},
			}, nil)

		resp := suite.e.GET(fmt.Sprintf(path, 42)).
			WithHeader("Authorization", suite.authHeader("1")).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.HasValue("id", 42)
		resp.HasValue("click_count", 5)
		resp.Value("social_shares").Object().HasValue("twitter", 3)
		resp.Value("category").Object().HasValue("id", 7)
	})
}

func (suite *HandlersTestSuite) TestUpdateLink() {
	path := "/api/v1/links/%v"

	suite.Run("new category missing or foreign-owned", func() {
		categoryID := int64(9)

		suite.linkUCMock.
			On("Update", mock.Anything, int64(1), int64(42), entity.LinkChanges{CategoryID: &categoryID}).
			Once().
			Return(nil, entity.ErrCategoryNotFound)

		suite.e.PATCH(fmt.Sprintf(path, 42)).
			WithHeader("Authorization", suite.authHeader("1")).
			WithJSON(map[string]any{"category_id": 9}).
			Expect().
			Status(http.StatusNotFound)
	})

	suite.Run("success", func() {
		name := "Renamed"

		suite.linkUCMock.
			On("Update", mock.Anything, int64(1), int64(42), entity.LinkChanges{Name: &name}).
			Once().
			Return(&entity.ReferralLink{ID: 42, Name: "Renamed", URL: "https://example.com/ref", CategoryID: 7, UserID: 1}, nil)

		resp := suite.e.PATCH(fmt.Sprintf(path, 42)).
			WithHeader("Authorization", suite.authHeader("1")).
			WithJSON(map[string]string{"name": "Renamed"}).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.HasValue("name", "Renamed")
	})
}

func (suite *HandlersTestSuite) TestDeleteLink() {
	path := "/api/v1/links/%v"

	suite.Run("owned by another user", func() {
		suite.linkUCMock.
			On("Delete", mock.Anything, int64(1), int64(42)).
			Once().
			Return(entity.ErrPermissionDenied)

		suite.e.DELETE(fmt.Sprintf(path, 42)).
			WithHeader("Authorization", suite.authHeader("1")).
			Expect().
			Status(http.StatusForbidden)
	})

	suite.Run("success", func() {
		suite.linkUCMock.
			On("Delete", mock.Anything, int64(1), int64(42)).
			Once().
			Return(nil)

		suite.e.DELETE(fmt.Sprintf(path, 42)).
			WithHeader("Authorization", suite.authHeader("1")).
			Expect().
			Status(http.StatusNoContent)
	})
}
