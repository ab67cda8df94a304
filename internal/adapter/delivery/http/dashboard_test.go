package http

import (
	"errors"
	"net/http"

	"github.com/stretchr/testify/mock"

	"github.com/linkdeck/linkdeck/internal/entity"
)

func (suite *HandlersTestSuite) TestDashboard() {
	const path = "/api/v1/dashboard"

	suite.Run("server error", func() {
		suite.dashboardUCMock.
			On("Summary", mock.Anything, int64(1)).
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
		suite.dashboardUCMock.
			On("Summary", mock.Anything, int64(1)).
			Once().
			Return(&entity.Dashboard{
				TotalCategories: 2,
				TotalLinks:      3,
				TotalClicks:     100,
				RecentCategories: []entity.Category{
					{ID: 2, Name: "Tools", Color: "#3b82f6", UserID: 1, ReferralLinksCount: 2},
				},
				RecentLinks: []entity.ReferralLink{
					{ID: 3, Name: "Newest", URL: "https://example.com/new", CategoryID: 2, UserID: 1},
				},
				TopLinks: []entity.ReferralLink{
					{ID: 1, Name: "Popular", URL: "https://example.com/top", ClickCount: 90, CategoryID: 2, UserID: 1},
					{ID: 3, Name: "Newest", URL: "https://example.com/new", ClickCount: 10, CategoryID: 2, UserID: 1},
				},
			}, nil)

		resp := suite.e.GET(path).
			WithHeader("Authorization", suite.authHeader("1")).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.Value("stats").Object().
			HasValue("total_categories", 2).
			HasValue("total_links", 3).
			HasValue("total_clicks", 100)
		resp.Value("recent_categories").Array().Length().IsEqual(1)
		resp.Value("recent_links").Array().Length().IsEqual(1)
		resp.Value("top_links").Array().Length().IsEqual(2)
		resp.Value("top_links").Array().Value(0).Object().
			HasValue("name", "Popular").
			HasValue("click_count", 90)
	})

	suite.Run("empty account", func() {
		suite.dashboardUCMock.
			On("Summary", mock.Anything, int64(1)).
			Once().
			Return(&entity.Dashboard{
				RecentCategories: []entity.Category{},
				RecentLinks:      []entity.ReferralLink{},
				TopLinks:         []entity.ReferralLink{},
			}, nil)

		resp := suite.e.GET(path).
			WithHeader("Authorization", suite.authHeader("1")).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.Value("stats").Object().
			HasValue("total_categories", 0).
			HasValue("total_links", 0).
			HasValue("total_clicks", 0)
		resp.Value("recent_categories").Array().IsEmpty()
		resp.Value("recent_links").Array().IsEmpty()
		resp.Value("top_links").Array().IsEmpty()
	})
}
