package admin

import (
	"net/http"
	"time"

	"feedback-admin/internal/database"
	"feedback-admin/internal/model"
	"feedback-admin/internal/service"

	"github.com/labstack/echo/v4"
)

var (
	buildAnalytics = service.BuildAnalytics
	timeNow        = time.Now
)

// AnalyticsErrorResponse 報表失敗時的回應
// swagger:model AnalyticsErrorResponse
type AnalyticsErrorResponse struct {
	Error string `json:"error" example:"Failed to load analytics"`
}

// AnalyticsHandler 回傳議題統計；category 不在列舉內時視為全部
// @Summary     Admin analytics
// @Description 總數、票數前五、分類分佈與近七日趨勢
// @Tags        admin
// @Produce     json
// @Param       category query    string false "分類篩選" Enums(All, Academics, Faculty, Infrastructure, Hostel, Administration, Other)
// @Success     200      {object} service.AnalyticsReport
// @Failure     401      {object} api.ErrorResponse
// @Failure     403      {object} api.ErrorResponse
// @Failure     500      {object} AnalyticsErrorResponse
// @Security    CookieAuth
// @Router      /admin/analytics [get]
func AnalyticsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		category, _ := model.ParseCategory(c.QueryParam("category"))

		report, err := buildAnalytics(c.Request().Context(), db, category, timeNow())
		if err != nil {
			c.Logger().Errorf("analytics: %v", err)
			return c.JSON(http.StatusInternalServerError, AnalyticsErrorResponse{Error: "Failed to load analytics"})
		}
		return c.JSON(http.StatusOK, report)
	}
}
