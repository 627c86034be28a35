package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yournews/internal/services"
	"yournews/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// Editor godoc
// @Summary The editor's review queue grouped by status
// @Tags Dashboards
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /dashboards/editor [get]
func (d *DashboardController) Editor(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	dashboard, err := d.dashboardService.EditorDashboard(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, dashboard, "")
}

// Journalist godoc
// @Summary The journalist's own output grouped by status
// @Tags Dashboards
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /dashboards/journalist [get]
func (d *DashboardController) Journalist(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	dashboard, err := d.dashboardService.JournalistDashboard(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, dashboard, "")
}

// Publisher godoc
// @Summary The publisher's roster and aggregate counts
// @Tags Dashboards
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /dashboards/publisher [get]
func (d *DashboardController) Publisher(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	dashboard, err := d.dashboardService.PublisherDashboard(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, dashboard, "")
}
