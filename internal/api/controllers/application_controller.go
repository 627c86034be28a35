package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"yournews/internal/models/request_models"
	"yournews/internal/services"
	"yournews/pkg/utils"
)

type ApplicationController struct {
	applicationService services.ApplicationServiceInterface
}

func NewApplicationController(applicationService services.ApplicationServiceInterface) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
	}
}

// Submit godoc
// @Summary Apply for a role
// @Tags Applications
// @Accept json
// @Produce json
// @Param request body request_models.RoleApplicationRequest true "Application payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /applications [post]
func (a *ApplicationController) Submit(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	var req request_models.RoleApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.applicationService.Submit(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, resp, "Application submitted")
}

// ListMine godoc
// @Summary List the caller's applications
// @Tags Applications
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /applications/mine [get]
func (a *ApplicationController) ListMine(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	items, err := a.applicationService.ListMine(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "")
}

// ListAll godoc
// @Summary List every application (staff only)
// @Tags Applications
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /applications [get]
func (a *ApplicationController) ListAll(c *gin.Context) {
	items, err := a.applicationService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "")
}

// Approve godoc
// @Summary Approve an application (staff only)
// @Tags Applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param request body request_models.ApplicationDecisionRequest false "Decision payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /applications/{id}/approve [post]
func (a *ApplicationController) Approve(c *gin.Context) {
	a.decide(c, true)
}

// Reject godoc
// @Summary Reject an application (staff only)
// @Tags Applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /applications/{id}/reject [post]
func (a *ApplicationController) Reject(c *gin.Context) {
	a.decide(c, false)
}

func (a *ApplicationController) decide(c *gin.Context, approve bool) {
	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid application id")
		return
	}

	var publisherID *uuid.UUID
	if approve {
		var req request_models.ApplicationDecisionRequest
		// Body is optional; a publisher application needs none.
		if err := c.ShouldBindJSON(&req); err == nil && req.PublisherID != nil {
			parsed, err := uuid.Parse(*req.PublisherID)
			if err != nil {
				utils.RespondError(c, http.StatusBadRequest, "Invalid publisher id")
				return
			}
			publisherID = &parsed
		}
	}

	resp, err := a.applicationService.Decide(c.Request.Context(), applicationID, approve, publisherID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if approve {
		utils.RespondSuccess(c, resp, "Application approved")
		return
	}
	utils.RespondSuccess(c, resp, "Application rejected")
}
