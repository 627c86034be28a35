package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"yournews/internal/models/request_models"
	"yournews/internal/models/response_models"
	"yournews/internal/services"
	"yournews/pkg/utils"
)

type NewsletterController struct {
	newsletterService services.NewsletterServiceInterface
}

func NewNewsletterController(newsletterService services.NewsletterServiceInterface) *NewsletterController {
	return &NewsletterController{
		newsletterService: newsletterService,
	}
}

// List godoc
// @Summary List newsletters visible to the caller
// @Tags Newsletters
// @Produce json
// @Param page query int false "Page number"
// @Success 200 {object} utils.APIResponse
// @Router /newsletters [get]
func (n *NewsletterController) List(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	page, err := utils.ParsePage(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	items, count, err := n.newsletterService.ListVisible(c.Request.Context(), userID, role, page, utils.DefaultPageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	next, previous := utils.PageLinks(c, page, utils.DefaultPageSize, count)
	utils.RespondSuccess(c, response_models.PagedResponse{
		Count:    count,
		Next:     next,
		Previous: previous,
		Results:  items,
	}, "")
}

// Detail godoc
// @Summary Fetch one newsletter
// @Tags Newsletters
// @Produce json
// @Param id path string true "Newsletter ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /newsletters/{id} [get]
func (n *NewsletterController) Detail(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	newsletterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid newsletter id")
		return
	}

	resp, err := n.newsletterService.GetDetail(c.Request.Context(), userID, role, newsletterID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}

// Create godoc
// @Summary Publish a newsletter
// @Tags Newsletters
// @Accept json
// @Produce json
// @Param request body request_models.NewsletterCreateRequest true "Newsletter payload"
// @Success 201 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /newsletters [post]
func (n *NewsletterController) Create(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	var req request_models.NewsletterCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := n.newsletterService.Create(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, resp, "Newsletter published")
}

// Update godoc
// @Summary Update a newsletter
// @Tags Newsletters
// @Accept json
// @Produce json
// @Param id path string true "Newsletter ID"
// @Param request body request_models.NewsletterUpdateRequest true "Newsletter payload"
// @Success 200 {object} utils.APIResponse
// @Router /newsletters/{id} [put]
func (n *NewsletterController) Update(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	newsletterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid newsletter id")
		return
	}

	var req request_models.NewsletterUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := n.newsletterService.Update(c.Request.Context(), userID, role, newsletterID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Newsletter updated")
}

// Delete godoc
// @Summary Delete a newsletter
// @Tags Newsletters
// @Produce json
// @Param id path string true "Newsletter ID"
// @Success 200 {object} utils.APIResponse
// @Router /newsletters/{id} [delete]
func (n *NewsletterController) Delete(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	newsletterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid newsletter id")
		return
	}

	if err := n.newsletterService.Delete(c.Request.Context(), userID, role, newsletterID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Newsletter deleted")
}
