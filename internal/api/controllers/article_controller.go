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

type ArticleController struct {
	articleService services.ArticleServiceInterface
}

func NewArticleController(articleService services.ArticleServiceInterface) *ArticleController {
	return &ArticleController{
		articleService: articleService,
	}
}

// List godoc
// @Summary List approved articles visible to the caller
// @Tags Articles
// @Produce json
// @Param page query int false "Page number"
// @Success 200 {object} utils.APIResponse
// @Router /articles [get]
func (a *ArticleController) List(c *gin.Context) {
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

	items, count, err := a.articleService.ListVisible(c.Request.Context(), userID, role, page, utils.DefaultPageSize)
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
// @Summary Fetch one article
// @Tags Articles
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /articles/{id} [get]
func (a *ArticleController) Detail(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid article id")
		return
	}

	resp, err := a.articleService.GetDetail(c.Request.Context(), userID, role, articleID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}

// Create godoc
// @Summary Submit an article for review
// @Tags Articles
// @Accept json
// @Produce json
// @Param request body request_models.ArticleCreateRequest true "Article payload"
// @Success 201 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /articles [post]
func (a *ArticleController) Create(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	var req request_models.ArticleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.articleService.Create(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, resp, "Article submitted, waiting for editor approval")
}

// Update godoc
// @Summary Update an article
// @Tags Articles
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Param request body request_models.ArticleUpdateRequest true "Article payload"
// @Success 200 {object} utils.APIResponse
// @Router /articles/{id} [put]
func (a *ArticleController) Update(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid article id")
		return
	}

	var req request_models.ArticleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.articleService.Update(c.Request.Context(), userID, role, articleID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Article updated")
}

// Delete godoc
// @Summary Delete an article
// @Tags Articles
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} utils.APIResponse
// @Router /articles/{id} [delete]
func (a *ArticleController) Delete(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid article id")
		return
	}

	if err := a.articleService.Delete(c.Request.Context(), userID, role, articleID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Article deleted")
}

// ByJournalist godoc
// @Summary List a journalist's approved articles
// @Tags Articles
// @Produce json
// @Param journalist_id query string true "Journalist ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /articles/by_journalist [get]
func (a *ArticleController) ByJournalist(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	raw := c.Query("journalist_id")
	if raw == "" {
		utils.RespondError(c, http.StatusBadRequest, "journalist_id parameter is required")
		return
	}
	journalistID, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid journalist id")
		return
	}

	items, err := a.articleService.ByJournalist(c.Request.Context(), userID, role, journalistID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "")
}

// ByPublisher godoc
// @Summary List a publisher's approved articles
// @Tags Articles
// @Produce json
// @Param publisher_id query string true "Publisher ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /articles/by_publisher [get]
func (a *ArticleController) ByPublisher(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	raw := c.Query("publisher_id")
	if raw == "" {
		utils.RespondError(c, http.StatusBadRequest, "publisher_id parameter is required")
		return
	}
	publisherID, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid publisher id")
		return
	}

	items, err := a.articleService.ByPublisher(c.Request.Context(), userID, role, publisherID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "")
}

// Approve godoc
// @Summary Approve a pending article
// @Tags Articles
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /articles/{id}/approve [post]
func (a *ArticleController) Approve(c *gin.Context) {
	a.decide(c, true)
}

// Reject godoc
// @Summary Reject a pending article
// @Tags Articles
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /articles/{id}/reject [post]
func (a *ArticleController) Reject(c *gin.Context) {
	a.decide(c, false)
}

func (a *ArticleController) decide(c *gin.Context, approve bool) {
	userID, _, ok := currentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid article id")
		return
	}

	if approve {
		err = a.articleService.Approve(c.Request.Context(), userID, articleID)
	} else {
		err = a.articleService.Reject(c.Request.Context(), userID, articleID)
	}
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if approve {
		utils.RespondSuccess(c, nil, "Article approved")
		return
	}
	utils.RespondSuccess(c, nil, "Article rejected")
}
