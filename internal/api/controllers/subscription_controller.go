package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"yournews/internal/repositories"
	"yournews/internal/services"
	"yournews/pkg/utils"
)

type SubscriptionController struct {
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
	}
}

// SubscribeJournalist godoc
// @Summary Subscribe to a journalist
// @Tags Subscriptions
// @Produce json
// @Param id path string true "Journalist ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /journalists/{id}/subscribe [post]
func (s *SubscriptionController) SubscribeJournalist(c *gin.Context) {
	s.toggle(c, "journalist", true)
}

// UnsubscribeJournalist godoc
// @Summary Unsubscribe from a journalist
// @Tags Subscriptions
// @Produce json
// @Param id path string true "Journalist ID"
// @Success 200 {object} utils.APIResponse
// @Router /journalists/{id}/unsubscribe [post]
func (s *SubscriptionController) UnsubscribeJournalist(c *gin.Context) {
	s.toggle(c, "journalist", false)
}

// SubscribePublisher godoc
// @Summary Subscribe to a publisher
// @Tags Subscriptions
// @Produce json
// @Param id path string true "Publisher ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /publishers/{id}/subscribe [post]
func (s *SubscriptionController) SubscribePublisher(c *gin.Context) {
	s.toggle(c, "publisher", true)
}

// UnsubscribePublisher godoc
// @Summary Unsubscribe from a publisher
// @Tags Subscriptions
// @Produce json
// @Param id path string true "Publisher ID"
// @Success 200 {object} utils.APIResponse
// @Router /publishers/{id}/unsubscribe [post]
func (s *SubscriptionController) UnsubscribePublisher(c *gin.Context) {
	s.toggle(c, "publisher", false)
}

func (s *SubscriptionController) toggle(c *gin.Context, target string, subscribe bool) {
	userID, role, ok := currentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid id")
		return
	}

	var outcome repositories.SubscribeOutcome
	switch {
	case target == "journalist" && subscribe:
		outcome, err = s.subscriptionService.SubscribeJournalist(c.Request.Context(), userID, role, targetID)
	case target == "journalist":
		outcome, err = s.subscriptionService.UnsubscribeJournalist(c.Request.Context(), userID, role, targetID)
	case subscribe:
		outcome, err = s.subscriptionService.SubscribePublisher(c.Request.Context(), userID, role, targetID)
	default:
		outcome, err = s.subscriptionService.UnsubscribePublisher(c.Request.Context(), userID, role, targetID)
	}
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"outcome": outcome}, "")
}

// Overview godoc
// @Summary The reader's active subscriptions and unlocked articles
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /subscriptions [get]
func (s *SubscriptionController) Overview(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	overview, err := s.subscriptionService.Overview(c.Request.Context(), userID, role)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, overview, "")
}
