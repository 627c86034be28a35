package controllers

import (
	"github.com/gin-gonic/gin"

	"yournews/internal/services"
	"yournews/pkg/utils"
)

type DirectoryController struct {
	directoryService services.DirectoryServiceInterface
}

func NewDirectoryController(directoryService services.DirectoryServiceInterface) *DirectoryController {
	return &DirectoryController{
		directoryService: directoryService,
	}
}

// Publishers godoc
// @Summary List all publishers
// @Tags Directory
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /publishers [get]
func (d *DirectoryController) Publishers(c *gin.Context) {
	items, err := d.directoryService.ListPublishers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, items, "")
}

// Journalists godoc
// @Summary List all journalists
// @Tags Directory
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /journalists [get]
func (d *DirectoryController) Journalists(c *gin.Context) {
	items, err := d.directoryService.ListJournalists(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, items, "")
}
