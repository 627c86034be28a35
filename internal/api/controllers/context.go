package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"yournews/internal/models/db_models"
)

// currentUser pulls the authenticated identity set by the JWT middleware.
func currentUser(c *gin.Context) (uuid.UUID, db_models.Role, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		return uuid.Nil, "", false
	}
	return id, db_models.Role(c.GetString("role")), true
}
