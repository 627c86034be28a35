package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

const DefaultPageSize = 20

// ParsePage reads the ?page= query parameter, defaulting to 1.
func ParsePage(c *gin.Context) (int, error) {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return 0, ErrInvalidPage
	}
	return page, nil
}

// PageLinks builds the next/previous URLs for the list envelope, preserving
// the request path. Nil at either edge.
func PageLinks(c *gin.Context, page, pageSize int, count int64) (next *string, previous *string) {
	base := c.Request.URL.Path

	link := func(p int) *string {
		s := fmt.Sprintf("%s?page=%d", base, p)
		return &s
	}

	if int64(page*pageSize) < count {
		next = link(page + 1)
	}
	if page > 1 {
		previous = link(page - 1)
	}
	return next, previous
}
