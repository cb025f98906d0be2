package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parsePagination reads page/page_size query parameters with defaults
func parsePagination(c *gin.Context) (page, pageSize int) {
	page = 1
	pageSize = 20

	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.Query("page_size")); err == nil && v > 0 && v <= 200 {
		pageSize = v
	}
	return page, pageSize
}
