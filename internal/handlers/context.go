package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ManosLatam/marketplace-api/internal/middleware"
)

func currentUserID(c *gin.Context) uint {
	v, _ := c.Get(middleware.ContextUserID)
	id, _ := v.(uint)
	return id
}

func currentUserRole(c *gin.Context) string {
	v, _ := c.Get(middleware.ContextUserRole)
	role, _ := v.(string)
	return role
}

func paramID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
