package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes payload with the given status.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// Created writes a 201 with a Location header pointing at the new resource.
func Created(c *gin.Context, location string, payload any) {
	if location != "" {
		c.Header("Location", location)
	}
	c.JSON(http.StatusCreated, payload)
}

// NoContent writes an empty 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
	c.Writer.WriteHeaderNow()
}
