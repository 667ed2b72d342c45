package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HomeHandler renders the landing page.
type HomeHandler struct{}

// NewHomeHandler creates a new home handler.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home handles GET / and renders the landing page with links into the
// author and quote sections.
func (h *HomeHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title": "Quotekeeper",
	})
}

// RegisterRoutes registers the landing page route.
func (h *HomeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.Home)
}
