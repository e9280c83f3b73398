package controllers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// CMSAuthCallback receives the OAuth authorization code from the git
// provider and bounces it back to the CMS admin screen, which finishes
// the handshake client-side.
func CMSAuthCallback() gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Query("code")
		if code == "" {
			c.String(http.StatusBadRequest, "Missing authorization code")
			return
		}
		c.Redirect(http.StatusFound, "/admin?auth="+url.QueryEscape(code))
	}
}
