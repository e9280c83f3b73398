package controllers

import (
	"context"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SRSager/bucks-county-fence/config"
	"github.com/SRSager/bucks-county-fence/utils"
)

type GenerateImageRequest struct {
	Prompt string `json:"prompt"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// GenerateImage proxies marketing image generation to Gemini so the API
// key never reaches the browser.
func GenerateImage(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GenerateImageRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
			return
		}
		if cfg.GeminiAPIKey == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image generation not configured"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
		defer cancel()

		client, err := utils.NewAIClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ai client error"})
			return
		}
		defer client.Close()

		data, mimeType, err := utils.GenerateImage(ctx, client, cfg.GeminiImageModel, req.Prompt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gemini API error: " + err.Error()})
			return
		}
		if len(data) == 0 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No image generated"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"imageData": base64.StdEncoding.EncodeToString(data),
			"mimeType":  mimeType,
		})
	}
}
