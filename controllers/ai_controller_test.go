package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/SRSager/bucks-county-fence/config"
)

func TestGenerateImageRequiresPrompt(t *testing.T) {
	r := gin.New()
	r.POST("/api/generate-image", GenerateImage(config.Config{GeminiAPIKey: "key"}))

	w := postJSON(t, r, "/api/generate-image", GenerateImageRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Prompt is required")
}

func TestGenerateImageUnconfigured(t *testing.T) {
	r := gin.New()
	r.POST("/api/generate-image", GenerateImage(config.Config{}))

	w := postJSON(t, r, "/api/generate-image", GenerateImageRequest{Prompt: "cedar privacy fence"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
