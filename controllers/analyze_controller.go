package controllers

import (
	"encoding/base64"
	"io"
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AnalyzeController struct {
	vision *services.VisionService
	log    *zap.Logger
}

func NewAnalyzeController(vision *services.VisionService, log *zap.Logger) *AnalyzeController {
	return &AnalyzeController{vision: vision, log: log}
}

// POST /analyze — multipart field "image" → calorie estimate.
// The estimate is returned to the client for confirmation; nothing is
// written to the ledger here.
func (ac *AnalyzeController) AnalyzeImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ac.log.Error("Error reading uploaded image", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze image"})
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		ac.log.Error("Error reading uploaded image", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze image"})
		return
	}

	estimate, err := ac.vision.AnalyzeImage(base64.StdEncoding.EncodeToString(raw))
	if err != nil {
		ac.log.Error("Error analyzing image", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze image"})
		return
	}
	c.JSON(http.StatusOK, estimate)
}
