// Package handler contains the gin HTTP handlers for the discovery API.
package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shortscout/shorts-discovery-go/internal/export"
	"github.com/shortscout/shorts-discovery-go/internal/models"
	"github.com/shortscout/shorts-discovery-go/internal/service"
	"github.com/shortscout/shorts-discovery-go/internal/validation"
	"github.com/shortscout/shorts-discovery-go/pkg/logger"
)

const emptyResultSuggestion = "No videos matched your filters. Try increasing days to search, " +
	"lowering minimum views, increasing max channel subscribers, or lowering engagement/virality minimums."

// Discoverer runs one discovery pipeline pass.
type Discoverer interface {
	Discover(ctx context.Context, req models.DiscoveryRequest) (*models.DiscoveryResult, error)
}

// DiscoveryHandler handles discovery-related HTTP requests.
type DiscoveryHandler struct {
	discoverer Discoverer
}

// NewDiscoveryHandler creates a new DiscoveryHandler instance.
func NewDiscoveryHandler(discoverer Discoverer) *DiscoveryHandler {
	return &DiscoveryHandler{discoverer: discoverer}
}

// HandleDiscovery runs the pipeline for one request and returns the
// ranked result collection.
func (h *DiscoveryHandler) HandleDiscovery(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	result, err := h.discoverer.Discover(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponseDTO(result))
}

// HandleExport runs the pipeline and streams the result as a file
// attachment. The gateway cache makes the re-run of a just-viewed
// request cheap and byte-identical.
func (h *DiscoveryHandler) HandleExport(c *gin.Context) {
	format, err := export.ParseFormat(c.DefaultQuery("format", "csv"))
	if err != nil {
		h.badRequest(c, err.Error())
		return
	}

	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	result, err := h.discoverer.Discover(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	filename := export.Filename(result.Niche, format, time.Now())
	c.Header("Content-Type", format.ContentType())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	if err := export.Write(c.Writer, format, result.Rows); err != nil {
		logger.Log.Error("export write failed",
			zap.Error(err),
			zap.String("format", string(format)),
			zap.String("run_id", result.RunID.String()),
		)
	}
}

// bindRequest binds and validates the request body. On failure it has
// already written the error response and returns ok=false.
func (h *DiscoveryHandler) bindRequest(c *gin.Context) (models.DiscoveryRequest, bool) {
	var dto models.DiscoveryRequestDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		logger.Log.Warn("invalid request payload",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		h.badRequest(c, "Invalid request payload: "+err.Error())
		return models.DiscoveryRequest{}, false
	}

	req := toDiscoveryRequest(&dto)
	if err := validation.ValidateRequest(&req); err != nil {
		h.badRequest(c, err.Error())
		return models.DiscoveryRequest{}, false
	}

	return req, true
}

func (h *DiscoveryHandler) handleError(c *gin.Context, err error) {
	switch err.(type) {
	case *service.ValidationError:
		logger.Log.Warn("validation error",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		h.badRequest(c, err.Error())
	default:
		logger.Log.Error("discovery run failed",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Status:    http.StatusInternalServerError,
			Error:     "Internal Server Error",
			Message:   "Failed to run discovery",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
	}
}

func (h *DiscoveryHandler) badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Status:    http.StatusBadRequest,
		Error:     "Bad Request",
		Message:   message,
		Timestamp: time.Now(),
		Path:      c.Request.URL.Path,
	})
}

// toDiscoveryRequest maps the HTTP DTO to the pipeline request,
// splitting the newline-separated custom keyword text into a list.
func toDiscoveryRequest(dto *models.DiscoveryRequestDTO) models.DiscoveryRequest {
	var customKeywords []string
	for _, line := range strings.Split(dto.CustomKeywords, "\n") {
		if kw := strings.TrimSpace(line); kw != "" {
			customKeywords = append(customKeywords, kw)
		}
	}

	return models.DiscoveryRequest{
		Niche:             dto.Niche,
		CustomKeywords:    customKeywords,
		DaysBack:          dto.DaysBack,
		Region:            dto.Region,
		ResultsPerKeyword: dto.ResultsPerKeyword,
		MinViews:          dto.MinViews,
		MaxSubscribers:    dto.MaxSubscribers,
		MinEngagement:     dto.MinEngagement,
		MinVirality:       dto.MinVirality,
		MinDurationSec:    dto.MinDurationSec,
		MaxDurationSec:    dto.MaxDurationSec,
	}
}

func toResponseDTO(result *models.DiscoveryResult) models.DiscoveryResponseDTO {
	dto := models.DiscoveryResponseDTO{
		RunID:           result.RunID,
		Niche:           result.Niche,
		Region:          result.Region,
		Rows:            result.Rows,
		Summary:         result.Summary,
		KeywordStats:    result.KeywordStats,
		TopByVirality:   result.TopByVirality,
		TopByEngagement: result.TopByEngagement,
		Warnings:        result.Warnings,
	}
	if len(result.Rows) == 0 {
		dto.Suggestion = emptyResultSuggestion
	}
	return dto
}
