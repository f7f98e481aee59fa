package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vidbrief/backend/internal/api/dto"
	"github.com/vidbrief/backend/internal/pipeline"
	"github.com/vidbrief/backend/internal/pipeline/domain"
)

// summaryCompletedEvent is published to the broker after a record is
// persisted.
type summaryCompletedEvent struct {
	Event     string `json:"event"`
	SummaryID string `json:"summary_id"`
	UserID    string `json:"user_id"`
	CreatedAt string `json:"created_at"`
}

// CreateSummary handles POST /api/v1/summaries
// Accepts a multipart video upload and runs the full pipeline before
// responding; there is no queued or partial state to report on.
func (h *SummaryHandler) CreateSummary(c *gin.Context) {
	h.logger.Info("CreateSummary called",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
	)

	userID := c.PostForm("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "userId is required",
		})
		return
	}

	cfg := domain.DefaultSummaryConfig()
	if v := c.PostForm("summaryLength"); v != "" {
		cfg.Length = v
	}
	if v := c.PostForm("summaryStyle"); v != "" {
		cfg.Style = v
	}
	if raw := c.PostForm("focusAreas"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &cfg.FocusAreas); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "focusAreas must be a JSON array of strings",
			})
			return
		}
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.logger.Error("Missing upload file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "file is required",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open upload", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to process video",
		})
		return
	}
	defer file.Close()

	summaryID, err := h.pipeline.Process(c.Request.Context(), pipeline.Request{
		UserID:      userID,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Content:     file,
		Config:      cfg,
	})
	if err != nil {
		if domain.IsValidationError(err) {
			h.logger.Warn("Upload rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: err.Error(),
			})
			return
		}

		h.logger.Error("Pipeline failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Failed to process video",
			Details: err.Error(),
		})
		return
	}

	h.publishCompleted(c, summaryID, userID)

	c.JSON(http.StatusOK, dto.CreateSummaryResponse{
		Success:   true,
		SummaryID: summaryID,
	})
}

// publishCompleted emits a summary.completed event. Publishing is
// best-effort: the record is already durable, so a broker failure is
// logged and the request still succeeds.
func (h *SummaryHandler) publishCompleted(c *gin.Context, summaryID, userID string) {
	if h.publisher == nil {
		return
	}

	event := summaryCompletedEvent{
		Event:     "summary.completed",
		SummaryID: summaryID,
		UserID:    userID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(event)
	if err != nil {
		h.logger.Warn("Failed to encode completion event",
			slog.String("summary_id", summaryID),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := h.publisher.Publish(c.Request.Context(), body, "application/json"); err != nil {
		h.logger.Warn("Failed to publish completion event",
			slog.String("summary_id", summaryID),
			slog.String("error", err.Error()),
		)
	}
}

// GetSummary handles GET /api/v1/summaries/:summary_id
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	summaryID := c.Param("summary_id")

	h.logger.Info("GetSummary called",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("summary_id", summaryID),
	)

	summary, err := h.store.GetSummaryByID(c.Request.Context(), summaryID)
	if err != nil {
		if errors.Is(err, domain.ErrSummaryNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "Summary not found",
			})
			return
		}

		h.logger.Error("Failed to get summary",
			slog.String("summary_id", summaryID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Failed to retrieve summary",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewSummaryDTO(summary))
}

// ListSummaries handles GET /api/v1/summaries?userId=...
// Returns the user's summaries ordered newest first, or an empty array.
func (h *SummaryHandler) ListSummaries(c *gin.Context) {
	h.logger.Info("ListSummaries called",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("query", c.Request.URL.RawQuery),
	)

	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "User ID is required",
		})
		return
	}

	summaries, err := h.store.ListSummariesByUser(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list summaries",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Failed to list summaries",
			Details: err.Error(),
		})
		return
	}

	response := make([]dto.SummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		response = append(response, dto.NewSummaryDTO(s))
	}

	c.JSON(http.StatusOK, response)
}
