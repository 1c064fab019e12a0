package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/feedback_ai/backend/internal/models"
	"github.com/feedback_ai/backend/internal/service"
)

type Handler struct {
	Service   *service.FeedbackService
	Validator *validator.Validate
	Logger    zerolog.Logger
}

type SubmitRequest struct {
	Rating *int   `json:"rating" validate:"required,min=1,max=5"`
	Review string `json:"review" validate:"required,max=1000"`
}

type SubmitResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	AIResponse string `json:"ai_response"`
}

type ratingCount struct {
	Rating int
	Count  int
}

type pinger interface {
	Ping(ctx context.Context) error
}

func (h *Handler) Healthz(c *gin.Context) {
	if p, ok := h.Service.Store.(pinger); ok {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			h.Logger.Error().Err(err).Msg("store ping failed")
			writeError(c, http.StatusServiceUnavailable, "Storage unavailable")
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "ai_enabled": h.Service.AIEnabled()})
}

func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "user.html", nil)
}

func (h *Handler) Admin(c *gin.Context) {
	stats, reviews := h.Service.Stats(c.Request.Context())

	newestFirst := make([]models.Review, len(reviews))
	for i, r := range reviews {
		newestFirst[len(reviews)-1-i] = r
	}
	counts := make([]ratingCount, 0, 5)
	for r := 5; r >= 1; r-- {
		counts = append(counts, ratingCount{Rating: r, Count: stats.RatingCounts[r]})
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Stats":   stats,
		"Counts":  counts,
		"Reviews": newestFirst,
	})
}

// @Summary Submit a review
// @Description Stores a rating and review and returns the reply for the customer
// @Tags reviews
// @Accept json
// @Produce json
// @Param body body SubmitRequest true "rating 1-5 and review text"
// @Success 200 {object} SubmitResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /submit [post]
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request: rating must be an integer and review a string")
		return
	}
	req.Review = strings.TrimSpace(req.Review)
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, validationMessage(err))
		return
	}

	review, err := h.Service.Submit(c.Request.Context(), *req.Rating, req.Review)
	if err != nil {
		h.Logger.Error().Err(err).Msg("submit review failed")
		writeError(c, http.StatusInternalServerError, "Failed to save review")
		return
	}

	c.JSON(http.StatusOK, SubmitResponse{
		Success:    true,
		Message:    "Review submitted successfully!",
		AIResponse: review.AIResponse,
	})
}

// @Summary Export reviews
// @Tags reviews
// @Produce json
// @Success 200 {array} models.Review
// @Router /export [get]
func (h *Handler) Export(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Export(c.Request.Context()))
}

// @Summary Review statistics
// @Tags reviews
// @Produce json
// @Success 200 {object} models.Stats
// @Router /api/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	stats, _ := h.Service.Stats(c.Request.Context())
	c.JSON(http.StatusOK, stats)
}

func writeError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Validation failed"
	}
	fe := verrs[0]
	switch fe.Field() {
	case "Rating":
		return "Rating must be between 1 and 5"
	case "Review":
		if fe.Tag() == "max" {
			return "Review too long (max 1000 characters)"
		}
		return "Please write a review"
	}
	return fe.Field() + " is " + fe.Tag()
}
