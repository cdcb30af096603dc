package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minthura/astrologic/internal/domain/synthesis"
	apperrors "github.com/minthura/astrologic/pkg/errors"
)

// Handler wires the HTTP transport to the synthesis domain.
type Handler struct {
	synthesisSvc synthesis.Service
	logger       *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(synthesisSvc synthesis.Service, logger *slog.Logger) *Handler {
	return &Handler{
		synthesisSvc: synthesisSvc,
		logger:       logger.With("component", "http.handler"),
	}
}

// Root reports liveness.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "AstroLogic AI",
		"status":  "ok",
	})
}

// Synthesize computes the synthesis object and narrates it.
func (h *Handler) Synthesize(c *gin.Context) {
	var req synthesis.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.synthesisSvc.Synthesize(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, classifyError(err, "synthesis_failed"))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SynthesizeData computes the synthesis object without any AI narration.
func (h *Handler) SynthesizeData(c *gin.Context) {
	var req synthesis.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	payload, err := h.synthesisSvc.SynthesizeData(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, classifyError(err, "synthesis_failed"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"synthesis": payload})
}

// RecentReadings lists the latest archived readings.
func (h *Handler) RecentReadings(c *gin.Context) {
	records, err := h.synthesisSvc.RecentReadings(c.Request.Context())
	if err != nil {
		abortWithError(c, classifyError(err, "readings_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"readings": records})
}

func classifyError(err error, fallbackCode string) *HTTPError {
	status := http.StatusInternalServerError
	code := fallbackCode
	switch {
	case apperrors.IsCode(err, "invalid_input"):
		status = http.StatusBadRequest
		code = "invalid_request"
	case apperrors.IsCode(err, "geocode_error"):
		status = http.StatusBadGateway
		code = "geocode_error"
	case apperrors.IsCode(err, "llm_error"):
		status = http.StatusBadGateway
		code = "llm_error"
	case apperrors.IsCode(err, "storage_error"):
		code = "storage_error"
	}
	return NewHTTPError(status, code, errMessage(err), err)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
