package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/solucoes-solares/shadow-api/internal/report"
	"github.com/solucoes-solares/shadow-api/internal/usecase"
)

// Handler handles HTTP requests for shadow analyses and reports.
type Handler struct {
	analysisUC *usecase.AnalysisUseCase
	letterhead report.Letterhead
}

// NewHandler creates a new HTTP handler.
func NewHandler(analysisUC *usecase.AnalysisUseCase, letterhead report.Letterhead) *Handler {
	return &Handler{
		analysisUC: analysisUC,
		letterhead: letterhead,
	}
}

// GetSeasonal handles GET /v1/shadows/seasonal.
func (h *Handler) GetSeasonal(c *gin.Context) {
	req := usecase.AnalysisRequest{}

	// Optional query overrides for the configured site.
	if latStr := c.Query("lat"); latStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid latitude: %v", err)})
			return
		}
		req.Lat = &lat
	}
	if lonStr := c.Query("lon"); lonStr != "" {
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid longitude: %v", err)})
			return
		}
		req.Lon = &lon
	}
	if heightStr := c.Query("height_m"); heightStr != "" {
		height, err := strconv.ParseFloat(heightStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid height_m: %v", err)})
			return
		}
		req.HeightM = &height
	}

	resp, err := h.analysisUC.Execute(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetReport handles GET /v1/shadows/report.
func (h *Handler) GetReport(c *gin.Context) {
	params, err := h.reportParams()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := report.RenderHTML(c.Writer, params); err != nil {
		// Headers are already out; nothing left but to abort the stream.
		_ = c.Error(err)
	}
}

// GetReportPDF handles GET /v1/shadows/report.pdf.
func (h *Handler) GetReportPDF(c *gin.Context) {
	params, err := h.reportParams()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="shadow-report.pdf"`)
	c.Status(http.StatusOK)
	if err := report.RenderPDF(c.Writer, params); err != nil {
		_ = c.Error(err)
	}
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) reportParams() (report.Params, error) {
	shadows, err := h.analysisUC.SeasonalShadows()
	if err != nil {
		return report.Params{}, fmt.Errorf("failed to compute seasonal shadows: %w", err)
	}
	return report.Params{
		Letterhead:  h.letterhead,
		Site:        h.analysisUC.Site(),
		Obstacle:    h.analysisUC.Obstacle(),
		Shadows:     shadows,
		GeneratedAt: time.Now(),
	}, nil
}
