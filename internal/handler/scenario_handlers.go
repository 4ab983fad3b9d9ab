package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"

	"github.com/AlexGerus/dolf-charts/internal/chart"
	"github.com/AlexGerus/dolf-charts/internal/format"
	"github.com/AlexGerus/dolf-charts/internal/model"
	"github.com/AlexGerus/dolf-charts/internal/stats"
	"github.com/AlexGerus/dolf-charts/internal/store"
	"github.com/AlexGerus/dolf-charts/internal/upload"
)

var (
	uploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dolfcharts_uploads_total",
			Help: "Total number of upload batches by outcome",
		},
		[]string{"status"},
	)
	uploadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dolfcharts_upload_duration_seconds",
			Help:    "Upload batch processing duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)
	scenariosStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dolfcharts_scenarios_stored",
			Help: "Number of scenarios currently in the store",
		},
	)
)

// ScenarioHandler serves the scenario REST surface.
type ScenarioHandler struct {
	coordinator *upload.Coordinator
	store       *store.Store
	logger      *logrus.Logger
}

// NewScenarioHandler creates a ScenarioHandler.
func NewScenarioHandler(coordinator *upload.Coordinator, st *store.Store, logger *logrus.Logger) *ScenarioHandler {
	return &ScenarioHandler{
		coordinator: coordinator,
		store:       st,
		logger:      logger,
	}
}

// Upload accepts a multipart batch under the "files" field and runs it
// through the upload coordinator. Any batch failure maps to 400 with the
// coordinator's message; nothing of a failed batch reaches the store.
func (h *ScenarioHandler) Upload(c *gin.Context) {
	timer := prometheus.NewTimer(uploadDuration)
	defer timer.ObserveDuration()

	form, err := c.MultipartForm()
	if err != nil {
		uploadsTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to upload files"})
		return
	}

	headers := form.File["files"]
	files := make([]upload.File, 0, len(headers))
	for _, fh := range headers {
		files = append(files, fileFromHeader(fh))
	}

	scenarios, err := h.coordinator.HandleUpload(c.Request.Context(), files)
	if err != nil {
		uploadsTotal.WithLabelValues("rejected").Inc()
		h.logger.WithError(err).Warn("Upload batch rejected")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uploadsTotal.WithLabelValues("accepted").Inc()
	scenariosStored.Set(float64(h.store.Count()))
	c.JSON(http.StatusCreated, gin.H{"scenarios": scenarios, "count": h.store.Count()})
}

func fileFromHeader(fh *multipart.FileHeader) upload.File {
	return upload.File{
		Name: fh.Filename,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

// List returns the full scenario snapshot.
func (h *ScenarioHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"scenarios": h.store.Scenarios()})
}

// Count returns the number of stored scenarios.
func (h *ScenarioHandler) Count(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": h.store.Count()})
}

// Remove drops the scenario at the given index. An out-of-range index is a
// no-op, mirroring the store's lenient removal policy, and still returns 200.
func (h *ScenarioHandler) Remove(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scenario index"})
		return
	}

	h.store.Remove(index)
	scenariosStored.Set(float64(h.store.Count()))
	c.JSON(http.StatusOK, gin.H{"count": h.store.Count()})
}

// Clear empties the store.
func (h *ScenarioHandler) Clear(c *gin.Context) {
	h.store.Clear()
	scenariosStored.Set(0)
	c.JSON(http.StatusOK, gin.H{"count": 0})
}

// Series returns the renderer-ready price and open-interest point arrays for
// one scenario.
func (h *ScenarioHandler) Series(c *gin.Context) {
	sc, ok := h.scenarioAt(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"symbol":       sc.Symbol,
		"price":        chart.PriceSeries(sc.Candles),
		"openInterest": chart.OISeries(sc.Candles),
	})
}

// Stats returns one scenario's summary statistics together with the derived
// OI/price ratio, the display colour classes and preformatted values for the
// stat grid.
func (h *ScenarioHandler) Stats(c *gin.Context) {
	sc, ok := h.scenarioAt(c)
	if !ok {
		return
	}

	s := sc.Statistics
	c.JSON(http.StatusOK, gin.H{
		"statistics":   s,
		"oiPriceRatio": stats.OIPriceRatio(s),
		"colors": gin.H{
			"price":      stats.StatColor(stats.KindPrice, s),
			"oi":         stats.StatColor(stats.KindOI, s),
			"ratio":      stats.StatColor(stats.KindRatio, s),
			"volatility": stats.StatColor(stats.KindVolatility, s),
		},
		"display": gin.H{
			"priceChange": format.Percentage(s.PriceChangePercent, 2),
			"oiChange":    format.Percentage(s.OiChangePercent, 2),
			"volatility":  format.Percentage(s.VolatilityPercent, 2),
			"avgVolume":   format.Number(s.AvgVolume, 2),
			"minVolume":   format.Number(s.MinVolume, 2),
			"maxVolume":   format.Number(s.MaxVolume, 2),
		},
	})
}

func (h *ScenarioHandler) scenarioAt(c *gin.Context) (sc model.ScenarioData, ok bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scenario index"})
		return sc, false
	}

	data, found := h.store.Get(index)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Scenario not found"})
		return sc, false
	}
	return data, true
}

// Health reports service liveness.
func (h *ScenarioHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "dolf-charts",
	})
}
