package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/anomredux/instant-translator/internal/catalog"
	"github.com/anomredux/instant-translator/internal/translator"
)

// StatusClientClosedRequest is reported when the caller went away before
// the backend answered (nginx convention).
const StatusClientClosedRequest = 499

func errorBody(msg string) translator.Response {
	return translator.Response{Error: msg}
}

// Handler serves the translation API.
type Handler struct {
	catalog catalog.Catalog
	backend translator.Translator
	metrics *Metrics
	logger  *log.Logger
}

func NewHandler(cat catalog.Catalog, backend translator.Translator, metrics *Metrics, logger *log.Logger) *Handler {
	return &Handler{catalog: cat, backend: backend, metrics: metrics, logger: logger}
}

type languagesResponse struct {
	Languages []catalog.Language `json:"languages"`
}

// Languages lists the catalog in display order.
func (h *Handler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, languagesResponse{Languages: h.catalog.Languages()})
}

// Translate handles POST /api/translate.
func (h *Handler) Translate(c *gin.Context) {
	start := time.Now()

	var req translator.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.ObserveTranslation(OutcomeInvalid, time.Since(start))
		c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
		return
	}
	if err := h.validate(req); err != nil {
		h.metrics.ObserveTranslation(OutcomeInvalid, time.Since(start))
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		h.metrics.ObserveTranslation(OutcomeEmpty, time.Since(start))
		c.JSON(http.StatusOK, translator.Response{})
		return
	}
	if req.Source == req.Target {
		h.metrics.ObserveTranslation(OutcomeEcho, time.Since(start))
		c.JSON(http.StatusOK, translator.Response{Translation: req.Text})
		return
	}

	out, err := h.backend.Translate(c.Request.Context(), req)
	err = translator.Classify(err)
	switch {
	case err == nil:
		h.metrics.ObserveTranslation(OutcomeOK, time.Since(start))
		c.JSON(http.StatusOK, translator.Response{Translation: out})
	case errors.Is(err, translator.ErrCancelled):
		h.metrics.ObserveTranslation(OutcomeCancelled, time.Since(start))
		h.logger.Debug("translate cancelled", "request_id", GetRequestID(c))
		c.JSON(StatusClientClosedRequest, errorBody("request cancelled"))
	default:
		h.metrics.ObserveTranslation(OutcomeFailed, time.Since(start))
		h.logger.Error("translate", "request_id", GetRequestID(c),
			"source", req.Source, "target", req.Target, "err", err)
		c.JSON(http.StatusBadGateway, errorBody("translation failed"))
	}
}

func (h *Handler) validate(req translator.Request) error {
	if !h.catalog.Contains(req.Source) {
		return fmt.Errorf("unknown source language %q", req.Source)
	}
	if !h.catalog.Contains(req.Target) {
		return fmt.Errorf("unknown target language %q", req.Target)
	}
	return nil
}

// Healthz is the liveness probe.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
