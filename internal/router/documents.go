package router

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/homily-archive/ngram-search/internal/apperr"
	"github.com/homily-archive/ngram-search/internal/corpus"
	"github.com/homily-archive/ngram-search/internal/domain"
	"github.com/homily-archive/ngram-search/internal/dto"
)

type DocumentRouter struct {
	e       *echo.Echo
	catalog corpus.Catalog
}

func NewDocumentRouter(e *echo.Echo, catalog corpus.Catalog) *DocumentRouter {
	return &DocumentRouter{
		e:       e,
		catalog: catalog,
	}
}

func (r *DocumentRouter) Bind() {
	r.e.GET("/api/documents", r.listHandler)
	r.e.GET("/api/documents/:id", r.detailHandler)
	r.e.GET("/api/corpus/stats", r.statsHandler)
}

// listHandler godoc
// @Summary Browse the document catalog
// @Tags documents
// @Produce json
// @Param lang query string false "Keep only documents with a transcript in this language" Enums(es, en)
// @Success 200 {array} dto.DocumentSummary
// @Router /api/documents [get]
func (r *DocumentRouter) listHandler(c echo.Context) error {
	docs, err := r.catalog.List(c.Request().Context())
	if err != nil {
		return apperr.NewUnavailable("corpus", err)
	}

	if raw := c.QueryParam("lang"); raw != "" {
		lang := domain.Language(raw)
		if !domain.SupportedLanguages[lang] {
			return apperr.NewValidation("unsupported language " + raw)
		}
		// Catalog rows omit transcript bodies; the stored word count is
		// the presence signal there.
		filtered := docs[:0]
		for _, doc := range docs {
			if doc.HasText(lang) || doc.WordCount(lang) > 0 {
				filtered = append(filtered, doc)
			}
		}
		docs = filtered
	}

	return c.JSON(200, dto.FromDocuments(docs))
}

// detailHandler godoc
// @Summary Fetch one document with its transcripts
// @Tags documents
// @Produce json
// @Param id path string true "Document UUID"
// @Success 200 {object} dto.DocumentDetail
// @Failure 404 {object} map[string]string
// @Router /api/documents/{id} [get]
func (r *DocumentRouter) detailHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidationWrap("id must be a UUID", err)
	}

	doc, err := r.catalog.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, corpus.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "document not found")
		}
		return apperr.NewUnavailable("corpus", err)
	}

	return c.JSON(200, dto.FromDocumentDetail(doc))
}

// statsHandler godoc
// @Summary Corpus coverage statistics
// @Tags documents
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Router /api/corpus/stats [get]
func (r *DocumentRouter) statsHandler(c echo.Context) error {
	stats, err := r.catalog.Stats(c.Request().Context())
	if err != nil {
		return apperr.NewUnavailable("corpus", err)
	}

	return c.JSON(200, dto.FromStats(stats))
}
