package router

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/homily-archive/ngram-search/internal/apperr"
	"github.com/homily-archive/ngram-search/internal/domain"
	"github.com/homily-archive/ngram-search/internal/dto"
	"github.com/homily-archive/ngram-search/internal/engine"
)

type SearchRouter struct {
	e      *echo.Echo
	engine *engine.Engine
}

func NewSearchRouter(e *echo.Echo, engine *engine.Engine) *SearchRouter {
	return &SearchRouter{
		e:      e,
		engine: engine,
	}
}

func (r *SearchRouter) Bind() {
	r.e.GET("/api/search", r.searchHandler)
}

// searchHandler godoc
// @Summary Search phrase frequency over time
// @Description Counts occurrences of a word or phrase per month across the corpus
// @Tags search
// @Produce json
// @Param term query string true "Word or phrase to search for"
// @Param lang query string false "Transcript language" Enums(es, en) default(es)
// @Param accent_sensitive query boolean false "Match accents exactly" default(false)
// @Param norm query string false "Normalization mode" Enums(raw, per_10k_words, per_document) default(raw)
// @Param smoothing query integer false "Moving average half-window" default(0)
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/search [get]
func (r *SearchRouter) searchHandler(c echo.Context) error {
	cfg, err := parseQueryConfig(c)
	if err != nil {
		return err
	}

	result, err := r.engine.Search(c.Request().Context(), c.QueryParam("term"), cfg)
	if err != nil {
		return err
	}

	return c.JSON(200, dto.FromSearchResult(result))
}

// parseQueryConfig reads the optional search knobs. Range and enum checks
// stay in domain.QueryConfig.Validate; here we only reject values that do
// not parse at all.
func parseQueryConfig(c echo.Context) (domain.QueryConfig, error) {
	cfg := domain.QueryConfig{
		Language:      domain.Language(c.QueryParam("lang")),
		Normalization: domain.NormalizationMode(c.QueryParam("norm")),
	}

	if raw := c.QueryParam("accent_sensitive"); raw != "" {
		sensitive, err := strconv.ParseBool(raw)
		if err != nil {
			return cfg, apperr.NewValidationWrap("accent_sensitive must be a boolean", err)
		}
		cfg.AccentSensitive = sensitive
	}

	if raw := c.QueryParam("smoothing"); raw != "" {
		window, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, apperr.NewValidationWrap("smoothing must be an integer", err)
		}
		cfg.SmoothingWindow = window
	}

	return cfg, nil
}
