package handler

import (
	"errors"
	"net/http"
	"strconv"

	"gameshelf/backend/internal/auth"
	"gameshelf/backend/internal/catalog"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CatalogHandler serves ranked catalog listings.
type CatalogHandler struct {
	catalog  CatalogService
	settings SettingsStore
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(catalog CatalogService, settings SettingsStore) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, settings: settings}
}

// region --- Listing Handlers ---

// TopGames godoc
// @Summary      Top games
// @Description  Games ranked by a vote-weighted rating, or by rating when searching.
// @Tags         catalog
// @Produce      json
// @Param        q           query     string  false  "Search text"
// @Param        page        query     int     false  "Page number" default(1)
// @Param        pageSize    query     int     false  "Items per page (max 50)" default(24)
// @Param        minRating   query     number  false  "Minimum display rating (0-100)"
// @Param        tags        query     string  false  "Comma-separated tags, all required"
// @Param        hideMature  query     string  false  "0 shows mature titles"
// @Param        coverSize   query     string  false  "Cover image size" default(cover_big)
// @Success      200  {object}  catalog.Page
// @Failure      500  {object}  ErrorResponse
// @Router       /catalog/top [get]
func (h *CatalogHandler) TopGames(c *gin.Context) {
	h.list(c, catalog.TopGames)
}

// NewReleases godoc
// @Summary      New releases
// @Description  Released games, most recent first.
// @Tags         catalog
// @Produce      json
// @Param        q           query     string  false  "Search text"
// @Param        page        query     int     false  "Page number" default(1)
// @Param        pageSize    query     int     false  "Items per page (max 50)" default(24)
// @Param        minRating   query     number  false  "Minimum display rating (0-100)"
// @Param        tags        query     string  false  "Comma-separated tags, all required"
// @Param        hideMature  query     string  false  "0 shows mature titles"
// @Param        coverSize   query     string  false  "Cover image size" default(cover_big)
// @Success      200  {object}  catalog.Page
// @Failure      500  {object}  ErrorResponse
// @Router       /catalog/new [get]
func (h *CatalogHandler) NewReleases(c *gin.Context) {
	h.list(c, catalog.NewReleases)
}

func (h *CatalogHandler) list(c *gin.Context, mode catalog.Mode) {
	req := catalog.Request{
		Mode:       mode,
		Query:      c.Query("q"),
		HideMature: true,
		CoverSize:  c.Query("coverSize"),
	}
	req.Page, _ = strconv.Atoi(c.Query("page"))
	req.PageSize, _ = strconv.Atoi(c.Query("pageSize"))

	minRating, hasMinRating := c.GetQuery("minRating")
	if hasMinRating {
		v, err := strconv.ParseFloat(minRating, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid minRating"})
			return
		}
		req.MinRating = v
	}
	tags, hasTags := c.GetQuery("tags")
	if hasTags {
		req.Tags = splitCommaSeparated(tags)
	}
	hideMature, hasHideMature := c.GetQuery("hideMature")
	if hasHideMature {
		req.HideMature = hideMature != "0"
	}

	// Saved settings fill whatever the request leaves unset.
	if userID, ok := auth.UserID(c); ok && !(hasMinRating && hasTags && hasHideMature) {
		settings, err := h.settings.GetSettings(c.Request.Context(), userID)
		if err != nil {
			logrus.WithError(err).WithField("user_id", userID).Warn("catalog: failed to load settings, using defaults")
		} else {
			if !hasMinRating {
				req.MinRating = settings.MinRating
			}
			if !hasTags {
				req.Tags = settings.Tags
			}
			if !hasHideMature {
				req.HideMature = settings.HideMature
			}
		}
	}

	page, err := h.catalog.List(c.Request.Context(), req)
	if err != nil {
		logrus.WithError(err).WithField("mode", mode).Error("catalog: listing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

// endregion

// region --- Lookup Handlers ---

// GetGame godoc
// @Summary      Get a game
// @Description  Fetches one catalog record by its upstream id.
// @Tags         catalog
// @Produce      json
// @Param        id         path      int     true   "Game ID"
// @Param        coverSize  query     string  false  "Cover image size" default(cover_big)
// @Success      200  {object}  catalog.Game
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /catalog/games/{id} [get]
func (h *CatalogHandler) GetGame(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	game, err := h.catalog.Game(c.Request.Context(), id, c.Query("coverSize"))
	if errors.Is(err, catalog.ErrGameNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	if err != nil {
		logrus.WithError(err).WithField("game_id", id).Error("catalog: game lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, game)
}

// GetTags godoc
// @Summary      List tags
// @Description  Every genre, theme, mode and perspective name, for tag filters.
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  catalog.TagsByType
// @Failure      500  {object}  ErrorResponse
// @Router       /catalog/tags [get]
func (h *CatalogHandler) GetTags(c *gin.Context) {
	tags, err := h.catalog.Tags(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("catalog: tag lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tags)
}

// CacheStats godoc
// @Summary      Catalog cache stats
// @Description  Reports the number of cached listings and the cache TTL.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  catalog.Stats
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /admin/catalog/cache [get]
func (h *CatalogHandler) CacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Stats())
}

// endregion
