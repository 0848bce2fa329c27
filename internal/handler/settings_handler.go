package handler

import (
	"net/http"
	"strings"
	"time"

	"gameshelf/backend/internal/auth"
	"gameshelf/backend/internal/hub"
	"gameshelf/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// SettingsInput replaces a user's settings. A missing hideMature keeps the
// default of hiding mature titles.
type SettingsInput struct {
	HideMature *bool    `json:"hideMature" example:"true"`
	MinRating  float64  `json:"minRating" binding:"min=0,max=100" example:"70"`
	Tags       []string `json:"tags" binding:"max=20,dive,max=64"`
	Theme      string   `json:"theme" binding:"max=50" example:"dark"`
	Font       string   `json:"font" binding:"max=50" example:"default"`
}

// SettingsResponse is a user's saved preferences.
type SettingsResponse struct {
	HideMature bool      `json:"hideMature"`
	MinRating  float64   `json:"minRating"`
	Tags       []string  `json:"tags"`
	Theme      string    `json:"theme"`
	Font       string    `json:"font"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toSettingsResponse(s models.UserSettings) SettingsResponse {
	tags := s.Tags
	if tags == nil {
		tags = []string{}
	}
	return SettingsResponse{
		HideMature: s.HideMature,
		MinRating:  s.MinRating,
		Tags:       tags,
		Theme:      s.Theme,
		Font:       s.Font,
		UpdatedAt:  s.UpdatedAt,
	}
}

// endregion

// SettingsHandler serves user preferences.
type SettingsHandler struct {
	settings SettingsStore
	hub      EventHub
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(settings SettingsStore, hub EventHub) *SettingsHandler {
	return &SettingsHandler{settings: settings, hub: hub}
}

// GetSettings godoc
// @Summary      Get settings
// @Description  Returns the caller's settings, or the defaults if none were saved.
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  SettingsResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID, _ := auth.UserID(c)

	settings, err := h.settings.GetSettings(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve settings"})
		return
	}
	c.JSON(http.StatusOK, toSettingsResponse(*settings))
}

// SaveSettings godoc
// @Summary      Save settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      SettingsInput  true  "New settings"
// @Success      200  {object}  SettingsResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /settings [put]
func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	userID, _ := auth.UserID(c)

	var input SettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings := models.DefaultSettings(userID)
	if input.HideMature != nil {
		settings.HideMature = *input.HideMature
	}
	settings.MinRating = input.MinRating
	settings.Tags = cleanTags(input.Tags)
	if input.Theme != "" {
		settings.Theme = input.Theme
	}
	if input.Font != "" {
		settings.Font = input.Font
	}

	if err := h.settings.SaveSettings(c.Request.Context(), &settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}

	response := toSettingsResponse(settings)
	h.hub.Broadcast(userID, hub.Event{Type: hub.Settings, Payload: response})
	c.JSON(http.StatusOK, response)
}

// cleanTags trims tags and drops blanks.
func cleanTags(tags []string) []string {
	cleaned := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	return cleaned
}
