package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gameshelf/backend/internal/auth"
	"gameshelf/backend/internal/catalog"
	"gameshelf/backend/internal/hub"
	"gameshelf/backend/internal/models"
	"gameshelf/backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// heartbeatInterval keeps idle event streams open through proxies.
const heartbeatInterval = 25 * time.Second

// region --- DTOs ---

// PlaythroughInput is the user-editable progress on a game.
type PlaythroughInput struct {
	Status               models.PlaythroughStatus `json:"status" binding:"required,oneof=planned playing finished dropped" example:"playing"`
	CompletionPercent    int                      `json:"completionPercent" binding:"min=0,max=100" example:"40"`
	AchievementsUnlocked int                      `json:"achievementsUnlocked" binding:"min=0" example:"12"`
	AchievementsTotal    int                      `json:"achievementsTotal" binding:"min=0" example:"50"`
	HoursPlayed          float64                  `json:"hoursPlayed" binding:"min=0" example:"17.5"`
	Notes                string                   `json:"notes" binding:"max=2000"`
}

// EntryInput replaces the user-specific fields of an entry.
type EntryInput struct {
	Rating      *float64         `json:"rating" binding:"omitempty,min=0,max=10" example:"8.5"`
	Playthrough PlaythroughInput `json:"playthrough" binding:"required"`
}

// AddEntryInput optionally seeds a new entry. Status defaults to planned.
type AddEntryInput struct {
	Rating      *float64          `json:"rating" binding:"omitempty,min=0,max=10"`
	Playthrough *PlaythroughInput `json:"playthrough"`
}

// PlaythroughPatch updates only the fields that are present.
type PlaythroughPatch struct {
	Status               *models.PlaythroughStatus `json:"status" binding:"omitempty,oneof=planned playing finished dropped"`
	CompletionPercent    *int                      `json:"completionPercent" binding:"omitempty,min=0,max=100"`
	AchievementsUnlocked *int                      `json:"achievementsUnlocked" binding:"omitempty,min=0"`
	AchievementsTotal    *int                      `json:"achievementsTotal" binding:"omitempty,min=0"`
	HoursPlayed          *float64                  `json:"hoursPlayed" binding:"omitempty,min=0"`
	Notes                *string                   `json:"notes" binding:"omitempty,max=2000"`
}

// EntryPatch is a partial update of an entry.
type EntryPatch struct {
	Rating      *float64          `json:"rating" binding:"omitempty,min=0,max=10"`
	Playthrough *PlaythroughPatch `json:"playthrough"`
}

// PlaythroughResponse mirrors models.Playthrough.
type PlaythroughResponse struct {
	Status               models.PlaythroughStatus `json:"status" example:"playing"`
	CompletionPercent    int                      `json:"completionPercent"`
	AchievementsUnlocked int                      `json:"achievementsUnlocked"`
	AchievementsTotal    int                      `json:"achievementsTotal"`
	HoursPlayed          float64                  `json:"hoursPlayed"`
	Notes                string                   `json:"notes"`
}

// CollectionEntryResponse is one game of a user's collection.
type CollectionEntryResponse struct {
	ID               int64               `json:"id" example:"1942"`
	Title            string              `json:"title" example:"The Witcher 3: Wild Hunt"`
	Name             string              `json:"name" example:"The Witcher 3: Wild Hunt"`
	Summary          string              `json:"summary"`
	FirstReleaseDate *int64              `json:"first_release_date"`
	CoverURL         string              `json:"coverUrl"`
	CoverImageID     string              `json:"coverImageId"`
	AddedAt          time.Time           `json:"addedAt"`
	Rating           *float64            `json:"rating"`
	Playthrough      PlaythroughResponse `json:"playthrough"`
}

// PaginatedCollectionResponse documents the collection listing.
type PaginatedCollectionResponse struct {
	Data []CollectionEntryResponse `json:"data"`
	Meta PaginationMeta            `json:"meta"`
}

func toEntryResponse(e models.CollectionEntry) CollectionEntryResponse {
	return CollectionEntryResponse{
		ID:               e.GameID,
		Title:            e.Title,
		Name:             e.Name,
		Summary:          e.Summary,
		FirstReleaseDate: e.FirstReleaseDate,
		CoverURL:         e.CoverURL,
		CoverImageID:     e.CoverImageID,
		AddedAt:          e.AddedAt,
		Rating:           e.Rating,
		Playthrough: PlaythroughResponse{
			Status:               e.Playthrough.Status,
			CompletionPercent:    e.Playthrough.CompletionPercent,
			AchievementsUnlocked: e.Playthrough.AchievementsUnlocked,
			AchievementsTotal:    e.Playthrough.AchievementsTotal,
			HoursPlayed:          e.Playthrough.HoursPlayed,
			Notes:                e.Playthrough.Notes,
		},
	}
}

func (p PlaythroughInput) model() models.Playthrough {
	return models.Playthrough{
		Status:               p.Status,
		CompletionPercent:    p.CompletionPercent,
		AchievementsUnlocked: p.AchievementsUnlocked,
		AchievementsTotal:    p.AchievementsTotal,
		HoursPlayed:          p.HoursPlayed,
		Notes:                p.Notes,
	}
}

// updates turns the patch into column updates.
func (p EntryPatch) updates() map[string]any {
	updates := map[string]any{}
	if p.Rating != nil {
		updates["rating"] = *p.Rating
	}
	if pt := p.Playthrough; pt != nil {
		if pt.Status != nil {
			updates["playthrough_status"] = *pt.Status
		}
		if pt.CompletionPercent != nil {
			updates["playthrough_completion_percent"] = *pt.CompletionPercent
		}
		if pt.AchievementsUnlocked != nil {
			updates["playthrough_achievements_unlocked"] = *pt.AchievementsUnlocked
		}
		if pt.AchievementsTotal != nil {
			updates["playthrough_achievements_total"] = *pt.AchievementsTotal
		}
		if pt.HoursPlayed != nil {
			updates["playthrough_hours_played"] = *pt.HoursPlayed
		}
		if pt.Notes != nil {
			updates["playthrough_notes"] = *pt.Notes
		}
	}
	return updates
}

// endregion

// CollectionHandler serves a user's collection.
type CollectionHandler struct {
	entries CollectionStore
	catalog CatalogService
	hub     EventHub
}

// NewCollectionHandler creates a CollectionHandler.
func NewCollectionHandler(entries CollectionStore, catalog CatalogService, hub EventHub) *CollectionHandler {
	return &CollectionHandler{entries: entries, catalog: catalog, hub: hub}
}

func gameIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("gameId"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return 0, false
	}
	return id, true
}

// region --- Collection Handlers ---

// ListCollection godoc
// @Summary      List collection
// @Description  Returns the caller's collection, most recently added first.
// @Tags         collection
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by playthrough status" Enums(planned, playing, finished, dropped)
// @Param        page    query     int     false  "Page number" default(1)
// @Param        limit   query     int     false  "Items per page" default(20)
// @Success      200  {object}  PaginatedCollectionResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /collection [get]
func (h *CollectionHandler) ListCollection(c *gin.Context) {
	userID, _ := auth.UserID(c)
	page, limit := pageParams(c, 20, 100)

	status := models.PlaythroughStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	entries, total, err := h.entries.ListEntries(c.Request.Context(), userID, status, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve collection"})
		return
	}

	response := make([]CollectionEntryResponse, 0, len(entries))
	for _, e := range entries {
		response = append(response, toEntryResponse(e))
	}
	c.JSON(http.StatusOK, NewPaginatedResponse(response, total, page, limit))
}

// GetEntry godoc
// @Summary      Get collection entry
// @Tags         collection
// @Produce      json
// @Security     BearerAuth
// @Param        gameId  path      int  true  "Game ID"
// @Success      200  {object}  CollectionEntryResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /collection/{gameId} [get]
func (h *CollectionHandler) GetEntry(c *gin.Context) {
	userID, _ := auth.UserID(c)
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	entry, err := h.entries.GetEntry(c.Request.Context(), userID, gameID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game is not in your collection"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve entry"})
		return
	}
	c.JSON(http.StatusOK, toEntryResponse(*entry))
}

// AddEntry godoc
// @Summary      Add a game to the collection
// @Description  Copies the catalog record's display fields into a new entry.
// @Tags         collection
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        gameId  path      int            true   "Game ID"
// @Param        input   body      AddEntryInput  false  "Initial rating and progress"
// @Success      201  {object}  CollectionEntryResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /collection/{gameId} [post]
func (h *CollectionHandler) AddEntry(c *gin.Context) {
	userID, _ := auth.UserID(c)
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	var input AddEntryInput
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	game, err := h.catalog.Game(c.Request.Context(), gameID, "")
	if errors.Is(err, catalog.ErrGameNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	if err != nil {
		logrus.WithError(err).WithField("game_id", gameID).Error("collection: catalog lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	playthrough := models.Playthrough{Status: models.StatusPlanned}
	if input.Playthrough != nil {
		playthrough = input.Playthrough.model()
	}
	entry := models.CollectionEntry{
		UserID:           userID,
		GameID:           game.ID,
		Title:            game.Name,
		Name:             game.Name,
		Summary:          game.Summary,
		FirstReleaseDate: game.FirstReleaseDate,
		CoverURL:         game.CoverURL,
		CoverImageID:     game.CoverImageID,
		Rating:           input.Rating,
		Playthrough:      playthrough,
	}
	if err := h.entries.CreateEntry(c.Request.Context(), &entry); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Game is already in your collection"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add game"})
		return
	}

	response := toEntryResponse(entry)
	h.hub.Broadcast(userID, hub.Event{Type: hub.EntryAdded, Payload: response})
	c.JSON(http.StatusCreated, response)
}

// ReplaceEntry godoc
// @Summary      Replace collection entry
// @Description  Overwrites the rating and progress of an entry.
// @Tags         collection
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        gameId  path      int         true  "Game ID"
// @Param        input   body      EntryInput  true  "New rating and progress"
// @Success      200  {object}  CollectionEntryResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /collection/{gameId} [put]
func (h *CollectionHandler) ReplaceEntry(c *gin.Context) {
	userID, _ := auth.UserID(c)
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	var input EntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := input.Playthrough
	updates := map[string]any{
		"rating":                            input.Rating,
		"playthrough_status":                p.Status,
		"playthrough_completion_percent":    p.CompletionPercent,
		"playthrough_achievements_unlocked": p.AchievementsUnlocked,
		"playthrough_achievements_total":    p.AchievementsTotal,
		"playthrough_hours_played":          p.HoursPlayed,
		"playthrough_notes":                 p.Notes,
	}
	h.update(c, userID, gameID, updates)
}

// UpdateEntry godoc
// @Summary      Update collection entry
// @Description  Changes only the fields present in the body.
// @Tags         collection
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        gameId  path      int         true  "Game ID"
// @Param        input   body      EntryPatch  true  "Fields to change"
// @Success      200  {object}  CollectionEntryResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /collection/{gameId} [patch]
func (h *CollectionHandler) UpdateEntry(c *gin.Context) {
	userID, _ := auth.UserID(c)
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	var input EntryPatch
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.update(c, userID, gameID, input.updates())
}

func (h *CollectionHandler) update(c *gin.Context, userID uint, gameID int64, updates map[string]any) {
	entry, err := h.entries.UpdateEntry(c.Request.Context(), userID, gameID, updates)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game is not in your collection"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update entry"})
		return
	}

	response := toEntryResponse(*entry)
	h.hub.Broadcast(userID, hub.Event{Type: hub.EntryUpdated, Payload: response})
	c.JSON(http.StatusOK, response)
}

// RemoveEntry godoc
// @Summary      Remove a game from the collection
// @Tags         collection
// @Security     BearerAuth
// @Param        gameId  path  int  true  "Game ID"
// @Success      204  "No Content"
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /collection/{gameId} [delete]
func (h *CollectionHandler) RemoveEntry(c *gin.Context) {
	userID, _ := auth.UserID(c)
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	err := h.entries.DeleteEntry(c.Request.Context(), userID, gameID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game is not in your collection"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove entry"})
		return
	}

	h.hub.Broadcast(userID, hub.Event{Type: hub.EntryRemoved, Payload: gin.H{"id": gameID}})
	c.Status(http.StatusNoContent)
}

// Events godoc
// @Summary      Collection events
// @Description  Server-sent events for every change to the caller's collection and settings. EventSource clients may pass the token as access_token.
// @Tags         collection
// @Produce      text/event-stream
// @Security     BearerAuth
// @Success      200  {string}  string  "event stream"
// @Failure      401  {object}  ErrorResponse
// @Router       /collection/events [get]
func (h *CollectionHandler) Events(c *gin.Context) {
	userID, _ := auth.UserID(c)

	client := hub.NewClient()
	h.hub.Subscribe(userID, client)
	defer h.hub.Unsubscribe(userID, client)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.SSEvent("connected", gin.H{"userId": userID})
	c.Writer.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case msg, ok := <-client:
			if !ok {
				return
			}
			c.SSEvent("message", string(msg))
			c.Writer.Flush()
		case <-heartbeat.C:
			c.SSEvent("ping", time.Now().Unix())
			c.Writer.Flush()
		}
	}
}

// endregion
