package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ericogr/pokebattle/internal/constants"
	"github.com/ericogr/pokebattle/internal/logging"
	"github.com/ericogr/pokebattle/internal/service"
	"github.com/ericogr/pokebattle/internal/stream"
)

type ActionRequest struct {
	Side      string `json:"side" binding:"required"`
	MoveIndex *int   `json:"move_index" binding:"required"`
}

// battleID validates the :battleID path parameter.
func battleID(c *gin.Context) (string, bool) {
	id, err := uuid.Parse(c.Param("battleID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidBattleID})
		return "", false
	}
	return id.String(), true
}

// CreateBattle starts a battle between two species.
func (h *BattleHandler) CreateBattle(c *gin.Context) {
	var req service.StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	v, err := service.StartBattle(c.Request.Context(), h.repo, h.set, req)
	if err != nil {
		writeServiceError(c, err, constants.ErrFailedCreateBattle)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// GetBattle returns a battle with its replayed live state.
func (h *BattleHandler) GetBattle(c *gin.Context) {
	id, ok := battleID(c)
	if !ok {
		return
	}
	v, err := service.GetBattle(c.Request.Context(), h.repo, h.set, id)
	if err != nil {
		writeServiceError(c, err, constants.ErrFailedFetchBattle)
		return
	}
	// state changes every round; clients must not reuse a stale copy
	c.Header(constants.CacheControlHeader, constants.CacheControlNoCache)
	c.JSON(http.StatusOK, v)
}

// SubmitAction stores one side's move for the current round.
func (h *BattleHandler) SubmitAction(c *gin.Context) {
	id, ok := battleID(c)
	if !ok {
		return
	}
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	side, err := service.ParseSide(req.Side)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidSide})
		return
	}
	v, resolved, err := service.SubmitAction(c.Request.Context(), h.repo, h.set, id, side, *req.MoveIndex)
	if err != nil {
		writeServiceError(c, err, constants.ErrFailedStoreAction)
		return
	}
	if !resolved {
		c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "Action stored. Waiting for opponent."})
		return
	}
	h.publish(v)
	c.JSON(http.StatusOK, v)
}

// AbandonBattle ends an in-progress battle with no winner.
func (h *BattleHandler) AbandonBattle(c *gin.Context) {
	id, ok := battleID(c)
	if !ok {
		return
	}
	v, err := service.AbandonBattle(c.Request.Context(), h.repo, h.set, id, "Battle abandoned", "")
	if err != nil {
		writeServiceError(c, err, constants.ErrFailedStoreAction)
		return
	}
	h.publish(v)
	c.JSON(http.StatusOK, v)
}

// StreamEvents upgrades to a WebSocket that receives every resolved round.
func (h *BattleHandler) StreamEvents(c *gin.Context) {
	id, ok := battleID(c)
	if !ok {
		return
	}
	if h.hub == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrFailedUpgrade})
		return
	}
	if _, err := h.repo.GetBattleByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		return
	}
	if err := h.hub.ServeWS(c.Writer, c.Request, id); err != nil {
		logging.Error("websocket upgrade failed", err, logging.Fields{constants.LogFieldBattleID: id})
	}
}

func (h *BattleHandler) publish(v *service.BattleView) {
	if h.hub == nil || v == nil {
		return
	}
	h.hub.Publish(stream.Update{
		BattleID: v.ID,
		Round:    v.Round,
		Status:   string(v.Status),
		Winner:   string(v.Winner),
		Events:   v.RoundEvents,
	})
}

// writeServiceError maps service errors to HTTP responses.
func writeServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrBattleNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
	case errors.Is(err, service.ErrSpeciesNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSpeciesNotFound})
	case errors.Is(err, service.ErrInvalidLevel):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
	case errors.Is(err, service.ErrInvalidSide):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidSide})
	case errors.Is(err, service.ErrInvalidMove):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidMove})
	case errors.Is(err, service.ErrBattleNotInProgress):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrBattleNotInProgress})
	case errors.Is(err, service.ErrActionsLocked):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrActionsLocked})
	case errors.Is(err, service.ErrActionAlreadySubmitted):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrActionAlreadySent})
	default:
		logging.Error(fallback, err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: fallback})
	}
}
