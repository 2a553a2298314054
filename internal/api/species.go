package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/pokebattle/internal/constants"
	"github.com/ericogr/pokebattle/internal/service"
	"github.com/ericogr/pokebattle/internal/storage"
)

// ListSpecies returns every species that can be picked for a battle.
func (h *BattleHandler) ListSpecies(c *gin.Context) {
	species, err := service.ListSpecies(h.repo, h.set.Roster)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrSpeciesNotFound})
		return
	}
	c.JSON(http.StatusOK, species)
}

// GetSpecies returns one species template.
func (h *BattleHandler) GetSpecies(c *gin.Context) {
	tpl, err := h.repo.GetSpeciesByName(c.Param("name"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSpeciesNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: err.Error()})
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// GetMove returns one move from the loaded ruleset.
func (h *BattleHandler) GetMove(c *gin.Context) {
	m, ok := h.set.Ruleset.Move(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMoveNotFound})
		return
	}
	c.JSON(http.StatusOK, m)
}
