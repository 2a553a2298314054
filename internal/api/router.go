package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/pokebattle/internal/constants"
)

// NewRouter wires every route under the /api prefix.
func NewRouter(h *BattleHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET(constants.RouteHealth, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "ok"})
	})

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, Version)
		apiRoutes.GET(constants.RouteSpecies, h.ListSpecies)
		apiRoutes.GET(constants.RouteSpeciesByName, h.GetSpecies)
		apiRoutes.GET(constants.RouteMoves, h.GetMove)
		apiRoutes.POST(constants.RouteBattles, h.CreateBattle)
		apiRoutes.GET(constants.RouteBattleByID, h.GetBattle)
		apiRoutes.POST(constants.RouteBattleAction, h.SubmitAction)
		apiRoutes.POST(constants.RouteBattleAbandon, h.AbandonBattle)
		apiRoutes.GET(constants.RouteBattleEvents, h.StreamEvents)
	}
	return router
}
