package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/pokebattle/internal/version"
)

// Version returns the build metadata injected at link time.
func Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "pokebattle",
		"build":   version.String(),
		"version": version.Version,
		"commit":  version.Commit,
		"date":    version.Date,
		"dirty":   version.Dirty,
	})
}
