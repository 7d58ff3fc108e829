package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

func RegisterHealthRoute(g *gin.Engine) {
	g.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
