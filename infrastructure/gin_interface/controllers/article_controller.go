package controllers

import (
	"github.com/Tejasai37/papercast/application/ports/inbound"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/application/services"
	"github.com/Tejasai37/papercast/infrastructure/gin_interface/dto"
	"github.com/gin-gonic/gin"
	"net/http"
	"strings"
)

type ArticleController interface {
	Headlines(c *gin.Context)
	Search(c *gin.Context)
	ProcessLink(c *gin.Context)
	RegisterRoutes(g *gin.RouterGroup)
}

type articleController struct {
	logger    outbound.LoggerPort
	discovery inbound.ArticleDiscoveryPort
}

func NewArticleController(logger outbound.LoggerPort, discovery inbound.ArticleDiscoveryPort) ArticleController {
	return &articleController{
		logger:    logger,
		discovery: discovery,
	}
}

func (a *articleController) Headlines(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.DefaultQuery("category", services.DefaultCategory)))
	articles, err := a.discovery.Headlines(c.Request.Context(), category)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.HeadlinesResponse{Category: category, Articles: articles})
}

func (a *articleController) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}
	articles, err := a.discovery.Search(c.Request.Context(), query)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SearchResponse{Query: query, Articles: articles})
}

// ProcessLink accepts the url as a form field or a JSON body.
func (a *articleController) ProcessLink(c *gin.Context) {
	var req dto.ProcessLinkRequest
	if err := c.ShouldBind(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	article, err := a.discovery.ExtractLink(c.Request.Context(), req.URL)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProcessLinkResponse(*article))
}

func (a *articleController) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("/headlines", a.Headlines)
	g.GET("/search", a.Search)
	g.POST("/process_link", a.ProcessLink)
}
