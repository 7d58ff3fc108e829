package controllers

import (
	"github.com/Tejasai37/papercast/application/ports/inbound"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/infrastructure/gin_interface/dto"
	"github.com/Tejasai37/papercast/middleware"
	"github.com/gin-gonic/gin"
	"net/http"
)

type AdminController interface {
	ListPodcasts(c *gin.Context)
	DeletePodcast(c *gin.Context)
	PurgePodcasts(c *gin.Context)
	RegisterRoutes(g *gin.RouterGroup)
}

type adminController struct {
	logger     outbound.LoggerPort
	admin      inbound.PodcastAdminPort
	adminScope string
}

func NewAdminController(logger outbound.LoggerPort, admin inbound.PodcastAdminPort, adminScope string) AdminController {
	return &adminController{
		logger:     logger,
		admin:      admin,
		adminScope: adminScope,
	}
}

func (a *adminController) ListPodcasts(c *gin.Context) {
	records, err := a.admin.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewListPodcastsResponse(records))
}

func (a *adminController) DeletePodcast(c *gin.Context) {
	articleID := c.Param("article_id")
	if err := a.admin.Delete(c.Request.Context(), articleID); err != nil {
		abortWithError(c, err)
		return
	}
	a.logger.InfoWithFields("Podcast deleted", map[string]interface{}{
		"article_id": articleID,
		"by":         middleware.UserID(c),
	})
	c.Status(http.StatusNoContent)
}

func (a *adminController) PurgePodcasts(c *gin.Context) {
	var req dto.PurgePodcastsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.UserID == "" && req.CreatedBefore == nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "user_id or created_before is required"})
		return
	}

	params := inbound.PurgeParams{UserID: req.UserID}
	if req.CreatedBefore != nil {
		params.CreatedBefore = *req.CreatedBefore
	}
	deleted, err := a.admin.Purge(c.Request.Context(), params)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PurgePodcastsResponse{Deleted: deleted})
}

func (a *adminController) RegisterRoutes(g *gin.RouterGroup) {
	admin := g.Group("/admin", middleware.RequireScope(a.adminScope))
	admin.GET("/podcasts", a.ListPodcasts)
	admin.DELETE("/podcasts/:article_id", a.DeletePodcast)
	admin.POST("/podcasts/purge", a.PurgePodcasts)
}
