package controllers

import (
	"github.com/Tejasai37/papercast/application/ports/inbound"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/domain"
	"github.com/Tejasai37/papercast/middleware"
	"github.com/gin-gonic/gin"
	"net/http"
	"time"
)

const (
	heartbeatEvent = "heartbeat"
	podcastEvent   = "podcast"
	errorEvent     = "error"
)

type PodcastController interface {
	GenerateAudio(c *gin.Context)
	StreamAudio(c *gin.Context)
	RegisterRoutes(g *gin.RouterGroup)
}

type podcastController struct {
	logger            outbound.LoggerPort
	generator         inbound.PodcastGeneratorPort
	heartbeatInterval time.Duration
}

func NewPodcastController(logger outbound.LoggerPort, generator inbound.PodcastGeneratorPort,
	heartbeatInterval time.Duration) PodcastController {
	return &podcastController{
		logger:            logger,
		generator:         generator,
		heartbeatInterval: heartbeatInterval,
	}
}

func (p *podcastController) params(c *gin.Context) inbound.GeneratePodcastParams {
	return inbound.GeneratePodcastParams{
		ArticleID: c.Param("article_id"),
		UserID:    middleware.UserID(c),
	}
}

func (p *podcastController) GenerateAudio(c *gin.Context) {
	result := p.generator.GenerateOrFetch(c.Request.Context(), p.params(c))
	if result.Status == domain.ResultFailed {
		c.JSON(statusFor(result.Err), result.ToEvent())
		return
	}
	c.JSON(http.StatusOK, result.ToEvent())
}

// StreamAudio runs the generation beside the handler and keeps the
// connection alive with heartbeat events until one podcast or error event
// ends the stream. Only the handler goroutine writes to the response.
func (p *podcastController) StreamAudio(c *gin.Context) {
	ctx := c.Request.Context()
	params := p.params(c)
	results := make(chan domain.GenerationResult, 1)

	// The generation waits on pool workers itself, so it must not occupy one.
	go func() {
		results <- p.generator.GenerateOrFetch(ctx, params)
	}()

	ticker := time.NewTicker(p.heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case t := <-ticker.C:
			c.SSEvent(heartbeatEvent, gin.H{"time": t.UTC().Format(time.RFC3339)})
			c.Writer.Flush()
		case result := <-results:
			name := podcastEvent
			if result.Status == domain.ResultFailed {
				name = errorEvent
			}
			c.SSEvent(name, result.ToEvent())
			c.Writer.Flush()
			return
		case <-ctx.Done():
			p.logger.DebugWithFields("Stream client went away", map[string]interface{}{
				"article_id": params.ArticleID,
			})
			return
		}
	}
}

func (p *podcastController) RegisterRoutes(g *gin.RouterGroup) {
	g.POST("/generate_audio/:article_id", p.GenerateAudio)
	g.GET("/generate_audio/:article_id/stream", middleware.SSEMiddleware(), p.StreamAudio)
}
