package services

import (
	"context"
	"github.com/Tejasai37/papercast/application/ports/inbound"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/robfig/cron/v3"
	"time"
)

// HeadlineRefresher keeps the discovery cache warm by pulling headlines for a
// fixed set of categories on a cron schedule.
type HeadlineRefresher struct {
	logger     outbound.LoggerPort
	discovery  inbound.ArticleDiscoveryPort
	categories []string
	timeout    time.Duration
	cron       *cron.Cron
}

func NewHeadlineRefresher(logger outbound.LoggerPort, discovery inbound.ArticleDiscoveryPort, categories []string, timeout time.Duration) *HeadlineRefresher {
	return &HeadlineRefresher{
		logger:     logger,
		discovery:  discovery,
		categories: categories,
		timeout:    timeout,
		cron:       cron.New(),
	}
}

func (r *HeadlineRefresher) Start(schedule string) error {
	_, err := r.cron.AddFunc(schedule, r.Refresh)
	if err != nil {
		r.logger.ErrorWithFields(err, "Invalid headline refresh schedule", map[string]interface{}{
			"schedule": schedule,
		})
		return err
	}
	r.cron.Start()
	r.logger.InfoWithFields("Headline refresher started", map[string]interface{}{
		"schedule":   schedule,
		"categories": r.categories,
	})
	return nil
}

func (r *HeadlineRefresher) Stop() {
	<-r.cron.Stop().Done()
}

func (r *HeadlineRefresher) Refresh() {
	for _, category := range r.categories {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		articles, err := r.discovery.Headlines(ctx, category)
		cancel()
		if err != nil {
			r.logger.ErrorWithFields(err, "Headline refresh failed", map[string]interface{}{
				"category": category,
			})
			continue
		}
		r.logger.DebugWithFields("Headlines refreshed", map[string]interface{}{
			"category": category,
			"articles": len(articles),
		})
	}
}
