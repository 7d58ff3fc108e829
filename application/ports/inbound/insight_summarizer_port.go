package inbound

import (
	"context"
	"github.com/Tejasai37/papercast/domain"
)

// InsightSummarizerPort never fails; unusable model output degrades to a
// fallback value built from the input text.
type InsightSummarizerPort interface {
	Summarize(ctx context.Context, text string) domain.Insights
}
