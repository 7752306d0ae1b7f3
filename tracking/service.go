package tracking

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmdatafocus/tracking_backend/fixtures"
	"github.com/mmdatafocus/tracking_backend/models"
	"github.com/mmdatafocus/tracking_backend/store"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultPage = 1
	DefaultSize = 10
)

var ErrCountOutOfRange = errors.New("count out of range")

var tracer = otel.Tracer("tracking_backend/tracking")

// Service answers search, export and regeneration requests against a RecordStore.
type Service struct {
	Store            *store.RecordStore
	Generator        *fixtures.Generator
	MaxGenerateCount int
}

func NewService(s *store.RecordStore, g *fixtures.Generator, maxGenerateCount int) *Service {
	return &Service{
		Store:            s,
		Generator:        g,
		MaxGenerateCount: maxGenerateCount,
	}
}

type SearchResult struct {
	Results []models.ShipmentScan `json:"results"`
	Total   int                   `json:"total"`
}

// Search resolves every pin, in order, to its record or to an empty placeholder,
// then returns the page [(page-1)*size, (page-1)*size+size) of that list.
// Total is always len(pins).
func (svc *Service) Search(ctx context.Context, pins []string, page, size int) SearchResult {
	_, span := tracer.Start(ctx, "tracking.Search", trace.WithAttributes(
		attribute.Int("pins", len(pins)),
		attribute.Int("page", page),
		attribute.Int("size", size),
	))
	defer span.End()

	snap := svc.Store.Snapshot()
	results := make([]models.ShipmentScan, len(pins))
	for i, pin := range pins {
		results[i], _ = snap.Get(pin)
	}

	start := (page - 1) * size
	lo, hi := sliceBounds(len(results), start, start+size)
	return SearchResult{
		Results: results[lo:hi:hi],
		Total:   len(results),
	}
}

// Keys lists every pin in the store.
func (svc *Service) Keys(ctx context.Context) []string {
	_, span := tracer.Start(ctx, "tracking.Keys")
	defer span.End()
	return svc.Store.AllKeys()
}

// Regenerate replaces the store with count fresh records.
func (svc *Service) Regenerate(ctx context.Context, count int) (int, error) {
	_, span := tracer.Start(ctx, "tracking.Regenerate", trace.WithAttributes(
		attribute.Int("count", count),
	))
	defer span.End()

	if count < 0 || count > svc.MaxGenerateCount {
		err := fmt.Errorf("%w: %d not in [0, %d]", ErrCountOutOfRange, count, svc.MaxGenerateCount)
		span.RecordError(err)
		return 0, err
	}
	table := svc.Generator.Generate(count)
	svc.Store.Replace(table)
	return table.Len(), nil
}

// sliceBounds clamps [start, end) to a list of length n, with negative
// bounds counting back from the end. An inverted range is empty.
func sliceBounds(n, start, end int) (int, int) {
	clamp := func(i int) int {
		if i < 0 {
			i += n
			if i < 0 {
				return 0
			}
		}
		if i > n {
			return n
		}
		return i
	}
	lo, hi := clamp(start), clamp(end)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
