package search

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/contextutil"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=search_service.go -destination=mock/search_service_mock.go -package=mock
type Service interface {
	Search(ctx context.Context, query string, limit int) (*Result, error)
}

type Options struct {
	// SourceTimeout bounds each per-type query.
	SourceTimeout time.Duration
}

type service struct {
	repo    Repository
	sources []Source
	opts    Options
	logger  *zap.Logger
}

func NewService(repo Repository, opts Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("search.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("search.service")
	}
	if opts.SourceTimeout <= 0 {
		opts.SourceTimeout = 3 * time.Second
	}
	return &service{repo: repo, sources: Sources(), opts: opts, logger: l}
}

func ClampLimit(limit int) int {
	switch {
	case limit == 0:
		return DefaultLimit
	case limit < 1:
		return 1
	case limit > MaxLimit:
		return MaxLimit
	}
	return limit
}

func (s *service) Search(ctx context.Context, query string, limit int) (*Result, error) {
	term := strings.TrimSpace(query)
	if term == "" {
		return &Result{Results: []Hit{}, Total: 0}, nil
	}
	limit = ClampLimit(limit)
	rid := contextutil.GetRequestID(ctx)

	s.logger.Debug("search start", zap.String("request_id", rid), zap.String("q", term), zap.Int("limit", limit))

	perSource := make([][]Hit, len(s.sources))
	counts := make([]int, len(s.sources))
	var g errgroup.Group
	for i, src := range s.sources {
		g.Go(func() error {
			perSource[i], counts[i] = s.runSource(ctx, rid, src, i, term, limit)
			return nil
		})
	}
	_ = g.Wait()

	var merged []Hit
	total := 0
	for i, hits := range perSource {
		merged = append(merged, hits...)
		total += counts[i]
	}
	rank(merged, term)

	if len(merged) > limit {
		merged = merged[:limit]
	}
	if merged == nil {
		merged = []Hit{}
	}

	s.logger.Info("search success", zap.String("request_id", rid), zap.String("q", term), zap.Int("total", total))
	return &Result{Results: merged, Total: total}, nil
}

// runSource never fails the aggregate; a broken source yields no hits. The
// count is the source's full match count, which only needs its own query
// when the rows were cut at limit.
func (s *service) runSource(ctx context.Context, rid string, src Source, order int, term string, limit int) ([]Hit, int) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.SourceTimeout)
	defer cancel()

	rows, err := s.repo.Find(ctx, src, term, limit)
	if err != nil {
		metrics.SearchSourceFailures.WithLabelValues(src.Type).Inc()
		s.logger.Error("search source failed",
			zap.String("request_id", rid),
			zap.String("type", src.Type),
			zap.Error(err),
		)
		return nil, 0
	}

	count := len(rows)
	if count >= limit {
		n, err := s.repo.Count(ctx, src, term)
		if err != nil {
			s.logger.Warn("search source count failed",
				zap.String("request_id", rid),
				zap.String("type", src.Type),
				zap.Error(err),
			)
		} else if int(n) > count {
			count = int(n)
		}
	}

	hits := make([]Hit, 0, len(rows))
	for pos, r := range rows {
		h := src.toHit(r)
		h.typeOrder = order
		h.position = pos
		hits = append(hits, h)
	}
	return hits, count
}

// Score: exact title 3, title prefix 2, title substring 1, anything else 0.
func Score(title, term string) int {
	t := strings.ToLower(strings.TrimSpace(title))
	q := strings.ToLower(term)
	switch {
	case t == q:
		return 3
	case strings.HasPrefix(t, q):
		return 2
	case strings.Contains(t, q):
		return 1
	}
	return 0
}

func rank(hits []Hit, term string) {
	for i := range hits {
		hits[i].score = Score(hits[i].Title, term)
	}
	sort.SliceStable(hits, func(i, j int) bool {
		a, b := hits[i], hits[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if !a.updatedAt.Equal(b.updatedAt) {
			return a.updatedAt.After(b.updatedAt)
		}
		if a.typeOrder != b.typeOrder {
			return a.typeOrder < b.typeOrder
		}
		return a.position < b.position
	})
}
