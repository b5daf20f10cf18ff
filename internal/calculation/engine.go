package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/rpgo/rothtrad/internal/domain"
)

// Engine orchestrates the contribution and drawdown models behind a
// parameter-keyed cache. Results never depend on whether the cache is hit.
type Engine struct {
	Logger Logger

	accumulations *scheduleCache[*domain.AccumulationSchedule]
	distributions *scheduleCache[*domain.DistributionSchedule]
}

// NewEngine creates an engine with the default cache size.
func NewEngine() *Engine {
	return NewEngineWithCache(DefaultCacheSize)
}

// NewEngineWithCache creates an engine keeping up to size schedules per phase.
// A size of zero or less disables caching.
func NewEngineWithCache(size int) *Engine {
	return &Engine{
		Logger:        NopLogger{},
		accumulations: newScheduleCache[*domain.AccumulationSchedule](size),
		distributions: newScheduleCache[*domain.DistributionSchedule](size),
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Accumulate returns the contribution-phase schedule for p. The result is a copy
// the caller may modify.
func (e *Engine) Accumulate(ctx context.Context, p domain.AccumulationParams) (*domain.AccumulationSchedule, error) {
	s, err := e.accumulation(ctx, p)
	if err != nil {
		return nil, err
	}
	return s.Clone(), nil
}

func (e *Engine) accumulation(ctx context.Context, p domain.AccumulationParams) (*domain.AccumulationSchedule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return e.accumulations.get(p.Key(), func() (*domain.AccumulationSchedule, error) {
		start := time.Now()
		s, err := BuildAccumulation(p)
		if err != nil {
			e.Logger.Warnf("accumulation rejected: %v", err)
			return nil, err
		}
		e.Logger.Debugf("built accumulation schedule: years=%d traditional=%s%% in %s",
			p.Years, p.TraditionalPercent, time.Since(start))
		return s, nil
	})
}

// Distribute returns the drawdown schedule for p, reusing a cached contribution
// phase when one exists for p.Accumulation.
func (e *Engine) Distribute(ctx context.Context, p domain.DistributionParams) (*domain.DistributionSchedule, error) {
	_, s, err := e.distribution(ctx, p)
	if err != nil {
		return nil, err
	}
	return s.Clone(), nil
}

func (e *Engine) distribution(ctx context.Context, p domain.DistributionParams) (*domain.AccumulationSchedule, *domain.DistributionSchedule, error) {
	if err := ValidateDistributionParams(p); err != nil {
		e.Logger.Warnf("distribution rejected: %v", err)
		return nil, nil, err
	}
	acc, err := e.accumulation(ctx, p.Accumulation)
	if err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	dist, err := e.distributions.get(p.Key(), func() (*domain.DistributionSchedule, error) {
		s, err := BuildDistributionFrom(acc, p.DistributionSettings)
		if err != nil {
			return nil, fmt.Errorf("failed to build distribution schedule: %w", err)
		}
		e.Logger.Debugf("built distribution schedule: years=%d traditional share=%s",
			p.Years, s.TraditionalPct.StringFixed(4))
		return s, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return acc, dist, nil
}

// Project runs both phases and compares the tax saved against the tax paid.
func (e *Engine) Project(ctx context.Context, p domain.DistributionParams) (*domain.Projection, error) {
	acc, dist, err := e.distribution(ctx, p)
	if err != nil {
		return nil, err
	}
	cmp := Compare(acc, dist)
	e.Logger.Infof("projection complete: saved=%s paid=%s net=%s",
		cmp.TaxSavedWithInterest.StringFixed(2), cmp.TaxDuringDistributions.StringFixed(2), cmp.NetAdvantage.StringFixed(2))
	return &domain.Projection{
		Accumulation: acc.Clone(),
		Distribution: dist.Clone(),
		Comparison:   cmp,
	}, nil
}

// ProjectAccumulation wraps the contribution phase alone in a Projection.
func (e *Engine) ProjectAccumulation(ctx context.Context, p domain.AccumulationParams) (*domain.Projection, error) {
	acc, err := e.Accumulate(ctx, p)
	if err != nil {
		return nil, err
	}
	return &domain.Projection{Accumulation: acc}, nil
}

// CacheStats returns combined cache counters for both phases.
func (e *Engine) CacheStats() CacheStats {
	a, d := e.accumulations.stats(), e.distributions.stats()
	return CacheStats{
		Hits:    a.Hits + d.Hits,
		Misses:  a.Misses + d.Misses,
		Entries: a.Entries + d.Entries,
	}
}

// ResetCache drops every memoized schedule. Counters are kept.
func (e *Engine) ResetCache() {
	e.accumulations.purge()
	e.distributions.purge()
}
