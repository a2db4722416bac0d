// Package app implements the application layer for streak.
package app

import (
	"context"
	"strings"
	"time"

	"go.trai.ch/streak/internal/adapters/cache"     //nolint:depguard // Wired in app layer
	"go.trai.ch/streak/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/streak/internal/core/domain"
	"go.trai.ch/streak/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	source   ports.ContributionSource
	renderer ports.CardRenderer
	results  *cache.ResultCache[domain.StreakResult]
	renders  *cache.RenderCache
	logger   ports.Logger
	tracer   ports.Tracer
	now      func() time.Time
}

// New creates a new App instance.
func New(
	source ports.ContributionSource,
	renderer ports.CardRenderer,
	results *cache.ResultCache[domain.StreakResult],
	renders *cache.RenderCache,
	log ports.Logger,
) *App {
	return &App{
		source:   source,
		renderer: renderer,
		results:  results,
		renders:  renders,
		logger:   log,
		tracer:   telemetry.NewOTelTracer(telemetry.TracerName),
		now:      time.Now,
	}
}

// WithTracer replaces the tracer wrapping each upstream fetch.
func (a *App) WithTracer(tracer ports.Tracer) *App {
	a.tracer = tracer
	return a
}

// WithClock replaces the clock used to anchor the current streak.
// This is primarily used for testing.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// Stats returns the streak statistics of username. Concurrent calls for the
// same user share one upstream fetch and its result is reused while fresh.
func (a *App) Stats(ctx context.Context, username string) (domain.StreakResult, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.StreakResult{}, domain.ErrMissingUsername
	}

	return a.results.Get(ctx, domain.ResultKey(username), func(ctx context.Context) (domain.StreakResult, error) {
		return a.fetch(ctx, username)
	})
}

// Card returns the rendered streak card of username for the given options.
func (a *App) Card(ctx context.Context, username string, opts domain.CardOptions) (string, error) {
	stats, err := a.Stats(ctx, username)
	if err != nil {
		return "", err
	}

	username = strings.TrimSpace(username)
	key := domain.RenderKey(username, domain.NormalizeParams(opts.Params()))
	return a.renders.Get(key, func() (string, error) {
		return a.renderer.RenderStreak(username, stats, opts)
	})
}

// ErrorCard renders the card shown in place of a streak card when err occurred.
func (a *App) ErrorCard(err error, opts domain.CardOptions) string {
	primary, secondary := domain.CardMessages(err)
	return a.renderer.RenderError(primary, secondary, opts)
}

func (a *App) fetch(ctx context.Context, username string) (domain.StreakResult, error) {
	start := time.Now()
	ctx, span := a.tracer.Start(ctx, "streak.fetch")
	defer span.End()
	span.SetAttribute("username", username)

	years, err := a.contributionYears(ctx, username)
	if err != nil {
		span.RecordError(err)
		return domain.StreakResult{}, zerr.With(zerr.Wrap(err, "failed to fetch contribution years"), "username", username)
	}
	if len(years) == 0 {
		a.logger.Info("no contribution years", "username", username)
		return domain.StreakResult{}, nil
	}

	calendars, err := a.calendars(ctx, username, years)
	if err != nil {
		span.RecordError(err)
		return domain.StreakResult{}, zerr.With(zerr.Wrap(err, "failed to fetch contribution calendars"), "username", username)
	}

	result := domain.CalculateStreaks(domain.AggregateContributions(years, calendars), a.now())
	span.SetAttribute("current", result.CurrentStreak)
	span.SetAttribute("longest", result.LongestStreak)
	a.logger.Info("fetched streak",
		"username", username,
		"years", len(years),
		"current", result.CurrentStreak,
		"longest", result.LongestStreak,
		"elapsed", time.Since(start),
	)
	return result, nil
}

func (a *App) contributionYears(ctx context.Context, username string) ([]int, error) {
	ctx, span := a.tracer.Start(ctx, "contributions.years")
	defer span.End()

	years, err := a.source.ContributionYears(ctx, username)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("years", years)
	return years, nil
}

func (a *App) calendars(ctx context.Context, username string, years []int) (map[int]domain.YearCalendar, error) {
	ctx, span := a.tracer.Start(ctx, "contributions.calendars")
	defer span.End()
	span.SetAttribute("years", years)

	calendars, err := a.source.Calendars(ctx, username, years)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return calendars, nil
}
