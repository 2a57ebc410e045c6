package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mikeconel/windrush-insights/internal/cache"
	"github.com/mikeconel/windrush-insights/internal/dto"
	"github.com/rs/zerolog/log"
)

// DashboardService sits between the controllers and the aggregation layer,
// adding the cache tiers: the public overview is shared by everyone for up to
// an hour, private insight documents are scoped to one admin session for at
// most five minutes.
type DashboardService interface {
	Insights(ctx context.Context, sessionID string, start, end *time.Time) (dto.InsightsDTO, error)
	Overview(ctx context.Context) (dto.OverviewDTO, error)
	Refresh(ctx context.Context, sessionID string)
	EndSession(ctx context.Context, sessionID string)
}

type dashboardService struct {
	analytics AnalyticsService
	dateRange DateRangeService
	cache     *cache.Cache
}

func NewDashboardService(analytics AnalyticsService, dateRange DateRangeService, c *cache.Cache) DashboardService {
	return &dashboardService{analytics: analytics, dateRange: dateRange, cache: c}
}

// Insights resolves the requested range against the observed bounds and
// returns the full insight document, cached per (session, effective range).
func (s *dashboardService) Insights(ctx context.Context, sessionID string, start, end *time.Time) (dto.InsightsDTO, error) {
	rng, err := s.dateRange.Resolve(start, end)
	if err != nil {
		return dto.InsightsDTO{}, fmt.Errorf("error resolving date range: %w", err)
	}

	key := cache.PrivateKey(sessionID, insightsCacheName(rng.Start, rng.End, rng.Defined))
	var cached dto.InsightsDTO
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	insights := s.analytics.Insights(rng)
	s.cache.SetJSON(ctx, key, insights, cache.PrivateTTL)
	return insights, nil
}

// Overview returns the unauthenticated dashboard payload from the public
// cache tier, computing it on a miss.
func (s *dashboardService) Overview(ctx context.Context) (dto.OverviewDTO, error) {
	key := cache.PublicKey("overview")
	var cached dto.OverviewDTO
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	overview, err := s.analytics.Overview()
	if err != nil {
		return dto.OverviewDTO{}, err
	}
	s.cache.SetJSON(ctx, key, overview, cache.PublicTTL)
	return overview, nil
}

// Refresh drops everything derived: the cached date-range bounds, the public
// tier and the calling session's private tier. The next reads recompute from
// current data.
func (s *dashboardService) Refresh(ctx context.Context, sessionID string) {
	s.dateRange.Reset()
	s.cache.PurgePublic(ctx)
	s.cache.PurgeSession(ctx, sessionID)
	log.Info().Str("sessionID", sessionID).Msg("Dashboard caches refreshed")
}

// EndSession drops the private cache tier of a finished admin session.
func (s *dashboardService) EndSession(ctx context.Context, sessionID string) {
	s.cache.PurgeSession(ctx, sessionID)
}

func insightsCacheName(start, end time.Time, defined bool) string {
	if !defined {
		return "insights:unbounded"
	}
	return fmt.Sprintf("insights:%d:%d", start.Unix(), end.Unix())
}
