package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/mikeconel/windrush-insights/internal/model"
	"github.com/mikeconel/windrush-insights/internal/repository"
	"github.com/rs/zerolog/log"
)

// DateRangeService owns the session filter bounding every aggregation query.
// Bounds are bootstrapped lazily from the observed min/max participant
// creation timestamps and cached until Reset.
type DateRangeService interface {
	Bootstrap() (model.DateRange, error)
	Resolve(start, end *time.Time) (model.DateRange, error)
	Reset()
}

type dateRangeService struct {
	participantRepo repository.ParticipantRepository

	mu     sync.Mutex
	bounds *model.DateRange // nil until first successful bootstrap
}

func NewDateRangeService(participantRepo repository.ParticipantRepository) DateRangeService {
	return &dateRangeService{participantRepo: participantRepo}
}

// Bootstrap returns the full observed range. With no participants on record
// the range is undefined, which downstream aggregation treats exactly like an
// empty result set.
func (s *dateRangeService) Bootstrap() (model.DateRange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bootstrapLocked()
}

func (s *dateRangeService) bootstrapLocked() (model.DateRange, error) {
	if s.bounds != nil {
		return *s.bounds, nil
	}
	min, max, ok, err := s.participantRepo.ObservedBounds()
	if err != nil {
		return model.DateRange{}, fmt.Errorf("observed bounds query failed: %w", err)
	}
	if !ok {
		// No data yet: leave bounds uncached so the next call re-checks.
		return model.DateRange{}, nil
	}
	bounds := model.DateRange{Start: min, End: max, Defined: true}
	s.bounds = &bounds
	log.Info().Time("start", min).Time("end", max).Msg("Date-range bounds bootstrapped")
	return bounds, nil
}

// Resolve turns user input into the effective filter: missing ends fall back
// to the observed bounds and everything is clamped into them.
func (s *dateRangeService) Resolve(start, end *time.Time) (model.DateRange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bounds, err := s.bootstrapLocked()
	if err != nil {
		return model.DateRange{}, err
	}
	if !bounds.Defined {
		return model.DateRange{}, nil
	}
	rng := bounds
	if start != nil {
		rng.Start = *start
	}
	if end != nil {
		rng.End = *end
	}
	return rng.Clamp(bounds.Start, bounds.End), nil
}

// Reset drops the cached bounds; the next call re-bootstraps from current
// data. Used by the dashboard's "refresh all" action.
func (s *dateRangeService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bounds = nil
	log.Info().Msg("Date-range bounds reset")
}
