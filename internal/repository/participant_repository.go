package repository

import (
	"fmt"
	"time"

	"github.com/mikeconel/windrush-insights/internal/model"
	"gorm.io/gorm"
)

// AttributeCount is one row of a single-attribute group-and-count.
type AttributeCount struct {
	Value string
	Count int64
}

// groupableColumns whitelists the participant attributes that aggregation may
// group by; anything else is a programming error, not user input.
var groupableColumns = map[string]bool{
	"gender":              true,
	"age_range":           true,
	"ethnicity":           true,
	"accessibility_needs": true,
	"referral_source":     true,
	"country":             true,
	"postcode":            true,
}

type ParticipantRepository interface {
	Create(tx *gorm.DB, participant *model.Participant) error
	Count(rng model.DateRange) (int64, error)
	CountByAttribute(attribute string, rng model.DateRange) ([]AttributeCount, error)
	CountByAttributePair(first, second string, rng model.DateRange) ([]CombinationCount, error)
	ObservedBounds() (min, max time.Time, ok bool, err error)
	FindBySessionKey(sessionKey string) (*model.Participant, error)
	FindAll() ([]model.Participant, error)
}

// CombinationCount is one observed (first, second) combination with a count.
type CombinationCount struct {
	FirstValue  string
	SecondValue string
	Count       int64
}

type participantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

// rangeScope restricts a query to rows whose created_at falls inside the
// range, inclusive on both ends. Callers must have checked rng.Valid().
func rangeScope(db *gorm.DB, rng model.DateRange) *gorm.DB {
	return db.Where("created_at >= ? AND created_at <= ?", rng.Start, rng.End)
}

func (r *participantRepository) Create(tx *gorm.DB, participant *model.Participant) error {
	return tx.Create(participant).Error
}

func (r *participantRepository) Count(rng model.DateRange) (int64, error) {
	if !rng.Valid() {
		return 0, nil
	}
	var count int64
	err := rangeScope(r.db.Model(&model.Participant{}), rng).Count(&count).Error
	return count, err
}

func (r *participantRepository) CountByAttribute(attribute string, rng model.DateRange) ([]AttributeCount, error) {
	if !groupableColumns[attribute] {
		return nil, fmt.Errorf("attribute %q is not groupable", attribute)
	}
	if !rng.Valid() {
		return nil, nil
	}
	var rows []AttributeCount
	err := rangeScope(r.db.Model(&model.Participant{}), rng).
		Select(fmt.Sprintf("%s AS value, COUNT(id) AS count", attribute)).
		Group(attribute).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("group by %s failed: %w", attribute, err)
	}
	return rows, nil
}

func (r *participantRepository) CountByAttributePair(first, second string, rng model.DateRange) ([]CombinationCount, error) {
	if !groupableColumns[first] || !groupableColumns[second] {
		return nil, fmt.Errorf("attribute pair (%q, %q) is not groupable", first, second)
	}
	if !rng.Valid() {
		return nil, nil
	}
	var rows []CombinationCount
	err := rangeScope(r.db.Model(&model.Participant{}), rng).
		Select(fmt.Sprintf("%s AS first_value, %s AS second_value, COUNT(id) AS count", first, second)).
		Group(fmt.Sprintf("%s, %s", first, second)).
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("group by %s, %s failed: %w", first, second, err)
	}
	return rows, nil
}

func (r *participantRepository) ObservedBounds() (time.Time, time.Time, bool, error) {
	var bounds struct {
		Min *time.Time
		Max *time.Time
	}
	err := r.db.Model(&model.Participant{}).
		Select("MIN(created_at) AS min, MAX(created_at) AS max").
		Scan(&bounds).Error
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}
	if bounds.Min == nil || bounds.Max == nil {
		return time.Time{}, time.Time{}, false, nil
	}
	return *bounds.Min, *bounds.Max, true, nil
}

func (r *participantRepository) FindBySessionKey(sessionKey string) (*model.Participant, error) {
	var participant model.Participant
	if err := r.db.Where("session_key = ?", sessionKey).First(&participant).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

func (r *participantRepository) FindAll() ([]model.Participant, error) {
	var participants []model.Participant
	err := r.db.Order("created_at ASC").Find(&participants).Error
	return participants, err
}
