package repository

import (
	"time"

	"github.com/mikeconel/windrush-insights/internal/model"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Upsert(tx *gorm.DB, participantID uint, completed bool, completedAt *time.Time) error
	Totals(rng model.DateRange) (total, completed int64, err error)
	CountCompleted() (int64, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// Upsert creates or updates the evaluation session for one participant.
// Only the completion state ever changes after creation.
func (r *sessionRepository) Upsert(tx *gorm.DB, participantID uint, completed bool, completedAt *time.Time) error {
	var session model.EvaluationSession
	err := tx.Where("participant_id = ?", participantID).First(&session).Error
	if err == gorm.ErrRecordNotFound {
		session = model.EvaluationSession{
			ParticipantID: participantID,
			Completed:     completed,
			CompletedAt:   completedAt,
		}
		return tx.Create(&session).Error
	}
	if err != nil {
		return err
	}
	session.Completed = completed
	session.CompletedAt = completedAt
	return tx.Save(&session).Error
}

func (r *sessionRepository) Totals(rng model.DateRange) (int64, int64, error) {
	if !rng.Valid() {
		return 0, 0, nil
	}
	var total, completed int64
	if err := r.db.Model(&model.EvaluationSession{}).
		Where("started_at >= ? AND started_at <= ?", rng.Start, rng.End).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.Model(&model.EvaluationSession{}).
		Where("started_at >= ? AND started_at <= ?", rng.Start, rng.End).
		Where("completed = ?", true).
		Count(&completed).Error; err != nil {
		return 0, 0, err
	}
	return total, completed, nil
}

func (r *sessionRepository) CountCompleted() (int64, error) {
	var completed int64
	err := r.db.Model(&model.EvaluationSession{}).
		Where("completed = ?", true).
		Count(&completed).Error
	return completed, err
}
