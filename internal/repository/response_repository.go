package repository

import (
	"github.com/mikeconel/windrush-insights/internal/model"
	"gorm.io/gorm"
)

type ResponseRepository interface {
	Create(tx *gorm.DB, response *model.Response) error
	FindByQuestion(questionID uint, rng model.DateRange) ([]model.Response, error)
	FindByQuestionType(questionType string) ([]model.Response, error)
	FindByParticipant(participantID uint) ([]model.Response, error)
	FindAllWithQuestions() ([]model.Response, error)
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) Create(tx *gorm.DB, response *model.Response) error {
	return tx.Create(response).Error
}

func (r *responseRepository) FindByQuestion(questionID uint, rng model.DateRange) ([]model.Response, error) {
	if !rng.Valid() {
		return nil, nil
	}
	var responses []model.Response
	err := rangeScope(r.db.Where("question_id = ?", questionID), rng).
		Order("created_at ASC").
		Find(&responses).Error
	return responses, err
}

// FindByQuestionType returns responses to every question of one type, e.g.
// all free-text feedback. Feeds the public overview, which is unscoped.
func (r *responseRepository) FindByQuestionType(questionType string) ([]model.Response, error) {
	var responses []model.Response
	err := r.db.
		Joins("JOIN questions ON questions.id = responses.question_id").
		Where("questions.question_type = ?", questionType).
		Find(&responses).Error
	return responses, err
}

func (r *responseRepository) FindByParticipant(participantID uint) ([]model.Response, error) {
	var responses []model.Response
	err := r.db.Preload("Question").
		Where("participant_id = ?", participantID).
		Order("question_id ASC").
		Find(&responses).Error
	return responses, err
}

func (r *responseRepository) FindAllWithQuestions() ([]model.Response, error) {
	var responses []model.Response
	err := r.db.Preload("Question").
		Order("participant_id ASC, question_id ASC").
		Find(&responses).Error
	return responses, err
}
