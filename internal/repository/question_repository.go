package repository

import (
	"errors"
	"fmt"

	"github.com/mikeconel/windrush-insights/internal/model"
	"gorm.io/gorm"
)

// ErrQuestionNotFound reports a question lookup that matched zero or more
// than one prompt. Both are configuration problems the dashboard degrades on,
// never fatal faults.
var ErrQuestionNotFound = errors.New("question not found")

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindActiveOrdered() ([]model.Question, error)
	FindByTextFragment(fragment string) (*model.Question, error)
	Update(question *model.Question) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindActiveOrdered() ([]model.Question, error) {
	var questions []model.Question
	err := r.db.Where("is_active = ?", true).
		Order("section ASC, section_order ASC, id ASC").
		Find(&questions).Error
	return questions, err
}

// FindByTextFragment resolves a question by a case-insensitive substring of
// its text. A fragment matching zero or several questions is reported as
// ErrQuestionNotFound either way: the caller cannot tell which one was meant.
func (r *questionRepository) FindByTextFragment(fragment string) (*model.Question, error) {
	if fragment == "" {
		return nil, ErrQuestionNotFound
	}
	var questions []model.Question
	err := r.db.Where("text ILIKE ?", "%"+fragment+"%").
		Limit(2).
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("question lookup %q failed: %w", fragment, err)
	}
	if len(questions) != 1 {
		return nil, ErrQuestionNotFound
	}
	return &questions[0], nil
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Save(question).Error
}
