package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/mikeconel/windrush-insights/internal/category"
	"github.com/mikeconel/windrush-insights/internal/dto"
	"github.com/mikeconel/windrush-insights/internal/model"
	"github.com/mikeconel/windrush-insights/internal/repository"
	"github.com/rs/zerolog/log"
)

// QuestionService manages the survey form definition. The public form only
// ever sees active questions in section order.
type QuestionService interface {
	CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	ListActive() ([]dto.QuestionResponseDTO, error)
	UpdateQuestion(id uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
}

type questionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	if choiceType(req.QuestionType) && len(req.Options) == 0 {
		return nil, fmt.Errorf("options are required for question type %s", req.QuestionType)
	}

	question := model.Question{}
	copier.Copy(&question, &req)
	question.Options = model.StringList(req.Options)
	question.IsActive = req.IsActive == nil || *req.IsActive

	if err := s.repo.Create(&question); err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		return nil, fmt.Errorf("error creating question: %w", err)
	}
	resp := toQuestionResponse(question)
	return &resp, nil
}

func (s *questionService) ListActive() ([]dto.QuestionResponseDTO, error) {
	questions, err := s.repo.FindActiveOrdered()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list active questions")
		return nil, fmt.Errorf("error listing questions: %w", err)
	}
	resp := make([]dto.QuestionResponseDTO, 0, len(questions))
	for _, q := range questions {
		resp = append(resp, toQuestionResponse(q))
	}
	return resp, nil
}

func (s *questionService) UpdateQuestion(id uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("question %d not found: %w", id, err)
	}
	if choiceType(req.QuestionType) && len(req.Options) == 0 {
		return nil, fmt.Errorf("options are required for question type %s", req.QuestionType)
	}

	copier.Copy(question, &req)
	question.Options = model.StringList(req.Options)
	if req.IsActive != nil {
		question.IsActive = *req.IsActive
	}

	if err := s.repo.Update(question); err != nil {
		log.Error().Err(err).Uint("id", id).Msg("Failed to update question")
		return nil, fmt.Errorf("error updating question: %w", err)
	}
	resp := toQuestionResponse(*question)
	return &resp, nil
}

func choiceType(questionType string) bool {
	return questionType == model.QuestionTypeMultipleChoice || questionType == model.QuestionTypeSingleChoice
}

func toQuestionResponse(q model.Question) dto.QuestionResponseDTO {
	var resp dto.QuestionResponseDTO
	copier.Copy(&resp, &q)
	resp.Options = []string(q.Options)
	resp.SectionLabel = category.Label(category.Section, q.Section)
	return resp
}
