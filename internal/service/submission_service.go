package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mikeconel/windrush-insights/internal/dto"
	"github.com/mikeconel/windrush-insights/internal/model"
	"github.com/mikeconel/windrush-insights/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SubmissionService stores one completed evaluation form: participant,
// responses and session state land in a single transaction.
type SubmissionService interface {
	Submit(req dto.SubmissionDTO) (*dto.SubmissionResultDTO, error)
	ParticipantAnswers(sessionKey string) ([]dto.ParticipantAnswerDTO, error)
}

// txRunner is the one slice of *gorm.DB the intake path needs: run a
// function inside a single transaction.
type txRunner interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

type submissionService struct {
	participantRepo repository.ParticipantRepository
	questionRepo    repository.QuestionRepository
	responseRepo    repository.ResponseRepository
	sessionRepo     repository.SessionRepository
	db              txRunner // transactions span all three repositories
}

func NewSubmissionService(
	participantRepo repository.ParticipantRepository,
	questionRepo repository.QuestionRepository,
	responseRepo repository.ResponseRepository,
	sessionRepo repository.SessionRepository,
	db *gorm.DB,
) SubmissionService {
	return &submissionService{
		participantRepo: participantRepo,
		questionRepo:    questionRepo,
		responseRepo:    responseRepo,
		sessionRepo:     sessionRepo,
		db:              db,
	}
}

// Submit persists the form atomically. Answers referencing unknown questions
// are skipped, the rest of the submission still goes through; answer payloads
// are resolved into their tagged variant here, once, against the question
// type.
func (s *submissionService) Submit(req dto.SubmissionDTO) (*dto.SubmissionResultDTO, error) {
	questions, err := s.questionRepo.FindActiveOrdered()
	if err != nil {
		log.Error().Err(err).Msg("Submit: active questions lookup failed")
		return nil, fmt.Errorf("error loading form definition: %w", err)
	}
	questionMap := make(map[uint]model.Question, len(questions))
	for _, q := range questions {
		questionMap[q.ID] = q
	}

	participant := model.Participant{
		SessionKey:         uuid.NewString(),
		Gender:             defaultIfEmpty(req.Gender, "NS"),
		Ethnicity:          defaultIfEmpty(req.Ethnicity, "NS"),
		AgeRange:           defaultIfEmpty(req.AgeRange, "18-24"),
		Country:            defaultIfEmpty(req.Country, "England"),
		Postcode:           req.Postcode,
		AccessibilityNeeds: defaultIfEmpty(req.AccessibilityNeeds, "no_accessibility_needs"),
		ReferralSource:     req.ReferralSource,
		MailingListOptin:   req.MailingListOptin,
		BooksRequested:     req.BooksRequested,
	}

	now := time.Now()
	stored := 0
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.participantRepo.Create(tx, &participant); err != nil {
			return fmt.Errorf("failed to create participant: %w", err)
		}
		for _, answer := range req.Answers {
			question, exists := questionMap[answer.QuestionID]
			if !exists {
				log.Warn().Uint("questionID", answer.QuestionID).Msg("Submit: answer for unknown question, skipping")
				continue
			}
			response := model.Response{
				ParticipantID: participant.ID,
				QuestionID:    question.ID,
				Answer:        model.ResolveAnswer(question.QuestionType, answer.Answer),
			}
			if err := s.responseRepo.Create(tx, &response); err != nil {
				return fmt.Errorf("failed to store response for question %d: %w", question.ID, err)
			}
			stored++
		}
		if err := s.sessionRepo.Upsert(tx, participant.ID, true, &now); err != nil {
			return fmt.Errorf("failed to upsert evaluation session: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("Submit: transaction failed")
		return nil, err
	}

	log.Info().Uint("participantID", participant.ID).Int("answers", stored).Msg("Evaluation submitted")
	return &dto.SubmissionResultDTO{
		SessionKey:    participant.SessionKey,
		ParticipantID: participant.ID,
		AnswersStored: stored,
		CompletedAt:   now,
	}, nil
}

// ParticipantAnswers returns the flat (question text, answer) listing for one
// participant, the shape the PDF/export generator consumes.
func (s *submissionService) ParticipantAnswers(sessionKey string) ([]dto.ParticipantAnswerDTO, error) {
	participant, err := s.participantRepo.FindBySessionKey(sessionKey)
	if err != nil {
		return nil, fmt.Errorf("session %s not found: %w", sessionKey, err)
	}
	responses, err := s.responseRepo.FindByParticipant(participant.ID)
	if err != nil {
		return nil, fmt.Errorf("error loading responses: %w", err)
	}
	rows := make([]dto.ParticipantAnswerDTO, 0, len(responses))
	for _, resp := range responses {
		rows = append(rows, dto.ParticipantAnswerDTO{
			QuestionText: resp.Question.Text,
			Answer:       resp.Answer.Display(),
		})
	}
	return rows, nil
}

func defaultIfEmpty(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
