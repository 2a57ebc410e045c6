package service

import (
	"database/sql"
	"strings"
	"time"

	"github.com/mikeconel/windrush-insights/internal/model"
	"github.com/mikeconel/windrush-insights/internal/repository"
	"gorm.io/gorm"
)

// In-memory repository stubs backing the service tests.

type stubParticipantRepo struct {
	total       int64
	counts      map[string][]repository.AttributeCount
	pairs       []repository.CombinationCount
	bounds      *model.DateRange
	boundsErr   error
	boundsCalls int
	participant *model.Participant
	created     []*model.Participant
}

func (s *stubParticipantRepo) Create(tx *gorm.DB, p *model.Participant) error {
	p.ID = uint(len(s.created) + 1)
	s.created = append(s.created, p)
	return nil
}

func (s *stubParticipantRepo) Count(rng model.DateRange) (int64, error) {
	if !rng.Valid() {
		return 0, nil
	}
	return s.total, nil
}

func (s *stubParticipantRepo) CountByAttribute(attribute string, rng model.DateRange) ([]repository.AttributeCount, error) {
	if !rng.Valid() {
		return nil, nil
	}
	return s.counts[attribute], nil
}

func (s *stubParticipantRepo) CountByAttributePair(first, second string, rng model.DateRange) ([]repository.CombinationCount, error) {
	if !rng.Valid() {
		return nil, nil
	}
	return s.pairs, nil
}

func (s *stubParticipantRepo) ObservedBounds() (time.Time, time.Time, bool, error) {
	s.boundsCalls++
	if s.boundsErr != nil {
		return time.Time{}, time.Time{}, false, s.boundsErr
	}
	if s.bounds == nil {
		return time.Time{}, time.Time{}, false, nil
	}
	return s.bounds.Start, s.bounds.End, true, nil
}

func (s *stubParticipantRepo) FindBySessionKey(sessionKey string) (*model.Participant, error) {
	if s.participant != nil && s.participant.SessionKey == sessionKey {
		return s.participant, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubParticipantRepo) FindAll() ([]model.Participant, error) {
	if s.participant == nil {
		return nil, nil
	}
	return []model.Participant{*s.participant}, nil
}

type stubQuestionRepo struct {
	questions []model.Question
}

func (s *stubQuestionRepo) Create(q *model.Question) error { return nil }

func (s *stubQuestionRepo) FindByID(id uint) (*model.Question, error) {
	for i := range s.questions {
		if s.questions[i].ID == id {
			return &s.questions[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubQuestionRepo) FindActiveOrdered() ([]model.Question, error) {
	var active []model.Question
	for _, q := range s.questions {
		if q.IsActive {
			active = append(active, q)
		}
	}
	return active, nil
}

func (s *stubQuestionRepo) FindByTextFragment(fragment string) (*model.Question, error) {
	var matches []*model.Question
	for i := range s.questions {
		if strings.Contains(strings.ToLower(s.questions[i].Text), strings.ToLower(fragment)) {
			matches = append(matches, &s.questions[i])
		}
	}
	if len(matches) != 1 {
		return nil, repository.ErrQuestionNotFound
	}
	return matches[0], nil
}

func (s *stubQuestionRepo) Update(q *model.Question) error { return nil }

type stubResponseRepo struct {
	byQuestion map[uint][]model.Response
	byType     map[string][]model.Response
	created    []model.Response
}

func (s *stubResponseRepo) Create(tx *gorm.DB, r *model.Response) error {
	s.created = append(s.created, *r)
	return nil
}

func (s *stubResponseRepo) FindByQuestion(questionID uint, rng model.DateRange) ([]model.Response, error) {
	if !rng.Valid() {
		return nil, nil
	}
	return s.byQuestion[questionID], nil
}

func (s *stubResponseRepo) FindByQuestionType(questionType string) ([]model.Response, error) {
	return s.byType[questionType], nil
}

func (s *stubResponseRepo) FindByParticipant(participantID uint) ([]model.Response, error) {
	var all []model.Response
	for _, responses := range s.byQuestion {
		for _, r := range responses {
			if r.ParticipantID == participantID {
				all = append(all, r)
			}
		}
	}
	return all, nil
}

func (s *stubResponseRepo) FindAllWithQuestions() ([]model.Response, error) {
	var all []model.Response
	for _, responses := range s.byQuestion {
		all = append(all, responses...)
	}
	return all, nil
}

type stubSessionRepo struct {
	total     int64
	completed int64
	upserts   []sessionUpsert
}

type sessionUpsert struct {
	participantID uint
	completed     bool
}

func (s *stubSessionRepo) Upsert(tx *gorm.DB, participantID uint, completed bool, completedAt *time.Time) error {
	s.upserts = append(s.upserts, sessionUpsert{participantID: participantID, completed: completed})
	return nil
}

func (s *stubSessionRepo) Totals(rng model.DateRange) (int64, int64, error) {
	if !rng.Valid() {
		return 0, 0, nil
	}
	return s.total, s.completed, nil
}

func (s *stubSessionRepo) CountCompleted() (int64, error) {
	return s.completed, nil
}

// stubTxRunner runs the transaction body directly, with no database behind
// it; a configured error simulates a rolled-back transaction.
type stubTxRunner struct {
	err error
}

func (s stubTxRunner) Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	if s.err != nil {
		return s.err
	}
	return fc(nil)
}

func textAnswer(text string) model.AnswerValue {
	return model.AnswerValue{Kind: model.AnswerText, Text: text}
}

func listAnswer(items ...string) model.AnswerValue {
	return model.AnswerValue{Kind: model.AnswerList, List: items}
}
