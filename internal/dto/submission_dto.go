package dto

import (
	"encoding/json"
	"time"
)

// AnswerSubmitDTO is one raw answer in a form submission. The payload shape
// is resolved against the question type during intake.
type AnswerSubmitDTO struct {
	QuestionID uint            `json:"question_id" binding:"required"`
	Answer     json.RawMessage `json:"answer" binding:"required"`
}

// SubmissionDTO is the full evaluation-form payload: one participant plus all
// of their answers, persisted atomically.
type SubmissionDTO struct {
	Gender             string            `json:"gender"`
	Ethnicity          string            `json:"ethnicity"`
	AgeRange           string            `json:"age_range"`
	Country            string            `json:"country"`
	Postcode           string            `json:"postcode"`
	AccessibilityNeeds string            `json:"accessibility_needs"`
	ReferralSource     string            `json:"referral_source"`
	MailingListOptin   bool              `json:"mailing_list_optin"`
	BooksRequested     uint              `json:"books_requested"`
	Answers            []AnswerSubmitDTO `json:"answers" binding:"required,min=1,dive"`
}

// SubmissionResultDTO confirms a stored submission.
type SubmissionResultDTO struct {
	SessionKey    string    `json:"session_key"`
	ParticipantID uint      `json:"participant_id"`
	AnswersStored int       `json:"answers_stored"`
	CompletedAt   time.Time `json:"completed_at"`
}

// ParticipantAnswerDTO is one (question text, answer) row of a participant's
// flat answer listing, as consumed by the export generator.
type ParticipantAnswerDTO struct {
	QuestionText string `json:"question_text"`
	Answer       string `json:"answer"`
}
