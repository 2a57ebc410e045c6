package dto

import "time"

// QuestionCreateDTO is used by administrators to add a survey prompt.
type QuestionCreateDTO struct {
	Text         string   `json:"text" binding:"required"`
	QuestionType string   `json:"question_type" binding:"required,oneof=MC SC TF TX RT"`
	Options      []string `json:"options"`
	Section      string   `json:"section" binding:"required,oneof=demographic pre_event post_event"`
	SectionOrder int      `json:"section_order"`
	IsActive     *bool    `json:"is_active"`
}

// QuestionResponseDTO is one prompt of the active form definition.
type QuestionResponseDTO struct {
	ID           uint      `json:"id"`
	Text         string    `json:"text"`
	QuestionType string    `json:"question_type"`
	Options      []string  `json:"options,omitempty"`
	Section      string    `json:"section"`
	SectionLabel string    `json:"section_label"`
	SectionOrder int       `json:"section_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
