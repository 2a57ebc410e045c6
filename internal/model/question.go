package model

import (
	"time"
)

// Question types mirror the survey form: multiple choice, single choice,
// true/false, free text and rating scale.
const (
	QuestionTypeMultipleChoice = "MC"
	QuestionTypeSingleChoice   = "SC"
	QuestionTypeTrueFalse      = "TF"
	QuestionTypeText           = "TX"
	QuestionTypeRating         = "RT"
)

// Question sections group prompts on the form.
const (
	SectionDemographic = "demographic"
	SectionPreEvent    = "pre_event"
	SectionPostEvent   = "post_event"
)

type Question struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	Text         string     `json:"text" gorm:"type:text;not null"`
	QuestionType string     `json:"question_type" gorm:"size:2;not null"`
	Options      StringList `json:"options,omitempty" gorm:"type:jsonb"` // ordered list of allowed values, nullable
	Section      string     `json:"section" gorm:"size:50;not null"`
	SectionOrder int        `json:"section_order" gorm:"default:0"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
