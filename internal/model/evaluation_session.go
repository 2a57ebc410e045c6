package model

import (
	"time"
)

// EvaluationSession tracks the completion state of one participant's pass
// through the form.
type EvaluationSession struct {
	ID            uint        `gorm:"primarykey" json:"id"`
	ParticipantID uint        `json:"participant_id" gorm:"not null;uniqueIndex;constraint:OnDelete:CASCADE"`
	Participant   Participant `json:"participant,omitempty" gorm:"foreignKey:ParticipantID;constraint:OnDelete:CASCADE"`
	Completed     bool        `json:"completed" gorm:"default:false"`
	StartedAt     time.Time   `json:"started_at" gorm:"autoCreateTime"`
	CompletedAt   *time.Time  `json:"completed_at,omitempty"`
}
