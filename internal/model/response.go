package model

import (
	"time"
)

// Response is one answer to one question by one participant. Owned by the
// participant and cascade-deleted with it.
type Response struct {
	ID            uint        `gorm:"primarykey" json:"id"`
	ParticipantID uint        `json:"participant_id" gorm:"not null;index;constraint:OnDelete:CASCADE"`
	Participant   Participant `json:"participant,omitempty" gorm:"foreignKey:ParticipantID;constraint:OnDelete:CASCADE"`
	QuestionID    uint        `json:"question_id" gorm:"not null;index;constraint:OnDelete:CASCADE"`
	Question      Question    `json:"question,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
	Answer        AnswerValue `json:"answer" gorm:"type:jsonb;not null"`
	CreatedAt     time.Time   `json:"created_at"`
}
