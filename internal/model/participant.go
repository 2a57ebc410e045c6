package model

import (
	"time"
)

// Participant is one survey respondent's demographic record. Created once at
// form submission and never updated afterwards.
type Participant struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	SessionKey         string    `json:"session_key" gorm:"size:40;not null;index"`
	Gender             string    `json:"gender" gorm:"size:2;default:'NS'"` // "M", "F", "NS"
	AgeRange           string    `json:"age_range" gorm:"size:7;default:'18-24'"`
	Ethnicity          string    `json:"ethnicity" gorm:"size:2;default:'NS'"`
	Country            string    `json:"country" gorm:"size:50;default:'England'"`
	Postcode           string    `json:"postcode" gorm:"size:10;default:''"`
	AccessibilityNeeds string    `json:"accessibility_needs" gorm:"size:100;default:'no_accessibility_needs'"`
	ReferralSource     string    `json:"referral_source" gorm:"size:20;default:''"`
	MailingListOptin   bool      `json:"mailing_list_optin" gorm:"default:false"`
	BooksRequested     uint      `json:"books_requested" gorm:"default:0"`
	CreatedAt          time.Time `json:"created_at"`
}
