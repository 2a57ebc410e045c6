package service

import (
	"bytes"
	"fmt"

	"github.com/mikeconel/windrush-insights/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// ExportService builds the raw-data workbook for authenticated admins. This
// is the only path exposing unaggregated participant-level records, so the
// controller re-checks the session before calling in.
type ExportService interface {
	FullDataset() ([]byte, error)
}

type exportService struct {
	participantRepo repository.ParticipantRepository
	responseRepo    repository.ResponseRepository
}

func NewExportService(participantRepo repository.ParticipantRepository, responseRepo repository.ResponseRepository) ExportService {
	return &exportService{participantRepo: participantRepo, responseRepo: responseRepo}
}

// FullDataset renders two sheets: one row per participant, one row per
// (participant, question, answer).
func (s *exportService) FullDataset() ([]byte, error) {
	participants, err := s.participantRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("error loading participants: %w", err)
	}
	responses, err := s.responseRepo.FindAllWithQuestions()
	if err != nil {
		return nil, fmt.Errorf("error loading responses: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close export workbook")
		}
	}()

	const participantSheet = "Participants"
	if err := f.SetSheetName("Sheet1", participantSheet); err != nil {
		return nil, err
	}
	header := []interface{}{"ID", "Session Key", "Gender", "Age Range", "Ethnicity", "Country",
		"Postcode", "Accessibility Needs", "Referral Source", "Mailing List", "Created At"}
	if err := f.SetSheetRow(participantSheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, p := range participants {
		row := []interface{}{p.ID, p.SessionKey, p.Gender, p.AgeRange, p.Ethnicity, p.Country,
			p.Postcode, p.AccessibilityNeeds, p.ReferralSource, p.MailingListOptin,
			p.CreatedAt.Format("2006-01-02 15:04:05")}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(participantSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	const responseSheet = "Responses"
	if _, err := f.NewSheet(responseSheet); err != nil {
		return nil, err
	}
	respHeader := []interface{}{"Participant ID", "Question", "Answer", "Created At"}
	if err := f.SetSheetRow(responseSheet, "A1", &respHeader); err != nil {
		return nil, err
	}
	for i, r := range responses {
		row := []interface{}{r.ParticipantID, r.Question.Text, r.Answer.Display(),
			r.CreatedAt.Format("2006-01-02 15:04:05")}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(responseSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing export workbook: %w", err)
	}
	return buf.Bytes(), nil
}
