package service

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/mikeconel/windrush-insights/internal/category"
	"github.com/mikeconel/windrush-insights/internal/dto"
	"github.com/mikeconel/windrush-insights/internal/model"
	"github.com/mikeconel/windrush-insights/internal/repository"
	"github.com/mikeconel/windrush-insights/internal/sentiment"
	"github.com/rs/zerolog/log"
)

// Question lookup fragments. Sections resolve their question by substring
// match so the prompts can be reworded on the form without code changes.
const (
	fragmentRecommendation   = "recommend this event to a friend"
	fragmentPreferredFormats = "What type of events do you prefer"
	fragmentSocialPlatforms  = "If you chose Social Media"
	fragmentEventInterests   = "What events interest you?"
	fragmentLoyalty          = "How long have you been following Windrush Foundation"
	fragmentSessions         = "Which sessions did you find most valuable?"
	fragmentSpeakerRating    = "What did you think of the keynote speaker?"
)

// sentimentCandidates are the feedback prompts considered as the sentiment
// source, in preference order. The first one that resolves wins.
var sentimentCandidates = []string{
	"overall experience",
	"What did you enjoy most",
	"How can we improve",
	"any other comments",
}

// breakdownOrder selects how grouped rows are sorted for display.
type breakdownOrder int

const (
	orderByCount breakdownOrder = iota // preferred-choice style, count descending
	orderByKey                         // distribution style, key ascending
	orderByAgeRange                    // canonical age-range order
)

// AnalyticsService assembles every chart and metric of the dashboard. All
// methods degrade to a status instead of failing: one broken slot never
// blanks the rest.
type AnalyticsService interface {
	Insights(rng model.DateRange) dto.InsightsDTO
	Overview() (dto.OverviewDTO, error)
}

type analyticsService struct {
	participantRepo repository.ParticipantRepository
	questionRepo    repository.QuestionRepository
	responseRepo    repository.ResponseRepository
	sessionRepo     repository.SessionRepository
}

func NewAnalyticsService(
	participantRepo repository.ParticipantRepository,
	questionRepo repository.QuestionRepository,
	responseRepo repository.ResponseRepository,
	sessionRepo repository.SessionRepository,
) AnalyticsService {
	return &analyticsService{
		participantRepo: participantRepo,
		questionRepo:    questionRepo,
		responseRepo:    responseRepo,
		sessionRepo:     sessionRepo,
	}
}

// Insights computes the full private dashboard document for one date range.
// Nothing is retained between calls; all scoping comes from rng.
func (s *analyticsService) Insights(rng model.DateRange) dto.InsightsDTO {
	return dto.InsightsDTO{
		Range:              dto.DateRangeDTO{Start: rng.Start, End: rng.End, Defined: rng.Defined},
		TotalParticipants:  s.totalParticipants(rng),
		RecommendationRate: s.recommendationRate(rng),
		CompletionRate:     s.completionRate(rng),
		AgeOverview:        s.ageOverview(rng),
		AgeDistribution:    s.attributeBreakdown("Age Group Distribution", "age_range", "", rng, orderByAgeRange, false),
		GenderDistribution: s.attributeBreakdown("Gender Distribution", "gender", category.Gender, rng, orderByCount, false),
		Demographics:       s.demographics(rng),
		AccessibilityNeeds: s.attributeBreakdown("Accessibility Requirements", "accessibility_needs", category.Accessibility, rng, orderByCount, true),
		ReferralSources:    s.attributeBreakdown("Referral Sources Breakdown", "referral_source", category.Referral, rng, orderByCount, true),
		PreferredFormats:   s.questionBreakdown("Preferred Event Formats", fragmentPreferredFormats, rng, orderByCount),
		SocialPlatforms:    s.questionBreakdown("Social Media Platform Distribution", fragmentSocialPlatforms, rng, orderByKey),
		EventInterests:     s.questionBreakdown("Event Format Distribution", fragmentEventInterests, rng, orderByKey),
		FoundationLoyalty:  s.questionBreakdown("Windrush Foundation Loyalty Levels", fragmentLoyalty, rng, orderByKey),
		PreferredSessions:  s.questionBreakdown("Preferred Session Format", fragmentSessions, rng, orderByKey),
		SpeakerRating:      s.questionBreakdown("Speaker Rating Distribution", fragmentSpeakerRating, rng, orderByKey),
		Sentiment:          s.sentimentAnalysis(rng),
	}
}

func (s *analyticsService) totalParticipants(rng model.DateRange) dto.Metric {
	m := dto.Metric{Label: "Total Participants"}
	if !rng.Valid() {
		m.Status = dto.StatusEmpty
		return m
	}
	count, err := s.participantRepo.Count(rng)
	if err != nil {
		log.Error().Err(err).Msg("Total participants count failed")
		m.Status = dto.StatusExternalFailure
		return m
	}
	m.Status = dto.StatusOK
	m.Value = float64Ptr(float64(count))
	return m
}

// recommendationRate reports the share of "Yes" answers to the
// recommendation question. Zero responses in range reads "not available",
// which is deliberately distinct from a measured 0%.
func (s *analyticsService) recommendationRate(rng model.DateRange) dto.Metric {
	m := dto.Metric{Label: "Would Recommend"}
	question, err := s.questionRepo.FindByTextFragment(fragmentRecommendation)
	if err != nil {
		if !errors.Is(err, repository.ErrQuestionNotFound) {
			log.Error().Err(err).Msg("Recommendation question lookup failed")
			m.Status = dto.StatusExternalFailure
			return m
		}
		m.Status = dto.StatusNotFound
		return m
	}
	responses, err := s.responseRepo.FindByQuestion(question.ID, rng)
	if err != nil {
		log.Error().Err(err).Uint("questionID", question.ID).Msg("Recommendation responses query failed")
		m.Status = dto.StatusExternalFailure
		return m
	}
	if len(responses) == 0 {
		m.Status = dto.StatusEmpty
		return m
	}
	var yes int
	for _, resp := range responses {
		for _, key := range resp.Answer.Keys() {
			if strings.Contains(strings.ToLower(key), "yes") {
				yes++
				break
			}
		}
	}
	rate := round1(float64(yes) / float64(len(responses)) * 100)
	m.Status = dto.StatusOK
	m.Value = float64Ptr(float64(len(responses)))
	m.Percentage = float64Ptr(rate)
	m.Help = pluralHelp(yes, len(responses))
	return m
}

func (s *analyticsService) completionRate(rng model.DateRange) dto.Metric {
	m := dto.Metric{Label: "Form Completion Rate"}
	if !rng.Valid() {
		m.Status = dto.StatusEmpty
		return m
	}
	total, completed, err := s.sessionRepo.Totals(rng)
	if err != nil {
		log.Error().Err(err).Msg("Session totals query failed")
		m.Status = dto.StatusExternalFailure
		return m
	}
	if total == 0 {
		m.Status = dto.StatusEmpty
		return m
	}
	m.Status = dto.StatusOK
	m.Value = float64Ptr(float64(total))
	m.Percentage = float64Ptr(round1(float64(completed) / float64(total) * 100))
	return m
}

// ageOverview derives min/avg/max age from range midpoints. Rows whose label
// has no midpoint are excluded, not counted as zero; if nothing remains all
// three metrics are not available together.
func (s *analyticsService) ageOverview(rng model.DateRange) dto.AgeOverviewDTO {
	overview := dto.AgeOverviewDTO{Status: dto.StatusEmpty}
	if !rng.Valid() {
		return overview
	}
	rows, err := s.participantRepo.CountByAttribute("age_range", rng)
	if err != nil {
		log.Error().Err(err).Msg("Age range aggregation failed")
		overview.Status = dto.StatusExternalFailure
		return overview
	}
	var minMid, maxMid, sum float64
	var total int64
	for _, row := range rows {
		mid, ok := category.AgeMidpoint(row.Value)
		if !ok {
			continue
		}
		if total == 0 || mid < minMid {
			minMid = mid
		}
		if total == 0 || mid > maxMid {
			maxMid = mid
		}
		sum += mid * float64(row.Count)
		total += row.Count
	}
	if total == 0 {
		return overview
	}
	overview.Status = dto.StatusOK
	overview.Min = float64Ptr(minMid)
	overview.Max = float64Ptr(maxMid)
	overview.Avg = float64Ptr(round1(sum / float64(total)))
	return overview
}

// attributeBreakdown groups participants by one demographic column.
// categoryName maps raw codes to display labels; excludeEmpty drops the
// blank code the way the referral/accessibility charts do.
func (s *analyticsService) attributeBreakdown(title, attribute, categoryName string, rng model.DateRange, order breakdownOrder, excludeEmpty bool) dto.Breakdown {
	b := dto.Breakdown{Title: title}
	if !rng.Valid() {
		b.Status = dto.StatusEmpty
		return b
	}
	rows, err := s.participantRepo.CountByAttribute(attribute, rng)
	if err != nil {
		log.Error().Err(err).Str("attribute", attribute).Msg("Attribute aggregation failed")
		b.Status = dto.StatusExternalFailure
		return b
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		if excludeEmpty && row.Value == "" {
			continue
		}
		label := row.Value
		if categoryName != "" {
			label = category.Label(categoryName, row.Value)
		}
		counts[label] += row.Count
	}
	return finishBreakdown(b, counts, order)
}

// questionBreakdown is the generic categorical breakdown parametrized by a
// question lookup key. It powers every per-question chart section.
func (s *analyticsService) questionBreakdown(title, fragment string, rng model.DateRange, order breakdownOrder) dto.Breakdown {
	b := dto.Breakdown{Title: title}
	question, err := s.questionRepo.FindByTextFragment(fragment)
	if err != nil {
		if !errors.Is(err, repository.ErrQuestionNotFound) {
			log.Error().Err(err).Str("fragment", fragment).Msg("Question lookup failed")
			b.Status = dto.StatusExternalFailure
			return b
		}
		b.Status = dto.StatusNotFound
		return b
	}
	responses, err := s.responseRepo.FindByQuestion(question.ID, rng)
	if err != nil {
		log.Error().Err(err).Uint("questionID", question.ID).Msg("Response aggregation failed")
		b.Status = dto.StatusExternalFailure
		return b
	}
	counts := make(map[string]int64)
	for _, resp := range responses {
		for _, key := range resp.Answer.Keys() {
			key = strings.TrimSpace(key)
			if key == "" {
				continue
			}
			counts[key]++
		}
	}
	return finishBreakdown(b, counts, order)
}

func (s *analyticsService) demographics(rng model.DateRange) dto.CrossBreakdown {
	b := dto.CrossBreakdown{Title: "Demographic Breakdown"}
	if !rng.Valid() {
		b.Status = dto.StatusEmpty
		return b
	}
	rows, err := s.participantRepo.CountByAttributePair("gender", "ethnicity", rng)
	if err != nil {
		log.Error().Err(err).Msg("Gender/ethnicity aggregation failed")
		b.Status = dto.StatusExternalFailure
		return b
	}
	if len(rows) == 0 {
		b.Status = dto.StatusEmpty
		return b
	}
	b.Status = dto.StatusOK
	for _, row := range rows {
		b.Rows = append(b.Rows, dto.CrossRow{
			Keys: []string{
				category.Label(category.Gender, row.FirstValue),
				category.Label(category.Ethnicity, row.SecondValue),
			},
			Count: row.Count,
		})
	}
	return b
}

func (s *analyticsService) sentimentAnalysis(rng model.DateRange) dto.SentimentDTO {
	result := dto.SentimentDTO{Status: dto.StatusNotFound}
	var question *model.Question
	for _, fragment := range sentimentCandidates {
		q, err := s.questionRepo.FindByTextFragment(fragment)
		if err == nil {
			question = q
			break
		}
		if !errors.Is(err, repository.ErrQuestionNotFound) {
			log.Error().Err(err).Str("fragment", fragment).Msg("Sentiment question lookup failed")
			result.Status = dto.StatusExternalFailure
			return result
		}
	}
	if question == nil {
		return result
	}
	responses, err := s.responseRepo.FindByQuestion(question.ID, rng)
	if err != nil {
		log.Error().Err(err).Uint("questionID", question.ID).Msg("Sentiment responses query failed")
		result.Status = dto.StatusExternalFailure
		return result
	}
	answers := make([]model.AnswerValue, 0, len(responses))
	for _, resp := range responses {
		answers = append(answers, resp.Answer)
	}
	summary := sentiment.Classify(answers)
	if summary.Total() == 0 {
		result.Status = dto.StatusEmpty
		return result
	}
	pos, neu, neg := summary.Percentages()
	return dto.SentimentDTO{
		Status:             dto.StatusOK,
		Positive:           summary.Positive,
		Neutral:            summary.Neutral,
		Negative:           summary.Negative,
		PositivePercentage: pos,
		NeutralPercentage:  neu,
		NegativePercentage: neg,
	}
}

// Overview builds the public dashboard payload: completed-session count plus
// the term-frequency table behind the community feedback word cloud.
func (s *analyticsService) Overview() (dto.OverviewDTO, error) {
	completed, err := s.sessionRepo.CountCompleted()
	if err != nil {
		return dto.OverviewDTO{}, err
	}
	overview := dto.OverviewDTO{CompletedSessions: completed}

	responses, err := s.responseRepo.FindByQuestionType(model.QuestionTypeText)
	if err != nil {
		log.Error().Err(err).Msg("Feedback responses query failed")
		return overview, nil
	}
	freq := make(map[string]int)
	for _, resp := range responses {
		text, ok := resp.Answer.TextValue()
		if !ok {
			continue
		}
		for _, word := range strings.Fields(strings.ToLower(text)) {
			word = strings.Trim(word, `.,!?;:"'()`)
			if len(word) < 4 || stopwords[word] {
				continue
			}
			freq[word]++
		}
	}
	for word, count := range freq {
		overview.FeedbackTerms = append(overview.FeedbackTerms, dto.WordCountDTO{Word: word, Count: count})
	}
	sort.Slice(overview.FeedbackTerms, func(i, j int) bool {
		a, b := overview.FeedbackTerms[i], overview.FeedbackTerms[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Word < b.Word
	})
	if len(overview.FeedbackTerms) > 50 {
		overview.FeedbackTerms = overview.FeedbackTerms[:50]
	}
	return overview, nil
}

var stopwords = map[string]bool{
	"this": true, "that": true, "with": true, "from": true, "have": true,
	"were": true, "been": true, "they": true, "them": true, "there": true,
	"would": true, "could": true, "should": true, "about": true, "very": true,
	"really": true, "event": true, "events": true, "more": true, "much": true,
	"what": true, "when": true, "where": true, "your": true, "their": true,
}

// finishBreakdown turns a count map into ordered rows with one-decimal
// percentages. An empty map reads as "no data".
func finishBreakdown(b dto.Breakdown, counts map[string]int64, order breakdownOrder) dto.Breakdown {
	if len(counts) == 0 {
		b.Status = dto.StatusEmpty
		return b
	}
	var total int64
	for _, count := range counts {
		total += count
	}
	rows := make([]dto.BreakdownRow, 0, len(counts))
	for value, count := range counts {
		rows = append(rows, dto.BreakdownRow{
			Category:   value,
			Count:      count,
			Percentage: round1(float64(count) / float64(total) * 100),
		})
	}
	switch order {
	case orderByCount:
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].Count != rows[j].Count {
				return rows[i].Count > rows[j].Count
			}
			return rows[i].Category < rows[j].Category
		})
	case orderByAgeRange:
		sort.Slice(rows, func(i, j int) bool {
			oi, oj := category.AgeRangeOrder(rows[i].Category), category.AgeRangeOrder(rows[j].Category)
			if oi != oj {
				return oi < oj
			}
			return rows[i].Category < rows[j].Category
		})
	default:
		sort.Slice(rows, func(i, j int) bool { return keyLess(rows[i].Category, rows[j].Category) })
	}
	b.Status = dto.StatusOK
	b.Rows = rows
	return b
}

// keyLess orders breakdown keys numerically when both sides parse as numbers,
// so rating scales read "1, 2, ... 10" instead of lexicographic "1, 10, 2".
// Numeric keys sort ahead of plain-text ones.
func keyLess(a, b string) bool {
	na, errA := strconv.ParseFloat(a, 64)
	nb, errB := strconv.ParseFloat(b, 64)
	switch {
	case errA == nil && errB == nil:
		if na != nb {
			return na < nb
		}
		return a < b
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return a < b
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func float64Ptr(v float64) *float64 {
	return &v
}

func pluralHelp(yes, total int) string {
	return fmt.Sprintf("%d of %d participants said Yes", yes, total)
}
