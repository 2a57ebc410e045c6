package service

import (
	"testing"
	"time"

	"github.com/mikeconel/windrush-insights/internal/dto"
	"github.com/mikeconel/windrush-insights/internal/model"
	"github.com/mikeconel/windrush-insights/internal/repository"
)

func testRange() model.DateRange {
	return model.DateRange{
		Start:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:     time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		Defined: true,
	}
}

func newAnalytics(participants *stubParticipantRepo, questions *stubQuestionRepo, responses *stubResponseRepo, sessions *stubSessionRepo) AnalyticsService {
	if participants == nil {
		participants = &stubParticipantRepo{}
	}
	if questions == nil {
		questions = &stubQuestionRepo{}
	}
	if responses == nil {
		responses = &stubResponseRepo{}
	}
	if sessions == nil {
		sessions = &stubSessionRepo{}
	}
	return NewAnalyticsService(participants, questions, responses, sessions)
}

func TestInsightsInvertedRangeReadsEmpty(t *testing.T) {
	svc := newAnalytics(nil, nil, nil, nil)
	rng := testRange()
	rng.Start, rng.End = rng.End, rng.Start

	insights := svc.Insights(rng)

	if insights.TotalParticipants.Status != dto.StatusEmpty {
		t.Errorf("total participants: got %q, want empty", insights.TotalParticipants.Status)
	}
	if insights.CompletionRate.Status != dto.StatusEmpty {
		t.Errorf("completion rate: got %q, want empty", insights.CompletionRate.Status)
	}
	if insights.AgeDistribution.Status != dto.StatusEmpty {
		t.Errorf("age distribution: got %q, want empty", insights.AgeDistribution.Status)
	}
	if insights.Demographics.Status != dto.StatusEmpty {
		t.Errorf("demographics: got %q, want empty", insights.Demographics.Status)
	}
}

func TestInsightsIdempotent(t *testing.T) {
	participants := &stubParticipantRepo{
		total: 10,
		counts: map[string][]repository.AttributeCount{
			"age_range": {{Value: "18-24", Count: 10}, {Value: "25-34", Count: 5}},
			"gender":    {{Value: "F", Count: 9}, {Value: "M", Count: 6}},
		},
	}
	svc := newAnalytics(participants, nil, nil, &stubSessionRepo{total: 10, completed: 8})

	first := svc.Insights(testRange())
	second := svc.Insights(testRange())

	if *first.TotalParticipants.Value != *second.TotalParticipants.Value {
		t.Error("repeated evaluation over unchanged data must agree")
	}
	if len(first.AgeDistribution.Rows) != len(second.AgeDistribution.Rows) {
		t.Error("repeated evaluation changed the age distribution")
	}
}

func TestRecommendationRate(t *testing.T) {
	question := model.Question{Text: "Would you recommend this event to a friend or colleague?", QuestionType: model.QuestionTypeTrueFalse, IsActive: true}
	question.ID = 7

	responses := make([]model.Response, 0, 10)
	for i := 0; i < 7; i++ {
		responses = append(responses, model.Response{QuestionID: 7, Answer: textAnswer("Yes, definitely")})
	}
	for i := 0; i < 3; i++ {
		responses = append(responses, model.Response{QuestionID: 7, Answer: textAnswer("No")})
	}

	svc := newAnalytics(nil,
		&stubQuestionRepo{questions: []model.Question{question}},
		&stubResponseRepo{byQuestion: map[uint][]model.Response{7: responses}},
		nil)

	m := svc.Insights(testRange()).RecommendationRate
	if m.Status != dto.StatusOK {
		t.Fatalf("status: got %q, want ok", m.Status)
	}
	if *m.Percentage != 70.0 {
		t.Errorf("rate: got %v, want 70.0", *m.Percentage)
	}
	if *m.Value != 10 {
		t.Errorf("response count: got %v, want 10", *m.Value)
	}
}

func TestRecommendationRateZeroResponsesIsNotZeroPercent(t *testing.T) {
	question := model.Question{Text: "Would you recommend this event to a friend or colleague?", IsActive: true}
	question.ID = 7

	svc := newAnalytics(nil,
		&stubQuestionRepo{questions: []model.Question{question}},
		&stubResponseRepo{byQuestion: map[uint][]model.Response{}},
		nil)

	m := svc.Insights(testRange()).RecommendationRate
	if m.Status != dto.StatusEmpty {
		t.Fatalf("status: got %q, want empty", m.Status)
	}
	if m.Percentage != nil {
		t.Errorf("zero responses must read not-available, got %v%%", *m.Percentage)
	}
}

func TestSpeakerRatingOrdersNumerically(t *testing.T) {
	question := model.Question{Text: "What did you think of the keynote speaker?", QuestionType: model.QuestionTypeRating, IsActive: true}
	question.ID = 9

	var responses []model.Response
	for _, rating := range []float64{10, 10, 2, 1, 1, 1} {
		responses = append(responses, model.Response{
			QuestionID: 9,
			Answer:     model.AnswerValue{Kind: model.AnswerScalar, Scalar: rating},
		})
	}

	svc := newAnalytics(nil,
		&stubQuestionRepo{questions: []model.Question{question}},
		&stubResponseRepo{byQuestion: map[uint][]model.Response{9: responses}},
		nil)

	b := svc.Insights(testRange()).SpeakerRating
	if b.Status != dto.StatusOK {
		t.Fatalf("status: got %q, want ok", b.Status)
	}
	got := make([]string, len(b.Rows))
	for i, row := range b.Rows {
		got[i] = row.Category
	}
	// Numeric rating keys sort by value, not lexicographically ("10" < "2").
	want := []string{"1", "2", "10"}
	if len(got) != len(want) {
		t.Fatalf("rows: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order: got %v, want %v", got, want)
		}
	}
}

func TestKeyLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"2", "10", true},
		{"10", "2", false},
		{"3", "3", false},
		{"5", "Excellent", true},
		{"Excellent", "5", false},
		{"Agree", "Disagree", true},
	}
	for _, tt := range tests {
		if got := keyLess(tt.a, tt.b); got != tt.want {
			t.Errorf("keyLess(%q, %q): got %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestQuestionBreakdownMissingQuestion(t *testing.T) {
	svc := newAnalytics(nil, &stubQuestionRepo{}, nil, nil)

	insights := svc.Insights(testRange())
	if insights.PreferredFormats.Status != dto.StatusNotFound {
		t.Errorf("preferred formats: got %q, want not_found", insights.PreferredFormats.Status)
	}
	if insights.RecommendationRate.Status != dto.StatusNotFound {
		t.Errorf("recommendation rate: got %q, want not_found", insights.RecommendationRate.Status)
	}
}

func TestQuestionBreakdownAmbiguousFragmentReadsNotFound(t *testing.T) {
	first := model.Question{Text: "What type of events do you prefer to attend?", IsActive: true}
	first.ID = 1
	second := model.Question{Text: "What type of events do you prefer online?", IsActive: true}
	second.ID = 2

	svc := newAnalytics(nil, &stubQuestionRepo{questions: []model.Question{first, second}}, nil, nil)

	b := svc.Insights(testRange()).PreferredFormats
	if b.Status != dto.StatusNotFound {
		t.Errorf("ambiguous fragment: got %q, want not_found", b.Status)
	}
}

func TestQuestionBreakdownCountsListSelections(t *testing.T) {
	question := model.Question{Text: "What type of events do you prefer to attend?", QuestionType: model.QuestionTypeMultipleChoice, IsActive: true}
	question.ID = 3

	responses := []model.Response{
		{QuestionID: 3, Answer: listAnswer("In-person", "Online")},
		{QuestionID: 3, Answer: listAnswer("In-person")},
		{QuestionID: 3, Answer: listAnswer("Hybrid")},
	}

	svc := newAnalytics(nil,
		&stubQuestionRepo{questions: []model.Question{question}},
		&stubResponseRepo{byQuestion: map[uint][]model.Response{3: responses}},
		nil)

	b := svc.Insights(testRange()).PreferredFormats
	if b.Status != dto.StatusOK {
		t.Fatalf("status: got %q, want ok", b.Status)
	}
	if len(b.Rows) != 3 {
		t.Fatalf("rows: got %d, want 3", len(b.Rows))
	}
	// orderByCount: In-person selected twice, sorts first.
	if b.Rows[0].Category != "In-person" || b.Rows[0].Count != 2 {
		t.Errorf("top row: got %+v", b.Rows[0])
	}
	if b.Rows[0].Percentage != 50.0 {
		t.Errorf("top row percentage: got %v, want 50.0 of 4 selections", b.Rows[0].Percentage)
	}
}

func TestAgeDistributionCanonicalOrder(t *testing.T) {
	participants := &stubParticipantRepo{
		counts: map[string][]repository.AttributeCount{
			"age_range": {
				{Value: "25-34", Count: 5},
				{Value: "18-24", Count: 10},
				{Value: "90+", Count: 1},
			},
		},
	}
	svc := newAnalytics(participants, nil, nil, nil)

	b := svc.Insights(testRange()).AgeDistribution
	if b.Status != dto.StatusOK {
		t.Fatalf("status: got %q, want ok", b.Status)
	}
	want := []string{"18-24", "25-34", "90+"}
	for i, row := range b.Rows {
		if row.Category != want[i] {
			t.Errorf("row %d: got %q, want %q", i, row.Category, want[i])
		}
	}
	// 10 of 16 → 62.5
	if b.Rows[0].Percentage != 62.5 {
		t.Errorf("18-24 percentage: got %v, want 62.5", b.Rows[0].Percentage)
	}
}

func TestAgeOverview(t *testing.T) {
	participants := &stubParticipantRepo{
		counts: map[string][]repository.AttributeCount{
			"age_range": {
				{Value: "18-24", Count: 10},
				{Value: "25-34", Count: 5},
				{Value: "unknown", Count: 3}, // no midpoint, excluded
			},
		},
	}
	svc := newAnalytics(participants, nil, nil, nil)

	overview := svc.Insights(testRange()).AgeOverview
	if overview.Status != dto.StatusOK {
		t.Fatalf("status: got %q, want ok", overview.Status)
	}
	if *overview.Min != 21 || *overview.Max != 29.5 {
		t.Errorf("min/max: got %v/%v, want 21/29.5", *overview.Min, *overview.Max)
	}
	// (21*10 + 29.5*5) / 15 = 23.833… → 23.8
	if *overview.Avg != 23.8 {
		t.Errorf("avg: got %v, want 23.8", *overview.Avg)
	}
}

func TestAgeOverviewNoParseableRanges(t *testing.T) {
	participants := &stubParticipantRepo{
		counts: map[string][]repository.AttributeCount{
			"age_range": {{Value: "mystery", Count: 4}},
		},
	}
	svc := newAnalytics(participants, nil, nil, nil)

	overview := svc.Insights(testRange()).AgeOverview
	if overview.Status != dto.StatusEmpty {
		t.Errorf("status: got %q, want empty", overview.Status)
	}
	if overview.Min != nil || overview.Avg != nil || overview.Max != nil {
		t.Error("all three age metrics must be unavailable together")
	}
}

func TestGenderBreakdownUsesLabels(t *testing.T) {
	participants := &stubParticipantRepo{
		counts: map[string][]repository.AttributeCount{
			"gender": {{Value: "F", Count: 6}, {Value: "M", Count: 3}, {Value: "NS", Count: 1}},
		},
	}
	svc := newAnalytics(participants, nil, nil, nil)

	b := svc.Insights(testRange()).GenderDistribution
	if b.Status != dto.StatusOK {
		t.Fatalf("status: got %q, want ok", b.Status)
	}
	if b.Rows[0].Category != "Female" {
		t.Errorf("top category: got %q, want Female", b.Rows[0].Category)
	}
}

func TestSentimentSlot(t *testing.T) {
	question := model.Question{Text: "How would you rate your overall experience?", QuestionType: model.QuestionTypeText, IsActive: true}
	question.ID = 9

	responses := []model.Response{
		{QuestionID: 9, Answer: textAnswer("Amazing event, wonderful speakers")},
		{QuestionID: 9, Answer: textAnswer("Terrible organisation, awful venue")},
		{QuestionID: 9, Answer: textAnswer("The venue was in London")},
	}

	svc := newAnalytics(nil,
		&stubQuestionRepo{questions: []model.Question{question}},
		&stubResponseRepo{byQuestion: map[uint][]model.Response{9: responses}},
		nil)

	s := svc.Insights(testRange()).Sentiment
	if s.Status != dto.StatusOK {
		t.Fatalf("status: got %q, want ok", s.Status)
	}
	if s.Positive != 1 || s.Negative != 1 || s.Neutral != 1 {
		t.Errorf("counts: got +%d/=%d/-%d, want 1/1/1", s.Positive, s.Neutral, s.Negative)
	}
	sum := s.PositivePercentage + s.NeutralPercentage + s.NegativePercentage
	if sum < 99.8 || sum > 100.2 {
		t.Errorf("percentages sum to %v, want ~100", sum)
	}
}

func TestSentimentNoFeedbackQuestion(t *testing.T) {
	svc := newAnalytics(nil, &stubQuestionRepo{}, nil, nil)

	s := svc.Insights(testRange()).Sentiment
	if s.Status != dto.StatusNotFound {
		t.Errorf("status: got %q, want not_found", s.Status)
	}
}

func TestCompletionRate(t *testing.T) {
	svc := newAnalytics(nil, nil, nil, &stubSessionRepo{total: 8, completed: 6})

	m := svc.Insights(testRange()).CompletionRate
	if m.Status != dto.StatusOK {
		t.Fatalf("status: got %q, want ok", m.Status)
	}
	if *m.Percentage != 75.0 {
		t.Errorf("rate: got %v, want 75.0", *m.Percentage)
	}
}

func TestOverviewWordFrequency(t *testing.T) {
	responses := []model.Response{
		{Answer: textAnswer("Wonderful speakers and wonderful music")},
		{Answer: textAnswer("The speakers were great!")},
		{Answer: model.AnswerValue{Kind: model.AnswerScalar, Scalar: 5}}, // skipped
	}
	svc := newAnalytics(nil, nil,
		&stubResponseRepo{byType: map[string][]model.Response{model.QuestionTypeText: responses}},
		&stubSessionRepo{completed: 3})

	overview, err := svc.Overview()
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if overview.CompletedSessions != 3 {
		t.Errorf("completed sessions: got %d, want 3", overview.CompletedSessions)
	}
	if len(overview.FeedbackTerms) == 0 {
		t.Fatal("expected feedback terms")
	}
	top := overview.FeedbackTerms[0]
	if top.Word != "speakers" && top.Word != "wonderful" {
		t.Errorf("top term: got %q, want speakers or wonderful", top.Word)
	}
	if top.Count != 2 {
		t.Errorf("top term count: got %d, want 2", top.Count)
	}
	for _, term := range overview.FeedbackTerms {
		if len(term.Word) < 4 {
			t.Errorf("short word %q survived the filter", term.Word)
		}
	}
}
