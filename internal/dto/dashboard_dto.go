package dto

import "time"

// DateRangeDTO is the session filter echoed back to the dashboard.
type DateRangeDTO struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Defined bool      `json:"defined"`
}

// BreakdownRow is one (category, count) row of a grouped result.
type BreakdownRow struct {
	Category   string  `json:"category"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Breakdown is a single-attribute grouped count, ordered for its chart kind.
type Breakdown struct {
	Title  string         `json:"title"`
	Status Status         `json:"status"`
	Rows   []BreakdownRow `json:"rows,omitempty"`
}

// CrossRow is one observed combination of a multi-attribute grouping.
// Combinations with zero occurrences are omitted, not zero-filled.
type CrossRow struct {
	Keys  []string `json:"keys"`
	Count int64    `json:"count"`
}

// CrossBreakdown is a multi-attribute grouped count (e.g. gender × ethnicity).
type CrossBreakdown struct {
	Title  string     `json:"title"`
	Status Status     `json:"status"`
	Rows   []CrossRow `json:"rows,omitempty"`
}

// SentimentDTO carries the three-way classification and its percentages.
type SentimentDTO struct {
	Status             Status  `json:"status"`
	Positive           int     `json:"positive"`
	Neutral            int     `json:"neutral"`
	Negative           int     `json:"negative"`
	PositivePercentage float64 `json:"positive_percentage"`
	NeutralPercentage  float64 `json:"neutral_percentage"`
	NegativePercentage float64 `json:"negative_percentage"`
}

// AgeOverviewDTO reports min/avg/max over derived age midpoints. All three are
// "not available" together when no participant in range has a parseable range.
type AgeOverviewDTO struct {
	Status Status   `json:"status"`
	Min    *float64 `json:"min,omitempty"`
	Avg    *float64 `json:"avg,omitempty"`
	Max    *float64 `json:"max,omitempty"`
}

// GeoPointDTO is one geocoded postcode with its participant count.
type GeoPointDTO struct {
	Postcode string  `json:"postcode"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Count    int64   `json:"count"`
}

// GeoDataDTO is the heatmap payload. Postcodes that could not be geocoded are
// simply absent.
type GeoDataDTO struct {
	Status Status        `json:"status"`
	Points []GeoPointDTO `json:"points,omitempty"`
}

// WordCountDTO is one term of the public feedback overview.
type WordCountDTO struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// OverviewDTO is the public (unauthenticated) dashboard payload.
type OverviewDTO struct {
	CompletedSessions int64          `json:"completed_sessions"`
	FeedbackTerms     []WordCountDTO `json:"feedback_terms,omitempty"`
}

// InsightsDTO is the full private dashboard document. Each slot reports its
// own status; the document itself always renders.
type InsightsDTO struct {
	Range              DateRangeDTO   `json:"range"`
	TotalParticipants  Metric         `json:"total_participants"`
	RecommendationRate Metric         `json:"recommendation_rate"`
	CompletionRate     Metric         `json:"completion_rate"`
	AgeOverview        AgeOverviewDTO `json:"age_overview"`
	AgeDistribution    Breakdown      `json:"age_distribution"`
	GenderDistribution Breakdown      `json:"gender_distribution"`
	Demographics       CrossBreakdown `json:"demographics"`
	AccessibilityNeeds Breakdown      `json:"accessibility_needs"`
	ReferralSources    Breakdown      `json:"referral_sources"`
	PreferredFormats   Breakdown      `json:"preferred_formats"`
	SocialPlatforms    Breakdown      `json:"social_platforms"`
	EventInterests     Breakdown      `json:"event_interests"`
	FoundationLoyalty  Breakdown      `json:"foundation_loyalty"`
	PreferredSessions  Breakdown      `json:"preferred_sessions"`
	SpeakerRating      Breakdown      `json:"speaker_rating"`
	Sentiment          SentimentDTO   `json:"sentiment"`
}
