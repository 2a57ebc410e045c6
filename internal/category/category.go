// Package category maps the raw enumerated codes stored on participants to
// display labels and representative numeric values. Everything here is a pure
// lookup; unknown codes pass through unchanged so a new enum value added to
// the form can never break the dashboard.
package category

import (
	"strconv"
	"strings"
)

// Category names accepted by Label.
const (
	Gender        = "gender"
	Ethnicity     = "ethnicity"
	Accessibility = "accessibility_needs"
	Referral      = "referral_source"
	Section       = "section"
)

// openEndedAgeMidpoint is the representative value for the open-ended "90+"
// range, used when averaging ages.
const openEndedAgeMidpoint = 95

// AgeRanges is the canonical ordered set of age-range labels. Distribution
// charts order by this, not alphabetically.
var AgeRanges = []string{
	"12-17", "18-24", "25-34", "35-44", "45-54", "55-64", "65-74", "75-89", "90+",
}

var genderLabels = map[string]string{
	"M":  "Male",
	"F":  "Female",
	"NS": "Not Specified",
}

var ethnicityLabels = map[string]string{
	"AA": "African",
	"C":  "Caribbean",
	"B":  "Black other",
	"A":  "Asian",
	"E":  "European",
	"MB": "Mixed Black",
	"MO": "Mixed Other",
	"W":  "White",
	"O":  "Other",
	"NS": "Not Specified",
}

var accessibilityLabels = map[string]string{
	"no_accessibility_needs":      "No accessibility needs",
	"hearing_assistance":          "Hearing assistance",
	"visual_assistance":           "Visual assistance",
	"mobility_support":            "Mobility support",
	"cognitive_or_neurodiversity": "Cognitive or neurodiversity support",
	"assistive_technology":        "Assistive technology",
	"transportation_assistance":   "Transportation assistance",
	"dietary_accommodations":      "Dietary accommodations",
	"communication_assistance":    "Communication assistance",
}

var referralLabels = map[string]string{
	"social_media":  "Social Media",
	"word_of_mouth": "Word of Mouth",
	"email":         "Email",
	"printed_media": "Printed Media",
	"tv":            "TV",
	"radio":         "Radio",
	"other":         "Other",
}

var sectionLabels = map[string]string{
	"demographic": "Demographic Information",
	"pre_event":   "Pre-Event Questions",
	"post_event":  "Post-Event Feedback",
}

var labelTables = map[string]map[string]string{
	Gender:        genderLabels,
	Ethnicity:     ethnicityLabels,
	Accessibility: accessibilityLabels,
	Referral:      referralLabels,
	Section:       sectionLabels,
}

// Label returns the human-readable label for a raw enum code. Codes absent
// from the table (and unknown categories) pass through unchanged.
func Label(categoryName, code string) string {
	table, ok := labelTables[categoryName]
	if !ok {
		return code
	}
	if label, ok := table[code]; ok {
		return label
	}
	return code
}

// AgeMidpoint returns the representative numeric midpoint for an age-range
// label: (low+high)/2 for closed ranges, 95 for "90+". The second return is
// false for malformed labels, which excludes them from numeric aggregates.
func AgeMidpoint(label string) (float64, bool) {
	label = strings.TrimSpace(label)
	if strings.HasSuffix(label, "+") {
		if _, err := strconv.Atoi(strings.TrimSuffix(label, "+")); err == nil {
			return openEndedAgeMidpoint, true
		}
		return 0, false
	}
	parts := strings.SplitN(label, "-", 2)
	if len(parts) != 2 {
		return 0, false
	}
	low, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	high, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}
	return float64(low+high) / 2, true
}

// AgeRangeOrder returns the canonical position of an age-range label, or a
// position after every known range for labels not in the canonical set.
func AgeRangeOrder(label string) int {
	for i, r := range AgeRanges {
		if r == label {
			return i
		}
	}
	return len(AgeRanges)
}
