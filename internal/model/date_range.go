package model

import "time"

// DateRange bounds every aggregation query. It is an explicit value passed
// into each call, never hidden global state. The zero value is the undefined
// range, which downstream code treats exactly like an empty result set.
type DateRange struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Defined bool      `json:"defined"`
}

// Valid reports whether the range can match any rows. An undefined or
// inverted range is not an error, it just matches nothing.
func (r DateRange) Valid() bool {
	return r.Defined && !r.Start.After(r.End)
}

// Clamp bounds the range to [min, max], the observed data bounds.
func (r DateRange) Clamp(min, max time.Time) DateRange {
	if !r.Defined {
		return r
	}
	if r.Start.Before(min) {
		r.Start = min
	}
	if r.End.After(max) {
		r.End = max
	}
	return r
}
