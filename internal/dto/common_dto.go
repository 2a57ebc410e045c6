package dto

// Status tells the rendering layer what happened to one chart/metric slot.
// Every slot degrades independently: a missing question or an empty range
// never blanks the rest of the dashboard.
type Status string

const (
	StatusOK              Status = "ok"
	StatusEmpty           Status = "empty"            // zero rows in range: "no data", not an error
	StatusNotFound        Status = "not_found"        // referenced question missing: configuration problem
	StatusExternalFailure Status = "external_failure" // upstream dependency failed
)

// Metric is a named scalar ready for display. Value is nil when the metric is
// not available, which is distinct from a value of zero.
type Metric struct {
	Label      string   `json:"label"`
	Status     Status   `json:"status"`
	Value      *float64 `json:"value,omitempty"`
	Percentage *float64 `json:"percentage,omitempty"`
	Help       string   `json:"help,omitempty"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
