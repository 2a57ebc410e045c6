package admin

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func rangeContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest("GET", "/api/v1/admin/insights?"+query, nil)
	return ctx
}

func TestParseRangeParamsCoversWholeEndDay(t *testing.T) {
	start, end, err := parseRangeParams(rangeContext(t, "start=2024-03-01&end=2024-03-31"))
	if err != nil {
		t.Fatalf("parseRangeParams: %v", err)
	}
	if start == nil || !start.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start: got %v", start)
	}
	if end == nil {
		t.Fatal("end: got nil")
	}
	// A submission in the last sub-second of the end day still falls inside
	// the widened range.
	lastMoment := time.Date(2024, 3, 31, 23, 59, 59, 500_000_000, time.UTC)
	if lastMoment.After(*end) {
		t.Errorf("end %v excludes %v", *end, lastMoment)
	}
	nextDay := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	if !end.Before(nextDay) {
		t.Errorf("end %v leaks into the next day", *end)
	}
}

func TestParseRangeParamsOptional(t *testing.T) {
	start, end, err := parseRangeParams(rangeContext(t, ""))
	if err != nil {
		t.Fatalf("parseRangeParams: %v", err)
	}
	if start != nil || end != nil {
		t.Errorf("got start=%v end=%v, want both nil", start, end)
	}
}

func TestParseRangeParamsRejectsMalformedDates(t *testing.T) {
	if _, _, err := parseRangeParams(rangeContext(t, "start=March+1st")); err == nil {
		t.Error("expected an error for a malformed start date")
	}
	if _, _, err := parseRangeParams(rangeContext(t, "end=31-03-2024")); err == nil {
		t.Error("expected an error for a malformed end date")
	}
}
