package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mikeconel/windrush-insights/internal/dto"
	"github.com/mikeconel/windrush-insights/internal/model"
	"github.com/mikeconel/windrush-insights/internal/repository"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

type stubLocationRepo struct {
	rows    map[string]model.Location
	upserts []model.Location
}

func (s *stubLocationRepo) FindByPostcode(postcode string) (*model.Location, error) {
	if location, ok := s.rows[postcode]; ok {
		return &location, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubLocationRepo) Upsert(location *model.Location) error {
	s.upserts = append(s.upserts, *location)
	return nil
}

func newGeocoding(baseURL string, participants *stubParticipantRepo, locations *stubLocationRepo, t *testing.T) *geocodingService {
	return &geocodingService{
		participantRepo: participants,
		locationRepo:    locations,
		cache:           disabledCache(t),
		client:          &http.Client{Timeout: 2 * time.Second},
		limiter:         rate.NewLimiter(rate.Inf, 1),
		baseURL:         baseURL,
		userAgent:       "windrush-insights-test",
	}
}

func TestGeoDataSkipsFailedLookups(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "SW1A 1AA" {
			fmt.Fprint(w, `[{"lat":"51.501","lon":"-0.1419"}]`)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	participants := &stubParticipantRepo{counts: map[string][]repository.AttributeCount{
		"postcode": {
			{Value: "SW1A 1AA", Count: 3},
			{Value: "ZZ9 9ZZ", Count: 2},
			{Value: "", Count: 1},
		},
	}}
	locations := &stubLocationRepo{}

	svc := newGeocoding(server.URL, participants, locations, t)
	result := svc.GeoData(context.Background(), testRange())

	if result.Status != dto.StatusOK {
		t.Fatalf("status: got %q, want ok", result.Status)
	}
	// The failed postcode is skipped; the batch still yields the good row.
	if len(result.Points) != 1 {
		t.Fatalf("points: got %d, want 1", len(result.Points))
	}
	point := result.Points[0]
	if point.Postcode != "SW1A 1AA" || point.Lat != 51.501 || point.Lon != -0.1419 || point.Count != 3 {
		t.Errorf("point: got %+v", point)
	}
	// Only the successful lookup lands in the locations table.
	if len(locations.upserts) != 1 {
		t.Fatalf("location upserts: got %d, want 1", len(locations.upserts))
	}
	if locations.upserts[0].Postcode != "SW1A 1AA" {
		t.Errorf("upserted postcode: got %q", locations.upserts[0].Postcode)
	}
}

func TestGeoDataUsesStoredLocations(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	participants := &stubParticipantRepo{counts: map[string][]repository.AttributeCount{
		"postcode": {{Value: "M1 1AE", Count: 5}},
	}}
	locations := &stubLocationRepo{rows: map[string]model.Location{
		"M1 1AE": {Postcode: "M1 1AE", Lat: 53.4774, Lon: -2.2309},
	}}

	svc := newGeocoding(server.URL, participants, locations, t)
	result := svc.GeoData(context.Background(), testRange())

	if len(result.Points) != 1 {
		t.Fatalf("points: got %d, want 1", len(result.Points))
	}
	if result.Points[0].Lat != 53.4774 {
		t.Errorf("lat: got %v", result.Points[0].Lat)
	}
	if requests != 0 {
		t.Errorf("external requests: got %d, want 0", requests)
	}
}

func TestGeoDataUndefinedRange(t *testing.T) {
	svc := newGeocoding("http://unused.invalid", &stubParticipantRepo{}, &stubLocationRepo{}, t)

	result := svc.GeoData(context.Background(), model.DateRange{})
	if result.Status != dto.StatusEmpty {
		t.Errorf("status: got %q, want empty", result.Status)
	}
	if len(result.Points) != 0 {
		t.Errorf("points: got %d, want none", len(result.Points))
	}
}
