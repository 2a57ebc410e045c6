package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mikeconel/windrush-insights/config"
	"github.com/mikeconel/windrush-insights/internal/cache"
	"github.com/mikeconel/windrush-insights/internal/dto"
	"github.com/mikeconel/windrush-insights/internal/model"
	"github.com/mikeconel/windrush-insights/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// GeocodingService resolves participant postcodes to coordinates for the
// density heatmap. One lookup failure skips that postcode and the batch
// continues; nothing partial is ever written.
type GeocodingService interface {
	GeoData(ctx context.Context, rng model.DateRange) dto.GeoDataDTO
}

type geocodingService struct {
	participantRepo repository.ParticipantRepository
	locationRepo    repository.LocationRepository
	cache           *cache.Cache
	client          *http.Client
	limiter         *rate.Limiter
	baseURL         string
	userAgent       string
}

func NewGeocodingService(
	cfg *config.Config,
	participantRepo repository.ParticipantRepository,
	locationRepo repository.LocationRepository,
	c *cache.Cache,
) GeocodingService {
	return &geocodingService{
		participantRepo: participantRepo,
		locationRepo:    locationRepo,
		cache:           c,
		client:          &http.Client{Timeout: 10 * time.Second},
		// Nominatim usage policy: one request per second.
		limiter:   rate.NewLimiter(rate.Every(time.Second), 1),
		baseURL:   cfg.Geocoder.BaseURL,
		userAgent: cfg.Geocoder.UserAgent,
	}
}

type geoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// GeoData returns one (lat, lon, count) row per geocodable postcode in
// range. Coordinates come from the 24 h cache, then the locations table, then
// the external geocoder.
func (s *geocodingService) GeoData(ctx context.Context, rng model.DateRange) dto.GeoDataDTO {
	result := dto.GeoDataDTO{Status: dto.StatusEmpty}
	if !rng.Valid() {
		return result
	}
	counts, err := s.participantRepo.CountByAttribute("postcode", rng)
	if err != nil {
		log.Error().Err(err).Msg("Postcode aggregation failed")
		result.Status = dto.StatusExternalFailure
		return result
	}
	for _, row := range counts {
		if row.Value == "" {
			continue
		}
		point, ok := s.resolve(ctx, row.Value)
		if !ok {
			// No geographic data for this row, keep going.
			continue
		}
		result.Points = append(result.Points, dto.GeoPointDTO{
			Postcode: row.Value,
			Lat:      point.Lat,
			Lon:      point.Lon,
			Count:    row.Count,
		})
	}
	if len(result.Points) > 0 {
		result.Status = dto.StatusOK
	}
	return result
}

func (s *geocodingService) resolve(ctx context.Context, postcode string) (geoPoint, bool) {
	var point geoPoint
	if s.cache.GetJSON(ctx, cache.GeoKey(postcode), &point) {
		return point, true
	}
	if location, err := s.locationRepo.FindByPostcode(postcode); err == nil {
		point = geoPoint{Lat: location.Lat, Lon: location.Lon}
		s.cache.SetJSON(ctx, cache.GeoKey(postcode), point, cache.GeoTTL)
		return point, true
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Warn().Err(err).Str("postcode", postcode).Msg("Location lookup failed, trying geocoder")
	}

	point, err := s.lookup(ctx, postcode)
	if err != nil {
		log.Warn().Err(err).Str("postcode", postcode).Msg("Geocoding failed, skipping postcode")
		return geoPoint{}, false
	}
	if err := s.locationRepo.Upsert(&model.Location{Postcode: postcode, Lat: point.Lat, Lon: point.Lon}); err != nil {
		log.Warn().Err(err).Str("postcode", postcode).Msg("Failed to persist geocode result")
	}
	s.cache.SetJSON(ctx, cache.GeoKey(postcode), point, cache.GeoTTL)
	return point, true
}

func (s *geocodingService) lookup(ctx context.Context, postcode string) (geoPoint, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return geoPoint{}, err
	}
	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", s.baseURL, url.QueryEscape(postcode))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return geoPoint{}, err
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return geoPoint{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return geoPoint{}, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return geoPoint{}, err
	}
	if len(results) == 0 {
		return geoPoint{}, fmt.Errorf("no match for postcode")
	}
	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return geoPoint{}, err
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return geoPoint{}, err
	}
	return geoPoint{Lat: lat, Lon: lon}, nil
}
