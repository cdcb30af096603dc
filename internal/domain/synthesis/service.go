package synthesis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/minthura/astrologic/internal/domain/astro"
	"github.com/minthura/astrologic/internal/domain/mahabote"
	apperrors "github.com/minthura/astrologic/pkg/errors"
)

// noAspectsSentinel keeps the dominant_aspects field well defined when no
// pair matched any aspect.
const noAspectsSentinel = "No major aspects detected"

// Service exposes the astrological synthesis capabilities.
type Service interface {
	Synthesize(ctx context.Context, req Request) (Response, error)
	SynthesizeData(ctx context.Context, req Request) (Payload, error)
	RecentReadings(ctx context.Context) ([]StoredReading, error)
}

type service struct {
	cfg       Config
	geocoder  Geocoder
	store     GeoStore
	generator ReadingGenerator
	repo      ReadingRepository
	logger    *slog.Logger
	now       func() time.Time
}

// NewService wires the synthesis domain.
func NewService(cfg Config, geocoder Geocoder, store GeoStore, generator ReadingGenerator, repo ReadingRepository, logger *slog.Logger) Service {
	return &service{
		cfg:       cfg,
		geocoder:  geocoder,
		store:     store,
		generator: generator,
		repo:      repo,
		logger:    logger.With("component", "synthesis.service"),
		now:       time.Now,
	}
}

// Synthesize computes the full synthesis object and narrates it. A failing
// provider chain degrades to a nil reading; the computed facts always come
// back.
func (s *service) Synthesize(ctx context.Context, req Request) (Response, error) {
	payload, err := s.compute(ctx, req)
	if err != nil {
		return Response{}, err
	}

	resp := Response{Synthesis: payload}

	result, err := s.generator.Generate(ctx, payload)
	if err != nil {
		s.logger.Warn("reading generation failed, returning synthesis only", "error", err)
		return resp, nil
	}
	resp.Reading = &result.Text
	resp.ReadingProvider = result.Provider
	if !result.Usage.IsZero() {
		usage := result.Usage
		resp.TokenUsage = &usage
	}

	record := StoredReading{
		Name:      payload.User.Name,
		City:      payload.User.City,
		BirthDate: payload.User.DOB,
		BirthTime: payload.User.Time,
		Provider:  result.Provider,
		Reading:   result.Text,
	}
	if _, err := s.repo.Insert(ctx, record); err != nil {
		s.logger.Warn("failed to archive reading", "error", err)
	}

	return resp, nil
}

// SynthesizeData computes the synthesis object without invoking any text
// generation provider.
func (s *service) SynthesizeData(ctx context.Context, req Request) (Payload, error) {
	return s.compute(ctx, req)
}

// RecentReadings lists the most recently archived readings.
func (s *service) RecentReadings(ctx context.Context) ([]StoredReading, error) {
	records, err := s.repo.Recent(ctx, s.cfg.RecentLimit)
	if err != nil {
		return nil, apperrors.Wrap("storage_error", "failed to list recent readings", err)
	}
	return records, nil
}

func (s *service) compute(ctx context.Context, req Request) (Payload, error) {
	birthLocal, err := parseBirthMoment(req.DOB, req.Time)
	if err != nil {
		return Payload{}, apperrors.Wrap("invalid_input", "dob must be YYYY-MM-DD and time must be HH:MM (24h)", err)
	}

	loc, err := s.resolveLocation(ctx, req)
	if err != nil {
		return Payload{}, err
	}

	zone, fallback := resolveTimezone(req.Timezone)
	if fallback && req.Timezone != "" {
		s.logger.Warn("timezone resolution failed, treating local time as UTC", "timezone", req.Timezone)
	}
	birthZoned := time.Date(
		birthLocal.Year(), birthLocal.Month(), birthLocal.Day(),
		birthLocal.Hour(), birthLocal.Minute(), 0, 0, zone,
	)
	birthUTC := birthZoned.UTC()

	syn := astro.Synthesize(birthUTC, loc.Latitude, loc.Longitude, s.now().UTC())
	// Mahabote depends only on the civil birth date.
	profile := mahabote.Calculate(birthLocal)

	return Payload{
		User: UserSection{
			Name:             req.Name,
			Gender:           req.Gender,
			DOB:              req.DOB,
			Time:             req.Time,
			City:             loc.City,
			Coordinates:      Coordinates{Lat: loc.Latitude, Lon: loc.Longitude},
			Timezone:         req.Timezone,
			TimezoneFallback: fallback,
		},
		Western:  buildWestern(syn),
		Vedic:    buildVedic(syn),
		Mahabote: profile,
	}, nil
}

func (s *service) resolveLocation(ctx context.Context, req Request) (Location, error) {
	city := strings.TrimSpace(req.City)
	if city == "" {
		if req.Latitude == nil || req.Longitude == nil {
			return Location{}, apperrors.Wrap("invalid_input", "either city or latitude/longitude must be provided", nil)
		}
		loc := Location{Latitude: *req.Latitude, Longitude: *req.Longitude}
		if err := validateCoordinates(loc); err != nil {
			return Location{}, err
		}
		return loc, nil
	}

	key := strings.ToLower(city)
	if cached, found, err := s.store.Get(ctx, key); err != nil {
		s.logger.Warn("geo cache lookup failed", "city", city, "error", err)
	} else if found {
		return cached, nil
	}

	loc, err := s.geocoder.Geocode(ctx, city)
	if err != nil {
		return Location{}, apperrors.Wrap("geocode_error", fmt.Sprintf("could not resolve city %q", city), err)
	}
	if err := validateCoordinates(loc); err != nil {
		return Location{}, err
	}
	if err := s.store.Save(ctx, key, loc, s.cfg.GeoCacheTTL); err != nil {
		s.logger.Warn("geo cache save failed", "city", city, "error", err)
	}
	return loc, nil
}

func parseBirthMoment(dob, clock string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", strings.TrimSpace(dob))
	if err != nil {
		return time.Time{}, err
	}
	hm, err := time.Parse("15:04", strings.TrimSpace(clock))
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hm.Hour(), hm.Minute(), 0, 0, time.UTC), nil
}

// resolveTimezone loads the requested IANA zone. A missing or unknown zone
// degrades to treating the local birth time as UTC; that is a valid input,
// not a failure.
func resolveTimezone(name string) (*time.Location, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return time.UTC, true
	}
	zone, err := time.LoadLocation(trimmed)
	if err != nil {
		return time.UTC, true
	}
	return zone, false
}

func validateCoordinates(loc Location) error {
	if loc.Latitude < -90 || loc.Latitude > 90 {
		return apperrors.Wrap("invalid_input", "latitude must be within [-90, 90]", nil)
	}
	if loc.Longitude < -180 || loc.Longitude > 180 {
		return apperrors.Wrap("invalid_input", "longitude must be within [-180, 180]", nil)
	}
	return nil
}

func buildWestern(syn astro.Synthesis) WesternSection {
	aspects := make([]string, 0, len(syn.Aspects))
	for _, rec := range syn.Aspects {
		aspects = append(aspects, rec.Describe())
	}
	if len(aspects) == 0 {
		aspects = []string{noAspectsSentinel}
	}
	return WesternSection{
		Sun:             astro.FormatLongitude(syn.Positions[astro.Sun]),
		Moon:            astro.FormatLongitude(syn.Positions[astro.Moon]),
		Mercury:         astro.FormatLongitude(syn.Positions[astro.Mercury]),
		Venus:           astro.FormatLongitude(syn.Positions[astro.Venus]),
		Mars:            astro.FormatLongitude(syn.Positions[astro.Mars]),
		Jupiter:         astro.FormatLongitude(syn.Positions[astro.Jupiter]),
		Saturn:          astro.FormatLongitude(syn.Positions[astro.Saturn]),
		Ascendant:       astro.FormatLongitude(syn.Ascendant),
		DominantAspects: aspects,
	}
}

func buildVedic(syn astro.Synthesis) VedicSection {
	return VedicSection{
		Nakshatra:     syn.Nakshatra.Name,
		NakshatraPada: syn.Nakshatra.Pada,
		NakshatraLord: syn.Nakshatra.Lord,
		Mahadasha:     fmt.Sprintf("%s Dasha", syn.Mahadasha.Lord),
		MahadashaEnds: syn.Mahadasha.EndsAt.Format("2006-01-02"),
		NextDasha:     syn.Mahadasha.NextLord,
	}
}
