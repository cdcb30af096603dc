package synthesis

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/minthura/astrologic/internal/domain/reading"
	apperrors "github.com/minthura/astrologic/pkg/errors"
)

func newTestService(geocoder *stubGeocoder, store *stubGeoStore, generator *stubGenerator, repo *stubRepo) *service {
	return &service{
		cfg:       Config{GeoCacheTTL: time.Hour, RecentLimit: 5},
		geocoder:  geocoder,
		store:     store,
		generator: generator,
		repo:      repo,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		now: func() time.Time {
			return time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
		},
	}
}

func validRequest() Request {
	return Request{
		Name:     "Aye",
		Gender:   "Female",
		DOB:      "1990-06-15",
		Time:     "12:00",
		City:     "Yangon",
		Timezone: "UTC",
	}
}

func TestSynthesizeFullFlow(t *testing.T) {
	geocoder := &stubGeocoder{loc: Location{City: "Yangon", Latitude: 16.8409, Longitude: 96.1735}}
	store := &stubGeoStore{}
	generator := &stubGenerator{result: reading.Result{Text: "ဖတ်ရှုချက်", Provider: "openrouter"}}
	repo := &stubRepo{}
	svc := newTestService(geocoder, store, generator, repo)

	resp, err := svc.Synthesize(context.Background(), validRequest())
	require.NoError(t, err)

	require.Contains(t, resp.Synthesis.Western.Sun, "Gemini")
	require.NotEmpty(t, resp.Synthesis.Western.DominantAspects)
	require.NotEmpty(t, resp.Synthesis.Vedic.Nakshatra)
	require.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, resp.Synthesis.Vedic.MahadashaEnds)
	require.GreaterOrEqual(t, resp.Synthesis.Mahabote.HouseIndex, 0)
	require.LessOrEqual(t, resp.Synthesis.Mahabote.HouseIndex, 6)

	require.NotNil(t, resp.Reading)
	require.Equal(t, "ဖတ်ရှုချက်", *resp.Reading)
	require.Equal(t, "openrouter", resp.ReadingProvider)
	require.Equal(t, 1, repo.inserts)
	require.Equal(t, 1, geocoder.calls)
	require.Equal(t, "yangon", store.savedKey)
}

func TestSynthesizeDeterministicData(t *testing.T) {
	geocoder := &stubGeocoder{loc: Location{City: "Greenwich", Latitude: 0, Longitude: 0}}
	svc := newTestService(geocoder, &stubGeoStore{}, &stubGenerator{}, &stubRepo{})

	req := validRequest()
	req.City = "Greenwich"

	first, err := svc.SynthesizeData(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.SynthesizeData(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestSynthesizeReadingFailureDegrades(t *testing.T) {
	geocoder := &stubGeocoder{loc: Location{City: "Yangon", Latitude: 16.8, Longitude: 96.2}}
	generator := &stubGenerator{err: errors.New("all providers failed")}
	repo := &stubRepo{}
	svc := newTestService(geocoder, &stubGeoStore{}, generator, repo)

	resp, err := svc.Synthesize(context.Background(), validRequest())
	require.NoError(t, err)
	require.Nil(t, resp.Reading)
	require.NotEmpty(t, resp.Synthesis.Western.Sun)
	require.Zero(t, repo.inserts)
}

func TestSynthesizeUsesGeoCache(t *testing.T) {
	geocoder := &stubGeocoder{loc: Location{City: "Yangon", Latitude: 16.8, Longitude: 96.2}}
	store := &stubGeoStore{
		cached: map[string]Location{"yangon": {City: "Yangon", Latitude: 16.8, Longitude: 96.2}},
	}
	svc := newTestService(geocoder, store, &stubGenerator{result: reading.Result{Text: "ok"}}, &stubRepo{})

	_, err := svc.SynthesizeData(context.Background(), validRequest())
	require.NoError(t, err)
	require.Zero(t, geocoder.calls)
}

func TestSynthesizeDirectCoordinatesSkipGeocoding(t *testing.T) {
	geocoder := &stubGeocoder{}
	svc := newTestService(geocoder, &stubGeoStore{}, &stubGenerator{result: reading.Result{Text: "ok"}}, &stubRepo{})

	lat, lon := 0.0, 0.0
	req := validRequest()
	req.City = ""
	req.Latitude = &lat
	req.Longitude = &lon

	payload, err := svc.SynthesizeData(context.Background(), req)
	require.NoError(t, err)
	require.Zero(t, geocoder.calls)
	require.Contains(t, payload.Western.Sun, "Gemini")
}

func TestSynthesizeRejectsMalformedBirthData(t *testing.T) {
	svc := newTestService(&stubGeocoder{}, &stubGeoStore{}, &stubGenerator{}, &stubRepo{})

	cases := []Request{
		{DOB: "1990/06/15", Time: "12:00", City: "Yangon"},
		{DOB: "1990-06-15", Time: "25:00", City: "Yangon"},
		{DOB: "1990-02-30", Time: "12:00", City: "Yangon"},
		{DOB: "1990-13-01", Time: "12:00", City: "Yangon"},
	}
	for _, req := range cases {
		_, err := svc.SynthesizeData(context.Background(), req)
		require.Error(t, err, "dob=%s time=%s", req.DOB, req.Time)
		require.True(t, apperrors.IsCode(err, "invalid_input"))
	}
}

func TestSynthesizeRejectsOutOfRangeCoordinates(t *testing.T) {
	svc := newTestService(&stubGeocoder{}, &stubGeoStore{}, &stubGenerator{}, &stubRepo{})

	lat, lon := 91.0, 0.0
	req := validRequest()
	req.City = ""
	req.Latitude = &lat
	req.Longitude = &lon

	_, err := svc.SynthesizeData(context.Background(), req)
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestSynthesizeGeocodeFailure(t *testing.T) {
	geocoder := &stubGeocoder{err: errors.New("nominatim down")}
	svc := newTestService(geocoder, &stubGeoStore{}, &stubGenerator{}, &stubRepo{})

	_, err := svc.SynthesizeData(context.Background(), validRequest())
	require.True(t, apperrors.IsCode(err, "geocode_error"))
}

func TestSynthesizeTimezoneFallback(t *testing.T) {
	geocoder := &stubGeocoder{loc: Location{City: "Yangon", Latitude: 16.8, Longitude: 96.2}}
	svc := newTestService(geocoder, &stubGeoStore{}, &stubGenerator{result: reading.Result{Text: "ok"}}, &stubRepo{})

	req := validRequest()
	req.Timezone = "Not/AZone"

	payload, err := svc.SynthesizeData(context.Background(), req)
	require.NoError(t, err)
	require.True(t, payload.User.TimezoneFallback)

	req.Timezone = ""
	payload, err = svc.SynthesizeData(context.Background(), req)
	require.NoError(t, err)
	require.True(t, payload.User.TimezoneFallback)
}

func TestRecentReadings(t *testing.T) {
	repo := &stubRepo{records: []StoredReading{{ID: 1, Reading: "text"}}}
	svc := newTestService(&stubGeocoder{}, &stubGeoStore{}, &stubGenerator{}, repo)

	records, err := svc.RecentReadings(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, 5, repo.lastLimit)
}

type stubGeocoder struct {
	loc   Location
	err   error
	calls int
}

func (s *stubGeocoder) Geocode(ctx context.Context, city string) (Location, error) {
	s.calls++
	if s.err != nil {
		return Location{}, s.err
	}
	return s.loc, nil
}

type stubGeoStore struct {
	cached   map[string]Location
	savedKey string
}

func (s *stubGeoStore) Get(ctx context.Context, city string) (Location, bool, error) {
	loc, ok := s.cached[city]
	return loc, ok, nil
}

func (s *stubGeoStore) Save(ctx context.Context, city string, loc Location, ttl time.Duration) error {
	s.savedKey = city
	return nil
}

type stubGenerator struct {
	result reading.Result
	err    error
}

func (s *stubGenerator) Generate(ctx context.Context, synthesis any) (reading.Result, error) {
	if s.err != nil {
		return reading.Result{}, s.err
	}
	return s.result, nil
}

type stubRepo struct {
	records   []StoredReading
	inserts   int
	lastLimit int
}

func (s *stubRepo) Insert(ctx context.Context, record StoredReading) (StoredReading, error) {
	s.inserts++
	record.ID = int64(s.inserts)
	return record, nil
}

func (s *stubRepo) Recent(ctx context.Context, limit int) ([]StoredReading, error) {
	s.lastLimit = limit
	return s.records, nil
}
