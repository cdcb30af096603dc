package synthesis

import (
	"context"
	"time"

	"github.com/minthura/astrologic/internal/domain/mahabote"
	"github.com/minthura/astrologic/internal/domain/reading"
	"github.com/minthura/astrologic/pkg/metrics"
)

// Request captures the birth data accepted by the synthesis endpoints. The
// birth moment is civil local time; Timezone is an optional IANA name used to
// convert it to UTC before any computation.
type Request struct {
	Name      string   `json:"name"`
	Gender    string   `json:"gender"`
	DOB       string   `json:"dob"`
	Time      string   `json:"time"`
	City      string   `json:"city"`
	Timezone  string   `json:"timezone"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Location is a resolved birth place.
type Location struct {
	City      string  `json:"city"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Address   string  `json:"address,omitempty"`
}

// Coordinates is the minimal lat/lon pair echoed back to callers.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// UserSection echoes the request back inside the synthesis object.
type UserSection struct {
	Name             string      `json:"name"`
	Gender           string      `json:"gender"`
	DOB              string      `json:"dob"`
	Time             string      `json:"time"`
	City             string      `json:"city"`
	Coordinates      Coordinates `json:"coordinates"`
	Timezone         string      `json:"timezone,omitempty"`
	TimezoneFallback bool        `json:"timezone_fallback"`
}

// WesternSection holds formatted sign/degree strings and aspect descriptions.
type WesternSection struct {
	Sun             string   `json:"sun"`
	Moon            string   `json:"moon"`
	Mercury         string   `json:"mercury"`
	Venus           string   `json:"venus"`
	Mars            string   `json:"mars"`
	Jupiter         string   `json:"jupiter"`
	Saturn          string   `json:"saturn"`
	Ascendant       string   `json:"ascendant"`
	DominantAspects []string `json:"dominant_aspects"`
}

// VedicSection holds the nakshatra and mahadasha facts.
type VedicSection struct {
	Nakshatra     string `json:"nakshatra"`
	NakshatraPada int    `json:"nakshatra_pada"`
	NakshatraLord string `json:"nakshatra_lord"`
	Mahadasha     string `json:"mahadasha"`
	MahadashaEnds string `json:"mahadasha_ends"`
	NextDasha     string `json:"next_dasha"`
}

// Payload is the full synthesis object: the sole contract handed to the text
// generation provider, which must never invent a fact absent from it.
type Payload struct {
	User     UserSection      `json:"user"`
	Western  WesternSection   `json:"western"`
	Vedic    VedicSection     `json:"vedic"`
	Mahabote mahabote.Profile `json:"mahabote"`
}

// Response pairs the synthesis object with the optional AI reading. Reading
// is nil when every provider failed; the computed facts are still returned.
type Response struct {
	Synthesis       Payload             `json:"synthesis"`
	Reading         *string             `json:"reading"`
	ReadingProvider string              `json:"readingProvider,omitempty"`
	TokenUsage      *metrics.TokenUsage `json:"tokenUsage,omitempty"`
}

// StoredReading is one archived synthesis run.
type StoredReading struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	BirthDate string    `json:"birthDate"`
	BirthTime string    `json:"birthTime"`
	Provider  string    `json:"provider"`
	Reading   string    `json:"reading"`
	CreatedAt time.Time `json:"createdAt"`
}

// Geocoder resolves a city name to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, city string) (Location, error)
}

// GeoStore caches geocoding results keyed by city.
type GeoStore interface {
	Get(ctx context.Context, city string) (Location, bool, error)
	Save(ctx context.Context, city string, loc Location, ttl time.Duration) error
}

// ReadingGenerator narrates a synthesis object.
type ReadingGenerator interface {
	Generate(ctx context.Context, synthesis any) (reading.Result, error)
}

// ReadingRepository archives generated readings.
type ReadingRepository interface {
	Insert(ctx context.Context, record StoredReading) (StoredReading, error)
	Recent(ctx context.Context, limit int) ([]StoredReading, error)
}

// Config wires runtime settings for the synthesis domain.
type Config struct {
	GeoCacheTTL time.Duration
	RecentLimit int
}
