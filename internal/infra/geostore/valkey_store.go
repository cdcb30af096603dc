package geostore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/minthura/astrologic/internal/domain/synthesis"
)

// ValkeyStore persists geocoding results using a Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "geo"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) Get(ctx context.Context, city string) (synthesis.Location, bool, error) {
	key := normalizeKey(city)
	if key == "" {
		return synthesis.Location{}, false, nil
	}
	cmd := s.client.B().Get().Key(s.locationKey(key)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return synthesis.Location{}, false, nil
		}
		return synthesis.Location{}, false, err
	}
	var loc synthesis.Location
	if err := json.Unmarshal([]byte(payload), &loc); err != nil {
		return synthesis.Location{}, false, err
	}
	return loc, true, nil
}

func (s *ValkeyStore) Save(ctx context.Context, city string, loc synthesis.Location, ttl time.Duration) error {
	key := normalizeKey(city)
	if key == "" {
		return nil
	}
	payload, err := json.Marshal(loc)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.locationKey(key)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) locationKey(city string) string {
	return fmt.Sprintf("%s:city:%s", s.prefix, city)
}

var _ synthesis.GeoStore = (*ValkeyStore)(nil)
