package geocoder_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/semka95/devcamper/domain"
	"github.com/semka95/devcamper/geocoder"
	"github.com/semka95/devcamper/geocoder/mock"
)

type fakeStore struct {
	data   map[string]string
	getErr error
	setErr error
	sets   int
}

func (f *fakeStore) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeStore) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	f.sets++
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.data[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func TestCached_Geocode(t *testing.T) {
	controller := gomock.NewController(t)
	defer controller.Finish()
	next := mock.NewMockGeocoder(controller)

	loc := &domain.Location{Type: "Point", Coordinates: []float64{-71.104028, 42.350846}, City: "Boston"}
	address := "233 Bay State Rd Boston MA 02215"

	t.Run("miss then hit", func(t *testing.T) {
		store := &fakeStore{data: map[string]string{}}
		c := geocoder.NewCached(next, store, time.Hour, zap.NewNop())

		next.EXPECT().Geocode(gomock.Any(), address).Return(loc, nil).Times(1)

		got, err := c.Geocode(context.Background(), address)
		require.NoError(t, err)
		assert.Equal(t, loc, got)
		assert.Equal(t, 1, store.sets)

		got, err = c.Geocode(context.Background(), "  233 bay state rd   Boston MA 02215")
		require.NoError(t, err)
		assert.Equal(t, loc, got)
	})

	t.Run("redis unavailable falls back to provider", func(t *testing.T) {
		store := &fakeStore{data: map[string]string{}, getErr: errors.New("dial tcp: connection refused"), setErr: errors.New("dial tcp: connection refused")}
		c := geocoder.NewCached(next, store, time.Hour, zap.NewNop())

		next.EXPECT().Geocode(gomock.Any(), address).Return(loc, nil)

		got, err := c.Geocode(context.Background(), address)
		require.NoError(t, err)
		assert.Equal(t, loc, got)
	})

	t.Run("broken entry is replaced", func(t *testing.T) {
		store := &fakeStore{data: map[string]string{}}
		c := geocoder.NewCached(next, store, time.Hour, zap.NewNop())
		next.EXPECT().Geocode(gomock.Any(), address).Return(loc, nil)
		_, err := c.Geocode(context.Background(), address)
		require.NoError(t, err)
		for k := range store.data {
			store.data[k] = "{broken"
		}

		next.EXPECT().Geocode(gomock.Any(), address).Return(loc, nil)
		got, err := c.Geocode(context.Background(), address)
		require.NoError(t, err)
		assert.Equal(t, loc, got)

		for _, v := range store.data {
			cached := new(domain.Location)
			require.NoError(t, json.Unmarshal([]byte(v), cached))
			assert.Equal(t, loc, cached)
		}
	})

	t.Run("provider error is not cached", func(t *testing.T) {
		store := &fakeStore{data: map[string]string{}}
		c := geocoder.NewCached(next, store, time.Hour, zap.NewNop())
		next.EXPECT().Geocode(gomock.Any(), "nowhere").Return(nil, domain.ErrBadParamInput)

		_, err := c.Geocode(context.Background(), "nowhere")
		assert.ErrorIs(t, err, domain.ErrBadParamInput)
		assert.Equal(t, 0, store.sets)
	})
}

func TestRedisConfig_TTL(t *testing.T) {
	assert.Equal(t, 30*24*time.Hour, geocoder.RedisConfig{}.TTL())
	assert.Equal(t, 2*time.Hour, geocoder.RedisConfig{GeocodeTTLHours: 2}.TTL())
}
