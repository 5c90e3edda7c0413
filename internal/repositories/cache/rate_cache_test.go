package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryCache()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "USDEUR", []byte("v"), time.Minute))

	value, ok, err := c.Get(ctx, "USDEUR")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), value)

	now = now.Add(2 * time.Minute)
	_, ok, err = c.Get(ctx, "USDEUR")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCache_Delete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "USDEUR", []byte("v"), time.Minute))
	require.NoError(t, c.Delete(ctx, "USDEUR"))

	_, ok, err := c.Get(ctx, "USDEUR")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_GetMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisCache(db)

	mock.ExpectGet(KeyPrefix + "USDEUR").RedisNil()

	value, ok, err := c.Get(context.Background(), "USDEUR")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_GetHit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisCache(db)

	mock.ExpectGet(KeyPrefix + "USDEUR").SetVal(`{"found":false}`)

	value, ok, err := c.Get(context.Background(), "USDEUR")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"found":false}`, string(value))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_GetError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisCache(db)

	mock.ExpectGet(KeyPrefix + "USDEUR").SetErr(assert.AnError)

	_, ok, err := c.Get(context.Background(), "USDEUR")
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, ok)
}

func TestRedisCache_SetAndDelete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisCache(db)
	ctx := context.Background()

	mock.ExpectSet(KeyPrefix+"USDEUR", []byte("v"), 30*time.Second).SetVal("OK")
	mock.ExpectDel(KeyPrefix + "USDEUR").SetVal(1)

	require.NoError(t, c.Set(ctx, "USDEUR", []byte("v"), 30*time.Second))
	require.NoError(t, c.Delete(ctx, "USDEUR"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient("not a url")
	assert.Error(t, err)
}
