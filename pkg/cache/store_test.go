package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestStoreGetHit(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewStore[item](rdb, "item", time.Minute, zap.NewNop())

	mock.ExpectGet("item:7").SetVal(`{"id":7,"name":"seven"}`)

	got, ok := store.Get(context.Background(), "7")
	require.True(t, ok)
	assert.Equal(t, &item{ID: 7, Name: "seven"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreGetMiss(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewStore[item](rdb, "item", time.Minute, zap.NewNop())

	mock.ExpectGet("item:7").RedisNil()
	mock.ExpectGet("item:8").SetErr(errors.New("connection reset"))
	mock.ExpectGet("item:9").SetVal("not json")

	for _, key := range []string{"7", "8", "9"} {
		got, ok := store.Get(context.Background(), key)
		assert.False(t, ok, key)
		assert.Nil(t, got, key)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreSetAndDelete(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewStore[item](rdb, "item", time.Minute, zap.NewNop())

	mock.ExpectSet("item:7", []byte(`{"id":7,"name":"seven"}`), time.Minute).SetVal("OK")
	mock.ExpectDel("item:7").SetVal(1)

	store.Set(context.Background(), "7", &item{ID: 7, Name: "seven"})
	store.Delete(context.Background(), "7")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewStoreWithoutRedis(t *testing.T) {
	store := NewStore[item](nil, "item", time.Minute, zap.NewNop())
	assert.IsType(t, NoopStore[item]{}, store)

	store.Set(context.Background(), "1", &item{ID: 1})
	_, ok := store.Get(context.Background(), "1")
	assert.False(t, ok)
}

func TestStoreClear(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewStore[item](rdb, "item", time.Minute, zap.NewNop())

	mock.ExpectScan(0, "item:*", 100).SetVal([]string{"item:7", "item:8"}, 0)
	mock.ExpectDel("item:7", "item:8").SetVal(2)

	store.Clear(context.Background())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreClearEmpty(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewStore[item](rdb, "item", time.Minute, zap.NewNop())

	mock.ExpectScan(0, "item:*", 100).SetVal([]string{}, 0)

	store.Clear(context.Background())
	assert.NoError(t, mock.ExpectationsWereMet())
}
