//go:build e2e
// +build e2e

package chat

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ietdavv/iet-portal/internal/config"
	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/redis/go-redis/v9"
)

func testRedis(t *testing.T) *redis.Client {
	t.Helper()
	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = "redis://localhost:6379/0"
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		t.Fatalf("parse REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis not reachable: %v", err)
	}
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

func cleanupSession(t *testing.T, rdb *redis.Client, id string) {
	t.Cleanup(func() {
		rdb.Del(context.Background(), config.CacheKey.BotTranscriptKey(id), config.CacheKey.BotInFlightKey(id))
	})
}

func TestRedisSessionTranscript(t *testing.T) {
	ctx := context.Background()
	rdb := testRedis(t)
	id := uuid.NewString()
	cleanupSession(t, rdb, id)

	s := NewRedisSession(rdb, id, time.Minute, time.Minute)

	if _, err := s.Entries(ctx); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Entries before start = %v, want ErrSessionNotFound", err)
	}
	if ok, _ := s.Exists(ctx); ok {
		t.Fatal("session exists before start")
	}

	if err := s.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := s.Append(ctx, model.ChatEntry{Role: model.ChatRoleUser, Content: "hello"}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	entries, err := s.Entries(ctx)
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 2 || entries[0].Content != Greeting || entries[1].Content != "hello" {
		t.Errorf("entries = %+v", entries)
	}

	ttl, err := rdb.TTL(ctx, config.CacheKey.BotTranscriptKey(id)).Result()
	if err != nil {
		t.Fatalf("TTL: %v", err)
	}
	if ttl <= 0 || ttl > time.Minute {
		t.Errorf("transcript ttl = %v, want within (0, 1m]", ttl)
	}
}

func TestRedisSessionFlight(t *testing.T) {
	ctx := context.Background()
	rdb := testRedis(t)
	id := uuid.NewString()
	cleanupSession(t, rdb, id)

	first := NewRedisSession(rdb, id, time.Minute, time.Minute)
	second := NewRedisSession(rdb, id, time.Minute, time.Minute)

	if ok, err := first.Acquire(ctx); err != nil || !ok {
		t.Fatalf("first Acquire = %v, %v; want true", ok, err)
	}
	if ok, _ := second.Acquire(ctx); ok {
		t.Fatal("second Acquire succeeded while the first send is in flight")
	}

	ttl, _ := rdb.TTL(ctx, config.CacheKey.BotInFlightKey(id)).Result()
	if ttl <= 0 || ttl > time.Minute {
		t.Errorf("busy key ttl = %v, want within (0, 1m]", ttl)
	}

	if err := first.Release(ctx); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if ok, _ := second.Acquire(ctx); !ok {
		t.Fatal("Acquire after release failed")
	}
	_ = second.Release(ctx)
}

func TestRedisSessionStaleReleaseKeepsLaterFlight(t *testing.T) {
	ctx := context.Background()
	rdb := testRedis(t)
	id := uuid.NewString()
	cleanupSession(t, rdb, id)

	stale := NewRedisSession(rdb, id, time.Minute, 100*time.Millisecond)
	if ok, _ := stale.Acquire(ctx); !ok {
		t.Fatal("Acquire failed")
	}
	time.Sleep(250 * time.Millisecond)

	later := NewRedisSession(rdb, id, time.Minute, time.Minute)
	if ok, _ := later.Acquire(ctx); !ok {
		t.Fatal("Acquire after expiry failed")
	}

	if err := stale.Release(ctx); err != nil {
		t.Fatalf("stale Release: %v", err)
	}
	if n, _ := rdb.Exists(ctx, config.CacheKey.BotInFlightKey(id)).Result(); n != 1 {
		t.Fatal("stale release cleared the later send's busy key")
	}

	if err := later.Release(ctx); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if n, _ := rdb.Exists(ctx, config.CacheKey.BotInFlightKey(id)).Result(); n != 0 {
		t.Error("busy key still set after its holder released it")
	}
}
