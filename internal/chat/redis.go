package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ietdavv/iet-portal/internal/config"
	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound is returned for an unknown or expired session id.
var ErrSessionNotFound = errors.New("chat session not found")

// flightMargin keeps the busy key alive past the relay timeout so it does not
// expire while a send is still waiting on the relay.
const flightMargin = 15 * time.Second

// releaseScript deletes the busy key only while it still holds the caller's
// token. After an expiry the key may belong to a later send.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Session is a stored transcript together with its busy flag.
type Session interface {
	Transcript
	Flight
	ID() string
	Start(ctx context.Context) error
	Exists(ctx context.Context) (bool, error)
}

// SessionStore addresses sessions by id.
type SessionStore interface {
	Open(id string) Session
}

// RedisStore keeps sessions in Redis.
type RedisStore struct {
	rdb       *redis.Client
	ttl       time.Duration
	flightTTL time.Duration
}

// NewRedisStore returns a store whose transcripts expire after ttl of
// inactivity and whose busy flags outlive relayTimeout.
func NewRedisStore(rdb *redis.Client, ttl, relayTimeout time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl, flightTTL: relayTimeout + flightMargin}
}

// Open addresses an existing or new session. Nothing is read or written.
func (s *RedisStore) Open(id string) Session {
	return NewRedisSession(s.rdb, id, s.ttl, s.flightTTL)
}

// RedisSession is a transcript kept in a Redis list, with the busy flag as a
// separate key. Both expire so abandoned sessions are reclaimed and a crashed
// send cannot leave the session busy forever. A RedisSession serves one send
// at a time; the token of its current flight is held on the value.
type RedisSession struct {
	rdb       *redis.Client
	id        string
	ttl       time.Duration
	flightTTL time.Duration
	token     string
}

// NewRedisSession addresses an existing or new session by id.
func NewRedisSession(rdb *redis.Client, id string, ttl, flightTTL time.Duration) *RedisSession {
	return &RedisSession{rdb: rdb, id: id, ttl: ttl, flightTTL: flightTTL}
}

// ID returns the session id.
func (s *RedisSession) ID() string { return s.id }

// Start seeds a new session with the greeting.
func (s *RedisSession) Start(ctx context.Context) error {
	return s.Append(ctx, model.ChatEntry{Role: model.ChatRoleAssistant, Content: Greeting})
}

// Exists reports whether the session has a live transcript.
func (s *RedisSession) Exists(ctx context.Context) (bool, error) {
	n, err := s.rdb.Exists(ctx, config.CacheKey.BotTranscriptKey(s.id)).Result()
	if err != nil {
		return false, fmt.Errorf("check session: %w", err)
	}
	return n > 0, nil
}

// Append pushes entry and refreshes the session expiry.
func (s *RedisSession) Append(ctx context.Context, entry model.ChatEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}

	key := config.CacheKey.BotTranscriptKey(s.id)
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, data)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("append entry: %w", err)
	}
	return nil
}

// Entries returns the transcript in order. An expired session yields ErrSessionNotFound.
func (s *RedisSession) Entries(ctx context.Context) ([]model.ChatEntry, error) {
	raw, err := s.rdb.LRange(ctx, config.CacheKey.BotTranscriptKey(s.id), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrSessionNotFound
	}

	entries := make([]model.ChatEntry, 0, len(raw))
	for _, r := range raw {
		var e model.ChatEntry
		if err := json.Unmarshal([]byte(r), &e); err != nil {
			return nil, fmt.Errorf("decode entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Acquire sets the busy key to a fresh token if it is not already set.
func (s *RedisSession) Acquire(ctx context.Context) (bool, error) {
	token := uuid.NewString()
	ok, err := s.rdb.SetNX(ctx, config.CacheKey.BotInFlightKey(s.id), token, s.flightTTL).Result()
	if err != nil {
		return false, fmt.Errorf("acquire in-flight flag: %w", err)
	}
	if ok {
		s.token = token
	}
	return ok, nil
}

// Release clears the busy key if this session still holds it.
func (s *RedisSession) Release(ctx context.Context) error {
	if s.token == "" {
		return nil
	}
	token := s.token
	s.token = ""
	if err := releaseScript.Run(ctx, s.rdb, []string{config.CacheKey.BotInFlightKey(s.id)}, token).Err(); err != nil {
		return fmt.Errorf("release in-flight flag: %w", err)
	}
	return nil
}
