package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ietdavv/iet-portal/internal/config"
	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/ietdavv/iet-portal/internal/notify"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	// drainTimeout bounds how long shutdown waits for queued notifications.
	drainTimeout = 10 * time.Second
	// sendTimeout bounds one delivery. An item already popped is sent even
	// when shutdown has begun.
	sendTimeout = 15 * time.Second
)

// ContactNotifyWorker consumes contact_notify_queue and e-mails each stored
// contact message to the site inbox. Delivery is best-effort: a failed send
// is logged and dropped.
type ContactNotifyWorker struct {
	rdb    *redis.Client
	sender notify.Sender
	queue  string
	log    zerolog.Logger
}

// NewContactNotifyWorker creates a new ContactNotifyWorker.
func NewContactNotifyWorker(rdb *redis.Client, sender notify.Sender, log zerolog.Logger) *ContactNotifyWorker {
	return &ContactNotifyWorker{
		rdb:    rdb,
		sender: sender,
		queue:  config.WorkerKey.ContactNotifyQueue,
		log:    log.With().Str("component", "contact_notify_worker").Logger(),
	}
}

// Enqueue schedules a notification for msg.
func (w *ContactNotifyWorker) Enqueue(ctx context.Context, msg *model.ContactMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal contact message: %w", err)
	}
	return w.rdb.RPush(ctx, w.queue, data).Err()
}

// Start begins the infinite worker loop. Call in a goroutine.
func (w *ContactNotifyWorker) Start(ctx context.Context) {
	w.log.Info().Msg("Worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopping...")
			drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
			w.drain(drainCtx)
			cancel()
			w.log.Info().Msg("Worker stopped")
			return
		default:
			w.processNext(ctx)
		}
	}
}

func (w *ContactNotifyWorker) processNext(ctx context.Context) {
	// BLPop blocks until an item is available or timeout (1 second).
	result, err := w.rdb.BLPop(ctx, time.Second, w.queue).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) && ctx.Err() == nil {
			w.log.Error().Err(err).Msg("BLPop error")
			time.Sleep(time.Second)
		}
		return
	}

	if len(result) < 2 {
		return
	}
	w.deliver(ctx, result[1])
}

func (w *ContactNotifyWorker) deliver(ctx context.Context, raw string) {
	var msg model.ContactMessage
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		w.log.Error().Err(err).Msg("Unmarshal error")
		return
	}

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sendTimeout)
	defer cancel()

	if err := w.sender.SendContact(sendCtx, &msg); err != nil {
		w.log.Warn().Err(err).Str("contact_id", msg.ID.String()).Msg("contact notification dropped")
	}
}

// drain sends all remaining notifications before shutdown.
func (w *ContactNotifyWorker) drain(ctx context.Context) {
	drained := 0
	for ctx.Err() == nil {
		result, err := w.rdb.LPop(ctx, w.queue).Result()
		if err != nil {
			break
		}
		w.deliver(ctx, result)
		drained++
	}

	if drained > 0 {
		w.log.Info().Int("count", drained).Msg("Drained remaining items")
	}
}
