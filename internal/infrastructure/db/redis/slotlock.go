package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const lockTTL = 10 * time.Second

// SlotLocker serialises booking attempts against the same veterinarian
// and date. The lock is advisory with a short TTL, so a crashed holder
// never blocks the slot for long.
type SlotLocker struct {
	client *redis.Client
}

func NewSlotLocker(client *redis.Client) *SlotLocker {
	return &SlotLocker{client: client}
}

func slotKey(veterinarianID, date string) string {
	return fmt.Sprintf("slot:%s:%s", veterinarianID, date)
}

// Acquire claims the slot key. It returns false when another booking
// attempt currently holds it.
func (l *SlotLocker) Acquire(ctx context.Context, veterinarianID, date string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	ok, err := l.client.SetNX(ctx, slotKey(veterinarianID, date), "1", lockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("acquire slot lock: %w", err)
	}
	return ok, nil
}

// Release drops the slot key. Releasing a lock that already expired is
// a no-op.
func (l *SlotLocker) Release(ctx context.Context, veterinarianID, date string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := l.client.Del(ctx, slotKey(veterinarianID, date)).Err(); err != nil {
		return fmt.Errorf("release slot lock: %w", err)
	}
	return nil
}
