package payment

import (
	"context"
	"time"

	"github.com/ManosLatam/marketplace-api/internal/audit"
	"github.com/ManosLatam/marketplace-api/internal/notify"
)

type notifier interface {
	Dispatch(ev notify.Event)
}

type auditor interface {
	Dispatch(ev audit.Event)
}

// locker serializes payment attempts per user; lock.Locker satisfies it.
type locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error)
}

const paymentLockTTL = 30 * time.Second
