package changefeed

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ChannelName is the Postgres NOTIFY channel row triggers publish on.
const ChannelName = "firmbooks_changes"

// subscriberBuffer is the per-subscription channel capacity. A subscriber
// that falls this far behind starts losing events rather than blocking the
// dispatch loop.
const subscriberBuffer = 16

// ChangeEvent describes a single row change, as emitted by the database
// triggers. EntityID is the owning entity's id: transaction events carry the
// account or partner id whose views the change invalidates.
type ChangeEvent struct {
	EntityKind string `json:"entity_kind"`
	EntityID   string `json:"entity_id"`
	ChangeKind string `json:"change_kind"`
}

type subKey struct {
	entityKind string
	entityID   string
}

// Subscription is one listener's view of the feed. Close is idempotent and
// must be called when the listener is done; events stop arriving on C after
// Close returns.
type Subscription struct {
	C chan ChangeEvent

	hub       *Hub
	key       subKey
	id        uint64
	closeOnce sync.Once
}

// Close detaches the subscription from the hub.
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		s.hub.unsubscribe(s)
	})
}

// Hub fans database change notifications out to in-process subscribers.
// Subscriptions are keyed by (entity kind, entity ID); an empty entity ID
// subscribes to every entity of that kind.
type Hub struct {
	logger *slog.Logger

	mu     sync.RWMutex
	subs   map[subKey]map[uint64]*Subscription
	nextID uint64
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger: logger,
		subs:   make(map[subKey]map[uint64]*Subscription),
	}
}

// Subscribe registers interest in changes to one entity, or to a whole kind
// when entityID is empty.
func (h *Hub) Subscribe(entityKind, entityID string) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	key := subKey{entityKind: entityKind, entityID: entityID}
	sub := &Subscription{
		C:   make(chan ChangeEvent, subscriberBuffer),
		hub: h,
		key: key,
		id:  h.nextID,
	}
	if h.subs[key] == nil {
		h.subs[key] = make(map[uint64]*Subscription)
	}
	h.subs[key][sub.id] = sub
	return sub
}

func (h *Hub) unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if peers, ok := h.subs[sub.key]; ok {
		delete(peers, sub.id)
		if len(peers) == 0 {
			delete(h.subs, sub.key)
		}
	}
	close(sub.C)
}

// Dispatch delivers an event to every matching subscription. Slow
// subscribers have the event dropped instead of stalling the loop.
func (h *Hub) Dispatch(ev ChangeEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	exact := subKey{entityKind: ev.EntityKind, entityID: ev.EntityID}
	kindWide := subKey{entityKind: ev.EntityKind}
	for _, key := range []subKey{exact, kindWide} {
		for _, sub := range h.subs[key] {
			select {
			case sub.C <- ev:
			default:
				h.logger.Warn("Dropping change event for slow subscriber",
					slog.String("entity_kind", ev.EntityKind),
					slog.String("entity_id", ev.EntityID),
				)
			}
		}
	}
}

// Run holds a dedicated connection on LISTEN and dispatches notifications
// until the context is cancelled. Connection failures are retried with a
// fixed backoff.
func (h *Hub) Run(ctx context.Context, pool *pgxpool.Pool) {
	for {
		if err := h.listen(ctx, pool); err != nil {
			if ctx.Err() != nil {
				return
			}
			h.logger.Error("Change feed listener failed, retrying", slog.String("error", err.Error()))
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Second):
		}
	}
}

func (h *Hub) listen(ctx context.Context, pool *pgxpool.Pool) error {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+ChannelName); err != nil {
		return err
	}
	h.logger.Info("Change feed listening", slog.String("channel", ChannelName))

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}

		var ev ChangeEvent
		if err := json.Unmarshal([]byte(notification.Payload), &ev); err != nil {
			h.logger.Warn("Ignoring malformed change notification", slog.String("payload", notification.Payload))
			continue
		}
		h.Dispatch(ev)
	}
}
