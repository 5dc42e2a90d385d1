package changefeed

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHub() *Hub {
	return NewHub(slog.Default())
}

func receive(t *testing.T, sub *Subscription) ChangeEvent {
	t.Helper()
	select {
	case ev, ok := <-sub.C:
		require.True(t, ok, "subscription channel closed unexpectedly")
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return ChangeEvent{}
	}
}

func TestDispatch_ExactMatch(t *testing.T) {
	hub := testHub()
	sub := hub.Subscribe("account", "acc-1")
	defer sub.Close()

	ev := ChangeEvent{EntityKind: "account", EntityID: "acc-1", ChangeKind: "update"}
	hub.Dispatch(ev)

	assert.Equal(t, ev, receive(t, sub))
}

func TestDispatch_KindWideSubscription(t *testing.T) {
	hub := testHub()
	sub := hub.Subscribe("transaction", "")
	defer sub.Close()

	hub.Dispatch(ChangeEvent{EntityKind: "transaction", EntityID: "txn-1", ChangeKind: "insert"})
	hub.Dispatch(ChangeEvent{EntityKind: "transaction", EntityID: "txn-2", ChangeKind: "delete"})

	assert.Equal(t, "txn-1", receive(t, sub).EntityID)
	assert.Equal(t, "txn-2", receive(t, sub).EntityID)
}

func TestDispatch_FiltersOtherEntities(t *testing.T) {
	hub := testHub()
	sub := hub.Subscribe("account", "acc-1")
	defer sub.Close()

	hub.Dispatch(ChangeEvent{EntityKind: "account", EntityID: "acc-2", ChangeKind: "update"})
	hub.Dispatch(ChangeEvent{EntityKind: "partner", EntityID: "acc-1", ChangeKind: "update"})

	select {
	case ev := <-sub.C:
		t.Fatalf("expected no event, got %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestClose_StopsDeliveryAndClosesChannel(t *testing.T) {
	hub := testHub()
	sub := hub.Subscribe("account", "acc-1")

	sub.Close()
	// Close is idempotent.
	sub.Close()

	hub.Dispatch(ChangeEvent{EntityKind: "account", EntityID: "acc-1", ChangeKind: "update"})

	_, ok := <-sub.C
	assert.False(t, ok, "channel should be closed after Close")
}

func TestDispatch_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	hub := testHub()
	sub := hub.Subscribe("account", "acc-1")
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < subscriberBuffer*2; i++ {
			hub.Dispatch(ChangeEvent{EntityKind: "account", EntityID: "acc-1", ChangeKind: "update"})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatch blocked on a slow subscriber")
	}

	// The buffer holds at most subscriberBuffer events; the rest were dropped.
	count := 0
	for {
		select {
		case <-sub.C:
			count++
		default:
			assert.Equal(t, subscriberBuffer, count)
			return
		}
	}
}

// Transaction events carry the owning account's or partner's id, so a view
// watching one account only hears about that account's rows.
func TestDispatch_AccountScopedTransactionEvents(t *testing.T) {
	hub := testHub()
	sub := hub.Subscribe("transaction", "acc-1")
	defer sub.Close()

	hub.Dispatch(ChangeEvent{EntityKind: "transaction", EntityID: "acc-2", ChangeKind: "insert"})
	hub.Dispatch(ChangeEvent{EntityKind: "transaction", EntityID: "acc-1", ChangeKind: "insert"})

	got := receive(t, sub)
	assert.Equal(t, "acc-1", got.EntityID)
	assert.Equal(t, "insert", got.ChangeKind)

	select {
	case ev := <-sub.C:
		t.Fatalf("expected no further events, got %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

// A firm transaction tagged with a partner is published twice, once per
// owning id, so account ledgers and partner statements invalidate
// independently.
func TestDispatch_PartnerTaggedTransactionReachesBothOwners(t *testing.T) {
	hub := testHub()
	accountSub := hub.Subscribe("transaction", "acc-1")
	partnerSub := hub.Subscribe("transaction", "p-1")
	defer accountSub.Close()
	defer partnerSub.Close()

	hub.Dispatch(ChangeEvent{EntityKind: "transaction", EntityID: "acc-1", ChangeKind: "delete"})
	hub.Dispatch(ChangeEvent{EntityKind: "transaction", EntityID: "p-1", ChangeKind: "delete"})

	assert.Equal(t, "acc-1", receive(t, accountSub).EntityID)
	assert.Equal(t, "p-1", receive(t, partnerSub).EntityID)
}

func TestDispatch_MultipleSubscribersEachReceive(t *testing.T) {
	hub := testHub()
	subA := hub.Subscribe("partner", "p-1")
	subB := hub.Subscribe("partner", "p-1")
	defer subA.Close()
	defer subB.Close()

	ev := ChangeEvent{EntityKind: "partner", EntityID: "p-1", ChangeKind: "update"}
	hub.Dispatch(ev)

	assert.Equal(t, ev, receive(t, subA))
	assert.Equal(t, ev, receive(t, subB))
}
