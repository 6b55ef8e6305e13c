package enrich

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"room-booking-web/internal/backend"
)

// mockLookup is a mock implementation of the RoomLookup interface.
type mockLookup struct {
	GetRoomFunc func(ctx context.Context, token string, id int64) (backend.Room, error)
}

func (m *mockLookup) GetRoom(ctx context.Context, token string, id int64) (backend.Room, error) {
	return m.GetRoomFunc(ctx, token, id)
}

func reservations(roomIDs ...int64) []backend.Reservation {
	out := make([]backend.Reservation, len(roomIDs))
	for i, id := range roomIDs {
		out[i] = backend.Reservation{ID: int64(100 + i), RoomID: id}
	}
	return out
}

func TestWorkerPool_KeepsInputOrder(t *testing.T) {
	lookup := &mockLookup{GetRoomFunc: func(ctx context.Context, token string, id int64) (backend.Room, error) {
		// Later rows finish first.
		time.Sleep(time.Duration(10-id) * time.Millisecond)
		return backend.Room{ID: id, Name: string(rune('A' + id))}, nil
	}}

	wp := NewWorkerPool(4, lookup, nil)
	got := wp.RoomNames(context.Background(), "tok", reservations(1, 2, 3, 4, 5, 6))

	require.Len(t, got, 6)
	for i, n := range got {
		assert.Equal(t, int64(100+i), n.ID)
		assert.Equal(t, string(rune('A'+n.RoomID)), n.RoomName)
	}
}

func TestWorkerPool_FailedLookupFallsBack(t *testing.T) {
	lookup := &mockLookup{GetRoomFunc: func(ctx context.Context, token string, id int64) (backend.Room, error) {
		switch id {
		case 2:
			return backend.Room{}, errors.New("room service down")
		case 3:
			panic("unexpected")
		}
		return backend.Room{ID: id, Name: "Board room"}, nil
	}}

	wp := NewWorkerPool(2, lookup, nil)
	got := wp.RoomNames(context.Background(), "tok", reservations(1, 2, 3, 4))

	names := []string{got[0].RoomName, got[1].RoomName, got[2].RoomName, got[3].RoomName}
	assert.Equal(t, []string{"Board room", "Room 2", "Room 3", "Board room"}, names)
}

func TestWorkerPool_BoundsConcurrency(t *testing.T) {
	var inFlight, peak int32
	var mu sync.Mutex
	lookup := &mockLookup{GetRoomFunc: func(ctx context.Context, token string, id int64) (backend.Room, error) {
		n := atomic.AddInt32(&inFlight, 1)
		mu.Lock()
		if n > peak {
			peak = n
		}
		mu.Unlock()
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		return backend.Room{Name: "x"}, nil
	}}

	wp := NewWorkerPool(3, lookup, nil)
	wp.RoomNames(context.Background(), "tok", reservations(1, 2, 3, 4, 5, 6, 7, 8, 9))

	assert.LessOrEqual(t, peak, int32(3))
}

func TestWorkerPool_PassesToken(t *testing.T) {
	lookup := &mockLookup{GetRoomFunc: func(ctx context.Context, token string, id int64) (backend.Room, error) {
		assert.Equal(t, "tok-9", token)
		return backend.Room{Name: "ok"}, nil
	}}

	got := NewWorkerPool(1, lookup, nil).RoomNames(context.Background(), "tok-9", reservations(5))
	assert.Equal(t, "ok", got[0].RoomName)
}

func TestWorkerPool_Empty(t *testing.T) {
	wp := NewWorkerPool(0, &mockLookup{}, nil)
	assert.Empty(t, wp.RoomNames(context.Background(), "tok", nil))
}
