package enrich

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"room-booking-web/internal/backend"
	"room-booking-web/internal/metrics"
)

// RoomLookup resolves a room by id.
type RoomLookup interface {
	GetRoom(ctx context.Context, token string, id int64) (backend.Room, error)
}

// NamedReservation is a reservation joined with a display name for its room.
type NamedReservation struct {
	backend.Reservation
	RoomName string
}

// FallbackRoomName is the label used when a room lookup fails.
func FallbackRoomName(roomID int64) string {
	return fmt.Sprintf("Room %d", roomID)
}

// WorkerPool bounds the number of concurrent room lookups per listing.
type WorkerPool struct {
	size   int
	lookup RoomLookup
	logger *zap.Logger
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(size int, lookup RoomLookup, logger *zap.Logger) *WorkerPool {
	if size <= 0 {
		size = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkerPool{size: size, lookup: lookup, logger: logger}
}

// RoomNames resolves the room name of every reservation. Lookups run
// concurrently in no particular order; the result keeps the input order.
// A failed lookup only affects its own row.
func (wp *WorkerPool) RoomNames(ctx context.Context, token string, reservations []backend.Reservation) []NamedReservation {
	out := make([]NamedReservation, len(reservations))
	if len(reservations) == 0 {
		return out
	}

	workers := wp.size
	if workers > len(reservations) {
		workers = len(reservations)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go wp.worker(ctx, token, jobs, reservations, out, &wg)
	}

	for i := range reservations {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return out
}

func (wp *WorkerPool) worker(ctx context.Context, token string, jobs <-chan int, in []backend.Reservation, out []NamedReservation, wg *sync.WaitGroup) {
	defer wg.Done()
	for idx := range jobs {
		out[idx] = wp.resolve(ctx, token, in[idx])
	}
}

func (wp *WorkerPool) resolve(ctx context.Context, token string, r backend.Reservation) (named NamedReservation) {
	named = NamedReservation{Reservation: r, RoomName: FallbackRoomName(r.RoomID)}

	defer func() {
		if p := recover(); p != nil {
			wp.logger.Error("room lookup panicked", zap.Int64("room_id", r.RoomID), zap.Any("panic", p))
			metrics.EnrichmentFallbacksTotal.Inc()
			named.RoomName = FallbackRoomName(r.RoomID)
		}
	}()

	room, err := wp.lookup.GetRoom(ctx, token, r.RoomID)
	if err != nil {
		wp.logger.Debug("room lookup failed, using fallback label",
			zap.Int64("reservation_id", r.ID),
			zap.Int64("room_id", r.RoomID),
			zap.Error(err),
		)
		metrics.EnrichmentFallbacksTotal.Inc()
		return named
	}
	named.RoomName = room.Name
	return named
}
