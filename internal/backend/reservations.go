package backend

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// ReservationClient talks to the reservation service.
type ReservationClient struct {
	*client
}

// NewReservationClient creates a reservation service client.
func NewReservationClient(baseURL string, timeout time.Duration, logger *zap.Logger) *ReservationClient {
	return &ReservationClient{client: newClient("reservation", baseURL, timeout, logger)}
}

func (c *ReservationClient) ListReservations(ctx context.Context, token string) ([]Reservation, error) {
	var out []Reservation
	if err := c.execute(c.request(ctx, token), http.MethodGet, "/reservations", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ReservationClient) CreateReservation(ctx context.Context, token string, in NewReservation) (Reservation, error) {
	var out Reservation
	req := c.request(ctx, token).SetHeader("Content-Type", "application/json").SetBody(in)
	err := c.execute(req, http.MethodPost, "/reservations", &out)
	return out, err
}

func (c *ReservationClient) DeleteReservation(ctx context.Context, token string, id int64) error {
	return c.execute(c.request(ctx, token), http.MethodDelete, "/reservations/"+strconv.FormatInt(id, 10), nil)
}
