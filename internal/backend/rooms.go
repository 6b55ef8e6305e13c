package backend

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// RoomClient talks to the room service.
type RoomClient struct {
	*client
}

// NewRoomClient creates a room service client.
func NewRoomClient(baseURL string, timeout time.Duration, logger *zap.Logger) *RoomClient {
	return &RoomClient{client: newClient("room", baseURL, timeout, logger)}
}

func (c *RoomClient) ListRooms(ctx context.Context, token string) ([]Room, error) {
	var rooms []Room
	if err := c.execute(c.request(ctx, token), http.MethodGet, "/rooms", &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (c *RoomClient) GetRoom(ctx context.Context, token string, id int64) (Room, error) {
	var room Room
	err := c.execute(c.request(ctx, token), http.MethodGet, "/rooms/"+strconv.FormatInt(id, 10), &room)
	return room, err
}

func (c *RoomClient) CreateRoom(ctx context.Context, token string, in NewRoom) (Room, error) {
	var room Room
	req := c.request(ctx, token).SetHeader("Content-Type", "application/json").SetBody(in)
	err := c.execute(req, http.MethodPost, "/rooms", &room)
	return room, err
}

func (c *RoomClient) DeleteRoom(ctx context.Context, token string, id int64) error {
	return c.execute(c.request(ctx, token), http.MethodDelete, "/rooms/"+strconv.FormatInt(id, 10), nil)
}
