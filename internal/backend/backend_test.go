package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestUserClient_Me(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/me", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid token"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": 7, "role": "Admin", "email": "a@example.com"})
	}))
	defer server.Close()

	c := NewUserClient(server.URL, time.Second, nil)

	user, err := c.Me(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, User{ID: 7, Role: "Admin", Email: "a@example.com"}, user)

	_, err = c.Me(context.Background(), "wrong")
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, "Invalid token", MessageOr(err, "fallback"))
}

func TestUserClient_ExchangeCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/auth/google/callback", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		switch r.URL.Query().Get("code") {
		case "a b&c":
			writeJSON(w, http.StatusOK, map[string]string{"access_token": "tok-xyz"})
		case "empty":
			writeJSON(w, http.StatusOK, map[string]string{})
		default:
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Bad Request"})
		}
	}))
	defer server.Close()

	c := NewUserClient(server.URL, time.Second, nil)

	token, err := c.ExchangeCode(context.Background(), "a b&c")
	require.NoError(t, err)
	assert.Equal(t, "tok-xyz", token)

	_, err = c.ExchangeCode(context.Background(), "empty")
	assert.ErrorIs(t, err, ErrEmptyToken)

	_, err = c.ExchangeCode(context.Background(), "nope")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestRoomClient_CRUD(t *testing.T) {
	var created map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/rooms":
			writeJSON(w, http.StatusOK, []map[string]any{
				{"id": 1, "name": "A", "capacity": 4, "equipment": nil},
				{"id": 2, "name": "B", "capacity": 10, "equipment": "Projector"},
			})
		case r.Method == http.MethodGet && r.URL.Path == "/rooms/2":
			writeJSON(w, http.StatusOK, map[string]any{"id": 2, "name": "B", "capacity": 10})
		case r.Method == http.MethodPost && r.URL.Path == "/rooms":
			body, _ := io.ReadAll(r.Body)
			assert.NoError(t, json.Unmarshal(body, &created))
			writeJSON(w, http.StatusCreated, map[string]any{"id": 3, "name": created["name"], "capacity": created["capacity"]})
		case r.Method == http.MethodDelete && r.URL.Path == "/rooms/3":
			w.WriteHeader(http.StatusNoContent)
		default:
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not Found"})
		}
	}))
	defer server.Close()

	c := NewRoomClient(server.URL+"/", time.Second, nil)
	ctx := context.Background()

	rooms, err := c.ListRooms(ctx, "tok")
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Nil(t, rooms[0].Equipment)
	require.NotNil(t, rooms[1].Equipment)
	assert.Equal(t, "Projector", *rooms[1].Equipment)

	room, err := c.GetRoom(ctx, "tok", 2)
	require.NoError(t, err)
	assert.Equal(t, "B", room.Name)

	room, err = c.CreateRoom(ctx, "tok", NewRoom{Name: "A", Capacity: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(3), room.ID)
	assert.Contains(t, created, "equipment")
	assert.Nil(t, created["equipment"])

	require.NoError(t, c.DeleteRoom(ctx, "tok", 3))

	err = c.DeleteRoom(ctx, "tok", 99)
	require.Error(t, err)
	assert.False(t, IsUnauthorized(err))
}

func TestReservationClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			writeJSON(w, http.StatusOK, []Reservation{{ID: 7, RoomID: 1, StartTime: "2025-01-01T10:00:00Z", EndTime: "2025-01-01T11:00:00Z"}})
		case r.Method == http.MethodPost:
			var in NewReservation
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			if in.RoomID == 0 {
				writeJSON(w, http.StatusConflict, map[string]string{"error": "Room already booked"})
				return
			}
			writeJSON(w, http.StatusCreated, Reservation{ID: 8, RoomID: in.RoomID, StartTime: in.StartTime, EndTime: in.EndTime})
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusInternalServerError)
			io.WriteString(w, "<html>boom</html>")
		}
	}))
	defer server.Close()

	c := NewReservationClient(server.URL, time.Second, nil)
	ctx := context.Background()

	list, err := c.ListReservations(ctx, "tok")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].RoomID)

	res, err := c.CreateReservation(ctx, "tok", NewReservation{RoomID: 1, StartTime: "s", EndTime: "e"})
	require.NoError(t, err)
	assert.Equal(t, int64(8), res.ID)

	_, err = c.CreateReservation(ctx, "tok", NewReservation{})
	assert.Equal(t, "Room already booked", MessageOr(err, "Failed to book room"))

	err = c.DeleteReservation(ctx, "tok", 7)
	require.Error(t, err)
	assert.Equal(t, "Failed to cancel booking", MessageOr(err, "Failed to cancel booking"))
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := NewRoomClient(url, 200*time.Millisecond, nil)
	_, err := c.ListRooms(context.Background(), "tok")
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Equal(t, "Failed to load rooms", MessageOr(err, "Failed to load rooms"))
}
