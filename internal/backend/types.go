package backend

// User is the profile returned by GET /users/me.
type User struct {
	ID    int64  `json:"id"`
	Role  string `json:"role"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// Room is a bookable room owned by the room service.
type Room struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Capacity  int     `json:"capacity"`
	Equipment *string `json:"equipment"`
}

// NewRoom is the POST /rooms payload. A nil Equipment is sent as JSON null.
type NewRoom struct {
	Name      string  `json:"name"`
	Capacity  int     `json:"capacity"`
	Equipment *string `json:"equipment"`
}

// Reservation is a booking owned by the reservation service.
type Reservation struct {
	ID        int64  `json:"id"`
	RoomID    int64  `json:"room_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// NewReservation is the POST /reservations payload.
type NewReservation struct {
	RoomID    int64  `json:"room_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}
