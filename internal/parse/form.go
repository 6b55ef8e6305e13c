package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"room-booking-web/internal/backend"
)

var (
	localMinuteRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}$`)
	localSecondRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}$`)
)

// ValidationError reports a form field that could not be parsed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// ID parses a positive resource id from a path or form value.
func ID(field, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, &ValidationError{Field: field, Reason: "must be a positive integer"}
	}
	return id, nil
}

// RoomForm builds the create-room payload. A blank equipment field is sent as null.
func RoomForm(name, capacity, equipment string) (backend.NewRoom, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return backend.NewRoom{}, &ValidationError{Field: "name", Reason: "is required"}
	}

	c, err := strconv.Atoi(strings.TrimSpace(capacity))
	if err != nil {
		return backend.NewRoom{}, &ValidationError{Field: "capacity", Reason: "must be a whole number"}
	}

	room := backend.NewRoom{Name: name, Capacity: c}
	if eq := strings.TrimSpace(equipment); eq != "" {
		room.Equipment = &eq
	}
	return room, nil
}

// BookingForm builds the create-reservation payload from the booking form.
func BookingForm(roomID, start, end string) (backend.NewReservation, error) {
	id, err := ID("room", roomID)
	if err != nil {
		return backend.NewReservation{}, err
	}
	startTime, err := LocalDateTime("start", start)
	if err != nil {
		return backend.NewReservation{}, err
	}
	endTime, err := LocalDateTime("end", end)
	if err != nil {
		return backend.NewReservation{}, err
	}
	return backend.NewReservation{RoomID: id, StartTime: startTime, EndTime: endTime}, nil
}

// LocalDateTime turns a datetime-local input value ("2006-01-02T15:04")
// into the UTC timestamp the reservation service expects ("2006-01-02T15:04:00Z").
func LocalDateTime(field, raw string) (string, error) {
	v := strings.TrimSpace(raw)
	switch {
	case localMinuteRe.MatchString(v):
		return v + ":00Z", nil
	case localSecondRe.MatchString(v):
		return v + "Z", nil
	}
	return "", &ValidationError{Field: field, Reason: "must be a date and time"}
}
