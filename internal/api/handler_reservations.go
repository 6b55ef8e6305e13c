package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"room-booking-web/internal/backend"
	"room-booking-web/internal/banner"
	"room-booking-web/internal/enrich"
	"room-booking-web/internal/parse"
	"room-booking-web/internal/session"
	"room-booking-web/internal/view"
)

const reservationsPath = "/reservations"

var bookingList = view.NewList[enrich.NamedReservation]().
	Columns("Room", "Start", "End", "Actions").
	Empty("No bookings found").
	Row(func(r enrich.NamedReservation) []string {
		return []string{r.RoomName, view.FormatDateTime(r.StartTime), view.FormatDateTime(r.EndTime)}
	}).
	Action(func(r enrich.NamedReservation) (view.Action, bool) {
		return view.Action{
			Label:   "Cancel",
			Href:    fmt.Sprintf("%s/%d/cancel", reservationsPath, r.ID),
			Class:   "btn-danger",
			Confirm: true,
		}, true
	}).
	Build()

// ListReservations renders the booking form and the user's bookings.
func (h *Handler) ListReservations(c *gin.Context) {
	ctx := c.Request.Context()
	token := session.Token(c)

	p := page{Title: "My Bookings", SelectedRoom: c.Query("room")}

	rooms, err := h.rooms.ListRooms(ctx, token)
	if err != nil {
		h.logger.Error("failed to load rooms", zap.Error(err))
		h.pageError(&p, "Failed to load rooms")
	}
	for _, r := range rooms {
		p.RoomOptions = append(p.RoomOptions, roomOption{
			Value: strconv.FormatInt(r.ID, 10),
			Label: fmt.Sprintf("%s (Capacity: %d)", r.Name, r.Capacity),
		})
	}

	p.Table, err = bookingList.Load(ctx, func(ctx context.Context) ([]enrich.NamedReservation, error) {
		reservations, err := h.reservations.ListReservations(ctx, token)
		if err != nil {
			return nil, err
		}
		return h.enricher.RoomNames(ctx, token, reservations), nil
	})
	if err != nil {
		h.logger.Error("failed to load bookings", zap.Error(err))
		h.pageError(&p, "Failed to load bookings")
	}

	h.render(c, http.StatusOK, "reservations.html", p)
}

// CreateReservation books a room from the posted form and returns to the list.
func (h *Handler) CreateReservation(c *gin.Context) {
	in, err := parse.BookingForm(c.PostForm("room_id"), c.PostForm("start"), c.PostForm("end"))
	if err != nil {
		h.showMessage(c, validationMessage(err, "Failed to book room"), banner.Error)
		c.Redirect(http.StatusSeeOther, reservationsPath)
		return
	}

	if _, err := h.reservations.CreateReservation(c.Request.Context(), session.Token(c), in); err != nil {
		h.logger.Warn("failed to create reservation", zap.Int64("room_id", in.RoomID), zap.Error(err))
		h.showMessage(c, backend.MessageOr(err, "Failed to book room"), banner.Error)
	} else {
		h.showMessage(c, "Room booked successfully!", banner.Success)
	}
	c.Redirect(http.StatusSeeOther, reservationsPath)
}

// ConfirmCancelReservation asks before a booking is cancelled.
func (h *Handler) ConfirmCancelReservation(c *gin.Context) {
	id, err := parse.ID("reservation id", c.Param("id"))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	h.render(c, http.StatusOK, "confirm.html", page{
		Title: "Cancel booking",
		Confirm: confirmState{
			Prompt: "Are you sure you want to cancel this booking?",
			Action: fmt.Sprintf("%s/%d/cancel", reservationsPath, id),
			Back:   reservationsPath,
		},
	})
}

// CancelReservation deletes a booking once the confirmation form was accepted.
// The list is re-fetched on the next page load; nothing is removed up front.
func (h *Handler) CancelReservation(c *gin.Context) {
	id, err := parse.ID("reservation id", c.Param("id"))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	if !confirmed(c) {
		c.Redirect(http.StatusSeeOther, reservationsPath)
		return
	}

	if err := h.reservations.DeleteReservation(c.Request.Context(), session.Token(c), id); err != nil {
		h.logger.Warn("failed to cancel reservation", zap.Int64("reservation_id", id), zap.Error(err))
		h.showMessage(c, backend.MessageOr(err, "Failed to cancel booking"), banner.Error)
	} else {
		h.showMessage(c, "Booking cancelled successfully!", banner.Success)
	}
	c.Redirect(http.StatusSeeOther, reservationsPath)
}
