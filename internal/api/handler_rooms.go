package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"room-booking-web/internal/backend"
	"room-booking-web/internal/banner"
	"room-booking-web/internal/parse"
	"room-booking-web/internal/session"
	"room-booking-web/internal/view"
)

const roomsPath = "/rooms"

func roomList(caps view.Capabilities) view.List[backend.Room] {
	b := view.NewList[backend.Room]().
		Columns("Name", "Capacity", "Equipment", "Actions").
		Empty("No rooms available").
		Row(func(r backend.Room) []string {
			equipment := "None"
			if r.Equipment != nil && *r.Equipment != "" {
				equipment = *r.Equipment
			}
			return []string{r.Name, strconv.Itoa(r.Capacity), equipment}
		}).
		Action(func(r backend.Room) (view.Action, bool) {
			return view.Action{
				Label: "Book",
				Href:  fmt.Sprintf("%s?room=%d", reservationsPath, r.ID),
				Class: "btn-primary",
			}, true
		})
	if caps.CanDelete {
		b.Action(func(r backend.Room) (view.Action, bool) {
			return view.Action{
				Label:   "Delete",
				Href:    fmt.Sprintf("%s/%d/delete", roomsPath, r.ID),
				Class:   "btn-danger",
				Confirm: true,
			}, true
		})
	}
	return b.Build()
}

// ListRooms renders the room inventory.
func (h *Handler) ListRooms(c *gin.Context) {
	token := session.Token(c)
	table, err := roomList(session.Capabilities(c)).Load(c.Request.Context(), func(ctx context.Context) ([]backend.Room, error) {
		return h.rooms.ListRooms(ctx, token)
	})
	p := page{Title: "Rooms", Table: table}
	if err != nil {
		h.logger.Error("failed to load rooms", zap.Error(err))
		h.pageError(&p, "Failed to load rooms")
	}
	h.render(c, http.StatusOK, "rooms.html", p)
}

// CreateRoom adds a room from the posted form and returns to the list.
func (h *Handler) CreateRoom(c *gin.Context) {
	in, err := parse.RoomForm(c.PostForm("name"), c.PostForm("capacity"), c.PostForm("equipment"))
	if err != nil {
		h.showMessage(c, validationMessage(err, "Failed to add room"), banner.Error)
		c.Redirect(http.StatusSeeOther, roomsPath)
		return
	}

	if _, err := h.rooms.CreateRoom(c.Request.Context(), session.Token(c), in); err != nil {
		h.logger.Warn("failed to create room", zap.String("name", in.Name), zap.Error(err))
		h.showMessage(c, backend.MessageOr(err, "Failed to add room"), banner.Error)
	} else {
		h.showMessage(c, "Room added successfully!", banner.Success)
	}
	c.Redirect(http.StatusSeeOther, roomsPath)
}

// ConfirmDeleteRoom asks before a room is deleted.
func (h *Handler) ConfirmDeleteRoom(c *gin.Context) {
	if !session.Capabilities(c).CanDelete {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}
	id, err := parse.ID("room id", c.Param("id"))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	h.render(c, http.StatusOK, "confirm.html", page{
		Title: "Delete room",
		Confirm: confirmState{
			Prompt: "Are you sure you want to delete this room?",
			Action: fmt.Sprintf("%s/%d/delete", roomsPath, id),
			Back:   roomsPath,
		},
	})
}

// DeleteRoom deletes a room once the confirmation form was accepted.
func (h *Handler) DeleteRoom(c *gin.Context) {
	if !session.Capabilities(c).CanDelete {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}
	id, err := parse.ID("room id", c.Param("id"))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	if !confirmed(c) {
		c.Redirect(http.StatusSeeOther, roomsPath)
		return
	}

	if err := h.rooms.DeleteRoom(c.Request.Context(), session.Token(c), id); err != nil {
		h.logger.Warn("failed to delete room", zap.Int64("room_id", id), zap.Error(err))
		h.showMessage(c, backend.MessageOr(err, "Failed to delete room"), banner.Error)
	} else {
		h.showMessage(c, "Room deleted successfully!", banner.Success)
	}
	c.Redirect(http.StatusSeeOther, roomsPath)
}

func confirmed(c *gin.Context) bool {
	return c.PostForm("confirm") == "yes"
}

// validationMessage returns the form error text, or fallback for other errors.
func validationMessage(err error, fallback string) string {
	var verr *parse.ValidationError
	if errors.As(err, &verr) {
		return fallback + ": " + verr.Error()
	}
	return fallback
}
