package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
)

// CalendarHandler serves the calendar procedures.
type CalendarHandler struct {
	repo ports.CalendarRepository
}

func NewCalendarHandler(repo ports.CalendarRepository) *CalendarHandler {
	return &CalendarHandler{repo: repo}
}

// List handles calendar.list. Events are ordered by start date, newest first.
//
// @Summary      List calendar events
// @Tags         calendar
// @Produce      json
// @Success      200  {array}   calendarEventResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /api/rpc/calendar.list [get]
func (h *CalendarHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	events := h.repo.ListCalendarEvents(c.Request().Context(), user.ID)
	return c.JSON(http.StatusOK, mapAll(events, toCalendarEventResponse))
}

// Create handles calendar.create.
//
// @Summary      Create a calendar event
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Param        body  body      createCalendarEventRequest  true  "Event"
// @Success      200   {object}  calendarEventResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      503   {object}  ErrorResponse
// @Router       /api/rpc/calendar.create [post]
func (h *CalendarHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req createCalendarEventRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	event, err := h.repo.CreateCalendarEvent(c.Request().Context(), user.ID, toCalendarEventInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCalendarEventResponse(*event))
}

// Update handles calendar.update.
//
// @Summary      Update a calendar event
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Param        body  body      updateCalendarEventRequest  true  "Event"
// @Success      200   {object}  mutationResponse
// @Failure      400   {object}  ErrorResponse
// @Router       /api/rpc/calendar.update [post]
func (h *CalendarHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req updateCalendarEventRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	n, err := h.repo.UpdateCalendarEvent(c.Request().Context(), req.ID, user.ID, toCalendarEventPatch(req))
	return mutated(c, n, err)
}

// Delete handles calendar.delete.
//
// @Summary      Delete a calendar event
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Param        body  body      idRequest  true  "Event id"
// @Success      200   {object}  mutationResponse
// @Router       /api/rpc/calendar.delete [post]
func (h *CalendarHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req idRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	n, err := h.repo.DeleteCalendarEvent(c.Request().Context(), req.ID, user.ID)
	return mutated(c, n, err)
}
