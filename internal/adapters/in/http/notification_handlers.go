package http

import (
	"net/http"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ListNotifications handles GET /api/v1/notifications. The unread_only
// query parameter narrows the list to unread entries.
func (s *Server) ListNotifications(c echo.Context) error {
	act, ok := actorFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	unreadOnly := c.QueryParam("unread_only") == "true"

	query, err := queries.NewListNotificationsQuery(act, unreadOnly)
	if err != nil {
		return respondValidation(c, err)
	}

	notifications, err := s.listNotificationsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	response := make([]notificationResponse, len(notifications))
	for i, row := range notifications {
		response[i] = toNotificationResponse(row)
	}

	return c.JSON(http.StatusOK, response)
}

// MarkNotificationRead handles POST /api/v1/notifications/:id/read.
func (s *Server) MarkNotificationRead(c echo.Context) error {
	act, ok := actorFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := pathID(c)
	if err != nil {
		return respondValidation(c, err)
	}

	cmd, err := commands.NewMarkNotificationReadCommand(act, id)
	if err != nil {
		return respondValidation(c, err)
	}

	if err = s.markNotificationReadHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
