// Package http exposes the courier platform over a JSON API. It coordinates
// between HTTP handlers and the application's commands and queries; every
// route except the health check requires an authenticated actor.
package http

import (
	"net/http"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server wires HTTP routes to the application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler       commands.CreateShipmentCommandHandler
	updateShipmentHandler       commands.UpdateShipmentCommandHandler
	quoteShipmentHandler        commands.QuoteShipmentCommandHandler
	approveShipmentHandler      commands.ApproveShipmentCommandHandler
	cancelShipmentHandler       commands.CancelShipmentCommandHandler
	acceptJobHandler            commands.AcceptJobCommandHandler
	updateJobStatusHandler      commands.UpdateJobStatusCommandHandler
	generateInvoiceHandler      commands.GenerateInvoiceCommandHandler
	markInvoicePaidHandler      commands.MarkInvoicePaidCommandHandler
	markNotificationReadHandler commands.MarkNotificationReadCommandHandler

	// Query handlers
	listShipmentsHandler     queries.ListShipmentsQueryHandler
	getShipmentHandler       queries.GetShipmentQueryHandler
	listNotificationsHandler queries.ListNotificationsQueryHandler
}

// NewServer creates the HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateShipmentHandler commands.UpdateShipmentCommandHandler,
	quoteShipmentHandler commands.QuoteShipmentCommandHandler,
	approveShipmentHandler commands.ApproveShipmentCommandHandler,
	cancelShipmentHandler commands.CancelShipmentCommandHandler,
	acceptJobHandler commands.AcceptJobCommandHandler,
	updateJobStatusHandler commands.UpdateJobStatusCommandHandler,
	generateInvoiceHandler commands.GenerateInvoiceCommandHandler,
	markInvoicePaidHandler commands.MarkInvoicePaidCommandHandler,
	markNotificationReadHandler commands.MarkNotificationReadCommandHandler,
	listShipmentsHandler queries.ListShipmentsQueryHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	listNotificationsHandler queries.ListNotificationsQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:       createShipmentHandler,
		updateShipmentHandler:       updateShipmentHandler,
		quoteShipmentHandler:        quoteShipmentHandler,
		approveShipmentHandler:      approveShipmentHandler,
		cancelShipmentHandler:       cancelShipmentHandler,
		acceptJobHandler:            acceptJobHandler,
		updateJobStatusHandler:      updateJobStatusHandler,
		generateInvoiceHandler:      generateInvoiceHandler,
		markInvoicePaidHandler:      markInvoicePaidHandler,
		markNotificationReadHandler: markNotificationReadHandler,
		listShipmentsHandler:        listShipmentsHandler,
		getShipmentHandler:          getShipmentHandler,
		listNotificationsHandler:    listNotificationsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance. Every route
// under /api/v1 goes through the auth middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1", auth)

	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments", s.ListShipments)
	api.GET("/shipments/:id", s.GetShipment)
	api.PUT("/shipments/:id", s.UpdateShipment)

	api.POST("/shipments/:id/quote", s.QuoteShipment)
	api.POST("/shipments/:id/approve", s.ApproveShipment)
	api.POST("/shipments/:id/cancel", s.CancelShipment)

	api.POST("/shipments/:id/accept", s.AcceptJob)
	api.POST("/shipments/:id/status", s.UpdateJobStatus)

	api.GET("/shipments/:id/invoice", s.GetInvoice)
	api.POST("/shipments/:id/invoice/pay", s.MarkInvoicePaid)

	api.GET("/notifications", s.ListNotifications)
	api.POST("/notifications/:id/read", s.MarkNotificationRead)
}
