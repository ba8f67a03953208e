package http

import (
	"net/http"
	"strconv"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(c echo.Context) error {
	act, ok := actorFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req createShipmentRequest
	if err := c.Bind(&req); err != nil {
		return respondValidation(c, err)
	}

	pickup, err := shipment.NewAddress(req.Pickup.Street, req.Pickup.City, req.Pickup.PostalCode)
	if err != nil {
		return respondValidation(c, err)
	}
	delivery, err := shipment.NewAddress(req.Delivery.Street, req.Delivery.City, req.Delivery.PostalCode)
	if err != nil {
		return respondValidation(c, err)
	}
	province, err := shipment.NewProvince(req.Province)
	if err != nil {
		return respondValidation(c, err)
	}

	var pkg shipment.PackageDetails
	if req.Package != nil {
		if pkg, err = req.Package.toDomain(); err != nil {
			return respondValidation(c, err)
		}
	}

	cmd, err := commands.NewCreateShipmentCommand(
		act, req.ShipmentType, req.Description, pickup, delivery, province, pkg,
	)
	if err != nil {
		return respondValidation(c, err)
	}

	created, err := s.createShipmentHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, shipmentCreatedResponse{
		ID:             created.ID(),
		TrackingNumber: created.TrackingNumber(),
		Status:         created.Status().String(),
		CreatedAt:      created.CreatedAt().Format("2006-01-02T15:04:05Z07:00"),
	})
}

// ListShipments handles GET /api/v1/shipments.
func (s *Server) ListShipments(c echo.Context) error {
	act, ok := actorFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var statusFilter *shipment.Status
	if raw := c.QueryParam("status"); raw != "" {
		status := shipment.Status(raw)
		statusFilter = &status
	}

	query, err := queries.NewListShipmentsQuery(act, statusFilter)
	if err != nil {
		return respondValidation(c, err)
	}

	shipments, err := s.listShipmentsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	response := make([]shipmentSummaryResponse, len(shipments))
	for i, summary := range shipments {
		response[i] = toSummaryResponse(summary)
	}

	return c.JSON(http.StatusOK, response)
}

// GetShipment handles GET /api/v1/shipments/:id.
func (s *Server) GetShipment(c echo.Context) error {
	act, ok := actorFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := pathID(c)
	if err != nil {
		return respondValidation(c, err)
	}

	query, err := queries.NewGetShipmentQuery(act, id)
	if err != nil {
		return respondValidation(c, err)
	}

	details, err := s.getShipmentHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toDetailsResponse(details))
}

// UpdateShipment handles PUT /api/v1/shipments/:id.
func (s *Server) UpdateShipment(c echo.Context) error {
	act, ok := actorFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := pathID(c)
	if err != nil {
		return respondValidation(c, err)
	}

	var req updateShipmentRequest
	if err = c.Bind(&req); err != nil {
		return respondValidation(c, err)
	}

	pickup, err := shipment.NewAddress(req.Pickup.Street, req.Pickup.City, req.Pickup.PostalCode)
	if err != nil {
		return respondValidation(c, err)
	}
	delivery, err := shipment.NewAddress(req.Delivery.Street, req.Delivery.City, req.Delivery.PostalCode)
	if err != nil {
		return respondValidation(c, err)
	}

	var pkg shipment.PackageDetails
	if req.Package != nil {
		if pkg, err = req.Package.toDomain(); err != nil {
			return respondValidation(c, err)
		}
	}

	cmd, err := commands.NewUpdateShipmentCommand(
		act, id, req.ShipmentType, req.Description, pickup, delivery, pkg,
	)
	if err != nil {
		return respondValidation(c, err)
	}

	if err = s.updateShipmentHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// QuoteShipment handles POST /api/v1/shipments/:id/quote.
func (s *Server) QuoteShipment(c echo.Context) error {
	act, ok := actorFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := pathID(c)
	if err != nil {
		return respondValidation(c, err)
	}

	var req quoteShipmentRequest
	if err = c.Bind(&req); err != nil {
		return respondValidation(c, err)
	}

	cmd, err := commands.NewQuoteShipmentCommand(act, id, req.Amount)
	if err != nil {
		return respondValidation(c, err)
	}

	if err = s.quoteShipmentHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ApproveShipment handles POST /api/v1/shipments/:id/approve.
func (s *Server) ApproveShipment(c echo.Context) error {
	act, ok := actorFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := pathID(c)
	if err != nil {
		return respondValidation(c, err)
	}

	var req approveShipmentRequest
	if err = c.Bind(&req); err != nil {
		return respondValidation(c, err)
	}

	cmd, err := commands.NewApproveShipmentCommand(act, id, req.DriverID, req.VehicleID)
	if err != nil {
		return respondValidation(c, err)
	}

	if err = s.approveShipmentHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CancelShipment handles POST /api/v1/shipments/:id/cancel.
func (s *Server) CancelShipment(c echo.Context) error {
	act, ok := actorFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := pathID(c)
	if err != nil {
		return respondValidation(c, err)
	}

	cmd, err := commands.NewCancelShipmentCommand(act, id)
	if err != nil {
		return respondValidation(c, err)
	}

	if err = s.cancelShipmentHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AcceptJob handles POST /api/v1/shipments/:id/accept.
func (s *Server) AcceptJob(c echo.Context) error {
	act, ok := actorFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := pathID(c)
	if err != nil {
		return respondValidation(c, err)
	}

	cmd, err := commands.NewAcceptJobCommand(act, id)
	if err != nil {
		return respondValidation(c, err)
	}

	if err = s.acceptJobHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateJobStatus handles POST /api/v1/shipments/:id/status.
func (s *Server) UpdateJobStatus(c echo.Context) error {
	act, ok := actorFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := pathID(c)
	if err != nil {
		return respondValidation(c, err)
	}

	var req updateJobStatusRequest
	if err = c.Bind(&req); err != nil {
		return respondValidation(c, err)
	}

	var pkg *shipment.PackageDetails
	if req.Package != nil {
		details, pkgErr := req.Package.toDomain()
		if pkgErr != nil {
			return respondValidation(c, pkgErr)
		}
		pkg = &details
	}

	cmd, err := commands.NewUpdateJobStatusCommand(
		act, id, shipment.Status(req.Status), pkg, req.Description,
	)
	if err != nil {
		return respondValidation(c, err)
	}

	if err = s.updateJobStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetInvoice handles GET /api/v1/shipments/:id/invoice.
// The invoice is generated on first access after pickup; later requests
// return the same reference.
func (s *Server) GetInvoice(c echo.Context) error {
	act, ok := actorFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := pathID(c)
	if err != nil {
		return respondValidation(c, err)
	}

	cmd, err := commands.NewGenerateInvoiceCommand(act, id)
	if err != nil {
		return respondValidation(c, err)
	}

	ref, err := s.generateInvoiceHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, invoiceResponse{
		ShipmentID: id,
		InvoiceURL: ref,
	})
}

// MarkInvoicePaid handles POST /api/v1/shipments/:id/invoice/pay.
func (s *Server) MarkInvoicePaid(c echo.Context) error {
	act, ok := actorFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := pathID(c)
	if err != nil {
		return respondValidation(c, err)
	}

	cmd, err := commands.NewMarkInvoicePaidCommand(act, id)
	if err != nil {
		return respondValidation(c, err)
	}

	if err = s.markInvoicePaidHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
