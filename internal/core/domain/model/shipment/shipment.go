package shipment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"courier/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through NewShipment or RestoreShipment. This ensures all
	// shipments are properly validated.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrInvoiceAlreadyGenerated is returned when attaching invoice fields to
	// a shipment that already carries an invoice reference. Invoices are
	// generated exactly once per shipment.
	ErrInvoiceAlreadyGenerated = errors.New("invoice has already been generated for this shipment")

	// ErrInvoiceAlreadyPaid is returned when marking an invoice paid twice.
	ErrInvoiceAlreadyPaid = errors.New("invoice has already been paid")
)

// maxQuoteAmount bounds admin quotes to catch fat-finger input.
const maxQuoteAmount = 1_000_000.00

// trackingPrefix prefixes every generated tracking number.
const trackingPrefix = "MML"

// PaymentStatus tracks whether the shipment's invoice has been settled.
type PaymentStatus string

const (
	// PaymentUnpaid is the initial payment state once an invoice exists.
	PaymentUnpaid PaymentStatus = "unpaid"

	// PaymentPaid means an admin marked the invoice as settled.
	PaymentPaid PaymentStatus = "paid"
)

// Validate checks the payment status value.
func (p PaymentStatus) Validate() error {
	switch p {
	case PaymentUnpaid, PaymentPaid:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status",
			fmt.Errorf("%q is not a valid payment status", string(p)),
		)
	}
}

// Shipment is the aggregate root of the courier domain. It owns the lifecycle
// status, the commercial fields set during quoting and invoicing, and the
// assignment of a driver and vehicle.
//
// Shipment maintains these invariants:
//   - a driver is attached if and only if status is assigned, picked_up,
//     in_transit or delivered
//   - a quote amount is present in every status except pending (and
//     cancellations that happened before quoting)
//   - invoice fields are written exactly once; invoiceURL presence is the
//     idempotency flag
//   - status changes follow the closed transition table in Status
//
// All mutators stamp updatedAt. Instances must be created via NewShipment or
// RestoreShipment; zero values fail Validate.
type Shipment struct {
	id             int64
	trackingNumber string

	shipperID int64
	driverID  *int64
	vehicleID *int64

	shipmentType string
	description  string
	pickup       Address
	delivery     Address
	province     Province
	pkg          PackageDetails

	status        Status
	quoteAmount   *float64
	taxAmount     *float64
	totalAmount   *float64
	paymentStatus PaymentStatus
	invoiceURL    *string

	createdAt   time.Time
	updatedAt   time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time

	isConstructed bool
}

// NewShipment creates a pending shipment owned by the given shipper.
// The tracking number is generated here and never changes.
//
// The shipper identifier is taken from the authenticated actor by the caller,
// never from client input.
func NewShipment(
	shipperID int64,
	shipmentType string,
	pickup, delivery Address,
	province Province,
	description string,
	now time.Time,
) (*Shipment, error) {
	if shipperID <= 0 {
		return nil, errs.NewValueIsRequiredError("shipper id")
	}
	if err := errors.Join(pickup.Validate(), delivery.Validate(), province.Validate()); err != nil {
		return nil, err
	}

	return &Shipment{
		trackingNumber: newTrackingNumber(),
		shipperID:      shipperID,
		shipmentType:   shipmentType,
		description:    description,
		pickup:         pickup,
		delivery:       delivery,
		province:       province,
		status:         StatusPending,
		paymentStatus:  PaymentUnpaid,
		createdAt:      now,
		updatedAt:      now,
		isConstructed:  true,
	}, nil
}

// RestoreShipment reconstructs a shipment from persisted state, re-checking
// the aggregate invariants so corrupt rows are caught at the boundary.
func RestoreShipment(
	id int64,
	trackingNumber string,
	shipperID int64,
	driverID, vehicleID *int64,
	shipmentType, description string,
	pickup, delivery Address,
	province Province,
	pkg PackageDetails,
	status Status,
	quoteAmount, taxAmount, totalAmount *float64,
	paymentStatus PaymentStatus,
	invoiceURL *string,
	createdAt, updatedAt time.Time,
	pickedUpAt, deliveredAt *time.Time,
) (*Shipment, error) {
	if err := errors.Join(
		status.Validate(),
		paymentStatus.Validate(),
		province.Validate(),
		pickup.Validate(),
		delivery.Validate(),
	); err != nil {
		return nil, err
	}

	s := &Shipment{
		id:             id,
		trackingNumber: trackingNumber,
		shipperID:      shipperID,
		driverID:       driverID,
		vehicleID:      vehicleID,
		shipmentType:   shipmentType,
		description:    description,
		pickup:         pickup,
		delivery:       delivery,
		province:       province,
		pkg:            pkg,
		status:         status,
		quoteAmount:    quoteAmount,
		taxAmount:      taxAmount,
		totalAmount:    totalAmount,
		paymentStatus:  paymentStatus,
		invoiceURL:     invoiceURL,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		pickedUpAt:     pickedUpAt,
		deliveredAt:    deliveredAt,
		isConstructed:  true,
	}

	if err := s.checkDriverInvariant(); err != nil {
		return nil, err
	}
	return s, nil
}

func newTrackingNumber() string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("%s-%s", trackingPrefix, token)
}

// Validate ensures the Shipment was created via a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// AttachID records the identifier assigned by the persistence layer.
// It may only be called once, on a not-yet-persisted aggregate.
func (s *Shipment) AttachID(id int64) error {
	if s.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("shipment id",
			fmt.Errorf("shipment already has id %d", s.id))
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("shipment id")
	}
	s.id = id
	return nil
}

// Quote attaches the admin's quote and moves the shipment to quoted.
func (s *Shipment) Quote(amount float64, now time.Time) error {
	if amount <= 0 || amount > maxQuoteAmount {
		return errs.NewValueIsOutOfRangeError("quote amount", amount, 0.01, maxQuoteAmount)
	}

	next, err := s.status.Transition(StatusQuoted)
	if err != nil {
		return err
	}

	s.status = next
	s.quoteAmount = &amount
	s.touch(now)
	return nil
}

// Approve releases a quoted shipment into the open-job pool without
// preassigning a driver. Drivers claim it through the job coordinator.
func (s *Shipment) Approve(now time.Time) error {
	next, err := s.status.Transition(StatusApproved)
	if err != nil {
		return err
	}

	s.status = next
	s.touch(now)
	return nil
}

// AssignDriver attaches a driver (and optionally a vehicle) and moves the
// shipment to assigned. Valid from quoted (the compound approve-and-assign
// path) and from approved (after a successful claim).
func (s *Shipment) AssignDriver(driverID int64, vehicleID *int64, now time.Time) error {
	if driverID <= 0 {
		return errs.NewValueIsRequiredError("driver id")
	}

	next, err := s.status.Transition(StatusAssigned)
	if err != nil {
		return err
	}

	s.status = next
	s.driverID = &driverID
	s.vehicleID = vehicleID
	s.touch(now)
	return nil
}

// MarkPickedUp records the pickup by the assigned driver. The pickup
// timestamp is set here and never changes.
func (s *Shipment) MarkPickedUp(now time.Time) error {
	next, err := s.status.Transition(StatusPickedUp)
	if err != nil {
		return err
	}

	s.status = next
	pickedUp := now
	s.pickedUpAt = &pickedUp
	s.touch(now)
	return nil
}

// MarkInTransit records that the package left the pickup location.
func (s *Shipment) MarkInTransit(now time.Time) error {
	next, err := s.status.Transition(StatusInTransit)
	if err != nil {
		return err
	}

	s.status = next
	s.touch(now)
	return nil
}

// MarkDelivered records the delivery. The delivery timestamp is set here.
func (s *Shipment) MarkDelivered(now time.Time) error {
	next, err := s.status.Transition(StatusDelivered)
	if err != nil {
		return err
	}

	s.status = next
	delivered := now
	s.deliveredAt = &delivered
	s.touch(now)
	return nil
}

// Cancel moves any non-terminal shipment to cancelled. The driver and vehicle
// are detached so the driver/status invariant holds in every persisted state.
func (s *Shipment) Cancel(now time.Time) error {
	next, err := s.status.Transition(StatusCancelled)
	if err != nil {
		return err
	}

	s.status = next
	s.driverID = nil
	s.vehicleID = nil
	s.touch(now)
	return nil
}

// TransitionTo dispatches to the mutator for the requested status so callers
// can drive the lifecycle from a single entry point.
func (s *Shipment) TransitionTo(target Status, now time.Time) error {
	switch target {
	case StatusQuoted, StatusAssigned:
		// These transitions carry extra data (amount, driver); they must go
		// through Quote and AssignDriver.
		return &InvalidTransitionError{From: s.status, To: target}
	case StatusApproved:
		return s.Approve(now)
	case StatusPickedUp:
		return s.MarkPickedUp(now)
	case StatusInTransit:
		return s.MarkInTransit(now)
	case StatusDelivered:
		return s.MarkDelivered(now)
	case StatusCancelled:
		return s.Cancel(now)
	default:
		return target.Validate()
	}
}

// UpdatePackageDetails revises the physical package description. Returns
// whether anything actually changed so the caller can decide whether a
// package_info notification is due.
func (s *Shipment) UpdatePackageDetails(pkg PackageDetails, description string, now time.Time) bool {
	changed := !s.pkg.IsEqual(pkg) || s.description != description
	if !changed {
		return false
	}

	s.pkg = pkg
	s.description = description
	s.touch(now)
	return true
}

// UpdateRoute revises the pickup and delivery addresses and the shipment
// type. Whether the caller may do so is the authorization gate's decision,
// not the aggregate's.
func (s *Shipment) UpdateRoute(pickup, delivery Address, shipmentType string, now time.Time) error {
	if err := errors.Join(pickup.Validate(), delivery.Validate()); err != nil {
		return err
	}

	s.pickup = pickup
	s.delivery = delivery
	s.shipmentType = shipmentType
	s.touch(now)
	return nil
}

// AttachInvoice records the rendered invoice artifact and the derived
// commercial fields in one step. It fails if an invoice reference already
// exists: invoiceURL presence is the generation idempotency flag.
func (s *Shipment) AttachInvoice(url string, taxAmount, totalAmount float64, now time.Time) error {
	if s.invoiceURL != nil {
		return ErrInvoiceAlreadyGenerated
	}
	if url == "" {
		return errs.NewValueIsRequiredError("invoice url")
	}

	s.invoiceURL = &url
	s.taxAmount = &taxAmount
	s.totalAmount = &totalAmount
	s.paymentStatus = PaymentUnpaid
	s.touch(now)
	return nil
}

// MarkInvoicePaid settles the invoice. Requires a generated invoice and an
// unpaid balance.
func (s *Shipment) MarkInvoicePaid(now time.Time) error {
	if s.invoiceURL == nil {
		return errs.NewValueIsRequiredError("invoice")
	}
	if s.paymentStatus == PaymentPaid {
		return ErrInvoiceAlreadyPaid
	}

	s.paymentStatus = PaymentPaid
	s.touch(now)
	return nil
}

// IsOwnedByDriver reports whether the given driver is assigned to this shipment.
func (s *Shipment) IsOwnedByDriver(driverID int64) bool {
	return s.driverID != nil && *s.driverID == driverID
}

// IsOwnedByShipper reports whether the given shipper created this shipment.
func (s *Shipment) IsOwnedByShipper(shipperID int64) bool {
	return s.shipperID == shipperID
}

// IsOpenJob reports whether the shipment sits in the open-job pool: approved
// by an admin and not yet claimed by any driver.
func (s *Shipment) IsOpenJob() bool {
	return s.status == StatusApproved && s.driverID == nil
}

func (s *Shipment) touch(now time.Time) {
	s.updatedAt = now
}

func (s *Shipment) checkDriverInvariant() error {
	if s.status.RequiresDriver() && s.driverID == nil {
		return errs.NewValueIsInvalidErrorWithCause("driver id",
			fmt.Errorf("status %q requires an assigned driver", s.status))
	}
	if !s.status.RequiresDriver() && s.driverID != nil {
		return errs.NewValueIsInvalidErrorWithCause("driver id",
			fmt.Errorf("status %q must not have an assigned driver", s.status))
	}
	return nil
}

// ID returns the persistence identifier, zero until the shipment is stored.
func (s *Shipment) ID() int64 { return s.id }

// TrackingNumber returns the immutable tracking number.
func (s *Shipment) TrackingNumber() string { return s.trackingNumber }

// ShipperID returns the identifier of the shipper who created the shipment.
func (s *Shipment) ShipperID() int64 { return s.shipperID }

// DriverID returns the assigned driver's identifier, nil while unassigned.
func (s *Shipment) DriverID() *int64 { return s.driverID }

// VehicleID returns the assigned vehicle's identifier, nil while unassigned.
func (s *Shipment) VehicleID() *int64 { return s.vehicleID }

// ShipmentType returns the service level of the shipment.
func (s *Shipment) ShipmentType() string { return s.shipmentType }

// Description returns the free-form package description.
func (s *Shipment) Description() string { return s.description }

// Pickup returns the pickup address.
func (s *Shipment) Pickup() Address { return s.pickup }

// Delivery returns the delivery address.
func (s *Shipment) Delivery() Address { return s.delivery }

// Province returns the tax province of the shipment.
func (s *Shipment) Province() Province { return s.province }

// PackageDetails returns the recorded physical package description.
func (s *Shipment) PackageDetails() PackageDetails { return s.pkg }

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status { return s.status }

// QuoteAmount returns the admin's quote, nil while pending.
func (s *Shipment) QuoteAmount() *float64 { return s.quoteAmount }

// TaxAmount returns the tax computed at invoicing time, nil before.
func (s *Shipment) TaxAmount() *float64 { return s.taxAmount }

// TotalAmount returns quote plus tax, nil before invoicing.
func (s *Shipment) TotalAmount() *float64 { return s.totalAmount }

// PaymentStatus returns the invoice settlement state.
func (s *Shipment) PaymentStatus() PaymentStatus { return s.paymentStatus }

// InvoiceURL returns the invoice artifact reference, nil until generated.
func (s *Shipment) InvoiceURL() *string { return s.invoiceURL }

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }

// UpdatedAt returns the timestamp of the last mutation.
func (s *Shipment) UpdatedAt() time.Time { return s.updatedAt }

// PickedUpAt returns the pickup timestamp, nil before pickup.
func (s *Shipment) PickedUpAt() *time.Time { return s.pickedUpAt }

// DeliveredAt returns the delivery timestamp, nil before delivery.
func (s *Shipment) DeliveredAt() *time.Time { return s.deliveredAt }
