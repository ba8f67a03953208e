package shipment_test

import (
	"testing"
	"time"

	"courier/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress(t *testing.T, street string) shipment.Address {
	t.Helper()
	addr, err := shipment.NewAddress(street, "Toronto", "M5V 2T6")
	require.NoError(t, err)
	return addr
}

func validProvince(t *testing.T) shipment.Province {
	t.Helper()
	p, err := shipment.NewProvince("ON")
	require.NoError(t, err)
	return p
}

func newPendingShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		10, "parcel",
		validAddress(t, "100 King St W"),
		validAddress(t, "200 Bay St"),
		validProvince(t),
		"office supplies",
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return s
}

func TestNewShipment(t *testing.T) {
	t.Run("should create pending shipment with tracking number", func(t *testing.T) {
		now := time.Now().UTC()
		s, err := shipment.NewShipment(
			10, "parcel",
			validAddress(t, "100 King St W"),
			validAddress(t, "200 Bay St"),
			validProvince(t),
			"office supplies",
			now,
		)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, shipment.StatusPending, s.Status())
		assert.Equal(t, int64(10), s.ShipperID())
		assert.Regexp(t, `^MML-[0-9A-F]{8}$`, s.TrackingNumber())
		assert.Nil(t, s.DriverID())
		assert.Nil(t, s.QuoteAmount())
		assert.Nil(t, s.InvoiceURL())
		assert.Equal(t, now, s.CreatedAt())
	})

	t.Run("should generate distinct tracking numbers", func(t *testing.T) {
		first := newPendingShipment(t)
		second := newPendingShipment(t)

		assert.NotEqual(t, first.TrackingNumber(), second.TrackingNumber())
	})

	t.Run("should fail without shipper", func(t *testing.T) {
		_, err := shipment.NewShipment(
			0, "parcel",
			validAddress(t, "100 King St W"),
			validAddress(t, "200 Bay St"),
			validProvince(t),
			"",
			time.Now().UTC(),
		)

		require.Error(t, err)
	})

	t.Run("should fail with zero addresses", func(t *testing.T) {
		_, err := shipment.NewShipment(
			10, "parcel",
			shipment.Address{},
			validAddress(t, "200 Bay St"),
			validProvince(t),
			"",
			time.Now().UTC(),
		)

		require.Error(t, err)
	})

	t.Run("zero value should fail Validate", func(t *testing.T) {
		var s shipment.Shipment
		require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
	})
}

func TestShipment_AttachID(t *testing.T) {
	s := newPendingShipment(t)

	require.NoError(t, s.AttachID(42))
	assert.Equal(t, int64(42), s.ID())

	require.Error(t, s.AttachID(43), "re-attaching an id must fail")
	assert.Equal(t, int64(42), s.ID())
}

func TestShipment_Lifecycle(t *testing.T) {
	now := time.Now().UTC()

	t.Run("open-job pool path", func(t *testing.T) {
		s := newPendingShipment(t)

		require.NoError(t, s.Quote(120, now))
		require.NoError(t, s.Approve(now))
		assert.True(t, s.IsOpenJob())

		require.NoError(t, s.AssignDriver(20, nil, now))
		assert.False(t, s.IsOpenJob())
		assert.True(t, s.IsOwnedByDriver(20))

		require.NoError(t, s.MarkPickedUp(now))
		require.NotNil(t, s.PickedUpAt())

		require.NoError(t, s.MarkInTransit(now))
		require.NoError(t, s.MarkDelivered(now))
		require.NotNil(t, s.DeliveredAt())
		assert.Equal(t, shipment.StatusDelivered, s.Status())
	})

	t.Run("compound approve-and-assign path skips the pool", func(t *testing.T) {
		s := newPendingShipment(t)
		vehicleID := int64(7)

		require.NoError(t, s.Quote(120, now))
		require.NoError(t, s.AssignDriver(20, &vehicleID, now))

		assert.Equal(t, shipment.StatusAssigned, s.Status())
		require.NotNil(t, s.VehicleID())
		assert.Equal(t, vehicleID, *s.VehicleID())
	})

	t.Run("should reject skipping states", func(t *testing.T) {
		s := newPendingShipment(t)

		require.ErrorIs(t, s.MarkPickedUp(now), shipment.ErrInvalidTransition)
		require.ErrorIs(t, s.Approve(now), shipment.ErrInvalidTransition)
		require.ErrorIs(t, s.AssignDriver(20, nil, now), shipment.ErrInvalidTransition)
	})

	t.Run("quote amount must be positive and bounded", func(t *testing.T) {
		s := newPendingShipment(t)

		require.Error(t, s.Quote(0, now))
		require.Error(t, s.Quote(-5, now))
		require.Error(t, s.Quote(1_000_001, now))
		require.NoError(t, s.Quote(999_999.99, now))
	})
}

func TestShipment_Cancel(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should release driver and vehicle", func(t *testing.T) {
		s := newPendingShipment(t)
		vehicleID := int64(7)
		require.NoError(t, s.Quote(120, now))
		require.NoError(t, s.AssignDriver(20, &vehicleID, now))

		require.NoError(t, s.Cancel(now))

		assert.Equal(t, shipment.StatusCancelled, s.Status())
		assert.Nil(t, s.DriverID())
		assert.Nil(t, s.VehicleID())
	})

	t.Run("should reject cancelling terminal shipments", func(t *testing.T) {
		s := newPendingShipment(t)
		require.NoError(t, s.Cancel(now))

		require.ErrorIs(t, s.Cancel(now), shipment.ErrInvalidTransition)
	})
}

func TestShipment_TransitionTo(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should route delivery-path targets to the mutators", func(t *testing.T) {
		s := newPendingShipment(t)
		require.NoError(t, s.Quote(120, now))
		require.NoError(t, s.AssignDriver(20, nil, now))

		require.NoError(t, s.TransitionTo(shipment.StatusPickedUp, now))
		require.NotNil(t, s.PickedUpAt())
	})

	t.Run("should reject data-carrying targets", func(t *testing.T) {
		s := newPendingShipment(t)

		require.ErrorIs(t, s.TransitionTo(shipment.StatusQuoted, now), shipment.ErrInvalidTransition)
		require.ErrorIs(t, s.TransitionTo(shipment.StatusAssigned, now), shipment.ErrInvalidTransition)
	})
}

func TestShipment_UpdatePackageDetails(t *testing.T) {
	now := time.Now().UTC()
	s := newPendingShipment(t)

	pkg, err := shipment.NewPackageDetails(4.5, 30, 20, 15, shipment.UnitCentimeters)
	require.NoError(t, err)

	assert.True(t, s.UpdatePackageDetails(pkg, s.Description(), now))
	assert.False(t, s.UpdatePackageDetails(pkg, s.Description(), now), "identical revision must report no change")
	assert.True(t, s.UpdatePackageDetails(pkg, "heavier than declared", now), "description change alone counts")
}

func TestShipment_Invoice(t *testing.T) {
	now := time.Now().UTC()

	invoiced := func(t *testing.T) *shipment.Shipment {
		s := newPendingShipment(t)
		require.NoError(t, s.Quote(120, now))
		require.NoError(t, s.AssignDriver(20, nil, now))
		require.NoError(t, s.MarkPickedUp(now))
		require.NoError(t, s.AttachInvoice("/invoices/invoice-1.pdf", 15.60, 135.60, now))
		return s
	}

	t.Run("should attach invoice exactly once", func(t *testing.T) {
		s := invoiced(t)

		require.NotNil(t, s.InvoiceURL())
		assert.Equal(t, "/invoices/invoice-1.pdf", *s.InvoiceURL())
		require.NotNil(t, s.TaxAmount())
		assert.InDelta(t, 15.60, *s.TaxAmount(), 0.001)

		err := s.AttachInvoice("/invoices/other.pdf", 1, 2, now)
		require.ErrorIs(t, err, shipment.ErrInvoiceAlreadyGenerated)
	})

	t.Run("should settle unpaid invoice once", func(t *testing.T) {
		s := invoiced(t)

		require.NoError(t, s.MarkInvoicePaid(now))
		assert.Equal(t, shipment.PaymentPaid, s.PaymentStatus())

		require.ErrorIs(t, s.MarkInvoicePaid(now), shipment.ErrInvoiceAlreadyPaid)
	})

	t.Run("should reject settlement without invoice", func(t *testing.T) {
		s := newPendingShipment(t)
		require.Error(t, s.MarkInvoicePaid(now))
	})
}

func TestRestoreShipment_DriverInvariant(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should reject assigned row without driver", func(t *testing.T) {
		_, err := shipment.RestoreShipment(
			1, "MML-DEADBEEF", 10, nil, nil,
			"parcel", "",
			validAddress(t, "100 King St W"),
			validAddress(t, "200 Bay St"),
			validProvince(t),
			shipment.PackageDetails{},
			shipment.StatusAssigned,
			nil, nil, nil,
			shipment.PaymentUnpaid,
			nil,
			now, now, nil, nil,
		)

		require.Error(t, err)
	})

	t.Run("should restore a valid row", func(t *testing.T) {
		driverID := int64(20)
		amount := 120.0
		s, err := shipment.RestoreShipment(
			1, "MML-DEADBEEF", 10, &driverID, nil,
			"parcel", "",
			validAddress(t, "100 King St W"),
			validAddress(t, "200 Bay St"),
			validProvince(t),
			shipment.PackageDetails{},
			shipment.StatusAssigned,
			&amount, nil, nil,
			shipment.PaymentUnpaid,
			nil,
			now, now, nil, nil,
		)

		require.NoError(t, err)
		assert.Equal(t, shipment.StatusAssigned, s.Status())
		assert.True(t, s.IsOwnedByDriver(driverID))
	})
}
