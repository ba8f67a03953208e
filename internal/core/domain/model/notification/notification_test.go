package notification_test

import (
	"testing"
	"time"

	"courier/internal/core/domain/model/notification"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatusNotification(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		target  shipment.Status
		title   string
		message string
	}{
		{
			shipment.StatusAssigned,
			"Driver Assigned",
			"A driver has been assigned to your shipment and will pick it up soon.",
		},
		{
			shipment.StatusPickedUp,
			"Shipment Picked Up",
			"Your shipment has been picked up and is being prepared for delivery.",
		},
		{
			shipment.StatusInTransit,
			"Out For Delivery",
			"Your shipment is out for delivery and on its way to the destination.",
		},
		{
			shipment.StatusDelivered,
			"Shipment Delivered",
			"Your shipment has been delivered. Thank you for shipping with us.",
		},
		{
			shipment.StatusCancelled,
			"Shipment Cancelled",
			"Your shipment has been cancelled. Contact support if this is unexpected.",
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.target), func(t *testing.T) {
			n, err := notification.NewStatusNotification(10, 5, tt.target, now)

			require.NoError(t, err)
			assert.Equal(t, tt.title, n.Title())
			assert.Equal(t, tt.message, n.Message())
			assert.Equal(t, notification.TypeStatusUpdate, n.NotificationType())
			assert.Equal(t, int64(10), n.ShipperID())
			assert.Equal(t, int64(5), n.ShipmentID())
			assert.Equal(t, now, n.CreatedAt())
			assert.False(t, n.IsRead())
		})
	}

	t.Run("unlisted status falls back to generic wording", func(t *testing.T) {
		n, err := notification.NewStatusNotification(10, 5, shipment.StatusQuoted, now)

		require.NoError(t, err)
		assert.Equal(t, "Shipment Updated", n.Title())
		assert.Equal(t, "Your shipment status changed to quoted.", n.Message())
	})
}

func TestNewQuoteNotification(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should format the amount to cents", func(t *testing.T) {
		n, err := notification.NewQuoteNotification(10, 5, 149.5, now)

		require.NoError(t, err)
		assert.Equal(t, "Shipment Quoted", n.Title())
		assert.Equal(t,
			"Your shipment has been quoted at $149.50. It will be scheduled once approved.",
			n.Message())
		assert.Equal(t, notification.TypeQuote, n.NotificationType())
	})

	t.Run("should require a shipper id", func(t *testing.T) {
		_, err := notification.NewQuoteNotification(0, 5, 149.5, now)

		var required *errs.ValueIsRequiredError
		require.ErrorAs(t, err, &required)
	})

	t.Run("should require a shipment id", func(t *testing.T) {
		_, err := notification.NewQuoteNotification(10, 0, 149.5, now)

		var required *errs.ValueIsRequiredError
		require.ErrorAs(t, err, &required)
	})
}

func TestNewPackageInfoNotification(t *testing.T) {
	n, err := notification.NewPackageInfoNotification(10, 5, time.Now().UTC())

	require.NoError(t, err)
	assert.Equal(t, "Package Details Updated", n.Title())
	assert.Equal(t, notification.TypePackageInfo, n.NotificationType())
}

func TestTypeValidate(t *testing.T) {
	for _, valid := range []notification.Type{
		notification.TypeQuote,
		notification.TypeAssignment,
		notification.TypeStatusUpdate,
		notification.TypePackageInfo,
	} {
		assert.NoError(t, valid.Validate(), string(valid))
	}

	for _, invalid := range []notification.Type{"", "email", "QUOTE"} {
		var invalidErr *errs.ValueIsInvalidError
		assert.ErrorAs(t, invalid.Validate(), &invalidErr, string(invalid))
	}
}

func TestNotificationAttachID(t *testing.T) {
	n, err := notification.NewPackageInfoNotification(10, 5, time.Now().UTC())
	require.NoError(t, err)

	require.NoError(t, n.AttachID(42))
	assert.Equal(t, int64(42), n.ID())

	require.Error(t, n.AttachID(43))
	assert.Equal(t, int64(42), n.ID())
}

func TestNotificationMarkRead(t *testing.T) {
	n, err := notification.RestoreNotification(
		1, 10, 5,
		"Shipment Quoted", "Your shipment has been quoted at $120.00. It will be scheduled once approved.",
		notification.TypeQuote,
		time.Now().UTC(),
		false,
	)
	require.NoError(t, err)
	require.False(t, n.IsRead())

	n.MarkRead()

	assert.True(t, n.IsRead())
}

func TestNotificationValidate(t *testing.T) {
	t.Run("constructed notification passes", func(t *testing.T) {
		n, err := notification.NewPackageInfoNotification(10, 5, time.Now().UTC())
		require.NoError(t, err)
		assert.NoError(t, n.Validate())
	})

	t.Run("zero value fails", func(t *testing.T) {
		var n notification.Notification
		assert.ErrorIs(t, n.Validate(), notification.ErrNotificationIsNotConstructed)
	})
}
