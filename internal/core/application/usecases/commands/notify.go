package commands

import (
	"context"
	"time"

	"courier/internal/core/domain/model/notification"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/ports"

	"go.uber.org/zap"
)

// deliver persists a freshly built notification on the given repository.
// Failures are logged and swallowed: the state change the notification
// announces is already committed and must not be undone or re-reported as
// failed because of a notification problem.
func deliver(
	ctx context.Context,
	repo ports.NotificationRepository,
	n *notification.Notification,
	buildErr error,
	logger *zap.Logger,
) {
	if buildErr != nil {
		logger.Warn("notification not composed", zap.Error(buildErr))
		return
	}
	if err := repo.Add(ctx, n); err != nil {
		logger.Warn("notification not delivered",
			zap.Int64("shipment_id", n.ShipmentID()),
			zap.String("type", string(n.NotificationType())),
			zap.Error(err),
		)
	}
}

// notifyStatus writes the status notification for a committed transition.
func notifyStatus(
	ctx context.Context,
	repo ports.NotificationRepository,
	s *shipment.Shipment,
	target shipment.Status,
	logger *zap.Logger,
) {
	n, err := notification.NewStatusNotification(s.ShipperID(), s.ID(), target, time.Now().UTC())
	deliver(ctx, repo, n, err, logger)
}

// notifyQuote writes the quote notification after the quote is committed.
func notifyQuote(
	ctx context.Context,
	repo ports.NotificationRepository,
	s *shipment.Shipment,
	amount float64,
	logger *zap.Logger,
) {
	n, err := notification.NewQuoteNotification(s.ShipperID(), s.ID(), amount, time.Now().UTC())
	deliver(ctx, repo, n, err, logger)
}

// notifyPackageInfo writes the package details notification after a driver
// revision is committed.
func notifyPackageInfo(
	ctx context.Context,
	repo ports.NotificationRepository,
	s *shipment.Shipment,
	logger *zap.Logger,
) {
	n, err := notification.NewPackageInfoNotification(s.ShipperID(), s.ID(), time.Now().UTC())
	deliver(ctx, repo, n, err, logger)
}
