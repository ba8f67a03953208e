package queries_test

import (
	"context"
	"testing"
	"time"

	"courier/internal/adapters/out/postgres/notificationrepo"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/actor"
	"courier/internal/core/domain/model/notification"
	"courier/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ListNotificationsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.ListNotificationsQueryHandler
}

func (suite *ListNotificationsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&notificationrepo.NotificationDTO{}))

	suite.handler = queries.NewListNotificationsQueryHandler(db)
}

func (suite *ListNotificationsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ListNotificationsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE notifications").Error)
}

// seedNotification persists a notification for the shipper and optionally
// marks it read.
func (suite *ListNotificationsQueryHandlerTestSuite) seedNotification(
	shipperID, shipmentID int64, read bool,
) *notification.Notification {
	n, err := notification.NewStatusNotification(shipperID, shipmentID, shipment.StatusDelivered, time.Now().UTC())
	suite.Require().NoError(err)
	if read {
		n.MarkRead()
	}

	repo := notificationrepo.NewGormNotificationRepository(suite.db)
	suite.Require().NoError(repo.Add(context.Background(), n))
	return n
}

func (suite *ListNotificationsQueryHandlerTestSuite) TestHandle_Shipper_SeesOwnNotifications() {
	own := suite.seedNotification(10, 5, false)
	suite.seedNotification(11, 6, false)

	query, err := queries.NewListNotificationsQuery(actor.Actor{ID: 10, Role: actor.RoleShipper}, false)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(own.ID(), result[0].ID)
	suite.Equal("Shipment Delivered", result[0].Title)
	suite.Equal(int64(5), result[0].ShipmentID)
	suite.False(result[0].IsRead)
}

func (suite *ListNotificationsQueryHandlerTestSuite) TestHandle_UnreadOnly_FiltersReadOnes() {
	unread := suite.seedNotification(10, 5, false)
	suite.seedNotification(10, 5, true)

	query, err := queries.NewListNotificationsQuery(actor.Actor{ID: 10, Role: actor.RoleShipper}, true)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(unread.ID(), result[0].ID)
}

func (suite *ListNotificationsQueryHandlerTestSuite) TestHandle_Admin_SeesAllNotifications() {
	suite.seedNotification(10, 5, false)
	suite.seedNotification(11, 6, true)

	query, err := queries.NewListNotificationsQuery(actor.Actor{ID: 1, Role: actor.RoleAdmin}, false)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 2)
}

func (suite *ListNotificationsQueryHandlerTestSuite) TestHandle_Driver_SeesNothing() {
	suite.seedNotification(10, 5, false)

	query, err := queries.NewListNotificationsQuery(actor.Actor{ID: 20, Role: actor.RoleDriver}, false)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *ListNotificationsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.ListNotificationsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewListNotificationsQuery constructor")
}

func TestListNotificationsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListNotificationsQueryHandlerTestSuite))
}
