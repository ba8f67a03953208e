package queries_test

import (
	"context"
	"testing"
	"time"

	"courier/internal/adapters/out/postgres/shipmentrepo"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/actor"
	"courier/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker implements the aggregate tracker for test seeding purposes.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ int64, _ any) {}

// seedShipment builds a shipment owned by shipperID and walks it to the
// requested status before persisting it.
func seedShipment(
	s *suite.Suite, db *gorm.DB,
	shipperID int64, driverID *int64, status shipment.Status,
) *shipment.Shipment {
	now := time.Now().UTC()

	pickup, err := shipment.NewAddress("100 King St W", "Toronto", "M5V 2T6")
	s.Require().NoError(err)
	delivery, err := shipment.NewAddress("200 Bay St", "Toronto", "M5J 2J2")
	s.Require().NoError(err)
	province, err := shipment.NewProvince("ON")
	s.Require().NoError(err)

	aggregate, err := shipment.NewShipment(shipperID, "parcel", pickup, delivery, province, "office supplies", now)
	s.Require().NoError(err)

	switch status {
	case shipment.StatusPending:
	case shipment.StatusQuoted:
		s.Require().NoError(aggregate.Quote(120, now))
	case shipment.StatusApproved:
		s.Require().NoError(aggregate.Quote(120, now))
		s.Require().NoError(aggregate.Approve(now))
	case shipment.StatusAssigned:
		s.Require().NoError(aggregate.Quote(120, now))
		s.Require().NoError(aggregate.AssignDriver(*driverID, nil, now))
	case shipment.StatusPickedUp:
		s.Require().NoError(aggregate.Quote(120, now))
		s.Require().NoError(aggregate.AssignDriver(*driverID, nil, now))
		s.Require().NoError(aggregate.MarkPickedUp(now))
	default:
		s.Require().Failf("seedShipment", "unsupported status %s", status)
	}

	repo := shipmentrepo.NewGormShipmentRepository(db, noopTracker{})
	s.Require().NoError(repo.Add(context.Background(), aggregate))
	return aggregate
}

type ListShipmentsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.ListShipmentsQueryHandler
}

func (suite *ListShipmentsQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&shipmentrepo.ShipmentDTO{}))

	suite.handler = queries.NewListShipmentsQueryHandler(db)
}

func (suite *ListShipmentsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ListShipmentsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments").Error)
}

func (suite *ListShipmentsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewListShipmentsQuery(actor.Actor{ID: 1, Role: actor.RoleAdmin}, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ListShipmentsQueryHandlerTestSuite) TestHandle_Admin_SeesEverything() {
	seedShipment(&suite.Suite, suite.db, 10, nil, shipment.StatusPending)
	seedShipment(&suite.Suite, suite.db, 11, nil, shipment.StatusQuoted)
	driverID := int64(20)
	seedShipment(&suite.Suite, suite.db, 11, &driverID, shipment.StatusAssigned)

	query, err := queries.NewListShipmentsQuery(actor.Actor{ID: 1, Role: actor.RoleAdmin}, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 3)
}

func (suite *ListShipmentsQueryHandlerTestSuite) TestHandle_Shipper_SeesOnlyOwnShipments() {
	own := seedShipment(&suite.Suite, suite.db, 10, nil, shipment.StatusPending)
	seedShipment(&suite.Suite, suite.db, 11, nil, shipment.StatusPending)

	query, err := queries.NewListShipmentsQuery(actor.Actor{ID: 10, Role: actor.RoleShipper}, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(own.ID(), result[0].ID)
	suite.Equal(own.TrackingNumber(), result[0].TrackingNumber)
	suite.Equal(int64(10), result[0].ShipperID)
}

func (suite *ListShipmentsQueryHandlerTestSuite) TestHandle_Driver_SeesAssignmentsAndOpenPool() {
	driverID := int64(20)
	otherDriver := int64(21)

	assigned := seedShipment(&suite.Suite, suite.db, 10, &driverID, shipment.StatusAssigned)
	openJob := seedShipment(&suite.Suite, suite.db, 11, nil, shipment.StatusApproved)
	seedShipment(&suite.Suite, suite.db, 11, &otherDriver, shipment.StatusAssigned)
	seedShipment(&suite.Suite, suite.db, 10, nil, shipment.StatusPending)

	query, err := queries.NewListShipmentsQuery(actor.Actor{ID: 20, Role: actor.RoleDriver}, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	ids := []int64{result[0].ID, result[1].ID}
	suite.Contains(ids, assigned.ID())
	suite.Contains(ids, openJob.ID())
}

func (suite *ListShipmentsQueryHandlerTestSuite) TestHandle_StatusFilter_NarrowsResult() {
	seedShipment(&suite.Suite, suite.db, 10, nil, shipment.StatusPending)
	quoted := seedShipment(&suite.Suite, suite.db, 10, nil, shipment.StatusQuoted)

	status := shipment.StatusQuoted
	query, err := queries.NewListShipmentsQuery(actor.Actor{ID: 10, Role: actor.RoleShipper}, &status)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(quoted.ID(), result[0].ID)
	suite.Equal("quoted", result[0].Status)
}

func (suite *ListShipmentsQueryHandlerTestSuite) TestHandle_NewestFirst() {
	first := seedShipment(&suite.Suite, suite.db, 10, nil, shipment.StatusPending)
	suite.Require().NoError(
		suite.db.Exec("UPDATE shipments SET created_at = created_at - interval '1 hour' WHERE id = ?", first.ID()).Error,
	)
	second := seedShipment(&suite.Suite, suite.db, 10, nil, shipment.StatusPending)

	query, err := queries.NewListShipmentsQuery(actor.Actor{ID: 10, Role: actor.RoleShipper}, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(second.ID(), result[0].ID)
	suite.Equal(first.ID(), result[1].ID)
}

func (suite *ListShipmentsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.ListShipmentsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewListShipmentsQuery constructor")
}

func TestListShipmentsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListShipmentsQueryHandlerTestSuite))
}
