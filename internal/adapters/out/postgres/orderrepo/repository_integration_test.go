package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type OrderRepositoryTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *OrderRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *OrderRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *OrderRepositoryTestSuite) newOrder() *order.Order {
	sender, err := order.NewSender("Budi", "+62811", "Jl. Melati 5")
	suite.Require().NoError(err)

	pickup, err := kernel.NewPoint(-6.2001, 106.8001)
	suite.Require().NoError(err)
	dropoff, err := kernel.NewPoint(-6.2100, 106.8100)
	suite.Require().NoError(err)

	pricing, err := order.NewPricing(1000, 3000, 2000, 4000, 6000)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), sender, pickup, dropoff, pricing, 150000, 25000)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryTestSuite) add(o *order.Order) {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *OrderRepositoryTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.add(o)

	restored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.True(restored.ID().IsEqual(o.ID()))
	suite.Equal(order.StatusNew, restored.Status())
	suite.Equal(0, restored.Version())
	suite.Nil(restored.Courier())
	suite.Equal("Budi", restored.Sender().Name())
	suite.Equal(6000, restored.Pricing().Total())
	suite.Equal(150000, restored.CODAmount())
	suite.Equal(25000, restored.TalanganAmount())

	// audit trail survives the jsonb round trip
	audit := restored.Audit()
	suite.Require().Len(audit, 1)
	suite.Equal(order.EventOrderCreated, audit[0].Kind())
	suite.Equal(order.ActorSystem, audit[0].ActorType())
}

func (suite *OrderRepositoryTestSuite) TestGet_NotFound() {
	_, err := suite.factory.Create().OrderRepository().Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestUpdate_BumpsVersionAndPersistsMutation() {
	ctx := context.Background()
	courierID := kernel.NewUUID()
	o := suite.newOrder()
	suite.add(o)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	repo := uow.OrderRepository()

	loaded, err := repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Assign(courierID, true, order.NewAdminActor("admin-1")))
	suite.Require().NoError(repo.Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusOffered, restored.Status())
	suite.Equal(1, restored.Version())
	suite.Require().NotNil(restored.Courier())
	suite.True(restored.Courier().IsEqual(courierID))
	suite.Len(restored.Audit(), 2)
}

func (suite *OrderRepositoryTestSuite) TestUpdate_StaleVersionLosesRace() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.add(o)

	repo := suite.factory.Create().OrderRepository()

	// two writers load the same version
	first, err := repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	second, err := repo.Get(ctx, o.ID())
	suite.Require().NoError(err)

	admin := order.NewAdminActor("admin-1")
	suite.Require().NoError(first.Assign(kernel.NewUUID(), true, admin))
	suite.Require().NoError(second.Assign(kernel.NewUUID(), false, admin))

	// first writer wins, second must get a version error and change nothing
	suite.Require().NoError(repo.Update(ctx, first))
	err = repo.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	restored, err := repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusOffered, restored.Status())
	suite.True(restored.Courier().IsEqual(*first.Courier()))
	suite.Equal(1, restored.Version())
}

func (suite *OrderRepositoryTestSuite) TestGetAllActive_ExcludesTerminal() {
	ctx := context.Background()
	repo := suite.factory.Create().OrderRepository()

	active := suite.newOrder()
	suite.add(active)

	cancelled := suite.newOrder()
	suite.Require().NoError(cancelled.Cancel(order.NewAdminActor("admin-1")))
	suite.add(cancelled)

	orders, err := repo.GetAllActive(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.True(orders[0].ID().IsEqual(active.ID()))
}

func (suite *OrderRepositoryTestSuite) TestGetAllInStatus_And_ByCourier() {
	ctx := context.Background()
	repo := suite.factory.Create().OrderRepository()
	courierID := kernel.NewUUID()
	admin := order.NewAdminActor("admin-1")

	offered := suite.newOrder()
	suite.Require().NoError(offered.Assign(courierID, true, admin))
	suite.add(offered)

	plain := suite.newOrder()
	suite.add(plain)

	inOffered, err := repo.GetAllInStatus(ctx, order.StatusOffered)
	suite.Require().NoError(err)
	suite.Require().Len(inOffered, 1)
	suite.True(inOffered[0].ID().IsEqual(offered.ID()))

	mine, err := repo.GetAllActiveByCourier(ctx, courierID)
	suite.Require().NoError(err)
	suite.Require().Len(mine, 1)
	suite.True(mine[0].ID().IsEqual(offered.ID()))
}

func (suite *OrderRepositoryTestSuite) TestRollback_DiscardsWrite() {
	ctx := context.Background()
	o := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryTestSuite))
}
