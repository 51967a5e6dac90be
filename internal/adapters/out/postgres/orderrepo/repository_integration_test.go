package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"cardapio/internal/adapters/out/postgres/orderrepo"
	"cardapio/internal/core/domain/model/kernel"
	"cardapio/internal/core/domain/model/order"
	"cardapio/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_lines, orders").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(table *string, createdAt time.Time) *order.Order {
	price, err := kernel.MoneyFromString("12.50")
	suite.Require().NoError(err)
	coffeePrice, err := kernel.MoneyFromString("4.75")
	suite.Require().NoError(err)

	first, err := order.NewLine(kernel.NewUUID(), "Feijoada", price, 2, "sem farofa")
	suite.Require().NoError(err)
	second, err := order.NewLine(kernel.NewUUID(), "Cafezinho", coffeePrice, 1, "")
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), table, []order.Line{first, second}, "mesa perto da janela", createdAt)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	table := "7"
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	o := suite.newOrder(&table, created)

	suite.Require().NoError(suite.repository.Add(ctx, o))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.True(stored.ID().IsEqual(o.ID()))
	suite.Require().NotNil(stored.Table())
	suite.Equal("7", *stored.Table())
	suite.Equal(order.Received, stored.Status())
	suite.Equal("mesa perto da janela", stored.Notes())
	suite.Equal(1, stored.Version())
	suite.True(stored.CreatedAt().Equal(created))
	suite.Equal(time.UTC, stored.CreatedAt().Location())

	lines := stored.Lines()
	suite.Require().Len(lines, 2)
	suite.Equal("Feijoada", lines[0].Name())
	suite.Equal("sem farofa", lines[0].Notes())
	suite.Equal("12.50", lines[0].UnitPrice().String())
	suite.Equal("Cafezinho", lines[1].Name())
	suite.Equal("29.75", stored.Total().String())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddWithoutTable() {
	ctx := context.Background()
	o := suite.newOrder(nil, time.Now().UTC())

	suite.Require().NoError(suite.repository.Add(ctx, o))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Nil(stored.Table())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus() {
	ctx := context.Background()
	o := suite.newOrder(nil, time.Now().UTC())
	suite.Require().NoError(suite.repository.Add(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	_, err = loaded.ChangeStatus(order.InPreparation, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InPreparation, stored.Status())
	suite.Equal(2, stored.Version())
	suite.False(stored.UpdatedAt().Before(stored.CreatedAt()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateVersionConflict() {
	ctx := context.Background()
	o := suite.newOrder(nil, time.Now().UTC())
	suite.Require().NoError(suite.repository.Add(ctx, o))

	first, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	_, err = first.ChangeStatus(order.InPreparation, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, first))

	_, err = second.ChangeStatus(order.InPreparation, time.Now().UTC())
	suite.Require().NoError(err)
	err = suite.repository.Update(ctx, second)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrVersionIsInvalid)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateNotFound() {
	o := suite.newOrder(nil, time.Now().UTC())
	_, err := o.ChangeStatus(order.InPreparation, time.Now().UTC())
	suite.Require().NoError(err)

	err = suite.repository.Update(context.Background(), o)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateLineQuantity() {
	ctx := context.Background()
	o := suite.newOrder(nil, time.Now().UTC())
	suite.Require().NoError(suite.repository.Add(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ChangeLineQuantity(1, 3, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(2, stored.Lines()[0].Quantity())
	suite.Equal(3, stored.Lines()[1].Quantity())
	suite.Equal("39.25", stored.Total().String())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByStatusOldestFirst() {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	late := suite.newOrder(nil, base.Add(10*time.Minute))
	early := suite.newOrder(nil, base)
	other := suite.newOrder(nil, base.Add(5*time.Minute))
	_, err := other.ChangeStatus(order.InPreparation, base.Add(6*time.Minute))
	suite.Require().NoError(err)

	for _, o := range []*order.Order{late, early, other} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	received, err := suite.repository.GetAllByStatus(ctx, order.Received)
	suite.Require().NoError(err)
	suite.Require().Len(received, 2)
	suite.True(received[0].ID().IsEqual(early.ID()))
	suite.True(received[1].ID().IsEqual(late.ID()))
	suite.Len(received[0].Lines(), 2)

	ready, err := suite.repository.GetAllByStatus(ctx, order.Ready)
	suite.Require().NoError(err)
	suite.NotNil(ready)
	suite.Empty(ready)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByStatusRejectsUnknown() {
	_, err := suite.repository.GetAllByStatus(context.Background(), order.Unknown)
	suite.Require().Error(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByTableNewestFirst() {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	table := "12"
	otherTable := "3"

	older := suite.newOrder(&table, base)
	newer := suite.newOrder(&table, base.Add(time.Hour))
	elsewhere := suite.newOrder(&otherTable, base.Add(30*time.Minute))
	takeaway := suite.newOrder(nil, base.Add(45*time.Minute))

	for _, o := range []*order.Order{older, newer, elsewhere, takeaway} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	orders, err := suite.repository.GetAllByTable(ctx, table)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.True(orders[0].ID().IsEqual(newer.ID()))
	suite.True(orders[1].ID().IsEqual(older.ID()))

	none, err := suite.repository.GetAllByTable(ctx, "99")
	suite.Require().NoError(err)
	suite.Empty(none)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
