package menurepo_test

import (
	"context"
	"testing"
	"time"

	"cardapio/internal/adapters/out/postgres/menurepo"
	"cardapio/internal/core/domain/model/kernel"
	"cardapio/internal/core/domain/model/menu"
	"cardapio/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MenuCatalogIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	catalog   *menurepo.GormMenuCatalog
}

func (suite *MenuCatalogIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&menurepo.MenuItemDTO{}))
}

func (suite *MenuCatalogIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE menu_items").Error)
	suite.catalog = menurepo.NewGormMenuCatalog(suite.db)
}

func (suite *MenuCatalogIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *MenuCatalogIntegrationTestSuite) newItem(name, price string, enabled bool) menu.Item {
	money, err := kernel.MoneyFromString(price)
	suite.Require().NoError(err)
	item, err := menu.NewItem(kernel.NewUUID(), name, money, enabled)
	suite.Require().NoError(err)
	return item
}

func (suite *MenuCatalogIntegrationTestSuite) TestAddAndResolve() {
	ctx := context.Background()
	item := suite.newItem("Moqueca", "89.90", true)
	suite.Require().NoError(suite.catalog.Add(ctx, item))

	resolved, err := suite.catalog.ResolveItem(ctx, item.ID())
	suite.Require().NoError(err)

	suite.True(resolved.ID().IsEqual(item.ID()))
	suite.Equal("Moqueca", resolved.Name())
	suite.Equal("89.90", resolved.Price().String())
	suite.True(resolved.IsEnabled())
}

func (suite *MenuCatalogIntegrationTestSuite) TestResolveDisabledItem() {
	ctx := context.Background()
	item := suite.newItem("Pudim", "14.00", false)
	suite.Require().NoError(suite.catalog.Add(ctx, item))

	resolved, err := suite.catalog.ResolveItem(ctx, item.ID())
	suite.Require().NoError(err)
	suite.False(resolved.IsEnabled())
}

func (suite *MenuCatalogIntegrationTestSuite) TestResolveNotFound() {
	_, err := suite.catalog.ResolveItem(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *MenuCatalogIntegrationTestSuite) TestAddRejectsUnconstructedItem() {
	err := suite.catalog.Add(context.Background(), menu.Item{})
	suite.Require().Error(err)
}

func TestMenuCatalogIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(MenuCatalogIntegrationTestSuite))
}
