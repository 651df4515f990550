package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "orders/internal/adapters/out/postgres"
	"orders/internal/adapters/out/postgres/pgtest"
	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/product"
	"orders/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a
// real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.CustomerRepository())
	suite.NotNil(uow1.ProductRepository())
	suite.NotNil(uow1.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryCommit() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	c := suite.newCustomer("Alice")
	p := suite.newProduct("Widget")
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, c))
	suite.Require().NoError(uow.ProductRepository().Add(ctx, p))

	o := suite.newOrder(c.ID(), p.ID())
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	suite.Require().NoError(uow.Commit(ctx))

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(c.ID(), retrieved.CustomerID())
	suite.Require().Len(retrieved.Items(), 1)
	suite.Equal(p.ID(), retrieved.Items()[0].ProductID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	c := suite.newCustomer("Alice")
	p := suite.newProduct("Widget")
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, c))
	suite.Require().NoError(uow.ProductRepository().Add(ctx, p))

	_, err := uow.CustomerRepository().Get(ctx, c.ID())
	suite.Require().NoError(err, "Customer should be visible inside the transaction")

	suite.Require().NoError(uow.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err = fresh.CustomerRepository().Get(ctx, c.ID())
	suite.Require().Error(err, "Customer should not exist after rollback")
	_, err = fresh.ProductRepository().Get(ctx, p.ID())
	suite.Require().Error(err, "Product should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackAfterCommitIsHarmless() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	c := suite.newCustomer("Alice")
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, c))
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().Error(uow.Rollback(ctx))

	exists, err := suite.factory.Create().CustomerRepository().Exists(ctx, c.ID())
	suite.Require().NoError(err)
	suite.True(exists)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	c1 := suite.newCustomer("Alice")
	c2 := suite.newCustomer("Bob")
	suite.Require().NoError(uow1.CustomerRepository().Add(ctx, c1))
	suite.Require().NoError(uow2.CustomerRepository().Add(ctx, c2))

	exists, err := uow1.CustomerRepository().Exists(ctx, c2.ID())
	suite.Require().NoError(err)
	suite.False(exists, "UOW1 should not see customer of UOW2")

	exists, err = uow2.CustomerRepository().Exists(ctx, c1.ID())
	suite.Require().NoError(err)
	suite.False(exists, "UOW2 should not see customer of UOW1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err = fresh.CustomerRepository().Get(ctx, c1.ID())
	suite.Require().NoError(err)
	_, err = fresh.CustomerRepository().Get(ctx, c2.ID())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	c := suite.newCustomer("Alice")
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, c))

	_, err := suite.factory.Create().CustomerRepository().Get(ctx, c.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) newCustomer(name string) *customer.Customer {
	c, err := customer.NewCustomer(name, "+15550100", "someone@example.com")
	suite.Require().NoError(err)
	return c
}

func (suite *UnitOfWorkIntegrationTestSuite) newProduct(name string) *product.Product {
	weight, err := kernel.ParseWeight("2.50")
	suite.Require().NoError(err)
	p, err := product.NewProduct(name, weight)
	suite.Require().NoError(err)
	return p
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(customerID, productID int64) *order.Order {
	number, err := order.NextNumber(nil)
	suite.Require().NoError(err)
	item, err := order.NewItem(productID, 2)
	suite.Require().NoError(err)
	o, err := order.NewOrder(number, customerID, kernel.DateOf(time.Now()), "1 Main St", []*order.Item{item})
	suite.Require().NoError(err)
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
