package snapshotrepo_test

import (
	"context"
	"testing"
	"time"

	"quickcart/internal/adapters/out/postgres"
	"quickcart/internal/adapters/out/postgres/snapshotrepo"
	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

func money(s *suite.Suite, amount string) kernel.Money {
	m, err := kernel.MoneyFromString(amount)
	s.Require().NoError(err)
	return m
}

func sampleSnapshot(s *suite.Suite) ports.Snapshot {
	return ports.Snapshot{
		Products: []ports.ProductSnapshot{
			{ID: kernel.NewUUID(), Name: "Widget", Price: money(s, "9.99"), Stock: 8, Category: "Gadgets"},
			{ID: kernel.NewUUID(), Name: "Gizmo", Price: money(s, "25.00"), Stock: 3, Category: "Tools"},
		},
		Orders: []ports.OrderSnapshot{
			{
				ID:       kernel.NewUUID(),
				Customer: "customer1",
				Rider:    "rider1",
				Items: []ports.OrderItemSnapshot{
					{Name: "Widget", Quantity: 2},
					{Name: "Gizmo", Quantity: 1},
				},
				Status:    "delivered",
				Total:     money(s, "44.98"),
				CreatedAt: time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
			},
			{
				ID:        kernel.NewUUID(),
				Customer:  "customer1",
				Rider:     "Unassigned",
				Items:     []ports.OrderItemSnapshot{{Name: "Widget", Quantity: 1}},
				Status:    "pending",
				Total:     money(s, "9.99"),
				CreatedAt: time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
			},
		},
	}
}

// SnapshotRepositoryTestSuite runs the repository against in-memory sqlite.
type SnapshotRepositoryTestSuite struct {
	suite.Suite
	db         *gorm.DB
	repository *snapshotrepo.GormSnapshotRepository
}

func (suite *SnapshotRepositoryTestSuite) SetupTest() {
	db, err := postgres.Open(context.Background(), postgres.DriverSQLite, ":memory:")
	suite.Require().NoError(err)
	suite.db = db

	suite.repository = snapshotrepo.NewGormSnapshotRepository(db)
	suite.Require().NoError(suite.repository.Migrate(context.Background()))
}

func (suite *SnapshotRepositoryTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(sqlDB.Close())
}

func (suite *SnapshotRepositoryTestSuite) TestLoadProducts_Empty() {
	seeds, err := suite.repository.LoadProducts(context.Background())

	suite.Require().NoError(err)
	suite.Empty(seeds)
}

func (suite *SnapshotRepositoryTestSuite) TestSave_RoundTripsProducts() {
	snapshot := sampleSnapshot(&suite.Suite)

	suite.Require().NoError(suite.repository.Save(context.Background(), snapshot))

	seeds, err := suite.repository.LoadProducts(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(seeds, 2)
	suite.Equal("Widget", seeds[0].Name)
	suite.True(seeds[0].Price.IsEqual(money(&suite.Suite, "9.99")))
	suite.Equal(8, seeds[0].Stock)
	suite.Equal("Gadgets", seeds[0].Category)
	suite.Equal("Gizmo", seeds[1].Name)
}

func (suite *SnapshotRepositoryTestSuite) TestSave_StoresOrdersWithItems() {
	snapshot := sampleSnapshot(&suite.Suite)

	suite.Require().NoError(suite.repository.Save(context.Background(), snapshot))

	var orders []snapshotrepo.OrderDTO
	suite.Require().NoError(suite.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	}).Order("position").Find(&orders).Error)

	suite.Require().Len(orders, 2)
	suite.Equal(snapshot.Orders[0].ID.Bytes(), orders[0].ID)
	suite.Equal("rider1", orders[0].Rider)
	suite.Equal("delivered", orders[0].Status)
	suite.Equal("44.98", orders[0].Total.StringFixed(2))
	suite.True(snapshot.Orders[0].CreatedAt.Equal(orders[0].PlacedAt))
	suite.Require().Len(orders[0].Items, 2)
	suite.Equal("Widget", orders[0].Items[0].Name)
	suite.Equal(2, orders[0].Items[0].Quantity)
	suite.Equal("Unassigned", orders[1].Rider)
	suite.Len(orders[1].Items, 1)
}

func (suite *SnapshotRepositoryTestSuite) TestSave_ReplacesPreviousSnapshot() {
	suite.Require().NoError(suite.repository.Save(context.Background(), sampleSnapshot(&suite.Suite)))

	next := ports.Snapshot{
		Products: []ports.ProductSnapshot{
			{ID: kernel.NewUUID(), Name: "Lamp", Price: money(&suite.Suite, "12.00"), Stock: 1, Category: "Home"},
		},
	}
	suite.Require().NoError(suite.repository.Save(context.Background(), next))

	seeds, err := suite.repository.LoadProducts(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(seeds, 1)
	suite.Equal("Lamp", seeds[0].Name)

	var orderCount, itemCount int64
	suite.Require().NoError(suite.db.Model(&snapshotrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Model(&snapshotrepo.OrderItemDTO{}).Count(&itemCount).Error)
	suite.Zero(orderCount)
	suite.Zero(itemCount)
}

func (suite *SnapshotRepositoryTestSuite) TestSave_EmptySnapshot() {
	suite.Require().NoError(suite.repository.Save(context.Background(), ports.Snapshot{}))

	seeds, err := suite.repository.LoadProducts(context.Background())
	suite.Require().NoError(err)
	suite.Empty(seeds)
}

func (suite *SnapshotRepositoryTestSuite) TestSave_KeepsPreviousSnapshotOnFailure() {
	suite.Require().NoError(suite.repository.Save(context.Background(), sampleSnapshot(&suite.Suite)))

	id := kernel.NewUUID()
	duplicate := ports.Snapshot{
		Products: []ports.ProductSnapshot{
			{ID: id, Name: "Lamp", Price: money(&suite.Suite, "12.00"), Stock: 1, Category: "Home"},
			{ID: id, Name: "Lamp", Price: money(&suite.Suite, "12.00"), Stock: 1, Category: "Home"},
		},
	}
	suite.Error(suite.repository.Save(context.Background(), duplicate))

	seeds, err := suite.repository.LoadProducts(context.Background())
	suite.Require().NoError(err)
	suite.Len(seeds, 2)
}

func TestSnapshotRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SnapshotRepositoryTestSuite))
}
