package queries_test

import (
	"context"
	"testing"
	"time"

	"farmmarket/internal/adapters/out/postgres/conversationrepo"
	"farmmarket/internal/adapters/out/postgres/listingrepo"
	"farmmarket/internal/adapters/out/postgres/orderrepo"
	"farmmarket/internal/core/application/usecases/queries"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/listing"
	"farmmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetDashboardSummaryQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetDashboardSummaryQueryHandler
}

func (suite *GetDashboardSummaryQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(
		&listingrepo.CropDTO{}, &listingrepo.LivestockDTO{}, &listingrepo.LandDTO{},
		&orderrepo.OrderDTO{},
		&conversationrepo.ConversationDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetDashboardSummaryQueryHandler(db)
}

func (suite *GetDashboardSummaryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetDashboardSummaryQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE crops, livestocks, lands, orders, conversations").Error
	suite.Require().NoError(err)
}

func (suite *GetDashboardSummaryQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsZeroSummary() {
	query, err := queries.NewGetDashboardSummaryQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	summary, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Zero(summary.TotalListings)
	suite.Zero(summary.TotalOrders)
	suite.Zero(summary.CompletedRevenue)
	suite.Zero(summary.UnreadMessages)
	suite.Empty(summary.ListingsByStatus)
	suite.Empty(summary.OrdersByStatus)
}

func (suite *GetDashboardSummaryQueryHandlerTestSuite) TestHandle_AggregatesAcrossListingTables() {
	farmerID := kernel.NewUUID()
	farmer := farmerID.Bytes()

	suite.seedCrop(farmer, listing.StatusAvailable)
	suite.seedCrop(farmer, listing.StatusSold)
	suite.seedLivestock(farmer, listing.StatusAvailable)
	suite.seedLand(farmer, listing.StatusAvailable)
	// Another farmer's listing must not count.
	suite.seedCrop(uuid.New(), listing.StatusAvailable)

	query, err := queries.NewGetDashboardSummaryQuery(farmerID)
	suite.Require().NoError(err)

	summary, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(4, summary.TotalListings)
	suite.Equal(3, summary.ListingsByStatus["available"])
	suite.Equal(1, summary.ListingsByStatus["sold"])
}

func (suite *GetDashboardSummaryQueryHandlerTestSuite) TestHandle_CountsSellerOrdersAndRevenue() {
	farmerID := kernel.NewUUID()
	farmer := farmerID.Bytes()

	suite.seedOrder(farmer, order.Pending, 500)
	suite.seedOrder(farmer, order.Completed, 1200)
	suite.seedOrder(farmer, order.Completed, 800)
	suite.seedOrder(farmer, order.Rejected, 999)
	// Another seller's order must not count.
	suite.seedOrder(uuid.New(), order.Completed, 5000)

	query, err := queries.NewGetDashboardSummaryQuery(farmerID)
	suite.Require().NoError(err)

	summary, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(4, summary.TotalOrders)
	suite.Equal(1, summary.OrdersByStatus["pending"])
	suite.Equal(2, summary.OrdersByStatus["completed"])
	suite.Equal(1, summary.OrdersByStatus["rejected"])
	suite.InDelta(2000, summary.CompletedRevenue, 0.0001, "revenue sums completed orders only")
}

func (suite *GetDashboardSummaryQueryHandlerTestSuite) TestHandle_SumsUnreadForTheRequestingSide() {
	userID := kernel.NewUUID()
	me := userID.Bytes()
	other := uuid.New()

	// Canonical storage may place the requester on either side.
	suite.seedConversation(me, other, 3, 9)
	suite.seedConversation(other, me, 4, 2)

	query, err := queries.NewGetDashboardSummaryQuery(userID)
	suite.Require().NoError(err)

	summary, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(5, summary.UnreadMessages, "unread_a of the first thread plus unread_b of the second")
}

func (suite *GetDashboardSummaryQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetDashboardSummaryQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetDashboardSummaryQuery constructor")
}

func (suite *GetDashboardSummaryQueryHandlerTestSuite) seedCrop(ownerID uuid.UUID, status listing.Status) {
	dto := listingrepo.CropDTO{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		Title:         "Fresh wheat",
		Price:         25,
		District:      "Pune",
		State:         "Maharashtra",
		Status:        int(status),
		QuantityValue: 100,
		QuantityUnit:  int(listing.UnitKg),
		Category:      "wheat",
		Grade:         "A",
		CreatedAt:     time.Now().UTC(),
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func (suite *GetDashboardSummaryQueryHandlerTestSuite) seedLivestock(ownerID uuid.UUID, status listing.Status) {
	dto := listingrepo.LivestockDTO{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     "Gir cow",
		Price:     42000,
		District:  "Rajkot",
		State:     "Gujarat",
		Status:    int(status),
		AnimalType: "cow",
		Count:     2,
		CreatedAt: time.Now().UTC(),
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func (suite *GetDashboardSummaryQueryHandlerTestSuite) seedLand(ownerID uuid.UUID, status listing.Status) {
	dto := listingrepo.LandDTO{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     "Orchard plot",
		Price:     900000,
		District:  "Nashik",
		State:     "Maharashtra",
		Status:    int(status),
		AreaAcres: 2.5,
		LandType:  "orchard",
		CreatedAt: time.Now().UTC(),
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func (suite *GetDashboardSummaryQueryHandlerTestSuite) seedOrder(sellerID uuid.UUID, status order.Status, totalPrice float64) {
	dto := orderrepo.OrderDTO{
		ID:          uuid.New(),
		BuyerID:     uuid.New(),
		SellerID:    sellerID,
		ListingID:   uuid.New(),
		ListingType: int(listing.TypeCrop),
		Quantity:    10,
		TotalPrice:  totalPrice,
		ContactName: "Asha Patil",
		Status:      int(status),
		CreatedAt:   time.Now().UTC(),
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func (suite *GetDashboardSummaryQueryHandlerTestSuite) seedConversation(a, b uuid.UUID, unreadA, unreadB int) {
	dto := conversationrepo.ConversationDTO{
		ID:           uuid.New(),
		ParticipantA: a,
		ParticipantB: b,
		UnreadA:      unreadA,
		UnreadB:      unreadB,
		CreatedAt:    time.Now().UTC(),
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func TestGetDashboardSummaryQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDashboardSummaryQueryHandlerTestSuite))
}
