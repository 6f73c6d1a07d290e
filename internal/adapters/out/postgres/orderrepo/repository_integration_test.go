package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"hospitalfood/internal/adapters/out/postgres/orderrepo"
	"hospitalfood/internal/adapters/out/postgres/patientrepo"
	"hospitalfood/internal/adapters/out/postgres/pgtest"
	"hospitalfood/internal/adapters/out/postgres/staffrepo"
	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/order"
	"hospitalfood/internal/core/domain/model/patient"
	"hospitalfood/internal/core/domain/model/staff"
	"hospitalfood/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// OrderRepositoryIntegrationTestSuite runs the order repository against a real PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker

	cook    *staff.Staff
	courier *staff.Staff
	patient *patient.Patient
}

var placedAt = time.Date(2024, 5, 1, 7, 30, 0, 0, time.UTC)

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.database = database
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.database.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.database.DB, suite.tracker)

	members := staffrepo.NewGormStaffRepository(suite.database.DB, noopTracker{})
	var err error
	suite.cook, err = staff.NewStaff(kernel.NewUUID(), "Cook", "cook@hospital.test", "hash",
		staff.RolePantryStaff, "", kernel.MustLocation("Main Kitchen"), placedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(members.Add(ctx, suite.cook))

	suite.courier, err = staff.NewStaff(kernel.NewUUID(), "Courier", "courier@hospital.test", "hash",
		staff.RoleDelivery, "", kernel.MustLocation("Ward 3"), placedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(members.Add(ctx, suite.courier))

	suite.patient, err = patient.NewPatient(kernel.NewUUID(),
		patient.Profile{Name: "Aigerim", RoomNumber: "204", BedNumber: "B"}, placedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(patientrepo.NewGormPatientRepository(suite.database.DB, noopTracker{}).Add(ctx, suite.patient))
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder() *order.Order {
	soup, err := kernel.NewFoodItem("Soup", 2, "no salt")
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), suite.patient.ID(), kernel.SessionMorning, suite.cook.ID(),
		suite.cook.Location(), []kernel.FoodItem{soup}, placedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(o.SetSpecialNotes("window bed", "mash the vegetables"))
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) addOrder() *order.Order {
	o := suite.newOrder()
	suite.tracker.On("TrackAggregate", o.ID(), o).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), o))
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGet_RestoresOrder() {
	o := suite.addOrder()

	got, err := suite.repository.Get(context.Background(), o.ID())

	suite.Require().NoError(err)
	suite.True(got.ID().IsEqual(o.ID()))
	suite.True(got.PatientID().IsEqual(suite.patient.ID()))
	suite.Equal(kernel.SessionMorning, got.Session())
	suite.Equal(order.OrderPending, got.OrderStatus())
	suite.Equal(order.DeliveryPending, got.DeliveryStatus())
	suite.True(order.DateOf(placedAt).Equal(got.OrderDate()))
	suite.Equal("Main Kitchen", got.PantryLocation().Name())
	suite.Equal("window bed", got.SpecialNotes())
	suite.Equal("mash the vegetables", got.CookingSpecialNotes())
	suite.Nil(got.DeliveryPerson())
	suite.True(got.DeliveryLocation().IsZero())
	suite.Require().Len(got.Items(), 1)
	suite.Equal("Soup", got.Items()[0].Name())
	suite.Equal(2, got.Items()[0].Quantity())
	suite.Equal("no salt", got.Items()[0].Instructions())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructed_ReturnsError() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsAssignmentAndStatuses() {
	ctx := context.Background()
	o := suite.addOrder()

	suite.Require().NoError(o.AssignDelivery(suite.courier.ID(), suite.courier.Location(), "call first"))
	suite.Require().NoError(o.AdvanceOrderStatus(order.OrderCompleted, placedAt.Add(time.Hour)))
	suite.Require().NoError(o.AdvanceDeliveryStatus(order.DeliveryInProgress, placedAt.Add(2*time.Hour)))
	suite.tracker.On("TrackAggregate", o.ID(), o).Once()

	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.OrderCompleted, got.OrderStatus())
	suite.Equal(order.DeliveryInProgress, got.DeliveryStatus())
	suite.True(got.IsAssignedTo(suite.courier.ID()))
	suite.Equal("Ward 3", got.DeliveryLocation().Name())
	suite.Equal("call first", got.DeliverySpecialNotes())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StoresClearedNotes() {
	ctx := context.Background()
	o := suite.addOrder()

	suite.Require().NoError(o.UpdateCookingNotes(""))
	suite.tracker.On("TrackAggregate", o.ID(), o).Once()
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Empty(got.CookingSpecialNotes())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Unknown_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.newOrder())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_Unknown_ReturnsNotFound() {
	got, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Nil(got)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetMany_KeepsRequestedOrder() {
	first, second := suite.addOrder(), suite.addOrder()

	got, err := suite.repository.GetMany(context.Background(), []kernel.UUID{second.ID(), first.ID()})

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.True(got[0].ID().IsEqual(second.ID()))
	suite.True(got[1].ID().IsEqual(first.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetMany_MissingOrder_ReturnsNotFound() {
	o := suite.addOrder()
	missing := kernel.NewUUID()

	got, err := suite.repository.GetMany(context.Background(), []kernel.UUID{o.ID(), missing})

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Contains(err.Error(), missing.String())
	suite.Nil(got)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
