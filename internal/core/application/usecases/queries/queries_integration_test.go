package queries_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"hospitalfood/internal/adapters/out/postgres/orderrepo"
	"hospitalfood/internal/adapters/out/postgres/patientrepo"
	"hospitalfood/internal/adapters/out/postgres/pgtest"
	"hospitalfood/internal/adapters/out/postgres/staffrepo"
	"hospitalfood/internal/core/application/usecases/queries"
	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/order"
	"hospitalfood/internal/core/domain/model/patient"
	"hospitalfood/internal/core/domain/model/staff"
	"hospitalfood/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type MockLocationCache struct {
	mock.Mock
}

func (m *MockLocationCache) Get(ctx context.Context, role staff.Role) ([]string, bool, error) {
	args := m.Called(ctx, role)
	locations, _ := args.Get(0).([]string)
	return locations, args.Bool(1), args.Error(2)
}

func (m *MockLocationCache) Set(ctx context.Context, role staff.Role, locations []string) error {
	return m.Called(ctx, role, locations).Error(0)
}

func (m *MockLocationCache) Invalidate(ctx context.Context, role staff.Role) error {
	return m.Called(ctx, role).Error(0)
}

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// QueriesIntegrationTestSuite runs the read side against a real PostgreSQL.
type QueriesIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database

	orders   *orderrepo.GormOrderRepository
	patients *patientrepo.GormPatientRepository
	members  *staffrepo.GormStaffRepository
}

var mayFirst = time.Date(2024, 5, 1, 7, 30, 0, 0, time.UTC)

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.database = database
	suite.Require().NoError(err)
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.orders = orderrepo.NewGormOrderRepository(suite.database.DB, noopTracker{})
	suite.patients = patientrepo.NewGormPatientRepository(suite.database.DB, noopTracker{})
	suite.members = staffrepo.NewGormStaffRepository(suite.database.DB, noopTracker{})
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *QueriesIntegrationTestSuite) addMember(name, email string, role staff.Role, location string) *staff.Staff {
	member, err := staff.NewStaff(kernel.NewUUID(), name, email, "hash", role, name+" phone",
		kernel.MustLocation(location), mayFirst)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.members.Add(suite.T().Context(), member))
	return member
}

func (suite *QueriesIntegrationTestSuite) addPatient(name, room string) *patient.Patient {
	p, err := patient.NewPatient(kernel.NewUUID(), patient.Profile{
		Name:       name,
		RoomNumber: room,
		BedNumber:  "A",
		Allergies:  []string{"nuts"},
	}, mayFirst)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.patients.Add(suite.T().Context(), p))
	return p
}

func (suite *QueriesIntegrationTestSuite) addOrder(
	p *patient.Patient,
	cook *staff.Staff,
	session kernel.Session,
	at time.Time,
) *order.Order {
	item, err := kernel.NewFoodItem("Porridge", 1, "no sugar")
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), p.ID(), session, cook.ID(), cook.Location(),
		[]kernel.FoodItem{item}, at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(suite.T().Context(), o))
	return o
}

func (suite *QueriesIntegrationTestSuite) filter(filters queries.OrderFilters) []queries.OrderView {
	query, err := queries.NewGetOrdersByFiltersQuery(filters)
	suite.Require().NoError(err)

	page, err := queries.NewGetOrdersByFiltersQueryHandler(suite.database.DB).Handle(suite.T().Context(), query)
	suite.Require().NoError(err)
	suite.False(page.Truncated)
	return page.Orders
}

func (suite *QueriesIntegrationTestSuite) TestGetOrdersByFilters() {
	ctx := suite.T().Context()
	cook := suite.addMember("Cook", "cook@hospital.test", staff.RolePantryStaff, "Main Kitchen")
	courier := suite.addMember("Courier", "courier@hospital.test", staff.RoleDelivery, "Ward 3")
	aigerim := suite.addPatient("Aigerim", "204")
	daniyar := suite.addPatient("Daniyar", "101")

	first := suite.addOrder(aigerim, cook, kernel.SessionMorning, mayFirst)
	second := suite.addOrder(daniyar, cook, kernel.SessionMorning, mayFirst.Add(time.Minute))
	suite.addOrder(aigerim, cook, kernel.SessionNight, mayFirst.Add(time.Hour))
	suite.addOrder(aigerim, cook, kernel.SessionMorning, mayFirst.AddDate(0, 0, 1))

	suite.Run("should match date, status and session, newest first", func() {
		views := suite.filter(queries.OrderFilters{Date: "2024-05-01", OrderStatus: "pending", Session: "morning"})

		suite.Require().Len(views, 2)
		suite.Equal(second.ID(), views[0].ID)
		suite.Equal(first.ID(), views[1].ID)
		suite.Equal("Daniyar", views[0].Patient.Name)
		suite.Equal("101", views[0].Patient.RoomNumber)
		suite.Equal("Cook", views[0].Pantry.Name)
		suite.Equal("Main Kitchen", views[0].PantryLocation)
		suite.Equal([]queries.FoodItem{{Name: "Porridge", Quantity: 1, Instructions: "no sugar"}}, views[0].Items)
		suite.Nil(views[0].DeliveryPerson)
		suite.Equal(order.OrderPending, views[0].OrderStatus)
		suite.Equal(order.DeliveryPending, views[0].DeliveryStatus)
	})

	suite.Run("should return an empty list when nothing matches", func() {
		views := suite.filter(queries.OrderFilters{Date: "2023-01-01"})

		suite.NotNil(views)
		suite.Empty(views)
	})

	suite.Run("should show the assigned delivery person and scope to them", func() {
		suite.Require().NoError(first.AssignDelivery(courier.ID(), kernel.MustLocation("Ward 3"), "ring twice"))
		suite.Require().NoError(first.AdvanceDeliveryStatus(order.DeliveryInProgress, mayFirst))
		suite.Require().NoError(suite.orders.Update(ctx, first))

		views := suite.filter(queries.OrderFilters{Scope: queries.ScopeDelivery, ScopeID: courier.ID()})

		suite.Require().Len(views, 1)
		suite.Equal(first.ID(), views[0].ID)
		suite.Require().NotNil(views[0].DeliveryPerson)
		suite.Equal("Courier", views[0].DeliveryPerson.Name)
		suite.Equal("Ward 3", views[0].DeliveryLocation)
		suite.Equal("ring twice", views[0].DeliverySpecialNotes)
		suite.Equal(order.DeliveryInProgress, views[0].DeliveryStatus)
		suite.Equal(order.OrderPending, views[0].OrderStatus)
	})

	suite.Run("should filter on the delivery axis alone", func() {
		views := suite.filter(queries.OrderFilters{DeliveryStatus: "inProgress"})

		suite.Require().Len(views, 1)
		suite.Equal(first.ID(), views[0].ID)
	})

	suite.Run("should scope to the cook", func() {
		other := suite.addMember("Other Cook", "other@hospital.test", staff.RolePantryStaff, "Annex")

		suite.Len(suite.filter(queries.OrderFilters{Scope: queries.ScopePantry, ScopeID: cook.ID()}), 4)
		suite.Empty(suite.filter(queries.OrderFilters{Scope: queries.ScopePantry, ScopeID: other.ID()}))
	})

	suite.Run("should keep the newest orders and flag a truncated page", func() {
		query, err := queries.NewGetOrdersByFiltersQuery(queries.OrderFilters{Scope: queries.ScopeAll})
		suite.Require().NoError(err)
		handler := queries.NewGetOrdersByFiltersQueryHandler(suite.database.DB)

		page, err := handler.WithPageSize(2).Handle(ctx, query)
		suite.Require().NoError(err)
		suite.True(page.Truncated)
		suite.Require().Len(page.Orders, 2)
		suite.Equal(time.Date(2024, 5, 2, 7, 30, 0, 0, time.UTC), page.Orders[0].CreatedAt.UTC())

		page, err = handler.WithPageSize(4).Handle(ctx, query)
		suite.Require().NoError(err)
		suite.False(page.Truncated)
		suite.Len(page.Orders, 4)
	})
}

func (suite *QueriesIntegrationTestSuite) TestGetSessionDigest() {
	ctx := suite.T().Context()
	cook := suite.addMember("Cook", "cook@hospital.test", staff.RolePantryStaff, "Main Kitchen")
	courier := suite.addMember("Courier", "courier@hospital.test", staff.RoleDelivery, "Ward 3")
	aigerim := suite.addPatient("Aigerim", "204")

	done := suite.addOrder(aigerim, cook, kernel.SessionMorning, mayFirst)
	suite.Require().NoError(done.AdvanceOrderStatus(order.OrderCompleted, mayFirst))
	suite.Require().NoError(done.AssignDelivery(courier.ID(), kernel.MustLocation("Ward 3"), ""))
	suite.Require().NoError(done.AdvanceDeliveryStatus(order.DeliveryDelivered, mayFirst))
	suite.Require().NoError(suite.orders.Update(ctx, done))
	for i := range queries.MaxOrdersPerPage + 1 {
		suite.addOrder(aigerim, cook, kernel.SessionNight, mayFirst.Add(time.Duration(i)*time.Second))
	}
	suite.addOrder(aigerim, cook, kernel.SessionMorning, mayFirst.AddDate(0, 0, 1))

	query, err := queries.NewGetSessionDigestQuery("2024-05-01")
	suite.Require().NoError(err)

	counts, err := queries.NewGetSessionDigestQueryHandler(suite.database.DB).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal([]queries.SessionCounts{
		{Session: kernel.SessionMorning, Total: 1},
		{Session: kernel.SessionAfternoon},
		{
			Session:          kernel.SessionNight,
			Total:            queries.MaxOrdersPerPage + 1,
			AwaitingKitchen:  queries.MaxOrdersPerPage + 1,
			AwaitingDelivery: queries.MaxOrdersPerPage + 1,
			Unassigned:       queries.MaxOrdersPerPage + 1,
		},
	}, counts)
}

func (suite *QueriesIntegrationTestSuite) TestPatientsAndMealPlans() {
	ctx := suite.T().Context()
	aigerim := suite.addPatient("Aigerim", "204")
	bolat := suite.addPatient("Bolat", "310")

	soup, err := kernel.NewFoodItem("Soup", 2, "")
	suite.Require().NoError(err)
	plan, err := patient.NewMealPlan(aigerim.ID(), map[kernel.Session][]kernel.FoodItem{
		kernel.SessionMorning: {soup},
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.patients.SaveMealPlan(ctx, plan))

	suite.Run("should list patients by name", func() {
		views, err := queries.NewGetPatientsQueryHandler(suite.database.DB).Handle(ctx, queries.NewGetPatientsQuery())

		suite.Require().NoError(err)
		suite.Require().Len(views, 2)
		suite.Equal("Aigerim", views[0].Name)
		suite.Equal([]string{"nuts"}, views[0].Allergies)
		suite.Equal([]string{}, views[0].Diseases)
		suite.Equal("Bolat", views[1].Name)
	})

	suite.Run("should list only patients with food for the session", func() {
		query, err := queries.NewGetPatientsWithMealQuery("morning")
		suite.Require().NoError(err)

		meals, err := queries.NewGetPatientsWithMealQueryHandler(suite.database.DB).Handle(ctx, query)

		suite.Require().NoError(err)
		suite.Require().Len(meals, 1)
		suite.Equal(aigerim.ID(), meals[0].Patient.ID)
		suite.Equal([]queries.FoodItem{{Name: "Soup", Quantity: 2}}, meals[0].MealDetails)
	})

	suite.Run("should return no patients for an unplanned session", func() {
		query, err := queries.NewGetPatientsWithMealQuery("night")
		suite.Require().NoError(err)

		meals, err := queries.NewGetPatientsWithMealQueryHandler(suite.database.DB).Handle(ctx, query)

		suite.Require().NoError(err)
		suite.Empty(meals)
	})

	suite.Run("should read the stored plan", func() {
		query, err := queries.NewGetMealPlanQuery(aigerim.ID())
		suite.Require().NoError(err)

		view, err := queries.NewGetMealPlanQueryHandler(suite.database.DB).Handle(ctx, query)

		suite.Require().NoError(err)
		suite.Equal("Aigerim", view.PatientName)
		suite.Len(view.Morning, 1)
		suite.Empty(view.Afternoon)
		suite.Empty(view.Night)
	})

	suite.Run("should give empty sessions to a patient without a plan", func() {
		query, err := queries.NewGetMealPlanQuery(bolat.ID())
		suite.Require().NoError(err)

		view, err := queries.NewGetMealPlanQueryHandler(suite.database.DB).Handle(ctx, query)

		suite.Require().NoError(err)
		suite.NotNil(view.Morning)
		suite.Empty(view.Morning)
	})

	suite.Run("should fail for an unknown patient", func() {
		query, err := queries.NewGetMealPlanQuery(kernel.NewUUID())
		suite.Require().NoError(err)

		_, err = queries.NewGetMealPlanQueryHandler(suite.database.DB).Handle(ctx, query)

		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	})
}

func (suite *QueriesIntegrationTestSuite) TestStaffQueries() {
	ctx := suite.T().Context()
	suite.addMember("Manager", "manager@hospital.test", staff.RoleManager, "Office")
	suite.addMember("Cook", "cook@hospital.test", staff.RolePantryStaff, "Main Kitchen")
	suite.addMember("Zhanna", "zhanna@hospital.test", staff.RoleDelivery, "Ward 3")
	suite.addMember("Arman", "arman@hospital.test", staff.RoleDelivery, "ward 3")
	suite.addMember("Timur", "timur@hospital.test", staff.RoleDelivery, "Annex")

	suite.Run("should list every member for a manager", func() {
		query, err := queries.NewGetStaffQuery("", staff.RoleManager)
		suite.Require().NoError(err)

		views, err := queries.NewGetStaffQueryHandler(suite.database.DB).Handle(ctx, query)

		suite.Require().NoError(err)
		suite.Len(views, 5)
		suite.Equal("Arman", views[0].Name)
	})

	suite.Run("should list only delivery personnel for pantry staff", func() {
		query, err := queries.NewGetStaffQuery("", staff.RolePantryStaff)
		suite.Require().NoError(err)

		views, err := queries.NewGetStaffQueryHandler(suite.database.DB).Handle(ctx, query)

		suite.Require().NoError(err)
		suite.Len(views, 3)
		for _, view := range views {
			suite.Equal(staff.RoleDelivery, view.Role)
		}
	})

	suite.Run("should match the location case-insensitively", func() {
		query, err := queries.NewGetUsersByLocationAndRoleQuery("Delivery", "WARD 3")
		suite.Require().NoError(err)

		views, err := queries.NewGetUsersByLocationAndRoleQueryHandler(suite.database.DB).Handle(ctx, query)

		suite.Require().NoError(err)
		suite.Require().Len(views, 2)
		suite.Equal("Arman", views[0].Name)
		suite.Equal("Zhanna", views[1].Name)
		suite.Equal("Zhanna phone", views[1].ContactInfo)
	})

	suite.Run("should return nobody for an empty location", func() {
		query, err := queries.NewGetUsersByLocationAndRoleQuery("PantryStaff", "Ward 3")
		suite.Require().NoError(err)

		views, err := queries.NewGetUsersByLocationAndRoleQueryHandler(suite.database.DB).Handle(ctx, query)

		suite.Require().NoError(err)
		suite.Empty(views)
	})
}

func (suite *QueriesIntegrationTestSuite) TestGetUniqueLocationsByRole() {
	suite.addMember("Zhanna", "zhanna@hospital.test", staff.RoleDelivery, "Ward 3")
	suite.addMember("Arman", "arman@hospital.test", staff.RoleDelivery, "ward 3")
	suite.addMember("Timur", "timur@hospital.test", staff.RoleDelivery, "Annex")
	suite.addMember("Cook", "cook@hospital.test", staff.RolePantryStaff, "Main Kitchen")

	query, err := queries.NewGetUniqueLocationsByRoleQuery("Delivery")
	suite.Require().NoError(err)

	suite.Run("should serve a cache hit without the database", func() {
		cache := new(MockLocationCache)
		cache.On("Get", mock.Anything, staff.RoleDelivery).Return([]string{"Cached"}, true, nil).Once()

		handler := queries.NewGetUniqueLocationsByRoleQueryHandler(suite.database.DB, cache, zap.NewNop())
		locations, err := handler.Handle(suite.T().Context(), query)

		suite.Require().NoError(err)
		suite.Equal([]string{"Cached"}, locations)
		cache.AssertExpectations(suite.T())
	})

	suite.Run("should collapse spellings on a miss and fill the cache", func() {
		cache := new(MockLocationCache)
		cache.On("Get", mock.Anything, staff.RoleDelivery).Return(nil, false, nil).Once()
		cache.On("Set", mock.Anything, staff.RoleDelivery, mock.AnythingOfType("[]string")).Return(nil).Once()

		handler := queries.NewGetUniqueLocationsByRoleQueryHandler(suite.database.DB, cache, zap.NewNop())
		locations, err := handler.Handle(suite.T().Context(), query)

		suite.Require().NoError(err)
		suite.Require().Len(locations, 2)
		suite.Equal("Annex", locations[0])
		suite.True(strings.EqualFold("ward 3", locations[1]))
		cache.AssertCalled(suite.T(), "Set", mock.Anything, staff.RoleDelivery, locations)
	})

	suite.Run("should fall back to the database when the cache is down", func() {
		down := errors.New("connection refused")
		cache := new(MockLocationCache)
		cache.On("Get", mock.Anything, staff.RoleDelivery).Return(nil, false, down).Once()
		cache.On("Set", mock.Anything, staff.RoleDelivery, mock.Anything).Return(down).Once()

		handler := queries.NewGetUniqueLocationsByRoleQueryHandler(suite.database.DB, cache, zap.NewNop())
		locations, err := handler.Handle(suite.T().Context(), query)

		suite.Require().NoError(err)
		suite.Len(locations, 2)
	})
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
