package redis_test

import (
	"context"
	"testing"
	"time"

	redisadapter "hospitalfood/internal/adapters/out/redis"
	"hospitalfood/internal/core/domain/model/staff"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type LocationCacheIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *redis.Client
	cache     *redisadapter.LocationCache
}

func (suite *LocationCacheIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.container = container
	suite.Require().NoError(err)

	addr, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)

	suite.client, err = redisadapter.Connect(ctx, addr, "", 0)
	suite.Require().NoError(err)
}

func (suite *LocationCacheIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushDB(context.Background()).Err())
	suite.cache = redisadapter.NewLocationCache(suite.client, time.Minute)
}

func (suite *LocationCacheIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		suite.Require().NoError(suite.client.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *LocationCacheIntegrationTestSuite) TestRoundTrip() {
	ctx := suite.T().Context()

	suite.Run("should miss an empty cache", func() {
		locations, ok, err := suite.cache.Get(ctx, staff.RoleDelivery)

		suite.Require().NoError(err)
		suite.False(ok)
		suite.Nil(locations)
	})

	suite.Run("should return what was stored for the role only", func() {
		suite.Require().NoError(suite.cache.Set(ctx, staff.RoleDelivery, []string{"Annex", "Ward 3"}))

		locations, ok, err := suite.cache.Get(ctx, staff.RoleDelivery)
		suite.Require().NoError(err)
		suite.True(ok)
		suite.Equal([]string{"Annex", "Ward 3"}, locations)

		_, ok, err = suite.cache.Get(ctx, staff.RolePantryStaff)
		suite.Require().NoError(err)
		suite.False(ok)
	})

	suite.Run("should expire entries", func() {
		ttl, err := suite.client.TTL(ctx, "locations:Delivery").Result()

		suite.Require().NoError(err)
		suite.Greater(ttl, time.Duration(0))
		suite.LessOrEqual(ttl, time.Minute)
	})

	suite.Run("should store an empty list as a hit", func() {
		suite.Require().NoError(suite.cache.Set(ctx, staff.RoleManager, nil))

		locations, ok, err := suite.cache.Get(ctx, staff.RoleManager)
		suite.Require().NoError(err)
		suite.True(ok)
		suite.Empty(locations)
	})

	suite.Run("should forget invalidated roles", func() {
		suite.Require().NoError(suite.cache.Invalidate(ctx, staff.RoleDelivery))

		_, ok, err := suite.cache.Get(ctx, staff.RoleDelivery)
		suite.Require().NoError(err)
		suite.False(ok)
	})

	suite.Run("should report a corrupt entry", func() {
		suite.Require().NoError(suite.client.Set(ctx, "locations:PantryStaff", "not json", 0).Err())

		_, ok, err := suite.cache.Get(ctx, staff.RolePantryStaff)
		suite.Require().Error(err)
		suite.False(ok)
	})
}

func TestLocationCacheIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LocationCacheIntegrationTestSuite))
}
