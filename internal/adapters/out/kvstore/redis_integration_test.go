package kvstore_test

import (
	"context"
	"testing"
	"time"

	"pos/internal/adapters/out/kvstore"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// RedisStoreTestSuite runs the store contract against a real redis.
type RedisStoreTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *redis.Client
}

func (s *RedisStoreTestSuite) SetupSuite() {
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
	s.Require().NoError(err)
	s.container = container

	endpoint, err := container.Endpoint(ctx, "")
	s.Require().NoError(err)

	s.client = redis.NewClient(&redis.Options{Addr: endpoint})
	s.Require().NoError(s.client.Ping(ctx).Err())
}

func (s *RedisStoreTestSuite) SetupTest() {
	s.Require().NoError(s.client.FlushDB(context.Background()).Err())
}

func (s *RedisStoreTestSuite) TearDownSuite() {
	if s.client != nil {
		s.Require().NoError(s.client.Close())
	}
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *RedisStoreTestSuite) TestContract() {
	runStoreContract(s.T(), context.Background(), kvstore.NewRedisStore(s.client, "pos:"))
}

func (s *RedisStoreTestSuite) TestPrefixIsApplied() {
	ctx := context.Background()
	store := kvstore.NewRedisStore(s.client, "pos:")

	s.Require().NoError(store.Set(ctx, "orders:b1", []byte(`[]`)))

	raw, err := s.client.Get(ctx, "pos:orders:b1").Result()
	s.Require().NoError(err)
	s.Equal(`[]`, raw)
	s.Equal(int64(0), s.client.Exists(ctx, "orders:b1").Val())
}

func TestRedisStoreTestSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreTestSuite))
}
