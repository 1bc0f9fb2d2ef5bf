//go:build integration
// +build integration

package lock

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

// RedisLockerTestSuite runs the locker against a throwaway Redis container
type RedisLockerTestSuite struct {
	suite.Suite
	pool     *dockertest.Pool
	resource *dockertest.Resource
	client   *redis.Client
	locker   *RedisLocker
}

func (suite *RedisLockerTestSuite) SetupSuite() {
	pool, err := dockertest.NewPool("")
	suite.Require().NoError(err, "could not connect to docker")
	suite.pool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	suite.Require().NoError(err, "could not start redis")
	suite.resource = resource

	addr := fmt.Sprintf("127.0.0.1:%s", resource.GetPort("6379/tcp"))
	pool.MaxWait = time.Minute
	suite.Require().NoError(pool.Retry(func() error {
		client, err := NewRedisClient(addr, "", 0)
		if err != nil {
			return err
		}
		suite.client = client
		return nil
	}))

	suite.locker = NewRedisLocker(suite.client, 2*time.Second)
}

func (suite *RedisLockerTestSuite) TearDownSuite() {
	if suite.client != nil {
		_ = suite.client.Close()
	}
	if suite.pool != nil && suite.resource != nil {
		_ = suite.pool.Purge(suite.resource)
	}
}

func (suite *RedisLockerTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushDB(context.Background()).Err())
}

func (suite *RedisLockerTestSuite) TestAcquireIsExclusive() {
	ctx := context.Background()

	release, err := suite.locker.Acquire(ctx, "period:a")
	suite.Require().NoError(err)

	_, err = suite.locker.Acquire(ctx, "period:a")
	suite.ErrorIs(err, ErrLocked)

	release()

	release, err = suite.locker.Acquire(ctx, "period:a")
	suite.Require().NoError(err)
	release()
}

func (suite *RedisLockerTestSuite) TestReleaseDoesNotDropForeignLease() {
	ctx := context.Background()

	release, err := suite.locker.Acquire(ctx, "period:b")
	suite.Require().NoError(err)

	// simulate lease expiry followed by another holder taking the key
	suite.Require().NoError(suite.client.Set(ctx, keyPrefix+"period:b", "someone-else", time.Minute).Err())

	release()

	value, err := suite.client.Get(ctx, keyPrefix+"period:b").Result()
	suite.Require().NoError(err)
	suite.Equal("someone-else", value)
}

func (suite *RedisLockerTestSuite) TestLeaseExpires() {
	ctx := context.Background()

	_, err := suite.locker.Acquire(ctx, "period:c")
	suite.Require().NoError(err)

	suite.Eventually(func() bool {
		release, err := suite.locker.Acquire(ctx, "period:c")
		if err != nil {
			return false
		}
		release()
		return true
	}, 5*time.Second, 200*time.Millisecond)
}

func (suite *RedisLockerTestSuite) TestPing() {
	suite.NoError(suite.locker.Ping(context.Background()))
}

func TestRedisLockerTestSuite(t *testing.T) {
	suite.Run(t, new(RedisLockerTestSuite))
}
