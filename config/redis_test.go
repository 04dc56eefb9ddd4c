package config

import (
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestConnectRedis_SkippedInTestEnv(t *testing.T) {
	t.Setenv("APPENV", "test")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	ResetForTest()
	ResetRedisClientForTest()
	t.Cleanup(func() {
		ResetForTest()
		ResetRedisClientForTest()
	})

	rdb, err := ConnectRedis()
	assert.NoError(t, err)
	assert.Nil(t, rdb)
	assert.Nil(t, GetRedisClient())
}

func TestConnectRedis_NotConfigured(t *testing.T) {
	t.Setenv("APPENV", "development")
	t.Setenv("JWTSECRET", "secret")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REDISADDR", "")
	ResetForTest()
	ResetRedisClientForTest()
	t.Cleanup(func() {
		ResetForTest()
		ResetRedisClientForTest()
	})

	rdb, err := ConnectRedis()
	assert.NoError(t, err)
	assert.Nil(t, rdb)
}

func TestSetRedisClientForTest(t *testing.T) {
	client, _ := redismock.NewClientMock()
	defer client.Close()

	SetRedisClientForTest(client)
	t.Cleanup(ResetRedisClientForTest)
	assert.Same(t, client, GetRedisClient())

	ResetRedisClientForTest()
	assert.Nil(t, GetRedisClient())
}
