package helpers

import (
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// MockRedis represents a mocked Redis connection for testing
type MockRedis struct {
	Client *redis.Client
	Mock   redismock.ClientMock
}

// NewMockRedis creates a new mock Redis client
func NewMockRedis() *MockRedis {
	client, mock := redismock.NewClientMock()

	return &MockRedis{
		Client: client,
		Mock:   mock,
	}
}

// Close closes the mock Redis connection
func (m *MockRedis) Close() error {
	return m.Client.Close()
}

// ExpectationsWereMet checks if all expected Redis interactions were met
func (m *MockRedis) ExpectationsWereMet(t *testing.T) {
	require.NoError(t, m.Mock.ExpectationsWereMet())
}

// ExpectGetValue sets up expectation for reading an existing key
func (m *MockRedis) ExpectGetValue(key, value string) {
	m.Mock.ExpectGet(key).SetVal(value)
}

// ExpectGetMissing sets up expectation for reading an absent key
func (m *MockRedis) ExpectGetMissing(key string) {
	m.Mock.ExpectGet(key).RedisNil()
}

// ExpectPersistentSet sets up expectation for a SET without expiry
func (m *MockRedis) ExpectPersistentSet(key, value string) {
	m.Mock.ExpectSet(key, value, 0).SetVal("OK")
}
