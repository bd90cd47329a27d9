package completion

import (
	"Fintar/pkg/redis"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type memoryCache struct {
	values map[string]string
	ttls   map[string]time.Duration
	getErr error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memoryCache) Get(_ context.Context, key string) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	v, ok := m.values[key]
	if !ok {
		return "", redis.ErrCacheMiss
	}
	return v, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	m.values[key] = value
	m.ttls[key] = ttl
	return nil
}

type countingClient struct {
	calls int
	reply string
	err   error
}

func (c *countingClient) Complete(_ context.Context, req Request) (string, error) {
	c.calls++
	return c.reply + req.UserMessage, c.err
}

func (c *countingClient) Provider() string { return "test" }
func (c *countingClient) Model() string    { return "test-model" }

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestCachedClientReusesReplies(t *testing.T) {
	next := &countingClient{reply: "reply:"}
	cache := newMemoryCache()
	client := NewCachedClient(next, cache, 10*time.Minute, quietLogger())

	req := Request{SystemPrompt: "prompt", UserMessage: "halo"}
	first, err := client.Complete(context.Background(), req)
	require.NoError(t, err)
	second, err := client.Complete(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "reply:halo", first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, next.calls)

	_, err = client.Complete(context.Background(), Request{SystemPrompt: "other prompt", UserMessage: "halo"})
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)

	require.Len(t, cache.ttls, 2)
	for key, ttl := range cache.ttls {
		assert.True(t, strings.HasPrefix(key, "fintar:completion:"))
		assert.Equal(t, 10*time.Minute, ttl)
	}
	assert.Equal(t, "test", client.Provider())
	assert.Equal(t, "test-model", client.Model())
}

func TestCachedClientDoesNotCacheFailures(t *testing.T) {
	next := &countingClient{err: &ServiceError{Provider: "test", Status: 500, Message: "boom"}}
	cache := newMemoryCache()
	client := NewCachedClient(next, cache, time.Minute, quietLogger())

	_, err := client.Complete(context.Background(), Request{UserMessage: "halo"})
	require.Error(t, err)
	assert.Empty(t, cache.values)
}

func TestCachedClientSurvivesCacheOutage(t *testing.T) {
	next := &countingClient{reply: "ok:"}
	cache := newMemoryCache()
	cache.getErr = errors.New("connection refused")
	client := NewCachedClient(next, cache, time.Minute, quietLogger())

	reply, err := client.Complete(context.Background(), Request{UserMessage: "halo"})
	require.NoError(t, err)
	assert.Equal(t, "ok:halo", reply)
	assert.Equal(t, 1, next.calls)
}

func TestServiceErrorMessage(t *testing.T) {
	err := &ServiceError{Provider: "openrouter", Status: 402, Message: "insufficient credits", Err: ErrEmptyResponse}
	assert.Equal(t, "openrouter completion failed with status 402: insufficient credits", err.Error())
	assert.ErrorIs(t, err, ErrEmptyResponse)

	err = &ServiceError{Provider: "gemini", Message: "timeout"}
	assert.Equal(t, "gemini completion failed: timeout", err.Error())
}
