package completion

import (
	"Fintar/pkg/redis"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const cacheKeyPrefix = "fintar:completion:"

type cachedClient struct {
	next  Client
	cache redis.ICache
	ttl   time.Duration
	log   *logrus.Logger
}

// NewCachedClient wraps next so identical prompts within ttl are answered
// from the cache. Cache failures are logged and never fail the call.
func NewCachedClient(next Client, cache redis.ICache, ttl time.Duration, log *logrus.Logger) Client {
	return &cachedClient{
		next:  next,
		cache: cache,
		ttl:   ttl,
		log:   log,
	}
}

func (c *cachedClient) Provider() string { return c.next.Provider() }
func (c *cachedClient) Model() string    { return c.next.Model() }

func (c *cachedClient) Complete(ctx context.Context, req Request) (string, error) {
	key := c.key(req)

	cached, err := c.cache.Get(ctx, key)
	switch {
	case err == nil && cached != "":
		c.log.WithField("key", key).Debug("Completion cache hit")
		return cached, nil
	case err != nil && !errors.Is(err, redis.ErrCacheMiss):
		c.log.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Warn("Completion cache read failed")
	}

	reply, err := c.next.Complete(ctx, req)
	if err != nil {
		return "", err
	}

	if err := c.cache.Set(ctx, key, reply, c.ttl); err != nil {
		c.log.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Warn("Completion cache write failed")
	}

	return reply, nil
}

func (c *cachedClient) key(req Request) string {
	sum := sha256.Sum256([]byte(strings.Join([]string{
		c.next.Provider(),
		c.next.Model(),
		req.SystemPrompt,
		req.UserMessage,
	}, "\x00")))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
