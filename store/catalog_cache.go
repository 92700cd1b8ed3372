package store

import (
	"log"
	"time"

	"github.com/priyansh563/studybot/types"
)

// CachedCatalog is a read-through Redis cache in front of a CatalogStore.
// Menu lookups dominate the read traffic and the content table only
// changes on admin uploads, so entries live for a short TTL and the keys
// touched by an upload are dropped eagerly. Cache trouble is logged and
// falls back to the inner store, never surfaces to the user.
type CachedCatalog struct {
	inner types.CatalogStore
	redis *RedisClient
	ttl   time.Duration
}

func NewCachedCatalog(inner types.CatalogStore, redis *RedisClient, ttlMinutes int) *CachedCatalog {
	if ttlMinutes <= 0 {
		ttlMinutes = 5
	}
	return &CachedCatalog{
		inner: inner,
		redis: redis,
		ttl:   time.Duration(ttlMinutes) * time.Minute,
	}
}

func (c *CachedCatalog) AddItem(item types.ContentItem) (int64, error) {
	id, err := c.inner.AddItem(item)
	if err != nil {
		return 0, err
	}
	if err := c.redis.Del(
		c.redis.generateKey("subjects", item.Grade, item.Category),
		c.redis.generateKey("chapters", item.Grade, item.Category, item.Subject),
		c.redis.generateKey("items", item.Grade, item.Category, item.Subject, item.Chapter),
	); err != nil {
		log.Printf("Catalog cache invalidation failed: %v", err)
	}
	return id, nil
}

func (c *CachedCatalog) ListSubjects(grade, category string) ([]string, error) {
	key := c.redis.generateKey("subjects", grade, category)
	var cached []string
	if err := c.redis.Get(key, &cached); err == nil {
		return cached, nil
	} else if err != ErrCacheMiss {
		log.Printf("Catalog cache read failed: %v", err)
	}

	subjects, err := c.inner.ListSubjects(grade, category)
	if err != nil {
		return nil, err
	}
	if err := c.redis.Set(key, subjects, c.ttl); err != nil {
		log.Printf("Catalog cache write failed: %v", err)
	}
	return subjects, nil
}

func (c *CachedCatalog) ListChapters(grade, category, subject string) ([]string, error) {
	key := c.redis.generateKey("chapters", grade, category, subject)
	var cached []string
	if err := c.redis.Get(key, &cached); err == nil {
		return cached, nil
	} else if err != ErrCacheMiss {
		log.Printf("Catalog cache read failed: %v", err)
	}

	chapters, err := c.inner.ListChapters(grade, category, subject)
	if err != nil {
		return nil, err
	}
	if err := c.redis.Set(key, chapters, c.ttl); err != nil {
		log.Printf("Catalog cache write failed: %v", err)
	}
	return chapters, nil
}

func (c *CachedCatalog) ListItems(grade, category, subject, chapter string) ([]types.ContentItem, error) {
	key := c.redis.generateKey("items", grade, category, subject, chapter)
	var cached []types.ContentItem
	if err := c.redis.Get(key, &cached); err == nil {
		return cached, nil
	} else if err != ErrCacheMiss {
		log.Printf("Catalog cache read failed: %v", err)
	}

	items, err := c.inner.ListItems(grade, category, subject, chapter)
	if err != nil {
		return nil, err
	}
	if err := c.redis.Set(key, items, c.ttl); err != nil {
		log.Printf("Catalog cache write failed: %v", err)
	}
	return items, nil
}
