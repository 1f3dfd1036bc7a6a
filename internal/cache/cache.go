package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/coocood/freecache"
)

const megabyte = 1024 * 1024

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Del(key string) bool
	Clear()
}

var _ Cache = (*FreeCache)(nil)

// FreeCache is an in-process byte cache with a fixed memory budget.
type FreeCache struct {
	mainCache *freecache.Cache
}

func NewFreeCache(sizeMB int) *FreeCache {
	if sizeMB <= 0 {
		sizeMB = 1
	}
	return &FreeCache{
		mainCache: freecache.NewCache(sizeMB * megabyte),
	}
}

func (fc *FreeCache) Get(key string) ([]byte, bool) {
	value, err := fc.mainCache.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	return value, true
}

// Set with a zero ttl keeps the entry until evicted.
func (fc *FreeCache) Set(key string, value []byte, ttl time.Duration) error {
	return fc.mainCache.Set([]byte(key), value, int(ttl.Seconds()))
}

func (fc *FreeCache) Del(key string) bool {
	return fc.mainCache.Del([]byte(key))
}

func (fc *FreeCache) Clear() {
	fc.mainCache.Clear()
}

func (fc *FreeCache) EntryCount() int64 {
	return fc.mainCache.EntryCount()
}

var ErrMiss = errors.New("cache miss")

// GetJSON decodes the cached value into v.
func GetJSON(c Cache, key string, v any) error {
	value, ok := c.Get(key)
	if !ok {
		return ErrMiss
	}
	if err := json.Unmarshal(value, v); err != nil {
		return fmt.Errorf("unmarshal cached [%s]: %w", key, err)
	}
	return nil
}

func SetJSON(c Cache, key string, v any, ttl time.Duration) error {
	value, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal [%s]: %w", key, err)
	}
	return c.Set(key, value, ttl)
}
