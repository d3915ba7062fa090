package cache

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var boltBucket = []byte("catalog")

// BoltCache keeps cache entries in a local bbolt file so they survive
// restarts. Each entry is prefixed with an 8-byte big-endian expiry
// timestamp in unix nanoseconds, zero meaning no expiry.
type BoltCache struct {
	db *bolt.DB
}

func NewBoltCache(path string) (*BoltCache, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt cache at %s: %w", path, err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("create cache bucket: %w", err)
	}

	return &BoltCache{db: db}, nil
}

func (b *BoltCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	var data []byte

	err := b.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(boltBucket).Get([]byte(key))
		if raw == nil {
			return nil
		}

		payload, live := decodeEntry(raw)
		if !live {
			return nil
		}

		// raw is only valid inside the transaction.
		data = make([]byte, len(payload))
		copy(data, payload)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("bolt get %s: %w", key, err)
	}

	if data == nil {
		return false, nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("unmarshal cached value for %s: %w", key, err)
	}

	return true, nil
}

func (b *BoltCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value for %s: %w", key, err)
	}

	err = b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Put([]byte(key), encodeEntry(data, ttl))
	})
	if err != nil {
		return fmt.Errorf("bolt set %s: %w", key, err)
	}

	return nil
}

func (b *BoltCache) Delete(_ context.Context, keys ...string) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(boltBucket)
		for _, key := range keys {
			if err := bucket.Delete([]byte(key)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("bolt delete: %w", err)
	}

	return nil
}

func (b *BoltCache) Ping(_ context.Context) error {
	return b.db.View(func(*bolt.Tx) error { return nil })
}

func (b *BoltCache) Close() error {
	return b.db.Close()
}

func encodeEntry(payload []byte, ttl time.Duration) []byte {
	buf := make([]byte, 8+len(payload))
	if ttl > 0 {
		binary.BigEndian.PutUint64(buf, uint64(time.Now().Add(ttl).UnixNano()))
	}
	copy(buf[8:], payload)
	return buf
}

// decodeEntry splits an entry into its payload and reports whether it is
// still live. Expired entries are left in place and replaced on the next
// write to the same key.
func decodeEntry(raw []byte) ([]byte, bool) {
	if len(raw) < 8 {
		return nil, false
	}

	expiry := binary.BigEndian.Uint64(raw)
	if expiry != 0 && time.Now().UnixNano() > int64(expiry) {
		return nil, false
	}

	return raw[8:], true
}
