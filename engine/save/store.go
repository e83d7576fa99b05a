package save

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a save slot does not exist.
var ErrNotFound = errors.New("save slot not found")

// DefaultSlot is used when no slot name is given.
const DefaultSlot = "quicksave"

// Store persists encoded saves by slot name.
type Store interface {
	Save(ctx context.Context, name string, data []byte) error
	Load(ctx context.Context, name string) ([]byte, error)
}

// FileStore keeps each slot as <Dir>/<name>.json.
type FileStore struct {
	Dir string
}

// NewFileStore creates a file store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (f *FileStore) Save(_ context.Context, name string, data []byte) error {
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.path(name), data, 0o644)
}

func (f *FileStore) Load(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(f.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return data, err
}

func (f *FileStore) path(name string) string {
	return filepath.Join(f.Dir, filepath.Base(name)+".json")
}

const redisKeyPrefix = "unionroster:save:"

// RedisStore keeps each slot as a string value under unionroster:save:<name>.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisStore creates a store on an existing client. A zero ttl keeps
// saves forever.
func NewRedisStore(client redis.UniversalClient, ttl time.Duration) (*RedisStore, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

// DialRedis creates a store on a fresh client for addr.
func DialRedis(addr string) (*RedisStore, error) {
	if addr == "" {
		return nil, errors.New("redis: endpoint is required")
	}
	return NewRedisStore(redis.NewClient(&redis.Options{Addr: addr}), 0)
}

func (r *RedisStore) Save(ctx context.Context, name string, data []byte) error {
	if err := r.client.Set(ctx, redisKeyPrefix+name, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", name, err)
	}
	return nil
}

func (r *RedisStore) Load(ctx context.Context, name string) ([]byte, error) {
	data, err := r.client.Get(ctx, redisKeyPrefix+name).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", name, err)
	}
	return data, nil
}
