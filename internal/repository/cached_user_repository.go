package repository

import (
	"context"
	"time"

	"github.com/ShirinKhan1/system-design/internal/cache"
	"github.com/ShirinKhan1/system-design/internal/models"
	goredis "github.com/redis/go-redis/v9"
)

const userKeyPrefix = "user:"

// cachedUser is the cache snapshot of a user. models.User hides the
// password hash from JSON responses, so the snapshot carries its own tags:
// a cache-hit login still has to verify credentials against the hash.
type cachedUser struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Age          *int   `json:"age,omitempty"`
}

func toSnapshot(u *models.User) *cachedUser {
	return &cachedUser{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Age:          u.Age,
	}
}

func (c *cachedUser) toUser() *models.User {
	return &models.User{
		ID:           c.ID,
		Username:     c.Username,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		Age:          c.Age,
	}
}

// userCache is the slice of the cache API the accessor needs. Satisfied by
// *cache.Cache[cachedUser]; tests use a JSON-faithful in-memory fake.
type userCache interface {
	Get(ctx context.Context, key string) (*cachedUser, bool)
	Set(ctx context.Context, key string, value *cachedUser)
}

// CachedUserRepository wraps a UserStore with a read-through Redis cache.
//
// Reads consult the cache first and fall back to the store on a miss,
// populating the cache on the way out. Creates write through to the cache
// unconditionally. There is no invalidation path: users are never updated
// or deleted, so an entry can only go stale by expiring.
type CachedUserRepository struct {
	store UserStore
	cache userCache
}

func NewCachedUserRepository(store UserStore, redisClient *goredis.Client, ttl time.Duration) *CachedUserRepository {
	return &CachedUserRepository{
		store: store,
		cache: cache.New[cachedUser](redisClient, ttl),
	}
}

// GetByUsername returns the cached user snapshot when present, otherwise
// reads the system of record and warms the cache before returning.
func (r *CachedUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	key := userKeyPrefix + username

	if snapshot, ok := r.cache.Get(ctx, key); ok {
		return snapshot.toUser(), nil
	}

	user, err := r.store.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	r.cache.Set(ctx, key, toSnapshot(user))
	return user, nil
}

// Create inserts the user and writes the resulting record into the cache
// under its username key.
func (r *CachedUserRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.store.Insert(ctx, user); err != nil {
		return err
	}
	r.cache.Set(ctx, userKeyPrefix+user.Username, toSnapshot(user))
	return nil
}

// List always reads the system of record; listings are not cached.
func (r *CachedUserRepository) List(ctx context.Context) ([]models.User, error) {
	return r.store.List(ctx)
}
