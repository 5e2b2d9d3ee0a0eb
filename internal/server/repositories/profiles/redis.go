package profiles

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/adminsettings/internal/common"
	"github.com/dmitrijs2005/adminsettings/internal/server/models"
	"github.com/dmitrijs2005/adminsettings/internal/timex"
	"github.com/redis/go-redis/v9"
)

const (
	fieldFirstName = "first_name"
	fieldLastName  = "last_name"
	fieldUpdatedAt = "updated_at"
)

// mergeProfileScript writes ARGV field/value pairs only if the hash exists.
const mergeProfileScript = `
if redis.call("EXISTS", KEYS[1]) == 0 then
  return 0
end
redis.call("HSET", KEYS[1], unpack(ARGV))
return 1
`

var mergeProfileLua = redis.NewScript(mergeProfileScript)

// RedisRepository keeps each profile in a hash at <prefix><collection>:<userID>.
type RedisRepository struct {
	rdb    redis.UniversalClient
	prefix string
}

func NewRedisRepository(rdb redis.UniversalClient, prefix string) *RedisRepository {
	return &RedisRepository{rdb: rdb, prefix: prefix}
}

func (r *RedisRepository) key(userID string) string {
	return r.prefix + common.ProfilesCollection + ":" + userID
}

func (r *RedisRepository) Get(ctx context.Context, userID string) (*models.Profile, error) {
	vals, err := r.rdb.HGetAll(ctx, r.key(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}
	if len(vals) == 0 {
		return nil, common.ErrorNotFound
	}

	p := &models.Profile{
		UserID:    userID,
		FirstName: vals[fieldFirstName],
		LastName:  vals[fieldLastName],
	}
	if s := vals[fieldUpdatedAt]; s != "" {
		t, err := timex.ParseISO(s)
		if err != nil {
			return nil, fmt.Errorf("corrupt profile %s: %w", userID, err)
		}
		p.UpdatedAt = t
	}
	return p, nil
}

func (r *RedisRepository) Create(ctx context.Context, p *models.Profile) error {
	err := r.rdb.HSet(ctx, r.key(p.UserID),
		fieldFirstName, p.FirstName,
		fieldLastName, p.LastName,
		fieldUpdatedAt, timex.FormatISO(updatedAtOrNow(p.UpdatedAt)),
	).Err()
	if err != nil {
		return fmt.Errorf("redis error: %w", err)
	}
	return nil
}

func (r *RedisRepository) Merge(ctx context.Context, userID string, patch models.ProfilePatch) error {
	args := []any{fieldUpdatedAt, timex.FormatISO(updatedAtOrNow(patch.UpdatedAt))}
	if patch.FirstName != nil {
		args = append(args, fieldFirstName, *patch.FirstName)
	}
	if patch.LastName != nil {
		args = append(args, fieldLastName, *patch.LastName)
	}

	updated, err := mergeProfileLua.Run(ctx, r.rdb, []string{r.key(userID)}, args...).Int()
	if err != nil {
		return fmt.Errorf("redis error: %w", err)
	}
	if updated == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func updatedAtOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}
