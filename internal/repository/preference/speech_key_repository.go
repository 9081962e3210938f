package preference

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const speechKeyName = "settings:speech_api_key"

// SpeechKeyRepository stores the single optional speech-synthesis credential.
// Absent by default; a PUT overwrites, a DELETE clears.
type SpeechKeyRepository struct {
	rdb *redis.Client
}

func NewSpeechKeyRepository(rdb *redis.Client) *SpeechKeyRepository {
	return &SpeechKeyRepository{rdb: rdb}
}

// Get returns the stored key and whether one is configured.
func (r *SpeechKeyRepository) Get(ctx context.Context) (string, bool, error) {
	val, err := r.rdb.Get(ctx, speechKeyName).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return val, val != "", nil
}

func (r *SpeechKeyRepository) Set(ctx context.Context, apiKey string) error {
	return r.rdb.Set(ctx, speechKeyName, apiKey, 0).Err()
}

func (r *SpeechKeyRepository) Delete(ctx context.Context) error {
	return r.rdb.Del(ctx, speechKeyName).Err()
}
