package memory

import (
	"time"

	"github.com/Shravansapate/legislate-voice-aid/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// ConversationRepository keeps conversations in process memory. Transcripts
// are session-scoped by design: an expired conversation simply disappears.
type ConversationRepository struct {
	cache *cache.Cache
}

func NewConversationRepository() *ConversationRepository {
	// Default expiration of 1 hour, purge sweep every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &ConversationRepository{
		cache: c,
	}
}

// Save stores the conversation and refreshes its expiry window.
func (r *ConversationRepository) Save(conversation *entity.Conversation) {
	r.cache.Set(conversation.Id.String(), conversation, cache.DefaultExpiration)
}

func (r *ConversationRepository) Get(id uuid.UUID) (*entity.Conversation, bool) {
	if x, found := r.cache.Get(id.String()); found {
		return x.(*entity.Conversation), true
	}
	return nil, false
}

func (r *ConversationRepository) Delete(id uuid.UUID) {
	r.cache.Delete(id.String())
}
