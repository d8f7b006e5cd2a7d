package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"ai-tutor-be/internal/entity"
)

// SessionRepository keeps active tutoring sessions in process memory.
// Sessions are ephemeral: expired entries are purged automatically and an
// expired session is indistinguishable from one that never existed.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl, cleanupInterval time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = 1 * time.Hour
	}
	if cleanupInterval <= 0 {
		cleanupInterval = 10 * time.Minute
	}
	return &SessionRepository{
		cache: cache.New(ttl, cleanupInterval),
	}
}

// Save refreshes the session's expiration on every write, so a session stays
// alive as long as the learner keeps interacting with it.
func (r *SessionRepository) Save(session *entity.TutorSession) {
	session.UpdatedAt = time.Now()
	r.cache.Set(session.Id.String(), session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*entity.TutorSession, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*entity.TutorSession), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
