package sessions

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-PublicBooker/internal/booker"
	"github.com/m04kA/SMC-PublicBooker/internal/domain"
	"github.com/m04kA/SMC-PublicBooker/internal/service/sessions/models"
	"github.com/m04kA/SMC-PublicBooker/internal/views"
)

// session состояние букера одного посетителя
// Все поля, кроме id, token и calendar, защищены mu
type session struct {
	mu sync.Mutex

	id       string
	token    string
	calendar *domain.CalendarInfo

	state         booker.State
	month         domain.MonthAvailability
	monthDegraded bool
	day           *domain.DaySlots
	week          []domain.DaySlots
	weekStart     time.Time

	timeFormat views.TimeFormat
	display    *time.Location

	submitting bool
	submission *models.SubmissionResponse

	seq *booker.Sequencer
}

type storeEntry struct {
	session   *session
	expiresAt time.Time
}

// store хранилище сессий в памяти с истечением по TTL
// Каждое обращение к сессии продлевает ее жизнь
type store struct {
	mu       sync.RWMutex
	sessions map[string]*storeEntry
	ttl      time.Duration
	limit    int
}

func newStore(ttl time.Duration, limit int) *store {
	return &store{
		sessions: make(map[string]*storeEntry),
		ttl:      ttl,
		limit:    limit,
	}
}

func (st *store) add(sess *session, now time.Time) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.limit > 0 && len(st.sessions) >= st.limit {
		return ErrTooManySessions
	}
	st.sessions[sess.id] = &storeEntry{session: sess, expiresAt: now.Add(st.ttl)}
	return nil
}

func (st *store) get(id string, now time.Time) (*session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	entry, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	if !now.Before(entry.expiresAt) {
		delete(st.sessions, id)
		return nil, false
	}
	entry.expiresAt = now.Add(st.ttl)
	return entry.session, true
}

func (st *store) remove(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sessions[id]; !ok {
		return false
	}
	delete(st.sessions, id)
	return true
}

// evictExpired удаляет истекшие сессии и возвращает количество удаленных
func (st *store) evictExpired(now time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	evicted := 0
	for id, entry := range st.sessions {
		if !now.Before(entry.expiresAt) {
			delete(st.sessions, id)
			evicted++
		}
	}
	return evicted
}

func (st *store) len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
