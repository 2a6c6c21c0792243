package session

import (
	"sync"

	"github.com/google/uuid"

	"tent-on-rent-api/models"
)

// Store keeps all live sessions in memory, keyed by session id. The
// original demo is single-threaded; the HTTP server is not, so every
// read-modify-write happens under the store lock.
type Store struct {
	mu          sync.RWMutex
	sessions    map[string]models.Session
	defaultCity string
}

func NewStore(defaultCity string) *Store {
	return &Store{
		sessions:    make(map[string]models.Session),
		defaultCity: defaultCity,
	}
}

// Create starts a fresh session on the splash screen and returns its id.
func (st *Store) Create() (string, models.Session) {
	id := uuid.NewString()
	s := New(st.defaultCity)
	st.mu.Lock()
	st.sessions[id] = s
	st.mu.Unlock()
	return id, s
}

// Get returns a snapshot of the session, false if the id is unknown.
func (st *Store) Get(id string) (models.Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Apply runs the reducer on the stored session atomically and returns the
// resulting state.
func (st *Store) Apply(id string, a Action) (models.Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return models.Session{}, false
	}
	s = Apply(s, a)
	st.sessions[id] = s
	return s, true
}

// BeginLocationChange issues the sequence number for a new
// detect-current-location run. Any result carrying an older sequence —
// because another run started or the user picked a city manually — is
// stale and will be discarded by the reducer.
func (st *Store) BeginLocationChange(id string) (uint64, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return 0, false
	}
	s.LocationSeq++
	st.sessions[id] = s
	return s.LocationSeq, true
}
