package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"travelstore/internal/booking"
	"travelstore/internal/domain"
)

// Session pairs one workflow instance with its id. All workflow access goes
// through Do so read-modify-write sequences apply atomically even with
// concurrent requests on the same session.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu sync.Mutex
	wf *booking.Workflow
}

func (s *Session) Do(fn func(wf *booking.Workflow) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.wf)
}

// SessionInfo is the admin-facing view of a session; no form data leaks here.
type SessionInfo struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Step      int       `json:"step"`
	Confirmed bool      `json:"confirmed"`
}

// SessionService owns the in-memory registry of booking sessions. Nothing
// survives the process; an abandoned session is simply dropped.
type SessionService struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionService() *SessionService {
	return &SessionService{sessions: map[string]*Session{}}
}

// Create starts a fresh booking session with an empty workflow.
func (s *SessionService) Create() *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		wf:        booking.NewWorkflow(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

func (s *SessionService) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.NotFoundError{Resource: "booking session"}
	}
	return sess, nil
}

// Drop removes a session from the registry (explicit abandon / reset-and-leave).
func (s *SessionService) Drop(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *SessionService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// List reports all active sessions for staff inspection.
func (s *SessionService) List() []SessionInfo {
	s.mu.RLock()
	sessions := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.RUnlock()

	out := make([]SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		info := SessionInfo{ID: sess.ID, CreatedAt: sess.CreatedAt}
		_ = sess.Do(func(wf *booking.Workflow) error {
			st := wf.State()
			info.Step = st.CurrentStep
			info.Confirmed = st.BookingID != ""
			return nil
		})
		out = append(out, info)
	}
	return out
}
