package store

import (
	"context"
	"sync"

	"github.com/yourname/wellnesstracker/internal"
)

// MemoryStore keeps users and wellness logs in process memory. It is the
// default backend; everything is lost on restart.
type MemoryStore struct {
	mu           sync.RWMutex
	usersByEmail map[string]*internal.UserRecord
	usersByID    map[string]*internal.UserRecord
	logs         map[string]*internal.WellnessLog
	userLogIndex map[string][]*internal.WellnessLog // newest first
	logger       internal.Logger
}

func NewMemoryStore(logger internal.Logger) *MemoryStore {
	return &MemoryStore{
		usersByEmail: make(map[string]*internal.UserRecord),
		usersByID:    make(map[string]*internal.UserRecord),
		logs:         make(map[string]*internal.WellnessLog),
		userLogIndex: make(map[string][]*internal.WellnessLog),
		logger:       logger,
	}
}

// Reset drops all state; used for test isolation.
func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usersByEmail = make(map[string]*internal.UserRecord)
	s.usersByID = make(map[string]*internal.UserRecord)
	s.logs = make(map[string]*internal.WellnessLog)
	s.userLogIndex = make(map[string][]*internal.WellnessLog)
}

// --- UserRepository ---

func (s *MemoryStore) CreateUser(ctx context.Context, u *internal.UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.usersByEmail[u.Email]; exists {
		return ErrDuplicateEmail
	}
	rec := *u
	s.usersByEmail[rec.Email] = &rec
	s.usersByID[rec.ID] = &rec
	return nil
}

func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*internal.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.usersByEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	rec := *u
	return &rec, nil
}

func (s *MemoryStore) GetUserByID(ctx context.Context, id string) (*internal.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.usersByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	rec := *u
	return &rec, nil
}

// --- WellnessLogRepository ---

func (s *MemoryStore) SaveLog(ctx context.Context, log *internal.WellnessLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := *log
	s.logs[rec.ID] = &rec

	// Insert into the user index keeping descending CreatedAt order.
	logs := s.userLogIndex[rec.UserID]
	inserted := false
	for i, existing := range logs {
		if existing.CreatedAt.Before(rec.CreatedAt) {
			logs = append(logs[:i], append([]*internal.WellnessLog{&rec}, logs[i:]...)...)
			inserted = true
			break
		}
	}
	if !inserted {
		logs = append(logs, &rec)
	}
	s.userLogIndex[rec.UserID] = logs
	return nil
}

func (s *MemoryStore) ListLogs(ctx context.Context, userID string) ([]internal.WellnessLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	logsPtr, ok := s.userLogIndex[userID]
	if !ok {
		return []internal.WellnessLog{}, nil
	}
	logs := make([]internal.WellnessLog, len(logsPtr))
	for i, l := range logsPtr {
		logs[i] = *l
	}
	return logs, nil
}

func (s *MemoryStore) UpdateLog(ctx context.Context, id string, patch internal.WellnessLogPatch) (*internal.WellnessLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.logs[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(l)
	out := *l
	return &out, nil
}

func (s *MemoryStore) DeleteLog(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.logs[id]
	if !ok {
		return ErrNotFound
	}
	delete(s.logs, id)
	logs := s.userLogIndex[l.UserID]
	for i, existing := range logs {
		if existing.ID == id {
			s.userLogIndex[l.UserID] = append(logs[:i], logs[i+1:]...)
			break
		}
	}
	return nil
}

// --- Compile-time assertions ---
var _ UserRepository = (*MemoryStore)(nil)
var _ WellnessLogRepository = (*MemoryStore)(nil)
