package roster

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/prittspadelord/erm/internal/employee"
)

var (
	// ErrNilEmployee indicates an attempt to add a nil record.
	ErrNilEmployee = errors.New("employee must not be nil")
	// ErrNotFound indicates no employee is registered under the requested ID.
	ErrNotFound = errors.New("employee not found")
)

// Entry pairs an employee with the ID it was registered under.
type Entry struct {
	ID       string
	Employee *employee.Employee
}

// Roster holds the employees constructed at startup.
type Roster interface {
	Add(e *employee.Employee) (string, error)
	Get(id string) (*employee.Employee, error)
	List() []Entry
	Len() int
}

// MemoryRoster keeps employees in insertion order and guards access with a RWMutex.
type MemoryRoster struct {
	mu      sync.RWMutex
	entries []Entry
	index   map[string]int
	newID   func() string
}

// NewMemoryRoster returns an empty roster that assigns random UUIDs.
func NewMemoryRoster() *MemoryRoster {
	return &MemoryRoster{
		index: make(map[string]int),
		newID: func() string { return uuid.NewString() },
	}
}

// Add registers e and returns its ID.
func (r *MemoryRoster) Add(e *employee.Employee) (string, error) {
	if e == nil {
		return "", ErrNilEmployee
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.newID()
	r.index[id] = len(r.entries)
	r.entries = append(r.entries, Entry{ID: id, Employee: e})
	return id, nil
}

// Get returns the employee registered under id.
func (r *MemoryRoster) Get(id string) (*employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, ErrNotFound
	}
	return r.entries[pos].Employee, nil
}

// List returns a copy of all entries in insertion order.
func (r *MemoryRoster) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *MemoryRoster) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}
