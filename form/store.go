package form

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/SRSager/bucks-county-fence/models"
)

// DefaultKey is the storage identifier the quote form persists under
// when the caller does not scope sessions itself.
const DefaultKey = "fence_lead_form"

// Storage is the durable home of an in-progress lead record. Load
// returns (nil, nil) when no record exists under the key.
type Storage interface {
	Load(ctx context.Context, key string) (*models.Lead, error)
	Save(ctx context.Context, key string, lead models.Lead) error
	Delete(ctx context.Context, key string) error
}

// Store owns one visitor's form session: the in-progress record, the
// step pointer, per-field errors, and the submission flags. Every record
// mutation is written through to Storage; storage failures are logged
// and otherwise ignored so a broken backend never blocks the visitor.
type Store struct {
	mu      sync.Mutex
	storage Storage
	key     string
	session models.FormSession
}

// NewStore builds a store seeded from any record previously persisted
// under key. A failed or corrupt load falls back to a fresh session.
func NewStore(storage Storage, key string) *Store {
	s := &Store{storage: storage, key: key, session: models.NewFormSession()}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	lead, err := storage.Load(ctx, key)
	if err != nil {
		log.Printf("form: restore %q failed, starting fresh: %v", key, err)
		return s
	}
	if lead != nil {
		s.session.Data = *lead
	}
	return s
}

// Session returns a snapshot of the current session state.
func (s *Store) Session() models.FormSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Store) snapshot() models.FormSession {
	snap := s.session
	snap.Errors = make(map[string]string, len(s.session.Errors))
	for k, v := range s.session.Errors {
		snap.Errors[k] = v
	}
	snap.Data.FencePurpose = append([]string{}, s.session.Data.FencePurpose...)
	return snap
}

// SetField overwrites one field, clears its error entry, and persists.
// No validation happens at write time.
func (s *Store) SetField(field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.session.Data.Set(field, value); err != nil {
		return err
	}
	delete(s.session.Errors, field)
	s.persist()
	return nil
}

// ToggleArrayField adds the value to a set-valued field if absent and
// removes it if present. Calling it twice restores the original set.
func (s *Store) ToggleArrayField(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var current []string
	switch field {
	case "fencePurpose":
		current = s.session.Data.FencePurpose
	default:
		return fmt.Errorf("form: %s is not a set-valued field", field)
	}

	next := make([]string, 0, len(current)+1)
	found := false
	for _, v := range current {
		if v == value {
			found = true
			continue
		}
		next = append(next, v)
	}
	if !found {
		next = append(next, value)
	}

	s.session.Data.FencePurpose = next
	delete(s.session.Errors, field)
	s.persist()
	return nil
}

// ValidateStep runs the step's rules against the live record and
// replaces the session's error map with the result.
func (s *Store) ValidateStep(step int) (bool, map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok, errs := ValidateStep(step, s.session.Data)
	s.session.Errors = errs
	return ok, errs
}

// NextStep advances the step pointer, clamped to the last step.
func (s *Store) NextStep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.CurrentStep < s.session.TotalSteps {
		s.session.CurrentStep++
	}
	s.persist()
}

// PrevStep moves the step pointer back, clamped to step 1.
func (s *Store) PrevStep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.CurrentStep > 1 {
		s.session.CurrentStep--
	}
	s.persist()
}

// SetSubmitting flips the submitting flag, persisting the record when a
// submission starts.
func (s *Store) SetSubmitting(submitting bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Submitting = submitting
	if submitting {
		s.persist()
	}
}

// SetComplete marks the session finished and erases the durable copy.
// The in-memory session stays intact for the confirmation screen.
func (s *Store) SetComplete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Complete = true
	s.session.Submitting = false
	s.erase()
}

// Reset erases the durable copy and returns the session to defaults.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = models.NewFormSession()
	s.erase()
}

// Progress is the display percentage for the step indicator.
func (s *Store) Progress() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Progress()
}

func (s *Store) persist() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.storage.Save(ctx, s.key, s.session.Data); err != nil {
		log.Printf("form: persist %q failed: %v", s.key, err)
	}
}

func (s *Store) erase() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.storage.Delete(ctx, s.key); err != nil {
		log.Printf("form: erase %q failed: %v", s.key, err)
	}
}
