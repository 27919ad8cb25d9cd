package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"school-activities/models"

	"github.com/pkg/errors"
)

var (
	ErrNotFound          = errors.New("activity not found")
	ErrAlreadyRegistered = errors.New("student is already signed up for this activity")
	ErrInvalidInput      = errors.New("invalid input")
)

// Catalog holds every activity and its roster in memory.
// Reads return copies; Signup runs its lookup, check and append under one write lock.
type Catalog struct {
	mu         sync.RWMutex
	activities map[string]*models.Activity
}

// New builds a catalog from seed activities. Names must be non-empty and unique,
// and no roster may list the same email twice.
func New(seed []models.Activity) (*Catalog, error) {
	c := &Catalog{activities: make(map[string]*models.Activity, len(seed))}
	for i, a := range seed {
		if strings.TrimSpace(a.Name) == "" {
			return nil, errors.Wrapf(ErrInvalidInput, "seed activity %d has no name", i)
		}
		if _, ok := c.activities[a.Name]; ok {
			return nil, errors.Wrapf(ErrInvalidInput, "duplicate seed activity %q", a.Name)
		}
		seen := make(map[string]struct{}, len(a.Participants))
		for _, email := range a.Participants {
			if _, ok := seen[email]; ok {
				return nil, errors.Wrapf(ErrInvalidInput, "duplicate participant %q in %q", email, a.Name)
			}
			seen[email] = struct{}{}
		}
		activity := a.Clone()
		c.activities[a.Name] = &activity
	}
	return c, nil
}

// GetAll returns a snapshot of the whole catalog keyed by activity name.
func (c *Catalog) GetAll() map[string]models.Activity {
	c.mu.RLock()
	defer c.mu.RUnlock()

	all := make(map[string]models.Activity, len(c.activities))
	for name, a := range c.activities {
		all[name] = a.Clone()
	}
	return all
}

// Get looks up one activity by exact name.
func (c *Catalog) Get(name string) (models.Activity, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	a, ok := c.activities[name]
	if !ok {
		return models.Activity{}, errors.Wrapf(ErrNotFound, "activity %q", name)
	}
	return a.Clone(), nil
}

// Names returns the activity names in lexical order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.activities))
	for name := range c.activities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Signup adds email to the roster of activityName.
// Capacity is not checked; max_participants is informational only.
func (c *Catalog) Signup(activityName, email string) (models.Message, error) {
	if activityName == "" {
		return models.Message{}, errors.Wrap(ErrInvalidInput, "activity name is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	a, ok := c.activities[activityName]
	if !ok {
		return models.Message{}, errors.Wrapf(ErrNotFound, "activity %q", activityName)
	}
	if a.HasParticipant(email) {
		return models.Message{}, errors.Wrapf(ErrAlreadyRegistered, "%s in %q", email, activityName)
	}
	a.Participants = append(a.Participants, email)

	return models.Message{Message: fmt.Sprintf("Signed up %s for %s", email, activityName)}, nil
}
