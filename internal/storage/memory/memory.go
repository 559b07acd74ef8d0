package memory

import (
	"slices"
	"sync"

	"activitySignup/internal/models"
	"activitySignup/internal/storage"
)

// Storage holds the activity directory for the whole process lifetime. The
// mutex makes the check-then-write in SignUpStudent and UnregisterStudent
// atomic; without it a concurrent map write would kill the process.
type Storage struct {
	mu         sync.RWMutex
	activities map[string]*models.Activity
}

func New() *Storage {
	return &Storage{
		activities: seedActivities(),
	}
}

func seedActivities() map[string]*models.Activity {
	return map[string]*models.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Math Club": {
			Description:     "Solve challenging problems and prepare for math competitions",
			Schedule:        "Tuesdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 10,
			Participants:    []string{},
		},
	}
}

// GetAllActivities returns a snapshot of the directory. Participant slices
// are cloned so callers never share backing arrays with the live roster.
func (s *Storage) GetAllActivities() (map[string]models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activities := make(map[string]models.Activity, len(s.activities))
	for name, activity := range s.activities {
		snapshot := *activity
		snapshot.Participants = slices.Clone(activity.Participants)
		activities[name] = snapshot
	}

	return activities, nil
}

func (s *Storage) SignUpStudent(activityName, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[activityName]
	if !ok {
		return storage.ErrActivityNotFound
	}

	if slices.Contains(activity.Participants, email) {
		return storage.ErrAlreadyRegistered
	}

	activity.Participants = append(activity.Participants, email)

	return nil
}

func (s *Storage) UnregisterStudent(activityName, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[activityName]
	if !ok {
		return storage.ErrActivityNotFound
	}

	i := slices.Index(activity.Participants, email)
	if i < 0 {
		return storage.ErrNotRegistered
	}

	activity.Participants = slices.Delete(activity.Participants, i, i+1)

	return nil
}
