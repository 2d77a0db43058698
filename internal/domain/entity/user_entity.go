package entity

import (
	"time"
)

// User is the aggregate root for the companion domain.
// The secret in MDP is compared as-is at login; hashing is an accepted gap.
//
// EvoCaps maps a stringified completion-count threshold ("1", "5", "15") to
// the life-stage label used to pick avatar assets. It is fixed at creation.
type User struct {
	ID             string            `bson:"id" json:"id"`
	Email          string            `bson:"email" json:"email"`
	MDP            string            `bson:"mdp" json:"-"`
	Name           string            `bson:"name" json:"name"`
	Tasks          []string          `bson:"tasks" json:"tasks"`
	TasksCompleted int               `bson:"tasks_completed" json:"tasks_completed"`
	Status         string            `bson:"status" json:"status"`
	Filepath       string            `bson:"filepath" json:"filepath"`
	EvoCaps        map[string]string `bson:"evo_caps" json:"evo_caps"`
	Birthday       time.Time         `bson:"birthday" json:"birthday"`
}

// DefaultEvoCaps returns the evolution thresholds assigned to every new user.
func DefaultEvoCaps() map[string]string {
	return map[string]string{"1": "bb", "5": "adult", "15": "old"}
}

// ValidationResult is the verdict from the vision model on a proof photo.
// It is never persisted.
type ValidationResult struct {
	Valid      bool    `json:"valid"`
	Reason     string  `json:"reason"`
	Confidence float64 `json:"confidence"`
}
