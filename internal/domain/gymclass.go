package domain

import "time"

// GymClass is a scheduled group class, optionally led by a trainer.
type GymClass struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Schedule    string    `json:"schedule,omitempty"`
	Capacity    int32     `json:"capacity,omitempty"`
	TrainerID   *int64    `json:"trainer_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Trainer *Trainer `json:"trainer,omitempty"`
}
