package entity

import "time"

// SurpriseDay is the per-user record tracking a scheduled surprise date and
// the Discord channel/message currently announcing it. Message and Channel
// are nil while the user has no celebration channel (never joined, or left).
type SurpriseDay struct {
	ID          int64
	Discord     string
	Message     *string
	Channel     *string
	SurpriseDay time.Time
	ResetDay    time.Time
}
