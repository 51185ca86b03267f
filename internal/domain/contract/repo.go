package contract

import (
	"context"
	"time"

	"github.com/bela333/surprise-day/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	SurpriseDay() SurpriseDayRepo
}

// SurpriseDayRepo defines the contract for the surprise day repository
type SurpriseDayRepo interface {
	// Create inserts a new record and assigns its ID. Returns
	// domain.ErrAlreadyExists when the user already has a record.
	Create(day *entity.SurpriseDay) error

	// GetByDiscordID returns the record for the given user, or nil when absent.
	GetByDiscordID(discordID string) (*entity.SurpriseDay, error)

	// GetByChannelID returns the record owning the given channel, or nil when absent.
	GetByChannelID(channelID string) (*entity.SurpriseDay, error)

	// GetExpired returns all records whose reset day is strictly before asOf.
	GetExpired(asOf time.Time) ([]*entity.SurpriseDay, error)

	// Update overwrites the mutable fields of the record identified by its ID.
	// Returns domain.ErrNotFound when the ID is absent.
	Update(day *entity.SurpriseDay) error

	// Delete removes the record by ID. Deleting an absent record is a no-op.
	Delete(day *entity.SurpriseDay) error
}
