package contract

import (
	"context"
	"time"

	"github.com/bela333/surprise-day/internal/domain/entity"
)

type SurpriseService interface {
	// HandleMemberJoin creates (or revives) the member's surprise day record,
	// its hidden channel and the pinned announcement.
	HandleMemberJoin(ctx context.Context, userID, username string) error

	// HandleMemberLeave deletes the member's surprise channel and clears the
	// channel/message references on their record.
	HandleMemberLeave(ctx context.Context, userID string) error

	// ResetSurpriseDays rolls forward every record whose reset day is before
	// now. One record failing does not abort the remaining records.
	ResetSurpriseDays(ctx context.Context, now time.Time) error

	// JoinChannel grants the requester visibility into the target user's
	// surprise channel and returns the target's record.
	JoinChannel(ctx context.Context, requesterID, targetID string) (*entity.SurpriseDay, error)

	// LeaveChannel revokes the requester's visibility into the surprise
	// channel the command was invoked from.
	LeaveChannel(ctx context.Context, requesterID, channelID string) error
}
