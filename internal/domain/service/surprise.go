package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/bela333/surprise-day/internal/domain"
	"github.com/bela333/surprise-day/internal/domain/contract"
	"github.com/bela333/surprise-day/internal/domain/dates"
	"github.com/bela333/surprise-day/internal/domain/entity"
)

// announcementFormat embeds the surprise day timestamp twice: once as an
// absolute Discord timestamp token and once as a relative one. The tokens are
// rendered client-side and must be reproduced verbatim.
const announcementFormat = "<@%s>'s Surprise Day is on <t:%d>, <t:%d:R>"

type surpriseService struct {
	dm         contract.DataManager
	chat       contract.ChatClient
	guildID    string
	categoryID string

	// injectable for deterministic tests
	now      func() time.Time
	randFrac func() float64
}

func newSurprise(dm contract.DataManager, chat contract.ChatClient, guildID, categoryID string) *surpriseService {
	return &surpriseService{
		dm:         dm,
		chat:       chat,
		guildID:    guildID,
		categoryID: categoryID,
		now:        func() time.Time { return time.Now().UTC() },
		randFrac:   rand.Float64,
	}
}

func announcement(userID string, surpriseDay time.Time) string {
	ts := surpriseDay.Unix()
	return fmt.Sprintf(announcementFormat, userID, ts, ts)
}

// getOrCreateDay returns the user's record, creating one with fresh dates and
// no channel when it doesn't exist. The check-then-insert runs inside a
// transaction; the unique index on discord backstops racing callers.
func (s *surpriseService) getOrCreateDay(ctx context.Context, userID string) (*entity.SurpriseDay, error) {
	var day *entity.SurpriseDay

	err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		existing, err := dm.SurpriseDay().GetByDiscordID(userID)
		if err != nil {
			return err
		}
		if existing != nil {
			day = existing
			return nil
		}

		surpriseDay, resetDay := dates.Generate(s.now(), s.randFrac())
		day = &entity.SurpriseDay{
			Discord:     userID,
			SurpriseDay: surpriseDay,
			ResetDay:    resetDay,
		}
		return dm.SurpriseDay().Create(day)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get or create surprise day: %w", err)
	}

	return day, nil
}

func (s *surpriseService) HandleMemberJoin(ctx context.Context, userID, username string) error {
	day, err := s.getOrCreateDay(ctx, userID)
	if err != nil {
		return err
	}

	if day.Channel == nil {
		channelID, err := s.chat.CreateHiddenChannel(s.guildID, username, s.categoryID)
		if err != nil {
			return fmt.Errorf("failed to create channel for user %s: %w", userID, err)
		}

		day.Channel = &channelID
		if err := s.dm.SurpriseDay().Update(day); err != nil {
			return err
		}
	} else {
		// Stale channel from a prior unclean leave. Reuse it rather than
		// recreate, and refresh the announcement below.
		log.Printf("User %s rejoined with channel %s still present, reusing it", userID, *day.Channel)
	}

	messageID, err := s.chat.SendMessage(*day.Channel, announcement(userID, day.SurpriseDay))
	if err != nil {
		return fmt.Errorf("failed to send announcement for user %s: %w", userID, err)
	}

	day.Message = &messageID
	if err := s.dm.SurpriseDay().Update(day); err != nil {
		return err
	}

	if err := s.chat.PinMessage(*day.Channel, messageID); err != nil {
		return fmt.Errorf("failed to pin announcement for user %s: %w", userID, err)
	}

	log.Printf("Generated surprise day channel for user %s", userID)
	return nil
}

func (s *surpriseService) HandleMemberLeave(ctx context.Context, userID string) error {
	day, err := s.dm.SurpriseDay().GetByDiscordID(userID)
	if err != nil {
		return err
	}
	if day == nil || day.Channel == nil {
		return nil
	}

	if err := s.chat.DeleteChannel(*day.Channel); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("failed to delete channel for user %s: %w", userID, err)
	}

	day.Channel, day.Message = nil, nil
	if err := s.dm.SurpriseDay().Update(day); err != nil {
		return err
	}

	log.Printf("Cleaned up surprise day channel for user %s", userID)
	return nil
}

func (s *surpriseService) ResetSurpriseDays(ctx context.Context, now time.Time) error {
	days, err := s.dm.SurpriseDay().GetExpired(now)
	if err != nil {
		return fmt.Errorf("failed to get expired surprise days: %w", err)
	}

	for _, day := range days {
		if err := s.resetDay(day, now); err != nil {
			log.Printf("Failed to reset surprise day for user %s: %v", day.Discord, err)
		}
	}

	return nil
}

func (s *surpriseService) resetDay(day *entity.SurpriseDay, now time.Time) error {
	if day.Channel == nil {
		// The user left before the rollover. Drop the record so it is not
		// rescanned every day; a rejoin recreates it from scratch.
		return s.dm.SurpriseDay().Delete(day)
	}

	day.SurpriseDay, day.ResetDay = dates.Generate(now, s.randFrac())
	if err := s.dm.SurpriseDay().Update(day); err != nil {
		return err
	}

	if day.Message != nil {
		err := s.chat.DeleteMessage(*day.Channel, *day.Message)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			log.Printf("Failed to delete old announcement for user %s: %v", day.Discord, err)
		}
	}

	messageID, err := s.chat.SendMessage(*day.Channel, announcement(day.Discord, day.SurpriseDay))
	if err != nil {
		return fmt.Errorf("failed to send announcement: %w", err)
	}

	if err := s.chat.PinMessage(*day.Channel, messageID); err != nil {
		return fmt.Errorf("failed to pin announcement: %w", err)
	}

	day.Message = &messageID
	return s.dm.SurpriseDay().Update(day)
}

func (s *surpriseService) JoinChannel(ctx context.Context, requesterID, targetID string) (*entity.SurpriseDay, error) {
	if requesterID == targetID {
		return nil, domain.ErrSelfJoin
	}

	day, err := s.dm.SurpriseDay().GetByDiscordID(targetID)
	if err != nil {
		return nil, err
	}
	if day == nil || day.Channel == nil {
		return nil, domain.ErrNoChannel
	}

	if err := s.chat.AllowAccess(*day.Channel, requesterID); err != nil {
		return nil, fmt.Errorf("failed to grant access to channel %s: %w", *day.Channel, err)
	}

	return day, nil
}

func (s *surpriseService) LeaveChannel(ctx context.Context, requesterID, channelID string) error {
	day, err := s.dm.SurpriseDay().GetByChannelID(channelID)
	if err != nil {
		return err
	}
	if day == nil {
		return domain.ErrNoChannel
	}

	if err := s.chat.DenyAccess(*day.Channel, requesterID); err != nil {
		return fmt.Errorf("failed to revoke access to channel %s: %w", *day.Channel, err)
	}

	return nil
}
