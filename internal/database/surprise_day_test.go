package database

import (
	"testing"
	"time"

	"github.com/bela333/surprise-day/internal/domain"
	"github.com/bela333/surprise-day/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func testDay(discordID string) *entity.SurpriseDay {
	return &entity.SurpriseDay{
		Discord:     discordID,
		SurpriseDay: time.Date(2024, 8, 20, 0, 0, 0, 0, time.UTC),
		ResetDay:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestSurpriseDayRepo_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSurpriseDayRepo(db.conn)

	t.Run("should create record successfully", func(t *testing.T) {
		day := testDay("100000000000000001")

		err := repo.Create(day)

		require.NoError(t, err)
		assert.NotZero(t, day.ID)
		assert.Nil(t, day.Message)
		assert.Nil(t, day.Channel)
	})

	t.Run("should reject a second record for the same user", func(t *testing.T) {
		first := testDay("100000000000000002")
		require.NoError(t, repo.Create(first))

		err := repo.Create(testDay("100000000000000002"))

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("should store channel and message identifiers", func(t *testing.T) {
		day := testDay("100000000000000003")
		day.Channel = strPtr("200000000000000001")
		day.Message = strPtr("300000000000000001")

		err := repo.Create(day)

		require.NoError(t, err)
	})
}

func TestSurpriseDayRepo_GetByDiscordID(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSurpriseDayRepo(db.conn)

	saved := testDay("100000000000000001")
	saved.Channel = strPtr("200000000000000001")
	saved.Message = strPtr("300000000000000001")
	require.NoError(t, repo.Create(saved))

	t.Run("should round-trip every field", func(t *testing.T) {
		day, err := repo.GetByDiscordID("100000000000000001")

		require.NoError(t, err)
		require.NotNil(t, day)
		assert.Equal(t, saved.ID, day.ID)
		assert.Equal(t, saved.Discord, day.Discord)
		assert.Equal(t, saved.Channel, day.Channel)
		assert.Equal(t, saved.Message, day.Message)
		assert.Equal(t, saved.SurpriseDay, day.SurpriseDay)
		assert.Equal(t, saved.ResetDay, day.ResetDay)
	})

	t.Run("should round-trip nil channel and message", func(t *testing.T) {
		bare := testDay("100000000000000002")
		require.NoError(t, repo.Create(bare))

		day, err := repo.GetByDiscordID("100000000000000002")

		require.NoError(t, err)
		require.NotNil(t, day)
		assert.Nil(t, day.Channel)
		assert.Nil(t, day.Message)
	})

	t.Run("should return nil when user has no record", func(t *testing.T) {
		day, err := repo.GetByDiscordID("999999999999999999")

		require.NoError(t, err)
		assert.Nil(t, day)
	})
}

func TestSurpriseDayRepo_GetByChannelID(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSurpriseDayRepo(db.conn)

	saved := testDay("100000000000000001")
	saved.Channel = strPtr("200000000000000001")
	require.NoError(t, repo.Create(saved))

	t.Run("should return record owning the channel", func(t *testing.T) {
		day, err := repo.GetByChannelID("200000000000000001")

		require.NoError(t, err)
		require.NotNil(t, day)
		assert.Equal(t, saved.ID, day.ID)
		assert.Equal(t, saved.Discord, day.Discord)
	})

	t.Run("should return nil for an unknown channel", func(t *testing.T) {
		day, err := repo.GetByChannelID("299999999999999999")

		require.NoError(t, err)
		assert.Nil(t, day)
	})
}

func TestSurpriseDayRepo_GetExpired(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSurpriseDayRepo(db.conn)

	asOf := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	expired := testDay("100000000000000001")
	expired.ResetDay = asOf.Add(-time.Second)
	require.NoError(t, repo.Create(expired))

	atBoundary := testDay("100000000000000002")
	atBoundary.ResetDay = asOf
	require.NoError(t, repo.Create(atBoundary))

	future := testDay("100000000000000003")
	future.ResetDay = asOf.AddDate(0, 6, 0)
	require.NoError(t, repo.Create(future))

	t.Run("should return only records strictly before the cutoff", func(t *testing.T) {
		days, err := repo.GetExpired(asOf)

		require.NoError(t, err)
		require.Len(t, days, 1)
		assert.Equal(t, expired.Discord, days[0].Discord)
	})

	t.Run("should return nothing when all records are current", func(t *testing.T) {
		days, err := repo.GetExpired(asOf.AddDate(-1, 0, 0))

		require.NoError(t, err)
		assert.Empty(t, days)
	})
}

func TestSurpriseDayRepo_Update(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSurpriseDayRepo(db.conn)

	day := testDay("100000000000000001")
	require.NoError(t, repo.Create(day))

	t.Run("should overwrite mutable fields", func(t *testing.T) {
		day.Channel = strPtr("200000000000000001")
		day.Message = strPtr("300000000000000001")
		day.SurpriseDay = time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)
		day.ResetDay = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

		err := repo.Update(day)

		require.NoError(t, err)

		got, err := repo.GetByDiscordID(day.Discord)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, day.Channel, got.Channel)
		assert.Equal(t, day.Message, got.Message)
		assert.Equal(t, day.SurpriseDay, got.SurpriseDay)
		assert.Equal(t, day.ResetDay, got.ResetDay)
	})

	t.Run("should clear fields back to null", func(t *testing.T) {
		day.Channel = nil
		day.Message = nil

		err := repo.Update(day)

		require.NoError(t, err)

		got, err := repo.GetByDiscordID(day.Discord)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Nil(t, got.Channel)
		assert.Nil(t, got.Message)
	})

	t.Run("should report missing record", func(t *testing.T) {
		absent := testDay("100000000000000002")
		absent.ID = 12345

		err := repo.Update(absent)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestSurpriseDayRepo_Delete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSurpriseDayRepo(db.conn)

	day := testDay("100000000000000001")
	require.NoError(t, repo.Create(day))

	t.Run("should remove the record", func(t *testing.T) {
		err := repo.Delete(day)

		require.NoError(t, err)

		got, err := repo.GetByDiscordID(day.Discord)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("should be a no-op when already deleted", func(t *testing.T) {
		err := repo.Delete(day)

		require.NoError(t, err)
	})
}
