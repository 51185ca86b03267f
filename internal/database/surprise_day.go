package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bela333/surprise-day/internal/domain"
	"github.com/bela333/surprise-day/internal/domain/contract"
	"github.com/bela333/surprise-day/internal/domain/entity"
	"github.com/mattn/go-sqlite3"
)

type surpriseDayRepo struct {
	db dbConn
}

func newSurpriseDayRepo(db dbConn) contract.SurpriseDayRepo {
	return &surpriseDayRepo{db: db}
}

func (r *surpriseDayRepo) Create(day *entity.SurpriseDay) error {
	query := `
		INSERT INTO surprise_days (discord, message, channel, surprise_day, reset_day)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		day.Discord,
		day.Message,
		day.Channel,
		day.SurpriseDay.Unix(),
		day.ResetDay.Unix(),
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return fmt.Errorf("surprise day for user %s: %w", day.Discord, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create surprise day: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	day.ID = id
	return nil
}

func (r *surpriseDayRepo) GetByDiscordID(discordID string) (*entity.SurpriseDay, error) {
	query := `
		SELECT id, discord, message, channel, surprise_day, reset_day
		FROM surprise_days
		WHERE discord = ?
	`

	return r.scanRow(r.db.QueryRow(query, discordID))
}

func (r *surpriseDayRepo) GetByChannelID(channelID string) (*entity.SurpriseDay, error) {
	query := `
		SELECT id, discord, message, channel, surprise_day, reset_day
		FROM surprise_days
		WHERE channel = ?
	`

	return r.scanRow(r.db.QueryRow(query, channelID))
}

func (r *surpriseDayRepo) GetExpired(asOf time.Time) ([]*entity.SurpriseDay, error) {
	query := `
		SELECT id, discord, message, channel, surprise_day, reset_day
		FROM surprise_days
		WHERE reset_day < ?
	`

	rows, err := r.db.Query(query, asOf.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to get expired surprise days: %w", err)
	}
	defer rows.Close()

	var days []*entity.SurpriseDay
	for rows.Next() {
		day, err := scanDay(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan surprise day: %w", err)
		}
		days = append(days, day)
	}

	return days, rows.Err()
}

func (r *surpriseDayRepo) Update(day *entity.SurpriseDay) error {
	query := `
		UPDATE surprise_days SET
			message = ?,
			channel = ?,
			surprise_day = ?,
			reset_day = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		day.Message,
		day.Channel,
		day.SurpriseDay.Unix(),
		day.ResetDay.Unix(),
		day.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update surprise day: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("surprise day %d: %w", day.ID, domain.ErrNotFound)
	}

	return nil
}

func (r *surpriseDayRepo) Delete(day *entity.SurpriseDay) error {
	query := `DELETE FROM surprise_days WHERE id = ?`

	if _, err := r.db.Exec(query, day.ID); err != nil {
		return fmt.Errorf("failed to delete surprise day: %w", err)
	}

	return nil
}

func (r *surpriseDayRepo) scanRow(row *sql.Row) (*entity.SurpriseDay, error) {
	day, err := scanDay(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get surprise day: %w", err)
	}

	return day, nil
}

func scanDay(scan func(dest ...interface{}) error) (*entity.SurpriseDay, error) {
	day := &entity.SurpriseDay{}

	var message, channel sql.NullString
	var surpriseDay, resetDay int64

	err := scan(
		&day.ID,
		&day.Discord,
		&message,
		&channel,
		&surpriseDay,
		&resetDay,
	)
	if err != nil {
		return nil, err
	}

	if message.Valid {
		day.Message = &message.String
	}
	if channel.Valid {
		day.Channel = &channel.String
	}
	day.SurpriseDay = time.Unix(surpriseDay, 0).UTC()
	day.ResetDay = time.Unix(resetDay, 0).UTC()

	return day, nil
}
