package repository

import (
	"context"
	"time"

	"github.com/kalibr456/Fullstack/internal/models"
)

type DiaryRepository struct {
	db DBTX
}

func NewDiaryRepository(db DBTX) *DiaryRepository {
	return &DiaryRepository{db: db}
}

func (r *DiaryRepository) Create(ctx context.Context, userID int64, entryDate time.Time, section, note string) (*models.DiaryEntry, error) {
	query := `
		INSERT INTO diary_entries (user_id, entry_date, section, note)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, entry_date, section, note, created_at
	`
	var entry models.DiaryEntry
	err := r.db.QueryRow(ctx, query, userID, entryDate, section, note).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.EntryDate,
		&entry.Section,
		&entry.Note,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *DiaryRepository) GetByID(ctx context.Context, id int64) (*models.DiaryEntry, error) {
	query := `
		SELECT id, user_id, entry_date, section, note, created_at
		FROM diary_entries
		WHERE id = $1
	`
	var entry models.DiaryEntry
	err := r.db.QueryRow(ctx, query, id).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.EntryDate,
		&entry.Section,
		&entry.Note,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *DiaryRepository) ListByUser(ctx context.Context, userID int64) ([]models.DiaryEntry, error) {
	query := `
		SELECT id, user_id, entry_date, section, note, created_at
		FROM diary_entries
		WHERE user_id = $1
		ORDER BY entry_date DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.DiaryEntry{}
	for rows.Next() {
		var entry models.DiaryEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.EntryDate,
			&entry.Section,
			&entry.Note,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *DiaryRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM diary_entries WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
