package repository

import (
	"context"
	"time"

	"github.com/kalibr456/Fullstack/internal/models"
)

type TrainingRepository struct {
	db DBTX
}

func NewTrainingRepository(db DBTX) *TrainingRepository {
	return &TrainingRepository{db: db}
}

type CreateTrainingInput struct {
	UserID      int64
	SectionID   int64
	Duration    int
	Intensity   int
	PerformedAt time.Time
	Note        *string
}

func (r *TrainingRepository) Create(ctx context.Context, input CreateTrainingInput) (*models.Training, error) {
	query := `
		INSERT INTO trainings (user_id, section_id, duration, intensity, performed_at, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, section_id, duration, intensity, performed_at, note, created_at
	`
	var training models.Training
	err := r.db.QueryRow(ctx, query,
		input.UserID,
		input.SectionID,
		input.Duration,
		input.Intensity,
		input.PerformedAt,
		input.Note,
	).Scan(
		&training.ID,
		&training.UserID,
		&training.SectionID,
		&training.Duration,
		&training.Intensity,
		&training.PerformedAt,
		&training.Note,
		&training.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &training, nil
}

func (r *TrainingRepository) GetByID(ctx context.Context, id int64) (*models.Training, error) {
	query := `
		SELECT id, user_id, section_id, duration, intensity, performed_at, note, created_at
		FROM trainings
		WHERE id = $1
	`
	var training models.Training
	err := r.db.QueryRow(ctx, query, id).Scan(
		&training.ID,
		&training.UserID,
		&training.SectionID,
		&training.Duration,
		&training.Intensity,
		&training.PerformedAt,
		&training.Note,
		&training.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &training, nil
}

func (r *TrainingRepository) ListByUser(ctx context.Context, userID int64) ([]models.Training, error) {
	query := `
		SELECT id, user_id, section_id, duration, intensity, performed_at, note, created_at
		FROM trainings
		WHERE user_id = $1
		ORDER BY performed_at DESC
	`
	return r.queryTrainings(ctx, query, userID)
}

func (r *TrainingRepository) RecentByUser(ctx context.Context, userID int64, limit int) ([]models.Training, error) {
	query := `
		SELECT id, user_id, section_id, duration, intensity, performed_at, note, created_at
		FROM trainings
		WHERE user_id = $1
		ORDER BY performed_at DESC
		LIMIT $2
	`
	return r.queryTrainings(ctx, query, userID, limit)
}

type UpdateTrainingInput struct {
	SectionID   *int64
	Duration    *int
	Intensity   *int
	PerformedAt *time.Time
	Note        *string
}

func (r *TrainingRepository) UpdatePartial(ctx context.Context, id int64, input UpdateTrainingInput) (*models.Training, error) {
	query := `
		UPDATE trainings
		SET section_id = COALESCE($1, section_id),
			duration = COALESCE($2, duration),
			intensity = COALESCE($3, intensity),
			performed_at = COALESCE($4, performed_at),
			note = COALESCE($5, note)
		WHERE id = $6
		RETURNING id, user_id, section_id, duration, intensity, performed_at, note, created_at
	`
	var training models.Training
	err := r.db.QueryRow(ctx, query,
		input.SectionID,
		input.Duration,
		input.Intensity,
		input.PerformedAt,
		input.Note,
		id,
	).Scan(
		&training.ID,
		&training.UserID,
		&training.SectionID,
		&training.Duration,
		&training.Intensity,
		&training.PerformedAt,
		&training.Note,
		&training.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &training, nil
}

func (r *TrainingRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM trainings WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *TrainingRepository) queryTrainings(ctx context.Context, query string, args ...any) ([]models.Training, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trainings := []models.Training{}
	for rows.Next() {
		var training models.Training
		if err := rows.Scan(
			&training.ID,
			&training.UserID,
			&training.SectionID,
			&training.Duration,
			&training.Intensity,
			&training.PerformedAt,
			&training.Note,
			&training.CreatedAt,
		); err != nil {
			return nil, err
		}
		trainings = append(trainings, training)
	}
	return trainings, rows.Err()
}
