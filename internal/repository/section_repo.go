package repository

import (
	"context"

	"github.com/kalibr456/Fullstack/internal/models"
)

type SectionRepository struct {
	db DBTX
}

func NewSectionRepository(db DBTX) *SectionRepository {
	return &SectionRepository{db: db}
}

func (r *SectionRepository) Create(ctx context.Context, section *models.Section) error {
	query := `
		INSERT INTO sections (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query, section.Name, section.Description).
		Scan(&section.ID, &section.CreatedAt)
}

func (r *SectionRepository) GetByID(ctx context.Context, id int64) (*models.Section, error) {
	query := `
		SELECT id, name, description, created_at
		FROM sections
		WHERE id = $1
	`
	var section models.Section
	err := r.db.QueryRow(ctx, query, id).
		Scan(&section.ID, &section.Name, &section.Description, &section.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *SectionRepository) ListAll(ctx context.Context) ([]models.Section, error) {
	query := `
		SELECT id, name, description, created_at
		FROM sections
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sections := []models.Section{}
	for rows.Next() {
		var section models.Section
		if err := rows.Scan(&section.ID, &section.Name, &section.Description, &section.CreatedAt); err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}
	return sections, rows.Err()
}

type UpdateSectionInput struct {
	Name        *string
	Description *string
}

func (r *SectionRepository) UpdatePartial(ctx context.Context, id int64, input UpdateSectionInput) (*models.Section, error) {
	query := `
		UPDATE sections
		SET name = COALESCE($1, name),
			description = COALESCE($2, description)
		WHERE id = $3
		RETURNING id, name, description, created_at
	`
	var section models.Section
	err := r.db.QueryRow(ctx, query, input.Name, input.Description, id).
		Scan(&section.ID, &section.Name, &section.Description, &section.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *SectionRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sections WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
