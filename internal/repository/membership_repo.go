package repository

import (
	"context"

	"github.com/kalibr456/Fullstack/internal/models"
)

type MembershipRepository struct {
	db DBTX
}

func NewMembershipRepository(db DBTX) *MembershipRepository {
	return &MembershipRepository{db: db}
}

func (r *MembershipRepository) Insert(ctx context.Context, userID, sectionID int64) error {
	query := `
		INSERT INTO user_sections (user_id, section_id)
		VALUES ($1, $2)
	`
	_, err := r.db.Exec(ctx, query, userID, sectionID)
	return err
}

func (r *MembershipRepository) Delete(ctx context.Context, userID, sectionID int64) (int64, error) {
	query := `
		DELETE FROM user_sections
		WHERE user_id = $1 AND section_id = $2
	`
	tag, err := r.db.Exec(ctx, query, userID, sectionID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *MembershipRepository) Exists(ctx context.Context, userID, sectionID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM user_sections
			WHERE user_id = $1 AND section_id = $2
		)
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, sectionID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *MembershipRepository) ListSectionsForUser(ctx context.Context, userID int64) ([]models.Section, error) {
	query := `
		SELECT s.id, s.name, s.description, s.created_at
		FROM sections s
		JOIN user_sections us ON us.section_id = s.id
		WHERE us.user_id = $1
		ORDER BY s.name
	`
	rows, err := r.db.Query(ctx, query, userID)
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
