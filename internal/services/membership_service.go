package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kalibr456/Fullstack/internal/models"
	"github.com/kalibr456/Fullstack/internal/repository"
)

var (
	ErrAlreadyMember = errors.New("already a member")
	ErrNotAMember    = errors.New("not a member")
)

type sectionReader interface {
	GetByID(ctx context.Context, id int64) (*models.Section, error)
}

type membershipStore interface {
	Insert(ctx context.Context, userID, sectionID int64) error
	Delete(ctx context.Context, userID, sectionID int64) (int64, error)
	Exists(ctx context.Context, userID, sectionID int64) (bool, error)
	ListSectionsForUser(ctx context.Context, userID int64) ([]models.Section, error)
}

type MembershipService struct {
	sectionRepo    sectionReader
	membershipRepo membershipStore
}

func NewMembershipService(
	sectionRepo *repository.SectionRepository,
	membershipRepo *repository.MembershipRepository,
) *MembershipService {
	return &MembershipService{
		sectionRepo:    sectionRepo,
		membershipRepo: membershipRepo,
	}
}

func (s *MembershipService) Join(ctx context.Context, userID, sectionID int64) (*models.Section, error) {
	section, err := s.sectionRepo.GetByID(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	exists, err := s.membershipRepo.Exists(ctx, userID, sectionID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyMember
	}

	if err := s.membershipRepo.Insert(ctx, userID, sectionID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrAlreadyMember
		}
		return nil, err
	}
	return section, nil
}

func (s *MembershipService) Leave(ctx context.Context, userID, sectionID int64) (*models.Section, error) {
	section, err := s.sectionRepo.GetByID(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	affected, err := s.membershipRepo.Delete(ctx, userID, sectionID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotAMember
	}
	return section, nil
}

func (s *MembershipService) ListForUser(ctx context.Context, userID int64) ([]models.Section, error) {
	return s.membershipRepo.ListSectionsForUser(ctx, userID)
}
