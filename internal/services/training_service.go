package services

import (
	"context"
	"errors"
	"time"

	"github.com/kalibr456/Fullstack/internal/models"
	"github.com/kalibr456/Fullstack/internal/repository"
)

var (
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
)

type trainingStore interface {
	Create(ctx context.Context, input repository.CreateTrainingInput) (*models.Training, error)
	GetByID(ctx context.Context, id int64) (*models.Training, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Training, error)
	RecentByUser(ctx context.Context, userID int64, limit int) ([]models.Training, error)
	UpdatePartial(ctx context.Context, id int64, input repository.UpdateTrainingInput) (*models.Training, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type TrainingService struct {
	trainingRepo trainingStore
	sectionRepo  sectionReader
}

func NewTrainingService(
	trainingRepo *repository.TrainingRepository,
	sectionRepo *repository.SectionRepository,
) *TrainingService {
	return &TrainingService{
		trainingRepo: trainingRepo,
		sectionRepo:  sectionRepo,
	}
}

type RecordTrainingInput struct {
	SectionID   int64
	Duration    int
	Intensity   int
	PerformedAt *time.Time
	Note        *string
}

func (s *TrainingService) Record(ctx context.Context, userID int64, input RecordTrainingInput) (*models.Training, error) {
	if input.Duration < 0 || input.Intensity < 1 || input.Intensity > 10 {
		return nil, ErrInvalidInput
	}

	if _, err := s.sectionRepo.GetByID(ctx, input.SectionID); err != nil {
		return nil, err
	}

	performedAt := time.Now()
	if input.PerformedAt != nil {
		performedAt = *input.PerformedAt
	}

	return s.trainingRepo.Create(ctx, repository.CreateTrainingInput{
		UserID:      userID,
		SectionID:   input.SectionID,
		Duration:    input.Duration,
		Intensity:   input.Intensity,
		PerformedAt: performedAt,
		Note:        input.Note,
	})
}

type UpdateTrainingInput struct {
	SectionID   *int64
	Duration    *int
	Intensity   *int
	PerformedAt *time.Time
	Note        *string
}

func (s *TrainingService) Update(ctx context.Context, actorID, trainingID int64, input UpdateTrainingInput) (*models.Training, error) {
	if input.Duration != nil && *input.Duration < 0 {
		return nil, ErrInvalidInput
	}
	if input.Intensity != nil && (*input.Intensity < 1 || *input.Intensity > 10) {
		return nil, ErrInvalidInput
	}

	training, err := s.trainingRepo.GetByID(ctx, trainingID)
	if err != nil {
		return nil, err
	}
	if training.UserID != actorID {
		return nil, ErrForbidden
	}

	if input.SectionID != nil {
		if _, err := s.sectionRepo.GetByID(ctx, *input.SectionID); err != nil {
			return nil, err
		}
	}

	return s.trainingRepo.UpdatePartial(ctx, trainingID, repository.UpdateTrainingInput{
		SectionID:   input.SectionID,
		Duration:    input.Duration,
		Intensity:   input.Intensity,
		PerformedAt: input.PerformedAt,
		Note:        input.Note,
	})
}

func (s *TrainingService) Delete(ctx context.Context, actorID, trainingID int64) error {
	training, err := s.trainingRepo.GetByID(ctx, trainingID)
	if err != nil {
		return err
	}
	if training.UserID != actorID {
		return ErrForbidden
	}

	_, err = s.trainingRepo.Delete(ctx, trainingID)
	return err
}

func (s *TrainingService) ListForUser(ctx context.Context, userID int64) ([]models.Training, error) {
	return s.trainingRepo.ListByUser(ctx, userID)
}

func (s *TrainingService) RecentForUser(ctx context.Context, userID int64, limit int) ([]models.Training, error) {
	if limit <= 0 {
		limit = recommendationHistoryLimit
	}
	return s.trainingRepo.RecentByUser(ctx, userID, limit)
}
