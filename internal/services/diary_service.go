package services

import (
	"context"
	"time"

	"github.com/kalibr456/Fullstack/internal/models"
	"github.com/kalibr456/Fullstack/internal/repository"
)

type diaryStore interface {
	Create(ctx context.Context, userID int64, entryDate time.Time, section, note string) (*models.DiaryEntry, error)
	GetByID(ctx context.Context, id int64) (*models.DiaryEntry, error)
	ListByUser(ctx context.Context, userID int64) ([]models.DiaryEntry, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type DiaryService struct {
	diaryRepo diaryStore
}

func NewDiaryService(diaryRepo *repository.DiaryRepository) *DiaryService {
	return &DiaryService{diaryRepo: diaryRepo}
}

func (s *DiaryService) AddEntry(ctx context.Context, userID int64, entryDate time.Time, section, note string) (*models.DiaryEntry, error) {
	if note == "" {
		return nil, ErrInvalidInput
	}
	return s.diaryRepo.Create(ctx, userID, entryDate, section, note)
}

func (s *DiaryService) ListEntries(ctx context.Context, userID int64) ([]models.DiaryEntry, error) {
	return s.diaryRepo.ListByUser(ctx, userID)
}

func (s *DiaryService) DeleteEntry(ctx context.Context, actorID, entryID int64) error {
	entry, err := s.diaryRepo.GetByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry.UserID != actorID {
		return ErrForbidden
	}

	_, err = s.diaryRepo.Delete(ctx, entryID)
	return err
}
