package services

import (
	"testing"
	"time"

	"github.com/kalibr456/Fullstack/internal/models"
)

var recommendNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func historyAt(intensities []int, agesInHours []time.Duration) []models.Training {
	history := make([]models.Training, 0, len(intensities))
	for i, intensity := range intensities {
		history = append(history, models.Training{
			ID:          int64(i + 1),
			UserID:      42,
			SectionID:   1,
			Duration:    60,
			Intensity:   intensity,
			PerformedAt: recommendNow.Add(-agesInHours[i]),
		})
	}
	return history
}

func TestRecommendLoadEmptyHistoryIsBeginner(t *testing.T) {
	rec := RecommendLoad(recommendNow, nil)

	if rec.Status != StatusBeginner {
		t.Fatalf("expected beginner, got %q", rec.Status)
	}
	if rec.SuggestedIntensity != 3 {
		t.Fatalf("expected suggested intensity 3, got %d", rec.SuggestedIntensity)
	}
}

func TestRecommendLoadLongBreakIsRecovery(t *testing.T) {
	history := historyAt([]int{6}, []time.Duration{8 * 24 * time.Hour})

	rec := RecommendLoad(recommendNow, history)

	if rec.Status != StatusRecovery {
		t.Fatalf("expected recovery, got %q", rec.Status)
	}
	if rec.SuggestedIntensity != 4 {
		t.Fatalf("expected suggested intensity 4, got %d", rec.SuggestedIntensity)
	}
}

func TestRecommendLoadSevenDayBreakIsNotRecovery(t *testing.T) {
	// Exactly 7 whole days is still within the regular rhythm.
	history := historyAt([]int{6}, []time.Duration{7 * 24 * time.Hour})

	rec := RecommendLoad(recommendNow, history)

	if rec.Status == StatusRecovery {
		t.Fatalf("expected non-recovery status at exactly 7 days, got %q", rec.Status)
	}
}

func TestRecommendLoadHardSessionTodayIsRest(t *testing.T) {
	history := historyAt([]int{9}, []time.Duration{2 * time.Hour})

	rec := RecommendLoad(recommendNow, history)

	if rec.Status != StatusRest {
		t.Fatalf("expected rest, got %q", rec.Status)
	}
	if rec.SuggestedIntensity != 2 {
		t.Fatalf("expected suggested intensity 2, got %d", rec.SuggestedIntensity)
	}
}

func TestRecommendLoadEasySessionTodayIsProgress(t *testing.T) {
	history := historyAt([]int{5}, []time.Duration{2 * time.Hour})

	rec := RecommendLoad(recommendNow, history)

	if rec.Status != StatusProgress {
		t.Fatalf("expected progress, got %q", rec.Status)
	}
}

func TestRecommendLoadProgressSuggestsMeanPlusOne(t *testing.T) {
	history := historyAt(
		[]int{4, 5, 6},
		[]time.Duration{30 * time.Hour, 2 * 24 * time.Hour, 3 * 24 * time.Hour},
	)

	rec := RecommendLoad(recommendNow, history)

	if rec.Status != StatusProgress {
		t.Fatalf("expected progress, got %q", rec.Status)
	}
	if rec.SuggestedIntensity != 6 {
		t.Fatalf("expected suggested intensity 6, got %d", rec.SuggestedIntensity)
	}
}

func TestRecommendLoadProgressTruncatesMeanTowardZero(t *testing.T) {
	// Mean 5.5 truncates to 5, so the suggestion is 6, not 7.
	history := historyAt(
		[]int{5, 6},
		[]time.Duration{30 * time.Hour, 2 * 24 * time.Hour},
	)

	rec := RecommendLoad(recommendNow, history)

	if rec.SuggestedIntensity != 6 {
		t.Fatalf("expected suggested intensity 6, got %d", rec.SuggestedIntensity)
	}
}

func TestRecommendLoadProgressCapsAtTen(t *testing.T) {
	history := historyAt(
		[]int{10, 10, 10},
		[]time.Duration{30 * time.Hour, 2 * 24 * time.Hour, 3 * 24 * time.Hour},
	)

	rec := RecommendLoad(recommendNow, history)

	if rec.SuggestedIntensity != 10 {
		t.Fatalf("expected suggested intensity capped at 10, got %d", rec.SuggestedIntensity)
	}
}

func TestAssessIntensitiesEmptyListDoesNotFault(t *testing.T) {
	assessment := AssessIntensities(nil)

	if assessment.AverageIntensity != 0 {
		t.Fatalf("expected average 0, got %v", assessment.AverageIntensity)
	}
	if assessment.Recommendation != "Можно увеличить нагрузку." {
		t.Fatalf("unexpected recommendation: %q", assessment.Recommendation)
	}
}

func TestAssessIntensitiesLowMeanSuggestsIncrease(t *testing.T) {
	assessment := AssessIntensities([]int{3, 4, 5})

	if assessment.Recommendation != "Можно увеличить нагрузку." {
		t.Fatalf("unexpected recommendation: %q", assessment.Recommendation)
	}
	if assessment.AverageIntensity != 4 {
		t.Fatalf("expected average 4, got %v", assessment.AverageIntensity)
	}
}

func TestAssessIntensitiesHighMeanSuggestsReduction(t *testing.T) {
	assessment := AssessIntensities([]int{9, 9, 10})

	if assessment.Recommendation != "Лучше снизить интенсивность." {
		t.Fatalf("unexpected recommendation: %q", assessment.Recommendation)
	}
}

func TestAssessIntensitiesModerateMeanSuggestsMaintaining(t *testing.T) {
	assessment := AssessIntensities([]int{6, 7, 8})

	if assessment.Recommendation != "Поддерживай текущий уровень нагрузки." {
		t.Fatalf("unexpected recommendation: %q", assessment.Recommendation)
	}
	if assessment.AverageIntensity != 7 {
		t.Fatalf("expected average 7, got %v", assessment.AverageIntensity)
	}
}
