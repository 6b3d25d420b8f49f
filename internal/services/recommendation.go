package services

import (
	"fmt"
	"time"

	"github.com/kalibr456/Fullstack/internal/models"
)

// recommendationHistoryLimit is how many recent trainings feed the advisor.
const recommendationHistoryLimit = 5

const (
	StatusBeginner = "beginner"
	StatusRecovery = "recovery"
	StatusRest     = "rest"
	StatusProgress = "progress"
)

// RecommendLoad derives a training-load suggestion from the most recent
// trainings, newest first. It is a pure decision table over the history:
// no clock reads, no storage access.
func RecommendLoad(now time.Time, history []models.Training) models.Recommendation {
	if len(history) == 0 {
		return models.Recommendation{
			Status:             StatusBeginner,
			Message:            "Привет! Ты только начинаешь. Рекомендую начать с легкой тренировки (30-40 мин) с низкой интенсивностью, чтобы привыкнуть к ритму.",
			SuggestedIntensity: 3,
		}
	}

	last := history[0]
	// Whole days, floored. A training 47 hours ago counts as 1 day.
	daysSinceLast := int(now.Sub(last.PerformedAt).Hours() / 24)

	if daysSinceLast > 7 {
		return models.Recommendation{
			Status:             StatusRecovery,
			Message:            fmt.Sprintf("Ты не тренировался %d дней. Не спеши ставить рекорды. Проведи втягивающую тренировку на технику.", daysSinceLast),
			SuggestedIntensity: 4,
		}
	}

	if daysSinceLast < 1 && last.Intensity > 7 {
		return models.Recommendation{
			Status:             StatusRest,
			Message:            "Вчера ты отлично поработал! Сегодня организму нужен отдых или очень легкое кардио/йога для восстановления.",
			SuggestedIntensity: 2,
		}
	}

	total := 0
	for _, training := range history {
		total += training.Intensity
	}
	avgIntensity := float64(total) / float64(len(history))

	suggested := int(avgIntensity) + 1
	if suggested > 10 {
		suggested = 10
	}

	return models.Recommendation{
		Status:             StatusProgress,
		Message:            "Ты в отличной форме! Пора немного увеличить нагрузку. Попробуй повысить интенсивность или добавить 10 минут к времени.",
		SuggestedIntensity: suggested,
	}
}

// AssessIntensities is the stateless variant: it scores an arbitrary list of
// intensities supplied by the caller. The mean of an empty list is 0, which
// lands in the increase branch rather than faulting.
func AssessIntensities(intensities []int) models.LoadAssessment {
	var avg float64
	if len(intensities) > 0 {
		total := 0
		for _, intensity := range intensities {
			total += intensity
		}
		avg = float64(total) / float64(len(intensities))
	}

	var recommendation string
	switch {
	case avg < 5:
		recommendation = "Можно увеличить нагрузку."
	case avg > 8:
		recommendation = "Лучше снизить интенсивность."
	default:
		recommendation = "Поддерживай текущий уровень нагрузки."
	}

	return models.LoadAssessment{
		Recommendation:   recommendation,
		AverageIntensity: avg,
	}
}
