package models

type Recommendation struct {
	Status             string `json:"status"`
	Message            string `json:"message"`
	SuggestedIntensity int    `json:"suggested_intensity"`
}

type LoadAssessment struct {
	Recommendation   string  `json:"recommendation"`
	AverageIntensity float64 `json:"average_intensity"`
}
