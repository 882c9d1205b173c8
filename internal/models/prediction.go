package models

// HealthAdvice is the static advice bundle attached to a prediction result,
// keyed by (disease, outcome).
type HealthAdvice struct {
	GeneralTips []string `json:"general_tips"`
	DoctorVisit string   `json:"doctor_visit"`
	Resources   []string `json:"resources"`
}

// PredictionResult is the reply body of the disease prediction routes.
type PredictionResult struct {
	Result       string       `json:"result"`
	Confidence   float64      `json:"confidence"`
	CurrentTime  string       `json:"current_time"`
	HealthAdvice HealthAdvice `json:"health_advice"`
	DiseaseType  string       `json:"disease_type"`
}
