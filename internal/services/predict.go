package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
)

// ErrModelUnavailable is returned by a predictor whose underlying model
// failed to load. Prediction routes surface it as a 503 instead of guessing.
var ErrModelUnavailable = errors.New("prediction model unavailable")

// Diseases served by the prediction routes.
var PredictionDiseases = []string{"diabetes", "heart", "kidney"}

// Predictor is the capability interface the prediction routes depend on.
type Predictor interface {
	Predict(features []float64) (int, error)
	PredictProba(features []float64) ([]float64, error)
}

// LogisticModel is a pre-trained binary classifier loaded from a JSON
// coefficient file.
type LogisticModel struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
}

func (m *LogisticModel) Predict(features []float64) (int, error) {
	proba, err := m.PredictProba(features)
	if err != nil {
		return 0, err
	}
	if proba[1] >= 0.5 {
		return 1, nil
	}
	return 0, nil
}

func (m *LogisticModel) PredictProba(features []float64) ([]float64, error) {
	if len(features) != len(m.Weights) {
		return nil, fmt.Errorf("expected %d features, got %d", len(m.Weights), len(features))
	}

	z := m.Bias
	for i, w := range m.Weights {
		z += w * features[i]
	}
	p := 1.0 / (1.0 + math.Exp(-z))

	return []float64{1 - p, p}, nil
}

// unavailableModel stands in for a model that failed to load.
type unavailableModel struct{}

func (unavailableModel) Predict([]float64) (int, error) { return 0, ErrModelUnavailable }

func (unavailableModel) PredictProba([]float64) ([]float64, error) {
	return nil, ErrModelUnavailable
}

// LoadModels loads every disease model from dir. A model that cannot be
// loaded degrades to an unavailable predictor for that disease only.
func LoadModels(dir string) map[string]Predictor {
	predictors := make(map[string]Predictor, len(PredictionDiseases))
	for _, disease := range PredictionDiseases {
		model, err := loadLogisticModel(filepath.Join(dir, disease+".json"))
		if err != nil {
			log.Printf("✗ Error loading %s model: %v", disease, err)
			predictors[disease] = unavailableModel{}
			continue
		}
		log.Printf("✓ %s model loaded", disease)
		predictors[disease] = model
	}
	return predictors
}

func loadLogisticModel(path string) (*LogisticModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var model LogisticModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, err
	}
	if len(model.Weights) == 0 {
		return nil, fmt.Errorf("model file %s has no weights", path)
	}
	return &model, nil
}
