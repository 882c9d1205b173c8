package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"healthai-backend/internal/models"
	"healthai-backend/internal/services"
)

// PredictionHandler serves the disease prediction routes. It depends only on
// the Predictor capability interface so tests can substitute fakes.
type PredictionHandler struct {
	predictors map[string]services.Predictor
}

func NewPredictionHandler(predictors map[string]services.Predictor) *PredictionHandler {
	return &PredictionHandler{predictors: predictors}
}

// formFloat reads a form field as a float, defaulting to 0 when absent.
// A present but non-numeric value is an input error.
func formFloat(r *http.Request, name string) (float64, error) {
	val := r.FormValue(name)
	if val == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, errors.New("Invalid input: " + name + ". Please enter numeric values.")
	}
	return f, nil
}

func formFloats(r *http.Request, names []string) ([]float64, error) {
	values := make([]float64, len(names))
	for i, name := range names {
		f, err := formFloat(r, name)
		if err != nil {
			return nil, err
		}
		values[i] = f
	}
	return values, nil
}

// Diabetes handles POST /diabetes.
func (h *PredictionHandler) Diabetes(w http.ResponseWriter, r *http.Request) {
	fields := []string{
		"pregnancies", "glucose", "blood_pressure", "skin_thickness",
		"insulin", "bmi", "diabetes_pedigree", "age",
	}
	in, err := formFloats(r, fields)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", err.Error(), r))
		return
	}

	pregnancies, age := in[0], in[7]
	if !(0 <= pregnancies && pregnancies <= 20) || !(0 <= age && age <= 120) {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR",
			"Please enter valid values for pregnancies (0-20) and age (0-120)", r))
		return
	}

	features := diabetesFeatures(in)
	h.respond(w, r, "diabetes", features,
		"The person is predicted to have diabetes",
		"The person is predicted to not have diabetes")
}

// diabetesFeatures derives the 18-value model input: the 8 raw fields plus
// the categorical BMI, insulin and glucose bands the model was trained on.
func diabetesFeatures(in []float64) []float64 {
	glucose, insulin, bmi := in[1], in[4], in[5]

	bmiUnderweight := band(bmi <= 18.5)
	bmiOverweight := band(24.9 < bmi && bmi <= 29.9)
	bmiObesity1 := band(29.9 < bmi && bmi <= 34.9)
	bmiObesity2 := band(34.9 < bmi && bmi <= 39.9)
	bmiObesity3 := band(bmi > 39.9)

	insulinNormal := band(16 <= insulin && insulin <= 166)

	var glucoseLow, glucoseNormal, glucoseOverweight, glucoseSecret float64
	switch {
	case glucose <= 70:
		glucoseLow = 1
	case glucose <= 99:
		glucoseNormal = 1
	case glucose <= 126:
		glucoseOverweight = 1
	default:
		glucoseSecret = 1
	}

	features := make([]float64, 0, 18)
	features = append(features, in...)
	features = append(features,
		bmiUnderweight, bmiOverweight, bmiObesity1, bmiObesity2, bmiObesity3,
		insulinNormal, glucoseLow, glucoseNormal, glucoseOverweight, glucoseSecret,
	)
	return features
}

// Heart handles POST /heart.
func (h *PredictionHandler) Heart(w http.ResponseWriter, r *http.Request) {
	fields := []string{
		"age", "sex", "cp", "trestbps", "chol", "fbs", "restecg",
		"thalach", "exang", "oldpeak", "slope", "ca", "thal",
	}
	features, err := formFloats(r, fields)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", err.Error(), r))
		return
	}

	cp, fbs, restecg := features[2], features[5], features[6]
	if !(0 <= cp && cp <= 3) || !(0 <= fbs && fbs <= 1) || !(0 <= restecg && restecg <= 2) {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR",
			"Please enter valid values for all fields", r))
		return
	}

	h.respond(w, r, "heart", features,
		"This person is predicted to have heart disease",
		"This person is predicted to not have heart disease")
}

// Kidney handles POST /kidney.
func (h *PredictionHandler) Kidney(w http.ResponseWriter, r *http.Request) {
	fields := []string{
		"age", "blood_pressure", "specific_gravity", "albumin", "sugar",
		"red_blood_cells", "pus_cell", "pus_cell_clumps", "bacteria",
		"blood_glucose_random", "blood_urea", "serum_creatinine", "sodium",
		"potassium", "haemoglobin", "packed_cell_volume",
		"white_blood_cell_count", "red_blood_cell_count", "hypertension",
		"diabetes_mellitus", "coronary_artery_disease", "appetite",
		"peda_edema", "aanemia",
	}
	features, err := formFloats(r, fields)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", err.Error(), r))
		return
	}

	// The last six fields are binary flags.
	for _, v := range features[18:] {
		if v != 0 && v != 1 {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR",
				"Please enter valid values (0 or 1) for binary fields", r))
			return
		}
	}

	h.respond(w, r, "kidney", features,
		"The person is predicted to have kidney disease",
		"The person is predicted to not have kidney disease")
}

func (h *PredictionHandler) respond(w http.ResponseWriter, r *http.Request, disease string, features []float64, positiveMsg, negativeMsg string) {
	predictor, ok := h.predictors[disease]
	if !ok {
		h.handlePredictError(w, r, services.ErrModelUnavailable)
		return
	}

	prediction, err := predictor.Predict(features)
	if err != nil {
		h.handlePredictError(w, r, err)
		return
	}

	proba, err := predictor.PredictProba(features)
	if err != nil {
		h.handlePredictError(w, r, err)
		return
	}

	result := negativeMsg
	if prediction == 1 {
		result = positiveMsg
	}

	writeJSON(w, http.StatusOK, models.PredictionResult{
		Result:       result,
		Confidence:   confidence(proba),
		CurrentTime:  time.Now().Format("2006-01-02 15:04:05"),
		HealthAdvice: services.AdviceFor(disease, prediction == 1),
		DiseaseType:  disease,
	})
}

func (h *PredictionHandler) handlePredictError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, services.ErrModelUnavailable) {
		writeJSON(w, http.StatusServiceUnavailable, errorResp("PREDICTION_UNAVAILABLE",
			"Prediction is temporarily unavailable. Please try again later.", r))
		return
	}
	writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", err.Error(), r))
}

// confidence is the highest class probability as a percentage, rounded to
// two decimals.
func confidence(proba []float64) float64 {
	max := 0.0
	for _, p := range proba {
		if p > max {
			max = p
		}
	}
	return math.Round(max*100*100) / 100
}

func band(cond bool) float64 {
	if cond {
		return 1
	}
	return 0
}
