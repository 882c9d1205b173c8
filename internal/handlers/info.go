package handlers

import "net/http"

// Static health-content tables. Served as JSON; rendering is the frontend's
// concern.

var healthTipsByCategory = map[string][]string{
	"Nutrition": {
		"Eat a variety of colorful fruits and vegetables daily",
		"Choose whole grains over refined grains",
		"Limit added sugars and saturated fats",
		"Stay hydrated with water instead of sugary drinks",
		"Practice portion control",
	},
	"Exercise": {
		"Aim for at least 150 minutes of moderate exercise per week",
		"Include strength training twice a week",
		"Take breaks from sitting every 30 minutes",
		"Find activities you enjoy to stay consistent",
		"Warm up before and cool down after exercise",
	},
	"Mental Health": {
		"Practice mindfulness or meditation daily",
		"Maintain social connections",
		"Get 7-9 hours of quality sleep per night",
		"Set realistic goals and celebrate small wins",
		"Seek professional help when needed",
	},
	"Preventive Care": {
		"Get regular health check-ups",
		"Stay up to date on vaccinations",
		"Know your family medical history",
		"Don't ignore persistent symptoms",
		"Follow screening guidelines for your age group",
	},
}

var emergencyContacts = map[string]map[string]string{
	"USA": {
		"Emergency":          "911",
		"Suicide Prevention": "988",
		"Poison Control":     "1-800-222-1222",
		"Domestic Violence":  "1-800-799-7233",
	},
	"UK": {
		"Emergency":                       "999 or 112",
		"NHS Non-emergency":               "111",
		"Samaritans (Suicide Prevention)": "116 123",
	},
	"Canada": {
		"Emergency":          "911",
		"Suicide Prevention": "1-833-456-4566",
		"Poison Control":     "1-844-764-7669",
	},
}

var emergencySymptoms = []string{
	"Chest pain or pressure (especially radiating to arm, jaw, or back)",
	"Difficulty breathing or shortness of breath",
	"Severe bleeding that won't stop",
	"Sudden weakness or numbness in face, arm, or leg (especially on one side)",
	"Sudden confusion, trouble speaking, or understanding",
	"Sudden trouble seeing in one or both eyes",
	"Sudden severe headache with no known cause",
	"Fainting or unconsciousness",
	"Suicidal or homicidal thoughts",
	"Severe burns",
	"Choking",
	"Seizures that last more than 5 minutes",
	"Severe allergic reaction (difficulty breathing, swelling of face/throat)",
}

// InfoHandler serves the static health-content endpoints.
type InfoHandler struct{}

func NewInfoHandler() *InfoHandler {
	return &InfoHandler{}
}

// HealthTips handles GET /health_tips.
func (h *InfoHandler) HealthTips(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tips_by_category": healthTipsByCategory,
	})
}

// EmergencyInfo handles GET /emergency_info.
func (h *InfoHandler) EmergencyInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"emergency_contacts": emergencyContacts,
		"emergency_symptoms": emergencySymptoms,
	})
}
