package handlers

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"

	"healthai-backend/internal/models"
)

var specialtyNames = map[string]string{
	"diabetes": "Endocrinologist",
	"heart":    "Cardiologist",
	"kidney":   "Nephrologist",
	"general":  "General Practitioner",
}

// DoctorsHandler serves the mock nearby-doctors lookup.
type DoctorsHandler struct{}

func NewDoctorsHandler() *DoctorsHandler {
	return &DoctorsHandler{}
}

// NearbyDoctors handles POST /api/nearby-doctors. Accepts JSON or form data.
func (h *DoctorsHandler) NearbyDoctors(w http.ResponseWriter, r *http.Request) {
	req := models.NearbyDoctorsRequest{Specialty: "general"}

	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
			return
		}
		if req.Specialty == "" {
			req.Specialty = "general"
		}
	} else {
		r.ParseForm()
		if s := r.FormValue("specialty"); s != "" {
			req.Specialty = s
		}
		req.Latitude, _ = strconv.ParseFloat(r.FormValue("latitude"), 64)
		req.Longitude, _ = strconv.ParseFloat(r.FormValue("longitude"), 64)
	}

	specialtyName, ok := specialtyNames[req.Specialty]
	if !ok {
		specialtyName = "Specialist"
	}

	writeJSON(w, http.StatusOK, models.NearbyDoctorsResponse{
		Success:       true,
		SpecialtyName: specialtyName,
		Results:       mockDoctors(specialtyName, req.Specialty, req.Latitude, req.Longitude),
	})
}

// mockDoctors generates three plausible provider records near the given
// coordinates. Values are random; the record shape is the contract.
func mockDoctors(specialtyName, specialty string, lat, lng float64) []models.Doctor {
	doctors := make([]models.Doctor, 0, 3)
	for i := 1; i <= 3; i++ {
		name := fmt.Sprintf("%s Center #%d", specialtyName, i)
		street := "Medical"
		if i == 1 {
			name = fmt.Sprintf("City General Hospital - %s", specialtyName)
			street = "Main"
		}

		minutes := "00"
		if rand.Float64() > 0.5 {
			minutes = "30"
		}

		doctors = append(doctors, models.Doctor{
			ID:           i,
			Name:         name,
			Distance:     roundTo(0.5+rand.Float64()*4.5, 1),
			Phone:        fmt.Sprintf("(555) %d-%d", 100+rand.Intn(900), 1000+rand.Intn(9000)),
			OpeningHours: fmt.Sprintf("Open until %d:%s PM", 5+rand.Intn(4), minutes),
			Rating:       roundTo(3.5+rand.Float64()*1.5, 1),
			ReviewCount:  50 + rand.Intn(151),
			Address:      fmt.Sprintf("%d %s St.", 100+rand.Intn(900), street),
			MapLink:      fmt.Sprintf("https://www.google.com/maps?q=%s+near+me@%v,%v", strings.ReplaceAll(specialtyName, " ", "+"), lat, lng),
			ImageURL:     fmt.Sprintf("https://source.unsplash.com/random/300x200/?hospital,%s", specialty),
		})
	}
	return doctors
}

func roundTo(v float64, decimals int) float64 {
	shift := 1.0
	for i := 0; i < decimals; i++ {
		shift *= 10
	}
	return float64(int(v*shift+0.5)) / shift
}
