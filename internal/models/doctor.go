package models

// Doctor is one mock provider record returned by the nearby-doctors API.
type Doctor struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Distance     float64 `json:"distance"`
	Phone        string  `json:"phone"`
	OpeningHours string  `json:"opening_hours"`
	Rating       float64 `json:"rating"`
	ReviewCount  int     `json:"review_count"`
	Address      string  `json:"address"`
	MapLink      string  `json:"map_link"`
	ImageURL     string  `json:"image_url"`
}

// NearbyDoctorsRequest is the lookup payload for the nearby-doctors API.
type NearbyDoctorsRequest struct {
	Specialty string  `json:"specialty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NearbyDoctorsResponse is the nearby-doctors reply envelope.
type NearbyDoctorsResponse struct {
	Success       bool     `json:"success"`
	SpecialtyName string   `json:"specialtyName"`
	Results       []Doctor `json:"results"`
}
