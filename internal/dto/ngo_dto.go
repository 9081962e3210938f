package dto

import "github.com/google/uuid"

type NgoResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	EnglishName string    `json:"english_name"`
	Location    string    `json:"location"`
	Region      string    `json:"region"`
	Speciality  string    `json:"speciality"`
	Languages   []string  `json:"languages"`
	Phone       string    `json:"phone"`
	Website     string    `json:"website"`
	// ContactUrl is a wa.me deep link with the greeting prefilled.
	ContactUrl string `json:"contact_url"`
}

type RegionOptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type HelplineResponse struct {
	Label  string `json:"label"`
	Number string `json:"number"`
}
