package response

import "beneficios_saude/internal/domain/entities"

type EstablishmentResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Active  bool   `json:"active"`
}

func FromEstablishment(e entities.Establishment) EstablishmentResponse {
	return EstablishmentResponse{
		ID:      e.ID,
		Name:    e.Name,
		Address: e.Address,
		City:    e.City,
		State:   e.State,
		Phone:   e.Phone,
		Active:  e.Active,
	}
}

func FromEstablishments(items []entities.Establishment) []EstablishmentResponse {
	out := make([]EstablishmentResponse, 0, len(items))
	for _, e := range items {
		out = append(out, FromEstablishment(e))
	}
	return out
}

type SpecialtyResponse struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	CoparticipationValue float64 `json:"coparticipation_value"`
}

func FromSpecialties(items []entities.Specialty) []SpecialtyResponse {
	out := make([]SpecialtyResponse, 0, len(items))
	for _, s := range items {
		out = append(out, SpecialtyResponse{ID: s.ID, Name: s.Name, CoparticipationValue: s.CoparticipationValue})
	}
	return out
}
