package request

type ReferralRequest struct {
	EstablishmentName string `json:"establishment_name" binding:"required"`
	Address           string `json:"address"`
	City              string `json:"city"`
	State             string `json:"state"`
	Phone             string `json:"phone"`
	Notes             string `json:"notes"`
}
