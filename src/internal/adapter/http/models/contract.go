package models

type ContractResponse struct {
	ID           int64  `json:"id"`
	ClientID     int64  `json:"clientId"`
	ContractorID int64  `json:"contractorId"`
	Terms        string `json:"terms"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}
