package dto

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/GlebRadaev/creditmatch/internal/domain"
)

const allLenders = "all"

type CreateApplicationRequestDTO struct {
	CustomerID int `json:"customer_id" example:"1"`
	// LenderID is a lender id or the string "all".
	LenderID json.RawMessage `json:"lender_id" swaggertype:"string" example:"all"`
}

// Lender returns nil for "all" and the lender id otherwise. The id may be sent as a number or a numeric string.
func (r CreateApplicationRequestDTO) Lender() (*int, error) {
	var id int
	if err := json.Unmarshal(r.LenderID, &id); err == nil && id > 0 {
		return &id, nil
	}
	var s string
	if err := json.Unmarshal(r.LenderID, &s); err != nil {
		return nil, domain.ErrInvalidLenderID
	}
	if s == allLenders {
		return nil, nil
	}
	if id, err := strconv.Atoi(s); err == nil && id > 0 {
		return &id, nil
	}
	return nil, domain.ErrInvalidLenderID
}

type UpdateStatusRequestDTO struct {
	Status int `json:"status" example:"2" enums:"1,2,3,4,5,6"`
}

type ApplicationResponseDTO struct {
	ID            int    `json:"id" example:"1"`
	CustomerID    int    `json:"customer_id" example:"1"`
	OfferID       int    `json:"offer_id" example:"4"`
	Status        int    `json:"status" example:"1"`
	StatusDisplay string `json:"status_display" example:"New"`
	CreatedAt     string `json:"created_at" example:"2023-12-09T16:09:57Z"`
	UpdatedAt     string `json:"updated_at" example:"2023-12-09T16:09:57Z"`
}

func NewApplicationResponse(a domain.Application) ApplicationResponseDTO {
	return ApplicationResponseDTO{
		ID:            a.ID,
		CustomerID:    a.CustomerID,
		OfferID:       a.OfferID,
		Status:        int(a.Status),
		StatusDisplay: a.Status.Label(),
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     a.UpdatedAt.Format(time.RFC3339),
	}
}

func NewApplicationsResponse(apps []domain.Application) []ApplicationResponseDTO {
	res := make([]ApplicationResponseDTO, 0, len(apps))
	for _, a := range apps {
		res = append(res, NewApplicationResponse(a))
	}
	return res
}
