package dto

import (
	"time"

	"github.com/GlebRadaev/creditmatch/internal/domain"
)

type CreateOfferRequestDTO struct {
	Name        string    `json:"name" example:"Mortgage 2024"`
	Category    int       `json:"category" example:"2" enums:"1,2,3"`
	MinScore    int       `json:"min_score" example:"600"`
	MaxScore    int       `json:"max_score" example:"850"`
	ActiveFrom  time.Time `json:"active_from" example:"2024-01-01T00:00:00Z"`
	ActiveUntil time.Time `json:"active_until" example:"2024-12-31T23:59:59Z"`
}

func (r CreateOfferRequestDTO) Offer() *domain.Offer {
	return &domain.Offer{
		Name:        r.Name,
		Category:    domain.OfferCategory(r.Category),
		MinScore:    r.MinScore,
		MaxScore:    r.MaxScore,
		ActiveFrom:  r.ActiveFrom,
		ActiveUntil: r.ActiveUntil,
	}
}

type OfferResponseDTO struct {
	ID              int    `json:"id" example:"1"`
	Name            string `json:"name" example:"Mortgage 2024"`
	Category        int    `json:"category" example:"2"`
	CategoryDisplay string `json:"category_display" example:"mortgage"`
	MinScore        int    `json:"min_score" example:"600"`
	MaxScore        int    `json:"max_score" example:"850"`
	ActiveFrom      string `json:"active_from" example:"2024-01-01T00:00:00Z"`
	ActiveUntil     string `json:"active_until" example:"2024-12-31T23:59:59Z"`
	LenderID        int    `json:"lender_id" example:"3"`
	CreatedAt       string `json:"created_at" example:"2023-12-09T16:09:57Z"`
}

func NewOfferResponse(o domain.Offer) OfferResponseDTO {
	return OfferResponseDTO{
		ID:              o.ID,
		Name:            o.Name,
		Category:        int(o.Category),
		CategoryDisplay: o.Category.String(),
		MinScore:        o.MinScore,
		MaxScore:        o.MaxScore,
		ActiveFrom:      o.ActiveFrom.Format(time.RFC3339),
		ActiveUntil:     o.ActiveUntil.Format(time.RFC3339),
		LenderID:        o.LenderID,
		CreatedAt:       o.CreatedAt.Format(time.RFC3339),
	}
}
