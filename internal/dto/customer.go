package dto

import (
	"fmt"
	"time"

	"github.com/GlebRadaev/creditmatch/internal/domain"
)

const (
	birthDateLayout = "2006-01-02"

	modeManual = "manual"
	modeAuto   = "auto"
)

type CreateCustomerRequestDTO struct {
	Surname        string `json:"surname" example:"Ivanov"`
	GivenName      string `json:"given_name" example:"Ivan"`
	Patronymic     string `json:"patronymic" example:"Ivanovich"`
	BirthDate      string `json:"birth_date" example:"1990-05-17"`
	Phone          string `json:"phone" example:"+79990001122"`
	PassportNumber string `json:"passport_number" example:"4510123456"`
	CreditScore    *int   `json:"credit_score" example:"720"`
	// MatchingMode defaults to both modes when omitted.
	MatchingMode []string `json:"matching_mode" example:"manual,auto"`
}

func (r CreateCustomerRequestDTO) Customer() (*domain.Customer, error) {
	birthDate, err := time.Parse(birthDateLayout, r.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("%w: birth_date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	mode, err := ParseMatchingMode(r.MatchingMode)
	if err != nil {
		return nil, err
	}
	return &domain.Customer{
		Surname:        r.Surname,
		GivenName:      r.GivenName,
		Patronymic:     r.Patronymic,
		BirthDate:      birthDate,
		Phone:          r.Phone,
		PassportNumber: r.PassportNumber,
		CreditScore:    r.CreditScore,
		Mode:           mode,
	}, nil
}

// ParseMatchingMode maps a list of "manual" and "auto" to the mode flags. A nil list means both.
func ParseMatchingMode(values []string) (domain.MatchingMode, error) {
	if values == nil {
		return domain.DefaultMatchingMode(), nil
	}
	var mode domain.MatchingMode
	for _, v := range values {
		switch v {
		case modeManual:
			mode.Manual = true
		case modeAuto:
			mode.Auto = true
		default:
			return mode, fmt.Errorf("%w: unknown matching mode %q", domain.ErrInvalidInput, v)
		}
	}
	return mode, nil
}

func FormatMatchingMode(mode domain.MatchingMode) []string {
	values := []string{}
	if mode.Manual {
		values = append(values, modeManual)
	}
	if mode.Auto {
		values = append(values, modeAuto)
	}
	return values
}

type CustomerResponseDTO struct {
	ID             int      `json:"id" example:"1"`
	Surname        string   `json:"surname" example:"Ivanov"`
	GivenName      string   `json:"given_name" example:"Ivan"`
	Patronymic     string   `json:"patronymic" example:"Ivanovich"`
	BirthDate      string   `json:"birth_date" example:"1990-05-17"`
	Phone          string   `json:"phone" example:"+79990001122"`
	PassportNumber string   `json:"passport_number" example:"4510123456"`
	CreditScore    *int     `json:"credit_score" example:"720"`
	PartnerID      int      `json:"partner_id" example:"2"`
	MatchingMode   []string `json:"matching_mode" example:"manual,auto"`
	CreatedAt      string   `json:"created_at" example:"2023-12-09T16:09:57Z"`
}

func NewCustomerResponse(c domain.Customer) CustomerResponseDTO {
	return CustomerResponseDTO{
		ID:             c.ID,
		Surname:        c.Surname,
		GivenName:      c.GivenName,
		Patronymic:     c.Patronymic,
		BirthDate:      c.BirthDate.Format(birthDateLayout),
		Phone:          c.Phone,
		PassportNumber: c.PassportNumber,
		CreditScore:    c.CreditScore,
		PartnerID:      c.PartnerID,
		MatchingMode:   FormatMatchingMode(c.Mode),
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
	}
}
