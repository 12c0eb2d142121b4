package offers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/creditmatch/internal/domain"
	"github.com/GlebRadaev/creditmatch/internal/dto"
	"github.com/GlebRadaev/creditmatch/internal/handlers/httpx"
	"github.com/GlebRadaev/creditmatch/pkg/utils"
)

//go:generate mockgen -source=offers.go -destination=mock_offers.go -package=offers

type Service interface {
	Create(ctx context.Context, actor domain.Actor, offer *domain.Offer) (*domain.Offer, error)
	ListActive(ctx context.Context, actor domain.Actor) ([]domain.Offer, error)
	Get(ctx context.Context, actor domain.Actor, id int) (*domain.Offer, error)
}

type OfferHandler struct {
	offerService Service
}

func New(offerService Service) *OfferHandler {
	return &OfferHandler{
		offerService: offerService,
	}
}

// CreateOffer godoc
//
//	@Summary		Publish an offer
//	@Description	Lenders publish a credit offer with a score range and an activity window
//	@Tags			Offers
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateOfferRequestDTO	true	"Offer"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.OfferResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid offer"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Only lenders publish offers"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/offers [post]
func (h *OfferHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.Actor(w, r)
	if !ok {
		return
	}
	var req dto.CreateOfferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	offer, err := h.offerService.Create(r.Context(), actor, req.Offer())
	if err != nil {
		httpx.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewOfferResponse(*offer))
}

// GetOffers godoc
//
//	@Summary		List active offers
//	@Description	Partners see active offers of every lender, lenders see their own active offers
//	@Tags			Offers
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.OfferResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/offers [get]
func (h *OfferHandler) GetOffers(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.Actor(w, r)
	if !ok {
		return
	}
	offers, err := h.offerService.ListActive(r.Context(), actor)
	if err != nil {
		httpx.Respond(w, err)
		return
	}

	response := make([]dto.OfferResponseDTO, 0, len(offers))
	for _, offer := range offers {
		response = append(response, dto.NewOfferResponse(offer))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetOffer godoc
//
//	@Summary		Get an offer
//	@Tags			Offers
//	@Produce		json
//	@Param			id	path	int	true	"Offer id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OfferResponseDTO
//	@Failure		404	{object}	utils.Response	"Offer not found"
//	@Router			/api/offers/{id} [get]
func (h *OfferHandler) GetOffer(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.Actor(w, r)
	if !ok {
		return
	}
	id, ok := httpx.PathID(w, r)
	if !ok {
		return
	}
	offer, err := h.offerService.Get(r.Context(), actor, id)
	if err != nil {
		httpx.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOfferResponse(*offer))
}
