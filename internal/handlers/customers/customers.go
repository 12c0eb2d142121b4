package customers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/creditmatch/internal/domain"
	"github.com/GlebRadaev/creditmatch/internal/dto"
	"github.com/GlebRadaev/creditmatch/internal/handlers/httpx"
	"github.com/GlebRadaev/creditmatch/pkg/utils"
)

//go:generate mockgen -source=customers.go -destination=mock_customers.go -package=customers

type Service interface {
	Create(ctx context.Context, actor domain.Actor, customer *domain.Customer) (*domain.Customer, error)
	List(ctx context.Context, actor domain.Actor) ([]domain.Customer, error)
	Get(ctx context.Context, actor domain.Actor, id int) (*domain.Customer, error)
}

type CustomerHandler struct {
	customerService Service
}

func New(customerService Service) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// CreateCustomer godoc
//
//	@Summary		Create a customer profile
//	@Description	Partners register a customer together with the matching modes allowed for the profile
//	@Tags			Customers
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateCustomerRequestDTO	true	"Customer"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.CustomerResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid customer"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Only partners create customers"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/customers [post]
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.Actor(w, r)
	if !ok {
		return
	}
	var req dto.CreateCustomerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	customer, err := req.Customer()
	if err != nil {
		httpx.Respond(w, err)
		return
	}

	created, err := h.customerService.Create(r.Context(), actor, customer)
	if err != nil {
		httpx.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewCustomerResponse(*created))
}

// GetCustomers godoc
//
//	@Summary	List the partner's customers
//	@Tags		Customers
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.CustomerResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	403	{object}	utils.Response	"Only partners list customers"
//	@Router		/api/customers [get]
func (h *CustomerHandler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.Actor(w, r)
	if !ok {
		return
	}
	customers, err := h.customerService.List(r.Context(), actor)
	if err != nil {
		httpx.Respond(w, err)
		return
	}

	response := make([]dto.CustomerResponseDTO, 0, len(customers))
	for _, c := range customers {
		response = append(response, dto.NewCustomerResponse(c))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetCustomer godoc
//
//	@Summary		Get a customer profile
//	@Description	Visible to the owning partner and to lenders holding an application of the customer
//	@Tags			Customers
//	@Produce		json
//	@Param			id	path	int	true	"Customer id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CustomerResponseDTO
//	@Failure		404	{object}	utils.Response	"Customer not found"
//	@Router			/api/customers/{id} [get]
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.Actor(w, r)
	if !ok {
		return
	}
	id, ok := httpx.PathID(w, r)
	if !ok {
		return
	}
	customer, err := h.customerService.Get(r.Context(), actor, id)
	if err != nil {
		httpx.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCustomerResponse(*customer))
}
