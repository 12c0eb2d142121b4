package applications

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/creditmatch/internal/domain"
	"github.com/GlebRadaev/creditmatch/internal/dto"
	"github.com/GlebRadaev/creditmatch/internal/handlers/httpx"
	"github.com/GlebRadaev/creditmatch/internal/matching"
	"github.com/GlebRadaev/creditmatch/pkg/utils"
)

//go:generate mockgen -source=applications.go -destination=mock_applications.go -package=applications

type Service interface {
	Create(ctx context.Context, actor domain.Actor, customerID int, lenderID *int) (*matching.Result, error)
	List(ctx context.Context, actor domain.Actor, status domain.ApplicationStatus) ([]domain.Application, error)
	Get(ctx context.Context, actor domain.Actor, id int) (*domain.Application, error)
	UpdateStatus(ctx context.Context, actor domain.Actor, id int, status domain.ApplicationStatus) (*domain.Application, error)
}

const (
	msgQueued       = "Matching across all lenders has been scheduled"
	msgNoOffers     = "No suitable offers found for the customer"
	msgAlreadyApply = "The customer has already applied to all suitable offers"
	msgSuperseded   = "Applications for the customer were just created by another request, nothing was added"
)

type ApplicationHandler struct {
	applicationService Service
}

func New(applicationService Service) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

// CreateApplications godoc
//
//	@Summary		Match a customer against offers
//	@Description	With a lender id the customer is matched against that lender's active offers and the created applications are returned.
//	@Description	With "all" matching across every lender is scheduled in the background.
//	@Tags			Applications
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateApplicationRequestDTO	true	"Customer and lender"
//	@Security		BearerAuth
//	@Success		201	{array}		dto.ApplicationResponseDTO	"Applications created"
//	@Success		200	{object}	utils.Response				"Nothing new to apply for"
//	@Success		202	{object}	utils.Response				"Matching scheduled"
//	@Failure		400	{object}	utils.Response				"Invalid request"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		403	{object}	utils.Response				"Only partners create applications"
//	@Failure		404	{object}	utils.Response				"Customer or lender not found"
//	@Failure		422	{object}	utils.Response				"Customer has no credit score"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/applications [post]
func (h *ApplicationHandler) CreateApplications(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.Actor(w, r)
	if !ok {
		return
	}
	var req dto.CreateApplicationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CustomerID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	lenderID, err := req.Lender()
	if err != nil {
		httpx.Respond(w, err)
		return
	}

	result, err := h.applicationService.Create(r.Context(), actor, req.CustomerID, lenderID)
	if err != nil {
		httpx.Respond(w, err)
		return
	}

	switch {
	case result == nil:
		utils.RespondWithError(w, http.StatusAccepted, msgQueued)
	case len(result.New) > 0:
		utils.RespondWithJSON(w, http.StatusCreated, dto.NewApplicationsResponse(result.New))
	case result.Superseded:
		utils.RespondWithError(w, http.StatusOK, msgSuperseded)
	case len(result.Existing) == 0:
		utils.RespondWithError(w, http.StatusOK, msgNoOffers)
	default:
		utils.RespondWithError(w, http.StatusOK, msgAlreadyApply)
	}
}

// GetApplications godoc
//
//	@Summary		List applications
//	@Description	Partners see applications of their customers, lenders see applications on their offers
//	@Tags			Applications
//	@Produce		json
//	@Param			status	query	int	false	"Status filter"	Enums(1,2,3,4,5,6)
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ApplicationResponseDTO
//	@Failure		400	{object}	utils.Response	"Unknown status"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/applications [get]
func (h *ApplicationHandler) GetApplications(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.Actor(w, r)
	if !ok {
		return
	}
	var status domain.ApplicationStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			httpx.Respond(w, domain.ErrInvalidStatus)
			return
		}
		status = domain.ApplicationStatus(v)
	}

	apps, err := h.applicationService.List(r.Context(), actor, status)
	if err != nil {
		httpx.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewApplicationsResponse(apps))
}

// GetApplication godoc
//
//	@Summary	Get an application
//	@Tags		Applications
//	@Produce	json
//	@Param		id	path	int	true	"Application id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.ApplicationResponseDTO
//	@Failure	404	{object}	utils.Response	"Application not found"
//	@Router		/api/applications/{id} [get]
func (h *ApplicationHandler) GetApplication(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.Actor(w, r)
	if !ok {
		return
	}
	id, ok := httpx.PathID(w, r)
	if !ok {
		return
	}
	app, err := h.applicationService.Get(r.Context(), actor, id)
	if err != nil {
		httpx.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewApplicationResponse(*app))
}

// UpdateApplicationStatus godoc
//
//	@Summary		Change application status
//	@Description	Lenders move applications on their own offers through the lifecycle
//	@Tags			Applications
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Application id"
//	@Param			request	body	dto.UpdateStatusRequestDTO	true	"New status"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ApplicationResponseDTO
//	@Failure		400	{object}	utils.Response	"Unknown status or caller is not a lender"
//	@Failure		404	{object}	utils.Response	"Application not found"
//	@Failure		409	{object}	utils.Response	"Transition not allowed"
//	@Router			/api/applications/{id} [patch]
func (h *ApplicationHandler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.Actor(w, r)
	if !ok {
		return
	}
	id, ok := httpx.PathID(w, r)
	if !ok {
		return
	}
	var req dto.UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	app, err := h.applicationService.UpdateStatus(r.Context(), actor, id, domain.ApplicationStatus(req.Status))
	if errors.Is(err, domain.ErrForbidden) {
		utils.RespondWithError(w, http.StatusBadRequest, "Only lenders can change application status")
		return
	}
	if err != nil {
		httpx.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewApplicationResponse(*app))
}
