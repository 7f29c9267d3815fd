package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "proposalcraft/internal/adapter/http/dto/response"
	"proposalcraft/internal/logger"
	"proposalcraft/internal/usecase"
	"proposalcraft/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DepositPaymentHandler handles the down payment of accepted proposals.
type DepositPaymentHandler struct {
	usecase  usecase.IDepositPaymentUseCase
	mockMode bool
	logger   *zap.Logger
}

func NewDepositPaymentHandler(uc usecase.IDepositPaymentUseCase, mockMode bool, logger *zap.Logger) *DepositPaymentHandler {
	return &DepositPaymentHandler{usecase: uc, mockMode: mockMode, logger: logger}
}

// CreateDeposit godoc
// @Summary Pay the deposit of an accepted proposal
// @Tags public
// @Accept json
// @Produce json
// @Param id path string true "Proposal ID"
// @Param body body request.DepositPaymentCreateRequest false "Mercado Pago payment payload"
// @Success 200 {object} response.DepositPaymentResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /public/proposals/{id}/deposit [post]
func (h *DepositPaymentHandler) CreateDeposit(c *gin.Context) {
	proposalID := c.Param("id")
	log := logger.FromContext(c, h.logger).With(zap.String("proposal_id", proposalID))
	log.Info("[payment][handler] create start")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Info("[payment][handler] invalid payload", zap.Error(err))
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		log.Info("[payment][handler] payload invalid in mock mode; fallback to empty payload", zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateDeposit(c.Request.Context(), proposalID, mpPayload)
	if err != nil {
		appErr := mapDepositPaymentError(err)
		logFailure(log, "[payment][handler] create failed", "", appErr)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info("[payment][handler] create success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))

	c.JSON(http.StatusOK, response.FromDepositPayment(created))
}

// GetDeposit godoc
// @Summary Latest deposit attempt of a proposal
// @Tags public
// @Produce json
// @Param id path string true "Proposal ID"
// @Success 200 {object} response.DepositPaymentResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /public/proposals/{id}/deposit [get]
func (h *DepositPaymentHandler) GetDeposit(c *gin.Context) {
	latest, err := h.usecase.LatestByProposal(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDepositPaymentError(err)
		logFailure(logger.FromContext(c, h.logger), "[payment][handler] get failed", c.Param("id"), appErr)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDepositPayment(latest))
}

// readMPPayload accepts either {"mp_payload": {...}} or a bare Mercado Pago
// body. An empty body yields "{}".
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapDepositPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider is not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalNotAccepted):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_ACCEPTED", "Proposal not accepted", http.StatusConflict)
	case errors.Is(err, usecase.ErrDepositUnavailable):
		return pkg.NewDomainErrorSimple("DEPOSIT_UNAVAILABLE", "Proposal has no budget to charge a deposit from", http.StatusConflict)
	case errors.Is(err, usecase.ErrDepositNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
