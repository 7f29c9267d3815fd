package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"proposalcraft/internal/domain/entities"
	"proposalcraft/internal/metrics"
	"proposalcraft/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrDepositNotFound                = errors.New("deposit payment not found")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrProposalNotAccepted            = errors.New("proposal not accepted")
	ErrDepositUnavailable             = errors.New("proposal has no budget to charge a deposit from")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IDepositPaymentUseCase charges the down payment of an accepted proposal.
type IDepositPaymentUseCase interface {
	CreateDeposit(ctx context.Context, proposalID string, mpPayload json.RawMessage) (entities.DepositPayment, error)
	LatestByProposal(ctx context.Context, proposalID string) (entities.DepositPayment, error)
}

type DepositPaymentUseCase struct {
	repo         interfaces.IDepositPaymentRepository
	proposalRepo interfaces.IProposalRepository
	gateway      interfaces.IPaymentGateway
	percent      int
	mockMode     bool
	metrics      *metrics.Metrics
	logger       *zap.Logger
	now          func() time.Time
}

var _ IDepositPaymentUseCase = (*DepositPaymentUseCase)(nil)

// NewDepositPaymentUseCase builds the use case. percent is the share of the
// budget charged as deposit; in mockMode payload checks are relaxed because
// the gateway approves everything.
func NewDepositPaymentUseCase(
	repo interfaces.IDepositPaymentRepository,
	proposalRepo interfaces.IProposalRepository,
	gateway interfaces.IPaymentGateway,
	percent int,
	mockMode bool,
	m *metrics.Metrics,
	logger *zap.Logger,
) *DepositPaymentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DepositPaymentUseCase{
		repo:         repo,
		proposalRepo: proposalRepo,
		gateway:      gateway,
		percent:      percent,
		mockMode:     mockMode,
		metrics:      m,
		logger:       logger,
		now:          utcNow,
	}
}

// DepositAmount is the deposit due for a budget tier, rounded to cents.
func DepositAmount(tier entities.BudgetTier, percent int) float64 {
	return math.Round(entities.BudgetAmount(tier)*float64(percent)) / 100
}

func (u *DepositPaymentUseCase) CreateDeposit(ctx context.Context, proposalID string, mpPayload json.RawMessage) (entities.DepositPayment, error) {
	log := u.logger.With(zap.String("proposal_id", strings.TrimSpace(proposalID)))
	log.Info("[payment][usecase] create-deposit start", zap.Int("payload_len", len(mpPayload)))

	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return entities.DepositPayment{}, ErrInvalidProposalID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.mockMode {
			log.Info("[payment][usecase] invalid payload")
			return entities.DepositPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Warn("[payment][usecase] gateway not configured")
		return entities.DepositPayment{}, ErrPaymentGatewayNotConfigured
	}

	p, err := load(ctx, u.proposalRepo, proposalID)
	if err != nil {
		log.Info("[payment][usecase] proposal not loaded", zap.Error(err))
		return entities.DepositPayment{}, err
	}
	if p.Status != entities.ProposalStatusAccepted {
		log.Info("[payment][usecase] proposal not accepted", zap.String("status", string(p.Status)))
		return entities.DepositPayment{}, ErrProposalNotAccepted
	}
	amount := DepositAmount(p.BudgetTier, u.percent)
	if amount <= 0 {
		return entities.DepositPayment{}, ErrDepositUnavailable
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		return entities.DepositPayment{}, ErrInvalidMPPayload
	}
	if !u.mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
		log.Info("[payment][usecase] missing payment_method_id")
		return entities.DepositPayment{}, ErrInvalidMPPayload
	}
	ensurePayerDefaults(reqMap, p.ClientEmail)
	if !u.mockMode && !hasPayer(reqMap) {
		log.Info("[payment][usecase] missing/invalid payer")
		return entities.DepositPayment{}, ErrInvalidMPPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = p.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Entrada - %s - %s", entities.ProjectTypeLabel(p.ProjectType), p.ClientName)
	}
	// The amount always comes from the stored proposal.
	reqMap["transaction_amount"] = amount
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.DepositPayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Warn("[payment][usecase] payment gateway failed", zap.Error(err))
		return entities.DepositPayment{}, classifyGatewayError(err)
	}
	log.Info("[payment][usecase] payment gateway success",
		zap.String("provider_payment_id", providerPaymentID),
		zap.String("provider_status", providerStatus))

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn("[payment][usecase] provider response unmarshal failed", zap.Error(err))
	}

	d := entities.DepositPayment{
		ID:           providerPaymentID,
		ProposalID:   p.ID,
		Amount:       amount,
		Date:         u.now(),
		Status:       entities.PaymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, d)
	if err != nil {
		log.Error("[payment][usecase] deposit repository create failed", zap.String("payment_id", d.ID), zap.Error(err))
		return entities.DepositPayment{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	u.metrics.Deposit(string(created.Status))
	log.Info("[payment][usecase] create-deposit success",
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)),
		zap.Float64("amount", created.Amount))
	return created, nil
}

// LatestByProposal returns the most recent deposit attempt of a proposal.
func (u *DepositPaymentUseCase) LatestByProposal(ctx context.Context, proposalID string) (entities.DepositPayment, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return entities.DepositPayment{}, ErrInvalidProposalID
	}
	payments, err := u.repo.ListByProposalID(ctx, proposalID)
	if err != nil {
		return entities.DepositPayment{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if len(payments) == 0 {
		return entities.DepositPayment{}, ErrDepositNotFound
	}
	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	return latest, nil
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults fills payer.type and, when the caller gave neither a
// payer id nor an email, bills the proposal's client email.
func ensurePayerDefaults(m map[string]any, clientEmail string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && clientEmail != "" {
		payer["email"] = clientEmail
	}
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}
