package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// DepositPayment is the down payment ("entrada") made by the client after
// accepting a proposal.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (proposal_id-index): proposal_id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the provider response body for traceability.
//   - MPPayload is its parsed form, useful for querying/debugging.
type DepositPayment struct {
	ID         string        `json:"id"`
	ProposalID string        `json:"proposal_id"`
	Amount     float64       `json:"amount"`
	Date       time.Time     `json:"date"`
	Status     PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

// PaymentStatusFromProvider maps Mercado Pago statuses to PaymentStatus.
func PaymentStatusFromProvider(providerStatus string) PaymentStatus {
	switch providerStatus {
	case "approved", "authorized":
		return PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusNegado
	default:
		return PaymentStatusPendente
	}
}
