package response

import (
	"time"

	"proposalcraft/internal/domain/entities"
)

type DepositPaymentResponse struct {
	PaymentID  string    `json:"payment_id"`
	ProposalID string    `json:"proposal_id"`
	Amount     float64   `json:"amount"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromDepositPayment(p entities.DepositPayment) DepositPaymentResponse {
	return DepositPaymentResponse{
		PaymentID:    p.ID,
		ProposalID:   p.ProposalID,
		Amount:       p.Amount,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}
