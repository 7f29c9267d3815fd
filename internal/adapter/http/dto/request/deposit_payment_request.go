package request

import "encoding/json"

// DepositPaymentCreateRequest is the payload of the deposit route.
//
// `mp_payload` is forwarded to Mercado Pago as-is; a bare Mercado Pago body
// without the envelope is accepted too.
type DepositPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
