package entities

import (
	"fmt"
	"strings"
	"time"
)

// DefaultShareLinkTTL is how long a proposal link stays valid. A sent proposal
// counts it from the send; a draft shared before sending counts it from creation.
const DefaultShareLinkTTL = 30 * 24 * time.Hour

func (s ProposalStatus) Valid() bool {
	switch s {
	case ProposalStatusDraft, ProposalStatusSent, ProposalStatusAccepted, ProposalStatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no transition leaves s.
func (s ProposalStatus) IsTerminal() bool {
	return s == ProposalStatusAccepted || s == ProposalStatusRejected
}

// CanTransition reports whether the lifecycle allows moving from one status to another.
//
// A client may answer a proposal through its link before the owner marks it as
// sent, so acceptance and rejection are also allowed from draft.
func CanTransition(from, to ProposalStatus) bool {
	switch from {
	case ProposalStatusDraft:
		return to == ProposalStatusSent || to == ProposalStatusAccepted || to == ProposalStatusRejected
	case ProposalStatusSent:
		return to == ProposalStatusAccepted || to == ProposalStatusRejected
	default:
		return false
	}
}

// Send marks a draft as sent to the client and restarts the link lifetime at now.
func (p Proposal) Send(now time.Time, ttl time.Duration) (Proposal, error) {
	if !CanTransition(p.Status, ProposalStatusSent) {
		return p, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, p.Status, ProposalStatusSent)
	}
	out := p.clone()
	out.Status = ProposalStatusSent
	out.SentAt = &now
	out.ShareExpiresAt = shareExpiry(now, ttl)
	out.UpdatedAt = now
	return out, nil
}

// Accept records the client's signature. Either every acceptance field is set
// or p is returned untouched together with an error.
func (p Proposal) Accept(signerName string, agreed bool, now time.Time) (Proposal, error) {
	signerName = strings.TrimSpace(signerName)
	if signerName == "" {
		return p, fmt.Errorf("%w: signer name is required", ErrPrecondition)
	}
	if !agreed {
		return p, fmt.Errorf("%w: agreement must be acknowledged", ErrPrecondition)
	}
	if !CanTransition(p.Status, ProposalStatusAccepted) {
		return p, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, p.Status, ProposalStatusAccepted)
	}

	signedAt := now
	if signedAt.Before(p.CreatedAt) {
		signedAt = p.CreatedAt
	}

	out := p.clone()
	out.Status = ProposalStatusAccepted
	out.SignedAt = &signedAt
	out.SignerName = signerName
	out.UpdatedAt = signedAt
	return out, nil
}

// Reject records the client's refusal.
func (p Proposal) Reject(now time.Time) (Proposal, error) {
	if !CanTransition(p.Status, ProposalStatusRejected) {
		return p, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, p.Status, ProposalStatusRejected)
	}
	out := p.clone()
	out.Status = ProposalStatusRejected
	out.RejectedAt = &now
	out.UpdatedAt = now
	return out, nil
}

// ShareLinkExpired reports whether the public link is no longer usable at now.
// Proposals without a recorded expiry, i.e. drafts, fall back to CreatedAt + ttl.
func (p Proposal) ShareLinkExpired(now time.Time, ttl time.Duration) bool {
	exp := p.ShareExpiresAt
	if exp == nil {
		exp = shareExpiry(p.CreatedAt, ttl)
	}
	if exp == nil {
		return false
	}
	return now.After(*exp)
}

func shareExpiry(from time.Time, ttl time.Duration) *time.Time {
	if ttl <= 0 || from.IsZero() {
		return nil
	}
	exp := from.Add(ttl)
	return &exp
}
