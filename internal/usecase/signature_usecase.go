package usecase

import (
	"context"
	"errors"
	"time"

	"proposalcraft/internal/domain/entities"
	"proposalcraft/internal/metrics"
	"proposalcraft/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrShareLinkExpired = errors.New("share link expired")

// ISignatureUseCase is the client side of a proposal, reached through its
// share link without authentication.
type ISignatureUseCase interface {
	GetShared(ctx context.Context, id string) (entities.Proposal, error)
	Accept(ctx context.Context, id, signerName string, agreed bool) (entities.Proposal, error)
	Reject(ctx context.Context, id string) (entities.Proposal, error)
}

type SignatureUseCase struct {
	repo     interfaces.IProposalRepository
	shareTTL time.Duration
	metrics  *metrics.Metrics
	logger   *zap.Logger
	now      func() time.Time
}

var _ ISignatureUseCase = (*SignatureUseCase)(nil)

func NewSignatureUseCase(repo interfaces.IProposalRepository, shareTTL time.Duration, m *metrics.Metrics, logger *zap.Logger) *SignatureUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SignatureUseCase{repo: repo, shareTTL: shareTTL, metrics: m, logger: logger, now: utcNow}
}

func (u *SignatureUseCase) GetShared(ctx context.Context, id string) (entities.Proposal, error) {
	return loadShared(ctx, u.repo, id, u.now(), u.shareTTL)
}

// Accept signs the proposal. The write is conditional on the status read, so
// of two concurrent acceptances only one is persisted.
func (u *SignatureUseCase) Accept(ctx context.Context, id, signerName string, agreed bool) (entities.Proposal, error) {
	now := u.now()
	p, err := loadShared(ctx, u.repo, id, now, u.shareTTL)
	if err != nil {
		return entities.Proposal{}, err
	}
	accepted, err := p.Accept(signerName, agreed, now)
	if err != nil {
		u.logger.Info("[signature][usecase] acceptance refused", zap.String("proposal_id", p.ID), zap.Error(err))
		return entities.Proposal{}, err
	}
	saved, err := save(ctx, u.repo, accepted, p)
	if err != nil {
		u.logger.Warn("[signature][usecase] acceptance not saved", zap.String("proposal_id", p.ID), zap.Error(err))
		return entities.Proposal{}, err
	}
	u.metrics.Transition(string(saved.Status))
	u.logger.Info("[signature][usecase] proposal accepted",
		zap.String("proposal_id", saved.ID),
		zap.String("signer_name", saved.SignerName))
	return saved, nil
}

func (u *SignatureUseCase) Reject(ctx context.Context, id string) (entities.Proposal, error) {
	now := u.now()
	p, err := loadShared(ctx, u.repo, id, now, u.shareTTL)
	if err != nil {
		return entities.Proposal{}, err
	}
	rejected, err := p.Reject(now)
	if err != nil {
		return entities.Proposal{}, err
	}
	saved, err := save(ctx, u.repo, rejected, p)
	if err != nil {
		return entities.Proposal{}, err
	}
	u.metrics.Transition(string(saved.Status))
	u.logger.Info("[signature][usecase] proposal rejected", zap.String("proposal_id", saved.ID))
	return saved, nil
}

func loadShared(ctx context.Context, repo interfaces.IProposalRepository, id string, now time.Time, ttl time.Duration) (entities.Proposal, error) {
	p, err := load(ctx, repo, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ShareLinkExpired(now, ttl) {
		return entities.Proposal{}, ErrShareLinkExpired
	}
	return p, nil
}
