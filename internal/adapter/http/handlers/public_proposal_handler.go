package handlers

import (
	"net/http"

	request "proposalcraft/internal/adapter/http/dto/request"
	response "proposalcraft/internal/adapter/http/dto/response"
	"proposalcraft/internal/domain/entities"
	"proposalcraft/internal/logger"
	"proposalcraft/internal/usecase"
	"proposalcraft/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidAcceptPayload = pkg.NewDomainErrorSimple("INVALID_SIGNATURE_INPUT", "Invalid signature payload", http.StatusBadRequest)

// PublicProposalHandler serves the share link: the client reads, signs or
// declines a proposal without an account.
type PublicProposalHandler struct {
	signature usecase.ISignatureUseCase
	documents usecase.IDocumentUseCase
	logger    *zap.Logger
}

func NewPublicProposalHandler(signature usecase.ISignatureUseCase, documents usecase.IDocumentUseCase, logger *zap.Logger) *PublicProposalHandler {
	return &PublicProposalHandler{signature: signature, documents: documents, logger: logger}
}

// GetSharedProposal godoc
// @Summary Read a proposal through its share link
// @Tags public
// @Produce json
// @Param id path string true "Proposal ID"
// @Success 200 {object} response.PublicProposalResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 410 {object} pkg.HTTPError
// @Router /public/proposals/{id} [get]
func (h *PublicProposalHandler) GetSharedProposal(c *gin.Context) {
	p, err := h.signature.GetShared(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromProposalPublic(p))
}

// GetSharedDocument godoc
// @Summary Render a shared proposal for preview
// @Tags public
// @Produce json
// @Param id path string true "Proposal ID"
// @Param template query string false "modern or elegant"
// @Success 200 {object} render.Document
// @Failure 410 {object} pkg.HTTPError
// @Router /public/proposals/{id}/document [get]
func (h *PublicProposalHandler) GetSharedDocument(c *gin.Context) {
	doc, err := h.documents.RenderShared(c.Request.Context(), c.Param("id"), entities.TemplateID(c.Query("template")))
	if err != nil {
		h.fail(c, "document", err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// AcceptProposal godoc
// @Summary Sign and accept a proposal
// @Tags public
// @Accept json
// @Produce json
// @Param id path string true "Proposal ID"
// @Param body body request.AcceptProposalRequest true "Signature"
// @Success 200 {object} response.PublicProposalResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /public/proposals/{id}/accept [post]
func (h *PublicProposalHandler) AcceptProposal(c *gin.Context) {
	var payload request.AcceptProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAcceptPayload.HTTPStatus, errInvalidAcceptPayload.ToHTTPError())
		return
	}

	p, err := h.signature.Accept(c.Request.Context(), c.Param("id"), payload.SignerName, payload.Agreed)
	if err != nil {
		h.fail(c, "accept", err)
		return
	}
	logger.FromContext(c, h.logger).Info("[signature][handler] proposal accepted", zap.String("proposal_id", p.ID))
	c.JSON(http.StatusOK, response.FromProposalPublic(p))
}

// RejectProposal godoc
// @Summary Decline a proposal
// @Tags public
// @Produce json
// @Param id path string true "Proposal ID"
// @Success 200 {object} response.PublicProposalResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /public/proposals/{id}/reject [post]
func (h *PublicProposalHandler) RejectProposal(c *gin.Context) {
	p, err := h.signature.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "reject", err)
		return
	}
	c.JSON(http.StatusOK, response.FromProposalPublic(p))
}

func (h *PublicProposalHandler) fail(c *gin.Context, op string, err error) {
	appErr := mapProposalError(err)
	logFailure(logger.FromContext(c, h.logger), "[signature][handler] "+op+" failed", c.Param("id"), appErr)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
