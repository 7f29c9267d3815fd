package handlers

import (
	"errors"
	"net/http"

	request "proposalcraft/internal/adapter/http/dto/request"
	response "proposalcraft/internal/adapter/http/dto/response"
	"proposalcraft/internal/adapter/http/middleware"
	"proposalcraft/internal/domain/entities"
	"proposalcraft/internal/logger"
	"proposalcraft/internal/usecase"
	"proposalcraft/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal payload", http.StatusBadRequest)
	errMissingFile            = pkg.NewDomainErrorSimple("INVALID_UPLOAD", "A file field named \"file\" is required", http.StatusBadRequest)
)

// ProposalHandler serves the owner side of the proposal lifecycle.
type ProposalHandler struct {
	usecase usecase.IProposalUseCase
	logger  *zap.Logger
}

func NewProposalHandler(uc usecase.IProposalUseCase, logger *zap.Logger) *ProposalHandler {
	return &ProposalHandler{usecase: uc, logger: logger}
}

// CreateProposal godoc
// @Summary Create a proposal from a briefing
// @Tags proposals
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body request.ProposalBriefingRequest true "Briefing"
// @Success 201 {object} response.ProposalResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /proposals [post]
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var payload request.ProposalBriefingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.CreateFromBriefing(c.Request.Context(), middleware.OwnerID(c), payload.ToBriefing())
	if err != nil {
		h.fail(c, "create", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromProposal(p))
}

// ListProposals godoc
// @Summary List the caller's proposals, newest first
// @Tags proposals
// @Produce json
// @Security Bearer
// @Success 200 {array} response.ProposalResponse
// @Router /proposals [get]
func (h *ProposalHandler) ListProposals(c *gin.Context) {
	ps, err := h.usecase.ListByOwner(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		h.fail(c, "list", err)
		return
	}
	c.JSON(http.StatusOK, response.FromProposals(ps))
}

// GetProposal godoc
// @Summary Get a proposal
// @Tags proposals
// @Produce json
// @Security Bearer
// @Param id path string true "Proposal ID"
// @Success 200 {object} response.ProposalResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /proposals/{id} [get]
func (h *ProposalHandler) GetProposal(c *gin.Context) {
	p, err := h.usecase.GetForOwner(c.Request.Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(p))
}

// UpdateProposal godoc
// @Summary Edit a draft proposal
// @Tags proposals
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Proposal ID"
// @Param body body request.ProposalPatchRequest true "Fields to change"
// @Success 200 {object} response.ProposalResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /proposals/{id} [patch]
func (h *ProposalHandler) UpdateProposal(c *gin.Context) {
	var payload request.ProposalPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.ApplyEdits(c.Request.Context(), middleware.OwnerID(c), c.Param("id"), payload.ToPatch())
	if err != nil {
		h.fail(c, "update", err)
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(p))
}

// SendProposal godoc
// @Summary Mark a draft as sent to the client
// @Tags proposals
// @Produce json
// @Security Bearer
// @Param id path string true "Proposal ID"
// @Success 200 {object} response.ProposalResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /proposals/{id}/send [post]
func (h *ProposalHandler) SendProposal(c *gin.Context) {
	p, err := h.usecase.Send(c.Request.Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		h.fail(c, "send", err)
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(p))
}

// UploadClientLogo godoc
// @Summary Upload the client logo shown in the proposal header
// @Tags proposals
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param id path string true "Proposal ID"
// @Param file formData file true "Image file"
// @Success 200 {object} response.ProposalResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /proposals/{id}/logo [post]
func (h *ProposalHandler) UploadClientLogo(c *gin.Context) {
	upload, closeFn, err := readUpload(c)
	if err != nil {
		c.JSON(errMissingFile.HTTPStatus, errMissingFile.ToHTTPError())
		return
	}
	defer closeFn()

	p, err := h.usecase.UploadClientLogo(c.Request.Context(), middleware.OwnerID(c), c.Param("id"), upload)
	if err != nil {
		h.fail(c, "upload-logo", err)
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(p))
}

func (h *ProposalHandler) fail(c *gin.Context, op string, err error) {
	appErr := mapProposalError(err)
	logFailure(logger.FromContext(c, h.logger), "[proposal][handler] "+op+" failed", c.Param("id"), appErr)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func readUpload(c *gin.Context) (usecase.Upload, func(), error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return usecase.Upload{}, nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return usecase.Upload{}, nil, err
	}
	return usecase.Upload{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	}, func() { _ = f.Close() }, nil
}

func logFailure(log *zap.Logger, msg, proposalID string, appErr *pkg.AppError) {
	fields := []zap.Field{zap.String("code", appErr.Code), zap.Int("status", appErr.HTTPStatus)}
	if proposalID != "" {
		fields = append(fields, zap.String("proposal_id", proposalID))
	}
	if appErr.Err != nil {
		fields = append(fields, zap.Error(appErr.Err))
	}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error(msg, fields...)
		return
	}
	log.Info(msg, fields...)
}

// mapProposalError covers every error the proposal, signature and document
// use cases return.
func mapProposalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID), errors.Is(err, usecase.ErrInvalidOwnerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrUnknownTemplate):
		return pkg.NewDomainError("UNKNOWN_TEMPLATE", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrPrecondition):
		return pkg.NewDomainError("PRECONDITION_FAILED", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidUpload):
		return pkg.NewDomainError("INVALID_UPLOAD", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalConflict):
		return pkg.NewDomainError("PROPOSAL_CONFLICT", "Proposal was modified by another request", err, http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, entities.ErrNotEditable):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_EDITABLE", "Only draft proposals can be edited", http.StatusConflict)
	case errors.Is(err, usecase.ErrShareLinkExpired):
		return pkg.NewDomainErrorSimple("SHARE_LINK_EXPIRED", "This proposal link has expired", http.StatusGone)
	case errors.Is(err, usecase.ErrStorageNotConfigured):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "File storage is not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, entities.ErrExport):
		return pkg.NewDomainError("EXPORT_FAILED", "Could not generate the PDF", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
