package handlers

import (
	"fmt"
	"net/http"

	response "proposalcraft/internal/adapter/http/dto/response"
	"proposalcraft/internal/adapter/http/middleware"
	"proposalcraft/internal/domain/entities"
	"proposalcraft/internal/logger"
	"proposalcraft/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ArchiveURLHeader carries the URL of the archived copy of an exported PDF.
const ArchiveURLHeader = "X-Archive-URL"

type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
	logger  *zap.Logger
}

func NewDocumentHandler(uc usecase.IDocumentUseCase, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{usecase: uc, logger: logger}
}

// GetDocument godoc
// @Summary Render a proposal for preview
// @Tags documents
// @Produce json
// @Security Bearer
// @Param id path string true "Proposal ID"
// @Param template query string false "modern or elegant; defaults to the proposal's template"
// @Success 200 {object} render.Document
// @Failure 400 {object} pkg.HTTPError
// @Router /proposals/{id}/document [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	doc, err := h.usecase.Render(c.Request.Context(), middleware.OwnerID(c), c.Param("id"), entities.TemplateID(c.Query("template")))
	if err != nil {
		h.fail(c, "render", err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ExportPDF godoc
// @Summary Download the proposal as a paginated PDF
// @Tags documents
// @Produce application/pdf
// @Security Bearer
// @Param id path string true "Proposal ID"
// @Param template query string false "modern or elegant"
// @Success 200 {file} binary
// @Failure 500 {object} pkg.HTTPError
// @Router /proposals/{id}/export [get]
func (h *DocumentHandler) ExportPDF(c *gin.Context) {
	res, err := h.usecase.Export(c.Request.Context(), middleware.OwnerID(c), c.Param("id"), entities.TemplateID(c.Query("template")))
	if err != nil {
		h.fail(c, "export", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.FileName))
	if res.URL != "" {
		c.Header(ArchiveURLHeader, res.URL)
	}
	logger.FromContext(c, h.logger).Info("[document][handler] export success",
		zap.String("proposal_id", c.Param("id")),
		zap.String("file_name", res.FileName),
		zap.Int("pages", res.Pages))
	c.Data(http.StatusOK, res.ContentType, res.Data)
}

// GetShareLink godoc
// @Summary Get the public link of a proposal
// @Tags documents
// @Produce json
// @Security Bearer
// @Param id path string true "Proposal ID"
// @Success 200 {object} response.ShareLinkResponse
// @Router /proposals/{id}/share [get]
func (h *DocumentHandler) GetShareLink(c *gin.Context) {
	link, err := h.usecase.ShareLink(c.Request.Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		h.fail(c, "share", err)
		return
	}
	c.JSON(http.StatusOK, response.ShareLinkResponse{URL: link.URL, ExpiresAt: link.ExpiresAt})
}

func (h *DocumentHandler) fail(c *gin.Context, op string, err error) {
	appErr := mapProposalError(err)
	logFailure(logger.FromContext(c, h.logger), "[document][handler] "+op+" failed", c.Param("id"), appErr)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
