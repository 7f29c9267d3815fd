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

var errInvalidSettingsPayload = pkg.NewDomainErrorSimple("INVALID_SETTINGS_INPUT", "Invalid settings payload", http.StatusBadRequest)

type CompanySettingsHandler struct {
	usecase usecase.ICompanySettingsUseCase
	logger  *zap.Logger
}

func NewCompanySettingsHandler(uc usecase.ICompanySettingsUseCase, logger *zap.Logger) *CompanySettingsHandler {
	return &CompanySettingsHandler{usecase: uc, logger: logger}
}

// GetSettings godoc
// @Summary Get the caller's company branding
// @Tags settings
// @Produce json
// @Security Bearer
// @Success 200 {object} response.CompanySettingsResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /settings [get]
func (h *CompanySettingsHandler) GetSettings(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCompanySettings(s))
}

// UpsertSettings godoc
// @Summary Create or replace the caller's company branding
// @Tags settings
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body request.CompanySettingsRequest true "Settings"
// @Success 200 {object} response.CompanySettingsResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /settings [put]
func (h *CompanySettingsHandler) UpsertSettings(c *gin.Context) {
	var payload request.CompanySettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.Upsert(c.Request.Context(), middleware.OwnerID(c), payload.ToEntity())
	if err != nil {
		h.fail(c, "upsert", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCompanySettings(s))
}

// UploadLogo godoc
// @Summary Upload the company logo
// @Tags settings
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param file formData file true "Image file"
// @Success 200 {object} response.CompanySettingsResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /settings/logo [post]
func (h *CompanySettingsHandler) UploadLogo(c *gin.Context) {
	upload, closeFn, err := readUpload(c)
	if err != nil {
		c.JSON(errMissingFile.HTTPStatus, errMissingFile.ToHTTPError())
		return
	}
	defer closeFn()

	s, err := h.usecase.UploadLogo(c.Request.Context(), middleware.OwnerID(c), upload)
	if err != nil {
		h.fail(c, "upload-logo", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCompanySettings(s))
}

func (h *CompanySettingsHandler) fail(c *gin.Context, op string, err error) {
	appErr := mapSettingsError(err)
	logFailure(logger.FromContext(c, h.logger), "[settings][handler] "+op+" failed", "", appErr)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOwnerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidUpload):
		return pkg.NewDomainError("INVALID_UPLOAD", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSettingsNotFound):
		return pkg.NewDomainErrorSimple("SETTINGS_NOT_FOUND", "Company settings not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStorageNotConfigured):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "File storage is not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
