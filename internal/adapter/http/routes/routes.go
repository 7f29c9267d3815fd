package routes

import (
	"context"

	_ "proposalcraft/docs"
	"proposalcraft/internal/adapter/http/handlers"
	"proposalcraft/internal/adapter/http/middleware"
	repository2 "proposalcraft/internal/adapter/persistence/repository"
	"proposalcraft/internal/config"
	"proposalcraft/internal/infrastructure/database"
	"proposalcraft/internal/infrastructure/payments"
	"proposalcraft/internal/infrastructure/pdf"
	"proposalcraft/internal/infrastructure/storage"
	"proposalcraft/internal/metrics"
	"proposalcraft/internal/usecase"
	"proposalcraft/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups every HTTP handler mounted by NewRouter.
type Handlers struct {
	Proposal *handlers.ProposalHandler
	Public   *handlers.PublicProposalHandler
	Document *handlers.DocumentHandler
	Settings *handlers.CompanySettingsHandler
	Deposit  *handlers.DepositPaymentHandler
}

// Build connects the infrastructure described by cfg and returns the ready
// router. Object storage and the payment gateway are optional: when they
// cannot be configured the related endpoints answer 503.
func Build(ctx context.Context, cfg config.Config, logger *zap.Logger) (*gin.Engine, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return nil, err
	}

	proposalRepo := repository2.NewProposalDynamoRepository(ddb, cfg.Tables.Proposals)
	settingsRepo := repository2.NewCompanySettingsDynamoRepository(ddb, cfg.Tables.CompanySettings)
	depositRepo := repository2.NewDepositPaymentDynamoRepository(ddb, cfg.Tables.Deposits)

	var objectStorage interfaces.IObjectStorage
	s3Storage, err := storage.NewS3Storage(ctx, cfg.S3, cfg.AWS, logger)
	if err != nil {
		logger.Warn("[boot] object storage not configured", zap.Error(err))
	} else {
		objectStorage = s3Storage
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payment, logger)
	if err != nil {
		logger.Warn("[boot] Mercado Pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	m := metrics.New()
	exporter := pdf.NewExporter(cfg.Proposal.PDFMaxPages, logger)

	proposalUseCase := usecase.NewProposalUseCase(proposalRepo, objectStorage, cfg.Proposal.ShareLinkTTL, m, logger)
	signatureUseCase := usecase.NewSignatureUseCase(proposalRepo, cfg.Proposal.ShareLinkTTL, m, logger)
	documentUseCase := usecase.NewDocumentUseCase(proposalRepo, settingsRepo, exporter, objectStorage,
		cfg.Proposal.PublicBaseURL, cfg.Proposal.ShareLinkTTL, m, logger)
	settingsUseCase := usecase.NewCompanySettingsUseCase(settingsRepo, objectStorage, logger)
	depositUseCase := usecase.NewDepositPaymentUseCase(depositRepo, proposalRepo, paymentGateway,
		cfg.Payment.DepositPercent, cfg.Payment.GatewayMock, m, logger)

	h := Handlers{
		Proposal: handlers.NewProposalHandler(proposalUseCase, logger),
		Public:   handlers.NewPublicProposalHandler(signatureUseCase, documentUseCase, logger),
		Document: handlers.NewDocumentHandler(documentUseCase, logger),
		Settings: handlers.NewCompanySettingsHandler(settingsUseCase, logger),
		Deposit:  handlers.NewDepositPaymentHandler(depositUseCase, cfg.Payment.GatewayMock, logger),
	}
	return NewRouter(cfg, h, m, logger), nil
}

// NewRouter mounts the middlewares, the operational endpoints and the /v1 API.
func NewRouter(cfg config.Config, h Handlers, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	router.Use(middleware.Metrics(m))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPublicRoutes(v1, h.Public, h.Deposit)

	// Rotas do dono da proposta
	owner := v1.Group("")
	owner.Use(middleware.Auth(cfg.Auth.JWTSecret))
	addProposalRoutes(owner, h.Proposal, h.Document)
	addSettingsRoutes(owner, h.Settings)

	return router
}
