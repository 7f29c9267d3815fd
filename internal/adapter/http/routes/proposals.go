package routes

import (
	"proposalcraft/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing            = "/ping"
	PathCatalog         = "/catalog"
	PathProposals       = "/proposals"
	PathPublicProposals = "/public/proposals"
	PathSettings        = "/settings"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
	rg.GET(PathCatalog, handlers.GetCatalog)
}

func addProposalRoutes(rg *gin.RouterGroup, proposalHandler *handlers.ProposalHandler, documentHandler *handlers.DocumentHandler) {
	proposals := rg.Group(PathProposals)
	{
		proposals.POST("", proposalHandler.CreateProposal)
		proposals.GET("", proposalHandler.ListProposals)
		proposals.GET("/:id", proposalHandler.GetProposal)
		proposals.PATCH("/:id", proposalHandler.UpdateProposal)
		proposals.POST("/:id/send", proposalHandler.SendProposal)
		proposals.POST("/:id/logo", proposalHandler.UploadClientLogo)

		proposals.GET("/:id/document", documentHandler.GetDocument)
		proposals.GET("/:id/export", documentHandler.ExportPDF)
		proposals.GET("/:id/share", documentHandler.GetShareLink)
	}
}

// addPublicRoutes mounts what the share link reaches without a token.
func addPublicRoutes(rg *gin.RouterGroup, publicHandler *handlers.PublicProposalHandler, depositHandler *handlers.DepositPaymentHandler) {
	public := rg.Group(PathPublicProposals)
	{
		public.GET("/:id", publicHandler.GetSharedProposal)
		public.GET("/:id/document", publicHandler.GetSharedDocument)
		public.POST("/:id/accept", publicHandler.AcceptProposal)
		public.POST("/:id/reject", publicHandler.RejectProposal)

		public.POST("/:id/deposit", depositHandler.CreateDeposit)
		public.GET("/:id/deposit", depositHandler.GetDeposit)
	}
}

func addSettingsRoutes(rg *gin.RouterGroup, settingsHandler *handlers.CompanySettingsHandler) {
	settings := rg.Group(PathSettings)
	{
		settings.GET("", settingsHandler.GetSettings)
		settings.PUT("", settingsHandler.UpsertSettings)
		settings.POST("/logo", settingsHandler.UploadLogo)
	}
}
