package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "SHARE_LINK_TTL_DAYS", "PDF_MAX_PAGES", "DEPOSIT_PERCENT", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK", "PUBLIC_BASE_URL", "S3_REGION", "AWS_REGION", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*24*time.Hour, cfg.Proposal.ShareLinkTTL)
	assert.Equal(t, 50, cfg.Proposal.PDFMaxPages)
	assert.Equal(t, 50, cfg.Payment.DepositPercent)
	assert.False(t, cfg.Payment.GatewayMock)
	assert.Equal(t, "us-east-1", cfg.S3.Region)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.CORSAllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SHARE_LINK_TTL_DAYS", "7")
	t.Setenv("PDF_MAX_PAGES", "not-a-number")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "yes")
	t.Setenv("PUBLIC_BASE_URL", "https://propostas.example.com/")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com , ,https://b.example.com")
	t.Setenv("APP_ENV", "Production")

	cfg := Load()
	assert.Equal(t, 7*24*time.Hour, cfg.Proposal.ShareLinkTTL)
	assert.Equal(t, 50, cfg.Proposal.PDFMaxPages)
	assert.True(t, cfg.Payment.GatewayMock)
	assert.Equal(t, "https://propostas.example.com", cfg.Proposal.PublicBaseURL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.IsProduction())
}
