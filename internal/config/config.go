package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Port     string
	AppEnv   string
	LogLevel string

	AWS      AWSConfig
	Tables   TableConfig
	S3       S3Config
	Auth     AuthConfig
	Proposal ProposalConfig
	Payment  PaymentConfig

	CORSAllowedOrigins []string
}

type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

type TableConfig struct {
	Proposals       string
	CompanySettings string
	Deposits        string
}

type S3Config struct {
	Bucket   string
	Region   string
	Endpoint string
	// PublicURL overrides the base used to build object URLs (CDN or MinIO host).
	PublicURL string
}

type AuthConfig struct {
	JWTSecret string
}

type ProposalConfig struct {
	PublicBaseURL string
	ShareLinkTTL  time.Duration
	PDFMaxPages   int
}

type PaymentConfig struct {
	MercadoPagoAccessToken string
	GatewayMock            bool
	DepositPercent         int
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() Config {
	region := getenvDefault("AWS_REGION", "us-east-1")
	return Config{
		Port:     getenvDefault("PORT", "8080"),
		AppEnv:   getenvDefault("APP_ENV", "development"),
		LogLevel: getenvDefault("LOG_LEVEL", "info"),
		AWS: AWSConfig{
			Region:           region,
			AccessKeyID:      getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:  getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		},
		Tables: TableConfig{
			Proposals:       getenvDefault("PROPOSALS_TABLE", "proposals"),
			CompanySettings: getenvDefault("COMPANY_SETTINGS_TABLE", "company_settings"),
			Deposits:        getenvDefault("DEPOSITS_TABLE", "deposit_payments"),
		},
		S3: S3Config{
			Bucket:    getenvDefault("S3_BUCKET", "proposalcraft"),
			Region:    getenvDefault("S3_REGION", region),
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			PublicURL: os.Getenv("S3_PUBLIC_URL"),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		Proposal: ProposalConfig{
			PublicBaseURL: strings.TrimSuffix(getenvDefault("PUBLIC_BASE_URL", "http://localhost:5173"), "/"),
			ShareLinkTTL:  time.Duration(getenvInt("SHARE_LINK_TTL_DAYS", 30)) * 24 * time.Hour,
			PDFMaxPages:   getenvInt("PDF_MAX_PAGES", 50),
		},
		Payment: PaymentConfig{
			MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
			GatewayMock:            getenvBool("PAYMENT_GATEWAY_MOCK") || getenvBool("MERCADOPAGO_MOCK"),
			DepositPercent:         getenvInt("DEPOSIT_PERCENT", 50),
		},
		CORSAllowedOrigins: splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")),
	}
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
