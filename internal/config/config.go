package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Printer   PrinterConfig
	Render    RenderConfig
	Company   CompanyConfig
	TLS       TLSConfig
}

type AppConfig struct {
	Name      string
	Env       string
	Port      string
	AssetsDir string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

// PrinterConfig describes the thermal printer endpoint.
type PrinterConfig struct {
	Type      string // "network" or "none"
	Address   string // TCP address, e.g. "192.168.8.37:9100"
	CharWidth int    // print width in characters (48 for 80mm paper)
}

// RenderConfig describes the text rasterization canvas.
type RenderConfig struct {
	FontPath      string // TTF with Arabic presentation forms
	CanvasWidthPx int    // 576 for 80mm paper
	LogoPath      string
}

// CompanyConfig holds the fixed identity lines printed on every document.
type CompanyConfig struct {
	Name     string // display name, printed in Arabic
	VATReg   string // VAT registration number, printed as-is in Latin digits
	Currency string // currency label appended to every amount
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "fun-hour-entertainment-server")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "5000")
	viper.SetDefault("ASSETS_DIR", "./assets")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "fhe")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Riyadh")
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("PRINTER_TYPE", "network")
	viper.SetDefault("PRINTER_ADDRESS", "192.168.8.37:9100")
	viper.SetDefault("PRINTER_CHAR_WIDTH", 48)
	viper.SetDefault("RENDER_FONT_PATH", "./assets/fonts/Amiri-Regular.ttf")
	viper.SetDefault("RENDER_CANVAS_WIDTH_PX", 576)
	viper.SetDefault("RENDER_LOGO_PATH", "./assets/logo.png")
	viper.SetDefault("COMPANY_NAME", "ساعة فرح للترفيه")
	viper.SetDefault("COMPANY_VAT_REG", "6312592186100003")
	viper.SetDefault("COMPANY_CURRENCY", "ريال")

	return &Config{
		App: AppConfig{
			Name:      viper.GetString("APP_NAME"),
			Env:       viper.GetString("APP_ENV"),
			Port:      viper.GetString("APP_PORT"),
			AssetsDir: viper.GetString("ASSETS_DIR"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Printer: PrinterConfig{
			Type:      viper.GetString("PRINTER_TYPE"),
			Address:   viper.GetString("PRINTER_ADDRESS"),
			CharWidth: viper.GetInt("PRINTER_CHAR_WIDTH"),
		},
		Render: RenderConfig{
			FontPath:      viper.GetString("RENDER_FONT_PATH"),
			CanvasWidthPx: viper.GetInt("RENDER_CANVAS_WIDTH_PX"),
			LogoPath:      viper.GetString("RENDER_LOGO_PATH"),
		},
		Company: CompanyConfig{
			Name:     viper.GetString("COMPANY_NAME"),
			VATReg:   viper.GetString("COMPANY_VAT_REG"),
			Currency: viper.GetString("COMPANY_CURRENCY"),
		},
		TLS: TLSConfig{
			CertFile: viper.GetString("TLS_CERT_FILE"),
			KeyFile:  viper.GetString("TLS_KEY_FILE"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
