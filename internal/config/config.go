package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	INEGI        INEGI        `mapstructure:",squash"`
	Autocosmos   Autocosmos   `mapstructure:",squash"`
	BulletinSync BulletinSync `mapstructure:",squash"`
	CatalogSync  CatalogSync  `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type INEGI struct {
	BaseURL string `mapstructure:"inegi_base_url"`
	// PdftotextPath es el binario usado para convertir el boletín PDF a
	// texto plano; vacío deshabilita la conversión y solo se aceptan
	// fuentes de texto plano
	PdftotextPath  string `mapstructure:"inegi_pdftotext_path"`
	TimeoutSeconds int    `mapstructure:"inegi_timeout_seconds"`
}

type Autocosmos struct {
	BaseURL             string `mapstructure:"autocosmos_base_url"`
	RequestDelaySeconds int    `mapstructure:"autocosmos_request_delay_seconds"`
	TimeoutSeconds      int    `mapstructure:"autocosmos_timeout_seconds"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
	// OperatorUsername y OperatorPasswordHash definen la única credencial
	// de operación; el hash es bcrypt
	OperatorUsername     string `mapstructure:"auth_operator_username"`
	OperatorPasswordHash string `mapstructure:"auth_operator_password_hash"`
	TokenTTLHours        int    `mapstructure:"auth_token_ttl_hours"`
}

type BulletinSync struct {
	CronSchedule  string `mapstructure:"bulletin_sync_cron"`
	MonthLookBack int    `mapstructure:"bulletin_sync_month_lookback"`
	Enabled       bool   `mapstructure:"bulletin_sync_enabled"`
}

type CatalogSync struct {
	CronSchedule        string `mapstructure:"catalog_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"catalog_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"catalog_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"catalog_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/automarket")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("INEGI_BASE_URL", "https://www.inegi.org.mx/contenidos/saladeprensa/boletines")
	viper.SetDefault("INEGI_PDFTOTEXT_PATH", "pdftotext")
	viper.SetDefault("INEGI_TIMEOUT_SECONDS", 60)

	viper.SetDefault("AUTOCOSMOS_BASE_URL", "https://www.autocosmos.com.mx")
	viper.SetDefault("AUTOCOSMOS_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre peticiones
	viper.SetDefault("AUTOCOSMOS_TIMEOUT_SECONDS", 30)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_OPERATOR_USERNAME", "operator")
	viper.SetDefault("AUTH_OPERATOR_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL_HOURS", 24)

	// Defaults para la sincronización del boletín mensual
	viper.SetDefault("BULLETIN_SYNC_CRON", "0 9 10,11,12 * *") // Días 10-12 de cada mes a las 9h
	viper.SetDefault("BULLETIN_SYNC_MONTH_LOOKBACK", 2)        // 2 meses hacia atrás por si un boletín se atrasó
	viper.SetDefault("BULLETIN_SYNC_ENABLED", false)

	// Defaults para la sincronización del catálogo de precios
	viper.SetDefault("CATALOG_SYNC_CRON", "0 5 * * 1")        // Lunes a las 5h
	viper.SetDefault("CATALOG_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre peticiones
	viper.SetDefault("CATALOG_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 marcas en paralelo
	viper.SetDefault("CATALOG_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primero cargar el archivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores por defecto
	SetDefaults()

	// Configurar Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Esto permite que Viper lea variables de entorno

	// Intentar leer el archivo .env con Viper (opcional, ya que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variables cargadas por godotenv (viper no pudo leer .env):", err)
	} else {
		logrus.Info("Archivo .env leído por Viper con éxito")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Función auxiliar para cargar el archivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("No se pudo obtener el directorio actual:", err)
		return
	}

	// Intentar varias ubicaciones posibles para el archivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Directorio actual
		filepath.Join(filepath.Dir(cwd), ".env"), // Directorio padre
		filepath.Join(cwd, "../.env"),            // Un directorio arriba
		filepath.Join(cwd, "../../.env"),         // Dos directorios arriba
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Archivo .env cargado con éxito de:", location)
			return
		}
	}

	logrus.Warn("No se pudo cargar el archivo .env de ninguna ubicación conocida")
}
