package config

import (
	"encoding/hex"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	encryptionKeySize = 32
)

type Config struct {
	Env    string
	DB     DB
	Server Server
	Logger Logger
	Crypto Crypto
}

type DB struct {
	DatabaseURI string
	Migrations  string
}

type Server struct {
	RunAddress string
}

type Logger struct {
	LogLevel string
}

// Crypto holds the field-encryption key material, loaded once at startup
// and immutable for the process lifetime.
type Crypto struct {
	Key []byte
}

// MustLoad reads the environment (optionally via a .env file) and fails
// hard on anything that would leave the service unable to protect data,
// most importantly a missing or malformed ENCRYPTION_KEY.
func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()

	config := Config{
		Env: viper.GetString("app_env"),
		DB: DB{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: Server{RunAddress: viper.GetString("run_address")},
		Logger: Logger{LogLevel: viper.GetString("log_level")},
	}

	keyHex := viper.GetString("encryption_key")
	if keyHex == "" {
		log.Fatalln("ENCRYPTION_KEY is required (64 hex characters)")
	}
	key, err := hex.DecodeString(keyHex)
	if err != nil || len(key) != encryptionKeySize {
		log.Fatalln("ENCRYPTION_KEY must decode to exactly 32 bytes of hex")
	}
	config.Crypto.Key = key

	if config.Server.RunAddress == "" {
		config.Server.RunAddress = ":8080"
	}
	if config.DB.Migrations == "" {
		config.DB.Migrations = "migrations"
	}

	return &config
}
