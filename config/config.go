package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTP     HTTPConfig
	Database DatabaseConfig
	MinIO    MinIOConfig
	JWT      JWTConfig
	Kafka    KafkaConfig
	OpenAI   OpenAIConfig
	Metrics  MetricsConfig
}

type HTTPConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Kolkata",
		d.Host, d.User, d.Password, d.DBName, d.Port, d.SSLMode)
}

type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	BucketName      string
}

type JWTConfig struct {
	Secret        string
	ExpireMinutes int
}

type KafkaConfig struct {
	Brokers string // comma separated; empty disables event publishing
	Topic   string
}

type OpenAIConfig struct {
	APIKey  string // empty disables the reviewer essay-summary assist
	Model   string
	BaseURL string
}

type MetricsConfig struct {
	Port string
}

func LoadConfig() (*Config, error) {
	// .env is optional outside local development
	_ = godotenv.Load()

	viper.SetDefault("http.port", "8080")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("jwt.expire_minutes", 60)
	viper.SetDefault("kafka.topic", "vidyonnati.admin-events")
	viper.SetDefault("openai.model", "gpt-4o-mini")
	viper.SetDefault("metrics.port", "2112")
	viper.SetDefault("minio.bucket", "vidyonnati-documents")

	viper.AutomaticEnv()

	viper.BindEnv("http.port", "HTTP_PORT")
	viper.BindEnv("database.host", "DB_HOST")
	viper.BindEnv("database.port", "DB_PORT")
	viper.BindEnv("database.user", "DB_USER")
	viper.BindEnv("database.password", "DB_PASSWORD")
	viper.BindEnv("database.dbname", "DB_NAME")
	viper.BindEnv("database.sslmode", "DB_SSLMODE")
	viper.BindEnv("minio.endpoint", "MINIO_ENDPOINT")
	viper.BindEnv("minio.access_key", "MINIO_ACCESS_KEY")
	viper.BindEnv("minio.secret_key", "MINIO_SECRET_KEY")
	viper.BindEnv("minio.use_ssl", "MINIO_USE_SSL")
	viper.BindEnv("minio.bucket", "MINIO_BUCKET_NAME")
	viper.BindEnv("jwt.secret", "JWT_SECRET")
	viper.BindEnv("jwt.expire_minutes", "JWT_EXPIRE_MINUTES")
	viper.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	viper.BindEnv("kafka.topic", "KAFKA_TOPIC")
	viper.BindEnv("openai.api_key", "OPENAI_API_KEY")
	viper.BindEnv("openai.model", "OPENAI_MODEL")
	viper.BindEnv("openai.base_url", "OPENAI_BASE_URL")
	viper.BindEnv("metrics.port", "METRICS_PORT")

	cfg := &Config{
		HTTP: HTTPConfig{
			Port: viper.GetString("http.port"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("database.host"),
			Port:     viper.GetString("database.port"),
			User:     viper.GetString("database.user"),
			Password: viper.GetString("database.password"),
			DBName:   viper.GetString("database.dbname"),
			SSLMode:  viper.GetString("database.sslmode"),
		},
		MinIO: MinIOConfig{
			Endpoint:        viper.GetString("minio.endpoint"),
			AccessKeyID:     viper.GetString("minio.access_key"),
			SecretAccessKey: viper.GetString("minio.secret_key"),
			UseSSL:          viper.GetBool("minio.use_ssl"),
			BucketName:      viper.GetString("minio.bucket"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("jwt.secret"),
			ExpireMinutes: viper.GetInt("jwt.expire_minutes"),
		},
		Kafka: KafkaConfig{
			Brokers: viper.GetString("kafka.brokers"),
			Topic:   viper.GetString("kafka.topic"),
		},
		OpenAI: OpenAIConfig{
			APIKey:  viper.GetString("openai.api_key"),
			Model:   viper.GetString("openai.model"),
			BaseURL: viper.GetString("openai.base_url"),
		},
		Metrics: MetricsConfig{
			Port: viper.GetString("metrics.port"),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}
