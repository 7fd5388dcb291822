package config

import "os"

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port          string
	PostgresDSN   string
	MongoURI      string
	MongoDB       string
	RedisAddr     string
	RedisPassword string
	JWTSecret     string
	S3Endpoint    string
	S3AccessKey   string
	S3SecretKey   string
	S3Region      string
	S3Bucket      string
	S3UseSSL      bool
	GeminiAPIKey  string
	GeminiURL     string
}

func Load() *Config {
	return &Config{
		Port:          getenv("PORT", "8080"),
		PostgresDSN:   getenv("POSTGRES_DSN", ""),
		MongoURI:      getenv("MONGO_URI", ""),
		MongoDB:       getenv("MONGO_DB", "fullstack_docs"),
		RedisAddr:     getenv("REDIS_ADDR", "redis:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		JWTSecret:     getenv("JWT_SECRET", ""),
		S3Endpoint:    getenv("S3_ENDPOINT", "s3.amazonaws.com"),
		S3AccessKey:   getenv("S3_ACCESS_KEY", ""),
		S3SecretKey:   getenv("S3_SECRET_KEY", ""),
		S3Region:      getenv("S3_REGION", "us-east-1"),
		S3Bucket:      getenv("S3_BUCKET", ""),
		S3UseSSL:      getenv("S3_USE_SSL", "true") == "true",
		GeminiAPIKey:  getenv("GEMINI_API_KEY", ""),
		GeminiURL:     getenv("GEMINI_URL", "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"),
	}
}

// HasS3 reports whether object-storage credentials are configured.
// When false the uploads endpoint degrades to a configuration error.
func (c *Config) HasS3() bool {
	return c.S3AccessKey != "" && c.S3SecretKey != "" && c.S3Bucket != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
