package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ai       AIConfig
	Ocr      OcrConfig
	Speech   SpeechConfig
	Keys     APIKeys
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	Provider          string // "openrouter" or "ollama"
	Model             string
	OpenRouterBaseURL string
	OllamaBaseURL     string
	ReplyTimeoutSecs  int
}

type OcrConfig struct {
	BaseURL  string
	Language string // engine language hint, e.g. "eng", "hin"
}

type SpeechConfig struct {
	BaseURL string
	VoiceID string
	ModelID string
}

type APIKeys struct {
	OpenRouter string
	OcrSpace   string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			Provider:          getEnv("LLM_PROVIDER", "openrouter"),
			Model:             getEnv("LLM_MODEL", "microsoft/wizardlm-2-8x22b"),
			OpenRouterBaseURL: getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			ReplyTimeoutSecs:  getEnvAsInt("LLM_REPLY_TIMEOUT_SECONDS", 45),
		},
		Ocr: OcrConfig{
			BaseURL:  getEnv("OCR_BASE_URL", "https://api.ocr.space/parse/image"),
			Language: getEnv("OCR_LANGUAGE", "eng"),
		},
		Speech: SpeechConfig{
			BaseURL: getEnv("SPEECH_BASE_URL", "https://api.elevenlabs.io/v1"),
			VoiceID: getEnv("SPEECH_VOICE_ID", "9BWtsMINqrJLrRacOk9x"),
			ModelID: getEnv("SPEECH_MODEL_ID", "eleven_multilingual_v2"),
		},
		Keys: APIKeys{
			OpenRouter: getEnv("OPENROUTER_API_KEY", ""),
			OcrSpace:   getEnv("OCRSPACE_API_KEY", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
