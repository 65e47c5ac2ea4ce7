package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort  int    `mapstructure:"APP_PORT"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	OllamaURL     string `mapstructure:"OLLAMA_URL"`
	WaitForOllama bool   `mapstructure:"WAIT_FOR_OLLAMA"`

	StorageDir     string `mapstructure:"STORAGE_DIR"`
	SessionsDir    string `mapstructure:"SESSIONS_DIR"`
	SessionBackend string `mapstructure:"SESSION_BACKEND"`
	RedisAddr      string `mapstructure:"REDIS_ADDR"`

	EmbeddingModel string `mapstructure:"EMBEDDING_MODEL"`
	VisionModel    string `mapstructure:"VISION_MODEL"`
	TitleModel     string `mapstructure:"TITLE_MODEL"`

	ChunkSize         int `mapstructure:"CHUNK_SIZE"`
	ChunkOverlap      int `mapstructure:"CHUNK_OVERLAP"`
	IndexChunkSize    int `mapstructure:"INDEX_CHUNK_SIZE"`
	IndexChunkOverlap int `mapstructure:"INDEX_CHUNK_OVERLAP"`
	RetrievalTopK     int `mapstructure:"RETRIEVAL_TOP_K"`

	ExtractConcurrency int    `mapstructure:"EXTRACT_CONCURRENCY"`
	TranscribeCommand  string `mapstructure:"TRANSCRIBE_COMMAND"`
	OCRCommand         string `mapstructure:"OCR_COMMAND"`

	// StrictModelValidation turns the legacy "Invalid model" 200 reply into a 422.
	StrictModelValidation bool `mapstructure:"STRICT_MODEL_VALIDATION"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 3030)
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("OLLAMA_URL", "http://localhost:11434")
	viper.SetDefault("WAIT_FOR_OLLAMA", true)
	viper.SetDefault("STORAGE_DIR", "./storage")
	viper.SetDefault("SESSIONS_DIR", defaultSessionsDir())
	viper.SetDefault("SESSION_BACKEND", "file")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("EMBEDDING_MODEL", "nomic-embed-text")
	viper.SetDefault("VISION_MODEL", "llava-llama3")
	viper.SetDefault("TITLE_MODEL", "llama3.2")
	viper.SetDefault("CHUNK_SIZE", 10000)
	viper.SetDefault("CHUNK_OVERLAP", 500)
	viper.SetDefault("INDEX_CHUNK_SIZE", 1024)
	viper.SetDefault("INDEX_CHUNK_OVERLAP", 20)
	viper.SetDefault("RETRIEVAL_TOP_K", 2)
	viper.SetDefault("EXTRACT_CONCURRENCY", 4)
	viper.SetDefault("TRANSCRIBE_COMMAND", "python3 whisper_transcribe.py")
	viper.SetDefault("OCR_COMMAND", "tesseract")
	viper.SetDefault("STRICT_MODEL_VALIDATION", false)

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// defaultSessionsDir mirrors where the desktop client kept its chats.
func defaultSessionsDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "Chats")
	}
	return filepath.Join(dir, "Nexus", "Chats")
}
