package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"

	"alcyxob/clipclass/internal/planner"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Snapshot  SnapshotConfig  `mapstructure:"snapshot"`
	Badger    BadgerConfig    `mapstructure:"badger"`
	Database  DatabaseConfig  `mapstructure:"database"`
	S3        S3Config        `mapstructure:"s3"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Planner   PlannerConfig   `mapstructure:"planner"`
	Narration NarrationConfig `mapstructure:"narration"`
}

type ServerConfig struct {
	Address     string   `mapstructure:"address"`
	Mode        string   `mapstructure:"mode"` // gin mode: debug, release, test
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type LoggingConfig struct {
	Mode  string `mapstructure:"mode"` // "dev" or "prod"
	Level string `mapstructure:"level"`
}

type CatalogConfig struct {
	SnapshotKey string `mapstructure:"snapshot_key"` // Name the whole collection is stored under
	SeedLibrary bool   `mapstructure:"seed_library"` // Load the sample library when no snapshot exists
}

// SnapshotConfig selects where the catalog snapshot lives.
type SnapshotConfig struct {
	Backend string        `mapstructure:"backend"` // memory, badger, mongo, s3, redis
	Timeout time.Duration `mapstructure:"timeout"`
}

type BadgerConfig struct {
	Path     string `mapstructure:"path"`
	InMemory bool   `mapstructure:"in_memory"`
}

type DatabaseConfig struct {
	URI        string `mapstructure:"uri"`
	Name       string `mapstructure:"name"`
	Collection string `mapstructure:"collection"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	Prefix          string `mapstructure:"prefix"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// PlannerConfig tunes the workout plan heuristic.
type PlannerConfig struct {
	MaxResults      int             `mapstructure:"max_results"`
	FallbackResults int             `mapstructure:"fallback_results"`
	Delay           time.Duration   `mapstructure:"delay"`
	Weights         planner.Weights `mapstructure:"weights"`
}

// Options converts the config section into planner options.
func (c PlannerConfig) Options() planner.Options {
	return planner.Options{
		MaxResults:      c.MaxResults,
		FallbackResults: c.FallbackResults,
		Delay:           c.Delay,
		Weights:         c.Weights,
	}
}

type NarrationConfig struct {
	WordsPerMinute int `mapstructure:"words_per_minute"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Nested keys map to env vars with dots replaced, e.g. snapshot.backend -> SNAPSHOT_BACKEND
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	setDefaults(v)

	err = v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		// No file is fine; defaults and env vars are enough.
		err = nil
	} else if err != nil {
		return
	}

	// Durations ("1500ms", "1s") decode straight into time.Duration fields.
	if err = v.Unmarshal(&config); err != nil {
		return
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.cors_origins", []string{"http://localhost:5173", "http://localhost:3000", "http://127.0.0.1:5173"})

	v.SetDefault("logging.mode", "dev")
	v.SetDefault("logging.level", "info")

	v.SetDefault("catalog.snapshot_key", "clipclass.videos")
	v.SetDefault("catalog.seed_library", true)

	v.SetDefault("snapshot.backend", "badger")
	v.SetDefault("snapshot.timeout", "5s")
	v.SetDefault("badger.path", "./data/catalog")
	v.SetDefault("badger.in_memory", false)

	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "clipclass")
	v.SetDefault("database.collection", "catalog_snapshots")

	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("s3.prefix", "snapshots/")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("planner.max_results", planner.DefaultMaxResults)
	v.SetDefault("planner.fallback_results", planner.DefaultFallbackResults)
	v.SetDefault("planner.delay", "1500ms")
	w := planner.DefaultWeights()
	v.SetDefault("planner.weights.title", w.Title)
	v.SetDefault("planner.weights.category", w.Category)
	v.SetDefault("planner.weights.difficulty", w.Difficulty)
	v.SetDefault("planner.weights.equipment", w.Equipment)
	v.SetDefault("planner.weights.tag", w.Tag)
	v.SetDefault("planner.weights.goal", w.Goal)
	v.SetDefault("planner.weights.body_part", w.BodyPart)
	v.SetDefault("planner.weights.description", w.Description)
	v.SetDefault("planner.weights.intensity", w.Intensity)

	v.SetDefault("narration.words_per_minute", 160)
}
