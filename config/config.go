package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel int `yaml:"log_level"`

	Dataset  DatasetConfig  `yaml:"dataset"`
	Split    SplitConfig    `yaml:"split"`
	Labeling LabelingConfig `yaml:"labeling"`
	Build    BuildConfig    `yaml:"build"`
	Storage  StorageConfig  `yaml:"storage"`
	Runs     RunsConfig     `yaml:"runs"`
}

type DatasetConfig struct {
	// Root of the MedleyDB annotation tree. The MEDLEYDB_PATH environment
	// variable takes precedence over the value in the config file.
	MedleyDBPath string `yaml:"medleydb_path"`

	// Directory holding precomputed Melodia contour files.
	ContoursDir string `yaml:"contours_dir"`

	// JSON document mapping track id to artist id.
	ArtistIndex string `yaml:"artist_index"`

	// Melody annotation type. One of [1, 2, 3].
	MelodyType int `yaml:"melody_type"`
}

type SplitConfig struct {
	TestSize    float64 `yaml:"test_size"`
	RandomState int64   `yaml:"random_state"`
}

type LabelingConfig struct {
	// Minimum overlap with the annotation for a contour to be labeled
	// as melody. Value in [0, 1).
	OverlapThreshold float64 `yaml:"overlap_threshold"`
}

type BuildConfig struct {
	MaxWorkers int `yaml:"max_workers"`
}

type StorageConfig struct {
	// Type of storage: "local" or "gcs"
	Type string `yaml:"type"`

	// Local storage options
	OutputDir string `yaml:"output_dir"`

	// GCS storage options
	Bucket          string `yaml:"bucket"`
	ObjectPrefix    string `yaml:"object_prefix"`
	CredentialsFile string `yaml:"credentials_file"`
}

type RunsConfig struct {
	Database string `yaml:"database"`
}

func Load(path string) (*Config, error) {
	// Attempt to load a .env file. godotenv.Load does not override
	// variables already present in the environment.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config *Config

	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}

	// An empty document unmarshals to nil.
	if config == nil {
		config = &Config{}
	}

	if v := os.Getenv("MEDLEYDB_PATH"); v != "" {
		config.Dataset.MedleyDBPath = v
	}

	// Set defaults if not provided
	if config.Dataset.ContoursDir == "" {
		config.Dataset.ContoursDir = "melodia_contours"
	}

	if config.Dataset.ArtistIndex == "" {
		config.Dataset.ArtistIndex = "medley_artist_index.json"
	}

	if config.Dataset.MelodyType == 0 {
		config.Dataset.MelodyType = 1
	}

	if config.Split.TestSize == 0 {
		config.Split.TestSize = 0.15
	}

	if config.Split.RandomState == 0 {
		config.Split.RandomState = 1
	}

	if config.Labeling.OverlapThreshold == 0 {
		config.Labeling.OverlapThreshold = 0.5
	}

	if config.Build.MaxWorkers == 0 {
		config.Build.MaxWorkers = 4
	}

	if config.Storage.Type == "" {
		config.Storage.Type = "local"
	}

	if config.Storage.OutputDir == "" {
		config.Storage.OutputDir = "output"
	}

	if config.Runs.Database == "" {
		config.Runs.Database = "runs.db"
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.Dataset.MedleyDBPath == "" {
		return fmt.Errorf("dataset.medleydb_path is not set and MEDLEYDB_PATH is not in the environment")
	}

	if c.Dataset.MelodyType < 1 || c.Dataset.MelodyType > 3 {
		return fmt.Errorf("dataset.melody_type must be one of [1, 2, 3], got %d", c.Dataset.MelodyType)
	}

	if c.Split.TestSize <= 0 || c.Split.TestSize >= 1 {
		return fmt.Errorf("split.test_size must be in (0, 1), got %g", c.Split.TestSize)
	}

	if c.Labeling.OverlapThreshold < 0 || c.Labeling.OverlapThreshold >= 1 {
		return fmt.Errorf("labeling.overlap_threshold must be in [0, 1), got %g", c.Labeling.OverlapThreshold)
	}

	if c.Storage.Type != "local" && c.Storage.Type != "gcs" {
		return fmt.Errorf("storage.type must be \"local\" or \"gcs\", got %q", c.Storage.Type)
	}

	if c.Storage.Type == "gcs" && c.Storage.Bucket == "" {
		return fmt.Errorf("storage.bucket is required when storage.type is \"gcs\"")
	}

	return nil
}
