package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
	Schema   string `yaml:"schema"`
}

type PathsConfig struct {
	SourceDir string `yaml:"source_dir"`
	OutputDir string `yaml:"output_dir"`
	XMLFile   string `yaml:"xml_file"`
	SQLFile   string `yaml:"sql_file"`
}

type JSONConfig struct {
	Indent bool `yaml:"indent"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Paths    PathsConfig    `yaml:"paths"`
	JSON     JSONConfig     `yaml:"json"`
	Log      LogConfig      `yaml:"log"`
}

func (db *DatabaseConfig) GetConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		db.Host,
		db.Port,
		db.User,
		db.Password,
		db.DBName,
		db.SSLMode,
	)
}

// Default конфигурация: все файлы в текущей директории
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    5432,
			SSLMode: "disable",
			Schema:  "public",
		},
		Paths: PathsConfig{
			SourceDir: ".",
			OutputDir: ".",
			XMLFile:   "data_class.xml",
			SQLFile:   "schema.sql",
		},
		JSON: JSONConfig{Indent: false},
		Log:  LogConfig{Level: "info"},
	}
}

// LoadConfig читает YAML поверх значений по умолчанию
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadOrDefault как LoadConfig, но отсутствующий файл не ошибка
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func GetDefaultConfigPath() string {
	dir, _ := os.Getwd()
	return filepath.Join(dir, "config.yaml")
}
