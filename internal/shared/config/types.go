// Package config defines the typed configuration structures shared across
// the application. Values are populated by the infrastructure config loader.
package config

import "fmt"

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type WebConfig struct {
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"`
	BackendURL    string `mapstructure:"backend_url"`
	SessionSecret string `mapstructure:"session_secret"`
	SessionExpHrs int    `mapstructure:"session_exp_hours"`
	MediaPath     string `mapstructure:"media_path"`
}

func (c *WebConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type AuthConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

// StorageConfig holds the S3-compatible object storage settings. The
// endpoint and public URL are derived from the region/namespace/bucket
// triple when not set explicitly.
type StorageConfig struct {
	Region        string `mapstructure:"region"`
	Namespace     string `mapstructure:"namespace"`
	Bucket        string `mapstructure:"bucket"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	Endpoint      string `mapstructure:"endpoint"`
	PublicBaseURL string `mapstructure:"public_base_url"`
	ServeMode     string `mapstructure:"serve_mode"` // "redirect" or "stream"
}

// Configured reports whether enough settings are present to talk to the
// storage backend. Attachment features fail hard when this is false.
func (c *StorageConfig) Configured() bool {
	return c.Namespace != "" && c.Bucket != "" && c.Region != ""
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
