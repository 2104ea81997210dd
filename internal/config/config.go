package config

import (
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/peoplekeeper/internal/models"
)

// Audit drivers.
const (
	AuditDriverFile   = "file"
	AuditDriverSQLite = "sqlite"
	AuditDriverPgx    = "pgx"
	AuditDriverNone   = "none"
)

// Config holds runtime settings for the CLI.
type Config struct {
	UsersFile        string
	PeopleFile       string
	AuditDriver      string
	AuditFile        string
	AuditDSN         string
	MaxLoginAttempts int
	LogLevel         string
	Backup           BackupConfig
}

// BackupConfig describes the S3-compatible bucket that receives a copy of
// the people file after every save.
type BackupConfig struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	Prefix    string
}

// Enabled reports whether backups should be taken.
func (b BackupConfig) Enabled() bool {
	return b.Bucket != ""
}

// LoadDefaults populates c with the file layout the tool has always used.
func (c *Config) LoadDefaults() {
	c.UsersFile = filepath.Join("Data", "Users.txt")
	c.PeopleFile = filepath.Join("Data", "People.txt")
	c.AuditDriver = AuditDriverFile
	c.AuditFile = "log.txt"
	c.AuditDSN = ""
	c.MaxLoginAttempts = models.DefaultMaxLoginAttempts
	c.LogLevel = "info"
	c.Backup = BackupConfig{
		Region:   "us-east-1",
		Endpoint: "http://127.0.0.1:9000/",
		Prefix:   "people",
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	return loadFromArgs(os.Args[1:])
}

func loadFromArgs(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
