package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/peoplekeeper/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer and
// zero-valued fields leave the corresponding Config value untouched.
type JsonConfig struct {
	UsersFile        string      `json:"users_file"`
	PeopleFile       string      `json:"people_file"`
	Audit            *JsonAudit  `json:"audit"`
	MaxLoginAttempts int         `json:"max_login_attempts"`
	LogLevel         string      `json:"log_level"`
	Backup           *JsonBackup `json:"backup"`
}

type JsonAudit struct {
	Driver string `json:"driver"`
	File   string `json:"file"`
	DSN    string `json:"dsn"`
}

type JsonBackup struct {
	Bucket    string `json:"bucket"`
	Region    string `json:"region"`
	Endpoint  string `json:"endpoint"`
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
	Prefix    string `json:"prefix"`
}

// parseJson overlays cfg with values from the file named by -c / -config.
// It panics on read or unmarshal errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.UsersFile, jc.UsersFile)
	setString(&cfg.PeopleFile, jc.PeopleFile)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.MaxLoginAttempts > 0 {
		cfg.MaxLoginAttempts = jc.MaxLoginAttempts
	}

	if a := jc.Audit; a != nil {
		setString(&cfg.AuditDriver, a.Driver)
		setString(&cfg.AuditFile, a.File)
		setString(&cfg.AuditDSN, a.DSN)
	}

	if b := jc.Backup; b != nil {
		setString(&cfg.Backup.Bucket, b.Bucket)
		setString(&cfg.Backup.Region, b.Region)
		setString(&cfg.Backup.Endpoint, b.Endpoint)
		setString(&cfg.Backup.AccessKey, b.AccessKey)
		setString(&cfg.Backup.SecretKey, b.SecretKey)
		setString(&cfg.Backup.Prefix, b.Prefix)
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
