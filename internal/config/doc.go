// Package config loads runtime configuration for the peoplekeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string   credential file (username,password,isActive)
//	-p string   people file (id|firstName|lastName|phone|city|balance)
//	-l string   audit log file
//	-m int      failed login attempts allowed per session
//	-v string   log level: debug, info, warn, error
//
// # JSON schema
//
//	{
//	  "users_file": "Data/Users.txt",
//	  "people_file": "Data/People.txt",
//	  "audit": {"driver": "file", "file": "log.txt", "dsn": ""},
//	  "max_login_attempts": 3,
//	  "log_level": "info",
//	  "backup": {
//	    "bucket": "", "region": "us-east-1", "endpoint": "http://127.0.0.1:9000/",
//	    "access_key": "", "secret_key": "", "prefix": "people"
//	  }
//	}
//
// Audit drivers: "file" appends text lines to audit.file, "sqlite" and "pgx"
// insert rows using audit.dsn, "none" disables the trail. Backups are off
// while backup.bucket is empty.
package config
