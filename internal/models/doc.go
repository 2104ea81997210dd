// Package models holds the domain types shared by the stores, the CLI and
// the flat-file repositories: operator credentials, person records, login
// session state and the city report.
package models
