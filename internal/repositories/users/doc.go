// Package users persists operator credentials in a comma-delimited flat file,
// one credential per line:
//
//	username,password,isActive
//
// isActive is written as lowercase "true" or "false".
//
// Parsing is lenient on purpose: lines that do not split into exactly three
// fields, or whose flag is not a boolean, are skipped and reported through
// the logger instead of failing the load. A missing file loads as an empty
// collection. Saving always rewrites the whole file.
package users
