// Package cli implements the interactive terminal front end: the login
// prompt, the numeric main menu and the per-option dialogs that drive the
// record store.
package cli
