package models

// User is an operator credential. Active flips to false on lockout and
// only an administrator can flip it back by editing the credential file.
type User struct {
	Username string
	Password string
	Active   bool
}
