// Package services holds the two stateful stores of peoplekeeper.
//
// AuthService owns the operator credentials and decides login attempts,
// including the lockout that deactivates an account after too many wrong
// passwords. PersonService owns the person records: validated CRUD, the
// city report, and explicit persistence.
//
// Both stores load their collection once at construction and are the only
// code allowed to mutate it; readers receive copies. They are meant for a
// single operator and are not safe for concurrent use.
package services
