package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Person is a single managed record. ID is the unique key.
type Person struct {
	ID        int
	FirstName string
	LastName  string
	Phone     string
	City      string
	Balance   decimal.Decimal
}

// FullName returns "First Last".
func (p Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p Person) String() string {
	return fmt.Sprintf("%d %s (%s, %s) %s", p.ID, p.FullName(), p.Phone, p.City, p.Balance.StringFixed(2))
}

// PersonPatch carries optional replacement values for an edit.
// A nil field means "no change". Values are raw operator input; the
// record store validates phone and balance before applying them.
type PersonPatch struct {
	FirstName *string
	LastName  *string
	Phone     *string
	City      *string
	Balance   *string
}

// Patch field names reported in EditResult.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldPhone     = "phone"
	FieldCity      = "city"
	FieldBalance   = "balance"
)

// EditResult describes which patch fields were applied and which were
// rejected by validation. Rejected fields keep their previous value.
type EditResult struct {
	Applied  []string
	Rejected []string
	Person   Person
}
