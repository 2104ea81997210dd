package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/peoplekeeper/internal/models"
	"github.com/dmitrijs2005/peoplekeeper/internal/repositories/people"
	"github.com/dmitrijs2005/peoplekeeper/internal/validator"
	"github.com/shopspring/decimal"
)

var (
	errIDFormat  = errors.New("ID must be a positive number")
	errIDTaken   = errors.New("a person with this ID already exists")
	errFirstName = errors.New("first name is required")
	errLastName  = errors.New("last name is required")
	errPhone     = errors.New("phone must contain at least 7 characters with numbers")
	errCity      = errors.New("city is required")
	errBalance   = errors.New("balance must be a number greater than or equal to zero")
	errSeparator = errors.New("values must not contain '|'")
)

func printPerson(w io.Writer, p models.Person) {
	fmt.Fprintf(w, "%d\t\t%s\n", p.ID, p.FullName())
	fmt.Fprintf(w, "\t\tPhone: %s\n", p.Phone)
	fmt.Fprintf(w, "\t\tCity: %s\n", p.City)
	fmt.Fprintf(w, "\t\tBalance:\t\t$%s\n", formatMoney(p.Balance))
	fmt.Fprintln(w)
}

// promptUntilValid asks for a value until parse accepts it. Only read
// errors end the loop.
func promptUntilValid[T any](a *App, prompt string, parse func(string) (T, error)) (T, error) {
	for {
		text, err := GetSimpleText(a.reader, prompt, a.out)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(text)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(a.out, "Error: %v. Try again.\n", err)
	}
}

func required(e error) func(string) (string, error) {
	return func(s string) (string, error) {
		if !validator.NonEmpty(s) {
			return "", e
		}
		if !people.ValidField(s) {
			return "", errSeparator
		}
		return s, nil
	}
}

// readID prompts once for an existing record id. ok is false when the
// input was not an id or no record carries it; the operator has been told.
func (a *App) readID(prompt string) (models.Person, bool, error) {
	text, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return models.Person{}, false, err
	}
	id, err := validator.ParsePositiveID(text)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid ID format.")
		return models.Person{}, false, nil
	}
	p, ok := a.personService.Get(id)
	if !ok {
		fmt.Fprintf(a.out, "No person found with ID %d.\n", id)
		return models.Person{}, false, nil
	}
	return p, true, nil
}

func (a *App) Show(ctx context.Context) error {
	a.banner("PEOPLE LIST")

	list := a.personService.List(ctx)
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No people found in the system.")
		return nil
	}
	for _, p := range list {
		printPerson(a.out, p)
	}
	return nil
}

// Add collects a new record field by field, re-prompting until each value
// is valid.
func (a *App) Add(ctx context.Context) error {
	a.banner("ADD NEW PERSON")

	var (
		p   models.Person
		err error
	)

	p.ID, err = promptUntilValid(a, "Enter ID", func(s string) (int, error) {
		id, err := validator.ParsePositiveID(s)
		if err != nil {
			return 0, errIDFormat
		}
		if a.personService.Exists(id) {
			return 0, errIDTaken
		}
		return id, nil
	})
	if err != nil {
		return err
	}

	if p.FirstName, err = promptUntilValid(a, "Enter First Name", required(errFirstName)); err != nil {
		return err
	}
	if p.LastName, err = promptUntilValid(a, "Enter Last Name", required(errLastName)); err != nil {
		return err
	}
	p.Phone, err = promptUntilValid(a, "Enter Phone", func(s string) (string, error) {
		if !validator.ValidPhone(s) {
			return "", errPhone
		}
		if !people.ValidField(s) {
			return "", errSeparator
		}
		return s, nil
	})
	if err != nil {
		return err
	}
	if p.City, err = promptUntilValid(a, "Enter City", required(errCity)); err != nil {
		return err
	}
	p.Balance, err = promptUntilValid(a, "Enter Balance", func(s string) (decimal.Decimal, error) {
		b, err := validator.ParseNonNegativeBalance(s)
		if err != nil {
			return decimal.Zero, errBalance
		}
		return b, nil
	})
	if err != nil {
		return err
	}

	if err := a.personService.Add(ctx, p); err != nil {
		fmt.Fprintf(a.out, "\nError: %v\n", err)
		return err
	}
	fmt.Fprintln(a.out, "\nPerson added successfully!")
	return nil
}

// Edit shows the current record and lets the operator replace any field.
// ENTER keeps the current value.
func (a *App) Edit(ctx context.Context) error {
	a.banner("EDIT PERSON")

	p, ok, err := a.readID("Enter the ID of the person to edit")
	if err != nil || !ok {
		return err
	}

	fmt.Fprintln(a.out, "\nCurrent data:")
	printPerson(a.out, p)
	fmt.Fprintln(a.out, "Enter new data (press ENTER to keep current value):")
	fmt.Fprintln(a.out)

	var patch models.PersonPatch
	fields := []struct {
		label   string
		current string
		dst     **string
	}{
		{"First Name", p.FirstName, &patch.FirstName},
		{"Last Name", p.LastName, &patch.LastName},
		{"Phone", p.Phone, &patch.Phone},
		{"City", p.City, &patch.City},
		{"Balance", p.Balance.StringFixed(2), &patch.Balance},
	}
	for _, f := range fields {
		text, err := GetSimpleText(a.reader, fmt.Sprintf("%s [%s]", f.label, f.current), a.out)
		if err != nil {
			return err
		}
		if text != "" {
			*f.dst = &text
		}
	}

	res, err := a.personService.Edit(ctx, p.ID, patch)
	if err != nil {
		fmt.Fprintf(a.out, "\nError: %v\n", err)
		return err
	}

	for _, f := range res.Rejected {
		switch f {
		case models.FieldPhone:
			fmt.Fprintln(a.out, "Invalid phone format. Keeping previous value.")
		case models.FieldBalance:
			fmt.Fprintln(a.out, "Invalid balance format. Keeping previous value.")
		default:
			fmt.Fprintf(a.out, "Invalid %s: %v. Keeping previous value.\n", f, errSeparator)
		}
	}
	fmt.Fprintln(a.out, "\nPerson updated successfully!")
	return nil
}

// Delete removes a record after a Y/N confirmation.
func (a *App) Delete(ctx context.Context) error {
	a.banner("DELETE PERSON")

	p, ok, err := a.readID("Enter the ID of the person to delete")
	if err != nil || !ok {
		return err
	}

	fmt.Fprintln(a.out, "\nPerson to delete:")
	printPerson(a.out, p)

	answer, err := GetSimpleText(a.reader, "Are you sure you want to delete this person? (Y/N)", a.out)
	if err != nil {
		return err
	}

	switch strings.ToUpper(answer) {
	case "Y", "YES":
		if _, err := a.personService.Delete(ctx, p.ID); err != nil {
			fmt.Fprintf(a.out, "\nError: %v\n", err)
			return err
		}
		fmt.Fprintln(a.out, "\nPerson deleted successfully!")
	default:
		fmt.Fprintln(a.out, "\nDeletion cancelled.")
	}
	return nil
}

func (a *App) Save(ctx context.Context) error {
	if err := a.personService.Persist(ctx); err != nil {
		fmt.Fprintf(a.out, "\nError saving people: %v\n", err)
		return err
	}
	fmt.Fprintln(a.out, "\nChanges saved successfully!")
	return nil
}
