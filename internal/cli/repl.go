package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the menu needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Show(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Report(ctx context.Context) error
	Save(ctx context.Context) error
	Logout(ctx context.Context) error
}

const rule = "========================================"

func printMenu(w io.Writer, userName string) {
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "  Welcome, %s!\n", userName)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "1. Show content")
	fmt.Fprintln(w, "2. Add person")
	fmt.Fprintln(w, "3. Edit person")
	fmt.Fprintln(w, "4. Delete person")
	fmt.Fprintln(w, "5. Generate report by city")
	fmt.Fprintln(w, "6. Save changes")
	fmt.Fprintln(w, "0. Exit")
	fmt.Fprintln(w, rule)
	fmt.Fprint(w, "Choose an option: ")
}

// runMenu shows the main menu on w and dispatches the chosen option to a until
// the operator picks 0 or input runs out. Either way the session is closed
// through a.Logout.
//
// Errors returned by handlers are not shown here; handlers report their
// own problems to the operator. Only io.EOF ends the loop early.
func runMenu(ctx context.Context, a execIface, userName string, reader *bufio.Reader, w io.Writer) {
	for {
		printMenu(w, userName)

		line, err := readLine(reader)
		if err != nil {
			_ = a.Logout(ctx)
			return
		}

		switch strings.TrimSpace(line) {
		case "1":
			err = a.Show(ctx)
		case "2":
			err = a.Add(ctx)
		case "3":
			err = a.Edit(ctx)
		case "4":
			err = a.Delete(ctx)
		case "5":
			err = a.Report(ctx)
		case "6":
			err = a.Save(ctx)
		case "0":
			fmt.Fprintln(w, "\nExiting the system...")
			_ = a.Logout(ctx)
			return
		default:
			fmt.Fprintln(w, "\nInvalid option. Try again.")
		}

		if errors.Is(err, io.EOF) {
			_ = a.Logout(ctx)
			return
		}
		fmt.Fprintln(w)
	}
}
