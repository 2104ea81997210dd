// Command hashpw reads a password without echo and prints its bcrypt hash,
// ready to be placed in the password field of the users file.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/peoplekeeper/internal/common"
	"github.com/dmitrijs2005/peoplekeeper/internal/cryptox"
	"golang.org/x/term"
)

func run() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	defer common.WipeByteArray(pw)

	if len(pw) == 0 {
		return "", errors.New("empty password")
	}
	return cryptox.HashPassword(pw)
}

func main() {
	hash, err := run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
