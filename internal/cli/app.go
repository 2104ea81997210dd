package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/peoplekeeper/internal/audit"
	"github.com/dmitrijs2005/peoplekeeper/internal/backup"
	"github.com/dmitrijs2005/peoplekeeper/internal/config"
	"github.com/dmitrijs2005/peoplekeeper/internal/logging"
	"github.com/dmitrijs2005/peoplekeeper/internal/repositories/people"
	"github.com/dmitrijs2005/peoplekeeper/internal/repositories/users"
	"github.com/dmitrijs2005/peoplekeeper/internal/services"
)

type App struct {
	config        *config.Config
	log           logging.Logger
	audit         audit.Sink
	backup        backup.Uploader
	authService   *services.AuthService
	peopleRepo    people.Repository
	personService *services.PersonService
	userName      string
	reader        *bufio.Reader
	out           io.Writer
}

// NewApp loads the credential store and prepares the people repository.
// uploader may be nil when backups are disabled.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, sink audit.Sink, uploader backup.Uploader) (*App, error) {
	as, err := services.NewAuthService(ctx, users.NewFileRepository(c.UsersFile, log), log)
	if err != nil {
		return nil, err
	}

	return &App{
		config:      c,
		log:         log,
		audit:       sink,
		backup:      uploader,
		authService: as,
		peopleRepo:  people.NewFileRepository(c.PeopleFile, log),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

// Run logs the operator in and serves the main menu until they exit.
// A failed login simply returns.
func (a *App) Run(ctx context.Context) {
	userName, ok := a.Login(ctx)
	if !ok {
		return
	}
	a.userName = userName
	a.audit.Record(ctx, userName, "Logged in successfully")

	var opts []services.PersonServiceOption
	if a.backup != nil {
		opts = append(opts, services.WithBackup(a.backup))
	}

	ps, err := services.NewPersonService(ctx, a.peopleRepo, a.audit, a.log, userName, opts...)
	if err != nil {
		a.log.Error(ctx, "loading people failed", logging.Err(err))
		fmt.Fprintf(a.out, "Error loading people: %v\n", err)
		_ = a.Logout(ctx)
		return
	}
	a.personService = ps

	runMenu(ctx, a, userName, a.reader, a.out)
}

// Logout closes the operator session.
func (a *App) Logout(ctx context.Context) error {
	if a.userName == "" {
		return nil
	}
	a.audit.Record(ctx, a.userName, "Logged out")
	a.log.Info(ctx, "operator logged out", "user", a.userName)
	a.userName = ""
	return nil
}

func (a *App) banner(title string) {
	fmt.Fprintln(a.out, rule)
	fmt.Fprintln(a.out, "          "+title)
	fmt.Fprintln(a.out, rule)
	fmt.Fprintln(a.out)
}
