package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/peoplekeeper/internal/common"
	"github.com/dmitrijs2005/peoplekeeper/internal/logging"
	"github.com/dmitrijs2005/peoplekeeper/internal/models"
)

// Login prompts for credentials until the attempt resolves. It returns the
// authenticated username, or false when the session ended without access.
func (a *App) Login(ctx context.Context) (string, bool) {
	sess := models.NewLoginSession(a.config.MaxLoginAttempts)
	a.banner("LOGIN TO THE SYSTEM")

	for {
		userName, err := GetSimpleText(a.reader, "Username", a.out)
		if err != nil {
			a.log.Debug(ctx, "login aborted", logging.Err(err))
			return "", false
		}

		password, err := GetPassword(a.reader, a.out)
		if err != nil {
			a.log.Debug(ctx, "login aborted", logging.Err(err))
			return "", false
		}

		outcome := a.authService.AttemptLogin(ctx, sess, userName, string(password))
		common.WipeByteArray(password)

		switch outcome.Kind {
		case models.OutcomeSuccess:
			fmt.Fprintf(a.out, "\nWelcome, %s!\n", outcome.Username)
			a.log.Info(ctx, "operator logged in", "user", outcome.Username)
			return outcome.Username, true

		case models.OutcomeLocked:
			fmt.Fprintln(a.out, "\nToo many failed attempts. Your account has been blocked.")
			a.log.Warn(ctx, "account locked", "user", userName)
			return "", false

		case models.OutcomeAlreadyLocked:
			fmt.Fprintln(a.out, "\nYour account is blocked. Contact the administrator.")
			return "", false

		default:
			fmt.Fprintf(a.out, "\nInvalid username or password. Attempts remaining: %d\n", outcome.Remaining)
			if outcome.Terminal() {
				return "", false
			}
		}
	}
}
