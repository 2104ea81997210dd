package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/peoplekeeper/internal/cryptox"
	"github.com/dmitrijs2005/peoplekeeper/internal/logging"
	"github.com/dmitrijs2005/peoplekeeper/internal/models"
	"github.com/dmitrijs2005/peoplekeeper/internal/repositories/users"
)

// AuthService evaluates login attempts against the credential collection.
type AuthService struct {
	repo  users.Repository
	log   logging.Logger
	users []models.User
}

// NewAuthService loads every credential from repo. A missing credential
// file is an empty collection; other read failures are returned.
func NewAuthService(ctx context.Context, repo users.Repository, log logging.Logger) (*AuthService, error) {
	loaded, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}
	log.Debug(ctx, "credentials loaded", "count", len(loaded))
	return &AuthService{repo: repo, log: log, users: loaded}, nil
}

// AttemptLogin evaluates one login try and updates sess.
//
// Checks run in a fixed order: the username must exist, the account must
// be active, then the password must match. An unknown username and a wrong
// password both consume an attempt; only a wrong password can lock the
// account, and only on the attempt that exhausts the session. An inactive
// account is reported as AlreadyLocked without consuming an attempt or
// looking at the password.
func (s *AuthService) AttemptLogin(ctx context.Context, sess *models.LoginSession, username, password string) models.LoginOutcome {
	if sess.Exhausted() {
		return models.LoginOutcome{Kind: models.OutcomeRejected}
	}

	i := s.indexOf(username)
	if i < 0 {
		sess.Fail()
		s.log.Info(ctx, "login rejected: unknown user", "remaining", sess.Remaining())
		return models.LoginOutcome{Kind: models.OutcomeRejected, Remaining: sess.Remaining()}
	}

	u := &s.users[i]
	if !u.Active {
		s.log.Info(ctx, "login refused: account locked", "user", username)
		return models.LoginOutcome{Kind: models.OutcomeAlreadyLocked}
	}

	if !cryptox.VerifyPassword(u.Password, password) {
		sess.Fail()
		if sess.Exhausted() {
			s.lock(ctx, u)
			return models.LoginOutcome{Kind: models.OutcomeLocked}
		}
		s.log.Info(ctx, "login rejected: wrong password", "user", username, "remaining", sess.Remaining())
		return models.LoginOutcome{Kind: models.OutcomeRejected, Remaining: sess.Remaining()}
	}

	s.log.Info(ctx, "login succeeded", "user", username)
	return models.LoginOutcome{Kind: models.OutcomeSuccess, Username: u.Username}
}

// lock deactivates u and rewrites the whole credential file. A failed
// write is logged; the account stays locked in memory either way.
func (s *AuthService) lock(ctx context.Context, u *models.User) {
	u.Active = false
	s.log.Warn(ctx, "account locked after too many failed attempts", "user", u.Username)
	if err := s.repo.Save(ctx, s.users); err != nil {
		s.log.Error(ctx, "failed to persist lockout", "user", u.Username, logging.Err(err))
	}
}

func (s *AuthService) indexOf(username string) int {
	return slices.IndexFunc(s.users, func(u models.User) bool { return u.Username == username })
}

// Users returns a copy of the credential collection.
func (s *AuthService) Users() []models.User {
	return slices.Clone(s.users)
}
