package services

import (
	"context"
	"errors"
	"slices"

	"github.com/dmitrijs2005/peoplekeeper/internal/models"
)

// fakeUsersRepo is an in-memory users.Repository.
type fakeUsersRepo struct {
	stored  []models.User
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeUsersRepo) Load(context.Context) ([]models.User, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return slices.Clone(f.stored), nil
}

func (f *fakeUsersRepo) Save(_ context.Context, u []models.User) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.stored = slices.Clone(u)
	return nil
}

// fakePeopleRepo is an in-memory people.Repository.
type fakePeopleRepo struct {
	stored  []models.Person
	loadErr error
	saveErr error
	saves   int
}

func (f *fakePeopleRepo) Load(context.Context) ([]models.Person, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return slices.Clone(f.stored), nil
}

func (f *fakePeopleRepo) Save(_ context.Context, p []models.Person) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.stored = slices.Clone(p)
	return nil
}

func (f *fakePeopleRepo) Path() string { return "People.txt" }

// recordingSink keeps audit messages.
type recordingSink struct {
	actors   []string
	messages []string
}

func (r *recordingSink) Record(_ context.Context, actor, message string) {
	r.actors = append(r.actors, actor)
	r.messages = append(r.messages, message)
}

// fakeUploader records backup calls.
type fakeUploader struct {
	paths []string
	err   error
}

func (f *fakeUploader) Upload(_ context.Context, path string) error {
	f.paths = append(f.paths, path)
	return f.err
}

var errBoom = errors.New("boom")
