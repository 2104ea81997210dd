package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/peoplekeeper/internal/audit"
	"github.com/dmitrijs2005/peoplekeeper/internal/backup"
	"github.com/dmitrijs2005/peoplekeeper/internal/common"
	"github.com/dmitrijs2005/peoplekeeper/internal/logging"
	"github.com/dmitrijs2005/peoplekeeper/internal/models"
	"github.com/dmitrijs2005/peoplekeeper/internal/repositories/people"
	"github.com/dmitrijs2005/peoplekeeper/internal/validator"
)

// PersonService is the in-memory person collection of one operator session.
// Changes stay in memory until Persist is called.
type PersonService struct {
	repo   people.Repository
	audit  audit.Sink
	backup backup.Uploader
	log    logging.Logger
	actor  string
	people []models.Person
}

// PersonServiceOption customises a PersonService.
type PersonServiceOption func(*PersonService)

// WithBackup uploads the people file after every successful Persist.
func WithBackup(u backup.Uploader) PersonServiceOption {
	return func(s *PersonService) {
		s.backup = u
	}
}

// NewPersonService loads every record from repo. actor is the
// authenticated operator named in audit events.
func NewPersonService(ctx context.Context, repo people.Repository, sink audit.Sink, log logging.Logger, actor string, opts ...PersonServiceOption) (*PersonService, error) {
	loaded, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("person service: %w", err)
	}

	s := &PersonService{
		repo:   repo,
		audit:  sink,
		log:    log.With("actor", actor),
		actor:  actor,
		people: loaded,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log.Debug(ctx, "people loaded", "count", len(loaded))
	return s, nil
}

func (s *PersonService) indexOf(id int) int {
	return slices.IndexFunc(s.people, func(p models.Person) bool { return p.ID == id })
}

// Exists reports whether a record with id is present.
func (s *PersonService) Exists(id int) bool {
	return s.indexOf(id) >= 0
}

// Get returns the record with id.
func (s *PersonService) Get(id int) (models.Person, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Person{}, false
	}
	return s.people[i], true
}

// Add appends p, which the caller has already validated field by field.
// A text field holding the file separator or a line break is refused with
// common.ErrInvalidFormat because it could not be saved.
func (s *PersonService) Add(ctx context.Context, p models.Person) error {
	for _, f := range []string{p.FirstName, p.LastName, p.Phone, p.City} {
		if !people.ValidField(f) {
			return fmt.Errorf("add person %d: field %q: %w", p.ID, f, common.ErrInvalidFormat)
		}
	}
	if s.Exists(p.ID) {
		return fmt.Errorf("add person %d: %w", p.ID, common.ErrDuplicateID)
	}
	s.people = append(s.people, p)
	s.audit.Record(ctx, s.actor, fmt.Sprintf("Added new person: %s (ID: %d)", p.FullName(), p.ID))
	return nil
}

// Edit applies patch to the record with id. Each supplied field is handled
// on its own: blank values are ignored, and a value that fails validation
// or could not be stored is listed in EditResult.Rejected while the
// previous value is kept. Other fields of the same patch still apply.
func (s *PersonService) Edit(ctx context.Context, id int, patch models.PersonPatch) (models.EditResult, error) {
	i := s.indexOf(id)
	if i < 0 {
		return models.EditResult{}, fmt.Errorf("edit person %d: %w", id, common.ErrorNotFound)
	}

	p := &s.people[i]
	var res models.EditResult

	setText := func(field string, v *string, dst *string) {
		if v == nil || !validator.NonEmpty(*v) {
			return
		}
		if !people.ValidField(*v) {
			res.Rejected = append(res.Rejected, field)
			return
		}
		*dst = *v
		res.Applied = append(res.Applied, field)
	}

	setText(models.FieldFirstName, patch.FirstName, &p.FirstName)
	setText(models.FieldLastName, patch.LastName, &p.LastName)

	if v := patch.Phone; v != nil && validator.NonEmpty(*v) {
		if validator.ValidPhone(*v) && people.ValidField(*v) {
			p.Phone = *v
			res.Applied = append(res.Applied, models.FieldPhone)
		} else {
			res.Rejected = append(res.Rejected, models.FieldPhone)
		}
	}

	setText(models.FieldCity, patch.City, &p.City)

	if v := patch.Balance; v != nil && validator.NonEmpty(*v) {
		if b, err := validator.ParseNonNegativeBalance(*v); err == nil {
			p.Balance = b
			res.Applied = append(res.Applied, models.FieldBalance)
		} else {
			res.Rejected = append(res.Rejected, models.FieldBalance)
		}
	}

	res.Person = *p
	if len(res.Rejected) > 0 {
		s.log.Info(ctx, "edit kept previous values", "id", id, "fields", strings.Join(res.Rejected, ","))
	}
	s.audit.Record(ctx, s.actor, fmt.Sprintf("Edited person with ID: %d", id))
	return res, nil
}

// Delete removes and returns the record with id. Confirmation is the
// caller's concern.
func (s *PersonService) Delete(ctx context.Context, id int) (models.Person, error) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Person{}, fmt.Errorf("delete person %d: %w", id, common.ErrorNotFound)
	}

	removed := s.people[i]
	s.people = slices.Delete(s.people, i, i+1)
	s.audit.Record(ctx, s.actor, fmt.Sprintf("Deleted person: %s (ID: %d)", removed.FullName(), id))
	return removed, nil
}

// List returns the live collection, in order, as a copy.
func (s *PersonService) List(ctx context.Context) []models.Person {
	s.audit.Record(ctx, s.actor, "Viewed people list")
	return slices.Clone(s.people)
}

// ReportByCity groups the collection by city.
func (s *PersonService) ReportByCity(ctx context.Context) models.CityReport {
	r := BuildCityReport(s.people)
	s.audit.Record(ctx, s.actor, "Generated report by city")
	return r
}

// Persist rewrites the people file from memory. On failure the in-memory
// collection is left as it is. A configured backup runs after a successful
// write; its failure is only logged.
func (s *PersonService) Persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.people); err != nil {
		s.log.Error(ctx, "saving people failed", logging.Err(err))
		return err
	}
	s.audit.Record(ctx, s.actor, "Saved changes to file")

	if s.backup != nil {
		if err := s.backup.Upload(ctx, s.repo.Path()); err != nil {
			s.log.Warn(ctx, "backup upload failed", logging.Err(err))
		} else {
			s.log.Info(ctx, "backup uploaded", "file", s.repo.Path())
		}
	}
	return nil
}
