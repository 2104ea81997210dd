package people

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/peoplekeeper/internal/common"
	"github.com/dmitrijs2005/peoplekeeper/internal/logging"
	"github.com/dmitrijs2005/peoplekeeper/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func person(id int, first, last, phone, city, balance string) models.Person {
	return models.Person{
		ID: id, FirstName: first, LastName: last, Phone: phone, City: city,
		Balance: decimal.RequireFromString(balance),
	}
}

// decimals compare by value, not by internal representation.
var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func newRepo(t *testing.T, content string) (*FileRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "People.txt")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return NewFileRepository(path, logging.Discard()), path
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   models.Person
		wantOK bool
	}{
		{name: "valid", line: "1|Ana|Ruiz|3001234567|Bogota|100.00",
			want: person(1, "Ana", "Ruiz", "3001234567", "Bogota", "100"), wantOK: true},
		{name: "spaces kept in text fields", line: "2|Luis |Paz|310 987 6543|Santa Marta|50.5",
			want: person(2, "Luis ", "Paz", "310 987 6543", "Santa Marta", "50.50"), wantOK: true},
		{name: "five fields", line: "1|Ana|Ruiz|300|Bogota", wantOK: false},
		{name: "seven fields", line: "1|Ana|Ruiz|300|Bogota|1|x", wantOK: false},
		{name: "bad id", line: "x|Ana|Ruiz|3001234567|Bogota|1", wantOK: false},
		{name: "zero id", line: "0|Ana|Ruiz|3001234567|Bogota|1", wantOK: false},
		{name: "bad balance", line: "1|Ana|Ruiz|3001234567|Bogota|lots", wantOK: false},
		{name: "negative balance", line: "1|Ana|Ruiz|3001234567|Bogota|-1", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.line)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Empty(t, cmp.Diff(tt.want, got, decimalEqual))
			}
		})
	}
}

func TestFormatLine(t *testing.T) {
	tests := []struct {
		in   models.Person
		want string
	}{
		{person(2, "Luis", "Paz", "3109876543", "Bogota", "50.50"), "2|Luis|Paz|3109876543|Bogota|50.50"},
		{person(3, "Eva", "Gil", "3201112222", "Cali", "0"), "3|Eva|Gil|3201112222|Cali|0"},
		{person(4, "Juan", "Diaz", "3151112233", "Pasto", "1.2e3"), "4|Juan|Diaz|3151112233|Pasto|1200"},
	}
	for _, tt := range tests {
		got, err := FormatLine(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestFormatLine_RejectsUnstorableFields(t *testing.T) {
	for _, p := range []models.Person{
		person(1, "Ana", "Ruiz", "300|1234567", "Bogota", "1"),
		person(1, "An|a", "Ruiz", "3001234567", "Bogota", "1"),
		person(1, "Ana", "Ru\niz", "3001234567", "Bogota", "1"),
		person(1, "Ana", "Ruiz", "3001234567", "Bogota\r", "1"),
	} {
		_, err := FormatLine(p)
		assert.ErrorIs(t, err, common.ErrInvalidFormat, "%+v", p)
	}
}

func TestSave_UnstorableFieldWritesNothing(t *testing.T) {
	r, path := newRepo(t, "1|Ana|Ruiz|3001234567|Bogota|100.00\n")

	err := r.Save(context.Background(), []models.Person{
		person(1, "Ana", "Ruiz", "300|1234567", "Bogota", "100.00"),
		person(2, "Luis", "Paz", "3109876543", "Bogota", "50.50"),
	})
	require.ErrorIs(t, err, common.ErrInvalidFormat)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1|Ana|Ruiz|3001234567|Bogota|100.00\n", string(data))
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	r, _ := newRepo(t, "")

	got, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoad_SkipsMalformedAndDuplicateLines(t *testing.T) {
	r, _ := newRepo(t, "1|Ana|Ruiz|3001234567|Bogota|100.00\n"+
		"garbage\n"+
		"1|Dup|Dup|3000000000|Cali|1\n"+
		"3|Eva|Gil|3201112222|Cali|200.00\r\n")

	got, err := r.Load(context.Background())
	require.NoError(t, err)

	want := []models.Person{
		person(1, "Ana", "Ruiz", "3001234567", "Bogota", "100"),
		person(3, "Eva", "Gil", "3201112222", "Cali", "200"),
	}
	assert.Empty(t, cmp.Diff(want, got, decimalEqual))
}

func TestLoad_DirectoryIsIOError(t *testing.T) {
	r := NewFileRepository(t.TempDir(), logging.Discard())

	_, err := r.Load(context.Background())
	require.ErrorIs(t, err, common.ErrIO)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	r, path := newRepo(t, "")
	ctx := context.Background()

	want := []models.Person{
		person(1, "Ana", "Ruiz", "3001234567", "Bogota", "100.00"),
		person(2, "Luis", "Paz", "3109876543", "Bogota", "50.50"),
		person(3, "Eva", "Gil", "3201112222", "Cali", "200.00"),
	}
	require.NoError(t, r.Save(ctx, want))

	fresh := NewFileRepository(path, logging.Discard())
	got, err := fresh.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(want, got, decimalEqual))
	assert.Equal(t, path, fresh.Path())
}

func TestSave_UnwritableLocation(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "Data")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	r := NewFileRepository(filepath.Join(blocker, "People.txt"), logging.Discard())
	err := r.Save(context.Background(), []models.Person{person(1, "A", "B", "1234567", "C", "1")})
	require.ErrorIs(t, err, common.ErrIO)
}
