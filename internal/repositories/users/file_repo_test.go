package users

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/peoplekeeper/internal/common"
	"github.com/dmitrijs2005/peoplekeeper/internal/logging"
	"github.com/dmitrijs2005/peoplekeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T, content string) (*FileRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Users.txt")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return NewFileRepository(path, logging.Discard()), path
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   models.User
		wantOK bool
	}{
		{name: "active", line: "jzuluaga,P@ssw0rd123!,true", want: models.User{Username: "jzuluaga", Password: "P@ssw0rd123!", Active: true}, wantOK: true},
		{name: "inactive", line: "mbedoya,S0yS3gur02025*,false", want: models.User{Username: "mbedoya", Password: "S0yS3gur02025*"}, wantOK: true},
		{name: "capitalised flag", line: "a,b,True", want: models.User{Username: "a", Password: "b", Active: true}, wantOK: true},
		{name: "two fields", line: "a,b", wantOK: false},
		{name: "four fields", line: "a,b,c,true", wantOK: false},
		{name: "bad flag", line: "a,b,yes please", wantOK: false},
		{name: "numeric flag", line: "a,b,1", wantOK: false},
		{name: "empty", line: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.line)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFormatLine(t *testing.T) {
	assert.Equal(t, "ana,secret,true", FormatLine(models.User{Username: "ana", Password: "secret", Active: true}))
	assert.Equal(t, "ana,secret,false", FormatLine(models.User{Username: "ana", Password: "secret"}))
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	r, _ := newRepo(t, "")

	got, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoad_SkipsMalformedLines(t *testing.T) {
	r, _ := newRepo(t, "jzuluaga,P@ssw0rd123!,true\nbroken line\n\nmbedoya,S0yS3gur02025*,false\n")

	got, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.User{
		{Username: "jzuluaga", Password: "P@ssw0rd123!", Active: true},
		{Username: "mbedoya", Password: "S0yS3gur02025*", Active: false},
	}, got)
}

func TestLoad_SkipsDuplicateUsernames(t *testing.T) {
	r, _ := newRepo(t, "ana,x,true\nana,y,true\nAna,z,false\n")

	got, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.User{
		{Username: "ana", Password: "x", Active: true},
		{Username: "Ana", Password: "z", Active: false},
	}, got, "first entry wins; usernames are case-sensitive")
}

func TestLoad_DirectoryIsIOError(t *testing.T) {
	r := NewFileRepository(t.TempDir(), logging.Discard())

	_, err := r.Load(context.Background())
	require.ErrorIs(t, err, common.ErrIO)
}

func TestSave_RewritesWholeFile(t *testing.T) {
	r, path := newRepo(t, "old,old,true\nstale,stale,true\n")
	ctx := context.Background()

	users := []models.User{
		{Username: "jzuluaga", Password: "P@ssw0rd123!", Active: false},
		{Username: "mbedoya", Password: "S0yS3gur02025*", Active: true},
	}
	require.NoError(t, r.Save(ctx, users))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "jzuluaga,P@ssw0rd123!,false\nmbedoya,S0yS3gur02025*,true\n", string(data))

	back, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, users, back)
}
