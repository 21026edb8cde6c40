package cvdraft

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDraftFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cv.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadFile(t *testing.T) {
	path := writeDraftFile(t, `
personalInfo:
  name: Ada Lovelace
  email: ada@example.com
  title: Engineer
summary: First programmer
skills:
  - Go
  - SQL
experiences:
  - company: ACME
    position: Engineer
    startDate: "2020-01"
projects:
  - name: cb-cli
`)

	draft, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", draft.PersonalInfo.Name)
	assert.Equal(t, "First programmer", draft.Summary)
	assert.Equal(t, []string{"Go", "SQL"}, draft.Skills)
	require.Len(t, draft.Experiences, 1)
	assert.Equal(t, "ACME", draft.Experiences[0].Company)
}

func TestLoadFileNormalizesMissingLists(t *testing.T) {
	path := writeDraftFile(t, `
personalInfo:
  name: Ada
skills: [Go]
projects:
  - name: cb-cli
`)

	draft, err := LoadFile(path)
	require.NoError(t, err)

	assert.NotNil(t, draft.Hobbies)
	assert.NotNil(t, draft.Education)
	assert.NotNil(t, draft.Languages)
	require.Len(t, draft.Projects, 1)
	assert.NotNil(t, draft.Projects[0].Technologies, "per-project tags are normalized too")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFileMalformed(t *testing.T) {
	path := writeDraftFile(t, "personalInfo: [notamap")

	_, err := LoadFile(path)
	assert.Error(t, err)
}
