package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rehman-travels/visabot/server/internal/agent/kgraph"
	errx "github.com/rehman-travels/visabot/server/internal/core/error"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "visa.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeCSV(t, "Passport,Destination,Requirement\nPAK,SGP,30\nPAK,GBR,visa required\n")

	rows, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []kgraph.Row{
		{Passport: "PAK", Destination: "SGP", Requirement: "30"},
		{Passport: "PAK", Destination: "GBR", Requirement: "visa required"},
	}, rows)
}

func TestLoadColumnOrderIndependent(t *testing.T) {
	path := writeCSV(t, "Requirement,Passport,Destination\nvisa on arrival,PAK,ARE\n")

	rows, err := Load(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, kgraph.Row{Passport: "PAK", Destination: "ARE", Requirement: "visa on arrival"}, rows[0])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)

	var appErr *errx.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errx.DatasetErrorMessage, appErr.Message)
}

func TestLoadMissingColumn(t *testing.T) {
	path := writeCSV(t, "Passport,Destination\nPAK,SGP\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required columns")
}
