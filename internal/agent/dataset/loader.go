// Package dataset reads the passport-index CSV that feeds the knowledge
// graph. This is the only file I/O on the startup path; the graph itself
// never touches disk.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/rehman-travels/visabot/server/internal/agent/kgraph"
	errx "github.com/rehman-travels/visabot/server/internal/core/error"
	logx "github.com/rehman-travels/visabot/server/pkg/logger"
)

// Load reads rows of (passport, destination, requirement) from a CSV file.
// Columns are located by header name so column order in the source file does
// not matter.
func Load(path string) ([]kgraph.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errx.New(err, http.StatusInternalServerError, errx.DatasetErrorMessage)
	}
	defer f.Close()

	rows, err := parse(f)
	if err != nil {
		return nil, errx.New(err, http.StatusInternalServerError, errx.DatasetErrorMessage)
	}

	logx.Info().Str("path", path).Int("rows", len(rows)).Msg("visa dataset loaded")
	return rows, nil
}

func parse(r io.Reader) ([]kgraph.Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	passportCol, destinationCol, requirementCol := -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "passport":
			passportCol = i
		case "destination":
			destinationCol = i
		case "requirement":
			requirementCol = i
		}
	}
	if passportCol < 0 || destinationCol < 0 || requirementCol < 0 {
		return nil, fmt.Errorf("missing required columns, got header %v", header)
	}

	var rows []kgraph.Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+2, err)
		}
		rows = append(rows, kgraph.Row{
			Passport:    record[passportCol],
			Destination: record[destinationCol],
			Requirement: record[requirementCol],
		})
	}
	return rows, nil
}
