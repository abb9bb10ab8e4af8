// Package report persists user-submitted issue reports as JSON files.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Issue is one submitted problem report, including the query context it was
// raised against.
type Issue struct {
	ID        string   `json:"id"`
	Summary   string   `json:"summary"`
	Details   string   `json:"details"`
	Rego      string   `json:"rego"`
	State     string   `json:"state"`
	Suppliers []string `json:"suppliers"`
	Timestamp string   `json:"timestamp"`
}

// Writer saves issue reports into a directory, numbering them sequentially
// per prefix so filenames stay sortable and unique.
type Writer struct {
	dir    string
	prefix string
}

// NewWriter creates an issue report writer for the given directory and
// filename prefix.
func NewWriter(dir, prefix string) *Writer {
	return &Writer{
		dir:    dir,
		prefix: prefix,
	}
}

// Save writes the issue to a new report file and returns its path. Missing
// ID and timestamp fields are filled in.
func (w *Writer) Save(issue Issue) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create issues directory: %w", err)
	}

	if issue.ID == "" {
		issue.ID = uuid.NewString()
	}

	now := time.Now()
	if issue.Timestamp == "" {
		issue.Timestamp = now.Format(time.RFC3339)
	}

	next, err := w.nextNumber()
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s_%s%03d.json", now.Format("2006-01-02_15-04-05"), w.prefix, next)
	path := filepath.Join(w.dir, filename)

	data, err := json.MarshalIndent(issue, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal issue report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write issue report: %w", err)
	}

	return path, nil
}

// nextNumber continues the sequence from the highest existing report number
// for this prefix. Files that do not match the naming scheme are skipped.
func (w *Writer) nextNumber() (int, error) {
	pattern := filepath.Join(w.dir, "*_"+w.prefix+"*.json")

	existing, err := filepath.Glob(pattern)
	if err != nil {
		return 0, fmt.Errorf("failed to scan issues directory: %w", err)
	}

	max := 0

	for _, f := range existing {
		base := filepath.Base(f)

		_, after, found := strings.Cut(base, "_"+w.prefix)
		if !found {
			continue
		}

		numPart, _, _ := strings.Cut(after, ".")

		n, convErr := strconv.Atoi(numPart)
		if convErr != nil {
			continue
		}

		if n > max {
			max = n
		}
	}

	return max + 1, nil
}
