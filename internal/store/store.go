// Package store persists the full set of user profiles as a line-oriented text
// file, one JSON record per line. Loading is lenient: a line that does not
// parse, or parses without an email, is skipped and reported rather than
// failing the whole load.
package store

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bankbook/bankbook/internal/models"
)

func init() {
	// Amounts are stored as bare JSON numbers, matching the record format.
	decimal.MarshalJSONWithoutQuotes = true
}

// scanBufferSize bounds a single record line; accounts with long transaction
// histories exceed bufio.Scanner's default token size.
const scanBufferSize = 4 * 1024 * 1024

// FileStore reads and writes the persisted user records at a fixed path.
// It is a plain codec with no locking; callers serialize access.
type FileStore struct {
	path string
}

// New creates a FileStore backed by the file at path. The file does not need
// to exist yet.
func New(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads every persisted record, applying field defaults and the legacy
// schema migration to each. A missing file yields an empty store. Everything
// the lenient loader skipped, defaulted or migrated is listed in the report.
func (s *FileStore) Load() (models.Store, LoadReport, error) {
	users := make(models.Store)
	var report LoadReport

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return users, report, nil
		}
		return nil, report, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	now := time.Now().Format(models.TimeLayout)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), scanBufferSize)

	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		var rec userRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			report.Skipped = append(report.Skipped, SkippedRecord{Line: line, Reason: err.Error()})
			continue
		}
		if rec.Email == "" {
			report.Skipped = append(report.Skipped, SkippedRecord{Line: line, Reason: "missing email"})
			continue
		}

		if rec.CreatedAt == "" {
			rec.CreatedAt = now
			report.Defaulted = append(report.Defaulted, DefaultedField{Email: rec.Email, Field: "created_at"})
		}
		if len(rec.Accounts) == 0 {
			rec = migrate(rec, now)
			report.Migrated = append(report.Migrated, rec.Email)
		}

		users[rec.Email] = rec.User
	}
	if err := scanner.Err(); err != nil {
		return nil, report, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	return users, report, nil
}

// Save rewrites the whole file, one record per line, emails sorted for
// deterministic output. The records are written to a temporary file and
// renamed into place so a failed write never corrupts the existing file.
func (s *FileStore) Save(users models.Store) error {
	emails := make([]string, 0, len(users))
	for email := range users {
		emails = append(emails, email)
	}
	sort.Strings(emails)

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tmp, err)
	}

	enc := json.NewEncoder(f)
	for _, email := range emails {
		if err := enc.Encode(recordFromUser(users[email])); err != nil {
			f.Close()
			return fmt.Errorf("failed to encode record for %s: %w", email, err)
		}
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}
