// This file is part of cardslot.
//
// cardslot is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cardslot is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cardslot.  If not, see <https://www.gnu.org/licenses/>.

package selections

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"time"

	"github.com/jetsetilly/cardslot/curated"
	"github.com/jetsetilly/cardslot/logger"

	// registers the "sqlite" driver with database/sql
	_ "modernc.org/sqlite"
)

// Sentinel errors returned by the selections package.
const (
	NoPath     = "selections: no database path"
	OpenError  = "selections: %s: %v"
	NoMachine  = "selections: machine name is required"
	NoSlot     = "selections: %s: slot name is required"
	StoreError = "selections: %s: %v"
)

// Store is the database of selections.
type Store struct {
	db *sql.DB
}

// Open the selections database at path, creating it if necessary.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, curated.Errorf(NoPath)
	}

	path = filepath.Clean(path)
	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, curated.Errorf(OpenError, path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, curated.Errorf(OpenError, path, err)
	}
	if err := applyMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, curated.Errorf(OpenError, path, err)
	}

	logger.Logf(logger.Allow, "selections", "opened %s", path)

	return &Store{db: db}, nil
}

// Close the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func check(machine string, slot string) error {
	if strings.TrimSpace(machine) == "" {
		return curated.Errorf(NoMachine)
	}
	if strings.TrimSpace(slot) == "" {
		return curated.Errorf(NoSlot, machine)
	}
	return nil
}

// Put records the option chosen for the slot of the machine. Any earlier
// selection for the slot is replaced.
func (s *Store) Put(ctx context.Context, machine string, slot string, option string) error {
	if err := check(machine, slot); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO selections (machine, slot, option, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (machine, slot) DO UPDATE SET option = excluded.option, updated_at = excluded.updated_at`,
		machine, slot, option, time.Now().UTC().UnixMilli())
	if err != nil {
		return curated.Errorf(StoreError, machine, err)
	}

	logger.Logf(logger.Allow, "selections", "%s:%s = %q", machine, slot, option)

	return nil
}

// Get returns the option chosen for the slot of the machine. The bool return
// value is false if there is no selection for the slot.
func (s *Store) Get(ctx context.Context, machine string, slot string) (string, bool, error) {
	if err := check(machine, slot); err != nil {
		return "", false, err
	}

	var option string
	err := s.db.QueryRowContext(ctx,
		"SELECT option FROM selections WHERE machine = ? AND slot = ?",
		machine, slot).Scan(&option)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, curated.Errorf(StoreError, machine, err)
	}

	return option, true, nil
}

// Choices returns every selection for the machine as a map of slot names to
// option names. The map is suitable for the machine.Resolve() function.
func (s *Store) Choices(ctx context.Context, machine string) (map[string]string, error) {
	if strings.TrimSpace(machine) == "" {
		return nil, curated.Errorf(NoMachine)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT slot, option FROM selections WHERE machine = ?", machine)
	if err != nil {
		return nil, curated.Errorf(StoreError, machine, err)
	}
	defer rows.Close()

	choices := make(map[string]string)
	for rows.Next() {
		var slot, option string
		if err := rows.Scan(&slot, &option); err != nil {
			return nil, curated.Errorf(StoreError, machine, err)
		}
		choices[slot] = option
	}
	if err := rows.Err(); err != nil {
		return nil, curated.Errorf(StoreError, machine, err)
	}

	return choices, nil
}

// Delete the selection for the slot of the machine. It is not an error for
// there to be no selection.
func (s *Store) Delete(ctx context.Context, machine string, slot string) error {
	if err := check(machine, slot); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		"DELETE FROM selections WHERE machine = ? AND slot = ?", machine, slot)
	if err != nil {
		return curated.Errorf(StoreError, machine, err)
	}

	return nil
}

// DeleteMachine removes every selection for the machine.
func (s *Store) DeleteMachine(ctx context.Context, machine string) error {
	if strings.TrimSpace(machine) == "" {
		return curated.Errorf(NoMachine)
	}

	_, err := s.db.ExecContext(ctx, "DELETE FROM selections WHERE machine = ?", machine)
	if err != nil {
		return curated.Errorf(StoreError, machine, err)
	}

	logger.Logf(logger.Allow, "selections", "%s: cleared", machine)

	return nil
}

// Machines returns the names of all machines with at least one selection, in
// alphabetical order.
func (s *Store) Machines(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT machine FROM selections ORDER BY machine")
	if err != nil {
		return nil, curated.Errorf(StoreError, "machines", err)
	}
	defer rows.Close()

	var machines []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, curated.Errorf(StoreError, "machines", err)
		}
		machines = append(machines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, curated.Errorf(StoreError, "machines", err)
	}

	return machines, nil
}
