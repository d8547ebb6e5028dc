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
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/jetsetilly/cardslot/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationTable = "schema_migrations"

const (
	migrateUp   = "-- +migrate Up"
	migrateDown = "-- +migrate Down"
)

// applyMigrations executes every migration file at most once. The name of
// applied migrations is recorded in the migration table.
func applyMigrations(ctx context.Context, db *sql.DB) error {
	entries, err := fs.ReadDir(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	_, err = db.ExecContext(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
)`, migrationTable))
	if err != nil {
		return fmt.Errorf("migration table: %w", err)
	}

	for _, f := range files {
		var found int
		err := db.QueryRowContext(ctx, "SELECT 1 FROM "+migrationTable+" WHERE name = ?", f).Scan(&found)
		if err == nil {
			continue // for loop
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("check migration %s: %w", f, err)
		}

		content, err := fs.ReadFile(migrations, path.Join("migrations", f))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", f, err)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin migration %s: %w", f, err)
		}

		if up := upMigration(string(content)); strings.TrimSpace(up) != "" {
			if _, err := tx.ExecContext(ctx, up); err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("migration %s: %w", f, err)
			}
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO "+migrationTable+" (name, applied_at) VALUES (?, ?)",
			f, time.Now().UTC().UnixMilli())
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %s: %w", f, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", f, err)
		}

		logger.Logf(logger.Allow, "selections", "applied migration %s", f)
	}

	return nil
}

// upMigration returns the part of the migration between the up and down
// markers. If there is no up marker then the entire content is returned.
func upMigration(content string) string {
	i := strings.Index(content, migrateUp)
	if i == -1 {
		return content
	}
	content = content[i+len(migrateUp):]
	if j := strings.Index(content, migrateDown); j != -1 {
		content = content[:j]
	}
	return content
}
