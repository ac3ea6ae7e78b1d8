package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// MigrationsDir resolves the schema directory, preferring MIGRATIONS_DIR so
// container images can relocate it.
func MigrationsDir() string {
	if dir := strings.TrimSpace(os.Getenv("MIGRATIONS_DIR")); dir != "" {
		return dir
	}
	return "migrations"
}

// EnsureSchemaCurrent refuses to start against a database whose schema version
// is dirty or behind the newest migration file. Startup must fail loudly here
// rather than let imports fail halfway through a batch.
func EnsureSchemaCurrent(dbURL, migrationsDir string) error {
	latest, err := latestMigrationVersion(migrationsDir)
	if err != nil {
		return err
	}
	if latest == 0 {
		return fmt.Errorf("no migration files found in %s", migrationsDir)
	}

	abs, err := filepath.Abs(migrationsDir)
	if err != nil {
		return fmt.Errorf("resolve migrations dir: %w", err)
	}

	m, err := migrate.New("file://"+filepath.ToSlash(abs), dbURL)
	if err != nil {
		return fmt.Errorf("open migrator: %w", err)
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("database has no applied migrations, expected version %d: run the migration command first", latest)
	}
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return fmt.Errorf("schema version %d is dirty: resolve it with the migration force command", version)
	}
	if uint64(version) < latest {
		return fmt.Errorf("schema version %d is behind latest migration %d: run the migration command first", version, latest)
	}

	return nil
}

func latestMigrationVersion(dir string) (uint64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read migrations dir %s: %w", dir, err)
	}

	var latest uint64
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".up.sql") {
			continue
		}
		idx := strings.Index(name, "_")
		if idx <= 0 {
			continue
		}
		version, err := strconv.ParseUint(name[:idx], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid migration file name %q: %w", name, err)
		}
		if version > latest {
			latest = version
		}
	}

	return latest, nil
}
