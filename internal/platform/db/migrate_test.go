package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeMigration(t *testing.T, dir, name, sql string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(sql), 0o644))
}

func TestLoadMigrationsSortsByVersion(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "0002_indexes.sql", "CREATE INDEX idx ON sepsis_label (hadm_id);")
	writeMigration(t, dir, "0001_labels.sql", "CREATE TABLE sepsis_label (hadm_id BIGINT);")
	writeMigration(t, dir, "0010_runs.sql", "CREATE TABLE label_run (id UUID);")

	m := NewMigrator(nil, dir)
	migrations, err := m.LoadMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 3)

	require.Equal(t, 1, migrations[0].Version)
	require.Equal(t, "0001_labels.sql", migrations[0].Name)
	require.Equal(t, 2, migrations[1].Version)
	require.Equal(t, 10, migrations[2].Version)
}

func TestLoadMigrationsSkipsNonSQLAndUnversioned(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "0001_labels.sql", "SELECT 1;")
	writeMigration(t, dir, "README.md", "not a migration")
	writeMigration(t, dir, "notes_0001.sql", "SELECT 2;")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0o755))

	m := NewMigrator(nil, dir)
	migrations, err := m.LoadMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 1)
	require.Equal(t, "0001_labels.sql", migrations[0].Name)
}

func TestLoadMigrationsMissingDir(t *testing.T) {
	m := NewMigrator(nil, filepath.Join(t.TempDir(), "absent"))
	_, err := m.LoadMigrations()
	require.Error(t, err)
}
