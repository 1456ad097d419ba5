package golipi

import (
	"context"
	sql "database/sql"
	"embed"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/migrations/*.sql
var testdataFS embed.FS

func TestMigration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golipi")
	defer teardown()

	ctx := context.Background()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	testdataDirFS, err := fs.Sub(testdataFS, "testdata/migrations")
	require.NoError(t, err)

	mg, err := initMigrate(ctx, db, testdataDirFS)
	require.NoError(t, err)

	_, err = db.Exec("SELECT * FROM notes")
	assert.Error(t, err)

	ranMigrations, err := mg.run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, ranMigrations)

	_, err = db.Exec("INSERT INTO notes (body, tag) VALUES ('a', 'b')")
	assert.NoError(t, err)

	// Nothing left to run
	ranMigrations, err = mg.run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, ranMigrations)
}

func TestMigrationFailureRollsBack(t *testing.T) {
	ctx := context.Background()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	mg, err := initMigrate(ctx, db, brokenMigrations)
	require.NoError(t, err)

	_, err = mg.run(ctx)
	assert.Error(t, err)

	var count int
	require.NoError(t, db.QueryRow("SELECT count(*) FROM migrations").Scan(&count))
	assert.Equal(t, 0, count)
}

var brokenMigrations = fstest.MapFS{
	"001_broken.sql": &fstest.MapFile{Data: []byte("CREATE TABLE half (id INTEGER); INSERT INTO missing VALUES (1);")},
}

func TestSchemaMigrations(t *testing.T) {
	ctx := context.Background()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	migrationsFS, err := fs.Sub(embedFS, "migrations")
	require.NoError(t, err)

	dirFiles, err := fs.ReadDir(migrationsFS, ".")
	require.NoError(t, err)

	mg, err := initMigrate(ctx, db, migrationsFS)
	require.NoError(t, err)

	ranMigrations, err := mg.run(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(dirFiles), ranMigrations)

	for _, table := range []string{"languages", "letter_codes", "rules"} {
		_, err = db.Exec("SELECT * FROM " + table)
		assert.NoError(t, err, table)
	}
}
