package golipi

/**
 * golipi - Indian language script and legacy font converters
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

import (
	"context"
	sql "database/sql"
	"fmt"
	"io/fs"
	"strings"
)

type migrate struct {
	db *sql.DB
	fs fs.FS
}

type migrationStatus struct {
	lastRun       string
	lastMigration string
}

// migrationName strips the extension, "001_init.sql" is "001_init"
func migrationName(fileName string) string {
	return strings.Split(fileName, ".")[0]
}

func initMigrate(ctx context.Context, db *sql.DB, fsys fs.FS) (*migrate, error) {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS migrations (
			id INTEGER PRIMARY KEY,
			name VARCHAR(200)
		);
	`)
	if err != nil {
		return nil, fmt.Errorf("creating migrations table: %w", err)
	}

	return &migrate{db, fsys}, nil
}

func (mg *migrate) status(ctx context.Context) (*migrationStatus, error) {
	lastRun := ""
	err := mg.db.QueryRowContext(ctx, "SELECT name FROM migrations ORDER BY id DESC LIMIT 1").Scan(&lastRun)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}

	files, err := fs.ReadDir(mg.fs, ".")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return &migrationStatus{lastRun, lastRun}, nil
	}

	lastMigration := migrationName(files[len(files)-1].Name())

	return &migrationStatus{lastRun, lastMigration}, nil
}

// run applies the migrations newer than the last applied one and returns
// how many ran
func (mg *migrate) run(ctx context.Context) (int, error) {
	status, err := mg.status(ctx)
	if err != nil {
		return 0, err
	}

	if status.lastRun == status.lastMigration {
		return 0, nil
	}

	return mg.runMigrations(ctx, status)
}

func (mg *migrate) runMigrations(ctx context.Context, status *migrationStatus) (int, error) {
	files, err := fs.ReadDir(mg.fs, ".")
	if err != nil {
		return 0, err
	}

	ranMigrations := 0

	// lastRun is empty if no migrations have been run
	foundLastRun := status.lastRun == ""

	for _, file := range files {
		name := migrationName(file.Name())

		if !foundLastRun {
			foundLastRun = status.lastRun == name
			continue
		}

		contents, err := fs.ReadFile(mg.fs, file.Name())
		if err != nil {
			return ranMigrations, err
		}

		if err := mg.apply(ctx, name, string(contents)); err != nil {
			return ranMigrations, fmt.Errorf("migration %s: %w", name, err)
		}

		tracer().Infof("applied migration %s", name)
		ranMigrations++
	}

	return ranMigrations, nil
}

func (mg *migrate) apply(ctx context.Context, name string, query string) error {
	tx, err := mg.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, query); err != nil {
		tx.Rollback()
		return err
	}

	if _, err := tx.ExecContext(ctx, "INSERT INTO migrations (name) VALUES(?)", name); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
