package golipi

/**
 * golipi - Indian language script and legacy font converters
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

import (
	"context"
	sql "database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	// sqlite
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var embedFS embed.FS

// ErrSchemeNotFound is returned when a store has no such language or
// rule table
var ErrSchemeNotFound = errors.New("scheme not found")

// SchemeStore is a SQLite file holding compiled language schemes and
// glyph rule tables. The converters never read it.
type SchemeStore struct {
	db *sql.DB
}

// OpenSchemeStore opens (or creates) a scheme store and brings its schema
// up to date
func OpenSchemeStore(ctx context.Context, path string) (*SchemeStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening scheme store %s: %w", path, err)
	}

	// An in-memory database only lives as long as its connection
	db.SetMaxOpenConns(1)

	migrationsFS, err := fs.Sub(embedFS, "migrations")
	if err != nil {
		db.Close()
		return nil, err
	}

	mg, err := initMigrate(ctx, db, migrationsFS)
	if err != nil {
		db.Close()
		return nil, err
	}

	if _, err := mg.run(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &SchemeStore{db}, nil
}

// Close closes the database
func (store *SchemeStore) Close() error {
	return store.db.Close()
}

// SaveLanguage writes a language with its letter codes, replacing any
// earlier copy
func (store *SchemeStore) SaveLanguage(ctx context.Context, lang LanguageDetails) error {
	tx, err := store.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM letter_codes WHERE language_id = ?", string(lang.ID)); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		"INSERT OR REPLACE INTO languages (id, name, native_name, tag, placeholder, vowels, consonants) VALUES (?, ?, ?, ?, ?, ?, ?)",
		string(lang.ID), lang.Name, lang.NativeName, lang.Tag.String(), lang.Placeholder, lang.Config.Vowels, lang.Config.Consonants,
	)
	if err != nil {
		return fmt.Errorf("saving language %s: %w", lang.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO letter_codes (language_id, token, value) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	// Sorted so that the file is the same on every run
	tokens := make([]string, 0, len(lang.Config.LetterCodes))
	for token := range lang.Config.LetterCodes {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	for _, token := range tokens {
		if _, err := stmt.ExecContext(ctx, string(lang.ID), token, lang.Config.LetterCodes[token]); err != nil {
			tracer().Errorf("letter code %q of %s rejected: %s", token, lang.ID, err)
			return fmt.Errorf("saving letter code %q: %w", token, err)
		}
	}

	return tx.Commit()
}

// LoadLanguage reads back the phonetic scheme of a language
func (store *SchemeStore) LoadLanguage(ctx context.Context, id Language) (LanguageConfig, error) {
	var config LanguageConfig

	err := store.db.QueryRowContext(ctx, "SELECT vowels, consonants FROM languages WHERE id = ?", string(id)).Scan(&config.Vowels, &config.Consonants)
	if err == sql.ErrNoRows {
		return config, fmt.Errorf("%w: %s", ErrSchemeNotFound, id)
	} else if err != nil {
		return config, err
	}

	rows, err := store.db.QueryContext(ctx, "SELECT token, value FROM letter_codes WHERE language_id = ?", string(id))
	if err != nil {
		return config, err
	}
	defer rows.Close()

	config.LetterCodes = make(map[string]string)
	for rows.Next() {
		var token, value string
		if err := rows.Scan(&token, &value); err != nil {
			return config, err
		}
		config.LetterCodes[token] = value
	}

	return config, rows.Err()
}

// Languages lists the identifiers of the stored languages
func (store *SchemeStore) Languages(ctx context.Context) ([]string, error) {
	rows, err := store.db.QueryContext(ctx, "SELECT id FROM languages ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// SaveRules writes a rule table, keeping its order
func (store *SchemeStore) SaveRules(ctx context.Context, name string, table RuleTable) error {
	tx, err := store.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM rules WHERE rule_table = ?", name); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO rules (rule_table, position, pattern, replacement) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for position, rule := range table {
		if _, err := stmt.ExecContext(ctx, name, position, rule.Match, rule.Replacement); err != nil {
			return fmt.Errorf("saving rule %d of %s: %w", position, name, err)
		}
	}

	return tx.Commit()
}

// LoadRules reads a rule table back in its original order
func (store *SchemeStore) LoadRules(ctx context.Context, name string) (RuleTable, error) {
	rows, err := store.db.QueryContext(ctx, "SELECT pattern, replacement FROM rules WHERE rule_table = ? ORDER BY position", name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var table RuleTable
	for rows.Next() {
		var rule Rule
		if err := rows.Scan(&rule.Match, &rule.Replacement); err != nil {
			return nil, err
		}
		table = append(table, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if table == nil {
		return nil, fmt.Errorf("%w: %s", ErrSchemeNotFound, name)
	}
	return table, nil
}

// RuleTables returns the built-in glyph rule tables by name
func RuleTables() map[string]RuleTable {
	return map[string]RuleTable{
		"krutidev.to_unicode":   krutiDevToUnicodeTable,
		"krutidev.from_unicode": unicodeToKrutiDevTable,
		"chanakya.to_unicode":   chanakyaToUnicodeTable,
		"chanakya.from_unicode": unicodeToChanakyaTable,
		"preeti.to_unicode":     preetiToUnicodeTable,
		"preeti.from_unicode":   unicodeToPreetiTable,
	}
}

// CompileSchemes writes every built-in language and rule table to a
// scheme store at path
func CompileSchemes(ctx context.Context, path string) error {
	store, err := OpenSchemeStore(ctx, path)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, lang := range Languages() {
		if missing := lang.Config.Validate(); len(missing) > 0 {
			tracer().Infof("%s: no letter codes for %v", lang.ID, missing)
		}

		if err := store.SaveLanguage(ctx, lang); err != nil {
			return err
		}
		tracer().Infof("compiled %s (%d letter codes)", lang.ID, len(lang.Config.LetterCodes))
	}

	tables := RuleTables()
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := store.SaveRules(ctx, name, tables[name]); err != nil {
			return err
		}
		tracer().Infof("compiled %s (%d rules)", name, len(tables[name]))
	}

	return nil
}
