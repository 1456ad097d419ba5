package golipi

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SchemeStore {
	store, err := OpenSchemeStore(context.Background(), filepath.Join(t.TempDir(), "schemes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSchemeStoreLanguage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golipi")
	defer teardown()

	ctx := context.Background()
	store := openTestStore(t)

	hindi, err := LookupLanguage("hindi")
	require.NoError(t, err)
	require.NoError(t, store.SaveLanguage(ctx, hindi))

	config, err := store.LoadLanguage(ctx, Hindi)
	require.NoError(t, err)
	if diff := cmp.Diff(hindiConfig, config); diff != "" {
		t.Errorf("stored scheme differs (-want +got):\n%s", diff)
	}

	// A loaded scheme converts like the built-in one
	conv, err := NewConverter(config)
	require.NoError(t, err)
	assert.Equal(t, "नमस्ते", conv.Convert("namaste"))

	// Saving again replaces the old copy
	hindi.Config = LanguageConfig{Vowels: "a", Consonants: "k", LetterCodes: map[string]string{"k": "क"}}
	require.NoError(t, store.SaveLanguage(ctx, hindi))
	config, err = store.LoadLanguage(ctx, Hindi)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"k": "क"}, config.LetterCodes)

	_, err = store.LoadLanguage(ctx, Tamil)
	assert.ErrorIs(t, err, ErrSchemeNotFound)
}

func TestSchemeStoreRules(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	require.NoError(t, store.SaveRules(ctx, "krutidev.to_unicode", krutiDevToUnicodeTable))

	table, err := store.LoadRules(ctx, "krutidev.to_unicode")
	require.NoError(t, err)
	if diff := cmp.Diff(krutiDevToUnicodeTable, table); diff != "" {
		t.Errorf("rule order lost (-want +got):\n%s", diff)
	}
	assert.Equal(t, "हिन्दी", KrutiDevToUnicode("fgUnh"))

	_, err = store.LoadRules(ctx, "wingdings.to_unicode")
	assert.ErrorIs(t, err, ErrSchemeNotFound)
}

func TestCompileSchemes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golipi")
	defer teardown()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "schemes.db")

	require.NoError(t, CompileSchemes(ctx, path))
	// Compiling twice overwrites
	require.NoError(t, CompileSchemes(ctx, path))

	store, err := OpenSchemeStore(ctx, path)
	require.NoError(t, err)
	defer store.Close()

	ids, err := store.Languages(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bengali", "gujarati", "hindi", "kannada", "malayalam", "oriya", "punjabi", "tamil", "telugu"}, ids)

	for name, builtin := range RuleTables() {
		table, err := store.LoadRules(ctx, name)
		require.NoError(t, err, name)
		assert.Equal(t, len(builtin), len(table), name)
	}

	config, err := store.LoadLanguage(ctx, Malayalam)
	require.NoError(t, err)
	assert.Equal(t, malayalamConfig, config)
}
