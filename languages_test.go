package textbundle_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/textbundle/textbundle"
)

// writeBundle writes one language bundle file into dir.
func writeBundle(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLanguagesResolve(t *testing.T) {
	t.Parallel()

	t.Run("loads a configured language from disk", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeBundle(t, dir, "en.json", `{"greeting": "Hi"}`)

		config, err := textbundle.NewConfig(dir, textbundle.FormatJSON, "en")
		require.NoError(t, err)

		texts, err := textbundle.NewLanguages(config).Resolve("en")
		require.NoError(t, err)
		require.Equal(t, "en", texts.Language())

		greeting, ok := texts.Text("greeting")
		require.True(t, ok)
		require.True(t, greeting.Equal(textbundle.StringValue("Hi")))
	})

	t.Run("fails for unconfigured codes even when the file exists", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeBundle(t, dir, "es.json", `{"greeting": "Hola"}`)

		config, err := textbundle.NewConfig(dir, textbundle.FormatJSON, "en")
		require.NoError(t, err)

		_, err = textbundle.NewLanguages(config).Resolve("es")
		require.ErrorIs(t, err, textbundle.ErrNotConfigured)
	})

	t.Run("fails when the bundle file is missing", func(t *testing.T) {
		t.Parallel()
		config, err := textbundle.NewConfig(t.TempDir(), textbundle.FormatJSON, "en")
		require.NoError(t, err)

		_, err = textbundle.NewLanguages(config).Resolve("en")
		require.ErrorIs(t, err, textbundle.ErrFileNotFound)
	})

	t.Run("fails when the bundle path is not a regular file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "en.json"), 0o755))

		config, err := textbundle.NewConfig(dir, textbundle.FormatJSON, "en")
		require.NoError(t, err)

		_, err = textbundle.NewLanguages(config).Resolve("en")
		require.ErrorIs(t, err, textbundle.ErrNotAFile)
	})

	t.Run("fails on out-of-model source values", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeBundle(t, dir, "en.json", `{"count": 5}`)

		config, err := textbundle.NewConfig(dir, textbundle.FormatJSON, "en")
		require.NoError(t, err)

		_, err = textbundle.NewLanguages(config).Resolve("en")
		require.ErrorIs(t, err, textbundle.ErrParse)
	})

	t.Run("fails when the root is not an object", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeBundle(t, dir, "en.json", `["Hi"]`)

		config, err := textbundle.NewConfig(dir, textbundle.FormatJSON, "en")
		require.NoError(t, err)

		_, err = textbundle.NewLanguages(config).Resolve("en")
		require.ErrorIs(t, err, textbundle.ErrNotAnObject)
	})

	t.Run("serves repeated requests from the cache without file reads", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeBundle(t, dir, "en.json", `{"greeting": "Hi"}`)

		config, err := textbundle.NewConfig(dir, textbundle.FormatJSON, "en")
		require.NoError(t, err)
		languages := textbundle.NewLanguages(config)

		first, err := languages.Resolve("en")
		require.NoError(t, err)

		// Removing the file proves the second resolve never touches disk.
		require.NoError(t, os.Remove(filepath.Join(dir, "en.json")))

		second, err := languages.Resolve("en")
		require.NoError(t, err)
		require.Equal(t, first.Language(), second.Language())

		a, ok := first.Text("greeting")
		require.True(t, ok)
		b, ok := second.Text("greeting")
		require.True(t, ok)
		require.True(t, a.Equal(b))
	})

	t.Run("resolves TOML bundles by extension", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeBundle(t, dir, "en.toml", "greeting = \"Hi\"\n")

		config, err := textbundle.NewConfig(dir, textbundle.FormatTOML, "en")
		require.NoError(t, err)

		texts, err := textbundle.NewLanguages(config).Resolve("en")
		require.NoError(t, err)

		greeting, ok := texts.Text("greeting")
		require.True(t, ok)
		require.True(t, greeting.Equal(textbundle.StringValue("Hi")))
	})
}

func TestLanguagesResolveText(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeBundle(t, dir, "en.json", `{"greeting": "Hi", "nums": ["1", "2"]}`)

	config, err := textbundle.NewConfig(dir, textbundle.FormatJSON, "en")
	require.NoError(t, err)
	languages := textbundle.NewLanguages(config)

	t.Run("returns the value for a present key", func(t *testing.T) {
		value, ok, err := languages.ResolveText("en", "greeting")
		require.NoError(t, err)
		require.True(t, ok)
		require.True(t, value.Equal(textbundle.StringValue("Hi")))
	})

	t.Run("missing keys are absent not errors", func(t *testing.T) {
		_, ok, err := languages.ResolveText("en", "missing")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("propagates resolve failures", func(t *testing.T) {
		_, _, err := languages.ResolveText("fr", "greeting")
		require.ErrorIs(t, err, textbundle.ErrNotConfigured)
	})
}

func TestLanguagesCached(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeBundle(t, dir, "en.json", `{"greeting": "Hi"}`)
	writeBundle(t, dir, "es.json", `{"greeting": "Hola"}`)

	config, err := textbundle.NewConfig(dir, textbundle.FormatJSON, "en", "es")
	require.NoError(t, err)
	languages := textbundle.NewLanguages(config)

	require.Empty(t, languages.Cached())

	_, err = languages.Resolve("es")
	require.NoError(t, err)
	_, err = languages.Resolve("en")
	require.NoError(t, err)

	require.Equal(t, []string{"es", "en"}, languages.Cached())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("eagerly loads every configured language", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeBundle(t, dir, "en.json", `{"greeting": "Hi", "nums": ["1", "2"]}`)
		writeBundle(t, dir, "es.json", `{"greeting": "Hola"}`)

		config, err := textbundle.NewConfig(dir, textbundle.FormatJSON, "en", "es")
		require.NoError(t, err)

		languages, err := textbundle.Load(config)
		require.NoError(t, err)
		require.Equal(t, []string{"en", "es"}, languages.Cached())

		greeting, ok, err := languages.ResolveText("en", "greeting")
		require.NoError(t, err)
		require.True(t, ok)
		require.True(t, greeting.Equal(textbundle.StringValue("Hi")))

		nums, ok, err := languages.ResolveText("en", "nums")
		require.NoError(t, err)
		require.True(t, ok)
		require.True(t, nums.Equal(textbundle.ArrayValue(
			textbundle.StringValue("1"),
			textbundle.StringValue("2"),
		)))

		_, ok, err = languages.ResolveText("en", "missing")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("fails fast on the first broken language", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeBundle(t, dir, "en.json", `{"greeting": "Hi"}`)
		// es.json is deliberately absent.

		config, err := textbundle.NewConfig(dir, textbundle.FormatJSON, "en", "es")
		require.NoError(t, err)

		languages, err := textbundle.Load(config)
		require.ErrorIs(t, err, textbundle.ErrFileNotFound)
		require.Nil(t, languages)
	})

	t.Run("fails fast on a parse failure", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeBundle(t, dir, "en.json", `{"greeting": "Hi"}`)
		writeBundle(t, dir, "es.json", `{"count": 5}`)

		config, err := textbundle.NewConfig(dir, textbundle.FormatJSON, "en", "es")
		require.NoError(t, err)

		_, err = textbundle.Load(config)
		require.ErrorIs(t, err, textbundle.ErrParse)
	})
}
