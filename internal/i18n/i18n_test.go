package i18n

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTranslations(t *testing.T) {
	t.Run("loads the embedded catalogs", func(t *testing.T) {
		trans, err := NewTranslations("en", "")

		require.NoError(t, err)
		assert.Equal(t, "Manage the configuration", trans.GetMessage("config.usage", 0, nil))
	})

	t.Run("fails with empty language", func(t *testing.T) {
		trans, err := NewTranslations("", "")

		assert.Error(t, err)
		assert.Nil(t, trans)
	})

	t.Run("files in localesDir override the embedded ones", func(t *testing.T) {
		dir := t.TempDir()
		writeLocale(t, dir, "active.es.toml", `
"config.usage" = "Otra descripción"

[HelloWorld]
other = "¡Hola Mundo!"
`)

		trans, err := NewTranslations("es", dir)

		require.NoError(t, err)
		assert.Equal(t, "¡Hola Mundo!", trans.GetMessage("HelloWorld", 0, nil))
		assert.Equal(t, "Otra descripción", trans.GetMessage("config.usage", 0, nil))
	})

	t.Run("invalid locale file", func(t *testing.T) {
		dir := t.TempDir()
		writeLocale(t, dir, "active.en.toml", `not = [valid`)

		_, err := NewTranslations("en", dir)

		assert.Error(t, err)
	})
}

func TestGetMessage(t *testing.T) {
	trans, err := NewTranslations("en", "")
	require.NoError(t, err)

	t.Run("template data", func(t *testing.T) {
		msg := trans.GetMessage("generate.no_staged", 0, map[string]interface{}{"Root": "/repo"})
		assert.Equal(t, "No staged changes found in /repo.", msg)
	})

	t.Run("plural forms", func(t *testing.T) {
		data := map[string]interface{}{"Provider": "openai", "Count": 1}
		assert.Equal(t, "Asking openai about 1 file...", trans.GetMessage("generate.generating", 1, data))

		data["Count"] = 3
		assert.Equal(t, "Asking openai about 3 files...", trans.GetMessage("generate.generating", 3, data))
	})

	t.Run("missing key", func(t *testing.T) {
		assert.Equal(t, "Translation missing: nope.key", trans.GetMessage("nope.key", 0, nil))
	})
}

func TestSetLanguage(t *testing.T) {
	trans, err := NewTranslations("en", "")
	require.NoError(t, err)

	require.NoError(t, trans.SetLanguage("es"))
	assert.Equal(t, "Administra la configuración", trans.GetMessage("config.usage", 0, nil))

	assert.Error(t, trans.SetLanguage("fr"))
	assert.Equal(t, "Administra la configuración", trans.GetMessage("config.usage", 0, nil))
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	en := catalogKeys(t, "locales/active.en.toml")
	es := catalogKeys(t, "locales/active.es.toml")

	assert.Equal(t, en, es)
}

func catalogKeys(t *testing.T, path string) []string {
	t.Helper()
	data, err := embeddedLocales.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, toml.Unmarshal(data, &raw))

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func writeLocale(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}
