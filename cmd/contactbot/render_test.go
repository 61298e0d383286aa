package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactbot/internal/i18n"
)

func runRender(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRenderCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRender_Structured(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"title":"Office","items":[{"name":"Site","url":"https://x.ge"}]}`), 0o644))

	out, _, err := runRender(t, path)
	require.NoError(t, err)
	assert.Equal(t, "<b>Office</b>\n\n• <b>Site:</b> <a href='https://x.ge'>https://x.ge</a>\n", out)

	out, _, err = runRender(t, "--plain", path)
	require.NoError(t, err)
	assert.Equal(t, "Office\n\n• Site: https://x.ge\n", out)
}

func TestRender_LegacyLocalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"phone":"+995 555"}`), 0o644))

	out, _, err := runRender(t, "--lang", "uk", path)
	require.NoError(t, err)
	assert.Contains(t, out, "☎️ <b>Телефон:</b> +995 555")
	assert.Contains(t, out, "📍 <b>Адреса:</b> —")
}

func TestRender_MissingFileWarns(t *testing.T) {
	out, errOut, err := runRender(t, "--lang", "ru", filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Contains(t, errOut, "warning:")
	assert.Equal(t, i18n.T(i18n.RU).NoContacts+"\n", out)
}

func TestRender_UnknownLang(t *testing.T) {
	_, _, err := runRender(t, "--lang", "xx", "data.json")
	assert.Error(t, err)
}
