package contacts

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Structured(t *testing.T) {
	rec, err := Decode([]byte("\xef\xbb\xbf" + `{"title":"T","items":[{"name":"A","value":true,"url":"https://a.test"}]}`))
	require.NoError(t, err)
	require.Equal(t, KindStructured, rec.Kind)
	require.NotNil(t, rec.Structured)
	assert.Nil(t, rec.Legacy)

	assert.Equal(t, "T", rec.Structured.Title)
	assert.Equal(t, []Item{{Name: "A", Value: "true", URL: "https://a.test"}}, rec.Structured.Items)
}

func TestDecode_TitleNotString(t *testing.T) {
	for _, title := range []string{`{"x":1}`, `42`, `true`, `[]`, `null`} {
		t.Run(title, func(t *testing.T) {
			rec, err := Decode([]byte(`{"title":` + title + `,"items":[{"name":"A","value":"1"}]}`))
			require.NoError(t, err)
			require.Equal(t, KindStructured, rec.Kind)
			assert.Equal(t, "", rec.Structured.Title)
			assert.Equal(t, "<b>Контактная информация</b>\n\n• <b>A:</b> 1", Render(rec, Options{}))
		})
	}
}

func TestDecode_Legacy(t *testing.T) {
	rec, err := Decode([]byte(`{"phone":"123","email":null,"items":null}`))
	require.NoError(t, err)
	require.Equal(t, KindLegacy, rec.Kind)
	require.NotNil(t, rec.Legacy)

	require.NotNil(t, rec.Legacy.Phone)
	assert.Equal(t, "123", *rec.Legacy.Phone)
	assert.Nil(t, rec.Legacy.Email)
	assert.Nil(t, rec.Legacy.Address)
}

func TestDecode_NotObject(t *testing.T) {
	for _, in := range []string{`[]`, `42`, `"x"`, `null`} {
		rec, err := Decode([]byte(in))
		assert.ErrorIs(t, err, ErrNotObject, "input %s", in)
		assert.Equal(t, Empty(), rec)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	rec, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, Empty(), rec)
}

func TestLoad_WrapsDecodeError(t *testing.T) {
	rec, err := Load(writeData(t, `[1]`))
	require.ErrorIs(t, err, ErrNotObject)
	assert.Equal(t, KindStructured, rec.Kind)
}
