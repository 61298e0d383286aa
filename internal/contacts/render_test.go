package contacts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeData(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestRenderFile_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want string
	}{
		{
			name: "plain_value",
			data: `{"title": "Contacts", "items": [{"name":"Phone","value":"555","url":null}]}`,
			want: "<b>Contacts</b>\n\n• <b>Phone:</b> 555",
		},
		{
			name: "link_falls_back_to_url",
			data: `{"title": "Contacts", "items": [{"name":"Site","value":"","url":"https://x.test"}]}`,
			want: "<b>Contacts</b>\n\n• <b>Site:</b> <a href='https://x.test'>https://x.test</a>",
		},
		{
			name: "link_with_value",
			data: `{"title": "Contacts", "items": [{"name":"Instagram","value":"@shop","url":"https://instagram.com/shop"}]}`,
			want: "<b>Contacts</b>\n\n• <b>Instagram:</b> <a href='https://instagram.com/shop'>@shop</a>",
		},
		{
			name: "no_items",
			data: `{"items": []}`,
			want: Placeholder,
		},
		{
			name: "legacy_with_missing_address",
			data: `{"phone": "123", "email": "a@b.com"}`,
			want: "☎️ <b>Телефон:</b> 123\n✉️ <b>Email:</b> a@b.com\n📍 <b>Адрес:</b> —",
		},
		{
			name: "items_not_a_list_is_legacy",
			data: `{"items": "nope", "address": "Tbilisi"}`,
			want: "☎️ <b>Телефон:</b> —\n✉️ <b>Email:</b> —\n📍 <b>Адрес:</b> Tbilisi",
		},
		{
			name: "default_title",
			data: `{"items": [{"name":"Email","value":"a@b.com"}]}`,
			want: "<b>Контактная информация</b>\n\n• <b>Email:</b> a@b.com",
		},
		{
			name: "empty_items_skipped",
			data: `{"title": "T", "items": [{"name":"  ","value":" "}, {}, {"name":"A","value":"1"}]}`,
			want: "<b>T</b>\n\n• <b>A:</b> 1",
		},
		{
			name: "name_only_gets_dash",
			data: `{"title": "T", "items": [{"name":"Fax"}]}`,
			want: "<b>T</b>\n\n• <b>Fax:</b> —",
		},
		{
			name: "values_are_trimmed",
			data: `{"title": "T", "items": [{"name":" Phone ","value":"  555 ","url":"   "}]}`,
			want: "<b>T</b>\n\n• <b>Phone:</b> 555",
		},
		{
			name: "numbers_are_stringified",
			data: `{"title": "T", "items": [{"name":"Office","value":42}]}`,
			want: "<b>T</b>\n\n• <b>Office:</b> 42",
		},
		{
			name: "non_object_items_ignored",
			data: `{"title": "T", "items": ["x", 1, null]}`,
			want: Placeholder,
		},
		{
			name: "markup_is_escaped",
			data: `{"title": "R&D <team>", "items": [{"name":"A<b>","value":"x & y"}]}`,
			want: "<b>R&amp;D &lt;team&gt;</b>\n\n• <b>A&lt;b&gt;:</b> x &amp; y",
		},
		{
			name: "href_quote_escaped",
			data: `{"title": "T", "items": [{"name":"Site","value":"x","url":"https://x.test/?q='1'"}]}`,
			want: "<b>T</b>\n\n• <b>Site:</b> <a href='https://x.test/?q=&#39;1&#39;'>x</a>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := RenderFile(writeData(t, tt.data), Options{})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderFile_MissingFileMatchesEmptyRecord(t *testing.T) {
	t.Parallel()

	missing := RenderFile(filepath.Join(t.TempDir(), "nope.json"), Options{})
	empty := RenderFile(writeData(t, `{"title": null, "items": []}`), Options{})

	assert.Equal(t, empty, missing)
	assert.Equal(t, Placeholder, missing)
}

func TestRenderFile_BrokenFilesDegrade(t *testing.T) {
	t.Parallel()

	for _, data := range []string{`{not json`, `[1, 2]`, `"text"`, `null`, ``} {
		got := RenderFile(writeData(t, data), Options{NoContacts: "nothing yet"})
		assert.Equal(t, "nothing yet", got, "data %q", data)
	}
}

func TestRenderFile_Idempotent(t *testing.T) {
	t.Parallel()

	p := writeData(t, `{"title": "T", "items": [{"name":"A","value":"1","url":"https://a.test"},{"name":"B"}]}`)
	before, err := os.ReadFile(p)
	require.NoError(t, err)

	first := RenderFile(p, Options{})
	second := RenderFile(p, Options{})
	assert.Equal(t, first, second)

	after, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRenderFile_PicksUpEdits(t *testing.T) {
	t.Parallel()

	p := writeData(t, `{"title": "Old", "items": [{"name":"A","value":"1"}]}`)
	require.True(t, strings.HasPrefix(RenderFile(p, Options{}), "<b>Old</b>\n\n"))

	require.NoError(t, os.WriteFile(p, []byte(`{"title": "New", "items": [{"name":"A","value":"1"}]}`), 0o644))
	assert.True(t, strings.HasPrefix(RenderFile(p, Options{}), "<b>New</b>\n\n"))
}

func TestRender_Options(t *testing.T) {
	t.Parallel()

	rec := Record{Kind: KindStructured, Structured: &Structured{Items: []Item{
		{Name: "Телефон", Value: "+995 555 12-34"},
		{Name: "Viber"},
	}}}

	t.Run("defaults", func(t *testing.T) {
		got := Render(rec, Options{DefaultTitle: "საკონტაქტო ინფორმაცია"})
		assert.Equal(t, "<b>საკონტაქტო ინფორმაცია</b>\n\n• <b>Телефон:</b> +995 555 12-34\n• <b>Viber:</b> —", got)
	})

	t.Run("blank_and_autolink", func(t *testing.T) {
		got := Render(rec, Options{Empty: EmptyBlank, AutoLinkPhones: true})
		assert.Equal(t, "<b>Контактная информация</b>\n\n• <b>Телефон:</b> <a href='tel:+9955551234'>+995 555 12-34</a>\n• <b>Viber:</b> ", got)
	})

	t.Run("autolink_ignores_other_labels", func(t *testing.T) {
		r := Record{Kind: KindStructured, Structured: &Structured{Items: []Item{{Name: "Email", Value: "a@b.com"}}}}
		got := Render(r, Options{AutoLinkPhones: true})
		assert.NotContains(t, got, "tel:")
	})

	t.Run("legacy_labels", func(t *testing.T) {
		got := Render(Record{Kind: KindLegacy}, Options{LegacyLabels: LegacyLabels{Phone: "Phone", Address: "Address"}})
		assert.Equal(t, "☎️ <b>Phone:</b> —\n✉️ <b>Email:</b> —\n📍 <b>Address:</b> —", got)
	})
}

func TestRender_DoesNotMutate(t *testing.T) {
	t.Parallel()

	rec := Record{Kind: KindStructured, Structured: &Structured{Title: "T", Items: []Item{
		{Name: " A ", Value: " 1 ", URL: " https://a.test "},
	}}}
	_ = Render(rec, Options{})

	assert.Equal(t, " A ", rec.Structured.Items[0].Name)
	assert.Equal(t, " https://a.test ", rec.Structured.Items[0].URL)
}

func TestRender_EveryLinkShowsValueOrURL(t *testing.T) {
	t.Parallel()

	items := []Item{
		{Name: "a", Value: "shown", URL: "https://a.test"},
		{Name: "b", URL: "https://b.test"},
		{Name: "", Value: "", URL: "https://c.test"},
	}
	got := Render(Record{Kind: KindStructured, Structured: &Structured{Title: "T", Items: items}}, Options{})
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 5)

	assert.Equal(t, "• <b>a:</b> <a href='https://a.test'>shown</a>", lines[2])
	assert.Equal(t, "• <b>b:</b> <a href='https://b.test'>https://b.test</a>", lines[3])
	assert.Equal(t, "• <b>:</b> <a href='https://c.test'>https://c.test</a>", lines[4])
}
