package contacts

import (
	"html"
	"strings"
)

const (
	DefaultTitle = "Контактная информация"
	Placeholder  = "—"
)

// EmptyValuePolicy decides how an item with a name but no value and no url
// is shown.
type EmptyValuePolicy int

const (
	EmptyDash  EmptyValuePolicy = iota // "• Name: —"
	EmptyBlank                         // "• Name: "
)

type LegacyLabels struct {
	Phone   string
	Email   string
	Address string
}

var DefaultLegacyLabels = LegacyLabels{
	Phone:   "Телефон",
	Email:   "Email",
	Address: "Адрес",
}

// Options carries everything locale-dependent. The zero value renders the
// Russian defaults. NoContacts replaces a structured record that has nothing
// but its title; unset, it is the bare "—" the bot sent before localization.
type Options struct {
	DefaultTitle   string
	NoContacts     string
	Empty          EmptyValuePolicy
	AutoLinkPhones bool
	LegacyLabels   LegacyLabels
}

func (o Options) withDefaults() Options {
	if o.DefaultTitle == "" {
		o.DefaultTitle = DefaultTitle
	}
	if o.NoContacts == "" {
		o.NoContacts = Placeholder
	}
	if o.LegacyLabels.Phone == "" {
		o.LegacyLabels.Phone = DefaultLegacyLabels.Phone
	}
	if o.LegacyLabels.Email == "" {
		o.LegacyLabels.Email = DefaultLegacyLabels.Email
	}
	if o.LegacyLabels.Address == "" {
		o.LegacyLabels.Address = DefaultLegacyLabels.Address
	}
	return o
}

// RenderFile loads the record at path and renders it. It never fails: a
// missing or broken file renders like an empty record.
func RenderFile(path string, opts Options) string {
	rec, _ := Load(path)
	return Render(rec, opts)
}

// Render formats rec as Telegram HTML.
func Render(rec Record, opts Options) string {
	opts = opts.withDefaults()
	if rec.Kind == KindLegacy {
		var l Legacy
		if rec.Legacy != nil {
			l = *rec.Legacy
		}
		return renderLegacy(l, opts)
	}
	var s Structured
	if rec.Structured != nil {
		s = *rec.Structured
	}
	return renderStructured(s, opts)
}

func renderStructured(s Structured, opts Options) string {
	title := s.Title
	if title == "" {
		title = opts.DefaultTitle
	}

	lines := make([]string, 0, len(s.Items)+2)
	lines = append(lines, "<b>"+escapeText(title)+"</b>", "")

	for _, it := range s.Items {
		name := strings.TrimSpace(it.Name)
		value := strings.TrimSpace(it.Value)
		link := strings.TrimSpace(it.URL)
		if name == "" && value == "" && link == "" {
			continue
		}

		label := "• <b>" + escapeText(name) + ":</b> "
		switch {
		case link != "":
			text := value
			if text == "" {
				text = link
			}
			lines = append(lines, label+anchor(link, text))
		case value != "" && opts.AutoLinkPhones && isPhoneLabel(name):
			lines = append(lines, label+anchor("tel:"+dialable(value), value))
		case value != "":
			lines = append(lines, label+escapeText(value))
		case opts.Empty == EmptyBlank:
			lines = append(lines, label)
		default:
			lines = append(lines, label+Placeholder)
		}
	}

	if len(lines) == 2 {
		return opts.NoContacts
	}
	return strings.Join(lines, "\n")
}

func renderLegacy(l Legacy, opts Options) string {
	field := func(p *string) string {
		if p == nil {
			return Placeholder
		}
		return escapeText(*p)
	}
	return "☎️ <b>" + escapeText(opts.LegacyLabels.Phone) + ":</b> " + field(l.Phone) + "\n" +
		"✉️ <b>" + escapeText(opts.LegacyLabels.Email) + ":</b> " + field(l.Email) + "\n" +
		"📍 <b>" + escapeText(opts.LegacyLabels.Address) + ":</b> " + field(l.Address)
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Telegram HTML only requires these three to be escaped in text.
func escapeText(s string) string { return textEscaper.Replace(s) }

func anchor(href, text string) string {
	return "<a href='" + html.EscapeString(href) + "'>" + escapeText(text) + "</a>"
}

var phoneLabelPrefixes = []string{"тел", "tel", "phone", "ტელ"}

func isPhoneLabel(name string) bool {
	n := strings.ToLower(name)
	for _, p := range phoneLabelPrefixes {
		if strings.HasPrefix(n, p) {
			return true
		}
	}
	return false
}

// dialable keeps the characters a tel: URI needs.
func dialable(v string) string {
	var b strings.Builder
	for _, r := range v {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return v
	}
	return b.String()
}
