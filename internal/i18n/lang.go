package i18n

import "strings"

type Lang string

const (
	RU Lang = "ru"
	KA Lang = "ka"
	UK Lang = "uk"
)

const Default = RU

// Supported is also the order of the language picker.
var Supported = []Lang{RU, KA, UK}

func ParseLang(s string) (Lang, bool) {
	switch Lang(strings.ToLower(strings.TrimSpace(s))) {
	case RU:
		return RU, true
	case KA:
		return KA, true
	case UK, "ua":
		return UK, true
	default:
		return "", false
	}
}

// Title is what the language picker shows.
func (l Lang) Title() string {
	switch l {
	case RU:
		return "🇷🇺 Русский"
	case KA:
		return "🇬🇪 ქართული"
	case UK:
		return "🇺🇦 Українська"
	default:
		return string(l)
	}
}

// Button is a reply-keyboard intent, independent of the label language.
type Button int

const (
	ButtonNone Button = iota
	ButtonContacts
	ButtonBackToChannel
	ButtonLeaveContacts
	ButtonChangeLang
	ButtonBack
)

var buttons = func() map[string]Button {
	m := map[string]Button{}
	for _, l := range Supported {
		t := T(l)
		m[normalize(t.ContactsBtn)] = ButtonContacts
		m[normalize(t.BackBtn)] = ButtonBackToChannel
		m[normalize(t.LeaveBtn)] = ButtonLeaveContacts
		m[normalize(t.ChangeLang)] = ButtonChangeLang
		m[normalize(t.Back)] = ButtonBack
	}
	// labels from older keyboards still sitting on users' screens
	m[normalize("↩️ Назад в канал")] = ButtonBackToChannel
	m[normalize("📞 Контакти")] = ButtonContacts
	return m
}()

// MatchButton recognises a keyboard label from any language.
func MatchButton(text string) Button {
	return buttons[normalize(text)]
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
