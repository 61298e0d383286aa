package i18n

import "fmt"

type Texts struct {
	Welcome       string
	MenuHint      string
	ToChannel     string
	ChannelButton string
	ContactsTitle string
	NoContacts    string
	LeavePrompt   string
	SharePhone    string
	Back          string
	ChangeLang    string
	LeftOK        string
	ContactsBtn   string
	BackBtn       string
	LeaveBtn      string
	ImgError      string
	LangPick      string
	NumberInvalid string
	Fallback      string

	PhoneLabel   string
	EmailLabel   string
	AddressLabel string

	// %[1]d number, %[2]s name, %[3]d user id, %[4]s username, %[5]s contact
	LeadTemplate string
}

var texts = map[Lang]Texts{
	RU: {
		Welcome:       "👋 Добро пожаловать!\nНажмите «/start» и получите контакты и помощь по авто 🚘",
		MenuHint:      "Выберите действие ниже 👇",
		ToChannel:     "↩️ Вернитесь в канал по кнопке ниже:",
		ChannelButton: "🔙 Вернуться в канал",
		ContactsTitle: "Контактная информация",
		NoContacts:    "Контакты пока не заполнены.",
		LeavePrompt:   "✍️ Оставьте контакт для связи.\nЛучше всего — нажмите кнопку ниже, чтобы поделиться номером.\nИли пришлите номер текстом.",
		SharePhone:    "📲 Поделиться телефоном",
		Back:          "⬅️ Назад",
		ChangeLang:    "🌐 Сменить язык",
		LeftOK:        "👍 Спасибо! Мы свяжемся с вами.",
		ContactsBtn:   "📞 Контакты",
		BackBtn:       "🔙 Назад в канал",
		LeaveBtn:      "📝 Оставить контакты",
		ImgError:      "⚠️ Ошибка при загрузке изображения",
		LangPick:      "Выберите язык:",
		NumberInvalid: "❗ Введите корректный номер или нажмите кнопку поделиться.",
		Fallback:      "Воспользуйтесь кнопками внизу 👇",
		PhoneLabel:    "Телефон",
		EmailLabel:    "Email",
		AddressLabel:  "Адрес",
		LeadTemplate:  "🆕 Лид #%[1]d из бота\n<b>Пользователь:</b> %[2]s (id %[3]d)\n<b>Юзернейм:</b> @%[4]s\n<b>Контакт:</b> %[5]s",
	},
	KA: {
		Welcome:       "👋 კეთილი იყოს მობრძანება!\nდააჭირეთ «/start» და მიიღეთ კონტაქტები და დახმარება 🚘",
		MenuHint:      "აირჩიეთ ქმედება ქვემოთ 👇",
		ToChannel:     "↩️ არხზე დასაბრუნებლად დააჭირეთ ქვემოთ:",
		ChannelButton: "🔙 არხზე დაბრუნება",
		ContactsTitle: "საკონტაქტო ინფორმაცია",
		NoContacts:    "კონტაქტები ჯერ არ არის შევსებული.",
		LeavePrompt:   "✍️ დატოვეთ საკონტაქტო ნომერი.\nსჯობს დააჭიროთ ქვემოთ ღილაკს, რომ გააზიაროთ ნომერი.",
		SharePhone:    "📲 გაუზიარე ტელეფონი",
		Back:          "⬅️ უკან",
		ChangeLang:    "🌐 ენის შეცვლა",
		LeftOK:        "👍 მადლობა! მალე დაგიკავშირდებით.",
		ContactsBtn:   "📞 კონტაქტები",
		BackBtn:       "🔙 არხზე დაბრუნება",
		LeaveBtn:      "📝 დატოვე კონტაქტი",
		ImgError:      "⚠️ სურათის ჩატვირთვის შეცდომა",
		LangPick:      "აირჩიეთ ენა:",
		NumberInvalid: "❗ შეიყვანეთ სწორი ნომერი ან გაუზიარეთ ტელეფონი.",
		Fallback:      "გამოიყენეთ ქვემოთ მოცემული ღილაკები 👇",
		PhoneLabel:    "ტელეფონი",
		EmailLabel:    "ელფოსტა",
		AddressLabel:  "მისამართი",
		LeadTemplate:  "🆕 ლიდი #%[1]d ბოტიდან\n<b>მომხმარებელი:</b> %[2]s (id %[3]d)\n<b>იუზერნეიმი:</b> @%[4]s\n<b>კონტაქტი:</b> %[5]s",
	},
	UK: {
		Welcome:       "👋 Ласкаво просимо!\nНатисніть кнопку нижче, щоб отримати контактну інформацію 👇",
		MenuHint:      "Оберіть дію нижче 👇",
		ToChannel:     "Натисніть кнопку нижче, щоб повернутися у канал:",
		ChannelButton: "🔙 Повернутися в канал",
		ContactsTitle: "Контактна інформація",
		NoContacts:    "Контакти ще не заповнені.",
		LeavePrompt:   "✍️ Залиште контакт для зв'язку.\nНайкраще — натисніть кнопку нижче, щоб поділитися номером.\nАбо надішліть номер текстом.",
		SharePhone:    "📲 Поділитися телефоном",
		Back:          "⬅️ Назад",
		ChangeLang:    "🌐 Змінити мову",
		LeftOK:        "👍 Дякуємо! Ми зв'яжемося з вами.",
		ContactsBtn:   "📞 Контакти",
		BackBtn:       "🔙 Назад у канал",
		LeaveBtn:      "📝 Залишити контакти",
		ImgError:      "⚠️ Помилка завантаження зображення",
		LangPick:      "Оберіть мову:",
		NumberInvalid: "❗ Введіть коректний номер або натисніть кнопку поділитися.",
		Fallback:      "Скористайтеся кнопками внизу 👇",
		PhoneLabel:    "Телефон",
		EmailLabel:    "Email",
		AddressLabel:  "Адреса",
		LeadTemplate:  "🆕 Лід #%[1]d з бота\n<b>Користувач:</b> %[2]s (id %[3]d)\n<b>Юзернейм:</b> @%[4]s\n<b>Контакт:</b> %[5]s",
	},
}

// T returns the string table for l, falling back to Default.
func T(l Lang) Texts {
	if t, ok := texts[l]; ok {
		return t
	}
	return texts[Default]
}

func (t Texts) Lead(number int64, name string, userID int64, username, contact string) string {
	return fmt.Sprintf(t.LeadTemplate, number, name, userID, username, contact)
}
