package contacts

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainText strips the markup Render produces. Links keep their visible
// text, followed by the target in brackets when the two differ.
func PlainText(htmlText string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return htmlText
	}

	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		text := a.Text()
		href, ok := a.Attr("href")
		href = strings.TrimSpace(href)
		if !ok || href == "" || href == text || strings.HasPrefix(href, "tel:") {
			return
		}
		a.SetText(text + " (" + href + ")")
	})

	return doc.Text()
}
