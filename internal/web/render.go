package web

import (
	"embed"
	"html/template"
	"io/fs"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

func parseTemplates(currency string) (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"money": moneyFormatter(currency),
	}).ParseFS(templateFS, "templates/*.tmpl")
}

func staticFiles() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// moneyFormatter renders amounts with grouped thousands and at most two decimals.
func moneyFormatter(currency string) func(decimal.Decimal) string {
	p := message.NewPrinter(language.English)
	return func(d decimal.Decimal) string {
		s := p.Sprintf("%v", number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(2)))
		if currency == "" {
			return s
		}
		return s + " " + currency
	}
}
