package i18n

import (
	"context"

	"github.com/PauloHFS/goth-paginator/internal/contextkeys"
)

const DefaultLocale = "pt"

// Translation holds the labels the pagination fragment needs. Previous and
// Next may carry inline markup such as "&laquo;".
type Translation struct {
	Previous string `yaml:"previous"`
	Next     string `yaml:"next"`
	Page     string `yaml:"page"`
	Showing  string `yaml:"showing"`
}

var ptBR = Translation{
	Previous: "&laquo; Anterior",
	Next:     "Próxima &raquo;",
	Page:     "Página",
	Showing:  "Mostrando %d a %d de %d",
}

var enUS = Translation{
	Previous: "&laquo; Previous",
	Next:     "Next &raquo;",
	Page:     "Page",
	Showing:  "Showing %d to %d of %d",
}

// Locale retorna o idioma do contexto ou o padrão.
func Locale(ctx context.Context) string {
	if locale, ok := ctx.Value(contextkeys.LocaleKey).(string); ok && locale != "" {
		return locale
	}
	return DefaultLocale
}

// Get retorna as traduções embutidas baseadas no idioma do contexto
func Get(ctx context.Context) Translation {
	return builtin(Locale(ctx))
}

func builtin(locale string) Translation {
	switch locale {
	case "en":
		return enUS
	default:
		return ptBR
	}
}
