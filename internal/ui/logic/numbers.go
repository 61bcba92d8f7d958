package logic

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatCount renders n with pt-BR digit grouping, e.g. 1.234
func FormatCount(n int) string {
	return ptBR.Sprintf("%d", n)
}
