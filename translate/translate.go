// Package translate formats user visible messages for the detected locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// Fallback is the locale used when none can be detected.
const Fallback = "en-US"

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("aoc2019: locale: %v", err)
	}

	printer = newPrinter(locales...)
}

// newPrinter returns a printer for the best match among locales.
func newPrinter(locales ...string) *message.Printer {
	if len(locales) == 0 {
		locales = []string{Fallback}
	}

	return message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
