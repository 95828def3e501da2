package i18n

import (
	"strings"

	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// buildMessageCatalog registers every leaf under its key path so that
// x/text printers can look messages up by key. Messages x/text cannot
// compile (e.g. an undefined ${macro}) are left out and print as the key.
// Literal '%' is escaped so that Sprintf does not read it as a verb.
func buildMessageCatalog(b *Bundle) *catalog.Builder {
	builder := catalog.NewBuilder()
	for lang, root := range b.trees {
		tag := lang.Tag()
		flat := map[string]string{}
		root.flatten("", flat)
		for key, text := range flat {
			if text == "" {
				continue
			}
			_ = builder.SetString(tag, key, strings.ReplaceAll(text, "%", "%%"))
		}
	}
	return builder
}

// Printer returns an x/text printer for lang backed by the bundle's
// messages. Printer.Sprintf(key) yields the translation, or the key when
// it is not defined for lang.
func (b *Bundle) Printer(lang Language) *message.Printer {
	if b == nil || b.messages == nil {
		return message.NewPrinter(lang.Tag())
	}
	return message.NewPrinter(lang.Tag(), message.Catalog(b.messages))
}
