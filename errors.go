package i18n

import "errors"

// Catalog errors.
var (
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrUnknownTheme        = errors.New("unknown theme")
	ErrInvalidCatalog      = errors.New("invalid catalog")
	ErrShapeMismatch       = errors.New("catalog key sets differ between languages")
)
