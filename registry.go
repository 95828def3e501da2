package i18n

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/currency"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	formatters = map[string]FormatterFunc{}
	formatMu   sync.RWMutex
)

// FormatterFunc transforms a placeholder value. arg is the text after the
// colon in {value | name:arg}, possibly empty.
type FormatterFunc func(lang Language, v any, arg string) (any, error)

// RegisterFormatter adds or replaces a named formatter.
func RegisterFormatter(name string, f FormatterFunc) {
	formatMu.Lock()
	defer formatMu.Unlock()
	formatters[name] = f
}

func lookupFormatter(name string) (FormatterFunc, bool) {
	formatMu.RLock()
	defer formatMu.RUnlock()
	f, ok := formatters[name]
	return f, ok
}

func applyFormatter(lang Language, v any, name, arg string) (any, error) {
	f, ok := lookupFormatter(name)
	if !ok {
		return nil, fmt.Errorf("unknown formatter: %s", name)
	}
	return f(lang, v, arg)
}

func init() {
	RegisterFormatter("upper", func(lang Language, v any, _ string) (any, error) {
		return cases.Upper(lang.Tag()).String(fmt.Sprint(v)), nil
	})
	RegisterFormatter("lower", func(lang Language, v any, _ string) (any, error) {
		return cases.Lower(lang.Tag()).String(fmt.Sprint(v)), nil
	})
	RegisterFormatter("title", func(lang Language, v any, _ string) (any, error) {
		return cases.Title(lang.Tag()).String(fmt.Sprint(v)), nil
	})
	RegisterFormatter("number", formatNumber)
	RegisterFormatter("currency", formatCurrency)
	RegisterFormatter("date", formatDate)
}

// formatNumber groups digits the way lang does; arg is the number of
// fraction digits.
func formatNumber(lang Language, v any, arg string) (any, error) {
	f, err := toFloat(v)
	if err != nil {
		return nil, fmt.Errorf("number formatter: %w", err)
	}
	scale := 0
	if arg != "" {
		if scale, err = strconv.Atoi(arg); err != nil || scale < 0 {
			return nil, fmt.Errorf("number formatter: invalid precision %q", arg)
		}
	}
	p := message.NewPrinter(lang.Tag())
	return p.Sprint(number.Decimal(f, number.Scale(scale))), nil
}

// formatCurrency formats v in the ISO 4217 currency named by arg (USD when
// empty) with lang's symbol, grouping and the currency's fraction digits,
// e.g. "₹ 1,200.00". Any other arg is a literal symbol prefixed to the
// amount with two fraction digits.
func formatCurrency(lang Language, v any, arg string) (any, error) {
	symbol := strings.TrimSpace(arg)
	if s, ok := v.(string); ok && symbol != "" {
		v = strings.TrimPrefix(strings.TrimSpace(s), symbol)
	}
	f, err := toFloat(v)
	if err != nil {
		return nil, fmt.Errorf("currency formatter: %w", err)
	}
	p := message.NewPrinter(lang.Tag())
	if symbol == "" {
		symbol = "USD"
	}
	unit, err := currency.ParseISO(symbol)
	if err != nil {
		return symbol + p.Sprint(number.Decimal(f, number.Scale(2))), nil
	}
	return p.Sprint(currency.Symbol(unit.Amount(f))), nil
}

func formatDate(_ Language, v any, layout string) (any, error) {
	if layout == "" {
		layout = time.DateOnly
	}
	switch t := v.(type) {
	case time.Time:
		return t.Format(layout), nil
	case *time.Time:
		if t == nil {
			return nil, fmt.Errorf("date formatter: nil time")
		}
		return t.Format(layout), nil
	case string:
		parsed, err := time.Parse(time.RFC3339, t)
		if err != nil {
			return nil, fmt.Errorf("date formatter: %w", err)
		}
		return parsed.Format(layout), nil
	default:
		return nil, fmt.Errorf("date formatter: not a time: %T", v)
	}
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	case string:
		f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(n), ",", ""), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q", n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("numeric value required, got %T", v)
	}
}
