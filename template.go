package i18n

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// Template is a parsed message: literal text interleaved with
// placeholders of the form {path | formatter:arg | ...}.
type Template []segment

type segment struct {
	text string
	ph   *placeholder
}

type placeholder struct {
	path  string
	calls []formatterCall
}

type formatterCall struct {
	name string
	arg  string
}

var (
	templateCache = map[string]Template{}
	templateMu    sync.RWMutex
)

// RenderTemplate fills the placeholders of tpl from args. Parsed templates
// are cached by their source text.
func RenderTemplate(lang Language, tpl string, args map[string]any) (string, error) {
	templateMu.RLock()
	t, ok := templateCache[tpl]
	templateMu.RUnlock()
	if !ok {
		t = ParseTemplate(tpl)
		templateMu.Lock()
		templateCache[tpl] = t
		templateMu.Unlock()
	}
	return t.Execute(lang, args)
}

// Execute renders t for lang.
func (t Template) Execute(lang Language, args map[string]any) (string, error) {
	var sb strings.Builder
	for _, seg := range t {
		if seg.ph == nil {
			sb.WriteString(seg.text)
			continue
		}
		s, err := seg.ph.render(lang, args)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

func (p *placeholder) render(lang Language, args map[string]any) (string, error) {
	value, ok := valueAt(args, p.path)
	if !ok {
		return "", fmt.Errorf("value not found: %s", p.path)
	}
	var err error
	for _, call := range p.calls {
		if value, err = applyFormatter(lang, value, call.name, call.arg); err != nil {
			return "", err
		}
	}
	return fmt.Sprint(value), nil
}

// ParseTemplate splits tpl into text and placeholders. Parsing is lenient:
// an unclosed '{' or a malformed placeholder is kept as literal text.
// Use ValidateTemplate for strict checking.
func ParseTemplate(tpl string) Template {
	var (
		out Template
		buf strings.Builder
	)
	flush := func() {
		if buf.Len() > 0 {
			out = append(out, segment{text: buf.String()})
			buf.Reset()
		}
	}

	rest := tpl
	for rest != "" {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			buf.WriteString(rest)
			break
		}
		buf.WriteString(rest[:open])
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			buf.WriteString(rest[open:])
			break
		}
		raw := rest[open+1 : open+end]
		rest = rest[open+end+1:]

		ph, err := parsePlaceholder(raw)
		if err != nil {
			buf.WriteString("{" + raw + "}")
			continue
		}
		flush()
		out = append(out, segment{ph: ph})
	}
	flush()
	return out
}

func parsePlaceholder(expr string) (*placeholder, error) {
	if strings.ContainsRune(expr, '{') {
		return nil, errors.New("nested '{' in placeholder")
	}
	parts := strings.Split(expr, "|")
	ph := &placeholder{path: strings.TrimSpace(parts[0])}
	if ph.path == "" {
		return nil, errors.New("empty placeholder path")
	}
	for _, part := range parts[1:] {
		seg := strings.TrimSpace(part)
		if seg == "" {
			return nil, errors.New("empty formatter segment")
		}
		name, arg, _ := strings.Cut(seg, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("empty formatter name in %q", seg)
		}
		ph.calls = append(ph.calls, formatterCall{name: name, arg: strings.TrimSpace(arg)})
	}
	return ph, nil
}

// valueAt resolves a dotted path through maps and struct fields. Struct
// fields match case-insensitively.
func valueAt(args map[string]any, path string) (any, bool) {
	var current any = args
	for _, seg := range strings.Split(path, ".") {
		switch c := current.(type) {
		case map[string]any:
			v, ok := c[seg]
			if !ok {
				return nil, false
			}
			current = v
		case map[string]string:
			v, ok := c[seg]
			if !ok {
				return nil, false
			}
			current = v
		default:
			r := reflect.ValueOf(c)
			if r.Kind() == reflect.Pointer {
				if r.IsNil() {
					return nil, false
				}
				r = r.Elem()
			}
			if r.Kind() != reflect.Struct {
				return nil, false
			}
			f := r.FieldByNameFunc(func(name string) bool {
				return strings.EqualFold(name, seg)
			})
			if !f.IsValid() || !f.CanInterface() {
				return nil, false
			}
			current = f.Interface()
		}
	}
	return current, true
}

// ValidateTemplate checks tpl strictly: braces must balance, every
// placeholder must parse, and every formatter must be registered with a
// well-formed argument.
func ValidateTemplate(tpl string) error {
	depth, opened := 0, -1
	for i, r := range []rune(tpl) {
		switch r {
		case '{':
			if depth > 0 {
				return fmt.Errorf("nested '{' at position %d", i)
			}
			depth, opened = 1, i
		case '}':
			if depth == 0 {
				return fmt.Errorf("extra closing '}' at position %d", i)
			}
			depth = 0
		}
	}
	if depth != 0 {
		return fmt.Errorf("unclosed placeholder starting at position %d", opened)
	}

	rest := tpl
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			return nil
		}
		end := strings.IndexByte(rest[open:], '}')
		raw := rest[open+1 : open+end]
		rest = rest[open+end+1:]

		ph, err := parsePlaceholder(raw)
		if err != nil {
			return fmt.Errorf("placeholder {%s}: %w", raw, err)
		}
		for _, call := range ph.calls {
			if _, ok := lookupFormatter(call.name); !ok {
				return fmt.Errorf("unknown formatter: %s", call.name)
			}
			if call.name == "number" && call.arg != "" {
				if n, err := strconv.Atoi(call.arg); err != nil || n < 0 {
					return fmt.Errorf("invalid precision for number formatter: %q", call.arg)
				}
			}
		}
	}
}
