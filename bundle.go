package i18n

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/message/catalog"
)

// KeySeparator separates the segments of a key path.
const KeySeparator = "."

// Node is one entry of a locale tree: a leaf holding text, or a branch
// holding named children.
type Node struct {
	text     string
	children map[string]*Node
}

// IsLeaf reports whether n holds text rather than children.
func (n *Node) IsLeaf() bool {
	return n.children == nil
}

// Text returns the leaf text, or "" for a branch.
func (n *Node) Text() string {
	return n.text
}

// Child returns the named child of a branch.
func (n *Node) Child(name string) (*Node, bool) {
	if n == nil || n.children == nil {
		return nil, false
	}
	child, ok := n.children[name]
	return child, ok
}

// Config controls how a Bundle is built.
type Config struct {
	// DefaultLanguage must be present in the catalog. Defaults to English.
	DefaultLanguage Language

	// AllowPartial skips the checks that every supported language is
	// present and that all languages share the same key paths. Lookups
	// still degrade to the key for anything missing.
	AllowPartial bool
}

// Bundle is an immutable locale catalog holding one tree per language.
// It is safe for concurrent use.
type Bundle struct {
	config   Config
	trees    map[Language]*Node
	keys     map[Language][]string
	messages *catalog.Builder
}

// NewFromMessages builds a Bundle from nested message trees as decoded
// from YAML, TOML or JSON. Values must be strings or nested maps.
func NewFromMessages(cfg Config, messages map[Language]map[string]any) (*Bundle, error) {
	trees := make(map[Language]*Node, len(messages))
	for lang, raw := range messages {
		if !lang.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
		}
		root, err := buildTree(raw, "")
		if err != nil {
			return nil, fmt.Errorf("language %s: %w", lang, err)
		}
		trees[lang] = root
	}
	return newBundle(cfg, trees)
}

// NewFromFlat builds a Bundle from dotted key paths, e.g.
// {"en": {"nav.overview": "Overview"}}.
func NewFromFlat(cfg Config, messages map[Language]map[string]string) (*Bundle, error) {
	trees := make(map[Language]*Node, len(messages))
	for lang, flat := range messages {
		if !lang.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
		}
		root := &Node{children: map[string]*Node{}}
		keys := make([]string, 0, len(flat))
		for key := range flat {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if err := root.insert(key, flat[key]); err != nil {
				return nil, fmt.Errorf("language %s: %w", lang, err)
			}
		}
		trees[lang] = root
	}
	return newBundle(cfg, trees)
}

func newBundle(cfg Config, trees map[Language]*Node) (*Bundle, error) {
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = DefaultLanguage
	}
	if !cfg.DefaultLanguage.Valid() {
		return nil, fmt.Errorf("%w: default %q", ErrUnsupportedLanguage, cfg.DefaultLanguage)
	}
	if _, ok := trees[cfg.DefaultLanguage]; !ok {
		return nil, fmt.Errorf("%w: default language %s is not defined", ErrInvalidCatalog, cfg.DefaultLanguage)
	}

	b := &Bundle{
		config: cfg,
		trees:  trees,
		keys:   make(map[Language][]string, len(trees)),
	}
	for lang, root := range trees {
		b.keys[lang] = root.leafKeys()
	}

	if !cfg.AllowPartial {
		if err := b.validateShape(); err != nil {
			return nil, err
		}
	}

	b.messages = buildMessageCatalog(b)
	return b, nil
}

func (b *Bundle) validateShape() error {
	var problems []string
	for _, lang := range supported {
		if _, ok := b.trees[lang]; !ok {
			problems = append(problems, fmt.Sprintf("%s: language not defined", lang))
		}
	}
	diff := b.Diff()
	for _, lang := range supported {
		if missing := diff[lang]; len(missing) > 0 {
			problems = append(problems, fmt.Sprintf("%s: missing %s", lang, strings.Join(missing, ", ")))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrShapeMismatch, strings.Join(problems, "; "))
	}
	return nil
}

// Config returns the configuration the bundle was built with.
func (b *Bundle) Config() Config {
	return b.config
}

// Resolve returns the text at key for lang. When lang is not in the
// catalog, a segment is missing, the path ends on a branch, or the text is
// empty, the key itself is returned.
func (b *Bundle) Resolve(lang Language, key string) string {
	text, _ := b.Lookup(lang, key)
	return text
}

// Lookup is Resolve that also reports whether the key resolved.
func (b *Bundle) Lookup(lang Language, key string) (string, bool) {
	if b == nil || key == "" {
		return key, false
	}
	node, ok := b.trees[lang]
	if !ok {
		return key, false
	}
	for _, seg := range strings.Split(key, KeySeparator) {
		if node, ok = node.Child(seg); !ok {
			return key, false
		}
	}
	if !node.IsLeaf() || node.text == "" {
		return key, false
	}
	return node.text, true
}

// Languages returns the languages present in the bundle, in switcher order.
func (b *Bundle) Languages() []Language {
	if b == nil {
		return nil
	}
	out := make([]Language, 0, len(b.trees))
	for _, lang := range supported {
		if _, ok := b.trees[lang]; ok {
			out = append(out, lang)
		}
	}
	return out
}

// HasLanguage reports whether lang has a tree in the bundle.
func (b *Bundle) HasLanguage(lang Language) bool {
	if b == nil {
		return false
	}
	_, ok := b.trees[lang]
	return ok
}

// Keys returns the sorted leaf key paths defined for lang.
func (b *Bundle) Keys(lang Language) []string {
	if b == nil {
		return nil
	}
	keys := b.keys[lang]
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// Flatten returns lang's leaves keyed by their dotted path.
func (b *Bundle) Flatten(lang Language) map[string]string {
	out := map[string]string{}
	if b == nil {
		return out
	}
	if root, ok := b.trees[lang]; ok {
		root.flatten("", out)
	}
	return out
}

// Tree returns a copy of lang's tree as nested maps, ready for JSON
// encoding. It returns an empty map for languages not in the bundle.
func (b *Bundle) Tree(lang Language) map[string]any {
	if b == nil {
		return map[string]any{}
	}
	root, ok := b.trees[lang]
	if !ok {
		return map[string]any{}
	}
	return root.toMap()
}

// Diff reports, per language, the key paths defined by some other language
// but missing from it. Languages without missing keys are omitted.
func (b *Bundle) Diff() map[Language][]string {
	if b == nil {
		return map[Language][]string{}
	}
	union := map[string]struct{}{}
	for _, keys := range b.keys {
		for _, key := range keys {
			union[key] = struct{}{}
		}
	}
	out := map[Language][]string{}
	for lang, keys := range b.keys {
		have := make(map[string]struct{}, len(keys))
		for _, key := range keys {
			have[key] = struct{}{}
		}
		var missing []string
		for key := range union {
			if _, ok := have[key]; !ok {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			out[lang] = missing
		}
	}
	return out
}

func buildTree(raw map[string]any, prefix string) (*Node, error) {
	node := &Node{children: make(map[string]*Node, len(raw))}
	for name, value := range raw {
		path := joinKey(prefix, name)
		if err := checkSegment(name, path); err != nil {
			return nil, err
		}
		child, err := buildNode(value, path)
		if err != nil {
			return nil, err
		}
		node.children[name] = child
	}
	return node, nil
}

func buildNode(value any, path string) (*Node, error) {
	switch v := value.(type) {
	case string:
		return &Node{text: v}, nil
	case map[string]any:
		return buildTree(v, path)
	case map[any]any:
		converted := make(map[string]any, len(v))
		for k, inner := range v {
			name, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s: non-string key %v", ErrInvalidCatalog, path, k)
			}
			converted[name] = inner
		}
		return buildTree(converted, path)
	default:
		return nil, fmt.Errorf("%w: %s: value must be a string or a table, got %T", ErrInvalidCatalog, path, value)
	}
}

func (n *Node) insert(key, text string) error {
	segs := strings.Split(key, KeySeparator)
	node := n
	for i, seg := range segs {
		path := strings.Join(segs[:i+1], KeySeparator)
		if err := checkSegment(seg, path); err != nil {
			return err
		}
		if node.IsLeaf() {
			return fmt.Errorf("%w: %s: %s is already a message", ErrInvalidCatalog, key, strings.Join(segs[:i], KeySeparator))
		}
		child, ok := node.children[seg]
		last := i == len(segs)-1
		switch {
		case !ok && last:
			node.children[seg] = &Node{text: text}
			return nil
		case !ok:
			child = &Node{children: map[string]*Node{}}
			node.children[seg] = child
		case last:
			return fmt.Errorf("%w: %s is defined twice", ErrInvalidCatalog, key)
		}
		node = child
	}
	return nil
}

func (n *Node) leafKeys() []string {
	flat := map[string]string{}
	n.flatten("", flat)
	keys := make([]string, 0, len(flat))
	for key := range flat {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (n *Node) flatten(prefix string, out map[string]string) {
	if n.IsLeaf() {
		out[prefix] = n.text
		return
	}
	for name, child := range n.children {
		child.flatten(joinKey(prefix, name), out)
	}
}

func (n *Node) toMap() map[string]any {
	out := make(map[string]any, len(n.children))
	for name, child := range n.children {
		if child.IsLeaf() {
			out[name] = child.text
		} else {
			out[name] = child.toMap()
		}
	}
	return out
}

func checkSegment(name, path string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: %q: blank key segment", ErrInvalidCatalog, path)
	}
	if strings.Contains(name, KeySeparator) {
		return fmt.Errorf("%w: %q: key segment %q contains %q", ErrInvalidCatalog, path, name, KeySeparator)
	}
	return nil
}

func joinKey(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + KeySeparator + name
}
