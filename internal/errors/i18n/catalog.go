// Package i18n provides internationalization support for error messages.
package i18n

import (
	"bytes"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/text/language"
)

// Code is a machine-readable error code (duplicated from the errors package
// to avoid an import cycle).
type Code = string

// BaseLocale is the canonical source locale for catalogs.
const BaseLocale = "en-US"

// Catalog maps error codes to message templates for a specific locale.
type Catalog struct {
	locale   string
	messages map[Code]string
}

var (
	catalogsMu sync.RWMutex
	catalogs   = map[string]*Catalog{}

	matcherMu sync.RWMutex
	matcher   language.Matcher
	tags      []language.Tag
	locales   []string
)

// GetCatalog returns the catalog for the given locale. Locale resolution
// uses BCP 47 matching, so "ja-JP" resolves to the "ja" catalog. Falls back
// to en-US when no registered locale matches.
func GetCatalog(locale string) *Catalog {
	requested := strings.TrimSpace(locale)
	if requested == "" {
		requested = BaseLocale
	}

	if c, ok := lookupCatalog(requested); ok {
		return c
	}

	resolved := resolveLocale(requested)
	if c, ok := lookupCatalog(resolved); ok {
		return c
	}

	c, _ := lookupCatalog(BaseLocale)
	return c
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message template with the given metadata.
// Falls back to the error code itself if no template is found.
// Templates are always executed even with nil/empty metadata so template
// variables without metadata render as empty.
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	tmpl, ok := c.messages[code]
	if !ok {
		return code
	}

	if metadata == nil {
		metadata = map[string]string{}
	}

	t, err := template.New("msg").Parse(tmpl)
	if err != nil {
		return tmpl
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return tmpl
	}
	return buf.String()
}

// NewCatalog creates a new catalog with the given locale and messages.
func NewCatalog(locale string, messages map[Code]string) *Catalog {
	cloned := make(map[Code]string, len(messages))
	for key, value := range messages {
		cloned[key] = value
	}
	return &Catalog{
		locale:   locale,
		messages: cloned,
	}
}

// RegisterCatalog registers a catalog for the given locale and rebuilds the
// locale matcher. Registration normally happens during init.
func RegisterCatalog(locale string, cat *Catalog) {
	catalogsMu.Lock()
	catalogs[locale] = cat
	catalogsMu.Unlock()

	matcherMu.Lock()
	defer matcherMu.Unlock()
	locales = append(locales, locale)
	tags = append(tags, language.Make(locale))
	matcher = language.NewMatcher(tags)
}

func lookupCatalog(locale string) (*Catalog, bool) {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()
	cat, ok := catalogs[locale]
	return cat, ok
}

func resolveLocale(requested string) string {
	matcherMu.RLock()
	defer matcherMu.RUnlock()
	if matcher == nil {
		return BaseLocale
	}
	_, index, confidence := matcher.Match(language.Make(requested))
	if confidence == language.No {
		return BaseLocale
	}
	return locales[index]
}
