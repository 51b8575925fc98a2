// Package locales holds the pre-authored, human-written strings that are used
// verbatim instead of being machine translated.
package locales

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

// GreetingID is the message ID of the welcome greeting line.
const GreetingID = "greeting"

// labelIDs maps the English welcome feature labels to their message IDs.
var labelIDs = map[string]string{
	"Business Discovery":     "label_business_discovery",
	"Compliance & Licensing": "label_compliance_licensing",
	"Timeline Planning":      "label_timeline_planning",
	"Platform Integration":   "label_platform_integration",
	"Document Analysis":      "label_document_analysis",
}

// LabelID returns the message ID of an English welcome label.
func LabelID(label string) (string, bool) {
	id, ok := labelIDs[label]
	return id, ok
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := New(localeFS, "en")
	if err != nil {
		panic(err)
	}
	return c
})

// Catalog is a thin wrapper around a go-i18n Bundle.
// It is immutable after construction and safe for concurrent use.
type Catalog struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	languages       map[string]bool
}

// Default returns the catalog built from the embedded active.*.toml files.
func Default() *Catalog {
	return defaultCatalog()
}

// New loads every active.*.toml message file found in fsys.
func New(fsys fs.FS, defaultLocale string) (*Catalog, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("locales: invalid default locale %q: %w", defaultLocale, err)
	}

	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(fsys, "active.*.toml")
	if err != nil {
		return nil, fmt.Errorf("locales: listing message files: %w", err)
	}

	c := &Catalog{
		bundle:          bundle,
		defaultLanguage: tag,
		languages:       make(map[string]bool, len(files)),
	}
	for _, file := range files {
		mf, err := bundle.LoadMessageFileFS(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("locales: loading %s: %w", file, err)
		}
		c.languages[mf.Tag.String()] = true
	}

	if !c.languages[tag.String()] {
		return nil, fmt.Errorf("locales: no message file for default locale %q", defaultLocale)
	}

	return c, nil
}

// Greeting returns the greeting line for lang, or the default locale's
// greeting when lang has no message file.
func (c *Catalog) Greeting(lang string) string {
	return c.Localize(lang, GreetingID)
}

// Localize renders the message identified by id for lang.
// Unknown languages use the default locale; unknown ids return the id itself.
func (c *Catalog) Localize(lang, id string) string {
	locale := c.defaultLanguage.String()
	if c.languages[lang] {
		locale = lang
	}

	localizer := i18n.NewLocalizer(c.bundle, locale)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

// HasLanguage reports whether a message file exists for lang.
func (c *Catalog) HasLanguage(lang string) bool {
	return c.languages[lang]
}

// Languages returns the loaded locales in sorted order.
func (c *Catalog) Languages() []string {
	out := make([]string, 0, len(c.languages))
	for lang := range c.languages {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}
