// Package locale localizes culture adjectives for generated names.
// Catalogs are YAML files registered with x/text/message.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every other locale falls back to.
const BaseLocale = "en-US"

// Translator localizes a string-table key. Keys without a translation are
// returned unchanged.
type Translator interface {
	Localize(key string) string
}

// TranslatorFunc adapts a plain function to Translator.
type TranslatorFunc func(key string) string

// Localize calls f.
func (f TranslatorFunc) Localize(key string) string { return f(key) }

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Catalog holds the messages of every loaded locale.
type Catalog struct {
	base     language.Tag
	tags     []language.Tag
	matcher  language.Matcher
	builder  *catalog.Builder
	messages map[language.Tag]map[string]string
}

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

// LoadEmbedded loads the catalogs shipped with the binary.
func LoadEmbedded() (*Catalog, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads every locales/<locale>/*.yaml file from fsys.
func LoadFromFS(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	base := language.MustParse(BaseLocale)
	c := &Catalog{
		base:     base,
		builder:  catalog.NewBuilder(catalog.Fallback(base)),
		messages: map[language.Tag]map[string]string{},
	}

	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := c.add(p, file); err != nil {
			return nil, err
		}
	}

	if _, ok := c.messages[base]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}

	// The matcher prefers the first tag on ties, so the base goes first.
	var others []language.Tag
	for tag := range c.messages {
		if tag != base {
			others = append(others, tag)
		}
	}
	sort.Slice(others, func(i, j int) bool { return others[i].String() < others[j].String() })
	c.tags = append([]language.Tag{base}, others...)
	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

func (c *Catalog) add(p string, file catalogFile) error {
	dirLocale := path.Base(path.Dir(p))
	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return fmt.Errorf("catalog %s: locale is required", p)
	}
	if locale != dirLocale {
		return fmt.Errorf("catalog %s: locale %q must match directory %q", p, locale, dirLocale)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("catalog %s: parse locale: %w", p, err)
	}

	msgs, ok := c.messages[tag]
	if !ok {
		msgs = map[string]string{}
		c.messages[tag] = msgs
	}
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: blank message key", p)
		}
		if _, dup := msgs[key]; dup {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %s", p, key, locale)
		}
		msgs[key] = value
		// Printers treat messages as format strings.
		if err := c.builder.SetString(tag, key, strings.ReplaceAll(value, "%", "%%")); err != nil {
			return fmt.Errorf("catalog %s: register %q: %w", p, key, err)
		}
	}
	return nil
}

// Locales returns the loaded locale tags, base locale first.
func (c *Catalog) Locales() []string {
	out := make([]string, len(c.tags))
	for i, t := range c.tags {
		out[i] = t.String()
	}
	return out
}

// Localizer returns a Translator for the closest available match to locale.
// Unknown or unparsable locales get the base locale.
func (c *Catalog) Localizer(locale string) *Localizer {
	tag := c.base
	if requested, err := language.Parse(locale); err == nil {
		_, idx, conf := c.matcher.Match(requested)
		if conf != language.No {
			tag = c.tags[idx]
		}
	}
	return &Localizer{
		catalog: c,
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(c.builder)),
		base:    message.NewPrinter(c.base, message.Catalog(c.builder)),
	}
}

// Localizer translates keys for one locale with fallback to the base locale.
type Localizer struct {
	catalog *Catalog
	tag     language.Tag
	printer *message.Printer
	base    *message.Printer
}

// Locale returns the resolved locale.
func (l *Localizer) Locale() string {
	return l.tag.String()
}

// Localize returns the translation of key, or key itself when no locale
// defines it.
func (l *Localizer) Localize(key string) string {
	if _, ok := l.catalog.messages[l.tag][key]; ok {
		return l.printer.Sprintf(key)
	}
	if _, ok := l.catalog.messages[l.catalog.base][key]; ok {
		return l.base.Sprintf(key)
	}
	return key
}
