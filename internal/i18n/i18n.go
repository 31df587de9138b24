// Package i18n translates admin UI strings with golang.org/x/text.
package i18n

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// translations holds every supported locale. English is the source language,
// so keys are the English strings themselves.
var translations = map[language.Tag]map[string]string{
	language.English: {
		"Preview as customer": "Preview as customer",
	},
	language.German: {
		"Preview as customer": "Als Kunde ansehen",
	},
	language.French: {
		"Preview as customer": "Aperçu en tant que client",
	},
	language.Spanish: {
		"Preview as customer": "Vista previa como cliente",
	},
}

type localeKey struct{}

// WithLocale stores the admin user's locale in the context.
func WithLocale(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, localeKey{}, tag)
}

// LocaleFromContext returns the locale stored by WithLocale.
func LocaleFromContext(ctx context.Context) (language.Tag, bool) {
	tag, ok := ctx.Value(localeKey{}).(language.Tag)
	return tag, ok
}

// Translator prints catalog messages for the locale found in a context.
type Translator struct {
	catalog   catalog.Catalog
	supported []language.Tag
	matcher   language.Matcher
	fallback  language.Tag
}

// NewTranslator builds the message catalog. defaultLocale is used when a
// context carries no locale; it must be one of the supported locales.
func NewTranslator(defaultLocale string) (*Translator, error) {
	requested, err := language.Parse(strings.TrimSpace(defaultLocale))
	if err != nil {
		return nil, fmt.Errorf("parse default locale %q: %w", defaultLocale, err)
	}

	supported := []language.Tag{language.English, language.German, language.French, language.Spanish}

	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, messages := range translations {
		for key, msg := range messages {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("register %s message %q: %w", tag, key, err)
			}
		}
	}

	matcher := language.NewMatcher(supported)
	_, idx, confidence := matcher.Match(requested)
	if confidence == language.No {
		return nil, fmt.Errorf("default locale %q is not supported", defaultLocale)
	}

	return &Translator{
		catalog:   b,
		supported: supported,
		matcher:   matcher,
		fallback:  supported[idx],
	}, nil
}

// Match picks the best supported locale for an Accept-Language header value.
// It returns the default locale when the header is empty or unparsable.
func (t *Translator) Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.fallback
	}
	_, idx, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return t.fallback
	}
	return t.supported[idx]
}

// Translate returns key translated to the context locale.
func (t *Translator) Translate(ctx context.Context, key string) string {
	tag, ok := LocaleFromContext(ctx)
	if !ok {
		tag = t.fallback
	}
	p := message.NewPrinter(tag, message.Catalog(t.catalog))
	return p.Sprintf(key)
}
