package i18n

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/persistence"
)

// Language is a supported two-letter UI language
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

// CurrencyCode prefixes every formatted amount
const CurrencyCode = "SYP"

// Dictionary maps a message key to its text
type Dictionary map[string]string

var (
	dictionaries = map[Language]Dictionary{
		English: english,
		Arabic:  arabic,
	}

	supported = []language.Tag{language.English, language.Arabic}
	matcher   = language.NewMatcher(supported)

	// amounts keep Western digits and comma grouping in every locale
	currencyPrinter = message.NewPrinter(language.English)
)

// ParseLanguage accepts a BCP 47 tag whose base language is supported
func ParseLanguage(s string) (Language, error) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidLanguage, s)
	}
	base, _ := tag.Base()
	lang := Language(base.String())
	if _, ok := dictionaries[lang]; !ok {
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidLanguage, s)
	}
	return lang, nil
}

// Localizer is the language configuration handed to view code
type Localizer struct {
	Locale     Language
	Dictionary Dictionary
}

// NewLocalizer returns a localizer for lang, or English when lang is unsupported
func NewLocalizer(lang Language) *Localizer {
	dict, ok := dictionaries[lang]
	if !ok {
		lang, dict = English, english
	}
	return &Localizer{Locale: lang, Dictionary: dict}
}

// T looks key up, falling back to English and then to the key itself
func (l *Localizer) T(key string) string {
	if text, ok := l.Dictionary[key]; ok {
		return text
	}
	if text, ok := english[key]; ok {
		return text
	}
	return key
}

// Direction is the text direction of the locale
func (l *Localizer) Direction() string {
	if l.Locale == Arabic {
		return "rtl"
	}
	return "ltr"
}

// FormatCurrency renders an amount like "SYP 2,500" whatever the locale
func (l *Localizer) FormatCurrency(amount int64) string {
	return currencyPrinter.Sprintf("%s %d", CurrencyCode, amount)
}

// Preferences reads and writes the preferredLanguage key of a client session
type Preferences struct {
	fallback Language
}

// NewPreferences creates preferences falling back to lang. An unsupported
// fallback becomes English.
func NewPreferences(lang Language) *Preferences {
	if _, ok := dictionaries[lang]; !ok {
		lang = English
	}
	return &Preferences{fallback: lang}
}

// Fallback is the configured default language
func (p *Preferences) Fallback() Language {
	return p.fallback
}

// Resolve returns the stored language, then the best match for the
// Accept-Language header, then the fallback
func (p *Preferences) Resolve(ctx context.Context, store persistence.KeyValueStore, acceptLanguage string) Language {
	if raw, err := store.Get(ctx, entity.KeyPreferredLanguage); err == nil {
		if lang, err := ParseLanguage(string(raw)); err == nil {
			return lang
		}
	}

	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			_, index, confidence := matcher.Match(tags...)
			if confidence != language.No {
				base, _ := supported[index].Base()
				return Language(base.String())
			}
		}
	}

	return p.fallback
}

// Set validates tag and stores it as the client's preferred language
func (p *Preferences) Set(ctx context.Context, store persistence.KeyValueStore, tag string) (Language, error) {
	lang, err := ParseLanguage(tag)
	if err != nil {
		return "", err
	}
	if err := store.Set(ctx, entity.KeyPreferredLanguage, []byte(lang)); err != nil {
		return "", err
	}
	return lang, nil
}
