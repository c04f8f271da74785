package i18n

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizer(t *testing.T) {
	t.Run("English", func(t *testing.T) {
		l := NewLocalizer(English)
		assert.Equal(t, "Dashboard", l.T("dashboard"))
		assert.Equal(t, "ltr", l.Direction())
	})

	t.Run("Arabic", func(t *testing.T) {
		l := NewLocalizer(Arabic)
		assert.Equal(t, "لوحة التحكم", l.T("dashboard"))
		assert.Equal(t, "rtl", l.Direction())
	})

	t.Run("Missing Arabic key falls back to English", func(t *testing.T) {
		l := &Localizer{Locale: Arabic, Dictionary: Dictionary{"dashboard": "لوحة التحكم"}}
		assert.Equal(t, "لوحة التحكم", l.T("dashboard"))
		assert.Equal(t, "Invalid username or password", l.T("loginFailed"))
	})

	t.Run("Unknown key is returned as is", func(t *testing.T) {
		assert.Equal(t, "noSuchKey", NewLocalizer(English).T("noSuchKey"))
	})

	t.Run("Unsupported locale becomes English", func(t *testing.T) {
		assert.Equal(t, English, NewLocalizer(Language("fr")).Locale)
	})

	t.Run("Currency", func(t *testing.T) {
		assert.Equal(t, "SYP 2,500", NewLocalizer(English).FormatCurrency(2500))
		assert.Equal(t, "SYP 950", NewLocalizer(Arabic).FormatCurrency(950))
		assert.Equal(t, "SYP 1,234,567", NewLocalizer(English).FormatCurrency(1234567))
		assert.Equal(t, "SYP 2,500", NewLocalizer(Arabic).FormatCurrency(2500))
		assert.Equal(t, "SYP 1,234,567", NewLocalizer(Arabic).FormatCurrency(1234567))
	})
}

func TestDictionariesHaveSameKeys(t *testing.T) {
	for key := range arabic {
		_, ok := english[key]
		assert.True(t, ok, "arabic key %q has no english text", key)
	}
	for key := range english {
		_, ok := arabic[key]
		assert.True(t, ok, "english key %q has no arabic text", key)
	}
}

func TestParseLanguage(t *testing.T) {
	testCases := []struct {
		input    string
		expected Language
		wantErr  bool
	}{
		{"en", English, false},
		{"AR", Arabic, false},
		{" ar-SY ", Arabic, false},
		{"en-GB", English, false},
		{"fr", "", true},
		{"", "", true},
		{"not a tag", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			lang, err := ParseLanguage(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidLanguage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, lang)
		})
	}
}

func TestPreferences(t *testing.T) {
	ctx := context.Background()

	t.Run("Fallback without preference or header", func(t *testing.T) {
		prefs := NewPreferences(English)
		assert.Equal(t, English, prefs.Resolve(ctx, storage.NewMemoryStore(), ""))
	})

	t.Run("Accept-Language is matched", func(t *testing.T) {
		prefs := NewPreferences(English)
		assert.Equal(t, Arabic, prefs.Resolve(ctx, storage.NewMemoryStore(), "ar-EG,ar;q=0.9,en;q=0.5"))
		assert.Equal(t, English, prefs.Resolve(ctx, storage.NewMemoryStore(), "de-DE"))
	})

	t.Run("Stored preference wins", func(t *testing.T) {
		store := storage.NewMemoryStore()
		prefs := NewPreferences(English)

		lang, err := prefs.Set(ctx, store, "ar")
		require.NoError(t, err)
		assert.Equal(t, Arabic, lang)

		raw, err := store.Get(ctx, entity.KeyPreferredLanguage)
		require.NoError(t, err)
		assert.Equal(t, "ar", string(raw))

		assert.Equal(t, Arabic, prefs.Resolve(ctx, store, "en-US"))
	})

	t.Run("Corrupt stored preference is ignored", func(t *testing.T) {
		store := storage.NewMemoryStore()
		require.NoError(t, store.Set(ctx, entity.KeyPreferredLanguage, []byte("klingon")))

		assert.Equal(t, Arabic, NewPreferences(Arabic).Resolve(ctx, store, ""))
	})

	t.Run("Unsupported language is rejected", func(t *testing.T) {
		store := storage.NewMemoryStore()
		_, err := NewPreferences(English).Set(ctx, store, "fr")
		assert.True(t, errs.IsValidationError(err))

		_, err = store.Get(ctx, entity.KeyPreferredLanguage)
		assert.ErrorIs(t, err, errs.ErrKeyNotFound)
	})

	t.Run("Unsupported fallback becomes English", func(t *testing.T) {
		assert.Equal(t, English, NewPreferences(Language("xx")).Fallback())
	})
}
