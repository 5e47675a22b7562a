package sfoglia

import (
	"embed"
	"os"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locale/*.toml
var localeFS embed.FS

var indicatorMessages = struct {
	cover *i18n.Message
	page  *i18n.Message
	end   *i18n.Message
}{
	cover: &i18n.Message{
		ID:    "NotebookCover",
		Other: "Cover",
	},
	page: &i18n.Message{
		ID:    "NotebookPage",
		Other: "Page {{.Page}}",
	},
	end: &i18n.Message{
		ID:    "NotebookEnd",
		Other: "End",
	},
}

// Indicator projects a notebook position onto a display label:
// "Cover" at 0, "Page k" for the content pages, "End" past the last page.
// Labels are localized; English is the fallback.
type Indicator struct {
	localizer *i18n.Localizer
}

// NewIndicator creates an indicator localized for the given language tags,
// most preferred first. When none are given, the SFOGLIA_LANG and LANG
// environment variables are consulted.
func NewIndicator(langs ...string) *Indicator {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := localeFS.ReadDir("locale")
	if err == nil {
		for _, entry := range entries {
			if _, err := bundle.LoadMessageFileFS(localeFS, "locale/"+entry.Name()); err != nil {
				internal.GetInternalLogger().Warn("Skipping unreadable locale file", "file", entry.Name(), "error", err)
			}
		}
	}

	if len(langs) == 0 {
		for _, env := range []string{constants.LanguageEnvVar, "LANG"} {
			if v := os.Getenv(env); v != "" {
				langs = append(langs, v)
			}
		}
	}

	return &Indicator{
		localizer: i18n.NewLocalizer(bundle, langs...),
	}
}

// Label returns the display label for a position. The projection is pure:
// it depends only on currentPage and totalPages.
func (ind *Indicator) Label(currentPage, totalPages int) string {
	switch {
	case currentPage <= 0:
		return ind.localizer.MustLocalize(&i18n.LocalizeConfig{
			DefaultMessage: indicatorMessages.cover,
		})
	case currentPage <= totalPages:
		return ind.localizer.MustLocalize(&i18n.LocalizeConfig{
			DefaultMessage: indicatorMessages.page,
			TemplateData:   map[string]interface{}{"Page": currentPage},
		})
	default:
		return ind.localizer.MustLocalize(&i18n.LocalizeConfig{
			DefaultMessage: indicatorMessages.end,
		})
	}
}
