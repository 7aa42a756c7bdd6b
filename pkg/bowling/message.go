package bowling

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys, also the English text
const (
	nextRollMsg = "Next roll: player %s, frame #%d, ball #%d"
	finishedMsg = "Game finished"
)

// SupportedLocales lists the languages status messages are available
// in. The first one is used when nothing else matches.
var SupportedLocales = []language.Tag{language.English, language.French}

var (
	messages      = newCatalog()
	localeMatcher = language.NewMatcher(SupportedLocales)
)

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, m := range []struct {
		tag      language.Tag
		key, msg string
	}{
		{language.English, nextRollMsg, nextRollMsg},
		{language.English, finishedMsg, finishedMsg},
		{language.French, nextRollMsg, "Prochain tir : joueur %s, tour n° %d, boule n° %d"},
		{language.French, finishedMsg, "Partie terminée"},
	} {
		if err := b.SetString(m.tag, m.key, m.msg); err != nil {
			panic(err)
		}
	}
	return b
}

// MatchLocale returns the supported locale closest to tag
func MatchLocale(tag language.Tag) language.Tag {
	_, i, _ := localeMatcher.Match(tag)
	return SupportedLocales[i]
}

func newPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(MatchLocale(tag), message.Catalog(messages))
}
