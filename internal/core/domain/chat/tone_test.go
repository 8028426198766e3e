package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonality(t *testing.T) {
	assert.Equal(t, "Concise and formal.", Mode("professional").Personality())
	assert.Equal(t, "Friendly and natural.", Mode("unknown").Personality())
	assert.Equal(t, "Friendly and natural.", Mode("").Personality())
}

func TestLanguage(t *testing.T) {
	cases := []struct {
		id               string
		raw              string
		expected         Language
		needsTranslation bool
	}{
		{id: "1", raw: "", expected: LanguageAuto, needsTranslation: false},
		{id: "2", raw: "AUTO", expected: LanguageAuto, needsTranslation: false},
		{id: "3", raw: "es", expected: LanguageSpanish, needsTranslation: true},
		{id: "4", raw: " Hinglish ", expected: LanguageHinglish, needsTranslation: true},
		{id: "5", raw: "de", expected: Language("de"), needsTranslation: false},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			language := ParseLanguage(testcase.raw)
			assert.Equal(t, testcase.expected, language)
			assert.Equal(t, testcase.needsTranslation, language.NeedsTranslation())
		})
	}
}

func TestKeepLast(t *testing.T) {
	messages := []Message{{Text: "1"}, {Text: "2"}, {Text: "3"}}
	assert.Equal(t, messages, KeepLast(messages, 5))
	assert.Equal(t, []Message{{Text: "2"}, {Text: "3"}}, KeepLast(messages, 2))
}
