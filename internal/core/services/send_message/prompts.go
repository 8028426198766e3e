package sendmessage

import (
	"brainbox/internal/core/domain/chat"
	c "brainbox/internal/core/domain/common"
	"fmt"
	"strings"
)

const (
	DOCUMENT_CONTEXT_LIMIT = 7000
	WEB_CONTEXT_SIZE       = 5
	NOT_IN_DOCUMENT        = "Not in document"
)

var resetCommands = []string{"clear", "reset", "new chat"}

var smalltalkGreetings = []string{"hi", "hello", "hey", "hola", "namaste", "bonjour"}

var ocrQueryKeys = []string{
	"what is written in the image",
	"image mein kya",
	"image me kya",
	"text in image",
	"read the image",
	"ocr",
	"picture me kya",
	"photo me kya",
	"what is the text written",
}

func isReset(message string) bool {
	return oneOf(strings.ToLower(message), resetCommands)
}

func isReminder(message string) bool {
	return strings.HasPrefix(strings.ToLower(message), "remind")
}

func isSmalltalk(message string) bool {
	return oneOf(strings.ToLower(strings.TrimSpace(message)), smalltalkGreetings)
}

func isOCRQuery(message string) bool {
	lowered := strings.ToLower(message)
	for _, key := range ocrQueryKeys {
		if strings.Contains(lowered, key) {
			return true
		}
	}
	return false
}

func oneOf(s string, values []string) bool {
	for _, v := range values {
		if s == v {
			return true
		}
	}
	return false
}

// isNotInDocument reports whether the document answer says the question is
// not covered, tolerating case and a trailing period.
func isNotInDocument(answer string) bool {
	answer = strings.TrimSuffix(strings.TrimSpace(answer), ".")
	return strings.EqualFold(answer, NOT_IN_DOCUMENT)
}

func documentPrompt(question string, document string) string {
	return fmt.Sprintf(`From the DOCUMENT, answer the QUESTION. If not found say: Not in document

QUESTION: %s

DOCUMENT:
%s

Answer:
`, question, c.Truncate(document, DOCUMENT_CONTEXT_LIMIT))
}

func directPrompt(question string) string {
	return fmt.Sprintf("Answer briefly:\nQ: %s\nA:", question)
}

func webPrompt(question string, results []chat.SearchResult) string {
	if len(results) > WEB_CONTEXT_SIZE {
		results = results[:WEB_CONTEXT_SIZE]
	}
	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, fmt.Sprintf("- %s %s", r.Title, r.Snippet))
	}
	return fmt.Sprintf(`Use ONLY this web context:

%s

Answer the question briefly:
%s

Answer:
`, strings.Join(lines, "\n"), question)
}

func translationPrompt(reply string, language chat.Language, mode chat.Mode) string {
	if language == chat.LanguageHinglish {
		return fmt.Sprintf(`Convert text to Hinglish (Hindi in English letters). No Devanagari.

TEXT:
%s
`, reply)
	}
	return fmt.Sprintf(`Translate to %s. Keep tone similar to: %s. Do NOT add extra info.

TEXT:
%s
`, language.Name(), mode.Personality(), reply)
}
