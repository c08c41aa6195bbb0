package classifier

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball/english"
)

var wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Tokenize приводит текст к нижнему регистру и режет по границам слов.
func Tokenize(text string) []string {
	return wordRe.FindAllString(strings.ToLower(text), -1)
}

// Stem нормализует слово до корня (стеммер Портера для английского).
func Stem(token string) string {
	return english.Stem(token, false)
}

// IsStopWord — проверка по фиксированному списку английских стоп-слов.
func IsStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}
