// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textutil implements the text tools: counting statistics and
// case transformations.
package textutil

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WordsPerMinute is the reading speed used for ReadingMinutes.
const WordsPerMinute = 200

// ErrUnknownMode is returned by Transform for an unsupported mode.
var ErrUnknownMode = errors.New("unknown case mode")

var (
	sentenceEnd    = regexp.MustCompile(`[.!?]+(?:\s+|$)`)
	paragraphBreak = regexp.MustCompile(`\n\s*\n`)
)

// Stats holds counts for a block of text.
type Stats struct {
	Characters        int `json:"characters" yaml:"characters"`
	CharactersNoSpace int `json:"characters_no_space" yaml:"characters_no_space"`
	Words             int `json:"words" yaml:"words"`
	Sentences         int `json:"sentences" yaml:"sentences"`
	Paragraphs        int `json:"paragraphs" yaml:"paragraphs"`
	Lines             int `json:"lines" yaml:"lines"`
	ReadingMinutes    int `json:"reading_minutes" yaml:"reading_minutes"`
}

// Analyze counts characters (runes), words, sentences, paragraphs and
// lines in text.
func Analyze(text string) Stats {
	s := Stats{
		Characters: utf8.RuneCountInString(text),
		Words:      len(strings.Fields(text)),
		Sentences:  countNonBlank(sentenceEnd.Split(text, -1)),
		Paragraphs: countNonBlank(paragraphBreak.Split(text, -1)),
	}
	for _, r := range text {
		if !unicode.IsSpace(r) {
			s.CharactersNoSpace++
		}
	}
	if text != "" {
		s.Lines = strings.Count(strings.TrimSuffix(text, "\n"), "\n") + 1
	}
	s.ReadingMinutes = int(math.Ceil(float64(s.Words) / WordsPerMinute))
	return s
}

func countNonBlank(parts []string) int {
	n := 0
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			n++
		}
	}
	return n
}

// Mode selects a case transformation.
type Mode string

const (
	Upper       Mode = "upper"
	Lower       Mode = "lower"
	Title       Mode = "title"
	Sentence    Mode = "sentence"
	Inverse     Mode = "inverse"
	Alternating Mode = "alternating"
	Snake       Mode = "snake"
	Kebab       Mode = "kebab"
	Camel       Mode = "camel"
)

// Modes lists every supported transformation.
var Modes = []Mode{Upper, Lower, Title, Sentence, Inverse, Alternating, Snake, Kebab, Camel}

// Transform rewrites text according to mode.
func Transform(text string, mode Mode) (string, error) {
	switch mode {
	case Upper:
		return cases.Upper(language.Und).String(text), nil
	case Lower:
		return cases.Lower(language.Und).String(text), nil
	case Title:
		return cases.Title(language.English).String(text), nil
	case Sentence:
		return sentenceCase(text), nil
	case Inverse:
		return strings.Map(invert, text), nil
	case Alternating:
		return alternate(text), nil
	case Snake:
		return strings.Join(lowerWords(text), "_"), nil
	case Kebab:
		return strings.Join(lowerWords(text), "-"), nil
	case Camel:
		return camel(text), nil
	default:
		return "", fmt.Errorf("%q: %w", mode, ErrUnknownMode)
	}
}

// Reverse reverses text by rune.
func Reverse(text string) string {
	r := []rune(text)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

func sentenceCase(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	start := true
	for _, r := range strings.ToLower(text) {
		switch {
		case start && unicode.IsLetter(r):
			b.WriteRune(unicode.ToUpper(r))
			start = false
		case r == '.' || r == '!' || r == '?':
			b.WriteRune(r)
			start = true
		default:
			if unicode.IsDigit(r) {
				start = false
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

func invert(r rune) rune {
	switch {
	case unicode.IsUpper(r):
		return unicode.ToLower(r)
	case unicode.IsLower(r):
		return unicode.ToUpper(r)
	}
	return r
}

func alternate(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	i := 0
	for _, r := range text {
		if !unicode.IsLetter(r) {
			b.WriteRune(r)
			continue
		}
		if i%2 == 0 {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(unicode.ToUpper(r))
		}
		i++
	}
	return b.String()
}

func camel(text string) string {
	words := lowerWords(text)
	title := cases.Title(language.English)
	for i := 1; i < len(words); i++ {
		words[i] = title.String(words[i])
	}
	return strings.Join(words, "")
}

// lowerWords splits text into lower-cased words at non-alphanumeric runes
// and at lower-to-upper case boundaries ("fooBar" is two words).
func lowerWords(text string) []string {
	var words []string
	var cur []rune
	var prev rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}
	for _, r := range text {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
		prev = r
	}
	flush()
	return words
}
