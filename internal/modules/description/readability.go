package description

import (
	"regexp"
	"strings"
)

var (
	wordRe        = regexp.MustCompile(`\w+`)
	sentenceSplit = regexp.MustCompile(`[.!?]`)
	silentSuffix  = regexp.MustCompile(`(?:[^laeiouy]es|ed|[^laeiouy]e)$`)
	leadingY      = regexp.MustCompile(`^y`)
	vowelRuns     = regexp.MustCompile(`[aeiouy]{1,2}`)
)

// FleschReadingEase computes the Flesch Reading Ease score:
//
//	206.835 - 1.015*(words/sentences) - 84.6*(syllables/words)
//
// Sentences are the non-blank segments between '.', '!' and '?' (minimum 1);
// words are maximal alphanumeric runs. The score is undefined for text with
// no words; callers should treat such drafts as failed before scoring.
func FleschReadingEase(text string) float64 {
	sentences := 0
	for _, seg := range sentenceSplit.Split(text, -1) {
		if strings.TrimSpace(seg) != "" {
			sentences++
		}
	}
	if sentences == 0 {
		sentences = 1
	}

	words := wordRe.FindAllString(text, -1)
	if len(words) == 0 {
		return 0
	}

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	return 206.835 -
		1.015*(float64(len(words))/float64(sentences)) -
		84.6*(float64(syllables)/float64(len(words)))
}

// countSyllables estimates syllables with the fixed heuristic the score
// depends on: short words count as one; a trailing silent-e pattern and a
// leading 'y' are stripped; what remains is counted as non-overlapping runs
// of one or two vowels, with a floor of one.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	if len(word) <= 3 {
		return 1
	}

	word = silentSuffix.ReplaceAllString(word, "")
	word = leadingY.ReplaceAllString(word, "")

	runs := vowelRuns.FindAllString(word, -1)
	if len(runs) == 0 {
		return 1
	}
	return len(runs)
}
