package service

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/samber/lo"

	"lexitrain/internal/domain"
)

const distractorCount = domain.OptionCount - 1

// genericDistractors are deterministic filler answers used when the pool
// cannot supply three qualifying distractors of the chosen kind.
var genericDistractors = map[domain.QuestionKind][]string{
	domain.KindDefinition: {
		"A way of describing movement",
		"A feeling of uncertainty",
		"An object used in daily life",
		"A formal expression of agreement",
	},
	domain.KindSynonym: {
		"quickly",
		"ordinary",
		"consider",
		"pleasant",
	},
	domain.KindExample: {
		"moment",
		"reason",
		"service",
		"purpose",
	},
	domain.KindPartOfSpeech: {
		"A verb (A1 level word)",
		"An adjective (B2 level word)",
		"An adverb (C1 level word)",
		"A noun (A2 level word)",
	},
}

// Generator turns one word plus a distractor pool into a well-formed
// multiple-choice question.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a question generator with an injected rand source.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate builds a question for the given word, choosing the first question
// kind whose source field is populated: definition, synonym, example, then
// the part-of-speech fallback. It never mutates its inputs and returns nil
// only when the word carries no identifying field at all.
func (g *Generator) Generate(word domain.WordEntry, pool []domain.WordEntry) *domain.QuizQuestion {
	kind, prompt, correct := g.pickKind(word)
	if kind == "" {
		return nil
	}

	distractors := g.drawDistractors(kind, correct, word, pool)

	options := append([]string{correct}, distractors...)
	options = lo.Uniq(options)
	// Dedup can only shrink the slice if a generic filler collided with the
	// correct answer, which drawDistractors already excludes.
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &domain.QuizQuestion{
		SourceWord:    word,
		Prompt:        prompt,
		Options:       options,
		CorrectOption: correct,
		Kind:          kind,
	}
}

// pickKind selects the question strategy from the word's populated fields.
func (g *Generator) pickKind(word domain.WordEntry) (domain.QuestionKind, string, string) {
	switch {
	case word.Definition != "":
		prompt := fmt.Sprintf("What is the meaning of %q?", word.SurfaceForm)
		return domain.KindDefinition, prompt, word.Definition

	case len(word.Synonyms) > 0:
		prompt := fmt.Sprintf("Which word is a synonym of %q?", word.SurfaceForm)
		return domain.KindSynonym, prompt, word.Synonyms[0]

	case word.ExampleSentence != "":
		prompt := "Complete the sentence: " + blankOut(word.ExampleSentence, word.SurfaceForm)
		return domain.KindExample, prompt, word.SurfaceForm

	case word.PartOfSpeech != "" || word.Level.Rank() >= 0:
		prompt := fmt.Sprintf("Which of these describes %q?", word.SurfaceForm)
		return domain.KindPartOfSpeech, prompt, posPhrase(word)
	}

	return "", "", ""
}

// drawDistractors picks three wrong answers, preferring pool entries whose
// same-kind field is populated and textually distinct from the correct one.
// Generic filler answers cover any remaining slots instead of failing.
func (g *Generator) drawDistractors(kind domain.QuestionKind, correct string, word domain.WordEntry, pool []domain.WordEntry) []string {
	candidates := make([]string, 0, len(pool))
	for _, p := range pool {
		if p.SurfaceForm == word.SurfaceForm {
			continue
		}
		if v := kindValue(kind, p); v != "" && v != correct {
			candidates = append(candidates, v)
		}
	}
	candidates = lo.Uniq(candidates)

	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	if len(candidates) > distractorCount {
		candidates = candidates[:distractorCount]
	}

	for _, generic := range genericDistractors[kind] {
		if len(candidates) >= distractorCount {
			break
		}
		if generic != correct && !lo.Contains(candidates, generic) {
			candidates = append(candidates, generic)
		}
	}

	return candidates
}

// kindValue extracts the option text a pool entry contributes for a kind.
func kindValue(kind domain.QuestionKind, word domain.WordEntry) string {
	switch kind {
	case domain.KindDefinition:
		return word.Definition
	case domain.KindSynonym:
		if len(word.Synonyms) > 0 {
			return word.Synonyms[0]
		}
	case domain.KindExample:
		return word.SurfaceForm
	case domain.KindPartOfSpeech:
		return posPhrase(word)
	}
	return ""
}

// posPhrase renders the part-of-speech fallback answer, e.g.
// "A noun (B1 level word)".
func posPhrase(word domain.WordEntry) string {
	pos := strings.ToLower(word.PartOfSpeech)
	if pos == "" {
		return fmt.Sprintf("A %s level word", word.Level)
	}
	article := "A"
	switch pos[0] {
	case 'a', 'e', 'i', 'o', 'u':
		article = "An"
	}
	return fmt.Sprintf("%s %s (%s level word)", article, pos, word.Level)
}

// blankOut replaces the word's occurrence in a sentence with a blank,
// matching case-insensitively. If the word never appears, the blank is
// appended instead.
func blankOut(sentence, word string) string {
	lower := strings.ToLower(sentence)
	idx := strings.Index(lower, strings.ToLower(word))
	if idx < 0 {
		return sentence + " _______"
	}
	return sentence[:idx] + "_______" + sentence[idx+len(word):]
}
