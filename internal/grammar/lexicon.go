// Package grammar provides the closed Toki Pona lexicon and the
// sentence validator/canonicalizer used by the Ego before any
// utterance leaves the mind.
package grammar

import "sort"

// Particles marking phrase boundaries. Li separates an explicit
// subject from its verb; E introduces the object.
const (
	ParticleLi = "li"
	ParticleE  = "e"
)

// FirstPerson is the agent's default self-referent. A subject equal
// to it (or left empty) is elided from the surface form.
const FirstPerson = "mi"

// WordClass identifies which slot of a sentence a word may fill.
type WordClass uint8

const (
	ClassUnknown  WordClass = iota
	ClassSubject
	ClassVerb
	ClassObject
	ClassParticle
)

// Lexicon is the closed vocabulary, grouped by word class.
// The zero value is empty; use DefaultLexicon or Extend.
type Lexicon struct {
	subjects map[string]bool
	verbs    map[string]bool
	objects  map[string]bool
}

// DefaultLexicon returns the root vocabulary of the simulation.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		subjects: set("mi", "sina", "jan"),
		verbs:    set("tawa", "moku", "lon", "lukin", "sona"),
		objects:  set("kili", "ma", "tomo", "supa"),
	}
}

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// Extend adds words to the lexicon. Empty strings are ignored.
func (l *Lexicon) Extend(subjects, verbs, objects []string) {
	for _, w := range subjects {
		if w != "" {
			l.subjects[w] = true
		}
	}
	for _, w := range verbs {
		if w != "" {
			l.verbs[w] = true
		}
	}
	for _, w := range objects {
		if w != "" {
			l.objects[w] = true
		}
	}
}

// Classify returns the word class of a token, or ClassUnknown if the
// token is outside the lexicon. Particles are classified first so a
// word cannot shadow li/e.
func (l *Lexicon) Classify(token string) WordClass {
	switch token {
	case ParticleLi, ParticleE:
		return ClassParticle
	}
	if l.subjects[token] {
		return ClassSubject
	}
	if l.verbs[token] {
		return ClassVerb
	}
	if l.objects[token] {
		return ClassObject
	}
	return ClassUnknown
}

// IsSubject reports whether the token may fill the subject slot.
func (l *Lexicon) IsSubject(token string) bool { return l.subjects[token] }

// IsVerb reports whether the token may fill the verb slot.
func (l *Lexicon) IsVerb(token string) bool { return l.verbs[token] }

// IsObject reports whether the token may fill the object slot.
func (l *Lexicon) IsObject(token string) bool { return l.objects[token] }

// Subjects returns the subject words in lexical order.
func (l *Lexicon) Subjects() []string { return sorted(l.subjects) }

// Verbs returns the verb words in lexical order.
func (l *Lexicon) Verbs() []string { return sorted(l.verbs) }

// Objects returns the object words in lexical order.
func (l *Lexicon) Objects() []string { return sorted(l.objects) }

func sorted(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for w := range m {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
