// Sentence validation and canonicalization.
// The grammar is a fixed subject-li-verb-e-object structure over the
// closed lexicon. Each semantic triple maps to exactly one surface
// form, so canonicalization is deterministic and round-trips through
// validation.
package grammar

import (
	"errors"
	"fmt"
	"strings"
)

// Triple is the semantic content of a sentence: who does what to what.
// Subject and Object are optional; an empty or first-person Subject is
// elided from the surface form.
type Triple struct {
	Subject string `json:"subject,omitempty"`
	Verb    string `json:"verb"`
	Object  string `json:"object,omitempty"`
}

// UnknownTokenError reports a token outside the lexicon.
type UnknownTokenError struct {
	Token string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("grammar: unknown token %q", e.Token)
}

// TemplateMismatchError reports a token sequence that matches no
// sentence template.
type TemplateMismatchError struct {
	Tokens []string
}

func (e *TemplateMismatchError) Error() string {
	return fmt.Sprintf("grammar: no template matches %q", strings.Join(e.Tokens, " "))
}

// IsGrammarError reports whether err is one of the grammar error
// types. The Ego uses this to fall back to silence instead of
// emitting an invalid sentence.
func IsGrammarError(err error) bool {
	var unknown *UnknownTokenError
	var mismatch *TemplateMismatchError
	return errors.As(err, &unknown) || errors.As(err, &mismatch)
}

// Validator checks token sequences against the sentence templates and
// builds canonical surface forms from semantic triples.
type Validator struct {
	lex *Lexicon
}

// NewValidator creates a validator over the given lexicon.
func NewValidator(lex *Lexicon) *Validator {
	return &Validator{lex: lex}
}

// Lexicon returns the validator's vocabulary.
func (v *Validator) Lexicon() *Lexicon { return v.lex }

// Validate checks a token sequence and returns its semantic triple.
// Unknown tokens are rejected before any template matching, so a
// sentence is never partially accepted. Templates are tried most
// specific first:
//
//	S li V e O
//	S li V
//	V e O      (elided first-person subject)
//	V          (elided first-person subject)
func (v *Validator) Validate(tokens []string) (Triple, error) {
	if len(tokens) == 0 {
		return Triple{}, &TemplateMismatchError{Tokens: tokens}
	}
	for _, tok := range tokens {
		if v.lex.Classify(tok) == ClassUnknown {
			return Triple{}, &UnknownTokenError{Token: tok}
		}
	}

	switch len(tokens) {
	case 5: // S li V e O
		if v.lex.IsSubject(tokens[0]) && tokens[1] == ParticleLi &&
			v.lex.IsVerb(tokens[2]) && tokens[3] == ParticleE &&
			v.lex.IsObject(tokens[4]) {
			return Triple{Subject: tokens[0], Verb: tokens[2], Object: tokens[4]}, nil
		}
	case 3: // S li V | V e O
		if v.lex.IsSubject(tokens[0]) && tokens[1] == ParticleLi && v.lex.IsVerb(tokens[2]) {
			return Triple{Subject: tokens[0], Verb: tokens[2]}, nil
		}
		if v.lex.IsVerb(tokens[0]) && tokens[1] == ParticleE && v.lex.IsObject(tokens[2]) {
			return Triple{Subject: FirstPerson, Verb: tokens[0], Object: tokens[2]}, nil
		}
	case 1: // V
		if v.lex.IsVerb(tokens[0]) {
			return Triple{Subject: FirstPerson, Verb: tokens[0]}, nil
		}
	}
	return Triple{}, &TemplateMismatchError{Tokens: tokens}
}

// Canonicalize builds the single surface form of a semantic triple.
// A subject equal to the first-person referent (or empty) is elided;
// li and e appear exactly where the templates require them. Every
// word must be in the lexicon and fill its slot, otherwise an
// UnknownTokenError is returned.
func (v *Validator) Canonicalize(t Triple) ([]string, error) {
	if t.Verb == "" || !v.lex.IsVerb(t.Verb) {
		return nil, &UnknownTokenError{Token: t.Verb}
	}
	subject := t.Subject
	if subject == FirstPerson {
		subject = ""
	}
	if subject != "" && !v.lex.IsSubject(subject) {
		return nil, &UnknownTokenError{Token: subject}
	}
	if t.Object != "" && !v.lex.IsObject(t.Object) {
		return nil, &UnknownTokenError{Token: t.Object}
	}

	var tokens []string
	if subject != "" {
		tokens = append(tokens, subject, ParticleLi)
	}
	tokens = append(tokens, t.Verb)
	if t.Object != "" {
		tokens = append(tokens, ParticleE, t.Object)
	}
	return tokens, nil
}
