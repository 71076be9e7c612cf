package grammar

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestValidateTemplates(t *testing.T) {
	v := NewValidator(DefaultLexicon())

	tests := []struct {
		name   string
		tokens string
		want   Triple
	}{
		{"full sentence", "jan li moku e kili", Triple{Subject: "jan", Verb: "moku", Object: "kili"}},
		{"subject verb", "sina li tawa", Triple{Subject: "sina", Verb: "tawa"}},
		{"elided subject with object", "lukin e ma", Triple{Subject: "mi", Verb: "lukin", Object: "ma"}},
		{"bare verb", "tawa", Triple{Subject: "mi", Verb: "tawa"}},
		{"explicit first person", "mi li sona", Triple{Subject: "mi", Verb: "sona"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Validate(strings.Fields(tt.tokens))
			if err != nil {
				t.Fatalf("Validate(%q) error: %v", tt.tokens, err)
			}
			if got != tt.want {
				t.Errorf("Validate(%q) = %+v, want %+v", tt.tokens, got, tt.want)
			}
		})
	}
}

func TestValidateRejectsUnknownToken(t *testing.T) {
	v := NewValidator(DefaultLexicon())

	// The unknown-token check must win even when the rest of the
	// sentence would match a template.
	tests := []string{
		"jan li moku e banana",
		"robot li tawa",
		"xyzzy",
		"tawa e xyzzy",
	}

	for _, s := range tests {
		_, err := v.Validate(strings.Fields(s))
		var unknown *UnknownTokenError
		if !errors.As(err, &unknown) {
			t.Errorf("Validate(%q) error = %v, want UnknownTokenError", s, err)
		}
	}
}

func TestValidateRejectsBadOrdering(t *testing.T) {
	v := NewValidator(DefaultLexicon())

	tests := []string{
		"",
		"jan tawa",          // missing li
		"li tawa",           // particle without subject
		"jan li kili",       // object in verb slot
		"tawa kili",         // missing e
		"jan li tawa kili",  // missing e before object
		"e kili",            // object phrase without verb
		"jan li tawa e",     // dangling particle
		"kili",              // bare object
	}

	for _, s := range tests {
		_, err := v.Validate(strings.Fields(s))
		var mismatch *TemplateMismatchError
		if !errors.As(err, &mismatch) {
			t.Errorf("Validate(%q) error = %v, want TemplateMismatchError", s, err)
		}
	}
}

func TestCanonicalizeRoundTrip(t *testing.T) {
	v := NewValidator(DefaultLexicon())
	lex := v.Lexicon()

	// Every expressible triple must canonicalize to a surface form
	// that validates back to the same triple.
	subjects := append([]string{""}, lex.Subjects()...)
	for _, subj := range subjects {
		for _, verb := range lex.Verbs() {
			objects := append([]string{""}, lex.Objects()...)
			for _, obj := range objects {
				in := Triple{Subject: subj, Verb: verb, Object: obj}
				tokens, err := v.Canonicalize(in)
				if err != nil {
					t.Fatalf("Canonicalize(%+v) error: %v", in, err)
				}
				got, err := v.Validate(tokens)
				if err != nil {
					t.Fatalf("Validate(Canonicalize(%+v)) = %q error: %v", in, tokens, err)
				}
				want := in
				if want.Subject == "" {
					want.Subject = FirstPerson
				}
				if got != want {
					t.Errorf("round trip %+v → %q → %+v", in, tokens, got)
				}
			}
		}
	}
}

func TestCanonicalizeElidesFirstPerson(t *testing.T) {
	v := NewValidator(DefaultLexicon())

	tests := []struct {
		in   Triple
		want []string
	}{
		{Triple{Subject: "mi", Verb: "tawa"}, []string{"tawa"}},
		{Triple{Verb: "tawa"}, []string{"tawa"}},
		{Triple{Subject: "mi", Verb: "moku", Object: "kili"}, []string{"moku", "e", "kili"}},
		{Triple{Subject: "jan", Verb: "tawa"}, []string{"jan", "li", "tawa"}},
		{Triple{Subject: "jan", Verb: "lukin", Object: "tomo"}, []string{"jan", "li", "lukin", "e", "tomo"}},
	}

	for _, tt := range tests {
		got, err := v.Canonicalize(tt.in)
		if err != nil {
			t.Fatalf("Canonicalize(%+v) error: %v", tt.in, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Canonicalize(%+v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCanonicalizeRejectsUnknownWords(t *testing.T) {
	v := NewValidator(DefaultLexicon())

	tests := []Triple{
		{Verb: ""},
		{Verb: "banana"},
		{Subject: "robot", Verb: "tawa"},
		{Verb: "tawa", Object: "banana"},
		{Verb: "kili"}, // object word in verb slot
	}

	for _, tr := range tests {
		if _, err := v.Canonicalize(tr); !IsGrammarError(err) {
			t.Errorf("Canonicalize(%+v) error = %v, want grammar error", tr, err)
		}
	}
}

func TestExtendLexicon(t *testing.T) {
	lex := DefaultLexicon()
	lex.Extend(nil, []string{"pali"}, []string{"telo"})
	v := NewValidator(lex)

	got, err := v.Validate([]string{"pali", "e", "telo"})
	if err != nil {
		t.Fatalf("Validate with extended lexicon: %v", err)
	}
	want := Triple{Subject: "mi", Verb: "pali", Object: "telo"}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
