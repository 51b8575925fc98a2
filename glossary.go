package bhasha

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

//go:embed glossary.toml
var defaultGlossaryTOML []byte

var defaultGlossary = sync.OnceValue(func() *Glossary {
	return MustLoadGlossary(defaultGlossaryTOML)
})

// GlossaryEntry maps one domain acronym to its localized glosses.
type GlossaryEntry struct {
	Term    string            `toml:"acronym"`
	Glosses map[string]string `toml:"glosses"`
}

// Glossary is an ordered, immutable set of acronym entries.
// It is safe for concurrent use.
type Glossary struct {
	entries []GlossaryEntry
}

type glossaryFile struct {
	Terms []GlossaryEntry `toml:"term"`
}

// NewGlossary creates a glossary from entries. Entries are matched in the given order.
func NewGlossary(entries ...GlossaryEntry) *Glossary {
	g := &Glossary{entries: make([]GlossaryEntry, 0, len(entries))}
	for _, e := range entries {
		glosses := make(map[string]string, len(e.Glosses))
		for lang, gloss := range e.Glosses {
			glosses[lang] = gloss
		}
		g.entries = append(g.entries, GlossaryEntry{Term: e.Term, Glosses: glosses})
	}
	return g
}

// LoadGlossary decodes a TOML glossary document.
func LoadGlossary(data []byte) (*Glossary, error) {
	var file glossaryFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, &GlossaryError{Message: "decoding glossary", Cause: err}
	}

	for i, e := range file.Terms {
		if strings.TrimSpace(e.Term) == "" {
			return nil, &GlossaryError{Message: fmt.Sprintf("term %d has an empty acronym", i)}
		}
	}

	return NewGlossary(file.Terms...), nil
}

// LoadGlossaryFile reads a TOML glossary from disk.
func LoadGlossaryFile(path string) (*Glossary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &GlossaryError{Message: "reading glossary file", Cause: err}
	}
	return LoadGlossary(data)
}

// MustLoadGlossary is like LoadGlossary but panics on invalid data.
func MustLoadGlossary(data []byte) *Glossary {
	g, err := LoadGlossary(data)
	if err != nil {
		panic(err)
	}
	return g
}

// DefaultGlossary returns the built-in MSME compliance glossary (GST, FSSAI, PAN, MSME).
func DefaultGlossary() *Glossary {
	return defaultGlossary()
}

// Terms returns the acronyms in match order.
func (g *Glossary) Terms() []string {
	terms := make([]string, len(g.entries))
	for i, e := range g.entries {
		terms[i] = e.Term
	}
	return terms
}

// Len returns the number of entries.
func (g *Glossary) Len() int {
	return len(g.entries)
}

// Gloss returns the localized gloss for term, or the bare term when the
// language has none.
func (g *Glossary) Gloss(term, lang string) string {
	for _, e := range g.entries {
		if e.Term != term {
			continue
		}
		if gloss, ok := e.Glosses[lang]; ok && gloss != "" {
			return gloss
		}
		return term
	}
	return term
}

// Mask replaces every known acronym in text with a placeholder token.
//
// Matching is a case-sensitive substring search without word boundaries.
// All occurrences of one acronym share a single token, so repeated acronyms
// are restored with the same gloss. Terms are only searched in text that is
// not already a token, so a later term never rewrites an earlier token.
func (g *Glossary) Mask(text, lang string) (string, Placeholders) {
	var p Placeholders
	if g == nil || len(g.entries) == 0 {
		return text, p
	}

	pieces := []maskPiece{{text: text}}
	next := 0
	for _, e := range g.entries {
		if e.Term == "" || !containsUnmasked(pieces, e.Term) {
			continue
		}

		var token string
		token, next = newPlaceholderToken(text, next)
		p.add(token, g.Gloss(e.Term, lang))
		pieces = maskTerm(pieces, e.Term, token)
	}

	var b strings.Builder
	for _, piece := range pieces {
		b.WriteString(piece.text)
	}
	return b.String(), p
}

// maskPiece is a run of the masked text; token pieces are never searched again.
type maskPiece struct {
	text  string
	token bool
}

func containsUnmasked(pieces []maskPiece, term string) bool {
	for _, piece := range pieces {
		if !piece.token && strings.Contains(piece.text, term) {
			return true
		}
	}
	return false
}

// maskTerm splits every plain piece on term, inserting token between the parts.
func maskTerm(pieces []maskPiece, term, token string) []maskPiece {
	out := make([]maskPiece, 0, len(pieces))
	for _, piece := range pieces {
		if piece.token || !strings.Contains(piece.text, term) {
			out = append(out, piece)
			continue
		}
		for i, part := range strings.Split(piece.text, term) {
			if i > 0 {
				out = append(out, maskPiece{text: token, token: true})
			}
			if part != "" {
				out = append(out, maskPiece{text: part})
			}
		}
	}
	return out
}

// newPlaceholderToken returns the first token at or after index n that does not
// occur in source, along with the next free index.
func newPlaceholderToken(source string, n int) (string, int) {
	for {
		token := fmt.Sprintf("[[GL%d]]", n)
		n++
		if !strings.Contains(source, token) {
			return token, n
		}
	}
}

// Placeholders maps the tokens of a single Mask call back to their glosses.
// The zero value is an empty mapping.
type Placeholders struct {
	tokens  []string
	glosses []string
}

func (p *Placeholders) add(token, gloss string) {
	p.tokens = append(p.tokens, token)
	p.glosses = append(p.glosses, gloss)
}

// Len returns the number of allocated tokens.
func (p Placeholders) Len() int {
	return len(p.tokens)
}

// Tokens returns the allocated tokens in allocation order.
func (p Placeholders) Tokens() []string {
	return append([]string(nil), p.tokens...)
}

// Restore replaces every token in translated with its gloss in a single pass,
// so text inside a gloss is never taken for another token. Tokens missing
// from translated are skipped; mangled tokens are left as the backend returned them.
func (p Placeholders) Restore(translated string) string {
	if len(p.tokens) == 0 {
		return translated
	}

	pairs := make([]string, 0, 2*len(p.tokens))
	for i, token := range p.tokens {
		pairs = append(pairs, token, p.glosses[i])
	}
	return strings.NewReplacer(pairs...).Replace(translated)
}
