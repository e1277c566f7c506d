// Modul: search_match.go
// Beschreibung: Token-Matching fuer Suchanfragen.
// Ein Kommando passt, wenn es alle Tokens in Reihenfolge als Teilstrings
// enthaelt, also dem Muster .*tok1.*tok2.* entspricht.

package history

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Pattern ist eine kompilierte Suchanfrage
type Pattern struct {
	tokens []string
	re     *regexp2.Regexp
}

// NewPattern zerlegt text an Leerraum und kompiliert das Muster.
// Ein leerer Text passt auf jedes Kommando.
func NewPattern(text string) (*Pattern, error) {
	tokens := strings.Fields(text)
	p := &Pattern{tokens: tokens}
	if len(tokens) == 0 {
		return p, nil
	}

	// Atomare lazy Gruppen: jedes Token bindet an seine frueheste Stelle nach
	// dem vorigen und wird nie neu platziert. Linear in der Kommandolaenge.
	var sb strings.Builder
	sb.WriteString("^")
	for _, tok := range tokens {
		sb.WriteString("(?>.*?")
		sb.WriteString(regexp2.Escape(tok))
		sb.WriteString(")")
	}

	re, err := regexp2.Compile(sb.String(), regexp2.Singleline)
	if err != nil {
		return nil, fmt.Errorf("compile pattern for %q: %w", text, err)
	}
	p.re = re
	return p, nil
}

func (p *Pattern) Tokens() []string {
	return p.tokens
}

// Match prueft, ob command alle Tokens in Reihenfolge enthaelt
func (p *Pattern) Match(command string) (bool, error) {
	if p.re == nil {
		return true, nil
	}
	ok, err := p.re.MatchString(command)
	if err != nil {
		return false, fmt.Errorf("match %q: %w", command, err)
	}
	return ok, nil
}
