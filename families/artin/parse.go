package artin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-garside/garcide/family"
)

// Parse decodes a factor word per the lexicon of spec §6 restricted to
// simple (non-negative) tokens: "D" denotes Δ, a positive integer i
// with i < n denotes the atom s_i, juxtaposition is product.
// Whitespace is ignored between tokens.
func (Family) Parse(n int, s string) (Factor, error) {
	fields := strings.Fields(s)
	f := NewIdentity(n)
	for _, tok := range fields {
		var next Factor
		switch {
		case tok == "D":
			next = NewDelta(n)
		default:
			i, err := strconv.Atoi(tok)
			if err != nil || i <= 0 || i >= n {
				return Factor{}, fmt.Errorf("%w: artin: bad token %q for n=%d", family.ErrParse, tok, n)
			}
			p := make([]int, n)
			for j := range p {
				p[j] = j
			}
			p[i-1], p[i] = p[i], p[i-1]
			next = Factor{perm: p}
		}
		product, ok := f.Product(next)
		if !ok {
			return Factor{}, fmt.Errorf("%w: artin: word %q is not a simple factor", family.ErrParse, s)
		}
		f = product
	}
	return f, nil
}

// Print encodes f as a reduced word over the Artin generators,
// obtained by repeatedly undoing one adjacent-transposition crossing
// (an insertion-sort style decomposition of the permutation).
func (Family) Print(n int, f Factor) string {
	if f.IsIdentity() {
		return ""
	}
	if f.IsDelta() {
		return "D"
	}
	perm := make([]int, n)
	copy(perm, f.perm)
	var tokens []string
	for {
		swapped := false
		for i := 0; i < n-1; i++ {
			if perm[i] > perm[i+1] {
				perm[i], perm[i+1] = perm[i+1], perm[i]
				tokens = append(tokens, strconv.Itoa(i+1))
				swapped = true
				break
			}
		}
		if !swapped {
			break
		}
	}
	return strings.Join(tokens, " ")
}
