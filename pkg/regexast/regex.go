// Package regexast is the external regex ADT the state-elimination
// extractor in pkg/pcg builds: a plain algebraic datatype (literal,
// epsilon, zero, concatenation, alternation, star) over the location
// alphabet, with smart constructors that apply the obvious identities so
// elimination doesn't accumulate useless structure as it runs.
package regexast

import "strings"

// Regex is any node of the regex ADT.
type Regex interface {
	String() string
}

// Lit matches exactly one location symbol.
type Lit string

func (l Lit) String() string { return string(l) }

// Eps matches the empty word.
type Eps struct{}

func (Eps) String() string { return "ε" }

// Zero matches nothing — the regex of an unreachable pair.
type Zero struct{}

func (Zero) String() string { return "∅" }

// Concat matches its elements in sequence.
type Concat []Regex

func (c Concat) String() string {
	parts := make([]string, len(c))
	for i, r := range c {
		parts[i] = wrapIfAlt(r)
	}
	return strings.Join(parts, "·")
}

// Alt matches any one of its alternatives.
type Alt []Regex

func (a Alt) String() string {
	parts := make([]string, len(a))
	for i, r := range a {
		parts[i] = r.String()
	}
	return strings.Join(parts, "|")
}

// Star matches zero or more repetitions of R.
type Star struct{ R Regex }

func (s Star) String() string {
	return "(" + s.R.String() + ")*"
}

func wrapIfAlt(r Regex) string {
	if _, ok := r.(Alt); ok {
		return "(" + r.String() + ")"
	}
	return r.String()
}

// Literal builds a single-symbol regex, or Epsilon when loc is empty —
// the convention the extractor uses for hops through synthetic nodes that
// carry no location of their own.
func Literal(loc string) Regex {
	if loc == "" {
		return Eps{}
	}
	return Lit(loc)
}

// Concatenate builds a·b, applying the identities a·ε=a, ε·b=b and
// a·∅=∅=∅·b, and flattening nested Concat nodes.
func Concatenate(a, b Regex) Regex {
	if isZero(a) || isZero(b) {
		return Zero{}
	}
	if isEps(a) {
		return b
	}
	if isEps(b) {
		return a
	}
	var parts []Regex
	if ac, ok := a.(Concat); ok {
		parts = append(parts, ac...)
	} else {
		parts = append(parts, a)
	}
	if bc, ok := b.(Concat); ok {
		parts = append(parts, bc...)
	} else {
		parts = append(parts, b)
	}
	return Concat(parts)
}

// ConcatAll folds Concatenate over rs left to right, returning Eps for an
// empty argument list.
func ConcatAll(rs ...Regex) Regex {
	out := Regex(Eps{})
	for _, r := range rs {
		out = Concatenate(out, r)
	}
	return out
}

// Union builds a|b, applying the identities a|∅=a=∅|b and deduplicating
// identical alternatives by their rendered string, and flattening nested
// Alt nodes.
func Union(a, b Regex) Regex {
	if isZero(a) {
		return b
	}
	if isZero(b) {
		return a
	}
	var parts []Regex
	seen := make(map[string]bool)
	add := func(r Regex) {
		if s, ok := r.(Alt); ok {
			for _, p := range s {
				if !seen[p.String()] {
					seen[p.String()] = true
					parts = append(parts, p)
				}
			}
			return
		}
		if !seen[r.String()] {
			seen[r.String()] = true
			parts = append(parts, r)
		}
	}
	add(a)
	add(b)
	if len(parts) == 1 {
		return parts[0]
	}
	return Alt(parts)
}

// Repeat builds r*, applying the identities ∅*=ε=ε* and collapsing an
// already-starred argument.
func Repeat(r Regex) Regex {
	if isZero(r) || isEps(r) {
		return Eps{}
	}
	if s, ok := r.(Star); ok {
		return s
	}
	return Star{R: r}
}

func isZero(r Regex) bool { _, ok := r.(Zero); return ok }
func isEps(r Regex) bool  { _, ok := r.(Eps); return ok }
