// Package format lays out SQL annotated with FlowHigh layout markers.
//
// The analyser returns the submitted SQL with single-rune markers woven in:
// line breaks, clause breaks, alignment anchors and nesting levels. Format
// turns that into text for one of three styles, and Strip removes the
// markers without any layout.
package format

import (
	"fmt"
	"strings"
)

// Layout markers.
const (
	MarkBreak    = '✖' // line break
	MarkClause   = '❌' // clause break, skipped at the start of output
	MarkAnchor   = '⚓' // alignment anchor
	MarkOpen     = '➕' // open a nesting level
	MarkClose    = '➖' // close a nesting level
	MarkOptional = '⛓' // line break in comfortable style only
	MarkOperator = '⚫' // operator padding, none in compact style and one blank otherwise
	MarkHang     = '←' // the next level hangs below the keyword
	MarkKeyword  = '⧆' // keyword continuation
)

// Style selects how dense the output is.
type Style int

const (
	// Compact collapses operator padding and optional breaks.
	Compact Style = iota
	// Balanced keeps operator padding.
	Balanced
	// Comfortable also honours optional breaks.
	Comfortable
)

var styleNames = map[Style]string{
	Compact:     "compact",
	Balanced:    "balanced",
	Comfortable: "comfortable",
}

func (s Style) String() string {
	if n, ok := styleNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle parses a style name, case-insensitively.
func ParseStyle(name string) (Style, error) {
	for s, n := range styleNames {
		if strings.EqualFold(n, name) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown format style %q (want compact, balanced or comfortable)", name)
}

// Styles lists the style names.
func Styles() []string {
	return []string{Compact.String(), Balanced.String(), Comfortable.String()}
}

func isMarker(r rune) bool {
	switch r {
	case MarkBreak, MarkClause, MarkAnchor, MarkOpen, MarkClose,
		MarkOptional, MarkOperator, MarkHang, MarkKeyword:
		return true
	}
	return false
}

// segment is either a marker or a run of text between markers.
type segment struct {
	marker rune
	text   string
}

func split(marked string) []segment {
	var out []segment
	start := 0
	for i, r := range marked {
		if !isMarker(r) {
			continue
		}
		if i > start {
			out = append(out, segment{text: marked[start:i]})
		}
		out = append(out, segment{marker: r})
		start = i + len(string(r))
	}
	if start < len(marked) {
		out = append(out, segment{text: marked[start:]})
	}
	return out
}

// Format renders marked SQL in the given style.
func Format(marked string, style Style) string {
	p := newPrinter()
	segs := split(marked)
	for i := 0; i < len(segs); i++ {
		s := segs[i]
		switch s.marker {
		case 0:
			p.write(s.text)
		case MarkBreak:
			i = p.lineBreak(segs, i)
		case MarkClause:
			i = p.clauseBreak(segs, i)
		case MarkOptional:
			if style == Comfortable {
				i = p.lineBreak(segs, i)
			}
		case MarkAnchor:
			skip := 0
			if i+1 < len(segs) && segs[i+1].marker == 0 {
				next := segs[i+1].text
				skip = len(next) - len(strings.TrimLeft(next, " "))
			}
			p.mark(skip)
		case MarkOpen:
			p.indent()
		case MarkClose:
			p.dedent()
		case MarkOperator:
			if style == Compact {
				p.operatorPad(0)
			} else {
				p.operatorPad(1)
			}
		case MarkHang:
			p.hang = true
		}
	}
	return p.String()
}

// aligned reports the word between segs[i] and a following anchor, and the
// index of that anchor.
func aligned(segs []segment, i int) (word string, anchor int, ok bool) {
	j := i + 1
	if j < len(segs) && segs[j].marker == 0 {
		word = segs[j].text
		j++
	}
	if j < len(segs) && segs[j].marker == MarkAnchor {
		return word, j, true
	}
	return "", i, false
}

// lineBreak starts a new line. A word followed by an anchor is right
// aligned on the anchor.
func (p *Printer) lineBreak(segs []segment, i int) int {
	word, next, ok := aligned(segs, i)
	p.writeln()
	if !ok {
		return i
	}
	p.align(word)
	return next
}

// clauseBreak is like lineBreak but does not break at the start of the
// output.
func (p *Printer) clauseBreak(segs []segment, i int) int {
	if p.output.Len() > 0 {
		p.writeln()
	}
	word, next, ok := aligned(segs, i)
	if !ok {
		return i
	}
	p.align(word)
	return next
}

// Strip removes every layout marker and nothing else.
func Strip(marked string) string {
	return strings.Map(func(r rune) rune {
		if isMarker(r) {
			return -1
		}
		return r
	}, marked)
}
