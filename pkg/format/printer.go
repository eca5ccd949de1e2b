package format

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// riverWidth is the default anchor column of the outermost level: the end
// of the widest leading keyword, SELECT.
const riverWidth = 6

// hangWidth is how far a hanging level's anchor sits right of its parent's.
const hangWidth = 4

// level is the alignment state of one nesting depth.
type level struct {
	anchor int  // column aligned words end on
	child  int  // anchor given to an unanchored level nested inside
	minPad int  // fewest blanks before an aligned word
	guess  bool // anchor was not set by an anchor marker and may still move
}

func newLevel(anchor int, marked bool) *level {
	l := &level{anchor: anchor, child: anchor + hangWidth}
	if marked {
		l.child = anchor + 1
	}
	return l
}

// Printer lays out marked SQL. It tracks the current column and the level
// of each nesting depth. Levels survive leaving a depth, so a later level
// at the same depth reuses them.
type Printer struct {
	output   *bytes.Buffer
	col      int
	depth    int
	levels   map[int]*level
	hang     bool
	trimmed  bool
	operator bool
}

func newPrinter() *Printer {
	return &Printer{
		output: &bytes.Buffer{},
		levels: map[int]*level{0: newLevel(riverWidth, false)},
	}
}

// String returns the output without trailing newlines.
func (p *Printer) String() string {
	return strings.TrimRight(p.output.String(), "\n")
}

func (p *Printer) write(s string) {
	if p.trimmed {
		s = strings.TrimLeft(s, " \t")
		p.trimmed = false
	}
	if s == "" {
		return
	}
	p.output.WriteString(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		p.col = utf8.RuneCountInString(s[i+1:])
		return
	}
	p.col += utf8.RuneCountInString(s)
}

// writeln ends the line. A line holding an operator loses its trailing
// blanks.
func (p *Printer) writeln() {
	if p.operator {
		p.rstrip()
	}
	p.output.WriteByte('\n')
	p.col = 0
	p.trimmed = false
	p.operator = false
}

func (p *Printer) pad(n int) {
	for i := 0; i < n; i++ {
		p.output.WriteByte(' ')
	}
	p.col += max(n, 0)
}

// rstrip drops blanks at the end of the current line.
func (p *Printer) rstrip() {
	b := p.output.Bytes()
	n := len(b)
	for n > 0 && (b[n-1] == ' ' || b[n-1] == '\t') {
		n--
	}
	p.col -= len(b) - n
	p.output.Truncate(n)
}

// operatorPad collapses the blanks around an operator marker to pad
// blanks and marks the line as holding an operator.
func (p *Printer) operatorPad(pad int) {
	p.rstrip()
	p.write(strings.Repeat(" ", pad))
	p.trimmed = true
	p.operator = true
}

// level returns the level of the current depth. A depth without one takes
// the child anchor of the nearest enclosing level, as a guess.
func (p *Printer) level() *level {
	if l, ok := p.levels[p.depth]; ok {
		return l
	}
	parent := p.levels[0]
	for d := p.depth - 1; d >= 0; d-- {
		if l, ok := p.levels[d]; ok {
			parent = l
			break
		}
	}
	l := &level{anchor: parent.child, child: parent.child + hangWidth, guess: true}
	p.levels[p.depth] = l
	return l
}

// mark handles an anchor marker. It sets the current depth's anchor to
// the cursor when the depth has none, and moves a guessed anchor to where
// the next word starts, skip columns on. The child anchor stays put.
func (p *Printer) mark(skip int) {
	l, ok := p.levels[p.depth]
	switch {
	case !ok:
		p.levels[p.depth] = newLevel(p.col, true)
	case l.guess:
		l.anchor = p.col + skip
		l.guess = false
	}
}

func (p *Printer) indent() {
	p.depth++
	if !p.hang {
		return
	}
	p.hang = false
	if _, ok := p.levels[p.depth]; ok {
		return
	}
	p.depth--
	parent := p.level().anchor
	p.depth++
	l := newLevel(parent+hangWidth, false)
	l.minPad = hangWidth - 1
	p.levels[p.depth] = l
}

func (p *Printer) dedent() {
	if p.depth > 0 {
		p.depth--
	}
}

// align writes word so that it ends on the current anchor, keeping at
// least the level's minimum padding.
func (p *Printer) align(word string) {
	l := p.level()
	p.pad(max(l.anchor-p.col-utf8.RuneCountInString(word), l.minPad))
	p.write(word)
}
