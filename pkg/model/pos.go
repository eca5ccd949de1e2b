package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidPos is returned by ParsePos for malformed positions.
var ErrInvalidPos = errors.New("invalid position")

// Span is a decoded position: a character offset into the statement text
// and a length in characters.
type Span struct {
	Offset int
	Length int
}

// End returns the offset one past the last character of the span.
func (s Span) End() int { return s.Offset + s.Length }

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Offset, s.Length)
}

// ParsePos decodes the "<offset>-<length>" form used by pos fields.
func ParsePos(pos string) (Span, error) {
	off, length, ok := strings.Cut(pos, "-")
	if !ok {
		return Span{}, fmt.Errorf("%w: %q", ErrInvalidPos, pos)
	}
	o, err := strconv.Atoi(off)
	if err != nil || o < 0 {
		return Span{}, fmt.Errorf("%w: %q", ErrInvalidPos, pos)
	}
	l, err := strconv.Atoi(length)
	if err != nil || l < 0 || l > math.MaxInt-o {
		return Span{}, fmt.Errorf("%w: %q", ErrInvalidPos, pos)
	}
	return Span{Offset: o, Length: l}, nil
}

// Datasets returns the *Ds elements of the statement's ds collection.
func (s *Statement) Datasets() []*Ds {
	var out []*Ds
	for _, e := range s.Ds {
		if ds, ok := e.(*Ds); ok {
			out = append(out, ds)
		}
	}
	return out
}

// Label is a one-line description of n for listings: its kind followed by
// the identifying fields it carries.
func Label(n Node) string {
	var b strings.Builder
	b.WriteString(n.Kind())
	add := func(k, v string) {
		if v != "" {
			fmt.Fprintf(&b, " %s=%s", k, v)
		}
	}
	switch v := n.(type) {
	case *Ds:
		add("type", v.Type)
		add("name", v.Name)
		add("fullref", v.FullRef)
		add("alias", v.Alias)
	case *Attr:
		add("refatt", v.RefAtt)
		add("fullref", v.FullRef)
		add("refoutidx", v.RefOutIdx)
		add("alias", v.Alias)
	case *Const:
		add("value", v.Value)
	case *Op:
		add("type", v.Type)
	case *Func:
		add("name", v.Name)
		add("type", v.Type)
	case *Join:
		add("type", v.Type)
		add("subType", v.SubType)
	case *DBO:
		add("type", v.Type)
		add("name", v.Name)
	case *AntiPattern:
		add("type", v.Type)
		add("name", v.Name)
	case Stmt:
		add("pos", v.Stmt().Pos)
		return b.String()
	}
	if p, ok := n.(interface{ position() string }); ok {
		add("pos", p.position())
	}
	return b.String()
}

// PosOf returns the pos field of n for kinds that carry a single position.
func PosOf(n Node) (string, bool) {
	p, ok := n.(interface{ position() string })
	if !ok {
		return "", false
	}
	return p.position(), true
}
