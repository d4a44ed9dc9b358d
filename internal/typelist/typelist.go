// Package typelist decodes a text file that lists canonical scalar type names.
//
// The format is:
//
//	// Comments are allowed on their own line or after content.
//	types {
//		i32 u32 real
//		f64
//	}
//
// Braces and "//" do not need surrounding whitespace, so "types{f32}" is a valid list.
package typelist

import (
	"fmt"
	"strings"

	"github.com/gostdlib/base/context"
	"github.com/johnsiilver/halfpike"

	"github.com/bearlytools/scalar"
	"github.com/bearlytools/scalar/errors"
)

// List is a decoded type list. It implements halfpike's Validator.
type List struct {
	// Kinds are the resolved kinds in the order they appeared.
	Kinds []scalar.Kind
	// Names are the names as written, index aligned with Kinds.
	Names []string

	seen   map[scalar.Kind]string
	closed bool
}

// Parse decodes content into a List.
func Parse(ctx context.Context, content string) (*List, error) {
	l := &List{seen: map[scalar.Kind]string{}}
	if err := halfpike.Parse(ctx, content, l); err != nil {
		return nil, errors.E(ctx, errors.CatUser, errors.TypeParse, err)
	}
	return l, nil
}

// Validate implements halfpike.Validator.
func (l *List) Validate() error {
	if !l.closed {
		return fmt.Errorf("did not find a closed 'types' block")
	}
	return nil
}

// Start is the start point for reading the list.
func (l *List) Start(ctx context.Context, p *halfpike.Parser) halfpike.ParseFn {
	return l.parseOpen
}

// words returns the values on a line, ignoring whitespace and anything after a comment.
// Braces are split out of the values they are attached to.
func words(line halfpike.Line) []string {
	var out []string
	for _, item := range line.Items {
		v := item.Val
		i := strings.Index(v, "//")
		if i >= 0 {
			v = v[:i]
		}
		out = splitBraces(out, v)
		if i >= 0 {
			break
		}
	}
	return out
}

func splitBraces(out []string, v string) []string {
	for {
		i := strings.IndexAny(v, "{}")
		if i < 0 {
			return appendWord(out, v)
		}
		out = appendWord(out, v[:i])
		out = append(out, v[i:i+1])
		v = v[i+1:]
	}
}

func appendWord(out []string, v string) []string {
	if v = strings.TrimSpace(v); v != "" {
		out = append(out, v)
	}
	return out
}

// next returns the next line holding content, skipping blank and comment lines. ok is false
// at EOF.
func (l *List) next(p *halfpike.Parser) (line halfpike.Line, w []string, ok bool) {
	for {
		line = p.Next()
		if p.EOF(line) {
			return line, nil, false
		}
		if w = words(line); len(w) > 0 {
			return line, w, true
		}
	}
}

func (l *List) parseOpen(ctx context.Context, p *halfpike.Parser) halfpike.ParseFn {
	line, w, ok := l.next(p)
	if !ok {
		return p.Errorf("error: expected 'types {' before EOF")
	}
	if len(w) < 2 || w[0] != "types" || w[1] != "{" {
		return p.Errorf("[Line %d] error: got %q, want: 'types {'", line.LineNum, strings.Join(w, " "))
	}
	if len(w) > 2 {
		return l.names(p, line, w[2:])
	}
	return l.parseNames
}

func (l *List) parseNames(ctx context.Context, p *halfpike.Parser) halfpike.ParseFn {
	line, w, ok := l.next(p)
	if !ok {
		return p.Errorf("error: unexpected EOF before close of 'types' block")
	}
	return l.names(p, line, w)
}

// names adds the names in w, which came from line. It returns parseEnd once the block closes.
func (l *List) names(p *halfpike.Parser, line halfpike.Line, w []string) halfpike.ParseFn {
	for i, name := range w {
		if name == "}" {
			if i != len(w)-1 {
				return p.Errorf("[Line %d] error: unexpected %q after '}'", line.LineNum, strings.Join(w[i+1:], " "))
			}
			if len(l.Kinds) == 0 {
				return p.Errorf("[Line %d] error: 'types' block cannot be empty", line.LineNum)
			}
			l.closed = true
			return l.parseEnd
		}
		if name == "{" {
			return p.Errorf("[Line %d] error: unexpected '{' inside the 'types' block", line.LineNum)
		}
		if err := l.add(name); err != nil {
			return p.Errorf("[Line %d] error: %s", line.LineNum, err)
		}
	}
	return l.parseNames
}

func (l *List) parseEnd(ctx context.Context, p *halfpike.Parser) halfpike.ParseFn {
	line, w, ok := l.next(p)
	if ok {
		return p.Errorf("[Line %d] error: unexpected %q after the 'types' block", line.LineNum, strings.Join(w, " "))
	}
	return nil
}

func (l *List) add(name string) error {
	k, err := scalar.ParseKind(name)
	if err != nil {
		return err
	}
	if prev, ok := l.seen[k]; ok {
		return fmt.Errorf("%q is the same type as %q (%s)", name, prev, k)
	}
	l.seen[k] = name
	l.Kinds = append(l.Kinds, k)
	l.Names = append(l.Names, name)
	return nil
}
