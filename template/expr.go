package template

import (
	"fmt"
	"strings"
	"unicode"
)

// exprCall is a parsed function expression: a function name plus its
// static arguments, e.g. split(', ', 2)
type exprCall struct {
	name string
	args []string
}

// parseExpr parses a template function expression of the form
//   name
//   name(arg, arg, ...)
// where each argument is a quoted string ('...' or "...") or a bare
// token such as a number. Quoted arguments support backslash escapes.
func parseExpr(src string) (*exprCall, error) {
	s := &exprScanner{src: []rune(strings.TrimSpace(src))}
	name, err := s.scanIdent()
	if err != nil {
		return nil, err
	}
	call := &exprCall{name: name}
	s.skipSpace()
	if s.eof() {
		return call, nil
	}
	if s.peek() != '(' {
		return nil, fmt.Errorf("Unexpected character %q after function name %s", s.peek(), name)
	}
	s.next()
	s.skipSpace()
	if !s.eof() && s.peek() == ')' {
		s.next()
	} else {
		for {
			arg, err := s.scanArg()
			if err != nil {
				return nil, err
			}
			call.args = append(call.args, arg)
			s.skipSpace()
			if s.eof() {
				return nil, fmt.Errorf("Unterminated argument list in expression %q", src)
			}
			if s.peek() == ',' {
				s.next()
				continue
			}
			if s.peek() == ')' {
				s.next()
				break
			}
			return nil, fmt.Errorf("Unexpected character %q in argument list of expression %q", s.peek(), src)
		}
	}
	s.skipSpace()
	if !s.eof() {
		return nil, fmt.Errorf("Trailing characters after expression %q", src)
	}
	return call, nil
}

type exprScanner struct {
	src []rune
	pos int
}

func (s *exprScanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *exprScanner) peek() rune {
	return s.src[s.pos]
}

func (s *exprScanner) next() rune {
	r := s.src[s.pos]
	s.pos++
	return r
}

func (s *exprScanner) skipSpace() {
	for !s.eof() && unicode.IsSpace(s.peek()) {
		s.pos++
	}
}

func isIdentRune(r rune, first bool) bool {
	if r == '_' || unicode.IsLetter(r) {
		return true
	}
	return !first && unicode.IsDigit(r)
}

func (s *exprScanner) scanIdent() (string, error) {
	s.skipSpace()
	if s.eof() || !isIdentRune(s.peek(), true) {
		return "", fmt.Errorf("Expression must begin with a function name")
	}
	var ident strings.Builder
	for !s.eof() && isIdentRune(s.peek(), false) {
		ident.WriteRune(s.next())
	}
	return ident.String(), nil
}

func (s *exprScanner) scanArg() (string, error) {
	s.skipSpace()
	if s.eof() {
		return "", fmt.Errorf("Expected an argument")
	}
	if s.peek() == '\'' || s.peek() == '"' {
		return s.scanQuoted(s.next())
	}
	// bare token: runs until a comma, closing paren or whitespace
	var arg strings.Builder
	for !s.eof() && s.peek() != ',' && s.peek() != ')' && !unicode.IsSpace(s.peek()) {
		arg.WriteRune(s.next())
	}
	if arg.Len() == 0 {
		return "", fmt.Errorf("Expected an argument")
	}
	return arg.String(), nil
}

func (s *exprScanner) scanQuoted(quote rune) (string, error) {
	var arg strings.Builder
	for !s.eof() {
		r := s.next()
		if r == quote {
			return arg.String(), nil
		}
		if r == '\\' {
			if s.eof() {
				break
			}
			switch e := s.next(); e {
			case 'n':
				arg.WriteRune('\n')
			case 't':
				arg.WriteRune('\t')
			default:
				arg.WriteRune(e)
			}
			continue
		}
		arg.WriteRune(r)
	}
	return "", fmt.Errorf("Unterminated %q-quoted argument", quote)
}
