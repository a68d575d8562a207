/*
File    : hydrogen/lexer/lexer.go
Package : lexer
*/
package lexer

import (
	"github.com/prakhar479/hydrogen/internal/diag"
)

// Lexer scans Hydrogen source text into tokens. Scanning is single-pass
// and keeps a running "accumulator" buffer: letters, digits, and
// underscores are appended to the accumulator as they're seen, and the
// accumulator is only classified and flushed into a token once whitespace,
// ';', or a punctuation operator is reached. This mirrors the spec's
// description of the scanner exactly (spec.md §4.1) and is a different
// scanning strategy from a conventional single-character dispatch lexer:
// there is no token boundary until something *other* than an identifier
// character appears.
type Lexer struct {
	src    string
	pos    int // index of the current byte
	length int
	line   int
	col    int

	tokens []Token

	acc     []byte
	accLine int
	accCol  int
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{src: src, length: len(src), line: 1, col: 1}
}

// Lex tokenizes src in one pass and returns the ordered token stream. The
// stream carries no explicit EOF sentinel (spec.md §3): end of stream is
// positional. Lex returns the first *diag.Error encountered and stops
// scanning immediately — compilation is batch-only (spec.md §7).
func Lex(src string) ([]Token, error) {
	l := New(src)
	return l.run()
}

func (l *Lexer) run() ([]Token, error) {
	for l.pos < l.length {
		c := l.current()

		switch {
		case isWhitespace(c):
			if err := l.flush(); err != nil {
				return nil, err
			}
			l.advance()

		case c == ';':
			if err := l.flush(); err != nil {
				return nil, err
			}
			l.emitOp(EOS, ";")
			l.advance()

		case c == '(':
			if err := l.flushOp(LPAREN, "("); err != nil {
				return nil, err
			}

		case c == ')':
			if err := l.flushOp(RPAREN, ")"); err != nil {
				return nil, err
			}

		case c == '{':
			if err := l.flushOp(LBRACE, "{"); err != nil {
				return nil, err
			}

		case c == '}':
			if err := l.flushOp(RBRACE, "}"); err != nil {
				return nil, err
			}

		case c == '*':
			if err := l.flushOp(STAR, "*"); err != nil {
				return nil, err
			}

		case c == '%':
			if err := l.flushOp(PERCENT, "%"); err != nil {
				return nil, err
			}

		case c == '+':
			if err := l.flushOp(PLUS, "+"); err != nil {
				return nil, err
			}

		case c == '-':
			if err := l.flushOp(MINUS, "-"); err != nil {
				return nil, err
			}

		case c == '<':
			if err := l.flushOp(LT, "<"); err != nil {
				return nil, err
			}

		case c == '>':
			if err := l.flushOp(GT, ">"); err != nil {
				return nil, err
			}

		case c == '=':
			if err := l.flush(); err != nil {
				return nil, err
			}
			if l.peek() == '=' {
				line, col := l.line, l.col
				l.advance()
				l.advance()
				l.tokens = append(l.tokens, NewTokenWithPos(EQ, "==", line, col))
			} else {
				l.emitOp(ASSIGN, "=")
				l.advance()
			}

		case c == '/':
			if l.peek() == '>' {
				if err := l.flush(); err != nil {
					return nil, err
				}
				l.skipLineComment()
			} else {
				return nil, diag.Newf(diag.Lexical, diag.Pos{Line: l.line, Col: l.col},
					"unrecognized character %q", c)
			}

		case isAccumulatorChar(c):
			if len(l.acc) == 0 {
				l.accLine, l.accCol = l.line, l.col
			}
			l.acc = append(l.acc, c)
			l.advance()

		default:
			return nil, diag.Newf(diag.Lexical, diag.Pos{Line: l.line, Col: l.col},
				"unrecognized character %q", c)
		}
	}

	if err := l.flush(); err != nil {
		return nil, err
	}
	return l.tokens, nil
}

// flushOp flushes the accumulator, then emits the given single-character
// operator token and advances past it. Every punctuation operator in the
// grammar (other than '=', which needs one character of lookahead) follows
// this same shape.
func (l *Lexer) flushOp(kind Kind, lexeme string) error {
	if err := l.flush(); err != nil {
		return err
	}
	l.emitOp(kind, lexeme)
	l.advance()
	return nil
}

// emitOp appends an operator token at the lexer's current position.
func (l *Lexer) emitOp(kind Kind, lexeme string) {
	l.tokens = append(l.tokens, NewTokenWithPos(kind, lexeme, l.line, l.col))
}

// flush classifies the accumulator (if non-empty) into a single token and
// appends it, then resets the accumulator. A lexeme starting with a digit
// must be all-digits or it's a malformed integer (spec.md §4.1); otherwise
// the keyword table decides between a keyword kind and IDENT.
func (l *Lexer) flush() error {
	if len(l.acc) == 0 {
		return nil
	}
	lexeme := string(l.acc)
	pos := diag.Pos{Line: l.accLine, Col: l.accCol}
	l.acc = l.acc[:0]

	if isDigit(lexeme[0]) {
		if !isAllDigits(lexeme) {
			return diag.Newf(diag.Lexical, pos, "malformed integer literal %q", lexeme)
		}
		l.tokens = append(l.tokens, NewTokenWithPos(INT, lexeme, pos.Line, pos.Col))
		return nil
	}

	l.tokens = append(l.tokens, NewTokenWithPos(lookupKeyword(lexeme), lexeme, pos.Line, pos.Col))
	return nil
}

// skipLineComment consumes a "/>"-introduced comment up to, but not
// including, the next newline (spec.md §4.1, §9 — a non-standard but
// deliberate comment syntax).
func (l *Lexer) skipLineComment() {
	l.advance() // '/'
	l.advance() // '>'
	for l.pos < l.length && l.current() != '\n' {
		l.advance()
	}
}

func (l *Lexer) current() byte {
	return l.src[l.pos]
}

func (l *Lexer) peek() byte {
	if l.pos+1 >= l.length {
		return 0
	}
	return l.src[l.pos+1]
}

func (l *Lexer) advance() {
	if l.src[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}
