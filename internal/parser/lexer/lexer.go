package lexer

import (
	"fmt"
	"strings"
)

type TokenType int

const (
	// Special
	ILLEGAL TokenType = iota
	EOF

	// Literals
	WORD   // file names, column names, operators, values
	STRING // 'quoted value' or "quoted value"
	NUMBER // 10, -3

	// Commands
	LOAD
	ADD
	VIEW
	META
	SORT
	FILTER
	DELNULL
	DELCOLUM
	QUARTER
	PREFIX
	SAVE
	LIST
	NAME
	QUIT
)

var keywords = map[string]TokenType{
	"LOAD":     LOAD,
	"ADD":      ADD,
	"VIEW":     VIEW,
	"META":     META,
	"SORT":     SORT,
	"FILTER":   FILTER,
	"DELNULL":  DELNULL,
	"DELCOLUM": DELCOLUM,
	"QUARTER":  QUARTER,
	"PREFIX":   PREFIX,
	"SAVE":     SAVE,
	"LIST":     LIST,
	"NAME":     NAME,
	"QUIT":     QUIT,
	"EXIT":     QUIT,
}

type Token struct {
	Type    TokenType
	Literal string
	Column  int
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%d, %q)", t.Type, t.Literal)
}

// IsKeyword reports whether the token is a command word
func (t Token) IsKeyword() bool {
	return t.Type >= LOAD
}

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	column       int
}

func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition += 1
	l.column++
}

func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	tok := Token{Column: l.column}

	switch l.ch {
	case 0:
		tok.Type = EOF
	case '\'', '"':
		lit, ok := l.readString(l.ch)
		if !ok {
			tok.Type = ILLEGAL
			tok.Literal = lit
			return tok
		}
		tok.Type = STRING
		tok.Literal = lit
	default:
		tok.Literal = l.readWord()
		tok.Type = LookupWord(tok.Literal)
	}
	return tok
}

func (l *Lexer) skipWhitespace() {
	for isWhitespace(l.ch) {
		l.readChar()
	}
}

// readWord consumes a run of non-blank characters
func (l *Lexer) readWord() string {
	position := l.position
	for l.ch != 0 && !isWhitespace(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readString consumes a quoted literal. ok is false when the closing
// quote is missing; the partial literal is returned for the error message.
func (l *Lexer) readString(quote byte) (string, bool) {
	position := l.position + 1
	for {
		l.readChar()
		if l.ch == quote || l.ch == 0 {
			break
		}
	}
	lit := l.input[position:l.position]
	if l.ch != quote {
		return lit, false
	}

	// Consume the closing quote
	l.readChar()
	return lit, true
}

// LookupWord classifies a bare word as a command keyword, a number or a
// plain word. Keywords are case insensitive.
func LookupWord(word string) TokenType {
	if tok, ok := keywords[strings.ToUpper(word)]; ok {
		return tok
	}
	if isInteger(word) {
		return NUMBER
	}
	return WORD
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isInteger(s string) bool {
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// Helper to tokenize entire string at once
func Tokenize(input string) ([]Token, error) {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			break
		}
		if tok.Type == ILLEGAL {
			return nil, fmt.Errorf("unterminated string at col %d: %s", tok.Column, tok.Literal)
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
