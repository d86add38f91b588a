package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leengari/mini-dataframe/internal/domain/errors"
	"github.com/leengari/mini-dataframe/internal/parser/ast"
	"github.com/leengari/mini-dataframe/internal/parser/lexer"
)

type Parser struct {
	tokens  []lexer.Token
	curPos  int
	curTok  lexer.Token
	peekTok lexer.Token
}

func New(tokens []lexer.Token) *Parser {
	p := &Parser{tokens: tokens, curPos: 0}
	// Read two tokens to set curTok and peekTok
	p.nextToken()
	p.nextToken()
	return p
}

// ParseLine tokenizes and parses one command line. A blank line yields a
// nil statement and no error.
func ParseLine(line string) (ast.Statement, error) {
	tokens, err := lexer.Tokenize(line)
	if err != nil {
		return nil, &errors.SyntaxError{Reason: err.Error()}
	}
	if len(tokens) == 0 {
		return nil, nil
	}
	return New(tokens).Parse()
}

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	if p.curPos < len(p.tokens) {
		p.peekTok = p.tokens[p.curPos]
		p.curPos++
	} else {
		p.peekTok = lexer.Token{Type: lexer.EOF}
	}
}

func (p *Parser) Parse() (ast.Statement, error) {
	var (
		stmt ast.Statement
		err  error
	)

	switch p.curTok.Type {
	case lexer.LOAD:
		stmt, err = p.parseLoad()
	case lexer.ADD:
		stmt, err = p.parseAdd()
	case lexer.VIEW:
		stmt, err = p.parseView()
	case lexer.META:
		stmt, err = p.parseBare(&ast.MetaStatement{})
	case lexer.SORT:
		stmt, err = p.parseSort()
	case lexer.FILTER:
		stmt, err = p.parseFilter()
	case lexer.DELNULL:
		stmt, err = p.parseDropNull()
	case lexer.DELCOLUM:
		stmt, err = p.parseDropColumn()
	case lexer.QUARTER:
		stmt, err = p.parseQuarter()
	case lexer.PREFIX:
		stmt, err = p.parsePrefix()
	case lexer.SAVE:
		stmt, err = p.parseSave()
	case lexer.LIST:
		stmt, err = p.parseBare(&ast.ListStatement{})
	case lexer.NAME:
		stmt, err = p.parseName()
	case lexer.QUIT:
		stmt, err = p.parseBare(&ast.QuitStatement{})
	case lexer.EOF:
		return nil, &errors.SyntaxError{Reason: "empty command"}
	default:
		stmt, err = p.parseSwitch()
	}
	if err != nil {
		return nil, err
	}

	if p.curTok.Type != lexer.EOF {
		return nil, p.syntaxError(stmt.TokenLiteral(), fmt.Sprintf("unexpected argument %q", p.curTok.Literal))
	}
	return stmt, nil
}

func (p *Parser) parseLoad() (*ast.LoadStatement, error) {
	stmt := &ast.LoadStatement{}

	// LOAD
	p.nextToken()

	path, err := p.expectArgument("load", "file")
	if err != nil {
		return nil, err
	}
	stmt.Path = path

	sep, err := p.optionalSeparator("load")
	if err != nil {
		return nil, err
	}
	stmt.Separator = sep
	return stmt, nil
}

func (p *Parser) parseAdd() (*ast.AddStatement, error) {
	stmt := &ast.AddStatement{}

	// ADD
	p.nextToken()

	path, err := p.expectArgument("add", "file")
	if err != nil {
		return nil, err
	}
	stmt.Path = path

	sep, err := p.optionalSeparator("add")
	if err != nil {
		return nil, err
	}
	stmt.Separator = sep
	return stmt, nil
}

func (p *Parser) parseView() (*ast.ViewStatement, error) {
	stmt := &ast.ViewStatement{}

	// VIEW
	p.nextToken()

	if p.curTok.Type == lexer.EOF {
		return stmt, nil
	}
	n, err := p.expectNumber("view", "n")
	if err != nil {
		return nil, err
	}
	stmt.Rows = n
	stmt.HasRows = true
	return stmt, nil
}

func (p *Parser) parseSort() (*ast.SortStatement, error) {
	stmt := &ast.SortStatement{}

	// SORT
	p.nextToken()

	col, err := p.expectArgument("sort", "column")
	if err != nil {
		return nil, err
	}
	stmt.Column = col

	if p.curTok.Type == lexer.EOF {
		return stmt, nil
	}
	desc, err := parseDirection(p.curTok.Literal)
	if err != nil {
		return nil, p.syntaxError("sort", err.Error())
	}
	stmt.Descending = desc
	p.nextToken()
	return stmt, nil
}

func (p *Parser) parseFilter() (*ast.FilterStatement, error) {
	stmt := &ast.FilterStatement{}

	// FILTER
	p.nextToken()

	col, err := p.expectArgument("filter", "column")
	if err != nil {
		return nil, err
	}
	stmt.Column = col

	op, err := p.expectArgument("filter", "operator")
	if err != nil {
		return nil, err
	}
	stmt.Operator = op

	val, err := p.expectArgument("filter", "value")
	if err != nil {
		return nil, err
	}
	stmt.Value = val
	return stmt, nil
}

func (p *Parser) parseDropNull() (*ast.DropNullStatement, error) {
	// DELNULL
	p.nextToken()

	col, err := p.expectArgument("delnull", "column")
	if err != nil {
		return nil, err
	}
	return &ast.DropNullStatement{Column: col}, nil
}

func (p *Parser) parseDropColumn() (*ast.DropColumnStatement, error) {
	// DELCOLUM
	p.nextToken()

	col, err := p.expectArgument("delcolum", "column")
	if err != nil {
		return nil, err
	}
	return &ast.DropColumnStatement{Column: col}, nil
}

func (p *Parser) parseQuarter() (*ast.QuarterStatement, error) {
	stmt := &ast.QuarterStatement{}

	// QUARTER
	p.nextToken()

	col, err := p.expectArgument("quarter", "date column")
	if err != nil {
		return nil, err
	}
	stmt.Column = col

	newCol, err := p.expectArgument("quarter", "new column")
	if err != nil {
		return nil, err
	}
	stmt.NewColumn = newCol
	return stmt, nil
}

func (p *Parser) parsePrefix() (*ast.PrefixStatement, error) {
	stmt := &ast.PrefixStatement{}

	// PREFIX
	p.nextToken()

	col, err := p.expectArgument("prefix", "column")
	if err != nil {
		return nil, err
	}
	stmt.Column = col

	n, err := p.expectNumber("prefix", "n")
	if err != nil {
		return nil, err
	}
	stmt.Length = n

	newCol, err := p.expectArgument("prefix", "new column")
	if err != nil {
		return nil, err
	}
	stmt.NewColumn = newCol
	return stmt, nil
}

func (p *Parser) parseSave() (*ast.SaveStatement, error) {
	stmt := &ast.SaveStatement{}

	// SAVE
	p.nextToken()

	if p.curTok.Type != lexer.EOF {
		stmt.Path = p.curTok.Literal
		p.nextToken()
	}
	return stmt, nil
}

func (p *Parser) parseName() (*ast.NameStatement, error) {
	// NAME
	p.nextToken()

	name, err := p.expectArgument("name", "new name")
	if err != nil {
		return nil, err
	}
	return &ast.NameStatement{Name: name}, nil
}

// parseSwitch treats a lone unknown word as a table name
func (p *Parser) parseSwitch() (*ast.SwitchStatement, error) {
	if p.peekTok.Type != lexer.EOF {
		return nil, &errors.SyntaxError{Reason: fmt.Sprintf("unknown command %q", p.curTok.Literal)}
	}
	stmt := &ast.SwitchStatement{Table: p.curTok.Literal}
	p.nextToken()
	return stmt, nil
}

func (p *Parser) parseBare(stmt ast.Statement) (ast.Statement, error) {
	p.nextToken()
	return stmt, nil
}

// expectArgument consumes the current token as a free-form argument.
// Command words are accepted so that columns may be named "name" or "list".
func (p *Parser) expectArgument(cmd, what string) (string, error) {
	if p.curTok.Type == lexer.EOF {
		return "", p.syntaxError(cmd, "missing "+what)
	}
	lit := p.curTok.Literal
	p.nextToken()
	return lit, nil
}

func (p *Parser) expectNumber(cmd, what string) (int, error) {
	if p.curTok.Type == lexer.EOF {
		return 0, p.syntaxError(cmd, "missing "+what)
	}
	if p.curTok.Type != lexer.NUMBER {
		return 0, &errors.InvalidArgumentError{Argument: what, Value: p.curTok.Literal, Reason: "expected an integer"}
	}
	n, err := strconv.Atoi(p.curTok.Literal)
	if err != nil {
		return 0, &errors.InvalidArgumentError{Argument: what, Value: p.curTok.Literal, Reason: "integer out of range"}
	}
	p.nextToken()
	return n, nil
}

func (p *Parser) optionalSeparator(cmd string) (byte, error) {
	if p.curTok.Type == lexer.EOF {
		return 0, nil
	}
	sep, err := parseSeparator(p.curTok.Literal)
	if err != nil {
		return 0, err
	}
	p.nextToken()
	return sep, nil
}

func (p *Parser) syntaxError(cmd, reason string) error {
	return &errors.SyntaxError{Command: cmd, Reason: reason, Usage: usage[strings.ToLower(cmd)]}
}

var usage = map[string]string{
	"load":     "load <file> [sep]",
	"add":      "add <file> [sep]",
	"view":     "view [n]",
	"meta":     "meta",
	"sort":     "sort <col> [asc|des]",
	"filter":   "filter <col> <eq|neq|gt|lt|get|let> <value>",
	"delnull":  "delnull <col>",
	"delcolum": "delcolum <col>",
	"quarter":  "quarter <dateCol> <newCol>",
	"prefix":   "prefix <col> <n> <newCol>",
	"save":     "save [file]",
	"list":     "list",
	"name":     "name <newName>",
	"quit":     "quit",
}

// Usage returns the usage line of every command, in a stable order
func Usage() []string {
	order := []string{"load", "add", "view", "meta", "sort", "filter", "delnull",
		"delcolum", "quarter", "prefix", "save", "list", "name", "quit"}
	out := make([]string, len(order))
	for i, cmd := range order {
		out[i] = usage[cmd]
	}
	return out
}
