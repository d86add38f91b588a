package ast

import (
	"bytes"
	"fmt"
	"strconv"
)

// Node is the base interface for all AST nodes
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement is one session command
type Statement interface {
	Node
	statementNode()
}

// Modifies reports whether a statement replaces or adds a table in the
// store. Read-only commands (view, meta, list, save) return false.
func Modifies(s Statement) bool {
	switch s.(type) {
	case *LoadStatement, *AddStatement, *SortStatement, *FilterStatement,
		*DropNullStatement, *DropColumnStatement, *QuarterStatement, *PrefixStatement,
		*NameStatement:
		return true
	}
	return false
}

// LoadStatement: load <file> [sep]
type LoadStatement struct {
	Path      string
	Separator byte // 0 means the configured default
}

func (s *LoadStatement) statementNode()       {}
func (s *LoadStatement) TokenLiteral() string { return "load" }
func (s *LoadStatement) String() string       { return withSeparator("load "+s.Path, s.Separator) }

// AddStatement: add <file> [sep]
type AddStatement struct {
	Path      string
	Separator byte
}

func (s *AddStatement) statementNode()       {}
func (s *AddStatement) TokenLiteral() string { return "add" }
func (s *AddStatement) String() string       { return withSeparator("add "+s.Path, s.Separator) }

// ViewStatement: view [n]
type ViewStatement struct {
	Rows    int
	HasRows bool // false means the configured default
}

func (s *ViewStatement) statementNode()       {}
func (s *ViewStatement) TokenLiteral() string { return "view" }
func (s *ViewStatement) String() string {
	if !s.HasRows {
		return "view"
	}
	return "view " + strconv.Itoa(s.Rows)
}

// MetaStatement: meta
type MetaStatement struct{}

func (s *MetaStatement) statementNode()       {}
func (s *MetaStatement) TokenLiteral() string { return "meta" }
func (s *MetaStatement) String() string       { return "meta" }

// SortStatement: sort <col> [asc|des]
type SortStatement struct {
	Column     string
	Descending bool
}

func (s *SortStatement) statementNode()       {}
func (s *SortStatement) TokenLiteral() string { return "sort" }
func (s *SortStatement) String() string {
	if s.Descending {
		return fmt.Sprintf("sort %s des", s.Column)
	}
	return fmt.Sprintf("sort %s asc", s.Column)
}

// FilterStatement: filter <col> <op> <value>
type FilterStatement struct {
	Column   string
	Operator string
	Value    string
}

func (s *FilterStatement) statementNode()       {}
func (s *FilterStatement) TokenLiteral() string { return "filter" }
func (s *FilterStatement) String() string {
	return fmt.Sprintf("filter %s %s %s", s.Column, s.Operator, s.Value)
}

// DropNullStatement: delnull <col>
type DropNullStatement struct {
	Column string
}

func (s *DropNullStatement) statementNode()       {}
func (s *DropNullStatement) TokenLiteral() string { return "delnull" }
func (s *DropNullStatement) String() string       { return "delnull " + s.Column }

// DropColumnStatement: delcolum <col>
type DropColumnStatement struct {
	Column string
}

func (s *DropColumnStatement) statementNode()       {}
func (s *DropColumnStatement) TokenLiteral() string { return "delcolum" }
func (s *DropColumnStatement) String() string       { return "delcolum " + s.Column }

// QuarterStatement: quarter <dateCol> <newCol>
type QuarterStatement struct {
	Column    string
	NewColumn string
}

func (s *QuarterStatement) statementNode()       {}
func (s *QuarterStatement) TokenLiteral() string { return "quarter" }
func (s *QuarterStatement) String() string {
	return fmt.Sprintf("quarter %s %s", s.Column, s.NewColumn)
}

// PrefixStatement: prefix <col> n <newCol>
type PrefixStatement struct {
	Column    string
	Length    int
	NewColumn string
}

func (s *PrefixStatement) statementNode()       {}
func (s *PrefixStatement) TokenLiteral() string { return "prefix" }
func (s *PrefixStatement) String() string {
	return fmt.Sprintf("prefix %s %d %s", s.Column, s.Length, s.NewColumn)
}

// SaveStatement: save [file]
type SaveStatement struct {
	Path string // empty means <table name>.csv
}

func (s *SaveStatement) statementNode()       {}
func (s *SaveStatement) TokenLiteral() string { return "save" }
func (s *SaveStatement) String() string {
	if s.Path == "" {
		return "save"
	}
	return "save " + s.Path
}

// ListStatement: list
type ListStatement struct{}

func (s *ListStatement) statementNode()       {}
func (s *ListStatement) TokenLiteral() string { return "list" }
func (s *ListStatement) String() string       { return "list" }

// NameStatement: name <newName>
type NameStatement struct {
	Name string
}

func (s *NameStatement) statementNode()       {}
func (s *NameStatement) TokenLiteral() string { return "name" }
func (s *NameStatement) String() string       { return "name " + s.Name }

// QuitStatement: quit
type QuitStatement struct{}

func (s *QuitStatement) statementNode()       {}
func (s *QuitStatement) TokenLiteral() string { return "quit" }
func (s *QuitStatement) String() string       { return "quit" }

// SwitchStatement: <tableName>
type SwitchStatement struct {
	Table string
}

func (s *SwitchStatement) statementNode()       {}
func (s *SwitchStatement) TokenLiteral() string { return s.Table }
func (s *SwitchStatement) String() string       { return s.Table }

func withSeparator(cmd string, sep byte) string {
	var out bytes.Buffer
	out.WriteString(cmd)
	if sep != 0 {
		out.WriteString(" ")
		out.WriteString(strconv.QuoteRune(rune(sep)))
	}
	return out.String()
}
