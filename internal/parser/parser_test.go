package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/mini-dataframe/internal/domain/errors"
	"github.com/leengari/mini-dataframe/internal/parser/ast"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		input    string
		expected ast.Statement
	}{
		{"load people.csv", &ast.LoadStatement{Path: "people.csv"}},
		{"load people.csv ;", &ast.LoadStatement{Path: "people.csv", Separator: ';'}},
		{"LOAD 'my data.tsv' tab", &ast.LoadStatement{Path: "my data.tsv", Separator: '\t'}},
		{"add more.csv |", &ast.AddStatement{Path: "more.csv", Separator: '|'}},
		{"view", &ast.ViewStatement{}},
		{"view 5", &ast.ViewStatement{Rows: 5, HasRows: true}},
		{"view -3", &ast.ViewStatement{Rows: -3, HasRows: true}},
		{"meta", &ast.MetaStatement{}},
		{"sort age", &ast.SortStatement{Column: "age"}},
		{"sort age des", &ast.SortStatement{Column: "age", Descending: true}},
		{"sort name DESC", &ast.SortStatement{Column: "name", Descending: true}},
		{"filter age gt 25", &ast.FilterStatement{Column: "age", Operator: "gt", Value: "25"}},
		{`filter city eq "New York"`, &ast.FilterStatement{Column: "city", Operator: "eq", Value: "New York"}},
		{"delnull age", &ast.DropNullStatement{Column: "age"}},
		{"delcolum joined", &ast.DropColumnStatement{Column: "joined"}},
		{"quarter joined q", &ast.QuarterStatement{Column: "joined", NewColumn: "q"}},
		{"prefix name 2 initials", &ast.PrefixStatement{Column: "name", Length: 2, NewColumn: "initials"}},
		{"save", &ast.SaveStatement{}},
		{"save out/result", &ast.SaveStatement{Path: "out/result"}},
		{"list", &ast.ListStatement{}},
		{"name sales", &ast.NameStatement{Name: "sales"}},
		{"quit", &ast.QuitStatement{}},
		{"exit", &ast.QuitStatement{}},
		{"df1", &ast.SwitchStatement{Table: "df1"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			stmt, err := ParseLine(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stmt)
		})
	}
}

func TestParseLineBlank(t *testing.T) {
	stmt, err := ParseLine("   \t ")
	require.NoError(t, err)
	assert.Nil(t, stmt)
}

func TestParseLineSyntaxErrors(t *testing.T) {
	tests := []string{
		"load",
		"filter age gt",
		"sort age sideways",
		"quarter joined",
		"meta now",
		"view 5 6",
		"drop table df0",
		`save "unterminated`,
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := ParseLine(input)
			var syntax *errors.SyntaxError
			require.ErrorAs(t, err, &syntax)
			assert.Equal(t, errors.KindStructural, errors.KindOf(err))
		})
	}
}

func TestParseLineInvalidArguments(t *testing.T) {
	tests := []string{
		"view ten",
		"prefix name x short",
		"load data.csv ;;",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := ParseLine(input)
			var invalid *errors.InvalidArgumentError
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestSyntaxErrorCarriesUsage(t *testing.T) {
	_, err := ParseLine("filter age")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage: filter <col>")
}

func TestStatementStringRoundTrip(t *testing.T) {
	for _, input := range []string{
		"sort age des",
		"filter age gt 25",
		"prefix name 2 initials",
		"view -3",
		"save out.csv",
	} {
		stmt, err := ParseLine(input)
		require.NoError(t, err)
		assert.Equal(t, input, stmt.String())
	}
}

func TestModifies(t *testing.T) {
	assert.True(t, ast.Modifies(&ast.FilterStatement{}))
	assert.True(t, ast.Modifies(&ast.LoadStatement{}))
	assert.False(t, ast.Modifies(&ast.ViewStatement{}))
	assert.False(t, ast.Modifies(&ast.SaveStatement{}))
}
