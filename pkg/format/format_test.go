package format

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Markers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		style    Style
		expected string
	}{
		{
			name:     "line break keeps trailing blank",
			input:    "SELECT p1 ✖,p2 ✖",
			expected: "SELECT p1 \n,p2 ",
		},
		{
			name:     "anchor pads to the river",
			input:    "SELECT⚓ p1 ✖⚓,p2 ✖⚓",
			expected: "SELECT p1 \n      ,p2 \n      ",
		},
		{
			name:     "nested anchor",
			input:    "❌FROM⚓(➕SELECT⚓ op1.OrderID ✖⚓,op1.ProductID as ⛓⚓p1",
			expected: "  FROM(SELECT op1.OrderID \n             ,op1.ProductID as p1",
		},
		{
			name:     "optional break in comfortable",
			input:    "❌FROM⚓(➕SELECT⚓ op1.OrderID ✖⚓,op1.ProductID as ⛓⚓p1",
			style:    Comfortable,
			expected: "  FROM(SELECT op1.OrderID \n             ,op1.ProductID as \n             p1",
		},
		{
			name:     "compact operator",
			input:    "op1.OrderID⚫=⚫op2.OrderID",
			expected: "op1.OrderID=op2.OrderID",
		},
		{
			name:     "compact operator drops padding",
			input:    "a ⚫=⚫ b",
			expected: "a=b",
		},
		{
			name:     "balanced operator keeps padding",
			input:    "a ⚫=⚫ b",
			style:    Balanced,
			expected: "a = b",
		},
		{
			name:     "clause break",
			input:    "SELECT ❌FROM",
			expected: "SELECT \nFROM",
		},
		{
			name:     "operator line drops trailing blanks",
			input:    "WHERE⚓ a ⚫=⚫ 1 ✖AND⚓ b ⚫=⚫ 2",
			style:    Balanced,
			expected: "WHERE a = 1\n   AND b = 2",
		},
		{
			name:     "operator line drops trailing blanks after a closing paren",
			input:    "ON⚓(➕a ⚫=⚫ b ✖AND⚓ c ⚫=⚫ d➖) ❌WHERE⚓ e",
			expected: "ON(a=b\n       AND c=d)\n WHERE e",
		},
		{
			name:     "balanced operator pads missing blanks",
			input:    "a⚫=⚫  b",
			style:    Balanced,
			expected: "a = b",
		},
		{
			name:     "line without operator keeps trailing blank",
			input:    "SELECT⚓ a IS NULL ✖AND⚓ b",
			expected: "SELECT a IS NULL \n   AND b",
		},
		{
			name:  "unanchored level under a hang steps hang width",
			input: "WITH← t AS(➕❌ SELECT⚓ a ❌FROM⚓ x ❌ON⚓ p ✖AND⚓(➕ q ✖OR⚓ r➖)➖)",
			expected: "WITH t AS(\n" +
				"    SELECT a \n" +
				"      FROM x \n" +
				"        ON p \n" +
				"       AND( q \n" +
				"            OR r))",
		},
		{
			name:     "unanchored level under a marked anchor steps one column",
			input:    "SELECT⚓ a❌FROM⚓(➕SELECT⚓ f(➕b✖⚓,c➖)➖)",
			expected: "SELECT a\n  FROM(SELECT f(b\n              ,c))",
		},
		{
			name:  "anchor replaces a guessed anchor",
			input: "WITH← t AS(➕❌SELECT⚓ f(➕a✖⚓,b➖) ❌WHERE⚓ x in(➕ select⚓ y ❌from⚓ z➖) ✖⚓,g(➕c✖⚓,d➖)➖)",
			expected: "WITH t AS(\n" +
				"    SELECT f(a\n" +
				"              ,b) \n" +
				"     WHERE x in( select y \n" +
				"                    from z) \n" +
				"          ,g(c\n" +
				"                        ,d))",
		},
		{
			name:  "long keyword keeps the hang indent",
			input: "WITH← t AS(➕❌SELECT⚓ a ❌FROM⚓ x ❌UNION ALL⚓❌ SELECT⚓ b➖)",
			expected: "WITH t AS(\n" +
				"    SELECT a \n" +
				"      FROM x \n" +
				"   UNION ALL\n" +
				"    SELECT b)",
		},
		{
			name:     "anchors persist per depth",
			input:    "SELECT⚓ a❌FROM⚓(➕SELECT⚓ b➖) x❌WHERE⚓ f(➕1✖⚓,2➖)",
			expected: "SELECT a\n  FROM(SELECT b) x\n WHERE f(1\n             ,2)",
		},
		{
			name:  "hanging level",
			input: "WITH← date_list AS(➕❌ SELECT⚓ CAST(➕'2021-05-24' AS date➖) AS ⛓⚓OrderDate ❌UNION⚓❌ SELECT⚓ CAST(➕'2021-05-25' AS date➖) AS ⛓⚓OrderDate⛓⚓➖)",
			style: Balanced,
			expected: "WITH date_list AS(\n" +
				"    SELECT CAST('2021-05-24' AS date) AS OrderDate \n" +
				"     UNION\n" +
				"    SELECT CAST('2021-05-25' AS date) AS OrderDate)",
		},
		{
			name:     "keyword continuation is stripped",
			input:    "OVER(➕ PARTITION⧆ BY x➖)",
			expected: "OVER( PARTITION BY x)",
		},
		{
			name:     "trailing newlines trimmed",
			input:    "SELECT 1✖✖",
			expected: "SELECT 1",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.input, tt.style))
		})
	}
}

func TestFormat_Samples(t *testing.T) {
	for _, sample := range []string{"simple", "regular", "complex"} {
		marked, err := os.ReadFile(filepath.Join("testdata", sample+".marked"))
		require.NoError(t, err)
		for _, style := range []Style{Compact, Balanced, Comfortable} {
			t.Run(sample+"/"+style.String(), func(t *testing.T) {
				want, err := os.ReadFile(filepath.Join("testdata", sample+"_"+style.String()+".golden"))
				require.NoError(t, err)
				got := Format(string(marked), style)
				assert.Equal(t, strings.Split(string(want), "\n"), strings.Split(got, "\n"))
			})
		}
	}
}

func TestStrip(t *testing.T) {
	assert.Equal(t,
		"SELECT p1,p2,count(*) as numordersFROM(SELECT op1.OrderID",
		Strip("SELECT⚓ p1✖⚓,p2✖⚓,count(➕*➖) as ⛓⚓numorders❌FROM⚓(➕SELECT⚓ op1.OrderID"),
	)
	assert.Equal(t, "a = b", Strip("a ⚫=⚫ b"))
}

func TestParseStyle(t *testing.T) {
	for _, name := range Styles() {
		s, err := ParseStyle(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.String())
	}

	s, err := ParseStyle("Comfortable")
	require.NoError(t, err)
	assert.Equal(t, Comfortable, s)

	_, err = ParseStyle("roomy")
	assert.Error(t, err)
	assert.Equal(t, "Style(9)", Style(9).String())
}
