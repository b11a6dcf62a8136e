package units

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// quantityLexer tokenizes length expressions such as `5 3/8 in` or `102cm`.
var quantityLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Decimal numbers with optional fraction and exponent, no sign
	{Name: "Number", Pattern: `(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][-+]?[0-9]+)?`},

	// Longer spellings first so "inches" is not split into "in" + garbage
	{Name: "Unit", Pattern: `(?i)(?:inches|inch|in|feet|foot|ft|centimeters|centimeter|cm|meters|meter|m)\b|["']`},

	{Name: "Punct", Pattern: `[-+/]`},
})
