package edgelist

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Document is a parsed edge list: a node count followed by capacity triples.
type Document struct {
	Pos   lexer.Position
	Nodes int       `parser:"@Int"`
	Edges []*Triple `parser:"@@*"`
}

// Triple is one from→to edge with its capacity.
type Triple struct {
	Pos      lexer.Position
	From     int   `parser:"@Int"`
	To       int   `parser:"@Int"`
	Capacity int64 `parser:"@Int"`
}

var edgeListLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parseDocument = participle.MustBuild[Document](
	participle.Lexer(edgeListLexer),
	participle.Elide("Comment", "Whitespace"),
)
