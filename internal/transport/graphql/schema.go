package graphql

import (
	_ "embed"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

//go:embed schema.graphqls
var schemaSource string

// loadSchema parses the embedded SDL. NewExecutor calls it once at startup;
// the resulting schema is read-only for the life of the process.
func loadSchema() *ast.Schema {
	return gqlparser.MustLoadSchema(&ast.Source{
		Name:  "schema.graphqls",
		Input: schemaSource,
	})
}
