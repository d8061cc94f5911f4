package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/validator"
)

// QueryResolver resolves the root Query fields.
type QueryResolver interface {
	ValidateEmail(ctx context.Context, email string) (string, error)
}

// Executor executes GraphQL operations against the embedded schema.
type Executor struct {
	schema   *ast.Schema
	resolver QueryResolver
}

// NewExecutor creates an Executor bound to the given resolver. The schema is
// parsed once here and never mutated afterwards.
func NewExecutor(resolver QueryResolver) *Executor {
	return &Executor{schema: loadSchema(), resolver: resolver}
}

// Params are the standard GraphQL request parameters, shared by the GET and
// POST transports.
type Params struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// Result is the outcome of executing one GraphQL request. Executed reports
// whether the operation ran at all: parse and validation failures leave it
// false, which the HTTP layer maps to status 400. Field errors during an
// executed operation keep it true (partial-success semantics, status 200).
type Result struct {
	Data     json.RawMessage
	Errors   gqlerror.List
	Executed bool
}

// Execute parses, validates, and runs a single GraphQL request.
func (e *Executor) Execute(ctx context.Context, params Params) Result {
	if strings.TrimSpace(params.Query) == "" {
		return protocolError(gqlerror.Errorf("must provide a query string"))
	}

	doc, listErr := gqlparser.LoadQuery(e.schema, params.Query)
	if len(listErr) > 0 {
		return Result{Errors: listErr}
	}

	op := doc.Operations.ForName(params.OperationName)
	if op == nil {
		if params.OperationName == "" {
			return protocolError(gqlerror.Errorf("operationName is required for documents with multiple operations"))
		}
		return protocolError(gqlerror.Errorf("operation %q not found in document", params.OperationName))
	}
	if op.Operation != ast.Query {
		return protocolError(gqlerror.Errorf("only query operations are supported"))
	}

	vars, err := validator.VariableValues(e.schema, op, params.Variables)
	if err != nil {
		return Result{Errors: toErrorList(err)}
	}

	fields := collectFields(doc, op.SelectionSet)

	type member struct {
		alias string
		value any
	}
	members := make([]member, 0, len(fields))
	seen := make(map[string]bool, len(fields))
	var fieldErrs gqlerror.List

	for _, f := range fields {
		// Validation merges duplicate selections; emit each response key once.
		if seen[f.Alias] {
			continue
		}
		seen[f.Alias] = true

		value, err := e.resolveField(ctx, f, vars)
		if err != nil {
			fieldErrs = append(fieldErrs, gqlerror.ErrorPathf(ast.Path{ast.PathName(f.Alias)}, "%s", err.Error()))
			continue
		}
		members = append(members, member{alias: f.Alias, value: value})
	}

	// Every field in this schema is non-null, so any field error nulls the
	// whole data payload.
	if len(fieldErrs) > 0 {
		return Result{Data: json.RawMessage("null"), Errors: fieldErrs, Executed: true}
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range members {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, m.alias, m.value); err != nil {
			return Result{
				Data:     json.RawMessage("null"),
				Errors:   gqlerror.List{gqlerror.Errorf("internal error")},
				Executed: true,
			}
		}
	}
	buf.WriteByte('}')

	return Result{Data: json.RawMessage(buf.Bytes()), Executed: true}
}

func (e *Executor) resolveField(ctx context.Context, f *ast.Field, vars map[string]any) (any, error) {
	switch f.Name {
	case "__typename":
		return "Query", nil
	case "__schema", "__type":
		// Introspection is not served. The explorer's schema pane shows an
		// error for its startup query; hand-written queries are unaffected.
		return nil, fmt.Errorf("introspection is disabled")
	case "validateEmail":
		args := f.ArgumentMap(vars)
		email, ok := args["email"].(string)
		if !ok {
			return nil, fmt.Errorf("argument \"email\" must be a string")
		}
		return e.resolver.ValidateEmail(ctx, email)
	default:
		return nil, fmt.Errorf("unknown field %q on type Query", f.Name)
	}
}

// collectFields flattens the selection set into root fields, resolving
// inline fragments and fragment spreads. The schema has a single object
// type, so type conditions never exclude a selection.
func collectFields(doc *ast.QueryDocument, set ast.SelectionSet) []*ast.Field {
	var fields []*ast.Field
	for _, sel := range set {
		switch sel := sel.(type) {
		case *ast.Field:
			fields = append(fields, sel)
		case *ast.InlineFragment:
			fields = append(fields, collectFields(doc, sel.SelectionSet)...)
		case *ast.FragmentSpread:
			if def := doc.Fragments.ForName(sel.Name); def != nil {
				fields = append(fields, collectFields(doc, def.SelectionSet)...)
			}
		}
	}
	return fields
}

// writeMember appends `"alias":<value>` to buf. Both key and value go
// through the JSON encoder, so user-supplied strings are always escaped.
func writeMember(buf *bytes.Buffer, alias string, value any) error {
	key, err := json.Marshal(alias)
	if err != nil {
		return err
	}
	val, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(key)
	buf.WriteByte(':')
	buf.Write(val)
	return nil
}

func protocolError(err *gqlerror.Error) Result {
	return Result{Errors: gqlerror.List{err}}
}

func toErrorList(err error) gqlerror.List {
	var gqlErr *gqlerror.Error
	if errors.As(err, &gqlErr) {
		return gqlerror.List{gqlErr}
	}
	var list gqlerror.List
	if errors.As(err, &list) {
		return list
	}
	return gqlerror.List{gqlerror.Errorf("%s", err.Error())}
}
