package graphql

import (
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

// NewHTTPHandler serves the schema over HTTP with GraphiQL enabled for
// interactive exploration. The handler reads the request context, so
// identity injected by the auth middleware is visible to resolvers.
func NewHTTPHandler(schema graphql.Schema) http.Handler {
	return handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: true,
	})
}
