package rest

import (
	"net/http"

	"github.com/99designs/gqlgen/graphql/playground"
)

// Explorer returns the interactive GraphiQL page, configured to POST
// queries against the given GraphQL endpoint. The page is static HTML; no
// request data is templated into it.
func Explorer(endpoint string) http.Handler {
	return playground.Handler("Email Validator", endpoint)
}

// Static serves files from dir verbatim. Missing files get the file
// server's standard 404.
func Static(dir string) http.Handler {
	return http.FileServer(http.Dir(dir))
}
