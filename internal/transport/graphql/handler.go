package graphql

import (
	"encoding/json"
	"net/http"

	"github.com/vektah/gqlparser/v2/gqlerror"
)

// Handler serves GraphQL over HTTP. Queries arrive via GET (URL-encoded
// "query", "variables", and "operationName" parameters) or POST (JSON body
// with the same fields). Any other method gets 405 with an Allow header.
type Handler struct {
	exec *Executor
}

// NewHandler creates a Handler around the given executor.
func NewHandler(exec *Executor) *Handler {
	return &Handler{exec: exec}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var params Params

	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		params.Query = q.Get("query")
		params.OperationName = q.Get("operationName")
		if raw := q.Get("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &params.Variables); err != nil {
				writeResult(w, http.StatusBadRequest, errorResult("variables must be valid JSON"))
				return
			}
		}

	case http.MethodPost:
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			writeResult(w, http.StatusBadRequest, errorResult("request body must be valid JSON"))
			return
		}

	default:
		w.Header().Set("Allow", "GET, POST")
		writeResult(w, http.StatusMethodNotAllowed, errorResult("method %s is not allowed, use GET or POST", r.Method))
		return
	}

	result := h.exec.Execute(r.Context(), params)

	status := http.StatusOK
	if !result.Executed {
		status = http.StatusBadRequest
	}
	writeResult(w, status, result)
}

// response is the GraphQL-over-HTTP envelope. Both keys carry omitempty so
// protocol errors produce {"errors":[...]} with no data key, while executed
// operations with field errors keep their explicit "data":null.
type response struct {
	Data   json.RawMessage `json:"data,omitempty"`
	Errors gqlerror.List   `json:"errors,omitempty"`
}

func errorResult(format string, args ...any) Result {
	return Result{Errors: gqlerror.List{gqlerror.Errorf(format, args...)}}
}

func writeResult(w http.ResponseWriter, status int, result Result) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response{ //nolint:errcheck
		Data:   result.Data,
		Errors: result.Errors,
	})
}
