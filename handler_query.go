package snowbase

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// QueryRequest is the run-query request body: connection credentials
// plus the SQL text to execute.
type QueryRequest struct {
	ConnectRequest
	Query string `json:"query"`
}

// handleQuery opens a connection and executes a single caller-provided
// SQL statement. Any connect or execute failure short-circuits with an
// unsuccessful envelope.
//
// @Summary      Execute a SQL statement
// @Accept       json
// @Produce      json
// @Param        body  body  QueryRequest  true  "credentials and SQL text"
// @Success      200  {object}  map[string]any
// @Router       /query [post]
func (h *Handler) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeUnsuccessful(w, "invalid request body")
		return
	}
	if verr := ValidateConnectionParams(req.Account, req.Username, req.Password); verr != nil {
		writeUnsuccessful(w, verr.Reason)
		return
	}
	if req.Query == "" {
		writeUnsuccessful(w, "invalid query")
		return
	}

	ctx := r.Context()
	conn, err := h.connector.Connect(ctx, req.params())
	if err != nil {
		slog.Error("snowflake connect failed", "account", req.Account, "error", err)
		writeUnsuccessful(w, errPrefixExecute+err.Error())
		return
	}
	defer conn.Close()

	res, err := conn.Execute(ctx, req.Query)
	if err != nil {
		slog.Error("snowflake query failed", "account", req.Account, "error", err)
		writeUnsuccessful(w, errPrefixExecute+err.Error())
		return
	}
	writeSuccessful(w, map[string]any{"response": res})
}
