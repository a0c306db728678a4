package snowbase

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

// PreviewRequest names the relation to preview along with connection
// credentials.
type PreviewRequest struct {
	ConnectRequest
	Database string `json:"database"`
	Schema   string `json:"schema"`
	Relation string `json:"relation"`
}

// handlePreview returns sample rows, column metadata and the total row
// count for a named table. The three statements run sequentially and
// dependently on one shared connection; each failure short-circuits
// with its own reason.
//
// Identifiers are interpolated verbatim into the SQL. Callers are
// trusted; this route is not a security boundary against injection.
//
// @Summary      Preview a relation
// @Accept       json
// @Produce      json
// @Param        body  body  PreviewRequest  true  "credentials and relation identifiers"
// @Success      200  {object}  map[string]any
// @Router       /relation-preview [post]
func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeUnsuccessful(w, "invalid request body")
		return
	}
	if verr := ValidateConnectionParams(req.Account, req.Username, req.Password); verr != nil {
		writeUnsuccessful(w, verr.Reason)
		return
	}
	if errs := ValidatePreviewParams(req.Database, req.Schema, req.Relation); len(errs) > 0 {
		writeUnsuccessful(w, errs[0].Reason)
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

	target := fmt.Sprintf("%s.%s.%s", req.Database, req.Schema, req.Relation)

	preview, err := conn.Execute(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT %d;", target, previewRowLimit))
	if err != nil {
		writeUnsuccessful(w, errPrefixExecute+err.Error())
		return
	}

	columns, err := conn.Execute(ctx, fmt.Sprintf("DESCRIBE TABLE %s;", target))
	if err != nil {
		writeUnsuccessful(w, errPrefixExecute+err.Error())
		return
	}

	count, err := conn.Execute(ctx, fmt.Sprintf("SELECT COUNT(*) AS CNT FROM %s;", target))
	if err != nil {
		writeUnsuccessful(w, errPrefixExecute+err.Error())
		return
	}
	rowcount, err := countFromResult(count)
	if err != nil {
		writeUnsuccessful(w, errPrefixExecute+err.Error())
		return
	}

	writeSuccessful(w, map[string]any{
		"preview":  preview.Rows,
		"columns":  columns.Rows,
		"rowcount": rowcount,
	})
}

// countFromResult extracts CNT from the count statement's single row.
// A result set without that row is reported, not dereferenced.
func countFromResult(res *QueryResult) (int64, error) {
	if len(res.Rows) == 0 {
		return 0, errors.New("count query returned no rows")
	}
	v, ok := res.Rows[0]["CNT"]
	if !ok {
		return 0, errors.New("count query returned no CNT column")
	}
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float64:
		return int64(n), nil
	case string:
		parsed, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("unexpected CNT value %q", n)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("unexpected CNT type %T", v)
	}
}
