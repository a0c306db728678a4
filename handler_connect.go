package snowbase

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ConnectRequest is the open-connection request body. ProfileID
// optionally names a saved profile; its attributes fill any fields the
// caller left empty (the password is always supplied per request).
type ConnectRequest struct {
	ProfileID string `json:"profileId,omitempty"`
	Account   string `json:"account"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Role      string `json:"role,omitempty"`
	Warehouse string `json:"warehouse,omitempty"`
}

func (r ConnectRequest) params() ConnectionParams {
	return ConnectionParams{
		Account:   r.Account,
		Username:  r.Username,
		Password:  r.Password,
		Role:      r.Role,
		Warehouse: r.Warehouse,
	}
}

// handleConnect opens a Snowflake connection and reports the
// driver-assigned session id. A validation failure short-circuits
// before any driver call, as in the other handlers.
//
// @Summary      Open a Snowflake connection
// @Accept       json
// @Produce      json
// @Param        body  body  ConnectRequest  true  "connection credentials"
// @Success      200  {object}  map[string]any
// @Router       / [post]
func (h *Handler) handleConnect(w http.ResponseWriter, r *http.Request) {
	var req ConnectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeUnsuccessful(w, "invalid request body")
		return
	}
	if req.ProfileID != "" {
		if !h.applyProfile(&req) {
			writeUnsuccessful(w, "profile not found")
			return
		}
	}
	if verr := ValidateConnectionParams(req.Account, req.Username, req.Password); verr != nil {
		writeUnsuccessful(w, verr.Reason)
		return
	}

	ctx := r.Context()
	conn, err := h.connector.Connect(ctx, req.params())
	if err != nil {
		slog.Error("snowflake connect failed", "account", req.Account, "error", err)
		writeUnsuccessful(w, errPrefixConnect+err.Error())
		return
	}
	defer conn.Close()

	id, err := conn.SessionID(ctx)
	if err != nil {
		slog.Error("snowflake session id lookup failed", "account", req.Account, "error", err)
		writeUnsuccessful(w, errPrefixConnect+err.Error())
		return
	}
	writeSuccessful(w, map[string]any{"connectionId": id})
}

// applyProfile fills empty connection fields from the named profile.
func (h *Handler) applyProfile(req *ConnectRequest) bool {
	if h.profiles == nil {
		return false
	}
	p, ok := h.profiles.Get(req.ProfileID)
	if !ok {
		return false
	}
	if req.Account == "" {
		req.Account = p.Account
	}
	if req.Username == "" {
		req.Username = p.Username
	}
	if req.Role == "" {
		req.Role = p.Role
	}
	if req.Warehouse == "" {
		req.Warehouse = p.Warehouse
	}
	return true
}
