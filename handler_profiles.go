package snowbase

import (
	"net/http"
	"strings"

	api "github.com/dracory/api"
)

// handleProfilesList lists saved connection profiles (GET).
//
// @Summary      List saved connection profiles
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /profiles [get]
func (h *Handler) handleProfilesList(w http.ResponseWriter, r *http.Request) {
	list, err := h.profiles.List()
	if err != nil {
		api.Respond(w, r, api.Error(err.Error()))
		return
	}
	api.Respond(w, r, api.SuccessWithData("ok", map[string]any{"profiles": list}))
}

// handleProfilesSave saves a new connection profile (POST).
//
// @Summary      Save a connection profile
// @Produce      json
// @Param        name      formData  string  true   "profile name"
// @Param        account   formData  string  true   "account identifier"
// @Param        username  formData  string  true   "username"
// @Param        role      formData  string  false  "role override"
// @Param        warehouse formData  string  false  "warehouse override"
// @Success      200  {object}  map[string]any
// @Router       /profiles [post]
func (h *Handler) handleProfilesSave(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	name := strings.TrimSpace(r.Form.Get("name"))
	account := strings.TrimSpace(r.Form.Get("account"))
	username := strings.TrimSpace(r.Form.Get("username"))
	if name == "" || account == "" || username == "" {
		api.Respond(w, r, api.Error("name, account and username are required"))
		return
	}
	p := ConnectionProfile{
		ID:        newRandomID(),
		Name:      name,
		Account:   account,
		Username:  username,
		Role:      strings.TrimSpace(r.Form.Get("role")),
		Warehouse: strings.TrimSpace(r.Form.Get("warehouse")),
	}
	if err := h.profiles.Save(p); err != nil {
		api.Respond(w, r, api.Error(err.Error()))
		return
	}
	api.Respond(w, r, api.SuccessWithData("saved", map[string]any{"profile": p}))
}
