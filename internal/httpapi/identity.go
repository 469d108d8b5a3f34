package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"ShopKart/internal/identity"
	"ShopKart/pkg/kit"
)

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	u, err := s.Identity.Current()
	if errors.Is(err, identity.ErrNoSession) {
		kit.WriteError(w, r, http.StatusUnauthorized, "no session", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, u)
}

func (s *Server) setSession(w http.ResponseWriter, r *http.Request) {
	var u identity.User
	if err := kit.DecodeJSON(w, r, maxBodyBytes, &u); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}
	if u.Name == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "name required", nil)
		return
	}
	if u.Role == "" {
		u.Role = identity.RoleUser
	}

	s.Identity.SetSession(u)
	kit.WriteJSON(w, http.StatusOK, u)
}

func (s *Server) clearSession(w http.ResponseWriter, _ *http.Request) {
	s.Identity.ClearSession()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) registerUser(w http.ResponseWriter, r *http.Request) {
	var u identity.User
	if err := kit.DecodeJSON(w, r, maxBodyBytes, &u); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}
	if u.Name == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "name required", nil)
		return
	}
	if u.Role == "" {
		u.Role = identity.RoleUser
	}

	// Duplicate emails are a first-write-wins no-op in the store; the
	// response is 201 either way, matching the lenient contract.
	s.Identity.Register(u)
	kit.WriteJSON(w, http.StatusCreated, u)
}

func (s *Server) listUsers(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Identity.Users())
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	s.Identity.Delete(chi.URLParam(r, "email"))
	w.WriteHeader(http.StatusNoContent)
}

type adminLoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type adminLoginResp struct {
	AccessToken string        `json:"access_token"`
	User        identity.User `json:"user"`
}

func (s *Server) adminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginReq
	if err := kit.DecodeJSON(w, r, maxBodyBytes, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "email/password required", nil)
		return
	}

	tok, err := s.Gate.Login(req.Email, req.Password)
	if err != nil {
		kit.WriteError(w, r, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	u, err := s.Identity.Current()
	if err != nil {
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, adminLoginResp{AccessToken: tok, User: u})
}
