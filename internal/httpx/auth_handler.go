package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Brunoalemao2017/novo-app/internal/users"
)

type AuthHandler struct {
	Directory *users.Directory
}

func (h *AuthHandler) Register(r *chi.Mux) {
	r.Post("/auth/register", h.register)
	r.Post("/auth/login", h.login)
}

// accountResponse is an Account without the password.
type accountResponse struct {
	ID    string     `json:"id"`
	Name  string     `json:"nome"`
	Email string     `json:"email"`
	Role  users.Role `json:"cargo"`
}

func toAccountResponse(a users.Account) accountResponse {
	return accountResponse{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role}
}

type registerReq struct {
	Name            string     `json:"nome"`
	Email           string     `json:"email"`
	Password        string     `json:"senha"`
	ConfirmPassword string     `json:"confirmar_senha"`
	Role            users.Role `json:"cargo"`
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}
	if !strings.Contains(req.Email, "@") {
		writeError(w, http.StatusBadRequest, "invalid email")
		return
	}
	if len(req.Password) < 6 {
		writeError(w, http.StatusBadRequest, "password must have at least 6 characters")
		return
	}
	if req.Password != req.ConfirmPassword {
		writeError(w, http.StatusBadRequest, "passwords do not match")
		return
	}
	if req.Role == "" {
		req.Role = users.RoleUser
	}
	if !req.Role.Valid() {
		writeError(w, http.StatusBadRequest, "unknown role")
		return
	}
	if _, ok := h.Directory.FindByEmail(req.Email); ok {
		writeError(w, http.StatusBadRequest, "email already registered")
		return
	}

	acc, err := h.Directory.AddUser(r.Context(), users.AccountInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		// The pre-check above can lose a race against a concurrent register.
		if errors.Is(err, users.ErrEmailTaken) {
			writeError(w, http.StatusBadRequest, "email already registered")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, toAccountResponse(acc))
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// login is the original app's boolean auth gate: an exact credential match
// against the directory, nothing more.
func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	acc, ok := h.Directory.FindByEmail(req.Email)
	if !ok || acc.Password != req.Password {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"user": toAccountResponse(acc),
	})
}
