package transitdemo

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/theoremus-urban-solutions/transit-demo/auth"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handleLogin serves POST /api/login against the demo credential table.
func (api *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required", nil)
		return
	}
	session, ok := api.auth.Login(req.Email, req.Password)
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// handleLogout serves POST /api/logout. Logging out an unknown token
// succeeds quietly.
func (api *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token, ok := bearerToken(r); ok {
		api.auth.Logout(token)
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (api *API) sessionFromRequest(r *http.Request) (auth.Session, bool) {
	token, ok := bearerToken(r)
	if !ok {
		return auth.Session{}, false
	}
	return api.auth.SessionFor(token)
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, bearerPrefix) {
		return "", false
	}
	token := strings.TrimPrefix(h, bearerPrefix)
	return token, token != ""
}
