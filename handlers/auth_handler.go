package handlers

import (
    "encoding/json"
    "log"
    "net/http"

    "github.com/akashsp-05/manchikoppa-portal/config"
    "github.com/akashsp-05/manchikoppa-portal/middleware"
    "github.com/akashsp-05/manchikoppa-portal/utils"
)

type LoginRequest struct {
    Email    string `json:"email"`
    Password string `json:"password"`
}

type LoginResponse struct {
    Token   string `json:"token"`
    Email   string `json:"email"`
    IsAdmin bool   `json:"isAdmin"`
}

type SessionResponse struct {
    Email   string `json:"email"`
    IsAdmin bool   `json:"isAdmin"`
}

// Login authenticates the single configured administrator account and
// returns a bearer token. A bcrypt hash is preferred; a plain password
// comparison is the dev fallback.
func Login(w http.ResponseWriter, r *http.Request) {
    var req LoginRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        writeError(w, http.StatusBadRequest, "invalid request body")
        return
    }

    if req.Email != config.AdminEmail() || !passwordMatches(req.Password) {
        writeError(w, http.StatusUnauthorized, "invalid email or password")
        return
    }

    token, err := utils.GenerateJWT(req.Email)
    if err != nil {
        log.Printf("Error generating token: %v", err)
        writeError(w, http.StatusInternalServerError, "failed to generate token")
        return
    }

    writeJSON(w, http.StatusOK, LoginResponse{
        Token:   token,
        Email:   req.Email,
        IsAdmin: true,
    })
}

// Session reports who the current bearer token belongs to. Admin gated:
// the only account that exists is the administrator.
func Session(w http.ResponseWriter, r *http.Request) {
    writeJSON(w, http.StatusOK, SessionResponse{
        Email:   middleware.SessionEmail(r),
        IsAdmin: middleware.IsAdmin(r),
    })
}

func passwordMatches(password string) bool {
    if hash := config.AdminPasswordHash(); hash != "" {
        return utils.CheckPassword(hash, password) == nil
    }
    return utils.ComparePlain(config.AdminPassword(), password)
}
