package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"teampulse-backend/internal/models"
	"teampulse-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	userStore repository.UserStore
	jwtSecret []byte
	// demoMode accepts any non-empty password for a known email. This is
	// an explicit configuration choice for the seeded demo dataset, not a
	// fallback: with demoMode off, bcrypt verification applies.
	demoMode bool
}

func NewAuthHandler(userStore repository.UserStore, jwtSecret string, demoMode bool) *AuthHandler {
	return &AuthHandler{
		userStore: userStore,
		jwtSecret: []byte(jwtSecret),
		demoMode:  demoMode,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// --- POST /api/auth/login ---

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.userStore.FindByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("Error finding user: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if user == nil {
		writeError(w, http.StatusUnauthorized, "incorrect email or password")
		return
	}

	if !h.demoMode {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			writeError(w, http.StatusUnauthorized, "incorrect email or password")
			return
		}
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(h.jwtSecret)
	if err != nil {
		log.Printf("Error signing JWT: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Token: tokenString,
		User:  user,
	})
}

// --- GET /api/auth/me ---

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r, h.userStore)
	if user == nil {
		return
	}
	writeJSON(w, http.StatusOK, user)
}
