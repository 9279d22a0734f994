package stubapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/scrapzee/scrapzee-cli/model"
	"golang.org/x/crypto/bcrypt"
)

// mintToken signs an HS256 token with the same claim set the real auth
// service uses: user_id, email, role, exp.
func (s *Server) mintToken(u *stubUser) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"role":    u.Role,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// currentUser resolves the bearer token of a request. Second return is a
// user-facing error message, "" on success.
func (s *Server) currentUser(r *http.Request) (*stubUser, string) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return nil, "Token is missing"
	}
	raw := strings.TrimPrefix(auth, "Bearer ")

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		if err != nil && strings.Contains(err.Error(), "expired") {
			return nil, "Token expired"
		}
		return nil, "Invalid token"
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, "Invalid token"
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return nil, "Invalid token"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u, found := s.users[int64(id)]
	if !found {
		return nil, "Invalid token"
	}
	return u, ""
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
		Phone    string `json:"phone"`
		Role     string `json:"role"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password required")
		return
	}

	s.mu.Lock()
	if _, exists := s.byEmail[req.Email]; exists {
		s.mu.Unlock()
		writeError(w, http.StatusConflict, "Email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.MinCost)
	if err != nil {
		s.mu.Unlock()
		writeError(w, http.StatusInternalServerError, "hashing failed")
		return
	}

	role := req.Role
	if role == "" {
		role = "user"
	}
	u := &stubUser{
		User: model.User{
			ID:       s.nextUserID,
			Email:    req.Email,
			FullName: req.FullName,
			Role:     role,
		},
		passwordHash: hash,
	}
	s.nextUserID++
	s.users[u.ID] = u
	s.byEmail[u.Email] = u.ID
	s.mu.Unlock()

	token, err := s.mintToken(u)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "signing failed")
		return
	}

	writeJSON(w, http.StatusCreated, model.AuthResponse{
		Message: "Registration successful",
		Token:   token,
		User:    &u.User,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password required")
		return
	}

	s.mu.Lock()
	id, found := s.byEmail[req.Email]
	var u *stubUser
	if found {
		u = s.users[id]
	}
	s.mu.Unlock()

	if u == nil || bcrypt.CompareHashAndPassword(u.passwordHash, []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := s.mintToken(u)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "signing failed")
		return
	}

	writeJSON(w, http.StatusOK, model.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    &u.User,
	})
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	u, msg := s.currentUser(r)
	if u == nil {
		writeError(w, http.StatusUnauthorized, msg)
		return
	}
	writeJSON(w, http.StatusOK, model.VerifyResponse{Valid: true, User: &u.User})
}
