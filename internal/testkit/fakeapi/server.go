// Package fakeapi is an in-memory stand-in for the auth API, used by
// tests that want real HTTP round trips. It follows the API contract
// (status codes, body formats, messages) but keeps users in memory.
package fakeapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/crypto/bcrypt"
)

const (
	issuer         = "authpages-fakeapi"
	passwordMaxLen = 1024
	tokenTTL       = 6 * time.Hour
)

type user struct {
	id   string
	hash []byte
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Server struct {
	secret    []byte
	sanitizer *bluemonday.Policy
	router    chi.Router

	mu    sync.Mutex
	users map[string]user
	hits  map[string]int
	now   func() time.Time
}

func New(secret []byte) *Server {
	s := &Server{
		secret:    secret,
		sanitizer: bluemonday.UGCPolicy(),
		users:     make(map[string]user),
		hits:      make(map[string]int),
		now:       time.Now,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.countHits)
	r.Post("/api/register", s.register)
	r.Post("/api/login", s.login)
	r.Get("/api/authenticate", s.authenticate)
	s.router = r

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Hits reports how many requests reached path.
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

// IssueToken signs a token for the user, valid until expires.
func (s *Server) IssueToken(username string, expires time.Time) (string, error) {
	s.mu.Lock()
	u, ok := s.users[username]
	issuedAt := s.now()
	s.mu.Unlock()
	if !ok {
		return "", fmt.Errorf("unknown user %q", username)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   u.id,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expires),
	})
	return token.SignedString(s.secret)
}

func (s *Server) countHits(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.hits[r.URL.Path]++
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}

// readCredentials decodes and validates the request body, writing the
// error response itself when it returns false.
func (s *Server) readCredentials(w http.ResponseWriter, r *http.Request) (credentials, bool) {
	var c credentials
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeText(w, http.StatusBadRequest, "Could not parse form!")
		return c, false
	}
	switch {
	case c.Username == "":
		writeText(w, http.StatusBadRequest, "Request must include 'username' field!")
	case s.sanitizer.Sanitize(c.Username) != c.Username:
		writeText(w, http.StatusBadRequest, "Username must not require sanitization!")
	case c.Password == "":
		writeText(w, http.StatusBadRequest, "Request must include 'password' field!")
	case len(c.Password) > passwordMaxLen:
		writeText(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("Password must be less than %v characters long!", passwordMaxLen))
	default:
		return c, true
	}
	return c, false
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	c, ok := s.readCredentials(w, r)
	if !ok {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.MinCost)
	if err != nil {
		writeText(w, http.StatusInternalServerError, "An error occurred during registration of user, please try again later.")
		return
	}

	s.mu.Lock()
	_, exists := s.users[c.Username]
	if !exists {
		s.users[c.Username] = user{id: uuid.NewString(), hash: hash}
	}
	s.mu.Unlock()

	if exists {
		writeText(w, http.StatusConflict, "Username already exists!")
		return
	}
	writeText(w, http.StatusCreated, "Registration successful!")
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	c, ok := s.readCredentials(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	u, exists := s.users[c.Username]
	now := s.now()
	s.mu.Unlock()

	if !exists {
		writeText(w, http.StatusNotFound, "No user with given username exists!")
		return
	}
	if bcrypt.CompareHashAndPassword(u.hash, []byte(c.Password)) != nil {
		writeText(w, http.StatusUnauthorized, "Invalid Username or Password.")
		return
	}

	token, err := s.IssueToken(c.Username, now.Add(tokenTTL))
	if err != nil {
		writeText(w, http.StatusInternalServerError, "An error occurred during authentication attempt, please try again")
		return
	}
	writeText(w, http.StatusOK, token)
}

func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) {
	raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || raw == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			writeText(w, http.StatusUnauthorized, "Token is expired.")
		case errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
			writeText(w, http.StatusUnauthorized, "Token issued time invalid.")
		default:
			writeText(w, http.StatusUnauthorized, "Token unauthorized.")
		}
		return
	}

	username, found := s.usernameByID(claims.Subject)
	if !found {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"UserID":   claims.Subject,
		"Username": username,
	})
}

func (s *Server) clock() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now()
}

func (s *Server) usernameByID(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, u := range s.users {
		if u.id == id {
			return name, true
		}
	}
	return "", false
}
