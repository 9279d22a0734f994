// Package stubapi is an in-memory double of the Scrapzee backend: the auth,
// pricing and user services behind one handler. It implements exactly the
// surface the client observes and is used by the test suites and the
// `scrapzee stub` development server. Nothing here persists.
package stubapi

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/scrapzee/scrapzee-cli/constant"
	"github.com/scrapzee/scrapzee-cli/model"
	"golang.org/x/crypto/bcrypt"
)

type stubUser struct {
	model.User
	passwordHash []byte
}

type stubRequest struct {
	model.RequestRecord
	ownerID int64
}

// Server holds the in-memory state. All maps are guarded by one mutex; the
// stub favors simplicity over throughput.
type Server struct {
	mu sync.Mutex

	secret   []byte
	tokenTTL time.Duration

	users    map[int64]*stubUser
	byEmail  map[string]int64
	profiles map[int64]*model.Profile
	requests map[int64]*stubRequest

	categories []model.Category
	history    map[int64][]model.PriceHistoryEntry

	nextUserID    int64
	nextRequestID int64

	router *mux.Router
}

func New(secret string, tokenTTL time.Duration) *Server {
	s := &Server{
		secret:        []byte(secret),
		tokenTTL:      tokenTTL,
		users:         make(map[int64]*stubUser),
		byEmail:       make(map[string]int64),
		profiles:      make(map[int64]*model.Profile),
		requests:      make(map[int64]*stubRequest),
		history:       make(map[int64][]model.PriceHistoryEntry),
		nextUserID:    1,
		nextRequestID: 1,
	}
	s.seedCategories()
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth/verify", s.handleVerify).Methods(http.MethodGet)

	api.HandleFunc("/pricing/categories", s.handleCategories).Methods(http.MethodGet)
	api.HandleFunc("/pricing/history/{id:[0-9]+}", s.handlePriceHistory).Methods(http.MethodGet)

	api.HandleFunc("/users/dashboard", s.handleDashboard).Methods(http.MethodGet)
	api.HandleFunc("/users/profile", s.handleGetProfile).Methods(http.MethodGet)
	api.HandleFunc("/users/profile", s.handleUpdateProfile).Methods(http.MethodPost, http.MethodPut)
	api.HandleFunc("/users/requests", s.handleListRequests).Methods(http.MethodGet)
	api.HandleFunc("/users/requests", s.handleCreateRequest).Methods(http.MethodPost)
	api.HandleFunc("/users/requests/{id:[0-9]+}", s.handleGetRequest).Methods(http.MethodGet)
	api.HandleFunc("/users/requests/{id:[0-9]+}/status", s.handleUpdateStatus).Methods(http.MethodPut)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "stubapi"})
	}).Methods(http.MethodGet)

	s.router = r
}

// seedCategories loads the standard pricing catalog the real deployment
// ships with.
func (s *Server) seedCategories() {
	s.categories = []model.Category{
		{ID: 1, Name: "Paper", BasePrice: 12.5, Unit: "kg", Description: "Newspapers, magazines, cardboard"},
		{ID: 2, Name: "Plastic", BasePrice: 8.0, Unit: "kg", Description: "PET bottles, plastic containers"},
		{ID: 3, Name: "Metal", BasePrice: 45.0, Unit: "kg", Description: "Iron, aluminum, copper"},
		{ID: 4, Name: "Glass", BasePrice: 5.0, Unit: "kg", Description: "Glass bottles and jars"},
		{ID: 5, Name: "E-Waste", BasePrice: 25.0, Unit: "kg", Description: "Old electronics, circuit boards"},
	}
	now := model.APITime{Time: time.Now().UTC()}
	for _, c := range s.categories {
		s.history[c.ID] = []model.PriceHistoryEntry{
			{Price: c.BasePrice, ChangedAt: now, Reason: "Initial creation"},
		}
	}
}

// SeedUser registers a user directly, bypassing the HTTP surface. Test
// convenience.
func (s *Server) SeedUser(email, password, fullName, role string) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	u := &stubUser{
		User: model.User{
			ID:       s.nextUserID,
			Email:    email,
			FullName: fullName,
			Role:     role,
		},
		passwordHash: hash,
	}
	s.nextUserID++
	s.users[u.ID] = u
	s.byEmail[email] = u.ID
	return u.User
}

// SeedRequest inserts a request owned by the given user. Test convenience.
func (s *Server) SeedRequest(ownerID, categoryID int64, quantity float64, status constant.RequestStatus, estimated *float64) model.RequestRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &stubRequest{
		RequestRecord: model.RequestRecord{
			ID:             s.nextRequestID,
			CategoryID:     categoryID,
			Quantity:       quantity,
			EstimatedPrice: estimated,
			PickupAddress:  "seeded address",
			Status:         status,
			CreatedAt:      model.APITime{Time: time.Now().UTC()},
		},
		ownerID: ownerID,
	}
	s.nextRequestID++
	s.requests[rec.ID] = rec
	return rec.RequestRecord
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}
