package stubapi

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/scrapzee/scrapzee-cli/constant"
	"github.com/scrapzee/scrapzee-cli/model"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	u, msg := s.currentUser(r)
	if u == nil {
		writeError(w, http.StatusUnauthorized, msg)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var mine []*stubRequest
	for _, rec := range s.requests {
		if rec.ownerID == u.ID {
			mine = append(mine, rec)
		}
	}
	sort.Slice(mine, func(i, j int) bool {
		return mine[i].CreatedAt.Time.After(mine[j].CreatedAt.Time)
	})

	stats := model.DashboardStats{TotalRequests: len(mine)}
	for _, rec := range mine {
		switch rec.Status {
		case constant.StatusPending:
			stats.PendingRequests++
		case constant.StatusCompleted:
			stats.CompletedRequests++
			if rec.EstimatedPrice != nil {
				stats.TotalEarnings += *rec.EstimatedPrice
			}
		}
	}

	recent := make([]model.RecentRequest, 0, 5)
	for i, rec := range mine {
		if i == 5 {
			break
		}
		recent = append(recent, model.RecentRequest{
			ID:             rec.ID,
			CategoryID:     rec.CategoryID,
			Status:         rec.Status,
			EstimatedPrice: rec.EstimatedPrice,
			CreatedAt:      rec.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, model.DashboardSnapshot{
		Stats:          stats,
		RecentRequests: recent,
	})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	u, msg := s.currentUser(r)
	if u == nil {
		writeError(w, http.StatusUnauthorized, msg)
		return
	}

	s.mu.Lock()
	profile := s.profiles[u.ID]
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, model.ProfileResponse{User: &u.User, Profile: profile})
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	u, msg := s.currentUser(r)
	if u == nil {
		writeError(w, http.StatusUnauthorized, msg)
		return
	}

	var req model.UpdateProfileForm
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	s.mu.Lock()
	profile := s.profiles[u.ID]
	if profile == nil {
		profile = &model.Profile{}
		s.profiles[u.ID] = profile
	}
	// partial update: absent fields keep their stored values
	if req.Address != "" {
		profile.Address = strPtr(req.Address)
	}
	if req.City != "" {
		profile.City = strPtr(req.City)
	}
	if req.Pincode != "" {
		profile.Pincode = strPtr(req.Pincode)
	}
	if req.AvatarURL != "" {
		profile.AvatarURL = strPtr(req.AvatarURL)
	}
	if req.Bio != "" {
		profile.Bio = strPtr(req.Bio)
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Profile updated successfully"})
}

func (s *Server) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	u, msg := s.currentUser(r)
	if u == nil {
		writeError(w, http.StatusUnauthorized, msg)
		return
	}

	var req model.CreateRequestForm
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if req.CategoryID == 0 || req.Quantity == 0 || req.PickupAddress == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	s.mu.Lock()
	var estimated *float64
	if base := s.basePriceOf(req.CategoryID); base > 0 {
		v := base * req.Quantity
		estimated = &v
	}

	rec := &stubRequest{
		RequestRecord: model.RequestRecord{
			ID:             s.nextRequestID,
			CategoryID:     req.CategoryID,
			Quantity:       req.Quantity,
			EstimatedPrice: estimated,
			PickupAddress:  req.PickupAddress,
			Status:         constant.StatusPending,
			Notes:          req.Notes,
			CreatedAt:      model.APITime{Time: time.Now().UTC()},
		},
		ownerID: u.ID,
	}
	if req.PickupDate != "" {
		if d, err := time.Parse("2006-01-02", req.PickupDate); err == nil {
			rec.PickupDate = model.APITime{Time: d}
		}
	}
	s.nextRequestID++
	s.requests[rec.ID] = rec
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, model.CreateRequestResponse{
		Message:        "Request created successfully",
		RequestID:      rec.ID,
		EstimatedPrice: rec.EstimatedPrice,
	})
}

func (s *Server) handleListRequests(w http.ResponseWriter, r *http.Request) {
	u, msg := s.currentUser(r)
	if u == nil {
		writeError(w, http.StatusUnauthorized, msg)
		return
	}

	filter := constant.RequestStatus(r.URL.Query().Get("status"))

	s.mu.Lock()
	var mine []model.RequestRecord
	for _, rec := range s.requests {
		if rec.ownerID != u.ID {
			continue
		}
		if filter != "" && rec.Status != filter {
			continue
		}
		mine = append(mine, rec.RequestRecord)
	}
	s.mu.Unlock()

	sort.Slice(mine, func(i, j int) bool {
		return mine[i].CreatedAt.Time.After(mine[j].CreatedAt.Time)
	})
	if mine == nil {
		mine = []model.RequestRecord{}
	}

	writeJSON(w, http.StatusOK, model.RequestsResponse{Requests: mine})
}

func (s *Server) handleGetRequest(w http.ResponseWriter, r *http.Request) {
	u, msg := s.currentUser(r)
	if u == nil {
		writeError(w, http.StatusUnauthorized, msg)
		return
	}

	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	s.mu.Lock()
	rec := s.requests[id]
	s.mu.Unlock()

	if rec == nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	if rec.ownerID != u.ID && u.Role != "dealer" && u.Role != "admin" {
		writeError(w, http.StatusForbidden, "Forbidden")
		return
	}

	writeJSON(w, http.StatusOK, rec.RequestRecord)
}

func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	u, msg := s.currentUser(r)
	if u == nil {
		writeError(w, http.StatusUnauthorized, msg)
		return
	}

	var req model.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if !req.Status.Known() {
		writeError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	s.mu.Lock()
	rec := s.requests[id]
	if rec == nil {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	if rec.ownerID != u.ID && u.Role != "dealer" && u.Role != "admin" {
		s.mu.Unlock()
		writeError(w, http.StatusForbidden, "Forbidden")
		return
	}
	rec.Status = req.Status
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Status updated successfully"})
}

func strPtr(s string) *string {
	return &s
}
