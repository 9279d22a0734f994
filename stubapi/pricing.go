package stubapi

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/scrapzee/scrapzee-cli/model"
)

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, model.CategoriesResponse{Categories: out})
}

func (s *Server) handlePriceHistory(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	s.mu.Lock()
	entries := append([]model.PriceHistoryEntry(nil), s.history[id]...)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, model.PriceHistoryResponse{History: entries})
}

// basePriceOf returns the catalog base price, 0 for unknown categories.
func (s *Server) basePriceOf(categoryID int64) float64 {
	for _, c := range s.categories {
		if c.ID == categoryID {
			return c.BasePrice
		}
	}
	return 0
}
