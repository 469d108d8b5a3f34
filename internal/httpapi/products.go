package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ShopKart/internal/catalog"
	"ShopKart/pkg/kit"
)

type productPage struct {
	Items      []catalog.Product `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	q := catalog.Query{
		Search:        qs.Get("search"),
		InDescription: qs.Get("include_desc") == "1" || qs.Get("include_desc") == "true",
		Category:      qs.Get("category"),
		MinPrice:      floatParam(qs.Get("min_price")),
		MaxPrice:      floatParam(qs.Get("max_price")),
		MinRating:     floatParam(qs.Get("min_rating")),
		Sort:          catalog.ParseSortKey(qs.Get("sort")),
	}

	size := intParam(qs.Get("page_size"))
	if size <= 0 {
		size = s.PageSize
	}
	if size <= 0 {
		size = catalog.DefaultPageSize
	}
	page := intParam(qs.Get("page"))
	if page < 1 {
		page = 1
	}

	filtered := catalog.Apply(s.Catalog.List(), q)

	totalPages := (len(filtered) + size - 1) / size
	kit.WriteJSON(w, http.StatusOK, productPage{
		Items:      catalog.Paginate(filtered, page, size),
		Total:      len(filtered),
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
	})
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	id := intParam(chi.URLParam(r, "id"))

	p, ok := s.Catalog.Get(id)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	var p catalog.Product
	if err := kit.DecodeJSON(w, r, maxBodyBytes, &p); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}
	if p.Name == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "name required", nil)
		return
	}

	if p.ID == 0 {
		p.ID = nextProductID(s.Catalog.List())
	}

	s.Catalog.Add(p)
	kit.WriteJSON(w, http.StatusCreated, p)
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	id := intParam(chi.URLParam(r, "id"))

	var p catalog.Product
	if err := kit.DecodeJSON(w, r, maxBodyBytes, &p); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	// Ids are immutable once created; the path wins over the body.
	p.ID = id
	s.Catalog.Update(id, p)
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	s.Catalog.Delete(intParam(chi.URLParam(r, "id")))
	w.WriteHeader(http.StatusNoContent)
}

func nextProductID(products []catalog.Product) int {
	next := 1
	for _, p := range products {
		if p.ID >= next {
			next = p.ID + 1
		}
	}
	return next
}

func intParam(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func floatParam(v string) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}
