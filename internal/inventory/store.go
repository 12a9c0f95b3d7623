package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Brunoalemao2017/novo-app/internal/mirror"
)

// CategoryAll is the reserved marker requesting an unfiltered product view.
// It is always present in the category set and can never be removed.
const CategoryAll = "Todas"

var (
	ErrReservedCategory = errors.New("category is reserved")
	ErrCategoryInUse    = errors.New("category has registered products")
)

// Store owns the {products, categories} aggregate. All reads and writes
// funnel through it; callers only ever receive copies. Every mutation is
// followed by a full-snapshot write to the mirror under the store's key.
//
// The store performs no input validation: malformed payloads are rejected
// by the HTTP layer before they reach it.
type Store struct {
	mirror mirror.Mirror
	key    string

	mu    sync.Mutex
	state State
}

func New(ctx context.Context, m mirror.Mirror, key string) *Store {
	s := &Store{mirror: m, key: key}
	s.state = s.load(ctx)
	return s
}

// load reads the stored snapshot. Absent or unparsable snapshots fall back
// to the seed dataset: a broken snapshot is "no prior state", not an error.
func (s *Store) load(ctx context.Context) State {
	b, err := s.mirror.Load(ctx, s.key)
	if err != nil {
		if !errors.Is(err, mirror.ErrNoSnapshot) {
			log.Printf("inventory: load snapshot: %v", err)
		}
		return Seed()
	}
	var st State
	if err := json.Unmarshal(b, &st); err != nil {
		log.Printf("inventory: unparsable snapshot, using seed: %v", err)
		return Seed()
	}
	return st
}

// persist writes the full aggregate through to the mirror. Failures are
// logged and swallowed: the in-memory state stays authoritative for the
// rest of the session. Callers must hold s.mu.
func (s *Store) persist(ctx context.Context) {
	b, err := json.Marshal(s.state)
	if err != nil {
		log.Printf("inventory: marshal snapshot: %v", err)
		return
	}
	if err := s.mirror.Save(ctx, s.key, b); err != nil {
		log.Printf("inventory: persist skipped: %v", err)
	}
}

// AddProduct appends a product with a fresh identifier and timestamp. A
// category not yet in the set is appended implicitly.
func (s *Store) AddProduct(ctx context.Context, in ProductInput) Product {
	p := Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Description: in.Description,
		Code:        in.Code,
		MinStock:    in.MinStock,
		Unit:        in.Unit,
		CreatedAt:   time.Now().UTC(),
		Supplier:    in.Supplier,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Products = append(s.state.Products, p)
	s.addCategoryLocked(p.Category)
	s.persist(ctx)
	return p
}

// UpdateProduct replaces the record with the same identifier. An unknown
// identifier is a silent no-op, not an upsert. The caller supplies the
// creation timestamp (copied from the original record).
func (s *Store) UpdateProduct(ctx context.Context, p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Products {
		if s.state.Products[i].ID == p.ID {
			s.state.Products[i] = p
		}
	}
	s.addCategoryLocked(p.Category)
	s.persist(ctx)
}

// RemoveProduct deletes by identifier; no-op if absent.
func (s *Store) RemoveProduct(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.state.Products[:0]
	for _, p := range s.state.Products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.state.Products = kept
	s.persist(ctx)
}

func (s *Store) GetProduct(id string) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.state.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// FilterByCategory returns the products in a category. The CategoryAll
// sentinel returns the full collection.
func (s *Store) FilterByCategory(category string) []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if category == CategoryAll {
		return append([]Product(nil), s.state.Products...)
	}
	var out []Product
	for _, p := range s.state.Products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Search matches term case-insensitively against name, code and
// description. An empty term matches everything.
func (s *Store) Search(term string) []Product {
	t := strings.ToLower(term)
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Product
	for _, p := range s.state.Products {
		if strings.Contains(strings.ToLower(p.Name), t) ||
			strings.Contains(strings.ToLower(p.Code), t) ||
			strings.Contains(strings.ToLower(p.Description), t) {
			out = append(out, p)
		}
	}
	return out
}

// LowStock returns products at or below their minimum stock threshold.
// Recomputed by full scan on every call.
func (s *Store) LowStock() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Product
	for _, p := range s.state.Products {
		if p.Quantity <= p.MinStock {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) TotalProducts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.Products)
}

// TotalValue is the sum of price*quantity over all products.
func (s *Store) TotalValue() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, p := range s.state.Products {
		total += p.Price * float64(p.Quantity)
	}
	return total
}

// AddCategory appends a category; duplicates are a no-op, not an error.
func (s *Store) AddCategory(ctx context.Context, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.addCategoryLocked(name) {
		s.persist(ctx)
	}
}

// RemoveCategory removes a category from the set. The sentinel and any
// category still referenced by a product are blocking conditions reported
// as error values.
func (s *Store) RemoveCategory(ctx context.Context, name string) error {
	if name == CategoryAll {
		return ErrReservedCategory
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.state.Products {
		if p.Category == name {
			return ErrCategoryInUse
		}
	}
	kept := s.state.Categories[:0]
	for _, c := range s.state.Categories {
		if c != name {
			kept = append(kept, c)
		}
	}
	s.state.Categories = kept
	s.persist(ctx)
	return nil
}

func (s *Store) Products() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Product(nil), s.state.Products...)
}

func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.state.Categories...)
}

func (s *Store) addCategoryLocked(name string) bool {
	for _, c := range s.state.Categories {
		if c == name {
			return false
		}
	}
	s.state.Categories = append(s.state.Categories, name)
	return true
}
