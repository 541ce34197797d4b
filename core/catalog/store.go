package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/mayatech/storefront/core/ids"
	"github.com/mayatech/storefront/storage"
)

var ErrNotFound = errors.New("catalog: entry not found")

// Store owns the product and course lists. Load reads both lists from
// storage and seeds them on first run; every add persists the full list.
type Store struct {
	storage storage.Store
	ids     *ids.Generator

	mu       sync.RWMutex
	products []Product
	courses  []Course
}

func NewStore(sto storage.Store, gen *ids.Generator) *Store {
	return &Store{storage: sto, ids: gen}
}

func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.storage.Get(storage.KeyProducts, &s.products)
	if errors.Is(err, storage.ErrKeyNotFound) {
		s.products = seedProducts()
		err = s.storage.Set(storage.KeyProducts, s.products)
	}
	if err != nil {
		return fmt.Errorf("loading products: %w", err)
	}

	err = s.storage.Get(storage.KeyCourses, &s.courses)
	if errors.Is(err, storage.ErrKeyNotFound) {
		s.courses = seedCourses()
		err = s.storage.Set(storage.KeyCourses, s.courses)
	}
	if err != nil {
		return fmt.Errorf("loading courses: %w", err)
	}

	return nil
}

// Products returns the product list in insertion order.
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) Courses() []Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Course, len(s.courses))
	copy(out, s.courses)
	return out
}

func (s *Store) Product(id string) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (s *Store) Course(id string) (Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return Course{}, ErrNotFound
}

func (s *Store) AddProduct(np ProductNew) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := Product{
		ID:          s.ids.Next(ids.PrefixProduct),
		Name:        np.Name,
		Description: np.Description,
		Price:       np.Price,
		ImageURL:    np.ImageURL,
		Category:    np.Category,
		Stock:       np.Stock,
		Rating:      np.Rating,
		Reviews:     np.Reviews,
		Condition:   np.Condition,
	}

	s.products = append(s.products, p)
	if err := s.storage.Set(storage.KeyProducts, s.products); err != nil {
		return Product{}, fmt.Errorf("persisting products: %w", err)
	}
	return p, nil
}

func (s *Store) AddCourse(nc CourseNew) (Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := Course{
		ID:               s.ids.Next(ids.PrefixCourse),
		Title:            nc.Title,
		ShortDescription: nc.ShortDescription,
		LongDescription:  nc.LongDescription,
		ImageURL:         nc.ImageURL,
		Instructor:       nc.Instructor,
		Duration:         nc.Duration,
		Price:            nc.Price,
		Difficulty:       nc.Difficulty,
		Modules:          nc.Modules,
		LearningSchedule: nc.LearningSchedule,
	}

	s.courses = append(s.courses, c)
	if err := s.storage.Set(storage.KeyCourses, s.courses); err != nil {
		return Course{}, fmt.Errorf("persisting courses: %w", err)
	}
	return c, nil
}

// Categories lists the distinct product categories, sorted.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []string
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}
