package test

import (
	"net/http"
	"testing"

	"github.com/mayatech/storefront/core/catalog"
)

type catalogTest struct {
	*TestEnv
}

func TestCatalog(t *testing.T) {
	env := NewTestEnv(t)

	ct := &catalogTest{env}

	ct.testSeededProducts(t)
	ct.testProductFilters(t)
	ct.testShowProduct(t)
	ct.testCategories(t)
	ct.testCreateProduct(t)
	ct.testCourses(t)
	ct.testCreateCourse(t)
}

func (ct *catalogTest) listProducts(t *testing.T, query string) []catalog.Product {
	t.Helper()

	var out []catalog.Product
	if code := ct.request(t, http.MethodGet, "/products"+query, nil, &out); code != http.StatusOK {
		t.Fatalf("listing products %q: status %d", query, code)
	}
	return out
}

func (ct *catalogTest) testSeededProducts(t *testing.T) {
	products := ct.listProducts(t, "")
	if len(products) != 10 {
		t.Fatalf("seeded catalog has %d products", len(products))
	}

	// default ordering is by name
	for i := 1; i < len(products); i++ {
		if products[i-1].Name > products[i].Name {
			t.Fatalf("products out of order: %q before %q", products[i-1].Name, products[i].Name)
		}
	}
}

func (ct *catalogTest) testProductFilters(t *testing.T) {
	byQuery := ct.listProducts(t, "?q=arduino")
	if len(byQuery) == 0 {
		t.Fatal("q=arduino matched nothing")
	}
	for _, p := range byQuery {
		if p.Name != "Arduino Uno R3" {
			t.Fatalf("q=arduino matched %q", p.Name)
		}
	}

	cheap := ct.listProducts(t, "?max_price=10")
	for _, p := range cheap {
		if p.Price > 10 {
			t.Fatalf("max_price=10 returned %q at %.2f", p.Name, p.Price)
		}
	}

	sorted := ct.listProducts(t, "?sort=price-desc")
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Price < sorted[i].Price {
			t.Fatal("sort=price-desc is not descending")
		}
	}

	all := ct.listProducts(t, "?category=All")
	if len(all) != 10 {
		t.Fatalf("category=All filtered down to %d products", len(all))
	}
}

func (ct *catalogTest) testShowProduct(t *testing.T) {
	var p catalog.Product
	if code := ct.request(t, http.MethodGet, "/products/p101", nil, &p); code != http.StatusOK {
		t.Fatalf("showing p101: status %d", code)
	}
	if p.ID != "p101" {
		t.Fatalf("asked for p101, got %q", p.ID)
	}

	if code := ct.request(t, http.MethodGet, "/products/p999", nil, nil); code != http.StatusNotFound {
		t.Fatalf("unknown product: status %d", code)
	}
}

func (ct *catalogTest) testCategories(t *testing.T) {
	var cats []string
	if code := ct.request(t, http.MethodGet, "/products/categories", nil, &cats); code != http.StatusOK {
		t.Fatalf("listing categories: status %d", code)
	}
	if len(cats) == 0 {
		t.Fatal("no categories")
	}
}

func (ct *catalogTest) testCreateProduct(t *testing.T) {
	np := catalog.ProductNew{
		Name:        "Logic Analyzer",
		Description: "8-channel USB logic analyzer",
		Price:       34.50,
		ImageURL:    "https://images.mayatech.com/logic-analyzer.jpg",
		Category:    "Tools",
		Stock:       12,
		Rating:      4.4,
		Reviews:     18,
		Condition:   catalog.New,
	}

	// not logged in
	if code := ct.request(t, http.MethodPost, "/products", np, nil); code != http.StatusUnauthorized {
		t.Fatalf("create while logged out: status %d", code)
	}

	// logged in, but not an admin
	ct.register(t, "dawit@example.com", "s3cret", "Dawit Lemma")
	if code := ct.request(t, http.MethodPost, "/products", np, nil); code != http.StatusForbidden {
		t.Fatalf("create as plain user: status %d", code)
	}
	ct.logout(t)

	ct.register(t, adminEmail, adminPass, "Maya Admin")
	defer ct.logout(t)

	var created catalog.Product
	if code := ct.request(t, http.MethodPost, "/products", np, &created); code != http.StatusCreated {
		t.Fatalf("create as admin: status %d", code)
	}
	if created.ID != "p126" {
		t.Fatalf("first created product got id %q", created.ID)
	}

	var back catalog.Product
	if code := ct.request(t, http.MethodGet, "/products/"+created.ID, nil, &back); code != http.StatusOK {
		t.Fatalf("fetching created product: status %d", code)
	}
	if back.Name != np.Name {
		t.Fatalf("created product came back as %q", back.Name)
	}

	// invalid payload
	bad := np
	bad.Condition = "Broken"
	if code := ct.request(t, http.MethodPost, "/products", bad, nil); code != http.StatusUnprocessableEntity {
		t.Fatalf("invalid condition: status %d", code)
	}
}

func (ct *catalogTest) testCourses(t *testing.T) {
	var courses []catalog.Course
	if code := ct.request(t, http.MethodGet, "/courses", nil, &courses); code != http.StatusOK {
		t.Fatalf("listing courses: status %d", code)
	}
	if len(courses) != 3 {
		t.Fatalf("seeded catalog has %d courses", len(courses))
	}

	var filtered []catalog.Course
	if code := ct.request(t, http.MethodGet, "/courses?difficulty=Beginner", nil, &filtered); code != http.StatusOK {
		t.Fatalf("filtering courses: status %d", code)
	}
	for _, c := range filtered {
		if c.Difficulty != catalog.Beginner {
			t.Fatalf("difficulty=Beginner returned %q course %q", c.Difficulty, c.Title)
		}
	}

	var c catalog.Course
	if code := ct.request(t, http.MethodGet, "/courses/c201", nil, &c); code != http.StatusOK {
		t.Fatalf("showing c201: status %d", code)
	}
	if len(c.Modules) == 0 {
		t.Fatal("course c201 has no modules")
	}

	if code := ct.request(t, http.MethodGet, "/courses/c999", nil, nil); code != http.StatusNotFound {
		t.Fatalf("unknown course: status %d", code)
	}
}

func (ct *catalogTest) testCreateCourse(t *testing.T) {
	nc := catalog.CourseNew{
		Title:            "Embedded Rust",
		ShortDescription: "Bare-metal firmware in Rust",
		LongDescription:  "From blinky to a full RTIC application on Cortex-M.",
		ImageURL:         "https://images.mayatech.com/embedded-rust.jpg",
		Instructor:       "Sara Bekele",
		Duration:         "6 weeks",
		Price:            59.99,
		Difficulty:       catalog.Advanced,
		Modules: []catalog.Module{
			{Title: "Toolchain setup", Content: "Targets, probes and flashing."},
		},
	}

	ct.login(t, adminEmail, adminPass)
	defer ct.logout(t)

	var created catalog.Course
	if code := ct.request(t, http.MethodPost, "/courses", nc, &created); code != http.StatusCreated {
		t.Fatalf("create course as admin: status %d", code)
	}
	if created.ID != "c205" {
		t.Fatalf("first created course got id %q", created.ID)
	}
}
