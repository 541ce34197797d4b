package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/mayatech/storefront/api"
	"github.com/mayatech/storefront/core/auth"
	"github.com/mayatech/storefront/core/cart"
	"github.com/mayatech/storefront/core/catalog"
	"github.com/mayatech/storefront/core/ids"
	"github.com/mayatech/storefront/core/notify"
	"github.com/mayatech/storefront/core/user"
	"github.com/mayatech/storefront/storage"
	"github.com/sirupsen/logrus"
)

const (
	adminEmail = "admin@mayatech.com"
	adminPass  = "admin"
)

// TestEnv runs the full router over an in-memory store, with the mock
// latency turned off. The HTTP client carries a cookie jar so session
// cookies survive across calls, like a browser.
type TestEnv struct {
	Server *httptest.Server
	URL    string

	Catalog *catalog.Store
	Users   *user.Store
}

func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := storage.NewMemStore()
	gen := ids.NewGenerator()

	cat := catalog.NewStore(store, gen)
	if err := cat.Load(); err != nil {
		t.Fatalf("loading catalog: %v", err)
	}

	bag := cart.New(store)
	if err := bag.Load(); err != nil {
		t.Fatalf("loading cart: %v", err)
	}

	users := user.NewStore(store, gen, 0)
	if err := users.Load(); err != nil {
		t.Fatalf("loading users: %v", err)
	}

	session := scs.New()
	toasts := notify.NewCenter(notify.DefaultTTL)

	mux := api.APIMux(api.APIConfig{
		Log:     logger,
		Session: session,
		Catalog: cat,
		Cart:    bag,
		Users:   users,
		Toasts:  toasts,
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("building cookie jar: %v", err)
	}
	srv.Client().Jar = jar

	return &TestEnv{
		Server:  srv,
		URL:     srv.URL,
		Catalog: cat,
		Users:   users,
	}
}

func (e *TestEnv) Client() *http.Client {
	return e.Server.Client()
}

// request performs a JSON round trip and returns the status code. The
// body is decoded into out only on 2xx replies.
func (e *TestEnv) request(t *testing.T, method, path string, body any, out any) int {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(b)
	}

	r, err := http.NewRequest(method, e.URL+path, rd)
	if err != nil {
		t.Fatal(err)
	}
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}

	w, err := e.Client().Do(r)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Body.Close()

	if out != nil && w.StatusCode < http.StatusMultipleChoices {
		if err := json.NewDecoder(w.Body).Decode(out); err != nil {
			t.Fatalf("decoding %s %s response: %v", method, path, err)
		}
	}
	return w.StatusCode
}

func (e *TestEnv) register(t *testing.T, email, pass, name string) auth.Session {
	t.Helper()

	var s auth.Session
	in := auth.RegisterRequest{Email: email, Password: pass, Name: name}
	if code := e.request(t, http.MethodPost, "/auth/register", in, &s); code != http.StatusCreated {
		t.Fatalf("registering %s: status %d", email, code)
	}
	return s
}

func (e *TestEnv) login(t *testing.T, email, pass string) auth.Session {
	t.Helper()

	var s auth.Session
	in := auth.LoginRequest{Email: email, Password: pass}
	if code := e.request(t, http.MethodPost, "/auth/login", in, &s); code != http.StatusOK {
		t.Fatalf("logging in as %s: status %d", email, code)
	}
	return s
}

func (e *TestEnv) logout(t *testing.T) {
	t.Helper()

	if code := e.request(t, http.MethodPost, "/auth/logout", nil, nil); code != http.StatusNoContent {
		t.Fatalf("logging out: status %d", code)
	}
}
