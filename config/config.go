package config

import "time"

// Config collects every tunable of the server. Values come from the
// environment (or flags) via conf.Parse with the MAYA prefix.
type Config struct {
	Web     Web
	Cors    Cors
	Store   Store
	Session Session
	Mock    Mock
	Auth    Auth
}

type Web struct {
	Address         string        `conf:"default:0.0.0.0:8000"`
	ReadTimeout     time.Duration `conf:"default:5s"`
	WriteTimeout    time.Duration `conf:"default:10s"`
	IdleTimeout     time.Duration `conf:"default:120s"`
	ShutdownTimeout time.Duration `conf:"default:20s"`
}

type Cors struct {
	Origin string `conf:"default:http://localhost:3000"`
}

type Store struct {
	Dir string `conf:"default:./data"`
}

type Session struct {
	Lifetime time.Duration `conf:"default:24h"`
}

// Mock controls the simulated latency of operations that would hit a
// remote backend in a real deployment.
type Mock struct {
	AuthLatency     time.Duration `conf:"default:500ms"`
	CheckoutLatency time.Duration `conf:"default:1s"`
}

type Auth struct {
	RateRPS   float64       `conf:"default:1"`
	RateBurst int           `conf:"default:5"`
	RateTTL   time.Duration `conf:"default:3m"`
}
