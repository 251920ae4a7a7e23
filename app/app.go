package app

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"toolroom/db"
	"toolroom/directory"
	"toolroom/kvstore"
	"toolroom/ledger"
	"toolroom/memstore"
	"toolroom/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// aliases so handlers read a little shorter
type Ctx = gin.Context
type H = gin.H

// App aggregates the wired dependencies.
type App struct {
	Router   *gin.Engine
	DB       *gorm.DB // nil unless the postgres backend is active
	RDB      *redis.Client
	Config   Config
	Dir      directory.Directory
	Sessions session.Store
	Loans    *ledger.LoanLedger
	Requests *ledger.RequestLedger
}

// Config comes from environment variables.
type Config struct {
	RedisAddr    string
	RedisPwd     string
	WebOrigin    string
	SessionTTL   time.Duration
	StoreBackend string // postgres | redis | memory
	SeedPassword string
}

func MustNew() *App {
	cfg := loadConfig()

	// --- Redis (sessions, and records when STORE_BACKEND=redis) ---
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis: %v", err)
	}

	// --- Record stores + user directory per backend ---
	var (
		dbConn *gorm.DB
		dir    directory.Directory
		loanSt ledger.LoanStore
		reqSt  ledger.RequestStore
	)
	switch cfg.StoreBackend {
	case "postgres":
		dbConn = db.ConnectDB()
		repo := db.NewRepo(dbConn)
		if err := db.SeedDirectory(context.Background(), repo); err != nil {
			log.Fatalf("seed directory: %v", err)
		}
		dir = repo
		loanSt = db.NewLoanStore(repo)
		reqSt = db.NewRequestStore(repo)
	case "redis":
		dir = mustMemDirectory(cfg)
		loanSt = kvstore.NewLoanStore(rdb)
		reqSt = kvstore.NewRequestStore(rdb)
	case "memory":
		dir = mustMemDirectory(cfg)
		loanSt = memstore.NewLoanStore()
		reqSt = memstore.NewRequestStore()
	default:
		log.Fatalf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	loadCtx, loadCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer loadCancel()
	loans := ledger.NewLoanLedger(loadCtx, loanSt)
	requests := ledger.NewRequestLedger(loadCtx, reqSt)

	// --- Gin ---
	r := gin.Default()
	useCORS(r, cfg.WebOrigin)

	return &App{
		Router:   r,
		DB:       dbConn,
		RDB:      rdb,
		Config:   cfg,
		Dir:      dir,
		Sessions: session.NewRedisStore(rdb, cfg.SessionTTL),
		Loans:    loans,
		Requests: requests,
	}
}

func (a *App) Close() { _ = a.RDB.Close() }

func mustMemDirectory(cfg Config) *directory.Mem {
	users, err := directory.SeedUsers(cfg.SeedPassword)
	if err != nil {
		log.Fatalf("seed directory: %v", err)
	}
	return directory.NewMem(users)
}

func loadConfig() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}
	ttl := 24 * time.Hour
	if d, err := time.ParseDuration(get("SESSION_TTL_SECONDS", "86400") + "s"); err == nil {
		ttl = d
	}
	return Config{
		RedisAddr:    get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPwd:     os.Getenv("REDIS_PASSWORD"),
		WebOrigin:    get("WEB_ORIGIN", "http://localhost:5173"),
		SessionTTL:   ttl,
		StoreBackend: strings.ToLower(get("STORE_BACKEND", "postgres")),
		SeedPassword: get("SEED_PASSWORD", "123"),
	}
}
