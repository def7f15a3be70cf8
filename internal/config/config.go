package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Client holds everything the terminal client needs.
type Client struct {
	APIBaseURL  string
	StateDBPath string
}

// Stub holds everything the stub API server needs.
type Stub struct {
	Addr   string
	DBPath string
}

// LoadClient reads .env if present and fills defaults pointing at a local
// stub server.
func LoadClient() Client {
	loadDotenv()
	return Client{
		APIBaseURL:  getenv("API_BASE_URL", "http://localhost:3001/api/v1"),
		StateDBPath: getenv("STATE_DB_PATH", "argentbank-state.db"),
	}
}

// LoadStub reads .env if present. JWT_SECRET has no safe default, so a
// missing one is fatal.
func LoadStub() Stub {
	loadDotenv()
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatalf("JWT_SECRET is not set in environment")
	}
	return Stub{
		Addr:   getenv("STUB_ADDR", ":3001"),
		DBPath: getenv("STUB_DB_PATH", "argentbank-users.db"),
	}
}

func loadDotenv() {
	// a missing .env is fine, plain environment variables still apply
	_ = godotenv.Load()
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
