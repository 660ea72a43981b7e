package integration

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"agri-works/internal/config"
	"agri-works/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a migrated PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	dbConfig := config.DatabaseConfig{
		URL:             connStr,
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}

	logger := zerolog.Nop()
	pool, err := database.NewPool(ctx, dbConfig, logger)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := database.Migrate(pool, logger); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// SeedProducts inserts test product data into the database. Creation times
// are spaced so P005 is the newest.
func SeedProducts(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	products := []struct {
		id       string
		name     string
		price    float64
		category string
		status   string
		images   []string
	}{
		{"P001", "Hydraulic Trolley", 285000, "Trolleys", "Active", []string{"https://cdn.example.com/trolley.jpg"}},
		{"P002", "9-Tyne Cultivator", 48000, "Cultivators", "Active", []string{"https://cdn.example.com/cultivator.jpg"}},
		{"P003", "Heavy Duty Rotavator", 135000, "Rotavators", "Active", []string{}},
		{"P004", "Reversible Plough", 92000, "Ploughs", "Discontinued", []string{"https://cdn.example.com/plough.jpg"}},
		{"P005", "Tractor Mounted Harvester", 450000, "Harvesters", "Active", []string{}},
	}

	for i, p := range products {
		_, err := pool.Exec(ctx,
			`INSERT INTO products (id, name, price, category, status, images, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			p.id, p.name, p.price, p.category, p.status, p.images, base.Add(time.Duration(i)*time.Hour),
		)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.id, err)
		}
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"enquiries", "products"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}

// memoryImageStore keeps uploaded objects in memory.
type memoryImageStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemoryImageStore() *memoryImageStore {
	return &memoryImageStore{objects: make(map[string][]byte)}
}

func (s *memoryImageStore) Put(_ context.Context, key, _ string, body []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = body
	return "https://storage.example.com/products/" + key, nil
}

func (s *memoryImageStore) Prefix() string {
	return "product-images/"
}

func (s *memoryImageStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
