//go:build integration
// +build integration

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	goose "github.com/pressly/goose/v3"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres spins up a Postgres container and returns a DSN and terminate func.
func startPostgres(t *testing.T) (dsn string, terminate func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "stockpulse",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=stockpulse sslmode=disable", host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container start: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", "postgres", "postgres", host, port.Port(), "stockpulse")
	terminate = func() { _ = container.Terminate(context.Background()) }
	return dsn, terminate
}

func openDB(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("dialect: %v", err)
	}
	// migrations path relative to this test file (internal/storage → ../../db/migrations)
	path := filepath.Join("..", "..", "db", "migrations")
	if err := goose.Up(db, path); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
}

func TestLikesRepository_Integration(t *testing.T) {
	dsn, terminate := startPostgres(t)
	defer terminate()

	db := openDB(t, dsn)
	defer func() { _ = db.Close() }()
	runMigrations(t, db)

	repo := NewLikesRepository(db)
	ctx := context.Background()

	// Absent record counts as zero.
	n, err := repo.LikeCount(ctx, "GOOG")
	if err != nil || n != 0 {
		t.Fatalf("fresh count=%d err=%v, want 0,nil", n, err)
	}

	// First like creates the record and counts one.
	n, err = repo.RecordLike(ctx, "GOOG", "visitor-a")
	if err != nil || n != 1 {
		t.Fatalf("first like count=%d err=%v, want 1,nil", n, err)
	}

	// Same visitor again: idempotent.
	n, err = repo.RecordLike(ctx, "GOOG", "visitor-a")
	if err != nil || n != 1 {
		t.Fatalf("repeat like count=%d err=%v, want 1,nil", n, err)
	}

	// A different visitor grows the set.
	n, err = repo.RecordLike(ctx, "GOOG", "visitor-b")
	if err != nil || n != 2 {
		t.Fatalf("second visitor count=%d err=%v, want 2,nil", n, err)
	}

	// Empty visitor identifier is never recorded.
	n, err = repo.RecordLike(ctx, "GOOG", "")
	if err != nil || n != 2 {
		t.Fatalf("empty visitor count=%d err=%v, want 2,nil", n, err)
	}
}

// TestRecordLike_ConcurrentSameVisitor verifies the set-add converges to a
// single row under racing likes from the same visitor.
func TestRecordLike_ConcurrentSameVisitor(t *testing.T) {
	dsn, terminate := startPostgres(t)
	defer terminate()

	db := openDB(t, dsn)
	defer func() { _ = db.Close() }()
	runMigrations(t, db)

	repo := NewLikesRepository(db)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.RecordLike(ctx, "TSLA", "same-visitor"); err != nil {
				t.Errorf("concurrent like: %v", err)
			}
		}()
	}
	wg.Wait()

	n, err := repo.LikeCount(ctx, "TSLA")
	if err != nil || n != 1 {
		t.Fatalf("count=%d err=%v, want exactly 1", n, err)
	}
}
