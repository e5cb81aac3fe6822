package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupFamilyPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

	CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		username VARCHAR(50) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS family_links (
		user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		family_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, family_id)
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func insertFamilyTestUser(t *testing.T, db *sqlx.DB, username string) uuid.UUID {
	t.Helper()
	var userID uuid.UUID
	err := db.Get(&userID,
		"INSERT INTO users (username, password_hash) VALUES ($1, 'hash') RETURNING user_id",
		username)
	assert.NoError(t, err)
	return userID
}

func TestFamilyWriteRepository_SaveAndExists(t *testing.T) {
	db, teardown := setupFamilyPostgresContainer(t)
	defer teardown()

	writeRepo := NewFamilyWriteRepository(db)
	readRepo := NewFamilyReadRepository(db)
	ctx := context.Background()

	alice := insertFamilyTestUser(t, db, "alice")
	bob := insertFamilyTestUser(t, db, "bob")

	exists, err := readRepo.Exists(ctx, alice, bob)
	assert.NoError(t, err)
	assert.False(t, exists)

	err = writeRepo.Save(ctx, alice, bob)
	assert.NoError(t, err)

	exists, err = readRepo.Exists(ctx, alice, bob)
	assert.NoError(t, err)
	assert.True(t, exists)

	// the edge is directed
	exists, err = readRepo.Exists(ctx, bob, alice)
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestFamilyWriteRepository_Save_DuplicateEdge(t *testing.T) {
	db, teardown := setupFamilyPostgresContainer(t)
	defer teardown()

	writeRepo := NewFamilyWriteRepository(db)
	ctx := context.Background()

	alice := insertFamilyTestUser(t, db, "alice")
	bob := insertFamilyTestUser(t, db, "bob")

	assert.NoError(t, writeRepo.Save(ctx, alice, bob))
	assert.Error(t, writeRepo.Save(ctx, alice, bob))
}

func TestFamilyReadRepository_LinkedByAndMembers(t *testing.T) {
	db, teardown := setupFamilyPostgresContainer(t)
	defer teardown()

	writeRepo := NewFamilyWriteRepository(db)
	readRepo := NewFamilyReadRepository(db)
	ctx := context.Background()

	alice := insertFamilyTestUser(t, db, "alice")
	bob := insertFamilyTestUser(t, db, "bob")
	carol := insertFamilyTestUser(t, db, "carol")

	// bob and carol both link themselves to alice
	assert.NoError(t, writeRepo.Save(ctx, bob, alice))
	assert.NoError(t, writeRepo.Save(ctx, carol, alice))

	linkedBy, err := readRepo.LinkedBy(ctx, alice)
	assert.NoError(t, err)
	if assert.Len(t, linkedBy, 2) {
		// ordered by username
		assert.Equal(t, "bob", linkedBy[0].Username)
		assert.Equal(t, bob, linkedBy[0].UserID)
		assert.Equal(t, "carol", linkedBy[1].Username)
	}

	members, err := readRepo.Members(ctx, bob)
	assert.NoError(t, err)
	if assert.Len(t, members, 1) {
		assert.Equal(t, "alice", members[0].Username)
		assert.Equal(t, alice, members[0].UserID)
	}

	// alice linked nobody, nobody linked bob
	members, err = readRepo.Members(ctx, alice)
	assert.NoError(t, err)
	assert.Empty(t, members)

	linkedBy, err = readRepo.LinkedBy(ctx, bob)
	assert.NoError(t, err)
	assert.Empty(t, linkedBy)
}
