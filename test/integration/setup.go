//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	// Создаём контейнер Postgres через testcontainers
	postgresContainer, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:17.7"),
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)

	require.NoError(t, db.Ping())

	applyMigrations(t, db)

	t.Cleanup(func() {
		db.Close()
		require.NoError(t, postgresContainer.Terminate(ctx))
	})

	return db
}

func applyMigrations(t *testing.T, db *sql.DB) {
	var migrationSQL []byte
	var err error

	paths := []string{
		filepath.Join("..", "..", "migrations", "000001_init.up.sql"),
		filepath.Join("migrations", "000001_init.up.sql"),
		filepath.Join("..", "migrations", "000001_init.up.sql"),
	}

	for _, path := range paths {
		migrationSQL, err = os.ReadFile(path)
		if err == nil {
			break
		}
	}
	require.NoError(t, err, "не удалось прочитать файл миграции migrations/000001_init.up.sql")

	_, err = db.Exec(string(migrationSQL))
	require.NoError(t, err, "не удалось применить миграцию")
}

// seedUser создает пользователя и возвращает его ID
func seedUser(t *testing.T, db *sql.DB, name string) int64 {
	var id int64
	err := db.QueryRow(`INSERT INTO users (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	require.NoError(t, err)
	return id
}

// seedTeam создает команду с переданными пользователями и возвращает ее ID
func seedTeam(t *testing.T, db *sql.DB, name string, userIDs ...int64) int {
	var id int
	err := db.QueryRow(`INSERT INTO teams (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	require.NoError(t, err)

	for _, userID := range userIDs {
		_, err := db.Exec(`INSERT INTO team_members (team_id, user_id) VALUES ($1, $2)`, id, userID)
		require.NoError(t, err)
	}
	return id
}

// seedTask создает задачу бэклога, привязанную к спринту
func seedTask(t *testing.T, db *sql.DB, sprintID int, assignedTo *int64, status string, points *int, title string) {
	_, err := db.Exec(
		`INSERT INTO backlog_tasks (sprint_id, assigned_to, status, points, title) VALUES ($1, $2, $3, $4, $5)`,
		sprintID, assignedTo, status, points, title,
	)
	require.NoError(t, err)
}
