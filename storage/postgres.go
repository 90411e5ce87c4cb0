package storage

import (
	"database/sql"
	"fmt"

	"ewintr.nl/videonotes/model"
	_ "github.com/lib/pq"
)

type PostgresInfo struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

func (pi PostgresInfo) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		pi.Host, pi.Port, pi.User, pi.Password, pi.Database)
}

func OpenPostgres(info PostgresInfo) (*sql.DB, error) {
	db, err := sql.Open("postgres", info.DSN())
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not reach database: %w", err)
	}

	return db, nil
}

type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) (*Postgres, error) {
	p := &Postgres{db: db}
	if err := p.migrate(pgMigration); err != nil {
		return &Postgres{}, err
	}

	return p, nil
}

func (p *Postgres) Save(run *model.Run) error {
	query := `INSERT INTO run
(id, session_id, video_url, detail_level, status, error, started_at, finished_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id)
DO UPDATE SET
  status = EXCLUDED.status,
  error = EXCLUDED.error,
  finished_at = EXCLUDED.finished_at`
	if _, err := p.db.Exec(query,
		run.ID,
		run.SessionID,
		run.VideoURL,
		run.DetailLevel,
		run.Status,
		run.Error,
		run.StartedAt,
		run.FinishedAt,
	); err != nil {
		return fmt.Errorf("could not save run: %w", err)
	}

	return nil
}

func (p *Postgres) Recent(limit int) ([]model.Run, error) {
	query := `SELECT id, session_id, video_url, detail_level, status, error, started_at, finished_at
FROM run
ORDER BY finished_at DESC
LIMIT $1`
	rows, err := p.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("could not query runs: %w", err)
	}
	defer rows.Close()

	runs := []model.Run{}
	for rows.Next() {
		var run model.Run
		if err := rows.Scan(
			&run.ID,
			&run.SessionID,
			&run.VideoURL,
			&run.DetailLevel,
			&run.Status,
			&run.Error,
			&run.StartedAt,
			&run.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("could not scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read runs: %w", err)
	}

	return runs, nil
}

func (p *Postgres) migrate(wanted []string) error {
	query := `CREATE TABLE IF NOT EXISTS migration
("id" SERIAL PRIMARY KEY, "query" TEXT)`
	_, err := p.db.Exec(query)
	if err != nil {
		return err
	}

	// find existing
	rows, err := p.db.Query(`SELECT query FROM migration ORDER BY id`)
	if err != nil {
		return err
	}

	existing := []string{}
	for rows.Next() {
		var query string
		if err := rows.Scan(&query); err != nil {
			rows.Close()
			return err
		}
		existing = append(existing, query)
	}
	rows.Close()

	missing, err := compareMigrations(wanted, existing)
	if err != nil {
		return err
	}

	for _, query := range missing {
		if _, err := p.db.Exec(query); err != nil {
			return fmt.Errorf("could not apply migration: %w", err)
		}

		// register
		if _, err := p.db.Exec(`INSERT INTO migration (query) VALUES ($1)`, query); err != nil {
			return err
		}
	}

	return nil
}

// compareMigrations returns the wanted migrations that have not run yet. The
// history in the database must be a prefix of wanted.
func compareMigrations(wanted, existing []string) ([]string, error) {
	needed := []string{}
	if len(wanted) < len(existing) {
		return []string{}, fmt.Errorf("not enough migrations")
	}

	for i, want := range wanted {
		switch {
		case i >= len(existing):
			needed = append(needed, want)
		case want != existing[i]:
			return []string{}, fmt.Errorf("incompatible migration: %v", want)
		}
	}

	return needed, nil
}
