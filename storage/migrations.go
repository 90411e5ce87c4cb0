package storage

var pgMigration = []string{
	`CREATE TYPE run_status AS ENUM ('completed', 'error')`,
	`CREATE TABLE run (
id uuid PRIMARY KEY,
session_id uuid NOT NULL,
video_url TEXT NOT NULL,
detail_level VARCHAR(32) NOT NULL,
status run_status NOT NULL,
error TEXT NOT NULL DEFAULT '',
started_at TIMESTAMP WITH TIME ZONE NOT NULL,
finished_at TIMESTAMP WITH TIME ZONE NOT NULL
)`,
	`CREATE INDEX run_finished_at_idx ON run (finished_at DESC)`,
}
