package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"catalogo-bot/internal/models"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound é devolvido quando não há ingestão para a consulta
var ErrNotFound = errors.New("ingestão não encontrada")

// DB encapsula a conexão com o banco de dados
type DB struct {
	conn *sql.DB
}

// New cria uma nova instância do banco de dados
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}

	// sqlite aceita um escritor por vez
	conn.SetMaxOpenConns(1)

	db := &DB{conn: conn}

	if err := db.init(); err != nil {
		conn.Close()
		return nil, err
	}

	log.Println("Banco de dados inicializado com sucesso")
	return db, nil
}

// Close fecha a conexão com o banco de dados
func (db *DB) Close() error {
	return db.conn.Close()
}

// init cria as tabelas necessárias
func (db *DB) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS ingestions (
		id TEXT PRIMARY KEY,
		empresa TEXT NOT NULL,
		source TEXT NOT NULL,
		started_at DATETIME NOT NULL,
		finished_at DATETIME,
		row_count INTEGER NOT NULL DEFAULT 0,
		product_count INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL,
		error TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_ingestions_empresa ON ingestions (empresa, started_at);

	CREATE TABLE IF NOT EXISTS raw_rows (
		ingestion_id TEXT NOT NULL REFERENCES ingestions (id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		data TEXT NOT NULL,
		PRIMARY KEY (ingestion_id, position)
	);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// RecordIngestion grava o ciclo e as linhas brutas numa única transação
func (db *DB) RecordIngestion(ctx context.Context, ing models.Ingestion, rows []models.RawRow) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO ingestions (id, empresa, source, started_at, finished_at, row_count, product_count, status, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ing.ID, ing.Empresa, ing.Source, ing.StartedAt.UTC(), ing.FinishedAt.UTC(),
		ing.RowCount, ing.ProductCount, ing.Status, ing.Error,
	)
	if err != nil {
		return fmt.Errorf("erro ao gravar ingestão: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO raw_rows (ingestion_id, position, data) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("erro ao preparar linhas: %w", err)
	}
	defer stmt.Close()

	for i, row := range rows {
		data, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("erro ao serializar linha %d: %w", i, err)
		}
		if _, err := stmt.ExecContext(ctx, ing.ID, i, string(data)); err != nil {
			return fmt.Errorf("erro ao gravar linha %d: %w", i, err)
		}
	}

	return tx.Commit()
}

const ingestionColumns = "id, empresa, source, started_at, finished_at, row_count, product_count, status, error"

func scanIngestion(scanner interface{ Scan(...any) error }) (models.Ingestion, error) {
	var ing models.Ingestion
	var finishedAt sql.NullTime
	err := scanner.Scan(&ing.ID, &ing.Empresa, &ing.Source, &ing.StartedAt, &finishedAt,
		&ing.RowCount, &ing.ProductCount, &ing.Status, &ing.Error)
	if err != nil {
		return ing, err
	}
	if finishedAt.Valid {
		ing.FinishedAt = finishedAt.Time
	}
	return ing, nil
}

// LastIngestion retorna o ciclo mais recente da empresa
func (db *DB) LastIngestion(ctx context.Context, empresa string) (*models.Ingestion, error) {
	row := db.conn.QueryRowContext(ctx,
		"SELECT "+ingestionColumns+" FROM ingestions WHERE empresa = ? ORDER BY started_at DESC LIMIT 1",
		empresa,
	)

	ing, err := scanIngestion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ing, nil
}

// ListIngestions retorna os ciclos mais recentes primeiro; empresa vazia lista todas
func (db *DB) ListIngestions(ctx context.Context, empresa string, limit int) ([]models.Ingestion, error) {
	if limit <= 0 {
		limit = 20
	}

	query := "SELECT " + ingestionColumns + " FROM ingestions"
	args := []any{}
	if empresa != "" {
		query += " WHERE empresa = ?"
		args = append(args, empresa)
	}
	query += " ORDER BY started_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ingestions := []models.Ingestion{}
	for rows.Next() {
		ing, err := scanIngestion(rows)
		if err != nil {
			return nil, err
		}
		ingestions = append(ingestions, ing)
	}
	return ingestions, rows.Err()
}

// LastSuccessfulRows devolve as linhas brutas do último ciclo bem-sucedido
func (db *DB) LastSuccessfulRows(ctx context.Context, empresa string) (string, []models.RawRow, error) {
	var id string
	err := db.conn.QueryRowContext(ctx,
		"SELECT id FROM ingestions WHERE empresa = ? AND status = ? ORDER BY started_at DESC LIMIT 1",
		empresa, models.IngestionSuccess,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil, ErrNotFound
	}
	if err != nil {
		return "", nil, err
	}

	rows, err := db.RawRows(ctx, id)
	return id, rows, err
}

// RawRows devolve as linhas de um ciclo na ordem original
func (db *DB) RawRows(ctx context.Context, ingestionID string) ([]models.RawRow, error) {
	rows, err := db.conn.QueryContext(ctx,
		"SELECT data FROM raw_rows WHERE ingestion_id = ? ORDER BY position",
		ingestionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.RawRow
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var row models.RawRow
		if err := json.Unmarshal([]byte(data), &row); err != nil {
			return nil, fmt.Errorf("linha corrompida no ciclo %s: %w", ingestionID, err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// PruneIngestions mantém só os últimos ciclos da empresa
func (db *DB) PruneIngestions(ctx context.Context, empresa string, keep int) (int64, error) {
	res, err := db.conn.ExecContext(ctx,
		`DELETE FROM ingestions WHERE empresa = ? AND id NOT IN (
			SELECT id FROM ingestions WHERE empresa = ? ORDER BY started_at DESC LIMIT ?
		)`,
		empresa, empresa, keep,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
