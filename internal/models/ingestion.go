package models

import "time"

// Status de um ciclo de ingestão
const (
	IngestionSuccess = "success"
	IngestionFailure = "failure"
)

// Ingestion registra um ciclo de leitura da planilha de uma empresa
type Ingestion struct {
	ID           string    `json:"id"`
	Empresa      string    `json:"empresa"`
	Source       string    `json:"source"`
	StartedAt    time.Time `json:"startedAt"`
	FinishedAt   time.Time `json:"finishedAt"`
	RowCount     int       `json:"rowCount"`
	ProductCount int       `json:"productCount"`
	Status       string    `json:"status"`
	Error        string    `json:"error,omitempty"`
}

// Duration é o tempo gasto no ciclo
func (i Ingestion) Duration() time.Duration {
	if i.FinishedAt.IsZero() {
		return 0
	}
	return i.FinishedAt.Sub(i.StartedAt)
}

// Succeeded indica se o ciclo terminou sem erro
func (i Ingestion) Succeeded() bool {
	return i.Status == IngestionSuccess
}
