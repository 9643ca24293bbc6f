package scraper

import (
	"context"
	"fmt"
	"time"

	"catalogo-bot/internal/logger"
	"catalogo-bot/internal/models"
)

// RetryPolicy define quantas vezes e com que espera uma busca é repetida
type RetryPolicy struct {
	MaxAttempts       int
	InitialDelay      time.Duration
	MaxDelay          time.Duration
	BackoffMultiplier float64
}

// DefaultRetryPolicy é usada quando nada é configurado
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:       3,
		InitialDelay:      500 * time.Millisecond,
		MaxDelay:          30 * time.Second,
		BackoffMultiplier: 2.0,
	}
}

func (p RetryPolicy) delay(attempt int) time.Duration {
	d := p.InitialDelay
	for i := 1; i < attempt; i++ {
		d = time.Duration(float64(d) * p.BackoffMultiplier)
		if p.MaxDelay > 0 && d > p.MaxDelay {
			return p.MaxDelay
		}
	}
	return d
}

// FetchWithRetry repete a busca com espera exponencial até esgotar as
// tentativas ou o contexto ser cancelado
func FetchWithRetry(ctx context.Context, source Source, url string, policy RetryPolicy, log *logger.Logger) ([]models.RawRow, error) {
	attempts := max(policy.MaxAttempts, 1)

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			wait := policy.delay(attempt - 1)
			log.Warn("Repetindo busca", "fonte", source.Name(), "tentativa", attempt, "max", attempts, "espera", wait)

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}

		rows, err := source.FetchRows(ctx, url)
		if err == nil {
			return rows, nil
		}

		lastErr = err
		log.Error("Falha ao buscar linhas", "fonte", source.Name(), "tentativa", attempt, "erro", err)

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return nil, fmt.Errorf("todas as %d tentativas falharam: %w", attempts, lastErr)
}
