// Package logger embrulha o slog com nível ajustável em tempo de execução.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger é o log estruturado usado pelos serviços
type Logger struct {
	internal *slog.Logger
	level    *slog.LevelVar
}

// NewLogger cria um logger em texto no stderr
func NewLogger(level string) *Logger {
	return newLogger(os.Stderr, level)
}

// Discard cria um logger que não escreve nada, útil em testes
func Discard() *Logger {
	return newLogger(io.Discard, "error")
}

func newLogger(w io.Writer, level string) *Logger {
	lvl := new(slog.LevelVar)
	lvl.Set(parseLevel(level))

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})

	return &Logger{
		internal: slog.New(handler),
		level:    lvl,
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetLevel troca o nível sem recriar o logger
func (l *Logger) SetLevel(level string) {
	l.level.Set(parseLevel(level))
}

func (l *Logger) Info(msg string, args ...any) {
	l.internal.Info(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.internal.Error(msg, args...)
}

func (l *Logger) Debug(msg string, args ...any) {
	l.internal.Debug(msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.internal.Warn(msg, args...)
}

// With cria um logger filho com atributos fixos
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		internal: l.internal.With(args...),
		level:    l.level,
	}
}

// Slog expõe o *slog.Logger para bibliotecas que o aceitam
func (l *Logger) Slog() *slog.Logger {
	return l.internal
}
