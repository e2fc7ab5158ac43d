// Package logger envuelve zerolog con la configuración del servicio de
// almacén: nivel por variable de entorno, campo service fijo y subloggers
// por petición.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config parámetros del logger del servicio.
type Config struct {
	Service string    // se estampa como campo "service" en cada línea
	Env     string    // development escribe consola legible, el resto JSON
	Level   string    // trace, debug, info, warn, error (no sensible a mayúsculas)
	Output  io.Writer // destino; nil usa os.Stdout
}

// Logger logger estructurado del servicio.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger. Fuera de development la salida es JSON por línea,
// apta para agregadores.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if cfg.Env == "development" {
		out = zerolog.ConsoleWriter{Out: out}
	}

	zl := zerolog.New(out).
		Level(parseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("service", cfg.Service).
		Logger()

	// Las librerías que loguean por el logger global de zerolog salen
	// por el mismo destino y con el mismo nivel.
	log.Logger = zl

	return &Logger{zl: zl}
}

// parseLevel interpreta el nivel configurado; un valor desconocido cae en info.
func parseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// WithRequestID deriva un sublogger que estampa el id de correlación de la
// petición en cada evento.
func (l *Logger) WithRequestID(id string) *Logger {
	return &Logger{zl: l.zl.With().Str("request_id", id).Logger()}
}

func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With expone el contexto de zerolog para subloggers con campos fijos.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}
