package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger.
type Config struct {
	Env   string // development usa consola legible, cualquier otro valor JSON
	Level string // debug, info, warn, error
}

// Logger wrapper fino sobre zerolog. Expone solo los niveles que la
// aplicación usa.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger estructurado de la aplicación y redirige el logger
// global de zerolog para las librerías que escriben a través de él.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(w).
		Level(parseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Info evento de nivel info.
func (l *Logger) Info() *zerolog.Event { return l.zl.Info() }

// Error evento de nivel error.
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }

// Fatal evento de nivel fatal; termina el proceso al llamar Msg.
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }
