package providers

import (
	"cloudtidy/internal/structures"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

type TypeEnum int

const (
	// TypeApp is for run-level events (login, folder resolution, summary).
	TypeApp TypeEnum = iota
	// TypeMutation is for per-file delete/rename events and their failures.
	TypeMutation
)

var logFileNames = map[TypeEnum]string{
	TypeApp:      "app.log",
	TypeMutation: "mutation.log",
}

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

type LogProvider struct {
	loggers map[TypeEnum]zerolog.Logger
	files   []*os.File
}

// lineWriter renders events as "<ISO timestamp> - <LEVEL> - <message>".
func lineWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:     out,
		NoColor: true,
		FormatTimestamp: func(i interface{}) string {
			return fmt.Sprintf("%v -", i)
		},
		FormatLevel: func(i interface{}) string {
			return strings.ToUpper(fmt.Sprintf("%v -", i))
		},
	}
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", conf.Logger.Level, err)
	}

	if err := os.MkdirAll(conf.Logger.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	p := &LogProvider{
		loggers: make(map[TypeEnum]zerolog.Logger, len(logFileNames)),
	}

	console := lineWriter(os.Stderr)

	for t, name := range logFileNames {
		file, err := os.OpenFile(
			filepath.Join(conf.Logger.Dir, name),
			os.O_APPEND|os.O_CREATE|os.O_WRONLY,
			os.FileMode(conf.Logger.Mode),
		)
		if err != nil {
			p.Close()
			return nil, fmt.Errorf("open log file %s: %w", name, err)
		}
		p.files = append(p.files, file)

		w := zerolog.MultiLevelWriter(lineWriter(file), console)
		p.loggers[t] = zerolog.New(w).Level(level).With().Timestamp().Logger()
	}

	return p, nil
}

func (p *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	l := p.loggers[t]
	l.Error().Msgf(format, args...)
}

func (p *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	l := p.loggers[t]
	l.Warn().Msgf(format, args...)
}

func (p *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	l := p.loggers[t]
	l.Debug().Msgf(format, args...)
}

func (p *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	l := p.loggers[t]
	l.Info().Msgf(format, args...)
}

func (p *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	l := p.loggers[t]
	l.Fatal().Msgf(format, args...)
}

func (p *LogProvider) Close() {
	for _, f := range p.files {
		_ = f.Close()
	}
	p.files = nil
}
