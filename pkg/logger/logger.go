package logx

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/HKYM39/my-recipe-agents-chat/internal/core"
)

// Opts configures logger initialisation.
type Opts struct {
	Environment core.Environment
}

var defaultOpts = &Opts{
	Environment: core.Development,
}

func safe(opts ...Opts) *Opts {
	if len(opts) == 0 {
		return defaultOpts
	}
	return &opts[0]
}

// Init configures the global zerolog logger. Production keeps the default
// JSON writer at Info level; everything else gets the console writer with
// caller info at Debug level.
func Init(opts ...Opts) {
	if safe(opts...).Environment.IsProduction() {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
		return
	}
	log.Logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Caller().Logger()
	log.Logger = log.Logger.Level(zerolog.DebugLevel)
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
