package global

import (
	"io"

	"github.com/go-logr/zerologr"
	"github.com/nathanieltooley/dondozo/battle"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init sets up the global logger and hands the battle engine a bridge to it.
// A nil console only logs to files.
func Init(config Config, console io.Writer) error {
	level := zerolog.InfoLevel
	if config.Debug {
		level = zerolog.TraceLevel
		zerologr.SetMaxV(2)
	}

	writers := make([]io.Writer, 0, 2)
	if console != nil {
		writers = append(writers, zerolog.ConsoleWriter{Out: console, NoColor: !config.Color})
	}
	if config.LogDir != "" {
		fileWriter, err := NewRollingFileWriter(config.LogDir, "dondozo", config.LogMaxBytes, config.LogFiles)
		if err != nil {
			return err
		}
		writers = append(writers, zerolog.ConsoleWriter{Out: fileWriter, NoColor: true})
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger().Level(level)
	battle.SetInternalLogger(zerologr.New(&log.Logger))

	return nil
}
