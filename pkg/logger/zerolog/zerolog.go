package zerolog

import (
	"io"
	"os"
	"time"

	"github.com/google/goterm/term"
	"github.com/rs/zerolog"
)

// New creates a zerolog root logger writing to stdout. When jsonFormat is
// false the output goes through a console writer with colored level and
// timestamp fields.
func New(level, dateTimeLayout string, colored, jsonFormat bool) (*zerolog.Logger, error) {
	logMode, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	zerolog.SetGlobalLevel(logMode)

	var output io.Writer = os.Stdout
	if !jsonFormat {
		console := zerolog.ConsoleWriter{
			Out:        os.Stdout,
			NoColor:    !colored,
			TimeFormat: dateTimeLayout,
		}
		console.FormatLevel = formatLevel
		console.FormatTimestamp = func(i interface{}) string {
			return formatTimestamp(i, dateTimeLayout)
		}
		output = console
	}

	logger := zerolog.New(output).With().Timestamp().Logger()
	return &logger, nil
}

func formatLevel(i interface{}) string {
	levelStr, ok := i.(string)
	if !ok {
		return "[UNK]"
	}

	switch levelStr {
	case zerolog.LevelTraceValue:
		return term.Cyanf("[TRC]")
	case zerolog.LevelDebugValue:
		return term.Cyanf("[DBG]")
	case zerolog.LevelInfoValue:
		return term.Greenf("[INF]")
	case zerolog.LevelWarnValue:
		return term.Yellowf("[WAR]")
	case zerolog.LevelErrorValue:
		return term.Redf("[ERR]")
	case zerolog.LevelFatalValue:
		return term.Redf("[FTL]")
	case zerolog.LevelPanicValue:
		return term.Redf("[PAN]")
	default:
		return term.Whitef("[UNK]")
	}
}

func formatTimestamp(i interface{}, timeLayout string) string {
	strTime, ok := i.(string)
	if !ok {
		return term.Cyanf("[%s]", i)
	}

	ts, err := time.ParseInLocation(time.RFC3339, strTime, time.Local)
	if err == nil {
		strTime = ts.In(time.Local).Format(timeLayout)
	}

	return term.Cyanf("[%s]", strTime)
}
