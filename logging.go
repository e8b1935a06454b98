package onceguard

import "github.com/rs/zerolog"

// LogObserver returns an Observer that writes guard events to logger at
// debug level. zerolog loggers are safe for concurrent use, so the
// observer is too.
func LogObserver(logger zerolog.Logger) Observer {
	return logObserver{logger: logger}
}

type logObserver struct {
	logger zerolog.Logger
}

func (o logObserver) On(eventData EventData) {
	o.logger.Debug().
		Str("event", eventData.Event.String()).
		Str("id", eventData.ID).
		Int64("version", eventData.Version).
		Msg("onceguard")
}
