// Package observe forwards error-level log entries to Sentry. The hook is
// an io.Writer sink plugged into the zap logger, so nothing in the
// services knows Sentry exists.
package observe

import (
	"encoding/json"
	"log"
	"time"

	"github.com/getsentry/sentry-go"

	"go.uber.org/zap/zapcore"
)

const (
	_sentryMaxErrorDepth        int           = 9
	_sentryServerRequestTimeout time.Duration = 5 * time.Second
)

type SentryHook struct {
	appZone string
	appName string
	enabled bool
}

// NewSentryHook initializes the Sentry client. With an empty DSN the hook
// stays inert and Write becomes a no-op sink.
func NewSentryHook(appZone, appName, dsn string, isDebug bool) *SentryHook {
	h := &SentryHook{
		appZone: appZone,
		appName: appName,
	}

	if dsn == "" {
		log.Println("sentry hook disabled: no DSN")
		return h
	}

	sentryTransport := sentry.NewHTTPTransport()
	sentryTransport.Timeout = _sentryServerRequestTimeout
	if err := sentry.Init(sentry.ClientOptions{
		AttachStacktrace: true,
		Debug:            isDebug,
		Dsn:              dsn,
		Environment:      appZone,
		MaxErrorDepth:    _sentryMaxErrorDepth,
		ServerName:       appName,
		Transport:        sentryTransport,
	}); err != nil {
		log.Println("sentry init error:", err.Error())
		return h
	}

	h.enabled = true
	return h
}

// Write inspects one JSON-encoded log entry and reports it to Sentry if
// its level is error or above. It always reports the full write as
// consumed so logging never fails because of the hook.
func (h *SentryHook) Write(p []byte) (n int, err error) {
	if !h.enabled {
		return len(p), nil
	}

	var entry struct {
		Level      string `json:"level"`
		Message    string `json:"msg"`
		Error      string `json:"error"`
		CallerFile string `json:"caller_file"`
		CallerLine int    `json:"caller_line"`
		CallerFunc string `json:"caller_func"`
		Stack      string `json:"stack"`
	}
	if err := json.Unmarshal(p, &entry); err != nil {
		return len(p), nil
	}

	level, err := zapcore.ParseLevel(entry.Level)
	if err != nil || entry.Message == "" {
		return len(p), nil
	}

	switch level {
	case zapcore.ErrorLevel, zapcore.FatalLevel, zapcore.PanicLevel:
		event := sentry.NewEvent()
		event.Environment = h.appZone
		event.Level = h.mapLevel(level)
		event.Message = entry.Message
		event.Extra["AppName"] = h.appName
		event.Extra["Error"] = entry.Error
		event.Extra["CallerFile"] = entry.CallerFile
		event.Extra["CallerLine"] = entry.CallerLine
		event.Extra["CallerFunc"] = entry.CallerFunc
		event.Extra["Stack"] = entry.Stack
		event.Exception = append(event.Exception, sentry.Exception{
			Type:       entry.Message,
			Value:      entry.Error,
			Stacktrace: sentry.NewStacktrace(),
		})
		sentry.CaptureEvent(event)
	}

	return len(p), nil
}

func (*SentryHook) mapLevel(zl zapcore.Level) sentry.Level {
	switch zl {
	case zapcore.DebugLevel, zapcore.InvalidLevel:
		return sentry.LevelDebug
	case zapcore.InfoLevel:
		return sentry.LevelInfo
	case zapcore.WarnLevel:
		return sentry.LevelWarning
	case zapcore.ErrorLevel:
		return sentry.LevelError
	case zapcore.FatalLevel, zapcore.PanicLevel:
		return sentry.LevelFatal
	}

	return sentry.LevelDebug
}
