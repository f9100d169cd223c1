// internal/notify/notify.go
package notify

import (
	"os"
	"runtime"

	"github.com/gen2brain/beeep"
	"go.uber.org/zap"
)

// Severity of a notification.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	default:
		return "info"
	}
}

// Notification is one alert or spawn transition event.
type Notification struct {
	Title    string
	Body     string
	Severity Severity
}

// Notifier delivers notifications. Delivery is best-effort; a sink
// that cannot deliver must drop silently rather than fail the tick.
type Notifier interface {
	Notify(n Notification)
}

// ---- zap sink ----

// LogNotifier writes notifications to the structured log.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (l *LogNotifier) Notify(n Notification) {
	fields := []zap.Field{
		zap.String("title", n.Title),
		zap.String("severity", n.Severity.String()),
	}
	switch n.Severity {
	case SeverityWarning:
		l.logger.Warn(n.Body, fields...)
	default:
		l.logger.Info(n.Body, fields...)
	}
}

// ---- desktop sink ----

// DesktopNotifier shows desktop notifications, best-effort and non-fatal.
type DesktopNotifier struct{}

func NewDesktopNotifier() *DesktopNotifier {
	return &DesktopNotifier{}
}

func (d *DesktopNotifier) Notify(n Notification) {
	if n.Body == "" {
		return
	}
	// Skip on headless Linux without a display; beeep would error.
	if runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return
	}
	_ = beeep.Notify(n.Title, n.Body, "")
}

// ---- fan-out ----

// Multi fans one notification out to every sink in order.
type Multi []Notifier

func (m Multi) Notify(n Notification) {
	for _, sink := range m {
		sink.Notify(n)
	}
}
