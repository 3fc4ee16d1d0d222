package crosslight

import (
	"fmt"
	"sync"
)

// LogLevel represents the logging level
type LogLevel int

const (
	// LogError logs only errors
	LogError LogLevel = iota
	// LogWarning logs errors and warnings
	LogWarning
	// LogInfo logs errors, warnings, and info
	LogInfo
	// LogDebug logs errors, warnings, info, and debug
	LogDebug
)

// LogFormatter formats log messages
type LogFormatter func(level LogLevel, format string, args ...interface{}) string

// DefaultLogFormatter provides default log formatting
func DefaultLogFormatter(level LogLevel, format string, args ...interface{}) string {
	levelStr := "INFO"
	switch level {
	case LogError:
		levelStr = "ERROR"
	case LogWarning:
		levelStr = "WARN"
	case LogInfo:
		levelStr = "INFO"
	case LogDebug:
		levelStr = "DEBUG"
	}

	return fmt.Sprintf("[%s] %s", levelStr, fmt.Sprintf(format, args...))
}

// LoggingObserver logs controller events
type LoggingObserver struct {
	level     LogLevel
	prefix    string
	mutex     sync.RWMutex
	formatter LogFormatter
}

// NewLoggingObserver creates a new logging observer
func NewLoggingObserver(level LogLevel, prefix string) *LoggingObserver {
	return &LoggingObserver{
		level:     level,
		prefix:    prefix,
		formatter: DefaultLogFormatter,
	}
}

// NewDefaultLoggingObserver creates a logging observer with default settings (LogInfo level)
func NewDefaultLoggingObserver() *LoggingObserver {
	return NewLoggingObserver(LogInfo, "Controller")
}

// SetFormatter sets the log formatter
func (o *LoggingObserver) SetFormatter(formatter LogFormatter) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.formatter = formatter
}

// log logs a message at the specified level
func (o *LoggingObserver) log(level LogLevel, format string, args ...interface{}) {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	if level <= o.level {
		prefix := ""
		if o.prefix != "" {
			prefix = fmt.Sprintf("[%s] ", o.prefix)
		}

		message := ""
		if o.formatter != nil {
			message = o.formatter(level, format, args...)
		} else {
			message = fmt.Sprintf(format, args...)
		}

		fmt.Printf("%s%s\n", prefix, message)
	}
}

// OnPhaseChange logs fired transitions
func (o *LoggingObserver) OnPhaseChange(from Phase, to Phase, tick uint64) {
	if from == to {
		o.log(LogDebug, "Phase re-armed: %s at tick %d", to, tick)
		return
	}
	o.log(LogInfo, "Phase change: %s -> %s at tick %d (%s)", from, to, tick, DecodeOutputs(to))
}

// OnTick logs logical ticks
func (o *LoggingObserver) OnTick(tick uint64) {
	o.log(LogDebug, "Tick %d", tick)
}

// OnReset logs controller resets
func (o *LoggingObserver) OnReset() {
	o.log(LogInfo, "Controller reset to %s", PhaseNSGreen)
}

// OnPedestrianRequest logs latched pedestrian requests
func (o *LoggingObserver) OnPedestrianRequest(cycle uint64) {
	o.log(LogInfo, "Pedestrian request latched at cycle %d", cycle)
}

// OnEmergencyChange logs emergency latch level changes
func (o *LoggingObserver) OnEmergencyChange(active bool, cycle uint64) {
	if active {
		o.log(LogWarning, "Emergency preemption requested at cycle %d", cycle)
		return
	}
	o.log(LogInfo, "Emergency cleared at cycle %d", cycle)
}

// OnError logs errors
func (o *LoggingObserver) OnError(err error) {
	o.log(LogError, "Error: %v", err)
}
