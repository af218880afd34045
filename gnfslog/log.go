// Package gnfslog is the internal leveled logger for the GNFS core,
// in the shape of gospel/logger: a package-level level filter plus
// Printf/Println helpers. Unlike gospel/logger it has no background
// goroutine or channel hand-off -- factorization runs are long-lived
// single jobs, not a multiplexed service, so a direct call with a
// package-level mutex is the simpler fit.
package gnfslog

import (
	"fmt"
	"sync"
)

// Logging levels, most to least severe.
const (
	ERROR = iota
	WARN
	INFO
	DBG
)

// Sink is the host-supplied log function from spec section 6: a single
// function taking a message string. The core never assumes anything
// about how the host formats or routes it.
type Sink func(string)

var (
	mu    sync.Mutex
	level = INFO
	sinks []Sink
)

// SetLevel sets the minimum severity that is emitted.
func SetLevel(l int) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// AddSink registers a host log sink that receives every message the
// package-level level filter admits; messages above the current level
// reach no sink. Multiple sinks may be registered (e.g. one per job).
func AddSink(s Sink) {
	mu.Lock()
	defer mu.Unlock()
	sinks = append(sinks, s)
}

// Printf logs a formatted message at the given level.
func Printf(lvl int, format string, args ...interface{}) {
	emit(lvl, fmt.Sprintf(format, args...))
}

// Println logs a plain message at the given level.
func Println(lvl int, msg string) {
	emit(lvl, msg)
}

func emit(lvl int, msg string) {
	mu.Lock()
	admitted := lvl <= level
	active := append([]Sink(nil), sinks...)
	mu.Unlock()

	if !admitted {
		return
	}
	line := tag(lvl) + msg
	for _, s := range active {
		s(line)
	}
}

func tag(lvl int) string {
	switch lvl {
	case ERROR:
		return "{E} "
	case WARN:
		return "{W} "
	case INFO:
		return "{I} "
	case DBG:
		return "{D} "
	}
	return "{?} "
}
