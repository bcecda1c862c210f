package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

func Uint64(key string, value uint64) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Component field helpers for common component names
func Component(name string) Field {
	return String("component", name)
}

func NodeID(id uint64) Field {
	return Uint64("node_id", id)
}

func EdgeID(id uint64) Field {
	return Uint64("edge_id", id)
}

func Operation(op string) Field {
	return String("operation", op)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Count(n int) Field {
	return Int("count", n)
}

func Path(p string) Field {
	return String("path", p)
}

// PCG field helpers. Unlike the generic constructors above, these name the
// Product Construction Graph concepts every pcg entry point logs: a
// composite automaton state, a topology location, a preference level, the
// call-correlation id minted by Scope, and the two failure-analysis
// counters reported by pcg.FailedGraph / pcg.DisconnectLocs.

// State identifies a composite PCG automaton state.
func State(id uint32) Field {
	return Uint64("state", uint64(id))
}

// Location identifies a topology location.
func Location(loc string) Field {
	return String("location", loc)
}

// Preference identifies a DFA preference level, 1-indexed per BitSet31.
func Preference(level int) Field {
	return Int("preference", level)
}

// CallID tags a log line with the call-correlation id minted by Scope.
func CallID(id string) Field {
	return String("call_id", id)
}

// FailureCount records how many simulated failures a call considered.
func FailureCount(n int) Field {
	return Int("failures", n)
}

// CutSize records the size of an approximated min-cut.
func CutSize(k int) Field {
	return Int("cut_size", k)
}
