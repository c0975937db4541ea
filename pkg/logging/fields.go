package logging

import "time"

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
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

// Component tags the emitting subsystem.
func Component(name string) Field {
	return String("component", name)
}

// Domain field helpers

func Origin(name string) Field {
	return String("origin", name)
}

func Destination(name string) Field {
	return String("destination", name)
}

func AgentID(id string) Field {
	return String("agent_id", id)
}

func RouteID(id string) Field {
	return String("route_id", id)
}

func Hops(n int) Field {
	return Int("hops", n)
}

func Risk(v float64) Field {
	return Float64("risk", v)
}

func Fuel(v float64) Field {
	return Float64("fuel", v)
}
