package logging

import "time"

func String(key, value string) Field { return Field{Key: key, Value: value} }

func Int(key string, value int) Field { return Field{Key: key, Value: value} }

func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Component(name string) Field { return String("component", name) }

func Path(p string) Field { return String("path", p) }

func Count(n int) Field { return Int("count", n) }

func Bytes(n int) Field { return Int("bytes", n) }

func BuildID(id string) Field { return String("build_id", id) }

func Latency(d time.Duration) Field { return Duration("latency", d) }
