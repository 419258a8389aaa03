// Package sloghelper collects small slog.Attr constructors so call sites read as a flat
// attribute list instead of a mix of slog.String/slog.Int/slog.Any calls.
package sloghelper

import "log/slog"

func String(key, value string) slog.Attr {
	return slog.Attr{Key: key, Value: slog.StringValue(value)}
}

func Int(key string, value int) slog.Attr {
	return slog.Attr{Key: key, Value: slog.Int64Value(int64(value))}
}

func Error(key string, value error) slog.Attr {
	if value == nil {
		return slog.Attr{Key: key, Value: slog.StringValue("")}
	}
	return slog.Attr{Key: key, Value: slog.StringValue(value.Error())}
}
