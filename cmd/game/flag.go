package main

import (
	"fmt"
	"log/slog"
	"strings"
)

type logLevelFlag struct {
	value *slog.Level
}

func (l logLevelFlag) String() string {
	if l.value == nil {
		return ""
	}
	return l.value.String()
}

func (l logLevelFlag) Set(value string) error {
	m := map[string]slog.Level{"DEBUG": slog.LevelDebug, "INFO": slog.LevelInfo, "WARN": slog.LevelWarn, "ERROR": slog.LevelError}
	v, ok := m[strings.ToUpper(value)]
	if !ok {
		return fmt.Errorf("unknown log level")
	}
	*l.value = v
	return nil
}
