package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	logDir      = "logs"
	logFileName = "ai-snake.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging routes logrus (and the standard logger) away from the terminal
// Without debug everything is discarded; with debug it appends to logs/ai-snake.log,
// rotating an oversized file aside first. Caller closes the returned file.
func setupLogging(debug bool) *os.File {
	if !debug {
		discardLogs()
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		discardLogs()
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("ai-snake-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		discardLogs()
		return nil
	}

	logrus.SetOutput(f)
	log.SetOutput(f)
	logrus.SetLevel(levelFromEnv())
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}
	return f
}

func discardLogs() {
	logrus.SetOutput(io.Discard)
	log.SetOutput(io.Discard)
}

// levelFromEnv reads LOG_LEVEL, debug when unset or invalid
func levelFromEnv() logrus.Level {
	name, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		return logrus.DebugLevel
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.DebugLevel
	}
	return level
}
