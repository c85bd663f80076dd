package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/aurapulse/internal/constants"
)

// Rotation limits for the log file.
const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

var (
	// Logger is the global logger instance
	Logger *log.Logger

	file string
)

// Config controls where aurapulse writes its log.
type Config struct {
	// Dir is the directory holding the store; logs go to Dir/logs.
	Dir   string
	Debug bool
	// Quiet keeps debug output off stderr. The TUI owns the terminal.
	Quiet bool
}

// Init points the global logger at a rotating file under cfg.Dir.
func Init(cfg Config) error {
	logDir := filepath.Join(cfg.Dir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	path := filepath.Join(logDir, constants.AppName+".log")
	var out io.Writer = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}
	if cfg.Debug && !cfg.Quiet {
		out = io.MultiWriter(os.Stderr, out)
	}

	Use(out, cfg.Debug)
	Logger.SetReportTimestamp(true)
	file = path
	return nil
}

// Use sends log output to w. Debug lowers the level and reports callers.
func Use(w io.Writer, debug bool) {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	Logger = log.NewWithOptions(w, log.Options{
		ReportCaller: debug,
		CallerOffset: 2,
		Level:        level,
		Prefix:       constants.AppName,
	})
	file = ""
}

// File is the log file opened by Init, empty when logging goes elsewhere.
func File() string {
	if Logger == nil {
		return ""
	}
	return file
}

func Debug(msg string, keyvals ...interface{}) { logAt(log.DebugLevel, msg, keyvals) }
func Info(msg string, keyvals ...interface{})  { logAt(log.InfoLevel, msg, keyvals) }
func Warn(msg string, keyvals ...interface{})  { logAt(log.WarnLevel, msg, keyvals) }
func Error(msg string, keyvals ...interface{}) { logAt(log.ErrorLevel, msg, keyvals) }

// logAt is a no-op until the logger is initialized.
func logAt(level log.Level, msg string, keyvals []interface{}) {
	if Logger != nil {
		Logger.Log(level, msg, keyvals...)
	}
}
