package logger

import (
	"os"
	"path/filepath"

	"github.com/fachebot/container-tooltips/internal/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	*logrus.Logger
	fileLogger *logrus.Logger
}

var defaultLogger *Logger

func init() {
	// 控制台日志配置
	consoleLogger := logrus.New()
	consoleLogger.SetFormatter(&logrus.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	consoleLogger.SetOutput(os.Stderr)
	consoleLogger.SetLevel(logrus.DebugLevel)

	defaultLogger = &Logger{Logger: consoleLogger}
}

// Setup 按配置调整日志级别，并在配置了日志文件时开启文件日志
func Setup(c config.Log) error {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return err
	}
	defaultLogger.Logger.SetLevel(level)

	if c.File == "" {
		defaultLogger.fileLogger = nil
		return nil
	}

	// 创建日志目录
	if err := os.MkdirAll(filepath.Dir(c.File), 0755); err != nil {
		return err
	}

	// 文件日志配置
	fileLogger := logrus.New()
	fileLogger.SetFormatter(&logrus.JSONFormatter{
		PrettyPrint:     false,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	fileLogger.SetLevel(level)

	// 使用lumberjack进行日志轮转
	fileLogger.SetOutput(&lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    c.MaxSize,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAge,
		Compress:   c.Compress,
	})

	defaultLogger.fileLogger = fileLogger
	return nil
}

func Infof(format string, args ...any) {
	defaultLogger.Logger.Infof(format, args...)
	if defaultLogger.fileLogger != nil {
		defaultLogger.fileLogger.Infof(format, args...)
	}
}

func Warnf(format string, args ...any) {
	defaultLogger.Logger.Warnf(format, args...)
	if defaultLogger.fileLogger != nil {
		defaultLogger.fileLogger.Warnf(format, args...)
	}
}

func Errorf(format string, args ...any) {
	defaultLogger.Logger.Errorf(format, args...)
	if defaultLogger.fileLogger != nil {
		defaultLogger.fileLogger.Errorf(format, args...)
	}
}

func Fatalf(format string, args ...any) {
	if defaultLogger.fileLogger != nil {
		defaultLogger.fileLogger.Errorf(format, args...)
	}
	defaultLogger.Logger.Fatalf(format, args...)
}

func Debugf(format string, args ...any) {
	defaultLogger.Logger.Debugf(format, args...)
	if defaultLogger.fileLogger != nil {
		defaultLogger.fileLogger.Debugf(format, args...)
	}
}
