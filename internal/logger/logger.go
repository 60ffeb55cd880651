// Package logger Обёртка над zap для использования единого логгера во всем приложении.
package logger

import (
	"log"

	"go.uber.org/zap"
)

// Глобальный экземпляр логгера (sugared).
var sugar *zap.SugaredLogger

// init Инициализация логгера. Выполняется один раз при старте процесса,
// независимо от количества импортов пакета.
func init() {
	localLogger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal("Ошибка инициализации логгера zap", err)
	}
	sugar = localLogger.Sugar()
}

// Fatal - запись в лог, уровень Fatal (завершает процесс с ненулевым кодом).
func Fatal(msg string, keysAndValues ...interface{}) {
	sugar.Fatalw(msg, keysAndValues...)
}

// Error - запись в лог, уровень Error.
func Error(msg string, keysAndValues ...interface{}) {
	sugar.Errorw(msg, keysAndValues...)
}

// Warn - запись в лог, уровень Warn.
func Warn(msg string, keysAndValues ...interface{}) {
	sugar.Warnw(msg, keysAndValues...)
}

// Info - запись в лог, уровень Info.
func Info(msg string, keysAndValues ...interface{}) {
	sugar.Infow(msg, keysAndValues...)
}

// Debug - запись в лог, уровень Debug.
func Debug(msg string, keysAndValues ...interface{}) {
	sugar.Debugw(msg, keysAndValues...)
}
