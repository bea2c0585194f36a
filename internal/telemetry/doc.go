// Package telemetry обеспечивает наблюдаемость пайплайна сборки.
//
// Включает:
//   - logging.go — structured logging через slog
//   - metrics.go — Prometheus метрики пайплайна
//
// Логирование настраивается переменными окружения LOG_LEVEL и
// LOG_FORMAT; метрики экспортируются на /metrics, если команда
// сборки запущена с флагом адреса метрик.
package telemetry
