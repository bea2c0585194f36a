// Package cli содержит команды инструмента fabrica.
//
// Включает:
//   - build.go  — сборка спеков в порядке зависимостей
//   - graph.go  — порядок разрешения без выполнения (dry run)
//   - cache.go  — просмотр кэша артефактов
//   - output.go — табличный и JSON вывод
//
// Команды работают целиком в процессе: загрузка спеков, граф,
// кэш и сборка — всё локально, без сетевых обращений.
package cli
