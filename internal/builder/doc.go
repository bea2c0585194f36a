// Package builder выполняет сборку набора спеков в порядке зависимостей.
//
// Включает:
//   - executor.go         — интерфейс Executor и реестр по типу сборки
//   - command_executor.go — сборка внешней командой
//   - noop_executor.go    — пустая сборка для мета-пакетов
//   - runner.go           — синхронный пайплайн поверх depgraph
//
// Runner строит граф зависимостей, заранее проверяет, что все
// внешние зависимости есть в кэше артефактов, и затем выдаёт
// граф по шагам: внешние зависимости достаются из кэша, спеки
// собираются и их артефакты кладутся в кэш.
//
// Пайплайн различает два уровня ошибок:
//   - Подготовительные (незакрытая зависимость, цикл) — до первой сборки
//   - Сборочные (BuildError) — останавливают пайплайн на виноватом спеке
package builder
