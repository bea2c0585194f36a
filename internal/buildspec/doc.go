// Package buildspec содержит типизированный вход движка сборки.
//
// Включает:
//   - types.go    — Spec и Declaration, реализация depgraph.Node
//   - loader.go   — загрузка спеков из JSON/YAML файлов
//   - validate.go — валидация набора спеков до построения графа
//
// Spec описывает одну единицу сборки: имя, семантическую версию,
// объявленные зависимости и конфигурацию сборки. Порядок спеков
// в наборе значим: при нескольких подходящих кандидатах граф
// выбирает первого по порядку входа.
package buildspec
