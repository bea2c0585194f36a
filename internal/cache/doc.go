// Package cache содержит файловый кэш собранных артефактов.
//
// Включает:
//   - cache.go      — операции Put/Get/Find/Versions/List
//   - identifier.go — классификация сегментов пути (имя или версия)
//
// Раскладка на диске: <root>/<имя...>/<версия>/<артефакты>.
// Имя пакета может состоять из нескольких вложенных директорий;
// сегмент, начинающийся с цифры, считается версией и завершает имя.
//
// Кэш — внешний разрешитель для движка depgraph: незакрытые внутри
// набора зависимости ищутся здесь по имени и ограничению версии,
// победитель — наибольшая удовлетворяющая версия.
package cache
