// Package depgraph содержит движок разрешения зависимостей.
//
// Включает:
//   - node.go  — контракт Node: элемент со списком зависимостей
//   - graph.go — построение графа и интроспекция
//   - step.go  — Step: разрешённый элемент или внешняя зависимость
//   - drain.go — разрушающий обход графа в порядке зависимостей
//
// Движок принимает упорядоченный набор элементов, строит направленный
// граф (ребро от зависимого к удовлетворяющему), помечает зависимости,
// которые не закрываются внутри набора, как внешние, и отдаёт элементы
// по одному — строго после всех их зависимостей.
//
// Движок однопоточный, не выполняет I/O и не знает, как разрешаются
// внешние зависимости: это забота вызывающего кода между шагами обхода.
package depgraph
