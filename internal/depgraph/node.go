package depgraph

// Node — элемент, участвующий в разрешении зависимостей.
//
// D — тип дескриптора зависимости. В графе сборки это может быть
// пара (имя, ограничение версии); может быть и тем же типом, что и
// сам элемент — тогда Matches сводится к проверке равенства.
//
// Реализации должны оставаться неизменными на время жизни графа:
// граф хранит ссылки на элементы входного среза и не копирует их.
type Node[D any] interface {
	// Dependencies возвращает упорядоченный список дескрипторов,
	// которые должны быть удовлетворены до этого элемента.
	Dependencies() []D

	// Matches сообщает, удовлетворяет ли элемент дескриптор dep.
	// Обязан быть чистой детерминированной функцией.
	Matches(dep D) bool
}
