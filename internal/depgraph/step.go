package depgraph

// Step — один шаг обхода графа.
//
// Шаг либо разрешён внутри набора (Resolved — ссылка на исходный
// элемент), либо указывает на внешнюю зависимость (Unresolved —
// дескриптор, который не закрыл ни один элемент набора).
//
// Внешняя зависимость — не ошибка: её может удовлетворить внешняя
// система (кэш артефактов, реестр), о которой граф ничего не знает.
type Step[N Node[D], D any] struct {
	node *N
	dep  D
}

// IsResolved возвращает true, если шаг разрешён внутри набора.
func (s Step[N, D]) IsResolved() bool {
	return s.node != nil
}

// Resolved возвращает элемент набора, если шаг разрешён.
func (s Step[N, D]) Resolved() (*N, bool) {
	if s.node == nil {
		return nil, false
	}
	return s.node, true
}

// Unresolved возвращает дескриптор внешней зависимости, если шаг не разрешён.
func (s Step[N, D]) Unresolved() (D, bool) {
	if s.node != nil {
		var zero D
		return zero, false
	}
	return s.dep, true
}
