package depgraph

import "iter"

// Next выдаёт очередную вершину в порядке зависимостей и удаляет её
// из графа вместе с инцидентными рёбрами.
//
// Вершина годится к выдаче, когда у неё не осталось исходящих рёбер:
// все её зависимости уже выданы. Внешние вершины рёбер не имеют и
// годятся сразу. При нескольких кандидатах выбирается первый при
// сканировании в обратном порядке создания — порядок детерминирован
// для фиксированного входа, но не настраивается.
//
// Возвращает false, когда выдавать нечего. Если при этом Remaining
// больше нуля, в графе цикл — обход остановился раньше времени.
//
// Обход разрушающий и одноразовый; если выдан Unresolved-шаг,
// вызывающий код сам разрешает зависимость до следующего вызова.
func (g *Graph[N, D]) Next() (Step[N, D], bool) {
	for i := len(g.verts) - 1; i >= 0; i-- {
		v := &g.verts[i]
		if v.removed || len(v.out) > 0 {
			continue
		}
		g.remove(i)
		if v.node != nil {
			return Step[N, D]{node: v.node}, true
		}
		return Step[N, D]{dep: v.dep}, true
	}
	return Step[N, D]{}, false
}

// Steps возвращает итератор обхода поверх Next.
//
// Тело range-цикла выполняется между шагами, так что разрешение
// внешних зависимостей ложится туда же. Досрочный выход из цикла
// оставляет граф частично выданным.
func (g *Graph[N, D]) Steps() iter.Seq[Step[N, D]] {
	return func(yield func(Step[N, D]) bool) {
		for {
			step, ok := g.Next()
			if !ok {
				return
			}
			if !yield(step) {
				return
			}
		}
	}
}

// remove удаляет вершину и снимает все рёбра, ведущие в неё.
func (g *Graph[N, D]) remove(idx int) {
	v := &g.verts[idx]
	for _, src := range v.in {
		s := &g.verts[src]
		if s.removed {
			continue
		}
		kept := s.out[:0]
		for _, e := range s.out {
			if e.to != idx {
				kept = append(kept, e)
			}
		}
		s.out = kept
	}
	v.in = nil
	v.removed = true
	g.live--
}
