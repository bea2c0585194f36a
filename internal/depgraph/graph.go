package depgraph

import "iter"

// Graph — граф зависимостей над набором элементов.
//
// Строится один раз через New и после этого только уменьшается:
// обход (drain.go) удаляет вершины вместе с инцидентными рёбрами.
// Граф держит указатели в исходный срез, поэтому срез нельзя
// изменять или перевыделять, пока граф или выданные Step живы.
type Graph[N Node[D], D any] struct {
	// verts — арена вершин. Индексы стабильны: удаление помечает
	// вершину, не сдвигая остальные.
	verts []vertex[N, D]

	// live — количество ещё не удалённых вершин.
	live int
}

// vertex — вершина графа: либо элемент набора, либо внешняя зависимость.
type vertex[N Node[D], D any] struct {
	// node — элемент набора; nil для внешней вершины.
	node *N

	// dep — дескриптор внешней зависимости (только при node == nil).
	dep D

	// out — исходящие рёбра: зависимости этой вершины.
	out []edge[D]

	// in — индексы вершин с ребром в эту вершину.
	// Нужны, чтобы удаление снимало инцидентные рёбра за O(степени).
	in []int

	removed bool
}

// edge — направленное ребро к удовлетворяющей вершине.
// Дескриптор сохраняется для диагностики; между одной парой вершин
// допускается несколько рёбер.
type edge[D any] struct {
	to  int
	dep D
}

// New строит граф из упорядоченного набора элементов.
//
// На каждый элемент создаётся ровно одна вершина. Для каждой
// объявленной зависимости набор сканируется в исходном порядке,
// и ребро ведёт к первому элементу, чей Matches вернул true —
// ранжирования среди кандидатов нет. Если совпадения нет, под
// зависимость заводится отдельная внешняя вершина; совпадающие
// незакрытые дескрипторы не слипаются — по вершине на каждое ребро.
//
// Построение не возвращает ошибок: некорректный вход — зона
// ответственности загрузочного слоя. Элемент, удовлетворяющий
// собственную зависимость, даёт петлю — такой граф не выдаст эту
// вершину при обходе (см. Remaining).
func New[N Node[D], D any](items []N) *Graph[N, D] {
	g := &Graph[N, D]{verts: make([]vertex[N, D], 0, len(items))}

	for i := range items {
		g.verts = append(g.verts, vertex[N, D]{node: &items[i]})
	}

	for i := range items {
		for _, dep := range items[i].Dependencies() {
			target := -1
			for j := range items {
				if items[j].Matches(dep) {
					target = j
					break
				}
			}
			if target < 0 {
				target = len(g.verts)
				g.verts = append(g.verts, vertex[N, D]{dep: dep})
			}
			g.addEdge(i, target, dep)
		}
	}

	g.live = len(g.verts)
	return g
}

func (g *Graph[N, D]) addEdge(from, to int, dep D) {
	g.verts[from].out = append(g.verts[from].out, edge[D]{to: to, dep: dep})
	g.verts[to].in = append(g.verts[to].in, from)
}

// IsInternallyResolvable возвращает true, если в графе не осталось
// внешних вершин: все зависимости закрываются внутри набора.
// Отражает текущее состояние — обход уменьшает граф.
func (g *Graph[N, D]) IsInternallyResolvable() bool {
	for i := range g.verts {
		v := &g.verts[i]
		if !v.removed && v.node == nil {
			return false
		}
	}
	return true
}

// UnresolvedDependencies возвращает ленивую последовательность
// дескрипторов всех внешних вершин, присутствующих в графе.
// Не изменяет граф; последовательность можно обходить многократно.
//
// Удобно для предварительной пакетной загрузки внешних зависимостей
// до начала обхода. Дескрипторы не дедуплицируются: по одному на
// каждое незакрытое ребро.
func (g *Graph[N, D]) UnresolvedDependencies() iter.Seq[D] {
	return func(yield func(D) bool) {
		for i := range g.verts {
			v := &g.verts[i]
			if v.removed || v.node != nil {
				continue
			}
			if !yield(v.dep) {
				return
			}
		}
	}
}

// Remaining возвращает количество ещё не выданных вершин.
//
// Если обход завершился (Next вернул false), а Remaining > 0 —
// в графе цикл или петля: оставшиеся вершины выданы не будут.
func (g *Graph[N, D]) Remaining() int {
	return g.live
}
