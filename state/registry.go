package state

import (
	"iter"
	"slices"
)

// Registry keeps items by id and remembers insertion order.
type Registry[T any] struct {
	ids   []int
	items map[int]T
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		ids:   make([]int, 0),
		items: make(map[int]T),
	}
}

func (r *Registry[T]) Get(id int) (item T, ok bool) {
	item, ok = r.items[id]

	return
}

func (r *Registry[T]) Has(id int) bool {
	_, ok := r.items[id]

	return ok
}

func (r *Registry[T]) Set(id int, item T) {
	if !r.Has(id) {
		r.ids = append(r.ids, id)
	}

	r.items[id] = item
}

func (r *Registry[T]) Delete(id int) bool {
	if !r.Has(id) {
		return false
	}

	delete(r.items, id)
	r.ids = slices.DeleteFunc(r.ids, func(v int) bool {
		return v == id
	})

	return true
}

func (r *Registry[T]) Len() int {
	return len(r.ids)
}

func (r *Registry[T]) Ids() []int {
	return slices.Clone(r.ids)
}

func (r *Registry[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for _, id := range r.ids {
			if !yield(id, r.items[id]) {
				return
			}
		}
	}
}

func (r *Registry[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, id := range r.ids {
			if !yield(r.items[id]) {
				return
			}
		}
	}
}

func (r *Registry[T]) clone(copyItem func(T) T) *Registry[T] {
	res := &Registry[T]{
		ids:   slices.Clone(r.ids),
		items: make(map[int]T, len(r.items)),
	}

	for id, item := range r.items {
		res.items[id] = copyItem(item)
	}

	return res
}

// rekey rebuilds the registry after item ids changed, keeping the order.
func (r *Registry[T]) rekey(idOf func(T) int) {
	ids := make([]int, 0, len(r.ids))
	items := make(map[int]T, len(r.items))

	for _, id := range r.ids {
		item := r.items[id]
		next := idOf(item)
		ids = append(ids, next)
		items[next] = item
	}

	r.ids = ids
	r.items = items
}
