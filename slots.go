/*
 * slots.go, part of nanopdb.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package nanopdb

import "iter"

// slots is an ordered, append-only sequence of owned children. A nil entry is a
// cleared slot: it keeps its position but is never handed out again.
type slots[T any] struct {
	items []*T
}

func (s *slots[T]) push(item *T) {
	s.items = append(s.items, item)
}

// last returns the most recently appended child, or nil.
func (s *slots[T]) last() *T {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s *slots[T]) len() int {
	return len(s.items)
}

func (s *slots[T]) at(container string, i int) (*T, error) {
	if i < 0 || i >= len(s.items) || s.items[i] == nil {
		return nil, &IndexOutOfRangeError{Container: container, Index: i, Len: len(s.items)}
	}
	return s.items[i], nil
}

// clear releases every child. Length is unchanged, and clearing twice is a no-op.
func (s *slots[T]) clear() {
	for i := range s.items {
		s.items[i] = nil
	}
}

func (s *slots[T]) traverse(visit func(child any) error) error {
	for _, item := range s.items {
		if item == nil {
			continue
		}
		if err := visit(item); err != nil {
			return err
		}
	}
	return nil
}

func (s *slots[T]) all() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i, item := range s.items {
			if item == nil {
				continue
			}
			if !yield(i, item) {
				return
			}
		}
	}
}

func (s *slots[T]) iter() *Iterator[T] {
	return &Iterator[T]{items: s.items}
}

// Iterator walks the children of one container. Each call to Iter on a
// container returns a new Iterator, so several passes over the same
// container can be in progress at once.
type Iterator[T any] struct {
	items []*T
	pos   int
}

// Next returns the next present child, and false once the sequence is exhausted.
// Cleared slots are skipped.
func (it *Iterator[T]) Next() (*T, bool) {
	for it.pos < len(it.items) {
		item := it.items[it.pos]
		it.pos++
		if item != nil {
			return item, true
		}
	}
	return nil, false
}

// Reset rewinds the iterator to the first child.
func (it *Iterator[T]) Reset() {
	it.pos = 0
}
