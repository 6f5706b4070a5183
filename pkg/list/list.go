// Package list implements a singly-linked LIFO list of int32 values in which
// every node is owned by exactly one predecessor.
package list

import "iter"

// node holds one element and owns the remainder of the chain.
type node struct {
	elem int32
	next link
}

// link is either empty or owns the next node. The nil pointer is the empty link.
type link struct {
	more *node
}

func (l link) empty() bool {
	return l.more == nil
}

// take moves the link out, leaving an empty link in its place.
func (l *link) take() link {
	taken := *l
	*l = link{}
	return taken
}

// List is a stack built on a chain of owned nodes.
//
// The zero value is an empty list ready to use. A List is not safe for concurrent use.
type List struct {
	head link
	size int
}

// New returns an empty list.
func New() *List {
	return &List{}
}

// Push places value on top of the list. The previous head becomes the successor of the new node.
func (l *List) Push(value int32) {
	l.head = link{more: &node{elem: value, next: l.head.take()}}
	l.size++
}

// Pop removes and returns the top element. The boolean is false when the list is empty.
func (l *List) Pop() (int32, bool) {
	top := l.head.take()
	if top.empty() {
		return 0, false
	}

	l.head = top.more.next.take()
	l.size--
	return top.more.elem, true
}

// Peek returns the top element without removing it.
func (l *List) Peek() (int32, bool) {
	if l.head.empty() {
		return 0, false
	}
	return l.head.more.elem, true
}

func (l *List) Len() int {
	return l.size
}

func (l *List) IsEmpty() bool {
	return l.head.empty()
}

// All yields the elements from top to bottom without consuming them.
func (l *List) All() iter.Seq[int32] {
	return func(yield func(int32) bool) {
		for cur := l.head; !cur.empty(); cur = cur.more.next {
			if !yield(cur.more.elem) {
				return
			}
		}
	}
}

// Drop releases every node and returns how many were released. Each node is
// detached from its successor before it is discarded, so the walk runs in
// constant stack space regardless of the list length. The list is empty
// and reusable afterwards.
func (l *List) Drop() int {
	released := 0
	walker := l.head.take()
	for !walker.empty() {
		walker = walker.more.next.take()
		released++
	}

	l.size = 0
	return released
}
