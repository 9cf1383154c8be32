package search

// nodePQ is a min-heap (priority frontier) of *Node, ordered by ascending
// total estimated cost with a fewer-remaining-goals tie-break (Node.less).
//
// The frontier uses the "lazy-decrease-key" approach: when a better path to
// an already-frontiered state is found, a fresh *Node is pushed and the
// stale entry is left in place. Stale entries are rejected when popped by
// the reached-map comparison in the strategy loop.
type nodePQ []*Node

// Len returns the number of nodes in the frontier.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller total estimated cost → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].less(pq[j]) }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *Node.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*Node)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
