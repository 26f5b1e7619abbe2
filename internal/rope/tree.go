package rope

const (
	leafSize  = 128 // L, spec §3 nominal leaf fill target
	inodeSize = 16  // F, spec §3 nominal internal fan-out
)

// Info is the monoid contract of spec §4.1: an identity element (the
// type's zero value), an associative Combine, and (via a constructor
// supplied to NewTree) an injection from a single leaf value.
type Info[Self any] interface {
	Combine(Self) Self
}

// Comp is an ordering predicate over accumulated Info, monotone along
// any increasing path of sums — "C < I" in spec §4.1's terms. Comp(s)
// reports whether C is less than s.
type Comp[I any] func(sum I) bool

// Begin returns the comparator that is less than every sum — used to
// anchor insertion/removal at the very first position.
func Begin[I any]() Comp[I] {
	return func(I) bool { return true }
}

// End returns the comparator that is never less than any sum — used
// for right-edge append.
func End[I any]() Comp[I] {
	return func(I) bool { return false }
}

// node is a tagged variant over the two node shapes: exactly one of
// leaf/inode is non-nil. Depth-driven branching in the C++ source
// (overload resolution on Leaf*/INode*) becomes an explicit check of
// which field is set, per the "Polymorphism over variant nodes" design
// note.
type node[T any, I Info[I]] struct {
	info  I
	leaf  *leafNode[T, I]
	inode *inodeNode[T, I]
}

type leafNode[T any, I Info[I]] struct {
	children StaticVector[T]
	// prev/next are non-owning; ownership of every leaf flows top-down
	// through inodeNode.children, per the cyclic-reference design note.
	prev, next *leafNode[T, I]
}

type inodeNode[T any, I Info[I]] struct {
	children StaticVector[*node[T, I]]
}

// Tree is the generic B-tree of spec §4.1, parameterised by a leaf
// value type T and a monoidal summary type I.
type Tree[T any, I Info[I]] struct {
	depth    int
	root     *node[T, I]
	fromLeaf func(T) I
}

// NewTree returns an empty tree. fromLeaf injects a single leaf value
// into the summary monoid (spec §4.1's "injection from a single leaf
// value").
func NewTree[T any, I Info[I]](fromLeaf func(T) I) *Tree[T, I] {
	return &Tree[T, I]{
		depth:    0,
		root:     &node[T, I]{leaf: &leafNode[T, I]{children: NewStaticVector[T](leafSize)}},
		fromLeaf: fromLeaf,
	}
}

// Info returns the aggregate info of the whole tree in O(1).
func (t *Tree[T, I]) Info() I {
	return t.root.info
}

func recomputeLeaf[T any, I Info[I]](n *leafNode[T, I], fromLeaf func(T) I) I {
	var sum I
	for _, c := range n.children.Slice() {
		sum = sum.Combine(fromLeaf(c))
	}
	return sum
}

func recomputeINode[T any, I Info[I]](n *inodeNode[T, I]) I {
	var sum I
	for _, c := range n.children.Slice() {
		sum = sum.Combine(c.info)
	}
	return sum
}

// getIndexLeaf scans the leaf's children, accumulating into *sum the
// info of every child strictly before the returned index. The loop
// runs over all children (not size-1) because a leaf must be able to
// report "insert at the end" as a valid index (== children.Len()).
func getIndexLeaf[T any, I Info[I]](n *leafNode[T, I], sum *I, comp Comp[I], fromLeaf func(T) I) int {
	last := n.children.Len()
	i := 0
	for ; i < last; i++ {
		next := (*sum).Combine(fromLeaf(n.children.Get(i)))
		if comp(next) {
			break
		}
		*sum = next
	}
	return i
}

// getIndexINode is the internal-node analogue; the last child is
// always a valid fallback (an internal node must descend somewhere),
// so the loop only runs over children.Len()-1 candidates.
func getIndexINode[T any, I Info[I]](n *inodeNode[T, I], sum *I, comp Comp[I]) int {
	last := n.children.Len() - 1
	i := 0
	for ; i < last; i++ {
		next := (*sum).Combine(n.children.Get(i).info)
		if comp(next) {
			break
		}
		*sum = next
	}
	return i
}

func (t *Tree[T, I]) get(depth int, n *node[T, I], sum *I, comp Comp[I]) (T, bool) {
	if n.leaf != nil {
		idx := getIndexLeaf(n.leaf, sum, comp, t.fromLeaf)
		if idx >= n.leaf.children.Len() {
			var zero T
			return zero, false
		}
		return n.leaf.children.Get(idx), true
	}
	idx := getIndexINode(n.inode, sum, comp)
	return t.get(depth-1, n.inode.children.Get(idx), sum, comp)
}

// Get returns the first element whose cumulative sum strictly exceeds
// comp, and false if none exists.
func (t *Tree[T, I]) Get(comp Comp[I]) (T, bool) {
	var sum I
	return t.get(t.depth, t.root, &sum, comp)
}

// Sum returns the cumulative info over [begin, first position where
// comp < sum), or the whole tree's info if no such position exists.
func (t *Tree[T, I]) Sum(comp Comp[I]) I {
	if !comp(t.Info()) {
		return t.Info()
	}
	var sum I
	t.get(t.depth, t.root, &sum, comp)
	return sum
}

func (t *Tree[T, I]) insert(depth int, n *node[T, I], sum I, comp Comp[I], v T) *node[T, I] {
	if n.leaf != nil {
		idx := getIndexLeaf(n.leaf, &sum, comp, t.fromLeaf)
		n.leaf.children.Insert(idx, v)
		if n.leaf.children.Full() {
			next := &leafNode[T, I]{children: NewStaticVector[T](leafSize)}
			n.leaf.children.Split(&next.children)
			next.next = n.leaf.next
			if next.next != nil {
				next.next.prev = next
			}
			next.prev = n.leaf
			n.leaf.next = next
			n.info = recomputeLeaf(n.leaf, t.fromLeaf)
			newNode := &node[T, I]{leaf: next}
			newNode.info = recomputeLeaf(next, t.fromLeaf)
			return newNode
		}
		n.info = recomputeLeaf(n.leaf, t.fromLeaf)
		return nil
	}

	idx := getIndexINode(n.inode, &sum, comp)
	newChild := t.insert(depth-1, n.inode.children.Get(idx), sum, comp, v)
	if newChild != nil {
		n.inode.children.Insert(idx+1, newChild)
		if n.inode.children.Full() {
			next := &inodeNode[T, I]{children: NewStaticVector[*node[T, I]](inodeSize)}
			n.inode.children.Split(&next.children)
			n.info = recomputeINode(n.inode)
			newNode := &node[T, I]{inode: next}
			newNode.info = recomputeINode(next)
			return newNode
		}
	}
	n.info = recomputeINode(n.inode)
	return nil
}

// Insert inserts v at the position returned by Get(comp).
func (t *Tree[T, I]) Insert(comp Comp[I], v T) {
	var sum I
	newChild := t.insert(t.depth, t.root, sum, comp, v)
	if newChild != nil {
		t.depth++
		newRoot := &inodeNode[T, I]{children: NewStaticVector[*node[T, I]](inodeSize)}
		newRoot.children.Append(t.root)
		newRoot.children.Append(newChild)
		wrapped := &node[T, I]{inode: newRoot}
		wrapped.info = recomputeINode(newRoot)
		t.root = wrapped
	}
}

// Append inserts v at the right edge of the tree.
func (t *Tree[T, I]) Append(v T) {
	t.Insert(End[I](), v)
}

// balance merges or redistributes between two underfull-or-adjacent
// siblings, mirroring Tree::balance. It returns true if right was
// absorbed entirely into left (the caller must drop right).
func (t *Tree[T, I]) balance(left, right *node[T, I]) bool {
	if left.leaf != nil {
		lv, rv := &left.leaf.children, &right.leaf.children
		if lv.Len()+rv.Len() < leafSize {
			lv.Merge(rv)
			left.leaf.next = right.leaf.next
			if left.leaf.next != nil {
				left.leaf.next.prev = left.leaf
			}
			left.info = recomputeLeaf(left.leaf, t.fromLeaf)
			return true
		}
		if lv.Len() < leafSize/2 {
			lv.Append(rv.Get(0))
			rv.Remove(0)
		} else {
			rv.Insert(0, lv.Last())
			lv.RemoveLast()
		}
		left.info = recomputeLeaf(left.leaf, t.fromLeaf)
		right.info = recomputeLeaf(right.leaf, t.fromLeaf)
		return false
	}
	lv, rv := &left.inode.children, &right.inode.children
	if lv.Len()+rv.Len() < inodeSize {
		lv.Merge(rv)
		left.info = recomputeINode(left.inode)
		return true
	}
	if lv.Len() < inodeSize/2 {
		lv.Append(rv.Get(0))
		rv.Remove(0)
	} else {
		rv.Insert(0, lv.Last())
		lv.RemoveLast()
	}
	left.info = recomputeINode(left.inode)
	right.info = recomputeINode(right.inode)
	return false
}

func (t *Tree[T, I]) remove(depth int, n *node[T, I], sum I, comp Comp[I]) bool {
	if n.leaf != nil {
		idx := getIndexLeaf(n.leaf, &sum, comp, t.fromLeaf)
		n.leaf.children.Remove(idx)
		n.info = recomputeLeaf(n.leaf, t.fromLeaf)
		return n.leaf.children.Len() < leafSize/2
	}

	idx := getIndexINode(n.inode, &sum, comp)
	child := n.inode.children.Get(idx)
	if t.remove(depth-1, child, sum, comp) {
		if idx == 0 {
			idx++
		}
		left := n.inode.children.Get(idx - 1)
		right := n.inode.children.Get(idx)
		if t.balance(left, right) {
			n.inode.children.Remove(idx)
		}
	}
	n.info = recomputeINode(n.inode)
	return n.inode.children.Len() < inodeSize/2
}

// Remove removes the element identified by comp.
func (t *Tree[T, I]) Remove(comp Comp[I]) {
	var sum I
	t.remove(t.depth, t.root, sum, comp)
	if t.depth > 0 && t.root.inode.children.Len() == 1 {
		t.root = t.root.inode.children.Get(0)
		t.depth--
	}
}

func (t *Tree[T, I]) firstLeaf() *leafNode[T, I] {
	n := t.root
	for d := t.depth; d > 0; d-- {
		n = n.inode.children.Get(0)
	}
	return n.leaf
}

// ForEachLeaf visits the leaves in order, for sequential dump (file
// save) or bulk statistics. The callback must not retain the slice.
func (t *Tree[T, I]) ForEachLeaf(fn func([]T)) {
	for leaf := t.firstLeaf(); leaf != nil; leaf = leaf.next {
		fn(leaf.children.Slice())
	}
}

// chunkSizes splits n items into the fewest chunks of at most size-1
// elements each (a node holding size elements is full and would
// overflow on its next insert), spreading the items evenly so every
// chunk but possibly the sole chunk (the eventual root) respects the
// half-full invariant of spec §4.1.
func chunkSizes(n, size int) []int {
	if n == 0 {
		return nil
	}
	count := (n + size - 2) / (size - 1)
	sizes := make([]int, count)
	base, rem := n/count, n%count
	for i := range sizes {
		sizes[i] = base
		if i < rem {
			sizes[i]++
		}
	}
	return sizes
}

// NewTreeFromItems builds a tree in bulk, producing nodes that already
// satisfy the fill invariants instead of growing one element at a time
// — the Go analogue of Tree::append_range, used by the buffer loader.
func NewTreeFromItems[T any, I Info[I]](items []T, fromLeaf func(T) I) *Tree[T, I] {
	if len(items) == 0 {
		return NewTree[T, I](fromLeaf)
	}

	sizes := chunkSizes(len(items), leafSize)
	nodes := make([]*node[T, I], len(sizes))
	var prev *leafNode[T, I]
	off := 0
	for i, sz := range sizes {
		lf := &leafNode[T, I]{children: NewStaticVector[T](leafSize)}
		for _, v := range items[off : off+sz] {
			lf.children.Append(v)
		}
		lf.prev = prev
		if prev != nil {
			prev.next = lf
		}
		prev = lf
		n := &node[T, I]{leaf: lf}
		n.info = recomputeLeaf(lf, fromLeaf)
		nodes[i] = n
		off += sz
	}

	depth := 0
	for len(nodes) > 1 {
		gsizes := chunkSizes(len(nodes), inodeSize)
		next := make([]*node[T, I], len(gsizes))
		off := 0
		for i, sz := range gsizes {
			in := &inodeNode[T, I]{children: NewStaticVector[*node[T, I]](inodeSize)}
			for _, c := range nodes[off : off+sz] {
				in.children.Append(c)
			}
			n := &node[T, I]{inode: in}
			n.info = recomputeINode(in)
			next[i] = n
			off += sz
		}
		nodes = next
		depth++
	}
	return &Tree[T, I]{depth: depth, root: nodes[0], fromLeaf: fromLeaf}
}
