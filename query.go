package stockroom

import (
	"github.com/TheBitDrifter/mask"
)

type Operation int

const (
	OpAnd Operation = iota
	OpOr
	OpNot
)

type compositeNode struct {
	op          Operation
	children    []QueryNode
	collections []Collection
}

type query struct {
	root QueryNode
}

func newQuery() Query {
	return &query{}
}

func newCompositeNode(op Operation, collections []Collection) *compositeNode {
	return &compositeNode{
		op:          op,
		children:    make([]QueryNode, 0),
		collections: collections,
	}
}

func (n *compositeNode) Evaluate(entityMask mask.Mask) bool {
	// Build mask at evaluation time
	var nodeMask mask.Mask
	for _, col := range n.collections {
		nodeMask.Mark(col.RowIndex())
	}

	switch n.op {
	case OpAnd:
		if !entityMask.ContainsAll(nodeMask) {
			return false
		}
		for _, child := range n.children {
			if !child.Evaluate(entityMask) {
				return false
			}
		}
		return true

	case OpOr:
		if entityMask.ContainsAny(nodeMask) {
			return true
		}
		for _, child := range n.children {
			if child.Evaluate(entityMask) {
				return true
			}
		}
		return false

	case OpNot:
		if len(n.children) == 0 {
			return entityMask.ContainsNone(nodeMask)
		}
		for _, child := range n.children {
			if child.Evaluate(entityMask) {
				return false
			}
		}
		return !entityMask.ContainsAny(nodeMask)
	}
	return false
}

func (q *query) And(items ...interface{}) QueryNode {
	collections, children := q.processItems(items...)
	node := newCompositeNode(OpAnd, collections)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) Or(items ...interface{}) QueryNode {
	collections, children := q.processItems(items...)
	node := newCompositeNode(OpOr, collections)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) Not(items ...interface{}) QueryNode {
	collections, children := q.processItems(items...)
	node := newCompositeNode(OpNot, collections)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) processItems(items ...interface{}) ([]Collection, []QueryNode) {
	collections := make([]Collection, 0)
	children := make([]QueryNode, 0)

	for _, item := range items {
		switch v := item.(type) {
		case Collection:
			collections = append(collections, v)
		case []Collection:
			collections = append(collections, v...)
		case QueryNode:
			children = append(children, v)
		}
	}

	return collections, children
}

func (q *query) Evaluate(entityMask mask.Mask) bool {
	if q.root == nil {
		return false
	}
	return q.root.Evaluate(entityMask)
}
