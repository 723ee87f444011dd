// Package tree builds TreeItemBag hierarchies from parent-linked records.
package tree

import (
	"context"
	"fmt"

	"go-controls/pkg/bags"
)

// Node is the minimal shape of a hierarchical record
type Node struct {
	Guid         string
	ParentGuid   string
	Name         string
	Order        int
	IsActive     bool
	IsFolder     bool
	IconCssClass string
}

func (n Node) SortOrder() int   { return n.Order }
func (n Node) SortText() string { return n.Name }

// Source returns the direct children of parentGuid; "" asks for the roots
type Source interface {
	Children(ctx context.Context, parentGuid string) ([]Node, error)
}

// ChildCounter is an optional Source extension that answers, in one query,
// which of the given guids have at least one child.
type ChildCounter interface {
	HasChildren(ctx context.Context, guids []string) (map[string]bool, error)
}

// SourceFunc adapts a function to Source
type SourceFunc func(ctx context.Context, parentGuid string) ([]Node, error)

func (f SourceFunc) Children(ctx context.Context, parentGuid string) ([]Node, error) {
	return f(ctx, parentGuid)
}

// Options controls how Build expands the tree
type Options struct {
	LoadAll         bool
	IncludeInactive bool
	MaxDepth        int // 0 means unlimited
	Filter          func(Node) bool
	Decorate        func(Node, *bags.TreeItemBag)
}

// Build returns the children of parentGuid as tree items. With LoadAll the
// whole subtree is expanded, otherwise only HasChildren is filled in.
func Build(ctx context.Context, src Source, parentGuid string, opts Options) ([]*bags.TreeItemBag, error) {
	b := &builder{src: src, opts: opts, visited: map[string]bool{}}
	if parentGuid != "" {
		b.visited[parentGuid] = true
	}
	return b.level(ctx, parentGuid, 1)
}

type builder struct {
	src     Source
	opts    Options
	visited map[string]bool
}

func (b *builder) level(ctx context.Context, parentGuid string, depth int) ([]*bags.TreeItemBag, error) {
	nodes, err := b.visible(ctx, parentGuid)
	if err != nil {
		return nil, err
	}

	bags.SortByOrderThenText(nodes)

	expand := b.opts.LoadAll && (b.opts.MaxDepth == 0 || depth < b.opts.MaxDepth)

	var hasChildren map[string]bool
	if !expand {
		hasChildren, err = b.hasChildren(ctx, nodes)
		if err != nil {
			return nil, err
		}
	}

	items := make([]*bags.TreeItemBag, 0, len(nodes))
	for _, node := range nodes {
		if b.visited[node.Guid] {
			continue
		}
		b.visited[node.Guid] = true

		item := &bags.TreeItemBag{
			Value:        node.Guid,
			Text:         node.Name,
			IsFolder:     node.IsFolder,
			IconCssClass: node.IconCssClass,
			IsActive:     node.IsActive,
		}

		if expand {
			children, err := b.level(ctx, node.Guid, depth+1)
			if err != nil {
				return nil, err
			}
			item.SetChildren(children)
		} else {
			item.HasChildren = hasChildren[node.Guid]
		}

		if b.opts.Decorate != nil {
			b.opts.Decorate(node, item)
		}
		items = append(items, item)
	}

	return items, nil
}

func (b *builder) visible(ctx context.Context, parentGuid string) ([]Node, error) {
	nodes, err := b.src.Children(ctx, parentGuid)
	if err != nil {
		return nil, fmt.Errorf("failed to load children of %q: %w", parentGuid, err)
	}

	filtered := make([]Node, 0, len(nodes))
	for _, node := range nodes {
		if !node.IsActive && !b.opts.IncludeInactive {
			continue
		}
		if b.opts.Filter != nil && !b.opts.Filter(node) {
			continue
		}
		filtered = append(filtered, node)
	}
	return filtered, nil
}

// hasChildren reports which nodes have visible children. A ChildCounter answers
// for all nodes at once but cannot apply Filter; without Filter it is preferred.
func (b *builder) hasChildren(ctx context.Context, nodes []Node) (map[string]bool, error) {
	result := make(map[string]bool, len(nodes))
	if len(nodes) == 0 {
		return result, nil
	}

	if counter, ok := b.src.(ChildCounter); ok && b.opts.Filter == nil {
		guids := make([]string, len(nodes))
		for i, node := range nodes {
			guids[i] = node.Guid
		}
		return counter.HasChildren(ctx, guids)
	}

	for _, node := range nodes {
		children, err := b.visible(ctx, node.Guid)
		if err != nil {
			return nil, err
		}
		result[node.Guid] = len(children) > 0
	}
	return result, nil
}

// ParentLookup returns the parent guid of guid, or "" for a root
type ParentLookup func(ctx context.Context, guid string) (string, error)

// Ancestors walks up from each selected guid and returns every ancestor once,
// root-first per selection. The selected guids themselves are not included.
func Ancestors(ctx context.Context, parentOf ParentLookup, guids []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	for _, guid := range guids {
		var chain []string
		walked := map[string]bool{guid: true}

		current := guid
		for {
			parent, err := parentOf(ctx, current)
			if err != nil {
				return nil, err
			}
			if parent == "" || walked[parent] {
				break
			}
			walked[parent] = true
			chain = append(chain, parent)
			current = parent
		}

		for i := len(chain) - 1; i >= 0; i-- {
			if !seen[chain[i]] {
				seen[chain[i]] = true
				result = append(result, chain[i])
			}
		}
	}

	return result, nil
}
