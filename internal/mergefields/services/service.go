package services

import (
	"context"
	"fmt"
	"strings"

	"go-controls/internal/mergefields/dto"
	"go-controls/pkg/bags"
	"go-controls/pkg/handlers"
	"go-controls/pkg/tree"

	"github.com/go-playground/validator/v10"
)

const (
	pathSeparator = "|"
	// maxDepth bounds how many segments a path may have, so self-referencing
	// schemas such as Group.ParentGroup stop expanding.
	maxDepth = 5
)

// Service browses the merge field registry
type Service struct {
	registry *Registry
	validate *validator.Validate
}

// NewService creates a new service instance
func NewService(registry *Registry) (*Service, error) {
	validate := validator.New()
	if err := dto.RegisterCustomValidators(validate); err != nil {
		return nil, err
	}
	return &Service{registry: registry, validate: validate}, nil
}

// resolved is a path walked through the registry
type resolved struct {
	root     Root
	segments []string
	schema   string // schema of the last segment, "" for plain values
}

func (s *Service) resolve(id string) (*resolved, error) {
	if err := handlers.ValidateStruct(s.validate, dto.FieldPath{ID: id}); err != nil {
		return nil, err
	}

	segments := strings.Split(id, pathSeparator)
	if len(segments) > maxDepth {
		return nil, fmt.Errorf("merge field %s is nested too deeply: %w", id, handlers.ErrInvalid)
	}

	root, ok := s.registry.roots[segments[0]]
	if !ok {
		return nil, fmt.Errorf("unknown merge field %s: %w", segments[0], handlers.ErrInvalid)
	}

	schema := root.Schema
	for _, segment := range segments[1:] {
		if schema == "" {
			return nil, fmt.Errorf("merge field %s has no property %s: %w", id, segment, handlers.ErrInvalid)
		}
		prop, ok := s.registry.Property(schema, segment)
		if !ok {
			return nil, fmt.Errorf("%s has no property %s: %w", schema, segment, handlers.ErrInvalid)
		}
		schema = prop.Target
	}
	return &resolved{root: root, segments: segments, schema: schema}, nil
}

func (s *Service) rootNodes(additional []string) []tree.Node {
	names := append(append([]string{}, s.registry.defaultRoots...), additional...)
	seen := make(map[string]bool, len(names))

	nodes := make([]tree.Node, 0, len(names))
	for _, name := range names {
		root, ok := s.registry.roots[name]
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		nodes = append(nodes, tree.Node{
			Guid:     root.Name,
			Name:     root.FriendlyName,
			Order:    len(nodes),
			IsActive: true,
			IsFolder: root.Schema != "",
		})
	}
	return nodes
}

func (s *Service) children(ctx context.Context, id string, additional []string) ([]tree.Node, error) {
	if id == "" {
		return s.rootNodes(additional), nil
	}

	r, err := s.resolve(id)
	if err != nil {
		return nil, err
	}
	if r.schema == "" || len(r.segments) >= maxDepth {
		return nil, nil
	}

	props := s.registry.schemas[r.schema].Properties
	nodes := make([]tree.Node, 0, len(props))
	for i, prop := range props {
		nodes = append(nodes, tree.Node{
			Guid:       id + pathSeparator + prop.Name,
			ParentGuid: id,
			Name:       prop.FriendlyName,
			Order:      i,
			IsActive:   true,
			IsFolder:   prop.Target != "" && len(r.segments)+1 < maxDepth,
		})
	}
	return nodes, nil
}

// Children lists the merge fields below id. Navigation properties are folders.
func (s *Service) Children(ctx context.Context, id string, additionalFields []string) ([]*bags.TreeItemBag, error) {
	src := tree.SourceFunc(func(ctx context.Context, parent string) ([]tree.Node, error) {
		return s.children(ctx, parent, additionalFields)
	})
	return tree.Build(ctx, src, id, tree.Options{
		Decorate: func(node tree.Node, item *bags.TreeItemBag) {
			if node.IsFolder {
				item.IconCssClass = "fa fa-folder"
			}
		},
	})
}

// FormatValue returns the template expression for a merge field id
func (s *Service) FormatValue(ctx context.Context, id string) (string, error) {
	r, err := s.resolve(id)
	if err != nil {
		return "", err
	}

	switch {
	case len(r.segments) == 1 && r.root.Expression != "":
		return r.root.Expression, nil
	case r.root.Schema == "GlobalAttribute" && len(r.segments) == 2:
		return fmt.Sprintf("{{ 'Global' | Attribute:'%s' }}", r.segments[1]), nil
	default:
		return "{{ " + strings.Join(r.segments, ".") + " }}", nil
	}
}
