package impl

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Decentr-net/socialdistribution/internal/entities"
)

func (s srv) ListNodes(ctx context.Context) ([]*entities.Node, error) {
	nn, err := s.s.ListNodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}

	return nn, nil
}

func (s srv) CreateNode(ctx context.Context, n *entities.Node) (*entities.Node, error) {
	node := *n
	if node.ID == uuid.Nil {
		node.ID = uuid.New()
	}

	if err := validateNode(&node); err != nil {
		return nil, err
	}

	if err := s.s.CreateNode(ctx, &node); err != nil {
		return nil, fmt.Errorf("failed to create node: %w", err)
	}

	log.WithField("node", node.Name).WithField("host", node.Host).Info("node registered")

	return &node, nil
}

func (s srv) UpdateNode(ctx context.Context, n *entities.Node) (*entities.Node, error) {
	if err := validateNode(n); err != nil {
		return nil, err
	}

	if err := s.s.UpdateNode(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to update node: %w", err)
	}

	return n, nil
}

func (s srv) DeleteNode(ctx context.Context, id uuid.UUID) error {
	if err := s.s.DeleteNode(ctx, id); err != nil {
		return fmt.Errorf("failed to delete node: %w", err)
	}

	return nil
}
