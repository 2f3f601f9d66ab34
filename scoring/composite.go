package scoring

import "github.com/schemagraph/schemagraph/graph"

// CompositeVisitor broadcasts every Visitor callback to each of its
// members in turn, stopping at the first error. It lets the three column
// scorers run as a single graph walk instead of three separate ones.
type CompositeVisitor struct {
	Members []graph.Visitor
}

// NewCompositeVisitor returns a CompositeVisitor broadcasting to members
// in the given order.
func NewCompositeVisitor(members ...graph.Visitor) *CompositeVisitor {
	return &CompositeVisitor{Members: members}
}

func (c *CompositeVisitor) VisitSchema(ctx *graph.VisitContext, id graph.NodeID) error {
	for _, m := range c.Members {
		if err := m.VisitSchema(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (c *CompositeVisitor) VisitTable(ctx *graph.VisitContext, id graph.NodeID) error {
	for _, m := range c.Members {
		if err := m.VisitTable(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (c *CompositeVisitor) VisitColumn(ctx *graph.VisitContext, id graph.NodeID) error {
	for _, m := range c.Members {
		if err := m.VisitColumn(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (c *CompositeVisitor) VisitPK(ctx *graph.VisitContext, id graph.NodeID) error {
	for _, m := range c.Members {
		if err := m.VisitPK(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (c *CompositeVisitor) VisitFK(ctx *graph.VisitContext, id graph.NodeID) error {
	for _, m := range c.Members {
		if err := m.VisitFK(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (c *CompositeVisitor) VisitType(ctx *graph.VisitContext, id graph.NodeID) error {
	for _, m := range c.Members {
		if err := m.VisitType(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (c *CompositeVisitor) VisitReference(ctx *graph.VisitContext, from, to graph.NodeID) error {
	for _, m := range c.Members {
		if err := m.VisitReference(ctx, from, to); err != nil {
			return err
		}
	}
	return nil
}
