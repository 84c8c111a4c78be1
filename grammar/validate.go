package grammar

import (
	"github.com/alecthomas/participle/v2"
)

// validate applies the rules the grammar cannot express: statements other
// than the last in a block need a ';', and an assignment (with or without
// let) is only a statement of its own, directly followed by ';'.
func (p *Program) validate() error {
	return validateStatements(p.Statements)
}

func validateStatements(statements []*Statement) error {
	for i, s := range statements {
		if i < len(statements)-1 && !s.Terminated {
			return participle.Errorf(statements[i+1].Pos, "statement didn't close with a ';'")
		}
		if s.Expr.isAssignment() && !s.Terminated {
			return participle.Errorf(s.Pos, "assignment must be followed by ';'")
		}
		if err := s.Expr.validateOperands(); err != nil {
			return err
		}
	}
	return nil
}

func (e *Expression) isAssignment() bool {
	return e.Let != nil || e.Assignment != nil
}

func (e *Expression) validateOperands() error {
	switch {
	case e.Let != nil:
		return e.Let.Value.validate()
	case e.Assignment != nil:
		return e.Assignment.Value.validate()
	default:
		return e.Comparison.validate()
	}
}

func (c *Comparison) validate() error {
	if err := c.Left.validate(); err != nil {
		return err
	}
	for _, op := range c.Ops {
		if err := op.Right.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (a *Additive) validate() error {
	if err := a.Left.validate(); err != nil {
		return err
	}
	for _, op := range a.Ops {
		if err := op.Right.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (m *Multiplicative) validate() error {
	if err := m.Left.validate(); err != nil {
		return err
	}
	for _, op := range m.Ops {
		if err := op.Right.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Primary) validate() error {
	switch {
	case p.Group != nil:
		if p.Group.isAssignment() {
			return participle.Errorf(p.Pos, "assignment inside parentheses")
		}
		return p.Group.validateOperands()
	case p.Block != nil:
		return validateStatements(p.Block.Statements)
	}
	return nil
}
