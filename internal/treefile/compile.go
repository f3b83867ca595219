package treefile

import (
	"fmt"
	"log"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/gobhv/go-bhv/pkg/bhv"
	"github.com/gobhv/go-bhv/pkg/bhv/event"
)

// Compile builds a poll-model tree from the definition. Trees containing
// wait_for nodes cannot be compiled for polling; use CompileEvents.
func (t *Tree) Compile() (bhv.Node[Blackboard], error) {
	return compileDef(t.Root, "root")
}

// CompileEvents builds an event-model tree from the definition.
func (t *Tree) CompileEvents() (event.Node[Blackboard], error) {
	return compileEventDef(t.Root, "root")
}

func compileDef(d *Def, at string) (bhv.Node[Blackboard], error) {
	one := func(c *Def, name string) (bhv.Node[Blackboard], error) {
		return compileDef(c, at+"."+name)
	}

	switch {
	case d.Sequence != nil:
		children, err := compileList(d.Sequence, at, "sequence")
		if err != nil {
			return nil, err
		}
		return bhv.NewSequence(children...), nil
	case d.Selector != nil:
		children, err := compileList(d.Selector, at, "selector")
		if err != nil {
			return nil, err
		}
		return bhv.NewSelector(children...), nil
	case d.Invert != nil:
		child, err := one(d.Invert, "invert")
		if err != nil {
			return nil, err
		}
		return bhv.Invert(child), nil
	case d.Pass != nil:
		child, err := one(d.Pass, "pass")
		if err != nil {
			return nil, err
		}
		return bhv.Pass(child), nil
	case d.Fail != nil:
		child, err := one(d.Fail, "fail")
		if err != nil {
			return nil, err
		}
		return bhv.Fail(child), nil
	case d.Repeat != nil:
		child, err := one(d.Repeat.Child, "repeat")
		if err != nil {
			return nil, err
		}
		return bhv.Repeat(d.Repeat.Count, child), nil
	case d.UntilPass != nil:
		child, err := one(d.UntilPass, "until_pass")
		if err != nil {
			return nil, err
		}
		return bhv.UntilPass(child), nil
	case d.UntilFail != nil:
		child, err := one(d.UntilFail, "until_fail")
		if err != nil {
			return nil, err
		}
		return bhv.UntilFail(child), nil
	case d.Until != nil:
		child, err := one(d.Until.Child, "until")
		if err != nil {
			return nil, err
		}
		pred, err := compileCond(d.Until.Cond, at+".until")
		if err != nil {
			return nil, err
		}
		return bhv.Until(child, pred), nil
	case d.WaitFor != nil:
		return nil, fmt.Errorf("treefile: %s: wait_for requires the event model", at)
	case d.Cond != "":
		pred, err := compileCond(d.Cond, at)
		if err != nil {
			return nil, err
		}
		return bhv.Cond(pred), nil
	case d.Action != nil:
		fn, err := compileAction(d.Action, at)
		if err != nil {
			return nil, err
		}
		return bhv.Task(fn), nil
	}
	// Unreachable after validateDef.
	return nil, fmt.Errorf("treefile: %s: empty node", at)
}

func compileList(defs []*Def, at, name string) ([]bhv.Node[Blackboard], error) {
	children := make([]bhv.Node[Blackboard], len(defs))
	for i, c := range defs {
		n, err := compileDef(c, fmt.Sprintf("%s.%s[%d]", at, name, i))
		if err != nil {
			return nil, err
		}
		children[i] = n
	}
	return children, nil
}

func compileEventDef(d *Def, at string) (event.Node[Blackboard], error) {
	one := func(c *Def, name string) (event.Node[Blackboard], error) {
		return compileEventDef(c, at+"."+name)
	}

	switch {
	case d.Sequence != nil:
		children, err := compileEventList(d.Sequence, at, "sequence")
		if err != nil {
			return nil, err
		}
		return event.NewSequence(children...), nil
	case d.Selector != nil:
		children, err := compileEventList(d.Selector, at, "selector")
		if err != nil {
			return nil, err
		}
		return event.NewSelector(children...), nil
	case d.Invert != nil:
		child, err := one(d.Invert, "invert")
		if err != nil {
			return nil, err
		}
		return event.Invert(child), nil
	case d.Pass != nil:
		child, err := one(d.Pass, "pass")
		if err != nil {
			return nil, err
		}
		return event.Pass(child), nil
	case d.Fail != nil:
		child, err := one(d.Fail, "fail")
		if err != nil {
			return nil, err
		}
		return event.Fail(child), nil
	case d.Repeat != nil:
		child, err := one(d.Repeat.Child, "repeat")
		if err != nil {
			return nil, err
		}
		return event.Repeat(d.Repeat.Count, child), nil
	case d.UntilPass != nil:
		child, err := one(d.UntilPass, "until_pass")
		if err != nil {
			return nil, err
		}
		return event.UntilPass(child), nil
	case d.UntilFail != nil:
		child, err := one(d.UntilFail, "until_fail")
		if err != nil {
			return nil, err
		}
		return event.UntilFail(child), nil
	case d.Until != nil:
		// No event-model counterpart of the predicate decorator; express it
		// with the shared status rule over a cond+child selector instead.
		child, err := one(d.Until.Child, "until")
		if err != nil {
			return nil, err
		}
		pred, err := compileCond(d.Until.Cond, at+".until")
		if err != nil {
			return nil, err
		}
		return event.UntilPass(event.NewSequence(event.Pass(child), event.Cond(pred))), nil
	case d.WaitFor != nil:
		child, err := one(d.WaitFor.Child, "wait_for")
		if err != nil {
			return nil, err
		}
		return event.WaitFor(event.Kind(d.WaitFor.Event), child), nil
	case d.Cond != "":
		pred, err := compileCond(d.Cond, at)
		if err != nil {
			return nil, err
		}
		return event.Cond(pred), nil
	case d.Action != nil:
		fn, err := compileAction(d.Action, at)
		if err != nil {
			return nil, err
		}
		return event.Task(fn), nil
	}
	return nil, fmt.Errorf("treefile: %s: empty node", at)
}

func compileEventList(defs []*Def, at, name string) ([]event.Node[Blackboard], error) {
	children := make([]event.Node[Blackboard], len(defs))
	for i, c := range defs {
		n, err := compileEventDef(c, fmt.Sprintf("%s.%s[%d]", at, name, i))
		if err != nil {
			return nil, err
		}
		children[i] = n
	}
	return children, nil
}

// compileCond compiles an expr predicate over the blackboard. Evaluation
// errors at run time map to Failed (logged), per the rule that leaves
// wrapping fallible operations translate their own failures.
func compileCond(src, at string) (func(*Blackboard) bool, error) {
	prog, err := compileExpr(src, at, expr.AsBool())
	if err != nil {
		return nil, err
	}
	return func(bb *Blackboard) bool {
		out, err := expr.Run(prog, map[string]any(*bb))
		if err != nil {
			log.Printf("[Treefile] cond %q: %v", src, err)
			return false
		}
		b, ok := out.(bool)
		return ok && b
	}, nil
}

// compileAction compiles an expr action over the blackboard. The program's
// result is stored under def.Set when non-empty; a run-time evaluation
// error yields Failed.
func compileAction(def *ActionDef, at string) (func(*Blackboard) bhv.Status, error) {
	prog, err := compileExpr(def.Expr, at)
	if err != nil {
		return nil, err
	}
	return func(bb *Blackboard) bhv.Status {
		out, err := expr.Run(prog, map[string]any(*bb))
		if err != nil {
			log.Printf("[Treefile] action %q: %v", def.Expr, err)
			return bhv.Failed
		}
		if def.Set != "" {
			(*bb)[def.Set] = out
		}
		return bhv.Succeeded
	}, nil
}

func compileExpr(src, at string, opts ...expr.Option) (*vm.Program, error) {
	opts = append([]expr.Option{expr.Env(Blackboard{}), expr.AllowUndefinedVariables()}, opts...)
	prog, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("treefile: %s: compile %q: %w", at, src, err)
	}
	return prog, nil
}
