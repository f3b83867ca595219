package treefile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a tree file. The returned Tree is structurally
// sound (every Def names exactly one node kind, decorators have children)
// but its expr programs are not compiled yet; that happens in Compile /
// CompileEvents.
func Load(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("treefile: read %q: %w", path, err)
	}
	return Parse(data)
}

// Parse is Load for in-memory documents.
func Parse(data []byte) (*Tree, error) {
	var t Tree
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("treefile: parse: %w", err)
	}
	if t.Name == "" {
		t.Name = "tree"
	}
	if t.Root == nil {
		return nil, fmt.Errorf("treefile: %q: root is required", t.Name)
	}
	if err := validateDef(t.Root, "root"); err != nil {
		return nil, err
	}
	return &t, nil
}

// validateDef checks that exactly one node kind is set and recurses into
// children. at is a dotted path used in error messages, e.g.
// "root.sequence[2].repeat".
func validateDef(d *Def, at string) error {
	type child struct {
		name string
		def  *Def
	}
	var kinds []string
	var children []child

	if d.Sequence != nil {
		kinds = append(kinds, "sequence")
		for i, c := range d.Sequence {
			children = append(children, child{fmt.Sprintf("sequence[%d]", i), c})
		}
	}
	if d.Selector != nil {
		kinds = append(kinds, "selector")
		for i, c := range d.Selector {
			children = append(children, child{fmt.Sprintf("selector[%d]", i), c})
		}
	}
	if d.Invert != nil {
		kinds = append(kinds, "invert")
		children = append(children, child{"invert", d.Invert})
	}
	if d.Pass != nil {
		kinds = append(kinds, "pass")
		children = append(children, child{"pass", d.Pass})
	}
	if d.Fail != nil {
		kinds = append(kinds, "fail")
		children = append(children, child{"fail", d.Fail})
	}
	if d.Repeat != nil {
		kinds = append(kinds, "repeat")
		if d.Repeat.Count < 1 {
			return fmt.Errorf("treefile: %s.repeat: count must be >= 1, got %d", at, d.Repeat.Count)
		}
		if d.Repeat.Child == nil {
			return fmt.Errorf("treefile: %s.repeat: child is required", at)
		}
		children = append(children, child{"repeat", d.Repeat.Child})
	}
	if d.UntilPass != nil {
		kinds = append(kinds, "until_pass")
		children = append(children, child{"until_pass", d.UntilPass})
	}
	if d.UntilFail != nil {
		kinds = append(kinds, "until_fail")
		children = append(children, child{"until_fail", d.UntilFail})
	}
	if d.Until != nil {
		kinds = append(kinds, "until")
		if d.Until.Cond == "" {
			return fmt.Errorf("treefile: %s.until: cond is required", at)
		}
		if d.Until.Child == nil {
			return fmt.Errorf("treefile: %s.until: child is required", at)
		}
		children = append(children, child{"until", d.Until.Child})
	}
	if d.WaitFor != nil {
		kinds = append(kinds, "wait_for")
		if d.WaitFor.Event == "" {
			return fmt.Errorf("treefile: %s.wait_for: event is required", at)
		}
		if d.WaitFor.Child == nil {
			return fmt.Errorf("treefile: %s.wait_for: child is required", at)
		}
		children = append(children, child{"wait_for", d.WaitFor.Child})
	}
	if d.Cond != "" {
		kinds = append(kinds, "cond")
	}
	if d.Action != nil {
		kinds = append(kinds, "action")
		if d.Action.Expr == "" {
			return fmt.Errorf("treefile: %s.action: expr is required", at)
		}
	}

	switch len(kinds) {
	case 0:
		return fmt.Errorf("treefile: %s: empty node — exactly one kind is required", at)
	case 1:
	default:
		return fmt.Errorf("treefile: %s: ambiguous node — got %v, exactly one kind is required", at, kinds)
	}

	for _, c := range children {
		if c.def == nil {
			return fmt.Errorf("treefile: %s.%s: null child", at, c.name)
		}
		if err := validateDef(c.def, at+"."+c.name); err != nil {
			return err
		}
	}
	return nil
}

// Seed returns a fresh blackboard populated from the tree's vars section.
func (t *Tree) Seed() Blackboard {
	bb := Blackboard{}
	for k, v := range t.Vars {
		bb[k] = v
	}
	return bb
}
