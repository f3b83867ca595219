// Package treefile loads declarative behavior-tree definitions from YAML
// and compiles them into engine nodes. Condition and action leaves are
// expr programs evaluated against a Blackboard context, so a tree file is
// runnable without any Go leaf code.
package treefile

// Blackboard is the shared context type of compiled trees: a flat bag of
// named values visible to every expr leaf.
type Blackboard map[string]any

// Tree is the top-level document of a tree file.
type Tree struct {
	// Name identifies the tree in logs and traces.
	Name string `yaml:"name"`
	// Vars seeds the blackboard before the first tick.
	Vars map[string]any `yaml:"vars,omitempty"`
	// Root is the root node definition.
	Root *Def `yaml:"root"`
}

// Def describes one node. Exactly one field may be set; which one
// determines the node kind.
type Def struct {
	Sequence  []*Def     `yaml:"sequence,omitempty"`
	Selector  []*Def     `yaml:"selector,omitempty"`
	Invert    *Def       `yaml:"invert,omitempty"`
	Pass      *Def       `yaml:"pass,omitempty"`
	Fail      *Def       `yaml:"fail,omitempty"`
	Repeat    *RepeatDef `yaml:"repeat,omitempty"`
	UntilPass *Def       `yaml:"until_pass,omitempty"`
	UntilFail *Def       `yaml:"until_fail,omitempty"`
	Until     *UntilDef  `yaml:"until,omitempty"`
	WaitFor   *WaitDef   `yaml:"wait_for,omitempty"`
	Cond      string     `yaml:"cond,omitempty"`
	Action    *ActionDef `yaml:"action,omitempty"`
}

// RepeatDef configures a bounded-repetition decorator.
type RepeatDef struct {
	Count int  `yaml:"count"`
	Child *Def `yaml:"child"`
}

// UntilDef configures a predicate-repetition decorator: the child is re-run
// until the expr condition holds.
type UntilDef struct {
	Cond  string `yaml:"cond"`
	Child *Def   `yaml:"child"`
}

// WaitDef configures an event-filtering decorator. Only valid when
// compiling for the event model.
type WaitDef struct {
	Event string `yaml:"event"`
	Child *Def   `yaml:"child"`
}

// ActionDef configures an action leaf: the expr program is evaluated and
// its result stored under Set. Set may be empty for pure side-of-evaluation
// actions (e.g. expr's built-in functions), in which case the result is
// discarded.
type ActionDef struct {
	Set  string `yaml:"set,omitempty"`
	Expr string `yaml:"expr"`
}
