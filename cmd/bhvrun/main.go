// Command bhvrun runs a behavior tree from a YAML tree file, or a built-in
// demo tree when no file is given.
//
// Usage:
//
//	bhvrun -tree counter.yaml
//	bhvrun -tree reactive.yaml -events tick,tick,exit
//	bhvrun -tree counter.yaml -set i=10 -trace run.md
//
// Configuration may also come from the environment (.env supported):
// BHVRUN_MAX_TICKS caps the run length, BHVRUN_TRACE sets a trace file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gobhv/go-bhv/internal/trace"
	"github.com/gobhv/go-bhv/internal/treefile"
	"github.com/gobhv/go-bhv/pkg/bhv"
	"github.com/gobhv/go-bhv/pkg/bhv/event"
	"github.com/gobhv/go-bhv/pkg/config"
)

type setFlags []string

func (s *setFlags) String() string { return strings.Join(*s, ",") }

func (s *setFlags) Set(v string) error {
	if !strings.Contains(v, "=") {
		return fmt.Errorf("want key=value, got %q", v)
	}
	*s = append(*s, v)
	return nil
}

func main() {
	config.LoadEnv()

	var sets setFlags
	treePath := flag.String("tree", "", "path to a YAML tree file (empty: built-in demo)")
	events := flag.String("events", "", "comma-separated event kinds; non-empty selects the event model")
	maxTicks := flag.Int("max-ticks", config.Int("BHVRUN_MAX_TICKS", bhv.DefaultMaxTicks), "tick/event cap (<= 0: unlimited)")
	tracePath := flag.String("trace", config.String("BHVRUN_TRACE", ""), "write a markdown run trace to this file")
	flag.Var(&sets, "set", "seed a blackboard value, key=value (repeatable)")
	flag.Parse()

	if *treePath == "" {
		runDemo(*events != "")
		return
	}

	tree, err := treefile.Load(*treePath)
	if err != nil {
		log.Fatalf("[bhvrun] %v", err)
	}

	bb := tree.Seed()
	for _, kv := range sets {
		k, v, _ := strings.Cut(kv, "=")
		bb[k] = parseValue(v)
	}

	var tr *trace.Tracer
	if *tracePath != "" {
		tr, err = trace.New(*tracePath)
		if err != nil {
			log.Fatalf("[bhvrun] %v", err)
		}
		defer tr.Close()
		tr.StartRun(tree.Name)
	}

	var final bhv.Status
	if *events != "" {
		final, err = runEvents(tree, &bb, strings.Split(*events, ","), *maxTicks, tr)
	} else {
		final, err = runPoll(tree, &bb, *maxTicks, tr)
	}
	if tr != nil {
		tr.EndRun(final)
	}
	if err != nil {
		log.Fatalf("[bhvrun] run ended early: %v (last status: %s)", err, final)
	}

	fmt.Printf("%s: %s\n", tree.Name, final)
	for k, v := range bb {
		fmt.Printf("  %s = %v\n", k, v)
	}
}

func runPoll(tree *treefile.Tree, bb *treefile.Blackboard, maxTicks int, tr *trace.Tracer) (bhv.Status, error) {
	root, err := tree.Compile()
	if err != nil {
		log.Fatalf("[bhvrun] %v", err)
	}
	opts := []bhv.ExecOption{bhv.WithMaxTicks(maxTicks)}
	if tr != nil {
		opts = append(opts, bhv.WithTickHook(tr.Tick))
	}
	return bhv.Execute(context.Background(), root, bb, opts...)
}

func runEvents(tree *treefile.Tree, bb *treefile.Blackboard, kinds []string, maxEvents int, tr *trace.Tracer) (bhv.Status, error) {
	root, err := tree.CompileEvents()
	if err != nil {
		log.Fatalf("[bhvrun] %v", err)
	}
	evs := make([]event.Event, len(kinds))
	for i, k := range kinds {
		evs[i] = event.Signal(strings.TrimSpace(k))
	}
	opts := []event.ExecOption{event.WithMaxEvents(maxEvents)}
	if tr != nil {
		opts = append(opts, event.WithEventHook(tr.Event))
	}
	return event.Execute(context.Background(), root, bb, event.FromSlice(evs...), opts...)
}

// parseValue interprets a -set value as int, bool, or float before falling
// back to string, so expr comparisons work without casts in tree files.
func parseValue(v string) any {
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return v
}

// runDemo runs the built-in counter tree: print and increment a counter
// until it reaches five, in either execution model.
func runDemo(reactive bool) {
	count := 0

	if !reactive {
		root := bhv.NewSelector(
			bhv.Until(
				bhv.NewSequence(
					bhv.Action(func(i *int) { fmt.Printf("i: %d\n", *i) }),
					bhv.Action(func(i *int) { *i++ }),
				),
				func(i *int) bool { return *i == 5 },
			),
			bhv.Action(func(*int) { fmt.Println("fallback") }),
		)
		final, err := bhv.Execute(context.Background(), root, &count)
		if err != nil {
			log.Fatalf("[bhvrun] demo: %v", err)
		}
		fmt.Printf("demo: %s (count=%d)\n", final, count)
		return
	}

	root := event.NewSequence(
		event.Repeat(5, event.NewSequence(
			event.Action(func(i *int) { fmt.Printf("i: %d\n", *i) }),
			event.Action(func(i *int) { *i++ }),
		)),
		event.WaitFor("exit", event.Action(func(*int) { fmt.Println("exiting") })),
	)
	src := event.FromSlice(
		event.Unit, event.Unit, event.Unit, event.Unit, event.Unit,
		event.Signal("exit"),
	)
	final, err := event.Execute(context.Background(), root, &count, src)
	if err != nil {
		log.Fatalf("[bhvrun] demo: %v", err)
	}
	fmt.Printf("demo: %s (count=%d)\n", final, count)
}
