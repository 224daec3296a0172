package main

import (
	"bytes"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) string {
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf
	if err := app.Run(append([]string{"avlsplit"}, args...)); err != nil {
		t.Fatalf("avlsplit %v: %v", args, err)
	}
	return buf.String()
}

func TestBench(t *testing.T) {
	out := run(t, "bench", "--iterations", "3", "--step", "200", "--seed", "3232")
	if !strings.HasPrefix(out, "seed: 3232\n") {
		t.Errorf("expected seed to be reported, have\n%s", out)
	}
	for _, it := range []string{"iteration 1:", "iteration 2:", "iteration 3:"} {
		if !strings.Contains(out, it) {
			t.Errorf("missing %q in output", it)
		}
	}
	if n := strings.Count(out, "split at"); n != 6 {
		t.Errorf("expected two splits per iteration, have %d", n)
	}
}

func TestPrintDot(t *testing.T) {
	out := run(t, "print", "--dot", "2", "1", "3")
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Errorf("expected DOT output, have\n%s", out)
	}
	if n := strings.Count(out, "->"); n != 2 {
		t.Errorf("expected 2 edges, have %d", n)
	}
}

func TestPrintRejectsGarbage(t *testing.T) {
	app := newApp()
	app.Writer = &bytes.Buffer{}
	if err := app.Run([]string{"avlsplit", "print", "1", "x"}); err == nil {
		t.Errorf("expected error for non-numeric key")
	}
	if err := app.Run([]string{"avlsplit", "print", "1", "1"}); err == nil {
		t.Errorf("expected error for duplicate key")
	}
}

func TestDemo(t *testing.T) {
	out := run(t, "demo")
	if !strings.Contains(out, "joined {14} at 15 with cost 3") {
		t.Errorf("unexpected demo output\n%s", out)
	}
}
