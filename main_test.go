package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/seqsense/pcgol/mat"
)

func TestParseTuple(t *testing.T) {
	p, err := parseTuple("1,-2.5,0.25")
	if err != nil {
		t.Fatalf("parseTuple must succeed, got error: %v", err)
	}
	if !p.Equal(mat.NewVec3(1, -2.5, 0.25)) {
		t.Errorf("parsed position must be (1, -2.5, 0.25), got: %v", p)
	}

	if _, err := parseTuple("1, -2.5, 0.25"); err != nil {
		t.Errorf("spaces around components must be accepted, got error: %v", err)
	}

	for _, s := range []string{"1,2", "1,2,3,4", "1,nan,3", "1,inf,3", "a,b,c", ""} {
		if _, err := parseTuple(s); err == nil {
			t.Errorf("parseTuple must fail for %q", s)
		}
	}
}

func TestRunConsole(t *testing.T) {
	cmd := newCommandContext(nil, nil)
	in := strings.NewReader(`joint shoulder 0 0 0
joint elbow 0 1 0
joint wrist 2 0 0
levitate
select shoulder elbow wrist
pole
`)
	var out bytes.Buffer
	if err := runConsole(cmd, in, &out); err != nil {
		t.Fatalf("runConsole must succeed, got error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if n := len(lines); n != 5 {
		t.Fatalf("number of output lines must be 5, got: %d\n%s", n, out.String())
	}
	if lines[len(lines)-1] != "locator1 0.000 4.236 0.000" {
		t.Errorf("pole output must report the locator, got: %q", lines[len(lines)-1])
	}
	if n := len(cmd.Locators()); n != 1 {
		t.Errorf("number of locators must be 1, got: %d", n)
	}
}
