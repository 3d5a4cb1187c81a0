package bigo

import "testing"

func TestClassLabels(t *testing.T) {
	want := []string{"O(1)", "O(log(n))", "O(sqrt(n))", "O(n)", "O(n log(n))", "O(n^2)", "O(2^n)", "O(n!)", "O(n^n)"}

	classes := Classes()
	if len(classes) != len(want) {
		t.Fatalf("Expected %d classes, got %d", len(want), len(classes))
	}

	for i, c := range classes {
		if c.String() != want[i] {
			t.Errorf("Class %d: expected %s, got %s", i, want[i], c)
		}
	}

	if Class(-1).String() != "ERROR!" || Class(99).String() != "ERROR!" {
		t.Errorf("Unknown classes should render as ERROR!")
	}
}
