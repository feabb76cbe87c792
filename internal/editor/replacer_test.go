package editor

import "testing"

func collect(seq func(func(string) bool)) []string {
	var out []string
	seq(func(s string) bool {
		out = append(out, s)
		return true
	})
	return out
}

func TestExactCandidatesYieldsFragmentVerbatim(t *testing.T) {
	got := collect(exactCandidates("anything", "b=2"))
	if len(got) != 1 || got[0] != "b=2" {
		t.Fatalf("exactCandidates = %v", got)
	}
}

func TestLineTrimmedCandidatesFindsReindentedBlock(t *testing.T) {
	content := "def f():\n    return 1\n"
	old := "def f():\nreturn 1"
	got := collect(lineTrimmedCandidates(content, old))
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1: %v", len(got), got)
	}
	if got[0] != "def f():\n    return 1" {
		t.Fatalf("candidate = %q", got[0])
	}
}

func TestLineTrimmedCandidatesDropsTrailingEmptyLine(t *testing.T) {
	content := "a\nb\nc\n"
	old := "b\n" // trailing LF artifact must not require a phantom blank line
	got := collect(lineTrimmedCandidates(content, old))
	if len(got) != 1 || got[0] != "b" {
		t.Fatalf("got %v, want [\"b\"]", got)
	}
}

func TestLineTrimmedCandidatesMultipleMatches(t *testing.T) {
	content := "x\nx\n"
	got := collect(lineTrimmedCandidates(content, "x"))
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2: %v", len(got), got)
	}
}

func TestBlockAnchorRequiresAtLeastThreeLines(t *testing.T) {
	content := "a\nb\nc\n"
	got := collect(blockAnchorCandidates(content, "a\nb"))
	if len(got) != 0 {
		t.Fatalf("expected no candidates for a 2-line fragment, got %v", got)
	}
}

func TestBlockAnchorSingleCandidateLowSimilarityRejected(t *testing.T) {
	content := "class A:\n    def m(self):\n        x = 1\n        y = 2\n        return x + y\n"
	old := "class A:\n    ...\n    return x + y"
	got := collect(blockAnchorCandidates(content, old))
	if len(got) != 0 {
		t.Fatalf("expected rejection (similarity < 0.3), got %v", got)
	}
}

func TestBlockAnchorSingleCandidateExactInteriorAccepted(t *testing.T) {
	content := "class A:\n    def m(self):\n        x = 1\n        y = 2\n        return x + y\n"
	old := "class A:\n    def m(self):\n    return x + y"
	got := collect(blockAnchorCandidates(content, old))
	if len(got) != 1 {
		t.Fatalf("expected one accepted candidate, got %v", got)
	}
	want := "class A:\n    def m(self):\n        x = 1\n        y = 2\n        return x + y"
	if got[0] != want {
		t.Fatalf("candidate = %q, want %q", got[0], want)
	}
}

func TestBlockAnchorNearestClosingAnchorWins(t *testing.T) {
	// "END" appears twice; the anchor scan must pick the nearer one as the
	// candidate's closing line, not the farther repeat.
	content := "START\nmid1\nEND\nfiller\nEND\n"
	old := "START\nmid1\nEND"
	got := collect(blockAnchorCandidates(content, old))
	if len(got) != 1 {
		t.Fatalf("expected exactly one candidate, got %v", got)
	}
	want := "START\nmid1\nEND"
	if got[0] != want {
		t.Fatalf("candidate = %q, want %q", got[0], want)
	}
}

func TestBlockAnchorThreeLineInteriorCountOne(t *testing.T) {
	content := "begin\nmatching line\nend\n"
	old := "begin\nmatching line\nend"
	got := collect(blockAnchorCandidates(content, old))
	if len(got) != 1 {
		t.Fatalf("expected acceptance with interiorCount=1 exact match, got %v", got)
	}
}

func TestBlockAnchorMultipleCandidatesPicksHighestScoring(t *testing.T) {
	content := "" +
		"func foo() {\n" +
		"    doSomethingElse()\n" +
		"}\n" +
		"func foo() {\n" +
		"    doTheThing()\n" +
		"}\n"
	old := "func foo() {\n    doTheThing()\n}"
	got := collect(blockAnchorCandidates(content, old))
	if len(got) != 1 {
		t.Fatalf("expected one winning candidate, got %v", got)
	}
	want := "func foo() {\n    doTheThing()\n}"
	if got[0] != want {
		t.Fatalf("candidate = %q, want %q", got[0], want)
	}
}

func TestBlockAnchorMultipleCandidatesBelowThresholdRejected(t *testing.T) {
	content := "" +
		"func foo() {\n" +
		"    aaaaaaaaaa()\n" +
		"}\n" +
		"func foo() {\n" +
		"    bbbbbbbbbb()\n" +
		"}\n"
	old := "func foo() {\n    cccccccccc()\n}"
	got := collect(blockAnchorCandidates(content, old))
	if len(got) != 0 {
		t.Fatalf("expected rejection, both candidates score low, got %v", got)
	}
}
