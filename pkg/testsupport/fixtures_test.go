package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestLoadFixture(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	testContent := []byte("test fixture content")

	if err := os.WriteFile(testFile, testContent, 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	result := LoadFixture(t, testFile)
	if string(result) != string(testContent) {
		t.Errorf("expected %q, got %q", testContent, result)
	}
}

func TestLoadFixtureJSON(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.json")
	testData := map[string]any{
		"name":  "scenario",
		"input": []int{3, 1, 2},
	}

	jsonData, err := json.Marshal(testData)
	if err != nil {
		t.Fatalf("failed to marshal test data: %v", err)
	}

	if err := os.WriteFile(testFile, jsonData, 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	var result struct {
		Name  string `json:"name"`
		Input []int  `json:"input"`
	}
	LoadFixtureJSON(t, testFile, &result)

	if result.Name != "scenario" {
		t.Errorf("expected name=scenario, got %v", result.Name)
	}
	if !slices.Equal(result.Input, []int{3, 1, 2}) {
		t.Errorf("expected input=[3 1 2], got %v", result.Input)
	}
}

func TestCompareWithGolden(t *testing.T) {
	tmpDir := t.TempDir()
	goldenFile := filepath.Join(tmpDir, "out.golden")

	if err := os.WriteFile(goldenFile, []byte("expected\n"), 0644); err != nil {
		t.Fatalf("failed to create golden file: %v", err)
	}

	CompareWithGolden(t, goldenFile, []byte("expected\n"))
}

func TestCompareWithGolden_Update(t *testing.T) {
	t.Setenv("UPDATE_GOLDEN", "1")

	goldenFile := filepath.Join(t.TempDir(), "nested", "out.golden")
	CompareWithGolden(t, goldenFile, []byte("fresh"))

	got, err := os.ReadFile(goldenFile)
	if err != nil {
		t.Fatalf("golden file was not written: %v", err)
	}
	if string(got) != "fresh" {
		t.Errorf("expected %q, got %q", "fresh", got)
	}
}

func TestPaths(t *testing.T) {
	if got := FixturePath("a.json"); got != filepath.Join("testdata", "a.json") {
		t.Errorf("FixturePath() = %s", got)
	}
	if got := GoldenPath("a.golden"); got != filepath.Join("testdata", "golden", "a.golden") {
		t.Errorf("GoldenPath() = %s", got)
	}
}

func TestSequence(t *testing.T) {
	if got := Sequence(1, 5); !slices.Equal(got, []int{1, 2, 3, 4, 5}) {
		t.Errorf("Sequence(1, 5) = %v", got)
	}
	if got := Sequence(3, 1); len(got) != 0 {
		t.Errorf("Sequence(3, 1) = %v, want empty", got)
	}
}

func TestShuffled(t *testing.T) {
	in := Sequence(1, 50)

	a := Shuffled(in, 7)
	b := Shuffled(in, 7)

	if !slices.Equal(a, b) {
		t.Error("Shuffled should be deterministic for a seed")
	}
	if !SameElements(a, in) {
		t.Error("Shuffled must be a permutation of its input")
	}
	if !slices.Equal(in, Sequence(1, 50)) {
		t.Error("Shuffled must not modify its input")
	}
}

func TestRandomInts(t *testing.T) {
	got := RandomInts(100, 5, 1)
	if len(got) != 100 {
		t.Fatalf("len = %d, want 100", len(got))
	}
	for _, v := range got {
		if v < 0 || v >= 5 {
			t.Fatalf("value %d out of range", v)
		}
	}
}

func TestSameElements(t *testing.T) {
	tests := []struct {
		a, b []int
		want bool
	}{
		{[]int{1, 2, 2}, []int{2, 1, 2}, true},
		{[]int{1, 2, 2}, []int{1, 1, 2}, false},
		{[]int{1}, []int{1, 1}, false},
		{nil, []int{}, true},
	}

	for _, tt := range tests {
		if got := SameElements(tt.a, tt.b); got != tt.want {
			t.Errorf("SameElements(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestReversed(t *testing.T) {
	if got := Reversed([]int{1, 2, 3}); !slices.Equal(got, []int{3, 2, 1}) {
		t.Errorf("Reversed() = %v", got)
	}
}
