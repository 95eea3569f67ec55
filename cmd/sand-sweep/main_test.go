package main

import (
	"slices"
	"testing"
)

func TestParseInts(t *testing.T) {
	got, err := parseInts(" 100, 400,,1600 ")
	if err != nil {
		t.Fatalf("parseInts: %v", err)
	}
	if !slices.Equal(got, []int{100, 400, 1600}) {
		t.Fatalf("got %v", got)
	}
	if _, err := parseInts("10,x"); err == nil {
		t.Fatal("expected error for non-numeric entry")
	}
}

func TestRunScenarioConservesPour(t *testing.T) {
	res := runScenario(scenario{speed: 300, seed: 3}, 20, 12, 30, 2000, 10)
	if res.poured == 0 {
		t.Fatal("nothing was poured")
	}
	if !res.conserved {
		t.Fatalf("poured %d but final counts %+v", res.poured, res.final)
	}
	if res.final.Metal != 12 {
		t.Fatalf("metal floor has %d cells, want 12", res.final.Metal)
	}
}

func TestSweepCollectsEveryScenario(t *testing.T) {
	jobs := []scenario{{speed: 1, seed: 1}, {speed: 2, seed: 1}, {speed: 3, seed: 2}}
	results := sweep(jobs, 2, func(sc scenario) scenarioResult {
		return scenarioResult{scenario: sc}
	})
	if len(results) != len(jobs) {
		t.Fatalf("got %d results, want %d", len(results), len(jobs))
	}
	seen := map[scenario]bool{}
	for _, r := range results {
		seen[r.scenario] = true
	}
	for _, sc := range jobs {
		if !seen[sc] {
			t.Fatalf("missing result for %+v", sc)
		}
	}
}
