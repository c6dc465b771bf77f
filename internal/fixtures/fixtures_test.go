package fixtures

import "testing"

func TestLoadScenarios(t *testing.T) {
	scenarios, err := Load("../../testdata/scenarios.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(scenarios) == 0 {
		t.Fatal("expected at least one scenario")
	}
	for _, sc := range scenarios {
		if sc.Name == "" {
			t.Error("scenario with empty name")
		}
		if sc.Input == "" {
			t.Errorf("scenario %q has empty input", sc.Name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("../../testdata/does-not-exist.yaml"); err == nil {
		t.Fatal("expected error for missing fixtures file")
	}
}
