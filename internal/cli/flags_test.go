package cli

import "testing"

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	if flags.Source != "egy" {
		t.Errorf("Source = %q, want %q", flags.Source, "egy")
	}
	if flags.Target != "tnt" {
		t.Errorf("Target = %q, want %q", flags.Target, "tnt")
	}
	if flags.Provider != "openai" {
		t.Errorf("Provider = %q, want %q", flags.Provider, "openai")
	}
	if flags.PredictionsPath != "predictions.txt" {
		t.Errorf("PredictionsPath = %q, want %q", flags.PredictionsPath, "predictions.txt")
	}
	if flags.CfgFile != "" {
		t.Errorf("CfgFile = %q, want empty", flags.CfgFile)
	}
	if flags.NoCache {
		t.Error("NoCache should default to false")
	}
}
