package config

import "testing"

func TestValidateRejectsOutOfRangeProbability(t *testing.T) {
	cfg := &GAConfig{
		PopSize: 10, Generations: 10,
		CxProb: 1.5, MutIndiv: 0.1, MutGene: 0.1,
		ClusteringBlockMin: 2, ClusteringBlockMax: 3,
	}
	if err := cfg.validate(); err == nil {
		t.Fatal("expected validation error for CxProb outside [0,1]")
	}
}

func TestValidateRejectsNonPositivePopSize(t *testing.T) {
	cfg := &GAConfig{
		PopSize: 0, Generations: 10,
		CxProb: 0.5, MutIndiv: 0.1, MutGene: 0.1,
		ClusteringBlockMin: 2, ClusteringBlockMax: 3,
	}
	if err := cfg.validate(); err == nil {
		t.Fatal("expected validation error for non-positive PopSize")
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	cfg := &GAConfig{
		PopSize: 80, Generations: 200,
		CxProb: 0.8, MutIndiv: 0.3, MutGene: 0.15,
		ClusteringBlockMin: 2, ClusteringBlockMax: 3,
	}
	if err := cfg.validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestParseToggleMap(t *testing.T) {
	m := parseToggleMap("room_type_mismatch=false, no_group_overlap=true")
	if m["room_type_mismatch"] != false || m["no_group_overlap"] != true {
		t.Fatalf("unexpected toggle map: %v", m)
	}
}
