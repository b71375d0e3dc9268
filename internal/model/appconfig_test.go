package model

import (
	"testing"
)

func TestDefaultAppConfig(t *testing.T) {
	cfg := DefaultAppConfig()
	defaults := DefaultSettings()

	if cfg.DefaultContainerWidth != defaults.ContainerWidth {
		t.Errorf("expected default width %v, got %v", defaults.ContainerWidth, cfg.DefaultContainerWidth)
	}
	if cfg.DefaultMaxWeight != defaults.MaxWeight {
		t.Errorf("expected default max weight %v, got %v", defaults.MaxWeight, cfg.DefaultMaxWeight)
	}
	if cfg.DefaultMaxContainers != defaults.MaxContainers {
		t.Errorf("expected default max containers %d, got %d", defaults.MaxContainers, cfg.DefaultMaxContainers)
	}
	if cfg.DefaultPreset != "20ft Standard" {
		t.Errorf("expected default preset 20ft Standard, got %s", cfg.DefaultPreset)
	}
	if cfg.Units != "cm" {
		t.Errorf("expected default units cm, got %s", cfg.Units)
	}
	if len(cfg.RecentPlans) != 0 {
		t.Errorf("expected empty recent plans, got %v", cfg.RecentPlans)
	}
}

func TestAppConfigApplyToSettings(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultContainerWidth = 300
	cfg.DefaultContainerDepth = 400
	cfg.DefaultContainerHeight = 250
	cfg.DefaultMaxWeight = 18000
	cfg.DefaultMaxContainers = 5

	var s PackSettings
	cfg.ApplyToSettings(&s)

	if s.ContainerWidth != 300 || s.ContainerDepth != 400 || s.ContainerHeight != 250 {
		t.Errorf("dimensions not applied: %+v", s)
	}
	if s.MaxWeight != 18000 {
		t.Errorf("expected max weight 18000, got %v", s.MaxWeight)
	}
	if s.MaxContainers != 5 {
		t.Errorf("expected max containers 5, got %d", s.MaxContainers)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("applied settings should validate, got %v", err)
	}
}

func TestAddRecentPlanPrepends(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.AddRecentPlan("/plans/a.json")
	cfg.AddRecentPlan("/plans/b.json")

	if len(cfg.RecentPlans) != 2 {
		t.Fatalf("expected 2 recent plans, got %d", len(cfg.RecentPlans))
	}
	if cfg.RecentPlans[0] != "/plans/b.json" {
		t.Errorf("expected newest plan first, got %s", cfg.RecentPlans[0])
	}
}

func TestAddRecentPlanDeduplicates(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.AddRecentPlan("/plans/a.json")
	cfg.AddRecentPlan("/plans/b.json")
	cfg.AddRecentPlan("/plans/a.json")

	if len(cfg.RecentPlans) != 2 {
		t.Fatalf("expected 2 recent plans after re-add, got %d", len(cfg.RecentPlans))
	}
	if cfg.RecentPlans[0] != "/plans/a.json" {
		t.Errorf("re-added plan should move to front, got %s", cfg.RecentPlans[0])
	}
}

func TestAddRecentPlanCapsList(t *testing.T) {
	cfg := DefaultAppConfig()
	for i := 0; i < 15; i++ {
		cfg.AddRecentPlan(string(rune('a'+i)) + ".json")
	}

	if len(cfg.RecentPlans) != maxRecentPlans {
		t.Errorf("expected list capped at %d, got %d", maxRecentPlans, len(cfg.RecentPlans))
	}
	if cfg.RecentPlans[0] != "o.json" {
		t.Errorf("expected newest entry first, got %s", cfg.RecentPlans[0])
	}
}
