package photoshoot

import (
	"strings"
	"testing"

	"product-studio-server/modules/promptkit"
)

func TestIsWaterScenario(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"Poolside Splash", true},
		{"Golden Hour Beach", true},
		{"Rainy Window Mood", true},
		{"Marble Podium Hero", false},
		{"Neon Alley Night", false},
		{"Desert Dunes Heat", false},
		{"Lakeside Picnic", true},
	}

	for _, tt := range tests {
		if got := isWaterScenario(tt.title); got != tt.want {
			t.Errorf("isWaterScenario(%q) = %v, want %v", tt.title, got, tt.want)
		}
	}
}

func TestCatalogTitlesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, spec := range DefaultCatalog {
		if spec.Title == "" {
			t.Fatal("catalog shot with empty title")
		}
		if seen[spec.Title] {
			t.Errorf("duplicate catalog title: %q", spec.Title)
		}
		seen[spec.Title] = true

		if spec.Scene == "" {
			t.Errorf("catalog shot %q has no scene directive", spec.Title)
		}
	}
}

func TestSelectShots(t *testing.T) {
	all := SelectShots(nil)
	if len(all) != len(DefaultCatalog) {
		t.Fatalf("empty selection should return full catalog, got %d shots", len(all))
	}

	subset := SelectShots([]string{"Neon Alley Night", "Marble Podium Hero", "No Such Shot"})
	if len(subset) != 2 {
		t.Fatalf("expected 2 matched shots, got %d", len(subset))
	}
	if subset[0].Title != "Neon Alley Night" || subset[1].Title != "Marble Podium Hero" {
		t.Errorf("selection should preserve requested order, got %q, %q", subset[0].Title, subset[1].Title)
	}
}

func TestShotSpecApply(t *testing.T) {
	base := &promptkit.Config{
		ShotType:      "hero",
		LightingStyle: "studio_softbox",
		SubjectPrompt: "A ceramic mug.",
	}

	spec := ShotSpec{
		Title:         "Urban Rooftop Dusk",
		Scene:         "SCENE: rooftop at dusk.",
		TimeOfDay:     "force_blue_hour",
		LightingStyle: "dramatic_rim",
	}

	cfg := spec.Apply(base)

	if cfg.TimeOfDay != "force_blue_hour" {
		t.Errorf("override not applied: TimeOfDay = %q", cfg.TimeOfDay)
	}
	if cfg.LightingStyle != "dramatic_rim" {
		t.Errorf("override not applied: LightingStyle = %q", cfg.LightingStyle)
	}
	if cfg.ShotType != "hero" {
		t.Errorf("unset override should keep base value, got ShotType = %q", cfg.ShotType)
	}
	if !strings.Contains(cfg.SubjectPrompt, "A ceramic mug.") || !strings.Contains(cfg.SubjectPrompt, "SCENE: rooftop at dusk.") {
		t.Errorf("scene directive should append to subject, got %q", cfg.SubjectPrompt)
	}

	// base 스냅샷은 변경되지 않아야 한다
	if base.TimeOfDay != "" || base.LightingStyle != "studio_softbox" {
		t.Error("Apply mutated the base config")
	}
}
