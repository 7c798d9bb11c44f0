package turntable

import (
	"strings"
	"testing"

	"product-studio-server/modules/promptkit"
)

func TestAngleLabel(t *testing.T) {
	tests := []struct {
		angle int
		want  string
	}{
		{0, "Front"},
		{45, "Front-Right"},
		{90, "Right"},
		{135, "Back-Right"},
		{180, "Back"},
		{225, "Back-Left"},
		{270, "Left"},
		{315, "Front-Left"},
		{60, "60 degrees"},
	}

	for _, tt := range tests {
		if got := AngleLabel(tt.angle); got != tt.want {
			t.Errorf("AngleLabel(%d) = %q, want %q", tt.angle, got, tt.want)
		}
	}
}

func TestNormalizeAngles(t *testing.T) {
	defaults := normalizeAngles(nil)
	if len(defaults) != len(DefaultAngles) {
		t.Fatalf("empty request should yield default angles, got %v", defaults)
	}

	folded := normalizeAngles([]int{-45, 360, 405})
	want := []int{315, 0, 45}
	for i, angle := range folded {
		if angle != want[i] {
			t.Errorf("normalizeAngles fold %d = %d, want %d", i, angle, want[i])
		}
	}
}

func TestBuildAnglePromptContainsRotation(t *testing.T) {
	cfg := &promptkit.Config{StyleTransform: "clay_render"}

	for _, angle := range DefaultAngles {
		prompt := BuildAnglePrompt(cfg, angle)

		if !strings.Contains(prompt, "[TURNTABLE ROTATION DIRECTIVE]") {
			t.Fatalf("angle %d prompt missing rotation directive", angle)
		}
		if !strings.Contains(prompt, AngleLabel(angle)) {
			t.Errorf("angle %d prompt missing angle label %q", angle, AngleLabel(angle))
		}
		if !strings.Contains(prompt, "[STYLIZED 3D RENDERING ENGINE DIRECTIVE]") {
			t.Errorf("angle %d prompt should use the stylized 3D preamble", angle)
		}
		if strings.Contains(prompt, "[PHOTOREAL RENDERING ENGINE DIRECTIVE]") {
			t.Errorf("angle %d prompt should not carry the photoreal preamble", angle)
		}
	}
}

// 회전 지시문을 제외한 스타일 블록은 모든 각도에서 동일해야 한다
func TestBuildAnglePromptSharesStyleBlock(t *testing.T) {
	cfg := &promptkit.Config{
		StyleTransform:  "vinyl_toy",
		StyleLighting:   "soft_toy_studio",
		StyleColorGrade: "pastel_pop",
	}

	extractBase := func(prompt string) string {
		idx := strings.Index(prompt, "[TURNTABLE ROTATION DIRECTIVE]")
		if idx < 0 {
			t.Fatal("prompt missing rotation directive")
		}
		return prompt[:idx]
	}

	base := extractBase(BuildAnglePrompt(cfg, 0))
	for _, angle := range DefaultAngles[1:] {
		if got := extractBase(BuildAnglePrompt(cfg, angle)); got != base {
			t.Errorf("angle %d style block differs from front view", angle)
		}
	}
}

// 네거티브 프롬프트가 있어도 AVOID 절이 프롬프트 맨 끝에 와야 한다
func TestBuildAnglePromptAvoidClauseStaysLast(t *testing.T) {
	cfg := &promptkit.Config{
		StyleTransform: "clay_render",
		NegativePrompt: "extra fingers",
	}

	prompt := BuildAnglePrompt(cfg, 90)

	if !strings.HasSuffix(prompt, "AVOID AT ALL COSTS: extra fingers") {
		t.Fatalf("prompt should end with the AVOID clause, got tail %q", prompt[len(prompt)-80:])
	}

	rotation := strings.Index(prompt, "[TURNTABLE ROTATION DIRECTIVE]")
	avoid := strings.Index(prompt, "AVOID AT ALL COSTS: ")
	if rotation < 0 || avoid < 0 {
		t.Fatalf("prompt missing rotation directive (%d) or AVOID clause (%d)", rotation, avoid)
	}
	if rotation > avoid {
		t.Errorf("rotation directive (%d) should come before the AVOID clause (%d)", rotation, avoid)
	}
}
