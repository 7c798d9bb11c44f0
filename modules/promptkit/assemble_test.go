package promptkit

import (
	"strings"
	"testing"
)

func TestAssembleDeterministic(t *testing.T) {
	cfg := &Config{
		ShotType:          "hero",
		LightingStyle:     "golden_hour",
		WeatherAtmosphere: "light_rain",
		SubjectPrompt:     "a matte black thermos bottle",
		NegativePrompt:    "plastic look",
	}
	first := Assemble(cfg, ModeStandard, WorkflowProduct)
	second := Assemble(cfg, ModeStandard, WorkflowProduct)
	if first != second {
		t.Fatal("identical inputs must yield byte-identical output")
	}
}

func TestAssembleDefaultConfigIsComplete(t *testing.T) {
	got := Assemble(&Config{}, ModeStandard, WorkflowProduct)
	if got == "" {
		t.Fatal("all-default config must still produce a non-empty prompt")
	}

	checks := []string{
		"[PHOTOREAL RENDERING ENGINE DIRECTIVE]",
		"SUBJECT: The product shown in the attached product image",
		"CRITICAL PRODUCT LIGHTING",
		"ENVIRONMENTAL INTERACTION RULES:",
		"OUTPUT QUALITY",
	}
	for _, expect := range checks {
		if !strings.Contains(got, expect) {
			t.Errorf("default prompt missing %q", expect)
		}
	}
}

func TestAssembleFragmentOrder(t *testing.T) {
	cfg := &Config{
		ShotType:       "hero",
		LightingStyle:  "studio_softbox",
		NegativePrompt: "watermarks",
	}
	frags := AssembleFragments(cfg, ModeStandard, WorkflowProduct)

	if frags[0].Source != "preamble" {
		t.Errorf("first fragment must be the preamble, got %s", frags[0].Source)
	}
	if last := frags[len(frags)-1]; last.Source != "negative" {
		t.Errorf("last fragment must be the negative clause, got %s", last.Source)
	}

	index := map[string]int{}
	for i, f := range frags {
		index[f.Source] = i
	}
	if index["shot_type"] > index["lighting_style"] {
		t.Error("shot_type must precede lighting_style")
	}
	if index["environment"] < index["critical_lighting"] {
		t.Error("environmental block must come after the product lighting block")
	}
	if index["output_quality"] < index["environment"] {
		t.Error("output quality must come after the environmental block")
	}
}

func TestAssembleNegativePromptRoundTrip(t *testing.T) {
	cfg := &Config{NegativePrompt: "cartoonish proportions, extra fingers"}
	got := Assemble(cfg, ModeStandard, WorkflowProduct)
	if !strings.HasSuffix(got, "AVOID AT ALL COSTS: cartoonish proportions, extra fingers") {
		t.Fatalf("prompt must end with the AVOID clause, got tail %q", got[len(got)-80:])
	}
}

func TestAssembleCriticalLightingBranches(t *testing.T) {
	// 강제 야간 → 인공광 문구, 주광 문구 없음
	night := Assemble(&Config{TimeOfDay: "force_night"}, ModeStandard, WorkflowProduct)
	if !strings.Contains(night, "artificial illumination") {
		t.Error("forced night must emit the artificial-light wording")
	}
	if strings.Contains(night, "share one light") {
		t.Error("forced night must not emit the daylight wording")
	}

	// 블루아워도 인공광 분기
	blue := Assemble(&Config{TimeOfDay: "force_blue_hour"}, ModeStandard, WorkflowProduct)
	if !strings.Contains(blue, "artificial illumination") {
		t.Error("forced blue hour must emit the artificial-light wording")
	}

	// 그 외는 주광 분기
	day := Assemble(&Config{TimeOfDay: "keep_original"}, ModeStandard, WorkflowProduct)
	if !strings.Contains(day, "share one light") {
		t.Error("default time of day must emit the daylight wording")
	}
	if strings.Contains(day, "artificial illumination") {
		t.Error("default time of day must not emit the artificial-light wording")
	}
}

func TestAssembleEndToEndHeroGoldenHour(t *testing.T) {
	cfg := &Config{
		ShotType:      "hero",
		LightingStyle: "golden_hour",
		TimeOfDay:     "keep_original",
	}
	got := Assemble(cfg, ResolveModeFromConfig(cfg), WorkflowProduct)

	heroText, _ := ShotTypeFragment("hero")
	goldenText, _ := LightingStyleFragment("golden_hour")

	if !strings.Contains(got, heroText) {
		t.Error("prompt missing the hero shot-type fragment")
	}
	if !strings.Contains(got, goldenText) {
		t.Error("prompt missing the golden-hour lighting fragment")
	}
	if !strings.Contains(got, "share one light") {
		t.Error("prompt missing the daylight product-lighting wording")
	}
	if strings.Contains(got, "artificial illumination") {
		t.Error("prompt must not contain the forced-night wording")
	}
}

func TestAssembleModeDirectives(t *testing.T) {
	ref := &AttachedImage{Data: []byte{1}, MimeType: "image/png"}

	for usage, wantHeader := range map[string]string{
		"full_scene_emulation":      "[REFERENCE SCENE EMULATION DIRECTIVE]",
		"artistic_style_transfer":   "[ARTISTIC STYLE TRANSFER DIRECTIVE]",
		"object_swap":               "[OBJECT SWAP DIRECTIVE]",
		"lighting_theft":            "[LIGHTING THEFT DIRECTIVE]",
		"inpainting_edit":           "[REFERENCE-GUIDED INPAINTING DIRECTIVE]",
		"keep_model_replace_object": "[KEEP MODEL, REPLACE OBJECT DIRECTIVE]",
	} {
		cfg := &Config{ReferenceImage: ref, ReferenceUsage: usage}
		got := Assemble(cfg, ResolveModeFromConfig(cfg), WorkflowProduct)
		if !strings.Contains(got, wantHeader) {
			t.Errorf("usage %s: prompt missing directive header %q", usage, wantHeader)
		}
	}
}

func TestAssembleModeDirectiveAtmosphereLabels(t *testing.T) {
	cfg := &Config{
		ReferenceImage:    &AttachedImage{Data: []byte{1}, MimeType: "image/png"},
		ReferenceUsage:    "object_swap",
		WeatherAtmosphere: "heavy_rain",
		SeasonOverride:    "winter",
	}
	got := Assemble(cfg, ResolveModeFromConfig(cfg), WorkflowProduct)
	if !strings.Contains(got, "weather changed to heavy rain") {
		t.Error("directive missing the human-readable weather label")
	}
	if !strings.Contains(got, "season changed to winter") {
		t.Error("directive missing the human-readable season label")
	}
	if !strings.Contains(got, "ATMOSPHERE OVERRIDE:") {
		t.Error("non-default atmosphere must emit the override block before the directive")
	}
}

func TestAssemblePlainInpainting(t *testing.T) {
	cfg := &Config{WeatherAtmosphere: "snowfall"}
	mode := ResolveModeFromConfig(cfg)
	if mode != ModePlainInpainting {
		t.Fatalf("expected plain_inpainting, got %s", mode)
	}
	got := Assemble(cfg, mode, WorkflowProduct)
	if !strings.Contains(got, "[TARGETED ATMOSPHERE EDIT]") {
		t.Error("plain inpainting must emit the fidelity-preservation directive")
	}
	if !strings.Contains(got, "weather changed to snowfall") {
		t.Error("directive must list only the requested atmosphere change")
	}
	// standard용 날씨 테이블 프래그먼트는 들어가지 않는다
	snowText, _ := WeatherFragment("snowfall")
	if strings.Contains(got, snowText) {
		t.Error("plain inpainting must not emit the standard weather fragment")
	}
}

func TestAssembleStandardEmitsAtmosphereFragments(t *testing.T) {
	// standard 모드에서 날씨가 non-default면 모드는 plain_inpainting이 되므로
	// standard + 날씨 조합은 레퍼런스 워크플로우 외부에서 직접 mode를 지정해 검증
	cfg := &Config{WeatherAtmosphere: "fog_mist", SeasonOverride: "autumn"}
	got := Assemble(cfg, ModeStandard, WorkflowProduct)

	fogText, _ := WeatherFragment("fog_mist")
	autumnText, _ := SeasonFragment("autumn")
	if !strings.Contains(got, fogText) {
		t.Error("standard mode must emit the weather fragment directly")
	}
	if !strings.Contains(got, autumnText) {
		t.Error("standard mode must emit the season fragment directly")
	}
}

func TestAssembleWaterClauseByWorkflow(t *testing.T) {
	withWater := Assemble(&Config{}, ModeStandard, WorkflowProduct)
	if !strings.Contains(withWater, "- WATER:") {
		t.Error("product workflow must include the water interaction clause")
	}

	noWater := Assemble(&Config{}, ModeStandard, WorkflowTurntable)
	if strings.Contains(noWater, "- WATER:") {
		t.Error("turntable workflow must exclude the water interaction clause")
	}
	if !strings.Contains(noWater, "ENVIRONMENTAL INTERACTION RULES:") {
		t.Error("turntable workflow still carries the environmental block")
	}
}

func TestAssembleStylized3DPreambleAndTables(t *testing.T) {
	cfg := &Config{
		StyleTransform:  "clay_render",
		StyleLighting:   "neon_cyber",
		StyleColorGrade: "pastel_dream",
	}
	got := Assemble(cfg, ModeStandard, WorkflowTurntable)
	if !strings.Contains(got, "[STYLIZED 3D RENDERING ENGINE DIRECTIVE]") {
		t.Error("turntable workflow must use the stylized-3D preamble")
	}
	clay, _ := StyleTransformFragment("clay_render")
	neon, _ := StyleLightingFragment("neon_cyber")
	pastel, _ := StyleColorGradeFragment("pastel_dream")
	for _, expect := range []string{clay, neon, pastel} {
		if !strings.Contains(got, expect) {
			t.Errorf("3D prompt missing fragment %q", expect[:40])
		}
	}

	// 실사 워크플로우는 3D 테이블을 조회하지 않는다
	photo := Assemble(cfg, ModeStandard, WorkflowProduct)
	if strings.Contains(photo, clay) {
		t.Error("product workflow must not emit 3D style fragments")
	}
}
