package promptkit

import "testing"

func TestResolveMode(t *testing.T) {
	cases := []struct {
		name           string
		hasReference   bool
		referenceUsage string
		weather        bool
		season         bool
		want           Mode
	}{
		{"reference with object swap", true, "object_swap", false, false, ModeObjectSwap},
		{"reference with scene emulation", true, "full_scene_emulation", false, false, ModeFullSceneEmulation},
		{"reference with style transfer", true, "artistic_style_transfer", false, false, ModeArtisticStyleTransfer},
		{"reference with lighting theft", true, "lighting_theft", false, false, ModeLightingTheft},
		{"reference with inpainting edit", true, "inpainting_edit", false, false, ModeInpaintingEdit},
		{"reference with model preserve", true, "keep_model_replace_object", false, false, ModeKeepModelReplaceObject},
		{"no reference with weather override", false, "object_swap", true, false, ModePlainInpainting},
		{"no reference with season override", false, "", false, true, ModePlainInpainting},
		{"all defaults", false, "", false, false, ModeStandard},
		{"no reference usage ignored", false, "lighting_theft", false, false, ModeStandard},
		{"reference but usage none", true, "none", false, false, ModeStandard},
		{"reference beats atmosphere override", true, "object_swap", true, true, ModeObjectSwap},
		{"reference usage none with weather stays standard", true, "none", true, false, ModeStandard},
		{"unknown usage fails closed", true, "teleport_product", false, false, ModeStandard},
	}

	for _, tc := range cases {
		got := ResolveMode(tc.hasReference, tc.referenceUsage, tc.weather, tc.season)
		if got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestResolveModeFromConfig(t *testing.T) {
	cfg := &Config{
		ReferenceImage: &AttachedImage{Data: []byte{0x89}, MimeType: "image/png"},
		ReferenceUsage: "lighting_theft",
	}
	if got := ResolveModeFromConfig(cfg); got != ModeLightingTheft {
		t.Fatalf("got %s, want %s", got, ModeLightingTheft)
	}

	cfg = &Config{WeatherAtmosphere: "heavy_rain"}
	if got := ResolveModeFromConfig(cfg); got != ModePlainInpainting {
		t.Fatalf("got %s, want %s", got, ModePlainInpainting)
	}

	cfg = &Config{}
	if got := ResolveModeFromConfig(cfg); got != ModeStandard {
		t.Fatalf("got %s, want %s", got, ModeStandard)
	}
}
