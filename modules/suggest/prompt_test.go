package suggest

import (
	"strings"
	"testing"

	"product-studio-server/modules/promptkit"
)

// 추천 허용 값은 promptkit 룰 테이블의 멤버와 일치해야 한다
// "none"/"keep_original"은 프래그먼트 없이 통과하는 중립 값이므로 예외
func TestSuggestedFieldsMatchRuleTables(t *testing.T) {
	lookups := map[string]func(string) (string, bool){
		"shotType":          promptkit.ShotTypeFragment,
		"cameraPerspective": promptkit.CameraPerspectiveFragment,
		"lightingStyle":     promptkit.LightingStyleFragment,
		"shadowStyle":       promptkit.ShadowStyleFragment,
		"timeOfDay":         promptkit.TimeOfDayFragment,
		"weatherAtmosphere": promptkit.WeatherFragment,
		"depthOfField":      promptkit.DepthOfFieldFragment,
		"cameraKit":         promptkit.CameraKitFragment,
	}

	neutral := map[string]bool{"none": true, "keep_original": true}

	for _, field := range suggestedFields {
		lookup, ok := lookups[field.Name]
		if !ok {
			t.Fatalf("no rule table lookup registered for field %q", field.Name)
		}
		for _, value := range field.Values {
			if neutral[value] {
				if _, yields := lookup(value); yields {
					t.Errorf("%s=%q should be neutral but yields a fragment", field.Name, value)
				}
				continue
			}
			if _, yields := lookup(value); !yields {
				t.Errorf("%s=%q is offered for suggestion but has no rule table entry", field.Name, value)
			}
		}
	}
}

func TestOptionsSchemaCoversAllFields(t *testing.T) {
	schema := OptionsSchema()

	for _, field := range suggestedFields {
		prop, ok := schema.Properties[field.Name]
		if !ok {
			t.Errorf("schema missing property %q", field.Name)
			continue
		}
		if len(prop.Enum) != len(field.Values) {
			t.Errorf("schema enum for %q has %d values, want %d", field.Name, len(prop.Enum), len(field.Values))
		}
	}

	if _, ok := schema.Properties["subjectPrompt"]; !ok {
		t.Error("schema missing subjectPrompt property")
	}
}

func TestBuildOptionsPromptListsAllValues(t *testing.T) {
	prompt := BuildOptionsPrompt()
	for _, field := range suggestedFields {
		if !strings.Contains(prompt, field.Name) {
			t.Errorf("prompt missing field name %q", field.Name)
		}
		for _, value := range field.Values {
			if !strings.Contains(prompt, value) {
				t.Errorf("prompt missing allowed value %q for %q", value, field.Name)
			}
		}
	}
}
