package suggest

import (
	"strings"

	"google.golang.org/genai"
)

// suggestedFields - 추천 대상 옵션 필드와 허용 값
// promptkit 룰 테이블의 키와 일치해야 한다 (테스트에서 교차 검증)
var suggestedFields = []struct {
	Name   string
	Values []string
}{
	{"shotType", []string{"hero", "straight_on", "low_angle_epic", "top_down_flatlay", "macro_detail", "lifestyle_in_context", "floating_levitation", "group_family"}},
	{"cameraPerspective", []string{"eye_level", "low_angle", "high_angle", "top_down", "dutch_tilt", "three_quarter", "worms_eye"}},
	{"lightingStyle", []string{"studio_softbox", "golden_hour", "hard_sun", "neon_glow", "window_light", "overcast_soft", "dramatic_rim", "candlelight"}},
	{"shadowStyle", []string{"soft_diffused", "hard_defined", "long_dramatic", "floating_drop", "mirror_reflection"}},
	{"timeOfDay", []string{"keep_original", "force_day", "force_night", "force_blue_hour", "force_golden_hour", "force_dawn"}},
	{"weatherAtmosphere", []string{"none", "clear_sky", "light_rain", "heavy_rain", "snowfall", "fog_mist", "storm_clouds", "heat_haze"}},
	{"depthOfField", []string{"none", "shallow_f14", "deep_focus", "miniature_tilt_shift"}},
	{"cameraKit", []string{"none", "medium_format_100mp", "dslr_85mm_f14", "wide_24mm", "tilt_shift", "macro_100mm", "anamorphic"}},
}

// OptionsSchema - 장면 옵션 추천 응답이 따라야 하는 JSON 스키마
func OptionsSchema() *genai.Schema {
	properties := make(map[string]*genai.Schema, len(suggestedFields)+1)
	required := make([]string, 0, len(suggestedFields)+1)

	for _, field := range suggestedFields {
		properties[field.Name] = &genai.Schema{
			Type: genai.TypeString,
			Enum: field.Values,
		}
		required = append(required, field.Name)
	}

	properties["subjectPrompt"] = &genai.Schema{
		Type:        genai.TypeString,
		Description: "One-sentence description of the product and the suggested scene around it",
	}
	required = append(required, "subjectPrompt")

	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: properties,
		Required:   required,
	}
}

// BuildOptionsPrompt - 옵션 추천 프롬프트
func BuildOptionsPrompt() string {
	var sb strings.Builder
	sb.WriteString(`You are a commercial product photography art director.
Look at the attached product image and suggest ONE cohesive scene configuration that would flatter this specific product in an advertisement.

Pick exactly one value for each field. Allowed values:
`)
	for _, field := range suggestedFields {
		sb.WriteString("- ")
		sb.WriteString(field.Name)
		sb.WriteString(": ")
		sb.WriteString(strings.Join(field.Values, ", "))
		sb.WriteString("\n")
	}
	sb.WriteString(`
Choices must work together as one scene: do not combine contradictory lighting and time of day.
Also write subjectPrompt: one sentence describing the product and the suggested scene around it.
Return JSON only.`)
	return sb.String()
}

// BuildSubjectPrompt - 피사체 설명 추천 프롬프트
func BuildSubjectPrompt() string {
	return `Look at the attached product image and describe the product in one or two sentences for use inside an image generation prompt.
Name the product type, its materials, colors, and any distinctive details that must stay recognizable.
Do not describe the background or lighting. Do not address the reader. Output the description only.`
}
