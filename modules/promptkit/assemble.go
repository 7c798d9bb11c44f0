package promptkit

import (
	"fmt"
	"strings"
)

// Fragment - 룰 테이블이 생성한 이름 붙은 지시문 조각
// 조립 순서는 고정되어 있고 의미가 있다: 리얼리즘 선언이 항상 처음,
// 모드 지시문과 환경 상호작용 블록은 끝 근처, AVOID 절은 항상 마지막
type Fragment struct {
	Source string
	Text   string
}

// realismPreamble - 실사 워크플로우 프리앰블 (항상 첫 번째 프래그먼트)
const realismPreamble = `[PHOTOREAL RENDERING ENGINE DIRECTIVE]
This image must be indistinguishable from a photograph taken by a world-class commercial product photographer on professional equipment. Real optics, real physics of light, real materials. No illustration, no CGI sheen, no AI-art gloss. If a detail would not survive a client's loupe inspection, fix it.`

// stylized3DPreamble - 3D 스타일 워크플로우 프리앰블
const stylized3DPreamble = `[STYLIZED 3D RENDERING ENGINE DIRECTIVE]
This image must read as a deliberate, art-directed 3D render - the kind a senior 3D artist would present in a portfolio. Clean topology implied by the surfaces, physically coherent materials within the chosen style, intentional lighting. Stylized is a choice, not an accident: no uncanny half-realism, no muddled mixed styles.`

// subjectFromProductImage - 명시적 subject 텍스트가 없을 때의 기본 주어 프래그먼트
const subjectFromProductImage = `SUBJECT: The product shown in the attached product image. Preserve its exact geometry, proportions, materials, colors and label artwork - this product is the client's asset and must not be redesigned, restyled or replaced.`

// criticalLightingNight - 강제 야간/블루아워 시의 제품 라이팅 블록
const criticalLightingNight = `CRITICAL PRODUCT LIGHTING: The scene is now lit by artificial light. The product itself must pick up believable artificial illumination - warm practical glow on its lit side, colored reflections from nearby light sources tracing its edges, and realistic specular hits from each visible lamp or sign. The product must NOT remain daylight-lit while the scene around it turns dark; its lighting and the scene's lighting must be one physical system.`

// criticalLightingDay - 그 외 모든 경우의 제품 라이팅 블록
const criticalLightingDay = `CRITICAL PRODUCT LIGHTING: The product must sit inside the scene's daylight as a physical object - sky and environment reflected accurately in its glossy surfaces, shadow side filled by bounced ambient light, color temperature of the light on the product matching the scene exactly. No pasted-on look: the product and its environment share one light.`

// environmentalWaterClause - 물 상호작용 절 (워크플로우가 제외할 수 있음)
const environmentalWaterClause = `- WATER: If water exists in the scene (pool, rain, sea, condensation), the product interacts with it physically - droplets bead and run on its surfaces according to material, partial submersion refracts correctly, wet surfaces darken and gain gloss.`

// environmentalInteractionBody - 항상 포함되는 환경 상호작용 규칙
const environmentalInteractionBody = `ENVIRONMENTAL INTERACTION RULES:
- SURFACE: The product makes honest contact with whatever it rests on - weight compresses fabric, grounds itself on stone, leaves no floating gap unless levitation was explicitly requested.
- WEATHERING: Outdoor scenes deposit their environment on the product believably - a dusting of sand, pollen, or snow where physics would put it, never obscuring the label.
- CONDENSATION: Cold products in warm air sweat - fine condensation droplets with larger runs, concentrated away from label areas.
- REFLECTION: Every reflective surface in the scene (glass, water, polished stone, chrome) carries a physically plausible reflection of the product.`

// avoidPrefix - 네거티브 프롬프트 접두사 (항상 마지막 블록)
const avoidPrefix = "AVOID AT ALL COSTS: "

// plainInpaintingDirective - 레퍼런스 없이 대기 오버라이드만 요청된 경우의 지시문
const plainInpaintingDirective = `[TARGETED ATMOSPHERE EDIT]
Treat the attached product image as the final photograph and change ONLY the following atmospheric conditions: %s.
Everything else is locked: the product, its position, the camera angle, the composition, all other scene elements and their details must remain pixel-faithful to the original. This is a surgical inpainting edit, not a re-shoot.`

// modeDirectives - 모드별 대형 고정 템플릿
// %s 파라미터: 사람이 읽을 수 있는 날씨/계절 변경 요약 (없으면 "unchanged")
var modeDirectives = map[Mode]string{
	ModeFullSceneEmulation: `[REFERENCE SCENE EMULATION DIRECTIVE]
The attached reference image defines the complete target scene. Recreate its environment, camera position, focal length, lighting setup, color palette and overall mood as faithfully as a location scout re-shooting the same spot - then place the product into that scene as its new hero subject. The product replaces whatever occupied the hero position in the reference. Atmosphere adjustments requested on top of the reference: %s. The product's own design is untouchable; the reference controls everything around it.`,

	ModeArtisticStyleTransfer: `[ARTISTIC STYLE TRANSFER DIRECTIVE]
The attached reference image defines an artistic style only - its medium, brushwork or rendering character, palette, contrast behavior and texture. Repaint the product scene entirely in that style, as if the reference's original artist had been commissioned to portray this product. Do NOT copy the reference's subject matter, objects or composition - only its visual language. Atmosphere adjustments to apply within the style: %s. The product must stay clearly recognizable, with label artwork legible inside the stylization.`,

	ModeObjectSwap: `[OBJECT SWAP DIRECTIVE]
The attached reference image is a finished photograph containing an object in a hero position. Remove that object and seat the product in its exact place - matching its scale relationship to the scene, its contact shadows, its perspective and the light falling on it. Every other pixel of the reference scene stays as it is. Atmosphere adjustments on top: %s. The swap must be invisible: a viewer should believe the product was photographed in that scene originally.`,

	ModeLightingTheft: `[LIGHTING THEFT DIRECTIVE]
Steal only the light from the attached reference image: the direction, quality (hard/soft), color temperature, contrast ratio and mood of its illumination. Apply that exact lighting scheme to the product in its own scene described by the options above. Do NOT copy the reference's environment, objects or composition - nothing but the light. Atmosphere adjustments: %s. The result should look like the product was lit by the same photographer, same rig, same hour as the reference.`,

	ModeInpaintingEdit: `[REFERENCE-GUIDED INPAINTING DIRECTIVE]
The attached product image is the base photograph. Using the attached reference image as visual guidance for what to change, perform a localized edit: introduce the referenced element or treatment into the base image where it naturally belongs. All untouched regions remain pixel-faithful to the base photograph. Atmosphere adjustments: %s. Blend edges seamlessly - lighting, grain and focus of the edited region must match the base image exactly.`,

	ModeKeepModelReplaceObject: `[KEEP MODEL, REPLACE OBJECT DIRECTIVE]
The attached reference image shows a person holding, wearing or using an object. Keep that person absolutely identical - face, pose, expression, hands, clothing, hair, and the entire scene around them - and replace ONLY the object they are interacting with by the product. The product must sit in their grip or on their body with correct scale, perspective, contact and shadow. Atmosphere adjustments: %s. The person is sacred; if a finger wraps the old object, it wraps the product identically.`,
}

// atmosphereSummary - 모드 템플릿에 들어갈 날씨/계절 변경 요약
func atmosphereSummary(cfg *Config) string {
	var parts []string
	if cfg.HasWeatherOverride() {
		if label := WeatherLabel(cfg.WeatherAtmosphere); label != "" {
			parts = append(parts, "weather changed to "+label)
		}
	}
	if cfg.HasSeasonOverride() {
		if label := SeasonLabel(cfg.SeasonOverride); label != "" {
			parts = append(parts, "season changed to "+label)
		}
	}
	if len(parts) == 0 {
		return "unchanged"
	}
	return strings.Join(parts, ", ")
}

// atmosphereOverrideBlock - 모드 지시문 앞에 붙는 대기 오버라이드 블록
func atmosphereOverrideBlock(cfg *Config) (string, bool) {
	if !cfg.HasWeatherOverride() && !cfg.HasSeasonOverride() {
		return "", false
	}
	return "ATMOSPHERE OVERRIDE: On top of everything below, the final scene's atmosphere is: " +
		atmosphereSummary(cfg) + ".", true
}

// concernFragments - 고정 순서 룰 테이블 조회
// 순서 자체가 계약이다: 구도 → 카메라 → 라이팅 → 그림자 → 시간대 →
// 카메라 키트 → 심도 → 제품 리터치 → 연출 조작 → 인물 리터치
func concernFragments(cfg *Config, wf Workflow) []Fragment {
	type concern struct {
		source string
		value  string
		lookup func(string) (string, bool)
	}

	concerns := []concern{
		{"shot_type", cfg.ShotType, ShotTypeFragment},
		{"camera_perspective", cfg.CameraPerspective, CameraPerspectiveFragment},
		{"lighting_style", cfg.LightingStyle, LightingStyleFragment},
		{"shadow_style", cfg.ShadowStyle, ShadowStyleFragment},
		{"time_of_day", cfg.TimeOfDay, TimeOfDayFragment},
		{"camera_kit", cfg.CameraKit, CameraKitFragment},
		{"depth_of_field", cfg.DepthOfField, DepthOfFieldFragment},
		{"product_retouch", cfg.ProductRetouchKit, ProductRetouchFragment},
		{"manipulation", cfg.ManipulationKit, ManipulationFragment},
		{"people_retouch", cfg.PeopleRetouchKit, PeopleRetouchFragment},
	}

	// 3D 워크플로우는 3D 스타일 테이블 3종을 이어서 조회
	if wf.Stylized3D {
		concerns = append(concerns,
			concern{"style_transform", cfg.StyleTransform, StyleTransformFragment},
			concern{"style_lighting", cfg.StyleLighting, StyleLightingFragment},
			concern{"style_color_grade", cfg.StyleColorGrade, StyleColorGradeFragment},
		)
	}

	var out []Fragment
	for _, c := range concerns {
		if text, ok := c.lookup(c.value); ok {
			out = append(out, Fragment{Source: c.source, Text: text})
		}
	}
	return out
}

// isForcedArtificialLight - 제품 라이팅 블록의 야간 분기 조건
func isForcedArtificialLight(timeOfDay string) bool {
	return timeOfDay == "force_night" || timeOfDay == "force_blue_hour"
}

// environmentalBlock - 환경 상호작용 블록 (워크플로우에 따라 물 절 제외)
func environmentalBlock(wf Workflow) string {
	if wf.IncludeWaterInteraction {
		return environmentalInteractionBody + "\n" + environmentalWaterClause
	}
	return environmentalInteractionBody
}

// AssembleFragments - 프래그먼트 목록을 고정 순서로 생성
// 결정적이다: 같은 config/mode/workflow는 항상 같은 결과를 낸다
func AssembleFragments(cfg *Config, mode Mode, wf Workflow) []Fragment {
	var frags []Fragment

	// 1. 리얼리즘/엔진 프리앰블 (워크플로우가 결정, 무조건)
	if wf.Stylized3D {
		frags = append(frags, Fragment{Source: "preamble", Text: stylized3DPreamble})
	} else {
		frags = append(frags, Fragment{Source: "preamble", Text: realismPreamble})
	}

	// 2. 주어 프래그먼트 (무조건)
	if subject := strings.TrimSpace(cfg.SubjectPrompt); subject != "" {
		frags = append(frags, Fragment{Source: "subject", Text: "SUBJECT: " + subject})
	} else {
		frags = append(frags, Fragment{Source: "subject", Text: subjectFromProductImage})
	}

	// 3. 고정 순서 룰 테이블 프래그먼트
	frags = append(frags, concernFragments(cfg, wf)...)

	// 4. 제품 라이팅 블록 - 정확히 한 분기만 발화 (무조건)
	if isForcedArtificialLight(cfg.TimeOfDay) {
		frags = append(frags, Fragment{Source: "critical_lighting", Text: criticalLightingNight})
	} else {
		frags = append(frags, Fragment{Source: "critical_lighting", Text: criticalLightingDay})
	}

	// 5. 모드별 블록
	switch mode {
	case ModeStandard:
		// standard: 날씨/계절 프래그먼트를 테이블에서 직접 방출
		if text, ok := WeatherFragment(cfg.WeatherAtmosphere); ok {
			frags = append(frags, Fragment{Source: "weather", Text: text})
		}
		if text, ok := SeasonFragment(cfg.SeasonOverride); ok {
			frags = append(frags, Fragment{Source: "season", Text: text})
		}

	case ModePlainInpainting:
		// 레퍼런스 없음 + 대기 오버라이드: 짧은 충실도 보존 지시문
		frags = append(frags, Fragment{
			Source: "mode_directive",
			Text:   fmt.Sprintf(plainInpaintingDirective, atmosphereSummary(cfg)),
		})

	default:
		// 6개 레퍼런스 모드: 대기 오버라이드 블록(있으면) + 모드 지시문
		if block, ok := atmosphereOverrideBlock(cfg); ok {
			frags = append(frags, Fragment{Source: "atmosphere_override", Text: block})
		}
		if template, ok := modeDirectives[mode]; ok {
			frags = append(frags, Fragment{
				Source: "mode_directive",
				Text:   fmt.Sprintf(template, atmosphereSummary(cfg)),
			})
		}
	}

	// 6. 환경 상호작용 블록 (무조건, 물 절은 워크플로우에 따라)
	frags = append(frags, Fragment{Source: "environment", Text: environmentalBlock(wf)})

	// 7. 출력 품질 프래그먼트 (무조건)
	frags = append(frags, Fragment{Source: "output_quality", Text: DownloadQualityFragment(cfg.DownloadQuality)})

	// 8. 네거티브 프롬프트 - 항상 마지막
	if negative := strings.TrimSpace(cfg.NegativePrompt); negative != "" {
		frags = append(frags, Fragment{Source: "negative", Text: avoidPrefix + negative})
	}

	return frags
}

// Assemble - 최종 프롬프트 문자열 조립
// 전부 기본값인 config라도 1,2,4,6,7단계가 무조건적이므로 결과는 비어있지 않다
func Assemble(cfg *Config, mode Mode, wf Workflow) string {
	frags := AssembleFragments(cfg, mode, wf)
	parts := make([]string, 0, len(frags))
	for _, f := range frags {
		parts = append(parts, f.Text)
	}
	return strings.Join(parts, "\n\n")
}
