package turntable

import (
	"fmt"
	"strings"

	"product-studio-server/modules/promptkit"
)

// rotationDescription - 정면 기준 회전량 설명
func rotationDescription(angle int) string {
	switch angle {
	case 0:
		return "no rotation (same as source)"
	case 45:
		return "45 degrees clockwise rotation (slight turn to the right)"
	case 90:
		return "90 degrees clockwise rotation (side view, facing right)"
	case 135:
		return "135 degrees clockwise rotation (three-quarter back view, right side)"
	case 180:
		return "180 degrees rotation (full back view)"
	case 225:
		return "225 degrees clockwise / 135 degrees counter-clockwise (three-quarter back view, left side)"
	case 270:
		return "270 degrees clockwise / 90 degrees counter-clockwise (side view, facing left)"
	case 315:
		return "315 degrees clockwise / 45 degrees counter-clockwise (slight turn to the left)"
	default:
		return fmt.Sprintf("%d degrees clockwise rotation from the front view", angle)
	}
}

// angleGuidance - 각도별 구체적인 가이드
func angleGuidance(angle int) string {
	switch angle {
	case 0:
		return "Show the front face of the product directly facing the camera"
	case 45:
		return "Show front-right perspective, with about 3/4 of the front visible and 1/4 of the right side visible"
	case 90:
		return "Show the complete right side profile, front should not be visible"
	case 135:
		return "Show back-right perspective, with about 1/4 of the right side and 3/4 of the back visible"
	case 180:
		return "Show the complete back view, front should not be visible at all"
	case 225:
		return "Show back-left perspective, with about 3/4 of the back and 1/4 of the left side visible"
	case 270:
		return "Show the complete left side profile, front should not be visible"
	case 315:
		return "Show front-left perspective, with about 3/4 of the front visible and 1/4 of the left side visible"
	default:
		return fmt.Sprintf("Show the product rotated %d degrees from the front view", angle)
	}
}

// BuildAnglePrompt - 각도 1종의 턴테이블 프롬프트 조립
// 회전 지시문은 네거티브 프래그먼트 앞에 끼워 AVOID 절이 항상 마지막에 오게 한다
// 모든 각도가 같은 스타일 블록을 공유해야 턴테이블 일관성이 유지된다
func BuildAnglePrompt(cfg *promptkit.Config, angle int) string {
	rotation := fmt.Sprintf(`[TURNTABLE ROTATION DIRECTIVE]
The attached product image shows the product from the FRONT VIEW (0 degrees).
Generate the EXACT SAME product from the %s angle (%d degrees).
- Rotation: %s
- %s
- Keep all visual details consistent: colors, textures, patterns, materials
- Keep the camera distance, framing, and background identical to the front view
- Maintain consistent lighting, shadows, and atmosphere across the whole turntable set

OUTPUT: Generate ONLY the image, no text or explanations.`,
		AngleLabel(angle), angle,
		rotationDescription(angle),
		angleGuidance(angle))

	frags := promptkit.AssembleFragments(cfg, promptkit.ModeStandard, promptkit.WorkflowTurntable)

	parts := make([]string, 0, len(frags)+1)
	inserted := false
	for _, frag := range frags {
		if frag.Source == "negative" && !inserted {
			parts = append(parts, rotation)
			inserted = true
		}
		parts = append(parts, frag.Text)
	}
	if !inserted {
		parts = append(parts, rotation)
	}

	return strings.Join(parts, "\n\n")
}
