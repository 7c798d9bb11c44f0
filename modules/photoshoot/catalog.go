package photoshoot

import (
	"strings"

	"product-studio-server/modules/promptkit"
)

// ShotSpec - 가상 포토슛 카탈로그의 샷 1종
// Title이 권위 있는 식별자다: 물 상호작용 여부 등 시맨틱 판정은
// 타이틀 문자열 매칭으로 이루어진다 (카탈로그 정의와 판정 로직이
// 함께 움직여야 하므로 타이틀을 바꿀 때는 아래 키워드 목록도 확인할 것)
type ShotSpec struct {
	Title string
	Scene string // 샷 고유의 장면 지시문 (subject 뒤에 이어붙는다)

	// 사용자 base 옵션 위에 덮어쓰는 샷 고유 오버라이드 (빈 값은 무시)
	ShotType      string
	LightingStyle string
	TimeOfDay     string
}

// DefaultCatalog - 기본 포토슛 카탈로그 (그리드 순서 고정)
var DefaultCatalog = []ShotSpec{
	{
		Title:         "Marble Podium Hero",
		Scene:         "SCENE: The product stands on a white marble podium against a softly graded studio backdrop, a single architectural shaft of light crossing behind it.",
		ShotType:      "hero",
		LightingStyle: "studio_softbox",
	},
	{
		Title:         "Golden Hour Beach",
		Scene:         "SCENE: The product rests on smooth wet sand at the waterline, low sun flaring across gentle incoming foam, footprint-free beach stretching behind.",
		LightingStyle: "golden_hour",
		TimeOfDay:     "force_golden_hour",
	},
	{
		Title:    "Poolside Splash",
		Scene:    "SCENE: The product sits at the tiled edge of a turquoise pool, a frozen arc of splash water rising beside it, sun sparkling in every droplet.",
		ShotType: "hero",
	},
	{
		Title:         "Rainy Window Mood",
		Scene:         "SCENE: The product stands on a wooden sill inside, behind it a large window streaked with running rain, the street outside dissolved into bokeh lights.",
		LightingStyle: "window_light",
	},
	{
		Title:         "Forest Floor Morning",
		Scene:         "SCENE: The product stands on moss between fern fronds, thin shafts of morning light cutting through canopy mist behind it.",
		LightingStyle: "overcast_soft",
	},
	{
		Title:         "Studio Infinity Curve",
		Scene:         "SCENE: The product alone on a seamless white cyclorama, nothing else in frame, shadow and reflection doing all the compositional work.",
		ShotType:      "straight_on",
		LightingStyle: "studio_softbox",
	},
	{
		Title:    "Kitchen Counter Lifestyle",
		Scene:    "SCENE: The product in use on a bright home kitchen counter, morning coffee steam nearby, believable everyday clutter softly out of focus.",
		ShotType: "lifestyle_in_context",
	},
	{
		Title:         "Urban Rooftop Dusk",
		Scene:         "SCENE: The product on a concrete rooftop ledge, city skyline glowing behind it at dusk, first window lights competing with the last sky color.",
		TimeOfDay:     "force_blue_hour",
		LightingStyle: "dramatic_rim",
	},
	{
		Title:         "Desert Dunes Heat",
		Scene:         "SCENE: The product planted upright in rippled golden dune sand, heat shimmer on the horizon, a single long shadow stretching away.",
		LightingStyle: "hard_sun",
	},
	{
		Title:         "Neon Alley Night",
		Scene:         "SCENE: The product on a wet reflective street surface in a narrow alley, layered neon signage in two languages glowing above, colors pooling at its base.",
		LightingStyle: "neon_glow",
		TimeOfDay:     "force_night",
	},
}

// waterTitleKeywords - 물 상호작용 시나리오로 판정되는 타이틀 키워드
var waterTitleKeywords = []string{
	"Pool", "Splash", "Beach", "Rain", "Underwater",
	"Lakeside", "Waterfall", "Ocean", "Seaside", "River",
}

// isWaterScenario - 샷 타이틀로 물 상호작용 여부 판정
// 타이틀 문자열이 권위다: 별도의 시맨틱 플래그를 두지 않는다
func isWaterScenario(title string) bool {
	for _, keyword := range waterTitleKeywords {
		if strings.Contains(title, keyword) {
			return true
		}
	}
	return false
}

// Apply - base 옵션 스냅샷 위에 샷 오버라이드를 적용한 복사본 반환
func (spec ShotSpec) Apply(base *promptkit.Config) *promptkit.Config {
	cfg := *base

	if spec.ShotType != "" {
		cfg.ShotType = spec.ShotType
	}
	if spec.LightingStyle != "" {
		cfg.LightingStyle = spec.LightingStyle
	}
	if spec.TimeOfDay != "" {
		cfg.TimeOfDay = spec.TimeOfDay
	}

	// 장면 지시문은 subject 텍스트 뒤에 붙인다
	if spec.Scene != "" {
		if cfg.SubjectPrompt != "" {
			cfg.SubjectPrompt = cfg.SubjectPrompt + "\n" + spec.Scene
		} else {
			cfg.SubjectPrompt = "The product shown in the attached product image.\n" + spec.Scene
		}
	}

	return &cfg
}

// SelectShots - 요청된 타이틀 목록으로 카탈로그 부분집합 선택 (빈 목록 = 전체)
// 알 수 없는 타이틀은 무시한다
func SelectShots(titles []string) []ShotSpec {
	if len(titles) == 0 {
		out := make([]ShotSpec, len(DefaultCatalog))
		copy(out, DefaultCatalog)
		return out
	}

	byTitle := make(map[string]ShotSpec, len(DefaultCatalog))
	for _, spec := range DefaultCatalog {
		byTitle[spec.Title] = spec
	}

	var out []ShotSpec
	for _, title := range titles {
		if spec, ok := byTitle[title]; ok {
			out = append(out, spec)
		}
	}
	return out
}
