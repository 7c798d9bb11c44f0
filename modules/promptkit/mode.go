package promptkit

// Mode - 레퍼런스 이미지 존재 여부와 활용 선택자로부터 파생되는 생성 전략
// 저장되지 않고 매 생성 시점에 다시 계산된다
type Mode string

const (
	ModeFullSceneEmulation     Mode = "full_scene_emulation"
	ModeArtisticStyleTransfer  Mode = "artistic_style_transfer"
	ModeObjectSwap             Mode = "object_swap"
	ModeLightingTheft          Mode = "lighting_theft"
	ModeInpaintingEdit         Mode = "inpainting_edit"
	ModeKeepModelReplaceObject Mode = "keep_model_replace_object"
	ModePlainInpainting        Mode = "plain_inpainting"
	ModeStandard               Mode = "standard"
)

// referenceUsageModes - 레퍼런스 활용 선택자가 가질 수 있는 6개 모드
var referenceUsageModes = map[string]Mode{
	"full_scene_emulation":      ModeFullSceneEmulation,
	"artistic_style_transfer":   ModeArtisticStyleTransfer,
	"object_swap":               ModeObjectSwap,
	"lighting_theft":            ModeLightingTheft,
	"inpainting_edit":           ModeInpaintingEdit,
	"keep_model_replace_object": ModeKeepModelReplaceObject,
}

// ResolveMode - 활성 생성 모드 결정
// 우선순위가 중요하다: 레퍼런스 이미지 존재가 대기 오버라이드보다 항상 우선
//  1. 레퍼런스 첨부 + 활용 선택자 != none → 선택자 값 그대로
//  2. 레퍼런스 없음 + (날씨 또는 계절 오버라이드) → plain_inpainting
//  3. 그 외 → standard
func ResolveMode(hasReference bool, referenceUsage string, weatherOverride, seasonOverride bool) Mode {
	if hasReference && referenceUsage != "" && referenceUsage != "none" {
		if mode, ok := referenceUsageModes[referenceUsage]; ok {
			return mode
		}
		// 알 수 없는 선택자 값은 fail closed
		return ModeStandard
	}

	if !hasReference && (weatherOverride || seasonOverride) {
		return ModePlainInpainting
	}

	return ModeStandard
}

// ResolveModeFromConfig - Config 스냅샷에서 직접 모드 결정
func ResolveModeFromConfig(cfg *Config) Mode {
	return ResolveMode(
		cfg.HasReferenceImage(),
		cfg.ReferenceUsage,
		cfg.HasWeatherOverride(),
		cfg.HasSeasonOverride(),
	)
}
