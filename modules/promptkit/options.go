package promptkit

// AttachedImage - 업로드된 이미지 1장 (바이너리 + MIME 타입)
type AttachedImage struct {
	Data     []byte
	MimeType string
}

// Config - 생성 버튼 클릭 시점의 옵션 스냅샷
// 각 enum 필드는 빈 문자열/"none" 또는 닫힌 값 집합 중 하나여야 하며,
// 알 수 없는 값은 프래그먼트를 생성하지 않는다 (fail closed)
type Config struct {
	// 연출 옵션
	ShotType          string `json:"shotType,omitempty"`
	CameraPerspective string `json:"cameraPerspective,omitempty"`
	LightingStyle     string `json:"lightingStyle,omitempty"`
	ShadowStyle       string `json:"shadowStyle,omitempty"`
	TimeOfDay         string `json:"timeOfDay,omitempty"`
	WeatherAtmosphere string `json:"weatherAtmosphere,omitempty"`
	SeasonOverride    string `json:"seasonOverride,omitempty"`
	DepthOfField      string `json:"depthOfField,omitempty"`

	// 키트 옵션
	CameraKit         string `json:"cameraKit,omitempty"`
	ProductRetouchKit string `json:"productRetouchKit,omitempty"`
	ManipulationKit   string `json:"manipulationKit,omitempty"`
	PeopleRetouchKit  string `json:"peopleRetouchKit,omitempty"`

	// 3D 스타일 옵션 (turntable 워크플로우 전용)
	StyleTransform  string `json:"styleTransform,omitempty"`
	StyleLighting   string `json:"styleLighting,omitempty"`
	StyleColorGrade string `json:"styleColorGrade,omitempty"`

	// 레퍼런스 활용 모드 선택자
	ReferenceUsage string `json:"referenceUsage,omitempty"`

	// 출력 품질 선택자
	DownloadQuality string `json:"downloadQuality,omitempty"`

	// 자유 텍스트
	SubjectPrompt  string `json:"subjectPrompt,omitempty"`
	NegativePrompt string `json:"negativePrompt,omitempty"`

	// 첨부 이미지 (모두 선택 사항, 단 워크플로우별로 product는 필수일 수 있음)
	ProductImage   *AttachedImage `json:"-"`
	ReferenceImage *AttachedImage `json:"-"`
	DesignImage    *AttachedImage `json:"-"`
	TextureImage   *AttachedImage `json:"-"`
	StyleImage     *AttachedImage `json:"-"`
}

// HasReferenceImage - 레퍼런스 이미지 첨부 여부
func (c *Config) HasReferenceImage() bool {
	return c.ReferenceImage != nil && len(c.ReferenceImage.Data) > 0
}

// HasWeatherOverride - 날씨 오버라이드가 기본값이 아닌지
func (c *Config) HasWeatherOverride() bool {
	return c.WeatherAtmosphere != "" && c.WeatherAtmosphere != "none"
}

// HasSeasonOverride - 계절 오버라이드가 기본값이 아닌지
func (c *Config) HasSeasonOverride() bool {
	return c.SeasonOverride != "" && c.SeasonOverride != "none"
}

// Workflow - 어느 스튜디오가 어셈블리를 호출했는지
// 프리앰블(실사 vs 3D 스타일)과 물 상호작용 포함 여부는 사용자 선택이 아니라
// 워크플로우가 결정한다
type Workflow struct {
	Name                    string
	Stylized3D              bool
	IncludeWaterInteraction bool
}

// 기본 워크플로우 정의
var (
	WorkflowProduct = Workflow{
		Name:                    "product",
		Stylized3D:              false,
		IncludeWaterInteraction: true,
	}
	WorkflowTurntable = Workflow{
		Name:                    "turntable",
		Stylized3D:              true,
		IncludeWaterInteraction: false,
	}
)
