package promptkit

// 룰 테이블 - 옵션 값 하나를 자연어 지시문 프래그먼트 하나로 매핑
// 모든 테이블은 동일한 정책을 따른다:
//   - 빈 값 / "none" / 알 수 없는 값 → 프래그먼트 없음 (no-op)
//   - 알려진 멤버는 각각 고유한 비어있지 않은 문장을 반환
// 새 UI 옵션이 추가되어도 서버가 깨지지 않도록 에러 대신 no-op 처리한다

// lookupFragment - 공통 조회 헬퍼
func lookupFragment(table map[string]string, value string) (string, bool) {
	if value == "" || value == "none" {
		return "", false
	}
	text, ok := table[value]
	if !ok || text == "" {
		return "", false
	}
	return text, true
}

// shotTypeTable - 구도/프레이밍
var shotTypeTable = map[string]string{
	"hero": "COMPOSITION: A commanding hero shot. The product sits dead-center on an elevated pedestal position, " +
		"shot slightly from below so it towers with quiet authority. Generous negative space around the subject, " +
		"background elements recede into soft support roles.",
	"straight_on": "COMPOSITION: A clean straight-on catalog framing. The product faces the camera squarely at its " +
		"natural resting orientation, perfectly level horizon, symmetrical balance left and right.",
	"low_angle_epic": "COMPOSITION: A dramatic low-angle epic framing. The camera looks up at the product from near " +
		"ground level, exaggerating its scale against the sky or ceiling, with strong converging vertical lines.",
	"top_down_flatlay": "COMPOSITION: A top-down flat lay. The camera points straight down at 90 degrees, the product " +
		"arranged on a styled flat surface with supporting props placed in a deliberate, breathable grid around it.",
	"macro_detail": "COMPOSITION: An extreme macro detail crop. Fill the frame with the most tactile region of the " +
		"product - texture, stitching, engraving, or liquid surface - so material quality becomes the entire story.",
	"lifestyle_in_context": "COMPOSITION: A lifestyle in-context scene. The product is placed naturally inside a lived-in " +
		"environment, mid-use or just set down, with believable human traces around it but the product still clearly the focus.",
	"floating_levitation": "COMPOSITION: A floating levitation composition. The product hovers weightlessly above the " +
		"surface at a gentle tilt, casting a soft displaced shadow directly beneath it to sell the suspension.",
	"group_family": "COMPOSITION: A product family group shot. All variants are arranged together in a stepped " +
		"arrangement by height, the primary variant slightly forward, the rest angled a few degrees toward it.",
}

// cameraPerspectiveTable - 카메라 시점/렌즈 방향
var cameraPerspectiveTable = map[string]string{
	"eye_level": "CAMERA: Shot at product eye level, sensor plane parallel to the subject face, neutral and honest " +
		"perspective with no vertical distortion.",
	"low_angle": "CAMERA: Low camera position angled upward roughly 20 degrees, giving the product a subtle sense " +
		"of stature without cartoonish distortion.",
	"high_angle": "CAMERA: High camera position angled downward roughly 30 degrees, revealing the top surface of the " +
		"product and its relationship to the surface it sits on.",
	"top_down": "CAMERA: Camera directly overhead at 90 degrees, lens axis perpendicular to the ground plane, " +
		"zero keystone distortion.",
	"dutch_tilt": "CAMERA: A deliberate dutch tilt of 10-15 degrees, horizon canted for editorial energy while the " +
		"product itself stays fully inside the frame.",
	"three_quarter": "CAMERA: Classic three-quarter view, camera offset about 45 degrees from the product front so " +
		"two faces are visible and the form reads with depth.",
	"worms_eye": "CAMERA: Worm's-eye view from just above the ground plane looking steeply upward, foreground surface " +
		"sweeping away in strong perspective.",
}

// lightingStyleTable - 라이팅 스타일
var lightingStyleTable = map[string]string{
	"studio_softbox": "LIGHTING: Large studio softbox key light at 45 degrees camera-left with a silver bounce fill " +
		"camera-right, wrap-around soft light, gentle gradient falloff across the background.",
	"golden_hour": "LIGHTING: Warm golden hour sunlight raking in low from the side, long amber highlights, honeyed " +
		"color temperature around 3200K, atmosphere glowing softly in the backlight.",
	"hard_sun": "LIGHTING: Hard direct midday sun, crisp specular highlights, deep defined shadows with sharp edges, " +
		"high contrast and saturated color.",
	"neon_glow": "LIGHTING: Saturated neon signage as the only light sources - magenta key from one side, cyan rim " +
		"from the other, colored reflections pooling on glossy surfaces.",
	"window_light": "LIGHTING: Soft natural daylight through a large side window with sheer curtain diffusion, gentle " +
		"directional modeling, quiet shadow side with airy ambient fill.",
	"overcast_soft": "LIGHTING: Even overcast skylight, one enormous diffuse source overhead, near-shadowless rendering " +
		"with delicate tonal modeling and true-to-life color.",
	"dramatic_rim": "LIGHTING: Low-key dramatic rim lighting, background falls to near black while two hard rim lights " +
		"trace the product silhouette in thin bright outlines.",
	"candlelight": "LIGHTING: Intimate candlelight, flickering warm point sources at 1900K, pools of amber light with " +
		"soft dancing shadows and deep cozy darkness beyond.",
}

// shadowStyleTable - 그림자 스타일
// "none"은 기본값과 의도적으로 동일하게 처리된다 (프래그먼트 없음)
var shadowStyleTable = map[string]string{
	"soft_diffused": "SHADOW: A soft diffused contact shadow, feathered edges melting gradually into the surface, " +
		"darkest directly beneath the product.",
	"hard_defined": "SHADOW: A hard, precisely defined cast shadow with crisp edges, angled consistently with the key " +
		"light direction, opaque at the contact point.",
	"long_dramatic": "SHADOW: A long dramatic evening shadow stretching several product-lengths across the surface, " +
		"tapering and softening with distance.",
	"floating_drop": "SHADOW: A compact floating drop shadow pooled directly below the levitating product, clearly " +
		"detached from it, soft-edged and elliptical.",
	"mirror_reflection": "SHADOW: No cast shadow - instead a clean mirror reflection beneath the product on a polished " +
		"black acrylic surface, fading to about 30 percent opacity.",
}

// timeOfDayTable - 시간대 강제 오버라이드
// "keep_original"은 기본값 의미이므로 프래그먼트 없음 (테이블 미등재)
var timeOfDayTable = map[string]string{
	"force_day": "TIME OF DAY: Re-set the entire scene to bright midday. Sun high overhead, sky a clear saturated blue, " +
		"every surface lit by full daylight.",
	"force_night": "TIME OF DAY: Re-set the entire scene to deep night. Sky fully dark, all illumination now coming from " +
		"artificial practical sources within the scene - lamps, signage, windows.",
	"force_blue_hour": "TIME OF DAY: Re-set the entire scene to blue hour twilight. Sky a deep luminous cobalt, ambient " +
		"light cool and dim, artificial lights just switched on and glowing warm against the blue.",
	"force_golden_hour": "TIME OF DAY: Re-set the entire scene to golden hour. Sun just above the horizon, long warm " +
		"shadows, everything bathed in low amber light.",
	"force_dawn": "TIME OF DAY: Re-set the entire scene to first light of dawn. Pale pink-grey sky, cold thin ambient " +
		"light, mist still clinging low to surfaces.",
}

// weatherTable - 날씨/대기
var weatherTable = map[string]string{
	"clear_sky": "WEATHER: Perfectly clear sky, dry crisp air, maximum visibility, no atmospheric haze.",
	"light_rain": "WEATHER: Light drizzle falling, fine raindrops visible against darker backgrounds, surfaces " +
		"freshly wet and beginning to bead.",
	"heavy_rain": "WEATHER: Heavy driving rain, thick visible streaks of water, splash crowns where drops strike " +
		"surfaces, everything soaked and streaming.",
	"snowfall": "WEATHER: Gentle snowfall, large soft flakes drifting through the frame, a thin fresh layer of snow " +
		"accumulating on upward-facing surfaces.",
	"fog_mist": "WEATHER: Dense low fog, background dissolving into white within a few meters, light sources blooming " +
		"into soft halos.",
	"storm_clouds": "WEATHER: Heavy storm clouds overhead, dark bruised sky, pre-storm stillness with dramatic " +
		"shafts of light breaking through gaps.",
	"heat_haze": "WEATHER: Shimmering heat haze rising from hot surfaces, distant elements gently distorted, air " +
		"thick with dry summer glare.",
}

// seasonTable - 계절 오버라이드
var seasonTable = map[string]string{
	"spring": "SEASON: Peak spring. Fresh green growth everywhere, blossom petals drifting, bright clean light with " +
		"lingering morning coolness.",
	"summer": "SEASON: High summer. Deep saturated foliage, strong overhead sun, warm haze and the feeling of still, " +
		"hot air.",
	"autumn": "SEASON: Mid autumn. Amber and rust leaves on every tree and scattered across the ground, low warm " +
		"side-light, a cool edge to the air.",
	"winter": "SEASON: Deep winter. Bare branches, frost on every edge, pale low sun, breath-fog cold in the clear air.",
}

// cameraKitTable - 카메라/렌즈 키트
var cameraKitTable = map[string]string{
	"medium_format_100mp": "CAMERA KIT: Shot on a 100-megapixel medium format digital back. Extraordinary tonal depth, " +
		"zero noise, resolving power that renders individual fibers and micro-scratches.",
	"dslr_85mm_f14": "CAMERA KIT: Shot on a full-frame body with an 85mm f/1.4 prime. Flattering compression, razor-thin " +
		"focus plane on the product face, backgrounds dissolving into creamy bokeh.",
	"wide_24mm": "CAMERA KIT: Shot on a 24mm wide-angle lens up close. Environmental context wraps around the product, " +
		"mild perspective stretch at frame edges, deep sense of place.",
	"tilt_shift": "CAMERA KIT: Shot on a tilt-shift lens with the focus plane swung across the product diagonal, " +
		"selective sharpness cutting through the scene while everything else melts away.",
	"macro_100mm": "CAMERA KIT: Shot on a 100mm macro lens at 1:1 reproduction. Life-size rendering of surface detail, " +
		"shallow natural macro falloff, perfect edge-to-edge sharpness at the focus plane.",
	"anamorphic": "CAMERA KIT: Shot on anamorphic cinema glass. Oval bokeh, subtle horizontal blue flares across light " +
		"sources, gentle barrel character at the frame edges, 2.39:1 cinematic feel.",
}

// productRetouchTable - 제품 리터치 키트
var productRetouchTable = map[string]string{
	"dust_and_scratch": "PRODUCT RETOUCH: Remove every speck of dust, lint, fingerprint and micro-scratch from the " +
		"product surface. The product must read as factory-fresh, straight out of sealed packaging.",
	"color_calibration": "PRODUCT RETOUCH: Calibrate product colors to exact brand accuracy. Whites neutral, label " +
		"colors at true saturation, no color cast from the environment contaminating the product itself.",
	"gloss_and_specular": "PRODUCT RETOUCH: Perfect the gloss. Shape clean elongated specular highlights along the " +
		"product curves, remove blown-out hotspots, keep reflections smooth and unbroken.",
	"label_sharpening": "PRODUCT RETOUCH: Render all label typography and logos with perfect legibility - crisp edges, " +
		"correct letterforms, no warping, smearing or invented characters.",
	"full_commercial": "PRODUCT RETOUCH: Full commercial retouch pass - flawless surface, calibrated color, sculpted " +
		"speculars, perfect label typography, and clean silhouette edges with no halo artifacts.",
}

// manipulationTable - 연출 조작 키트
var manipulationTable = map[string]string{
	"levitation": "MANIPULATION: Levitate the product and its loose components in mid-air, each element frozen at a " +
		"slightly different height and rotation, as if captured mid-explosion of an elegant slow-motion toss.",
	"liquid_splash": "MANIPULATION: Freeze a dynamic liquid splash interacting with the product - a crown of droplets " +
		"arcing around it, every drop sharp and glassy, liquid consistent with the product's own contents.",
	"exploded_view": "MANIPULATION: Present an exploded technical view. The product's components separate along a clean " +
		"axis, evenly spaced, each part fully rendered, assembly order readable at a glance.",
	"giant_scale": "MANIPULATION: Play with impossible scale - the product rendered monumental inside the scene, " +
		"surrounding elements reduced to miniature, scale cues (people, furniture, trees) selling the illusion.",
	"clone_array": "MANIPULATION: Repeat the product in a precise receding array - identical clones in rows marching " +
		"toward the vanishing point, lighting consistent across every copy.",
}

// peopleRetouchTable - 인물 리터치 키트
var peopleRetouchTable = map[string]string{
	"natural_skin": "PEOPLE RETOUCH: Natural skin finish on any model - even tone, blemishes removed, but real pores " +
		"and texture fully preserved. Absolutely no plastic over-smoothing.",
	"editorial_polish": "PEOPLE RETOUCH: High-end editorial polish on any model - sculpted dodge and burn, refined " +
		"flyaway hair, immaculate makeup, skin luminous but still recognizably human.",
	"hair_cleanup": "PEOPLE RETOUCH: Clean stray and flyaway hairs on any model into a deliberate, styled silhouette " +
		"while keeping natural volume and individual strand detail.",
	"brighten_eyes": "PEOPLE RETOUCH: Subtly brighten and sharpen any model's eyes - clear catchlights, whitened " +
		"sclera within realistic limits, iris detail crisp.",
}

// styleTransformTable - 3D 스타일 변환 (turntable 워크플로우)
var styleTransformTable = map[string]string{
	"clay_render": "3D STYLE: Transform the product into a hand-sculpted clay render - soft matte plasticine surface, " +
		"visible subtle thumb-smoothing, rounded-off edges, uniform studio-clay color with gentle ambient occlusion.",
	"vinyl_toy": "3D STYLE: Transform the product into a collectible vinyl art toy - glossy smooth vinyl surface, " +
		"simplified chunky proportions, seam lines where molded parts join, displayed like a designer figure.",
	"voxel_art": "3D STYLE: Transform the product into voxel art - the entire form rebuilt from uniform cubes, " +
		"stair-stepped curves, flat-shaded cube faces with crisp pixel-perfect edges.",
	"low_poly": "3D STYLE: Transform the product into a low-poly sculpture - faceted triangular surfaces, flat shading " +
		"per face, silhouette preserved in under a few hundred visible polygons.",
	"plush_fabric": "3D STYLE: Transform the product into a plush fabric toy - soft stuffed volume, visible stitched " +
		"seams, short fuzzy pile catching the light, embroidered details replacing printed ones.",
	"glass_sculpture": "3D STYLE: Transform the product into a hand-blown glass sculpture - fully transparent with " +
		"internal refractions, caustic light patterns beneath it, tinted with the product's signature color.",
	"holographic": "3D STYLE: Transform the product into an iridescent holographic render - chrome surface shifting " +
		"through spectral gradients as the form turns, sharp mirror reflections of the environment.",
	"papercraft": "3D STYLE: Transform the product into folded papercraft - planar card surfaces with visible fold " +
		"lines, tabs and slots, subtle paper texture and hand-assembled charm.",
}

// styleLightingTable - 3D 렌더 라이팅
var styleLightingTable = map[string]string{
	"studio_hdri": "3D LIGHTING: Neutral studio HDRI environment - large soft area lights reflected in glossy surfaces, " +
		"clean grey-white gradient backdrop, textbook three-point balance.",
	"dramatic_rim": "3D LIGHTING: Dark dramatic rig - near-black environment with two strong colored rim lights carving " +
		"the silhouette, a faint cool fill revealing just enough form.",
	"soft_ambient": "3D LIGHTING: Soft ambient global illumination - shadowless wrap of diffuse light, pastel sky dome, " +
		"gentle occlusion shading in crevices only.",
	"neon_cyber": "3D LIGHTING: Neon cyberpunk rig - magenta and cyan area lights from opposite sides, glowing grid " +
		"floor reflections, light fog catching colored beams.",
}

// styleColorGradeTable - 3D 컬러 그레이드
var styleColorGradeTable = map[string]string{
	"vibrant_pop": "3D COLOR GRADE: Vibrant pop grade - maximum tasteful saturation, punchy primaries, bright airy " +
		"whites, zero muddiness in the shadows.",
	"pastel_dream": "3D COLOR GRADE: Pastel dream grade - desaturated candy tones, lifted velvety shadows, soft pink " +
		"and mint cast across the highlights.",
	"monochrome_ink": "3D COLOR GRADE: Monochrome ink grade - full desaturation to rich blacks and paper whites, " +
		"steep contrast curve, a single accent color allowed only on the product's key feature.",
	"teal_orange": "3D COLOR GRADE: Cinematic teal and orange grade - shadows pushed cool teal, skin tones and warm " +
		"materials pushed amber, blockbuster color separation.",
}

// depthOfFieldTable - 피사계 심도
var depthOfFieldTable = map[string]string{
	"shallow_f14": "DEPTH OF FIELD: Very shallow depth of field at f/1.4 - only the front face of the product " +
		"critically sharp, everything before and behind dissolving into smooth blur.",
	"deep_focus": "DEPTH OF FIELD: Deep focus at f/11 - the entire product and its environment sharp from foreground " +
		"to background, every plane readable.",
	"miniature_tilt_shift": "DEPTH OF FIELD: Miniature tilt-shift effect - a narrow horizontal band of sharpness " +
		"through the product, rapid blur above and below, making the scene read like a scale model.",
}

// downloadQualityTable - 출력 품질 프래그먼트
// 이 테이블만은 항상 프래그먼트를 내보낸다 (출력 품질 블록은 무조건적이므로 기본값 보유)
var downloadQualityTable = map[string]string{
	"web_1k":      "OUTPUT QUALITY: Render at crisp web resolution, optimized for on-screen display, clean at 1K.",
	"standard_2k": "OUTPUT QUALITY: Render at full 2K commercial resolution, every texture sharp at 100 percent zoom.",
	"print_4k": "OUTPUT QUALITY: Render at maximum 4K print-grade fidelity - micro-texture, film-like tonal depth, " +
		"no compression artifacts, suitable for large-format printing.",
}

// 사람이 읽을 수 있는 라벨 (모드 지시문 템플릿 파라미터용)

var weatherLabels = map[string]string{
	"clear_sky":    "clear sky",
	"light_rain":   "light rain",
	"heavy_rain":   "heavy rain",
	"snowfall":     "snowfall",
	"fog_mist":     "fog and mist",
	"storm_clouds": "storm clouds",
	"heat_haze":    "heat haze",
}

var seasonLabels = map[string]string{
	"spring": "spring",
	"summer": "summer",
	"autumn": "autumn",
	"winter": "winter",
}

// WeatherLabel - 날씨 값의 사람이 읽을 수 있는 라벨
func WeatherLabel(value string) string {
	if label, ok := weatherLabels[value]; ok {
		return label
	}
	return ""
}

// SeasonLabel - 계절 값의 사람이 읽을 수 있는 라벨
func SeasonLabel(value string) string {
	if label, ok := seasonLabels[value]; ok {
		return label
	}
	return ""
}

// 테이블별 공개 조회 함수들 - (값) -> (프래그먼트, 존재 여부)

func ShotTypeFragment(v string) (string, bool) { return lookupFragment(shotTypeTable, v) }
func CameraPerspectiveFragment(v string) (string, bool) {
	return lookupFragment(cameraPerspectiveTable, v)
}
func LightingStyleFragment(v string) (string, bool) { return lookupFragment(lightingStyleTable, v) }
func ShadowStyleFragment(v string) (string, bool)   { return lookupFragment(shadowStyleTable, v) }
func TimeOfDayFragment(v string) (string, bool) {
	if v == "keep_original" {
		return "", false
	}
	return lookupFragment(timeOfDayTable, v)
}
func WeatherFragment(v string) (string, bool)        { return lookupFragment(weatherTable, v) }
func SeasonFragment(v string) (string, bool)         { return lookupFragment(seasonTable, v) }
func CameraKitFragment(v string) (string, bool)      { return lookupFragment(cameraKitTable, v) }
func ProductRetouchFragment(v string) (string, bool) { return lookupFragment(productRetouchTable, v) }
func ManipulationFragment(v string) (string, bool)   { return lookupFragment(manipulationTable, v) }
func PeopleRetouchFragment(v string) (string, bool)  { return lookupFragment(peopleRetouchTable, v) }
func StyleTransformFragment(v string) (string, bool) { return lookupFragment(styleTransformTable, v) }
func StyleLightingFragment(v string) (string, bool)  { return lookupFragment(styleLightingTable, v) }
func StyleColorGradeFragment(v string) (string, bool) {
	return lookupFragment(styleColorGradeTable, v)
}
func DepthOfFieldFragment(v string) (string, bool) { return lookupFragment(depthOfFieldTable, v) }

// DownloadQualityFragment - 품질 프래그먼트 (알 수 없는 값은 standard_2k로 폴백)
func DownloadQualityFragment(v string) string {
	if text, ok := downloadQualityTable[v]; ok {
		return text
	}
	return downloadQualityTable["standard_2k"]
}
