package config

import "image/color"

const (
	DesignWidth  = 900 // Ширина канонической плоскости
	DesignHeight = 600 // Высота канонической плоскости
	ScreenWidth  = 900
	ScreenHeight = 700 // Плоскость + панель управления снизу
	PanelHeight  = ScreenHeight - DesignHeight

	MaxDeltaTime    = 0.1   // Верхняя граница dt за один тик, секунды
	CommandPointCap = 200.0 // Потолок очков командования, общий для всех сложностей
	ProgressEpsilon = 0.001 // Вес расстояния в очке прогресса (только для ничьих)
	NudgeCooldown   = 3.0   // Минимальный интервал между подсказками, секунды

	StatusDuration = 0.8 // Сколько держится сообщение статуса, секунды
	ClickCooldown  = 150 // мс

	PreferenceKey     = "reverse-td:difficulty"
	DefaultDifficulty = "standard"
	PreferencesFile   = "prefs.json"
	AppDirName        = "reverse-td"
)

// Значения по умолчанию для полей башни, если профиль их не задаёт.
const (
	DefaultTowerRange           = 180.0
	DefaultTowerFireRate        = 1.2 // выстрелов в секунду
	DefaultTowerProjectileSpeed = 320.0
	DefaultTowerDamage          = 30.0
)

// Значения по умолчанию для снаряда.
const (
	DefaultProjectileSpeed = 300.0
	ProjectileRadius       = 4.0
)

// Визуальные константы
const (
	TowerBodyRadius   = 20.0
	TowerBaseRadius   = 26.0
	PathOuterWidth    = 34.0
	PathInnerWidth    = 20.0
	HealthBarHeight   = 5.0
	HealthBarOffsetY  = 9.0
	FireflyCount      = 42
	CanopyRingCount   = 7
	SpeedButtonSize   = 14.0
	SpeedButtonMargin = 30.0
)

var (
	BackgroundTop    = color.RGBA{4, 23, 13, 255}
	BackgroundBottom = color.RGBA{16, 50, 32, 255}
	PathShadowColor  = color.RGBA{12, 52, 30, 230}
	PathColor        = color.RGBA{122, 228, 173, 255}
	StartGlowColor   = color.RGBA{173, 255, 215, 200}
	GoalGlowColor    = color.RGBA{255, 197, 120, 230}
	TowerBaseColor   = color.RGBA{8, 32, 18, 216}
	TowerColor       = color.RGBA{94, 201, 141, 242}
	TowerStrokeColor = color.RGBA{214, 255, 229, 216}
	TowerRangeColor  = color.RGBA{186, 230, 199, 56}
	ProjectileColor  = color.RGBA{244, 214, 87, 255}
	HealthBarBack    = color.RGBA{4, 28, 15, 216}
	HealthBarColor   = color.RGBA{84, 228, 139, 255}
	FireflyColor     = color.RGBA{197, 255, 200, 160}
	RingColor        = color.RGBA{146, 222, 173, 20}
	PanelColor       = color.RGBA{9, 31, 19, 255}
	OverlayColor     = color.RGBA{9, 31, 19, 184}
	TextLightColor   = color.RGBA{236, 255, 245, 235}
	TextAccentColor  = color.RGBA{252, 227, 138, 255}
	ButtonColor      = color.RGBA{20, 70, 44, 255}
	ButtonHoverColor = color.RGBA{34, 110, 70, 255}
	ButtonDimColor   = color.RGBA{30, 40, 34, 255}
	ButtonTextDim    = color.RGBA{120, 140, 128, 255}
	PauseColor       = color.RGBA{214, 255, 229, 220}
	PlayColor        = color.RGBA{84, 228, 139, 240}
)

var (
	SpeedButtonColors = []color.RGBA{
		{70, 130, 180, 220},  // x1
		{220, 60, 60, 220},   // x2
		{194, 178, 128, 255}, // x4
	}
	SpeedMultipliers = []int{1, 2, 4}
)
