package domain

// Геометрия
const (
	// DefaultTileSize - размер тайла в мировых единицах (пикселях)
	DefaultTileSize = 32
)

// Параметры восприятия охранников
const (
	// DefaultGuardFOV - полный угол обзора в градусах
	DefaultGuardFOV = 60

	// VisionSweepStep - шаг развертки конуса зрения в градусах
	VisionSweepStep = 5
)

// Сентинели индекса патруля
const (
	// PatrolNotStarted - патруль еще не начат
	PatrolNotStarted = -1
	// PatrolHalted - патруль остановлен навсегда
	PatrolHalted = -2
)
