package physics

import (
	"math"
	"sync/atomic"

	"github.com/annel0/voxel-engine/internal/vec"
)

// Физические константы — часть внешнего контракта движка.
const (
	Gravity   = 25.0  // Ускорение свободного падения, блоков/с²
	JumpForce = 8.0   // Начальная вертикальная скорость прыжка, блоков/с
	Speed     = 6.0   // Горизонтальная скорость ходьбы, блоков/с
	FixedDT   = 0.016 // Фиксированный шаг интегрирования, с

	EyeHeight     = 1.6 // Высота глаз над ступнями, блоков
	HeadClearance = 0.3 // Зазор от глаз до макушки, блоков

	KillPlaneY = -10.0 // Ниже этой высоты тело телепортируется на спаун

	maxPitch = math.Pi/2 - 0.01 // Ограничение наклона камеры
)

// DefaultSpawn — фиксированная точка возрождения
var DefaultSpawn = vec.Vec3Float{X: 8, Y: 20, Z: 8}

// BlockSampler сообщает, твёрдый ли блок в указанных мировых координатах.
// Незагруженные чанки обязаны разрешаться в «не твёрдый».
type BlockSampler func(worldX, worldY, worldZ int) bool

// MoveIntent — намерение движения на один тик, поставляемое внешним
// слоем ввода. Оси лежат в [-1,1].
type MoveIntent struct {
	Forward    float64 // Вперёд/назад
	Strafe     float64 // Вправо/влево
	YawDelta   float64 // Поворот взгляда по горизонтали, рад
	PitchDelta float64 // Наклон взгляда, рад
	Jump       bool    // Запрошен прыжок
}

// Body представляет тело игрока: непрерывная позиция (точка глаз),
// вертикальная скорость и состояние опоры. Коллизия — две бесконечно
// тонкие вертикальные точки (ступни и макушка), не box: это осознанный
// компромисс скорости против редких зацепов за кромки.
type Body struct {
	Position vec.Vec3Float // Позиция глаз в мировом пространстве
	Velocity vec.Vec3Float // Физически интегрируется только Y
	Yaw      float64       // Поворот взгляда по горизонтали, рад
	Pitch    float64       // Наклон взгляда, рад
	Grounded bool          // Тело стоит на твёрдой поверхности
}

// Integrator продвигает тело по фиксированным шагам времени
type Integrator struct {
	Spawn vec.Vec3Float // Точка возрождения

	respawns atomic.Uint64 // Срабатывания kill-плоскости; читается горутиной метрик
}

// NewIntegrator создаёт интегратор с точкой возрождения по умолчанию
func NewIntegrator() *Integrator {
	return &Integrator{Spawn: DefaultSpawn}
}

// NewBody создаёт тело в точке возрождения интегратора
func (in *Integrator) NewBody() *Body {
	return &Body{Position: in.Spawn}
}

// Respawns возвращает число срабатываний kill-плоскости
func (in *Integrator) Respawns() uint64 {
	return in.respawns.Load()
}

// Step продвигает тело на один фиксированный шаг dt.
// Порядок: взгляд → прыжок → гравитация → горизонтальное смещение →
// вертикальное смещение → проверка головы → проверка опоры → kill-плоскость.
func (in *Integrator) Step(body *Body, intent MoveIntent, solid BlockSampler, dt float64) {
	// Взгляд. Наклон ограничен, полный оборот по вертикали невозможен.
	body.Yaw += intent.YawDelta
	body.Pitch += intent.PitchDelta
	if body.Pitch > maxPitch {
		body.Pitch = maxPitch
	}
	if body.Pitch < -maxPitch {
		body.Pitch = -maxPitch
	}

	// Прыжок возможен только с опоры
	if intent.Jump && body.Grounded {
		body.Velocity.Y = JumpForce
	}

	body.Velocity.Y -= Gravity * dt

	// Горизонтальный базис строится только из yaw: наклон камеры не влияет
	// ни на скорость, ни на направление движения по горизонтали.
	sinYaw, cosYaw := math.Sin(body.Yaw), math.Cos(body.Yaw)
	forward := vec.Vec3Float{X: sinYaw, Z: cosYaw}
	right := vec.Vec3Float{X: cosYaw, Z: -sinYaw}

	displacement := forward.Scale(intent.Forward * Speed * dt).
		Add(right.Scale(intent.Strafe * Speed * dt))
	body.Position.X += displacement.X
	body.Position.Z += displacement.Z

	body.Position.Y += body.Velocity.Y * dt

	blockX := int(math.Floor(body.Position.X))
	blockZ := int(math.Floor(body.Position.Z))

	// Макушка: движение вверх обрывается о твёрдый потолок
	if body.Velocity.Y > 0 {
		headY := int(math.Floor(body.Position.Y + HeadClearance))
		if solid(blockX, headY, blockZ) {
			body.Velocity.Y = 0
		}
	}

	// Ступни: если под новой горизонтальной позицией твёрдый блок,
	// тело ставится ровно на его верхнюю грань
	feetY := int(math.Floor(body.Position.Y - EyeHeight))
	if solid(blockX, feetY, blockZ) {
		body.Position.Y = float64(feetY) + 1 + EyeHeight
		body.Velocity.Y = 0
		body.Grounded = true
	} else {
		body.Grounded = false
	}

	// Kill-плоскость — страховка от падения сквозь несгенерированный
	// или выкопанный рельеф
	if body.Position.Y < KillPlaneY {
		body.Position = in.Spawn
		body.Velocity = vec.Vec3Float{}
		body.Grounded = false
		in.respawns.Add(1)
	}
}

// LookDirection возвращает единичный вектор направления взгляда тела
func (b *Body) LookDirection() vec.Vec3Float {
	cosPitch := math.Cos(b.Pitch)
	return vec.Vec3Float{
		X: math.Sin(b.Yaw) * cosPitch,
		Y: math.Sin(b.Pitch),
		Z: math.Cos(b.Yaw) * cosPitch,
	}
}
