package block

// FaceRole определяет логическую роль грани блока при выборе тайла атласа
type FaceRole int

const (
	FaceTop FaceRole = iota
	FaceSide
	FaceBottom
)

// Tile задаёт позицию тайла в сетке текстурного атласа (колонка, строка)
type Tile struct {
	U int
	V int
}

// BlockBehavior определяет поведение блока: участие в коллизиях
// и выбор тайлов атласа для граней. Блоки без различия граней
// возвращают один и тот же тайл для всех ролей.
type BlockBehavior interface {
	ID() BlockID
	Name() string
	Solid() bool
	Tile(role FaceRole) Tile
}
