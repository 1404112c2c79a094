package block

var registry = make(map[BlockID]BlockBehavior)

// Register добавляет поведение блока в регистр
func Register(id BlockID, behavior BlockBehavior) {
	registry[id] = behavior
}

// Get возвращает поведение для указанного ID
func Get(id BlockID) (BlockBehavior, bool) {
	behavior, exists := registry[id]
	return behavior, exists
}

// IsValidBlockID проверяет, является ли ID допустимым идентификатором блока
func IsValidBlockID(id BlockID) bool {
	_, exists := registry[id]
	return exists
}

// IsSolid возвращает true, если блок твёрдый (участвует в коллизиях и отрисовке).
// Неизвестный ID трактуется как пустота — защитный дефолт, а не ошибка.
func IsSolid(id BlockID) bool {
	behavior, exists := registry[id]
	if !exists {
		return false
	}
	return behavior.Solid()
}

// BlockID представляет идентификатор блока
type BlockID uint8

// Константы ID блоков
const (
	AirBlockID   BlockID = iota // 0 — универсальный «пустой» блок
	GrassBlockID                // 1
	DirtBlockID                 // 2
	StoneBlockID                // 3
	SandBlockID                 // 4
	WoodBlockID                 // 5
	BrickBlockID                // 6
)

// MaxBlockID — наибольший зарегистрированный ID, используется при валидации
// сериализованных данных.
const MaxBlockID = BrickBlockID
