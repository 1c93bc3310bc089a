package block

import "sort"

// Регистр заполняется только из init() пакета implementations,
// после старта процесса он используется только на чтение.
var registry = make(map[BlockID]BlockBehavior)

// Register добавляет поведение блока в регистр
func Register(behavior BlockBehavior) {
	registry[behavior.ID()] = behavior
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

// TextureOf возвращает слой текстуры для блока.
// Для незарегистрированных блоков слоем служит сам ID.
func TextureOf(id BlockID) uint32 {
	if behavior, ok := registry[id]; ok {
		return behavior.Texture()
	}
	return uint32(id)
}

// Registered возвращает отсортированный список зарегистрированных ID
func Registered() []BlockID {
	ids := make([]BlockID, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// BlockID представляет идентификатор блока
type BlockID uint16

// IsAir сообщает, является ли блок воздухом
func (id BlockID) IsAir() bool {
	return id == AirBlockID
}

// Константы ID блоков
const (
	// Базовые типы блоков
	AirBlockID   BlockID = iota // 0 — единственное зарезервированное значение "пусто"
	StoneBlockID                // 1
	GrassBlockID                // 2
	WaterBlockID                // 3
	SandBlockID                 // 4
	DirtBlockID                 // 5
)
