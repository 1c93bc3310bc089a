package block

// BlockBehavior описывает статические свойства типа блока,
// которые нужны ядру мира: имя для отладки и слой текстуры для атласа.
type BlockBehavior interface {
	ID() BlockID
	Name() string
	// Texture возвращает индекс слоя в текстурном массиве
	Texture() uint32
}
