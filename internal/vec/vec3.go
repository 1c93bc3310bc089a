package vec

import "fmt"

// Vec3 представляет трехмерный вектор с целочисленными координатами.
// Используется и для координат чанков (в единицах чанков), и для
// абсолютных координат блоков.
type Vec3 struct {
	X int
	Y int
	Z int
}

// Zero возвращает нулевой вектор
func Zero() Vec3 {
	return Vec3{}
}

// Add складывает два вектора
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub вычитает вектор
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Scale умножает все координаты на скаляр
func (v Vec3) Scale(k int) Vec3 {
	return Vec3{X: v.X * k, Y: v.Y * k, Z: v.Z * k}
}

// DistanceSq возвращает квадрат расстояния до другого вектора
func (v Vec3) DistanceSq(other Vec3) int {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	return dx*dx + dy*dy + dz*dz
}

// Equals проверяет равенство векторов
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// ToChunkCoords преобразует абсолютные координаты блока в координаты чанка.
// Деление евклидово: -1 при size=16 попадает в чанк -1, а не 0.
func (v Vec3) ToChunkCoords(size int) Vec3 {
	return Vec3{
		X: FloorDiv(v.X, size),
		Y: FloorDiv(v.Y, size),
		Z: FloorDiv(v.Z, size),
	}
}

// LocalInChunk возвращает локальные координаты внутри чанка (всегда в [0, size))
func (v Vec3) LocalInChunk(size int) Vec3 {
	return Vec3{
		X: Mod(v.X, size),
		Y: Mod(v.Y, size),
		Z: Mod(v.Z, size),
	}
}

// String форматирует вектор для логов
func (v Vec3) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}

// FloorDiv выполняет деление с округлением вниз (b > 0)
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && (a < 0) {
		q--
	}
	return q
}

// Mod возвращает евклидов остаток, всегда неотрицательный (b > 0)
func Mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// Abs возвращает модуль целого числа
func Abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
