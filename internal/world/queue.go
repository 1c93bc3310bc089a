package world

import "github.com/annel0/voxelcore/internal/vec"

// LoadQueue — очередь координат, ожидающих генерации ландшафта.
// Порядок FIFO, проверка членства за O(1).
type LoadQueue struct {
	items   []vec.Vec3
	members map[vec.Vec3]struct{}
}

// NewLoadQueue создаёт пустую очередь
func NewLoadQueue() *LoadQueue {
	return &LoadQueue{members: make(map[vec.Vec3]struct{})}
}

// Len возвращает количество координат в очереди
func (q *LoadQueue) Len() int {
	return len(q.items)
}

// Contains проверяет, стоит ли координата в очереди
func (q *LoadQueue) Contains(coord vec.Vec3) bool {
	_, ok := q.members[coord]
	return ok
}

// Push добавляет координату в конец очереди. Дубликаты не добавляются.
func (q *LoadQueue) Push(coord vec.Vec3) bool {
	if q.Contains(coord) {
		return false
	}
	q.items = append(q.items, coord)
	q.members[coord] = struct{}{}
	return true
}

// PopFront извлекает до n координат из начала очереди
func (q *LoadQueue) PopFront(n int) []vec.Vec3 {
	if n > len(q.items) {
		n = len(q.items)
	}
	if n <= 0 {
		return nil
	}

	batch := make([]vec.Vec3, n)
	copy(batch, q.items[:n])

	rest := copy(q.items, q.items[n:])
	q.items = q.items[:rest]

	for _, c := range batch {
		delete(q.members, c)
	}
	return batch
}

// Remove убирает координату из очереди, сохраняя порядок остальных
func (q *LoadQueue) Remove(coord vec.Vec3) bool {
	if !q.Contains(coord) {
		return false
	}
	delete(q.members, coord)
	for i, c := range q.items {
		if c == coord {
			q.items = append(q.items[:i], q.items[i+1:]...)
			break
		}
	}
	return true
}

// Replace целиком заменяет содержимое очереди (дубликаты отбрасываются)
func (q *LoadQueue) Replace(coords []vec.Vec3) {
	q.items = q.items[:0]
	q.members = make(map[vec.Vec3]struct{}, len(coords))
	for _, c := range coords {
		q.Push(c)
	}
}

// Items возвращает копию содержимого очереди в текущем порядке
func (q *LoadQueue) Items() []vec.Vec3 {
	out := make([]vec.Vec3, len(q.items))
	copy(out, q.items)
	return out
}

// Clear очищает очередь
func (q *LoadQueue) Clear() {
	q.items = q.items[:0]
	q.members = make(map[vec.Vec3]struct{})
}
