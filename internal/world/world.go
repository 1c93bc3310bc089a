package world

import (
	"runtime"

	"github.com/annel0/voxelcore/internal/logging"
	"github.com/annel0/voxelcore/internal/vec"
	"github.com/annel0/voxelcore/internal/world/block"
	"github.com/google/uuid"
)

// StreamingParams — параметры загрузки и выгрузки чанков вокруг наблюдателя
type StreamingParams struct {
	LoadRadius   int     // Радиус загрузки по X и Y (в чанках)
	LoadRadiusZ  int     // Радиус загрузки по Z
	UnloadRadius int     // Горизонтальный радиус выгрузки
	UnloadSlackZ int     // Запас по Z сверх LoadRadiusZ перед выгрузкой
	BatchSize    int     // Чанков в одной параллельной пачке
	LoadRatio    float64 // Доля бюджета тика, отдаваемая загрузке

	DistanceBase int // Приоритет за близость: max(DistanceBase - d², 0)
	AlignWeight  int // Вес совпадения с направлением взгляда
	NearBonus    int // Бонус для ближайших чанков
	NearRadius   int // Радиус ближайших чанков по каждой оси
}

// DefaultStreamingParams возвращает значения по умолчанию
func DefaultStreamingParams() StreamingParams {
	return StreamingParams{
		LoadRadius:   20,
		LoadRadiusZ:  5,
		UnloadRadius: 40,
		UnloadSlackZ: 10,
		BatchSize:    30,
		LoadRatio:    0.7,
		DistanceBase: 2000,
		AlignWeight:  1000,
		NearBonus:    1000,
		NearRadius:   5,
	}
}

// Option настраивает World при создании
type Option func(*World)

// WithGenerator задаёт генератор ландшафта
func WithGenerator(g TerrainGenerator) Option {
	return func(w *World) { w.generator = g }
}

// WithMesher задаёт построитель сеток
func WithMesher(m Mesher) Option {
	return func(w *World) { w.mesher = m }
}

// WithClock задаёт источник времени для бюджетов
func WithClock(c Clock) Option {
	return func(w *World) { w.clock = c }
}

// WithMetrics задаёт приёмник метрик
func WithMetrics(m Metrics) Option {
	return func(w *World) { w.metrics = m }
}

// WithWorkers ограничивает число параллельных задач генерации и построения сеток
func WithWorkers(n int) Option {
	return func(w *World) {
		if n > 0 {
			w.workers = n
		}
	}
}

// WithStreaming задаёт параметры стриминга
func WithStreaming(p StreamingParams) Option {
	return func(w *World) { w.params = p }
}

// WithLogger задаёт логгер мира
func WithLogger(l *logging.Logger) Option {
	return func(w *World) { w.logger = l }
}

// WithID задаёт идентификатор мира (используется как метка метрик)
func WithID(id uuid.UUID) Option {
	return func(w *World) { w.id = id }
}

// World владеет картой чанков, картой сеток, множеством грязных чанков и
// очередью загрузки. Все изменения выполняются одним управляющим потоком;
// параллельные фазы только читают и пишут в собственные слоты результатов.
type World struct {
	id   uuid.UUID
	seed int64

	chunks map[vec.Vec3]*Chunk
	meshes map[vec.Vec3]*Mesh
	dirty  map[vec.Vec3]struct{}
	queue  *LoadQueue

	generator TerrainGenerator
	mesher    Mesher
	clock     Clock
	metrics   Metrics
	logger    *logging.Logger
	workers   int
	params    StreamingParams

	// Сетки выгруженных чанков, о которых рендерер ещё не уведомлён
	released []vec.Vec3

	tick     uint64
	quads    int
	vertices int
	observer vec.Vec3
	lastTick TickStats
}

// New создаёт пустой мир с указанным сидом
func New(seed int64, opts ...Option) *World {
	w := &World{
		id:      uuid.New(),
		seed:    seed,
		chunks:  make(map[vec.Vec3]*Chunk),
		meshes:  make(map[vec.Vec3]*Mesh),
		dirty:   make(map[vec.Vec3]struct{}),
		queue:   NewLoadQueue(),
		clock:   SystemClock{},
		metrics: NopMetrics{},
		workers: runtime.NumCPU(),
		params:  DefaultStreamingParams(),
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.logger == nil {
		w.logger = logging.GetWorldLogger()
	}
	if w.generator == nil {
		w.logger.Warn("Генератор ландшафта не задан, все чанки будут пустыми")
		w.generator = TerrainGeneratorFunc(func(vec.Vec3, int64) Blocks { return Blocks{} })
	}
	if w.mesher == nil {
		w.logger.Warn("Построитель сеток не задан, сетки будут пустыми")
		w.mesher = nopMesher{}
	}

	w.logger.Info("🌍 Мир %s создан (сид %d, потоков %d)", w.id, w.seed, w.workers)
	return w
}

type nopMesher struct{}

func (nopMesher) BuildMesh(*Chunk, Neighborhood) Geometry { return Geometry{} }

// ID возвращает идентификатор мира
func (w *World) ID() uuid.UUID {
	return w.id
}

// Seed возвращает сид генерации
func (w *World) Seed() int64 {
	return w.seed
}

// Params возвращает текущие параметры стриминга
func (w *World) Params() StreamingParams {
	return w.params
}

// ChunkAt возвращает загруженный чанк. Отсутствие — штатный результат.
func (w *World) ChunkAt(coord vec.Vec3) (*Chunk, bool) {
	c, ok := w.chunks[coord]
	return c, ok
}

// BlockAt возвращает блок по абсолютным координатам, если его чанк загружен
func (w *World) BlockAt(pos vec.Vec3) (block.BlockID, bool) {
	c, ok := w.chunks[pos.ToChunkCoords(Size)]
	if !ok {
		return block.AirBlockID, false
	}
	return c.GetFromWorldPos(pos), true
}

// Mesh возвращает сетку чанка
func (w *World) Mesh(coord vec.Vec3) (*Mesh, bool) {
	m, ok := w.meshes[coord]
	return m, ok
}

// ForEachMesh обходит карту сеток (порядок не определён)
func (w *World) ForEachMesh(fn func(coord vec.Vec3, m *Mesh)) {
	for coord, m := range w.meshes {
		fn(coord, m)
	}
}

func (w *World) ChunkCount() int { return len(w.chunks) }
func (w *World) MeshCount() int  { return len(w.meshes) }
func (w *World) DirtyCount() int { return len(w.dirty) }
func (w *World) QueueLen() int   { return w.queue.Len() }

// QueueItems возвращает копию очереди загрузки в порядке извлечения
func (w *World) QueueItems() []vec.Vec3 {
	return w.queue.Items()
}

// IsDirty сообщает, ждёт ли чанк перестроения сетки
func (w *World) IsDirty(coord vec.Vec3) bool {
	_, ok := w.dirty[coord]
	return ok
}

// IsQueued сообщает, стоит ли координата в очереди загрузки
func (w *World) IsQueued(coord vec.Vec3) bool {
	return w.queue.Contains(coord)
}

// Enqueue добавляет координаты в конец очереди загрузки,
// пропуская уже загруженные и уже стоящие в очереди.
func (w *World) Enqueue(coords ...vec.Vec3) int {
	added := 0
	for _, c := range coords {
		if _, loaded := w.chunks[c]; loaded {
			continue
		}
		if w.queue.Push(c) {
			added++
		}
	}
	return added
}

// LoadChunk синхронно генерирует и вставляет один чанк.
// Если чанк уже загружен, ничего не происходит.
func (w *World) LoadChunk(coord vec.Vec3) *Chunk {
	if c, ok := w.chunks[coord]; ok {
		return c
	}
	c := NewChunkFromBlocks(coord, w.generator.Generate(coord, w.seed))
	w.queue.Remove(coord)
	w.insert(c)
	return c
}

// InsertChunk вставляет (или заменяет) готовый чанк и помечает грязными
// его самого и загруженных соседей.
func (w *World) InsertChunk(c *Chunk) {
	w.queue.Remove(c.Coord)
	w.insert(c)
}

func (w *World) insert(c *Chunk) {
	w.chunks[c.Coord] = c
	w.MarkDirty(c.Coord)
	w.MarkNeighborsDirty(c.Coord)
}

// DropChunk удаляет чанк, его сетку и запись в множестве грязных одной операцией.
// Загруженные соседи помечаются грязными: их грани в сторону выгруженного
// чанка снова открыты. Рендерер, реализующий MeshReleaser, получит
// уведомление в следующем Render.
func (w *World) DropChunk(coord vec.Vec3) bool {
	if _, ok := w.chunks[coord]; !ok {
		return false
	}
	delete(w.chunks, coord)
	delete(w.dirty, coord)
	if m, ok := w.meshes[coord]; ok {
		w.quads -= m.QuadCount()
		w.vertices -= len(m.Vertices)
		delete(w.meshes, coord)
		w.released = append(w.released, coord)
	}
	w.MarkNeighborsDirty(coord)
	return true
}

// SetBlock меняет блок по абсолютным координатам в загруженном чанке.
// Чанк помечается грязным; если блок лежит на границе, грязным становится
// и соседний чанк по этой стороне.
func (w *World) SetBlock(pos vec.Vec3, id block.BlockID) bool {
	coord := pos.ToChunkCoords(Size)
	c, ok := w.chunks[coord]
	if !ok {
		return false
	}

	local := pos.LocalInChunk(Size)
	c.Set(local.X, local.Y, local.Z, id)
	w.MarkDirty(coord)

	for _, off := range faceOffsets {
		edge := false
		switch {
		case off.X == 1:
			edge = local.X == Size-1
		case off.X == -1:
			edge = local.X == 0
		case off.Y == 1:
			edge = local.Y == Size-1
		case off.Y == -1:
			edge = local.Y == 0
		case off.Z == 1:
			edge = local.Z == Size-1
		case off.Z == -1:
			edge = local.Z == 0
		}
		if edge {
			w.MarkDirty(coord.Add(off))
		}
	}
	return true
}

// faceOffsets — шесть соседей по граням
var faceOffsets = [6]vec.Vec3{
	{X: 1}, {X: -1},
	{Y: 1}, {Y: -1},
	{Z: 1}, {Z: -1},
}

// MarkDirty помечает загруженный чанк грязным
func (w *World) MarkDirty(coord vec.Vec3) bool {
	c, ok := w.chunks[coord]
	if !ok {
		return false
	}
	c.IsDirty = true
	w.dirty[coord] = struct{}{}
	return true
}

// MarkNeighborsDirty помечает грязными загруженных соседей по граням
func (w *World) MarkNeighborsDirty(coord vec.Vec3) int {
	n := 0
	for _, off := range faceOffsets {
		if w.MarkDirty(coord.Add(off)) {
			n++
		}
	}
	return n
}
