package world

// Render передаёт карту сеток рендереру: сначала освобождаются буферы
// выгруженных чанков (если рендерер реализует MeshReleaser), затем
// устаревшие сетки загружаются заново и для каждой непустой вызывается Draw.
// Вызывается после того, как тик завершил все изменения карт.
func (w *World) Render(r Renderer) (uploaded, drawn int) {
	if rel, ok := r.(MeshReleaser); ok {
		for _, coord := range w.released {
			rel.ReleaseMesh(coord)
		}
	}
	w.released = w.released[:0]

	for coord, m := range w.meshes {
		if m.Stale {
			r.UploadMesh(coord, m.Vertices, m.Indices)
			m.MarkUploaded()
			uploaded++
		}
		if !m.IsEmpty() {
			r.Draw(coord)
			drawn++
		}
	}
	return uploaded, drawn
}
