package mesh

import (
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world"
	"github.com/annel0/voxel-engine/internal/world/block"
)

// Sampler возвращает блок по мировым координатам. Мешер использует его
// для проверки соседей, в том числе через границы чанков; незагруженные
// соседи обязаны разрешаться в воздух («открытая кромка»).
type Sampler func(worldX, worldY, worldZ int) block.BlockID

// Batch — геометрия одного чанка, слитая в один вызов отрисовки.
// Вершины лежат в мировом пространстве, по четыре на грань,
// треугольники задаются индексами.
type Batch struct {
	Positions []float32 // xyz на вершину
	Normals   []float32 // xyz на вершину
	UVs       []float32 // uv на вершину
	Indices   []uint32  // 6 индексов на грань
	FaceCount int
}

// Mesher строит геометрию чанков методом отсечения скрытых граней:
// для каждого непустого блока эмитится квад на каждую из шести граней,
// не закрытую твёрдым соседом.
type Mesher struct{}

// NewMesher создаёт новый мешер
func NewMesher() *Mesher {
	return &Mesher{}
}

// BuildChunk строит батч чанка, запрашивая соседей у менеджера мира.
// Чанк без единой открытой грани даёт nil — рисовать нечего, это не ошибка.
func (ms *Mesher) BuildChunk(m *world.Manager, coords vec.Vec2) *Batch {
	chunk := m.GetChunk(coords)
	if chunk == nil {
		return nil
	}
	blocks := chunk.SnapshotBlocks()
	return ms.Build(coords, &blocks, m.BlockAt)
}

// Build строит батч по массиву блоков чанка и сэмплеру соседей.
// Сэмплер используется только для ячеек за пределами чанка, внутренние
// соседи читаются из массива напрямую.
func (ms *Mesher) Build(coords vec.Vec2, blocks *[world.BlocksPerChunk]block.BlockID, sample Sampler) *Batch {
	baseX := coords.X * world.ChunkSize
	baseZ := coords.Z * world.ChunkSize

	batch := &Batch{}

	for y := 0; y < world.ChunkHeight; y++ {
		for z := 0; z < world.ChunkSize; z++ {
			for x := 0; x < world.ChunkSize; x++ {
				id := blocks[world.BlockIndex(x, y, z)]
				if id == block.AirBlockID {
					continue
				}

				for _, dir := range &faceTable {
					nx, ny, nz := x+dir.dx, y+dir.dy, z+dir.dz

					var neighbor block.BlockID
					if nx >= 0 && nx < world.ChunkSize && nz >= 0 && nz < world.ChunkSize &&
						ny >= 0 && ny < world.ChunkHeight {
						neighbor = blocks[world.BlockIndex(nx, ny, nz)]
					} else {
						neighbor = sample(baseX+nx, ny, baseZ+nz)
					}

					if block.IsSolid(neighbor) {
						continue
					}

					emitFace(batch, float32(baseX+x), float32(y), float32(baseZ+z), &dir, id)
				}
			}
		}
	}

	if batch.FaceCount == 0 {
		return nil
	}
	return batch
}

// emitFace добавляет в батч один квад грани
func emitFace(batch *Batch, cx, cy, cz float32, dir *faceDir, id block.BlockID) {
	base := uint32(len(batch.Positions) / 3)
	uv := faceUV(id, dir.role)

	// Углы тайла в порядке обхода вершин квада
	cornerUVs := [4][2]float32{
		{uv.U0, uv.V1},
		{uv.U1, uv.V1},
		{uv.U1, uv.V0},
		{uv.U0, uv.V0},
	}

	for i, corner := range dir.corners {
		batch.Positions = append(batch.Positions, cx+corner[0], cy+corner[1], cz+corner[2])
		batch.Normals = append(batch.Normals, dir.normal[0], dir.normal[1], dir.normal[2])
		batch.UVs = append(batch.UVs, cornerUVs[i][0], cornerUVs[i][1])
	}

	batch.Indices = append(batch.Indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
	batch.FaceCount++
}
