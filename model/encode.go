package model

// Encode packs a maze into the server payload format read by Decode.
// Cells past Width*Height are dropped and the last chunk is zero padded.
func Encode(m Maze) []int64 {
	cells := m.Cells
	if n := m.Meaningful(); len(cells) > n {
		cells = cells[:n]
	}
	chunks := (len(cells) + cellsPerChunk - 1) / cellsPerChunk
	data := make([]int64, headerLen, headerLen+chunks)
	data[0], data[1] = int64(m.Width), int64(m.Height)
	data[2], data[3] = int64(m.StartX), int64(m.StartY)
	data[4], data[5] = int64(m.EndX), int64(m.EndY)

	for c := 0; c < chunks; c++ {
		var chunk uint32
		for k := 0; k < cellsPerChunk; k++ {
			i := c*cellsPerChunk + k
			if i >= len(cells) {
				break
			}
			chunk |= cells[i].bits() << uint(k*bitsPerCell)
		}
		data = append(data, int64(chunk))
	}
	return data
}

func (c Cell) bits() uint32 {
	var b uint32
	if c.Top {
		b |= 1
	}
	if c.Right {
		b |= 1 << 1
	}
	if c.Bottom {
		b |= 1 << 2
	}
	if c.Left {
		b |= 1 << 3
	}
	return b
}
