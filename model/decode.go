package model

const (
	headerLen     = 6
	cellsPerChunk = 8
	bitsPerCell   = 4
)

// Decode unpacks a server maze payload. The first six integers are width,
// height, startX, startY, endX and endY; every following integer is a chunk
// holding the walls of eight cells, four bits each, least significant first
// in the order top, right, bottom, left. Header values are not validated and
// a missing header value reads as zero.
func Decode(data []int64) Maze {
	var header [headerLen]int
	for i := 0; i < headerLen && i < len(data); i++ {
		header[i] = int(data[i])
	}
	m := Maze{
		Width:  header[0],
		Height: header[1],
		StartX: header[2],
		StartY: header[3],
		EndX:   header[4],
		EndY:   header[5],
		Cells:  []Cell{},
	}
	if len(data) <= headerLen {
		return m
	}

	chunks := data[headerLen:]
	m.Cells = make([]Cell, 0, len(chunks)*cellsPerChunk)
	for _, chunk := range chunks {
		var walls [cellsPerChunk * bitsPerCell]bool
		for j := range walls {
			walls[j] = chunk&(1<<uint(j)) != 0
		}
		for j := 0; j < len(walls); j += bitsPerCell {
			m.Cells = append(m.Cells, Cell{
				Top:    walls[j],
				Right:  walls[j+1],
				Bottom: walls[j+2],
				Left:   walls[j+3],
			})
		}
	}
	return m
}
