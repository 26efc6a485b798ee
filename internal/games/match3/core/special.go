package core

// SpecialFor returns the special created by a pass that matched count cells.
func (r Rules) SpecialFor(count int) (Kind, bool) {
	switch {
	case count >= r.RainbowThreshold:
		return KindRainbow, true
	case count >= r.BombThreshold:
		return KindBomb, true
	}
	return KindEmpty, false
}

// BombArea returns the occupied cells of the 3x3 block centered on at,
// clipped to the board, including at itself.
func BombArea(b *Board, at Coord) []Coord {
	var out []Coord
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			c := at.Add(dr, dc)
			if b.InBounds(c) && !b.Get(c).IsEmpty() {
				out = append(out, c)
			}
		}
	}
	return out
}

// RainbowTargets returns every token of the given color plus the rainbow
// cell itself.
func RainbowTargets(b *Board, at Coord, color int) []Coord {
	out := b.Find(func(c Cell) bool { return c.IsToken() && c.Color == color })
	return append(out, at)
}
