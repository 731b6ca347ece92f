package sand

// Step advances old by one tick and returns the resulting grid. Rules only
// read from old; every committed cell is written to a fresh Air-filled grid
// in row-major order. When two cells target the same position the one
// processed later wins and the earlier one is lost.
func Step(old *Grid) *Grid {
	next := old.CloneEmpty()
	for y := 0; y < old.h; y++ {
		for x := 0; x < old.w; x++ {
			c := old.cells[old.index(x, y)]
			if c.Empty() {
				continue
			}
			nx, ny := x, y
			if r := c.Kind.movement(); r != nil {
				if dx, dy, moved := r(old, x, y, &c); moved {
					nx, ny = dx, dy
				}
			}
			next.SetCell(nx, ny, c)
		}
	}
	return next
}

func (k Kind) movement() rule {
	if !k.Valid() {
		return nil
	}
	return materials[k].rule
}
