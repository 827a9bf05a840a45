package cave

// PruneRegions fills every region smaller than minArea with solid ground and
// returns the survivors in their original order together with the number of
// cells filled. A minArea of zero changes nothing.
func PruneRegions(g *Grid, regions []Region, minArea int) ([]Region, int) {
	if minArea <= 0 {
		return regions, 0
	}

	kept := make([]Region, 0, len(regions))
	filled := 0
	for _, r := range regions {
		if r.Area() >= minArea {
			kept = append(kept, r)
			continue
		}
		for _, c := range r.Cells {
			g.Set(c.X, c.Y, true)
		}
		filled += r.Area()
	}
	return kept, filled
}
