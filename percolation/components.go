package percolation

// OpenClusters finds all 4-connected components of open sites by BFS,
// without consulting the union-find structures.
// Components are listed in row-major order of their first site; the sites
// of each component are in BFS order from that site.
//
// Time:   O(n²).
// Memory: O(n²) for visited flags and output.
func (p *Percolation) OpenClusters() [][]Site {
	seen := make([]bool, len(p.open))
	var comps [][]Site

	for i0, isOpen := range p.open {
		if !isOpen || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var comp []Site

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ur, uc := p.coordinate(u)
			comp = append(comp, Site{Row: ur, Col: uc})
			for _, d := range neighborOffsets {
				vr, vc := ur+d[0], uc+d[1]
				if !p.InBounds(vr, vc) {
					continue
				}
				vi := p.index(vr, vc)
				if p.open[vi] && !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// TouchesTop reports whether any site of the cluster lies in row 1.
func TouchesTop(cluster []Site) bool {
	for _, s := range cluster {
		if s.Row == 1 {
			return true
		}
	}

	return false
}
