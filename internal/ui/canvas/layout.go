package canvas

// Demand is the space a widget asks for along one axis. Max < 0 means unbounded.
type Demand struct {
	Min int
	Max int
}

func Exact(n int) Demand   { return Demand{Min: n, Max: n} }
func AtLeast(n int) Demand { return Demand{Min: n, Max: -1} }

// Widget is anything that can be drawn into a window.
type Widget interface {
	SpaceDemand() (width Demand, height Demand)
	Draw(win Window)
}

func (d Demand) room(size int) int {
	if d.Max < 0 {
		return -1
	}
	if size >= d.Max {
		return 0
	}
	return d.Max - size
}

// LayoutLinearly splits available cells between demands. Minimums are served
// in order first; the remainder goes to entries with positive weight, in
// proportion to the weight and capped at their max. Slack that no weighted
// entry can take stays unassigned.
func LayoutLinearly(available int, demands []Demand, weights []float64) []int {
	sizes := make([]int, len(demands))
	if available <= 0 {
		return sizes
	}

	left := available
	for i, d := range demands {
		take := d.Min
		if take < 0 {
			take = 0
		}
		if take > left {
			take = left
		}
		sizes[i] = take
		left -= take
	}

	weight := func(i int) float64 {
		if i < len(weights) && weights[i] > 0 {
			return weights[i]
		}
		return 0
	}
	eligible := func(i int) bool {
		return weight(i) > 0 && demands[i].room(sizes[i]) != 0
	}

	for left > 0 {
		total := 0.0
		for i := range demands {
			if eligible(i) {
				total += weight(i)
			}
		}
		if total == 0 {
			break
		}

		assigned := 0
		for i := range demands {
			if !eligible(i) {
				continue
			}
			share := int(float64(left) * weight(i) / total)
			if room := demands[i].room(sizes[i]); room > 0 && share > room {
				share = room
			}
			sizes[i] += share
			assigned += share
		}
		if assigned == 0 {
			// Rounding left fewer cells than eligible entries.
			for i := range demands {
				if assigned == left {
					break
				}
				if eligible(i) {
					sizes[i]++
					assigned++
				}
			}
		}
		left -= assigned
	}
	return sizes
}
