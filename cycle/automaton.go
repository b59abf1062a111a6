package cycle

// Builder accumulates keywords before compiling an immutable Machine. The
// miner calls Build repeatedly as new cycles are discovered, since a
// freshly registered keyword must start pruning the mining search itself
// before the next depth is attempted (spec.md §4.5).
type Builder struct {
	nodes []node
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{nodes: []node{{children: [4]int{-1, -1, -1, -1}}}}
}

// Register inserts keyword with zone z along a fresh or shared trie path.
// It reports false, keeping the existing zone, if that exact keyword was
// already registered.
func (b *Builder) Register(keyword []byte, z *Zone) bool {
	cur := 0
	for _, sym := range keyword {
		idx := symbolIndex(sym)
		if b.nodes[cur].children[idx] == -1 {
			b.nodes = append(b.nodes, node{children: [4]int{-1, -1, -1, -1}})
			b.nodes[cur].children[idx] = len(b.nodes) - 1
		}
		cur = b.nodes[cur].children[idx]
	}
	if b.nodes[cur].own != nil {
		return false
	}
	b.nodes[cur].own = z
	return true
}

// Build compiles failure links and flattened match outputs over the
// keywords registered so far, producing an immutable Machine. The Builder
// remains usable afterward.
func (b *Builder) Build() *Machine {
	nodes := make([]node, len(b.nodes))
	copy(nodes, b.nodes)

	queue := make([]int, 0, len(nodes))
	for i := 0; i < 4; i++ {
		c := nodes[0].children[i]
		if c == -1 {
			nodes[0].children[i] = 0
		} else {
			nodes[c].fail = 0
			queue = append(queue, c)
		}
	}
	nodes[0].output = nodes[0].own

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for i := 0; i < 4; i++ {
			v := nodes[u].children[i]
			if v == -1 {
				nodes[u].children[i] = nodes[nodes[u].fail].children[i]
				continue
			}
			nodes[v].fail = nodes[nodes[u].fail].children[i]
			queue = append(queue, v)
		}
		out := nodes[u].own
		if out == nil {
			out = nodes[nodes[u].fail].output
		}
		nodes[u].output = out
	}
	return &Machine{nodes: nodes}
}

func flipLR(s byte) byte {
	switch s {
	case 'l':
		return 'r'
	case 'r':
		return 'l'
	}
	return s
}

func flipUD(s byte) byte {
	switch s {
	case 'u':
		return 'd'
	case 'd':
		return 'u'
	}
	return s
}

func rotate90(s byte) byte {
	switch s {
	case 'u':
		return 'l'
	case 'd':
		return 'r'
	case 'l':
		return 'u'
	case 'r':
		return 'd'
	}
	return s
}

func reverseTime(s byte) byte {
	switch s {
	case 'u':
		return 'd'
	case 'd':
		return 'u'
	case 'l':
		return 'r'
	case 'r':
		return 'l'
	}
	return s
}

// RegisterCycle enriches b with the 16 symmetric variants of a raw
// zero-displacement move sequence: the 8 spatial images obtained by
// combining horizontal flip, vertical flip and 90-degree rotation, each
// paired with its time-reversal (spec.md §4.4). Only the first
// len/2+1 symbols of each variant are registered, exploiting time-reversal
// symmetry to recognize the other half implicitly; the zone recorded is
// the bounding box of the variant's remaining (second) half.
func RegisterCycle(b *Builder, moves []byte) {
	n := len(moves)
	if n == 0 {
		return
	}
	halfLen := n/2 + 1

	for lsign := 0; lsign <= 1; lsign++ {
		for csign := 0; csign <= 1; csign++ {
			for rot := 0; rot <= 1; rot++ {
				variant := make([]byte, n)
				for i, s := range moves {
					if lsign != 0 {
						s = flipLR(s)
					}
					if csign != 0 {
						s = flipUD(s)
					}
					if rot != 0 {
						s = rotate90(s)
					}
					variant[i] = s
				}
				reversed := make([]byte, n)
				for i, s := range variant {
					reversed[n-1-i] = reverseTime(s)
				}
				registerHalf(b, variant, halfLen)
				registerHalf(b, reversed, halfLen)
			}
		}
	}
}

// registerHalf registers full[:halfLen] with the bounding-box zone of the
// blank's cumulative row/column displacement across full[halfLen:].
func registerHalf(b *Builder, full []byte, halfLen int) {
	n := len(full)
	zone := &Zone{}
	dl, dc := 0, 0
	for i := halfLen; i < n; i++ {
		switch full[i] {
		case 'u':
			dl++
		case 'd':
			dl--
		case 'l':
			dc++
		case 'r':
			dc--
		}
		if dl < zone.LMin {
			zone.LMin = dl
		}
		if dl > zone.LMax {
			zone.LMax = dl
		}
		if dc < zone.CMin {
			zone.CMin = dc
		}
		if dc > zone.CMax {
			zone.CMax = dc
		}
	}
	b.Register(full[:halfLen], zone)
}
