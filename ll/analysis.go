package ll

// LLAnalysis is an object for grammar analysis (compute FIRST and FOLLOW sets).
// Sets are computed once, when the analysis is created, and are read-only
// thereafter.
type LLAnalysis struct {
	g      *Grammar
	first  map[string]*SymbolSet
	follow map[string]*SymbolSet
	sweeps [2]int // number of fixed-point sweeps for FIRST and FOLLOW
}

// Analysis creates an analysis object for a grammar and computes the FIRST
// and FOLLOW sets of all of its symbols.
func Analysis(g *Grammar) *LLAnalysis {
	ga := &LLAnalysis{
		g:      g,
		first:  make(map[string]*SymbolSet),
		follow: make(map[string]*SymbolSet),
	}
	ga.computeFirst()
	ga.computeFollow()
	tracer().Infof("analysis of %s: FIRST after %d sweeps, FOLLOW after %d sweeps",
		g.Name, ga.sweeps[0], ga.sweeps[1])
	return ga
}

// Grammar returns the grammar this analysis is for.
func (ga *LLAnalysis) Grammar() *Grammar {
	return ga.g
}

// First returns the FIRST set of a symbol. For a terminal t it is { t }.
// For the epsilon symbol and for symbols unknown to the grammar, the empty set
// is returned. The set returned is a copy.
func (ga *LLAnalysis) First(sym string) *SymbolSet {
	if f, ok := ga.first[sym]; ok {
		return f.Copy()
	}
	return NewSymbolSet()
}

// Follow returns the FOLLOW set of a non-terminal. For all other symbols,
// the empty set is returned. The set returned is a copy.
func (ga *LLAnalysis) Follow(nt string) *SymbolSet {
	if f, ok := ga.follow[nt]; ok {
		return f.Copy()
	}
	return NewSymbolSet()
}

// FirstOfSequence computes the terminals which may start a sentence derived from
// alternative a. It returns true as the second value if a may vanish, i.e. if
// a is empty, starts with epsilon, or every symbol of a may derive epsilon.
// Epsilon itself is never part of the set returned.
func (ga *LLAnalysis) FirstOfSequence(a Alternative) (*SymbolSet, bool) {
	return firstOfSequence(ga.first, a, ga.g.epsilon)
}

// firstOfSequence scans a from left to right, collecting non-epsilon FIRST
// members of each symbol. The scan stops at the first symbol whose FIRST set
// lacks epsilon. An epsilon symbol in the middle of a has an empty FIRST set
// and stops the scan as well.
func firstOfSequence(first map[string]*SymbolSet, a Alternative, eps string) (*SymbolSet, bool) {
	set := NewSymbolSet()
	if len(a) == 0 || a[0] == eps {
		return set, true
	}
	for i, sym := range a {
		f := first[sym]
		set.Union(f, eps)
		if !f.Contains(eps) {
			break
		}
		if i == len(a)-1 {
			return set, true
		}
	}
	return set, false
}

func (ga *LLAnalysis) computeFirst() {
	eps := ga.g.epsilon
	for _, t := range ga.g.Terminals() {
		ga.first[t] = NewSymbolSet(t)
	}
	for _, nt := range ga.g.NonTerminals() {
		ga.first[nt] = NewSymbolSet()
	}
	changed := true
	for changed {
		changed = false
		ga.sweeps[0]++
		ga.g.EachNonTerminal(func(nt string, alts []Alternative) {
			for _, a := range alts {
				set, vanishes := firstOfSequence(ga.first, a, eps)
				if ga.first[nt].Union(set) {
					changed = true
				}
				if vanishes && ga.first[nt].Add(eps) {
					changed = true
				}
			}
		})
		tracer().Debugf("FIRST sweep #%d, changed = %v", ga.sweeps[0], changed)
	}
}

func (ga *LLAnalysis) computeFollow() {
	eps := ga.g.epsilon
	for _, nt := range ga.g.NonTerminals() {
		ga.follow[nt] = NewSymbolSet()
	}
	if start := ga.g.Start(); start != "" {
		if _, ok := ga.follow[start]; !ok {
			ga.follow[start] = NewSymbolSet()
		}
		ga.follow[start].Add(EndMarker)
	}
	changed := true
	for changed {
		changed = false
		ga.sweeps[1]++
		ga.g.EachNonTerminal(func(lhs string, alts []Alternative) {
			for _, a := range alts {
				for i, sym := range a {
					if !ga.g.IsNonTerminal(sym) {
						continue
					}
					if i == len(a)-1 {
						if ga.follow[sym].Union(ga.follow[lhs]) {
							changed = true
						}
						continue
					}
					next := ga.first[a[i+1]]
					if ga.follow[sym].Union(next, eps) {
						changed = true
					}
					if next.Contains(eps) && ga.follow[sym].Union(ga.follow[lhs]) {
						changed = true
					}
				}
			}
		})
		tracer().Debugf("FOLLOW sweep #%d, changed = %v", ga.sweeps[1], changed)
	}
}
