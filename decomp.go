package gf2

// VectorialDecomp splits every target into an immediate, a linear and a
// nonlinear part and returns the application X -> NL(X) + M*X + V reproducing
// targets on symbols. Targets must be simplified.
//
// Products, disjunctions and ESFs are wholly nonlinear. Returns an
// *UnknownSymbolError if a linear term is not in symbols.
func VectorialDecomp(symbols, targets Vector) (*App, error) {
	pos := make(map[uint32]int, len(symbols))
	for i, s := range symbols {
		if s.kind != KindSym {
			return nil, opErrorf(opDecomp, &WrongKindError{Want: KindSym, Got: s.kind})
		}
		pos[s.index] = i
	}

	m := NewMatrix(len(targets), len(symbols), Imm(false))
	imm, nl := NewVector(len(targets)), NewVector(len(targets))

	// linear sets the coefficient of symbol s in row i.
	linear := func(i int, s Node) error {
		j, ok := pos[s.index]
		if !ok {
			return opErrorf(opDecomp, &UnknownSymbolError{Symbol: s})
		}
		m.Set(i, j, Imm(true))
		return nil
	}

	for i, t := range targets {
		switch t.kind {
		case KindImm:
			imm[i] = t
		case KindSym:
			if err := linear(i, t); err != nil {
				return nil, err
			}
		case KindAdd:
			var args Args
			for _, a := range t.args {
				switch a.kind {
				case KindImm:
					imm[i] = Add(imm[i], a)
				case KindSym:
					if err := linear(i, a); err != nil {
						return nil, err
					}
				default:
					args.InsertDup(a.Clone())
				}
			}
			nl[i] = collapse(KindAdd, args)
		default:
			nl[i] = t.Clone()
		}
	}

	aff, err := NewAffApp(m, imm)
	if err != nil {
		return nil, err
	}
	return &App{NL: NewVectorApp(symbols, nl), Aff: aff}, nil
}
