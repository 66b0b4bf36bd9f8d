package triarb

// SymbolTable is a point-in-time mapping from Symbol to the (base, quote)
// asset pair it decomposes into. It is built once from an ExchangeInfo
// snapshot and never mutated afterward — the decomposition is fixed for
// the system's lifetime, per spec.md §3.
type SymbolTable struct {
	info map[Symbol]SymbolInfo
}

// NewSymbolTable builds a SymbolTable from already-validated symbol
// entries (see ExchangeInfo.ValidSymbols). Duplicate symbols overwrite
// earlier entries.
func NewSymbolTable(symbols []SymbolInfo) *SymbolTable {
	t := &SymbolTable{info: make(map[Symbol]SymbolInfo, len(symbols))}
	for _, s := range symbols {
		t.info[s.Symbol] = s
	}
	return t
}

// IsEmpty returns true if the table holds no symbols.
func (t *SymbolTable) IsEmpty() bool {
	return len(t.info) == 0
}

// Len returns the number of symbols in the table.
func (t *SymbolTable) Len() int {
	return len(t.info)
}

// Lookup returns the (base, quote) decomposition for symbol, and whether
// it is known to the table.
func (t *SymbolTable) Lookup(symbol Symbol) (base, quote Asset, ok bool) {
	info, ok := t.info[symbol]
	if !ok {
		return "", "", false
	}
	return info.BaseAsset, info.QuoteAsset, true
}

// Symbols returns every symbol known to the table, in no particular
// order.
func (t *SymbolTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(t.info))
	for s := range t.info {
		out = append(out, s)
	}
	return out
}
