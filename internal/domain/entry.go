package domain

// Entry is one cleaned dictionary row: a lowercase headword and the ordered
// tokens of its definition.
type Entry struct {
	Name   string
	Tokens []string
}

// Bucket maps headwords of one letter file to their definition tokens.
type Bucket map[string][]string

// Put stores e in the bucket and reports whether an earlier entry with the
// same headword was overwritten.
func (b Bucket) Put(e Entry) (replaced bool) {
	_, replaced = b[e.Name]
	tokens := e.Tokens
	if tokens == nil {
		tokens = []string{}
	}
	b[e.Name] = tokens
	return replaced
}
