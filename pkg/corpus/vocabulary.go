// Package corpus builds a vocabulary and sparse bag-of-words vectors from
// already normalized documents.
package corpus

import "strconv"

// Vocabulary maps tokens to dense integer ids. Ids are assigned in the order
// tokens are first seen and never change once assigned.
type Vocabulary struct {
	ids    map[string]int
	tokens []string
}

// BuildVocabulary assigns an id to every distinct token, scanning documents
// in input order and tokens in sequence order.
func BuildVocabulary(docs [][]string) *Vocabulary {
	v := &Vocabulary{ids: make(map[string]int)}
	for _, doc := range docs {
		for _, tok := range doc {
			v.add(tok)
		}
	}
	return v
}

func (v *Vocabulary) add(token string) int {
	if id, ok := v.ids[token]; ok {
		return id
	}
	id := len(v.tokens)
	v.ids[token] = id
	v.tokens = append(v.tokens, token)
	return id
}

// ID returns the id of token; ok is false when token is not in the
// vocabulary.
func (v *Vocabulary) ID(token string) (id int, ok bool) {
	id, ok = v.ids[token]
	return id, ok
}

// Token returns the token with the given id; ok is false for unknown ids.
func (v *Vocabulary) Token(id int) (token string, ok bool) {
	if id < 0 || id >= len(v.tokens) {
		return "", false
	}
	return v.tokens[id], true
}

// Len returns the number of distinct tokens.
func (v *Vocabulary) Len() int { return len(v.tokens) }

// Tokens returns all tokens ordered by id.
func (v *Vocabulary) Tokens() []string {
	return append([]string(nil), v.tokens...)
}

// Label returns the token for id, or "#id" when the id is unknown. It is
// meant for display only.
func (v *Vocabulary) Label(id int) string {
	if tok, ok := v.Token(id); ok {
		return tok
	}
	return "#" + strconv.Itoa(id)
}
