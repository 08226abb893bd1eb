package token

var keywords = func() map[string]Kind {
	m := make(map[string]Kind, int(kwEnd-kwStart))
	for k := kwStart + 1; k < kwEnd; k++ {
		m[k.Text()] = k
	}
	return m
}()

// LookupKeyword returns the keyword kind for ident, if any.
// Ключевые слова регистрозависимые: "Self" и "self": разные токены.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

var puncts = func() map[string]Kind {
	m := make(map[string]Kind, int(punctEnd-punctStart))
	for k := punctStart + 1; k < punctEnd; k++ {
		m[k.Text()] = k
	}
	return m
}()

// LookupPunct maps the spelling of an operator or delimiter to its kind.
func LookupPunct(text string) (Kind, bool) {
	k, ok := puncts[text]
	return k, ok
}
