package trie

// keyIter walks a key in a trie's direction: first-to-last when forward is
// true, last-to-first when false. popLast removes and returns the rune that
// comes last in trie-direction (i.e. the one GetLastOnPath treats
// specially), leaving the iterator positioned over the rest of the key.
type keyIter struct {
	runes   []rune
	forward bool
	i, j    int // remaining window is runes[i:j]
}

func newKeyIter(forward bool, key []rune) *keyIter {
	return &keyIter{runes: key, forward: forward, i: 0, j: len(key)}
}

// next returns the next rune in trie-direction order, or (_, false) when
// exhausted.
func (k *keyIter) next() (rune, bool) {
	if k.i >= k.j {
		return 0, false
	}
	if k.forward {
		r := k.runes[k.i]
		k.i++
		return r, true
	}
	k.j--
	return k.runes[k.j], true
}

// popLast removes and returns the rune that is last in trie-direction
// order, without disturbing the rest of the window. Caller must ensure the
// key is non-empty.
func (k *keyIter) popLast() rune {
	if k.forward {
		k.j--
		return k.runes[k.j]
	}
	r := k.runes[k.i]
	k.i++
	return r
}

// skipDirectional drops the first n runes in trie-direction order from key,
// returning the remainder, or (nil, false) if fewer than n runes remain.
func skipDirectional(forward bool, key []rune, n int) ([]rune, bool) {
	if n > len(key) {
		return nil, false
	}
	if forward {
		return key[n:], true
	}
	return key[:len(key)-n], true
}
