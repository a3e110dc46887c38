// Package dictionary provides a ranked, indexed word list for the crossword
// fill solver: membership, substring containment, and gap-fit queries.
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"

	"golang.org/x/exp/slices"

	"crossgen/internal/domain"
)

// Word is a single dictionary entry.
type Word struct {
	Text    string
	Special bool
	Score   float64
}

// Dictionary is a ranked set of known words plus an inverted substring
// index. It is effectively immutable after Load except for two append-only
// caches (the substring index memoization and the known-impossible set),
// both safe to mutate under the single-goroutine search loop.
type Dictionary struct {
	words    []Word          // sorted by Score descending
	byText   map[string]*Word
	byLength map[int][]*Word
	index    *invertedIndex
	rng      *rand.Rand

	substringCache map[string][]string
	impossible     map[string]bool // substrings < 5 runes known to match nothing
	gapCache       map[gapKey][]string
}

// New creates an empty Dictionary. rng drives the per-word random scoring
// factor and must be seeded explicitly for deterministic tests.
func New(rng *rand.Rand) *Dictionary {
	return &Dictionary{
		byText:         make(map[string]*Word),
		byLength:       make(map[int][]*Word),
		index:          newInvertedIndex(),
		rng:            rng,
		substringCache: make(map[string][]string),
		impossible:     make(map[string]bool),
		gapCache:       make(map[gapKey][]string),
	}
}

// Load reads the special and ordinary word lists from two readers, one word
// per line, and builds the ranked word list plus inverted index. Special
// words score length^3; ordinary words score length * a per-word random
// factor drawn once, so ties break stochastically and special/long words are
// weighted upward.
func Load(rng *rand.Rand, special, ordinary io.Reader) (*Dictionary, error) {
	d := New(rng)
	if err := d.loadList(special, true); err != nil {
		return nil, fmt.Errorf("loading special word list: %w", err)
	}
	if err := d.loadList(ordinary, false); err != nil {
		return nil, fmt.Errorf("loading ordinary word list: %w", err)
	}
	d.finalize()
	return d, nil
}

func (d *Dictionary) loadList(r io.Reader, special bool) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		raw := domain.StripBlockGlyph(scanner.Text())
		word := domain.Fold(raw)
		if word == "" {
			continue
		}
		d.add(word, special)
	}
	return scanner.Err()
}

func (d *Dictionary) add(word string, special bool) {
	if _, exists := d.byText[word]; exists {
		return
	}
	var score float64
	if special {
		l := float64(len([]rune(word)))
		score = l * l * l
	} else {
		r := d.rng.Float64()
		if r == 0 {
			r = 0.01
		}
		score = r * float64(len([]rune(word)))
	}
	w := Word{Text: word, Special: special, Score: score}
	d.words = append(d.words, w)
	d.byText[word] = &d.words[len(d.words)-1] // re-pointed by finalize
}

// finalize sorts the word list by score descending and builds the
// length/text/inverted-index lookups. Called once after loading.
func (d *Dictionary) finalize() {
	slices.SortFunc(d.words, func(a, b Word) bool { return a.Score > b.Score })

	d.byLength = make(map[int][]*Word)
	for i := range d.words {
		w := &d.words[i]
		d.byText[w.Text] = w
		d.byLength[len([]rune(w.Text))] = append(d.byLength[len([]rune(w.Text))], w)
		d.index.add(w.Text)
	}
}

// Add registers a single word directly (used by tests and by callers that
// build a Dictionary without reading files).
func (d *Dictionary) Add(word string, special bool) {
	word = domain.Fold(word)
	if word == "" {
		return
	}
	d.add(word, special)
	d.finalize()
}

// Contains reports whether word (already folded, or will be folded) is a
// known dictionary entry.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.byText[domain.Fold(word)]
	return ok
}

// Get returns the dictionary entry for word, if any.
func (d *Dictionary) Get(word string) (Word, bool) {
	w, ok := d.byText[domain.Fold(word)]
	if !ok {
		return Word{}, false
	}
	return *w, true
}

// Size returns the number of distinct words loaded.
func (d *Dictionary) Size() int { return len(d.words) }

// Words returns all words ordered by score descending (the order the
// search loop should try them in).
func (d *Dictionary) Words() []Word { return d.words }

// ByLength returns all words of exactly the given rune length, score
// descending (dictionary-load order is preserved since d.words is already
// sorted and byLength is built from it in the same pass).
func (d *Dictionary) ByLength(n int) []*Word { return d.byLength[n] }

// ContainsSubstring returns every word containing sub as a literal
// substring, ranked score-descending. Queries of length > 1 intersect the
// per-letter inverted-index sets before the literal substring test; results
// are memoized, and substrings shorter than 5 runes that ever produced an
// empty result are remembered in a negative cache to short-circuit future
// identical queries.
func (d *Dictionary) ContainsSubstring(sub string) []string {
	if sub == "" {
		return nil
	}
	if cached, ok := d.substringCache[sub]; ok {
		return cached
	}
	short := len([]rune(sub)) < 5
	if short && d.impossible[sub] {
		return nil
	}

	candidates := d.index.candidatesFor(sub)
	var out []string
	for _, w := range d.words { // preserves score-descending order
		if !candidates[w.Text] {
			continue
		}
		if containsRunes(w.Text, sub) {
			out = append(out, w.Text)
		}
	}

	d.substringCache[sub] = out
	if short && len(out) == 0 {
		d.impossible[sub] = true
	}
	return out
}

type gapKey struct {
	pre, post string
	gap       int
}

// GapFit returns every word in which the literal pattern "pre" followed by
// exactly gap wildcard letters followed by "post" appears, sorted by score
// descending. Implemented by intersecting the index entries for pre and
// post and then filtering by the literal pattern.
func (d *Dictionary) GapFit(pre, post string, gap int) []string {
	key := gapKey{pre: pre, post: post, gap: gap}
	if cached, ok := d.gapCache[key]; ok {
		return cached
	}

	preSet := d.index.candidatesFor(pre)
	postSet := d.index.candidatesFor(post)

	var out []string
	for _, w := range d.words {
		if pre != "" && !preSet[w.Text] {
			continue
		}
		if post != "" && !postSet[w.Text] {
			continue
		}
		if matchesGap(w.Text, pre, post, gap) {
			out = append(out, w.Text)
		}
	}

	d.gapCache[key] = out
	return out
}

// matchesGap reports whether word contains pre, then exactly gap arbitrary
// runes, then post, contiguously.
func matchesGap(word, pre, post string, gap int) bool {
	wr := []rune(word)
	pr := []rune(pre)
	tr := []rune(post)
	need := len(pr) + gap + len(tr)
	for start := 0; start+need <= len(wr); start++ {
		if !runesEqual(wr[start:start+len(pr)], pr) {
			continue
		}
		tailStart := start + len(pr) + gap
		if runesEqual(wr[tailStart:tailStart+len(tr)], tr) {
			return true
		}
	}
	return false
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func containsRunes(word, sub string) bool {
	wr, sr := []rune(word), []rune(sub)
	if len(sr) > len(wr) {
		return false
	}
	for start := 0; start+len(sr) <= len(wr); start++ {
		if runesEqual(wr[start:start+len(sr)], sr) {
			return true
		}
	}
	return false
}
