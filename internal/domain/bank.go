package domain

// Legacy bank layout
const (
	MaxBanks = 9
	// BankCutoff is the last bank whose cursor advances on a "next track" request
	BankCutoff = 4
	// RandomPoolBanks is how many leading banks form the legacy random pool
	RandomPoolBanks = 5
)

// DefaultBankCapacities are the per-bank sizes of the legacy sound library (banks 1..9)
var DefaultBankCapacities = [MaxBanks]int{19, 18, 7, 4, 3, 25, 25, 25, 25}

// Legacy bank names
const (
	BankGeneral = iota + 1
	BankChat
	BankHappy
	BankSad
	BankWhistle
	BankScream
	BankLeia
	BankSing
	BankMusic
)

// BankTable converts legacy (bank, track) addresses into flat track numbers and
// remembers the last track played in each bank. Index 0 is unused: bank 0 means
// the track is already flat.
type BankTable struct {
	capacity [MaxBanks + 1]int
	cursor   [MaxBanks + 1]int
	cutoff   int
}

// NewBankTable creates a table with the default legacy capacities
func NewBankTable() *BankTable {
	return NewBankTableWithCapacities(DefaultBankCapacities)
}

// NewBankTableWithCapacities creates a table with custom bank sizes
func NewBankTableWithCapacities(capacities [MaxBanks]int) *BankTable {
	t := &BankTable{cutoff: BankCutoff}
	for i, c := range capacities {
		t.capacity[i+1] = max(c, 1)
	}
	return t
}

// Reset returns every cursor to the unset state
func (t *BankTable) Reset() {
	t.cursor = [MaxBanks + 1]int{}
}

// Capacity returns the number of tracks in bank (0 for an invalid bank)
func (t *BankTable) Capacity(bank int) int {
	if bank < 1 || bank > MaxBanks {
		return 0
	}
	return t.capacity[bank]
}

// Cursor returns the last resolved track in bank (0 when unset)
func (t *BankTable) Cursor(bank int) int {
	if bank < 1 || bank > MaxBanks {
		return 0
	}
	return t.cursor[bank]
}

// Cursors returns a copy of the cursors for banks 1..9
func (t *BankTable) Cursors() []int {
	out := make([]int, MaxBanks)
	copy(out, t.cursor[1:])
	return out
}

// Offset returns the number of tracks that precede bank in the flat numbering
func (t *BankTable) Offset(bank int) int {
	offset := 0
	for b := 1; b < bank && b <= MaxBanks; b++ {
		offset += t.capacity[b]
	}
	return offset
}

// Flatten resolves a (bank, track) address to a flat 1-based track number,
// clamped to ceiling. Track 0 asks for "the next one": banks up to the cutoff
// advance their cursor and wrap, later banks always restart at 1. An explicit
// track is remembered as the bank's cursor so a later "next" continues from it.
// Addresses outside the table are dropped (ok == false) rather than clamped.
func (t *BankTable) Flatten(bank, track int, ceiling uint16) (flat uint16, ok bool) {
	if bank < 0 || bank > MaxBanks || track < 0 {
		return 0, false
	}

	if bank == 0 {
		return clampFlat(track, ceiling), true
	}

	capacity := t.capacity[bank]
	if track > capacity {
		return 0, false
	}

	resolved := track
	switch {
	case track != 0:
		t.cursor[bank] = min(track, capacity)
	case bank <= t.cutoff:
		t.cursor[bank]++
		if t.cursor[bank] > capacity {
			t.cursor[bank] = 1
		}
		resolved = t.cursor[bank]
	default:
		resolved = 1
	}

	return clampFlat(t.Offset(bank)+resolved, ceiling), true
}

// PoolSize is the number of tracks in the legacy random pool (banks 1..RandomPoolBanks)
func (t *BankTable) PoolSize() int {
	return t.Offset(RandomPoolBanks + 1)
}

// FromPool maps a 1-based draw from the random pool to its bank and in-bank track
func (t *BankTable) FromPool(n int) (bank, track int) {
	if n < 1 {
		n = 1
	}
	for b := 1; b <= RandomPoolBanks; b++ {
		if n <= t.capacity[b] {
			return b, n
		}
		n -= t.capacity[b]
	}
	return RandomPoolBanks, t.capacity[RandomPoolBanks]
}

func clampFlat(track int, ceiling uint16) uint16 {
	if ceiling == 0 {
		ceiling = DefaultMaxTrack
	}
	if track < 1 {
		return 1
	}
	if track > int(ceiling) {
		return ceiling
	}
	return uint16(track)
}
