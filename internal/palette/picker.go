// Package palette chooses a title colour from a scheme that stays readable
// on the scheme's own background.
package palette

import (
	"math/rand/v2"

	"wtthemes/internal/contrast"
	"wtthemes/internal/domain"
)

// Picker is not safe for concurrent use when built with its own source.
type Picker struct {
	rnd *rand.Rand
}

// NewPicker returns a picker drawing from rnd, or from the global source when
// rnd is nil.
func NewPicker(rnd *rand.Rand) *Picker {
	return &Picker{rnd: rnd}
}

// Pick returns the value of a random title slot whose contrast against the
// background exceeds contrast.AA. When none does, the black slot is returned.
// A nil theme yields "".
func (p *Picker) Pick(t *domain.Theme) string {
	if t == nil {
		return ""
	}

	slots := domain.TitleSlots()
	fallback := slots[0]
	p.shuffle(slots)

	for _, s := range slots {
		if Accessible(t, s) {
			return t.Colour(s)
		}
	}
	return t.Colour(fallback)
}

func (p *Picker) shuffle(slots []domain.Slot) {
	swap := func(i, j int) { slots[i], slots[j] = slots[j], slots[i] }
	if p == nil || p.rnd == nil {
		rand.Shuffle(len(slots), swap)
		return
	}
	p.rnd.Shuffle(len(slots), swap)
}

// Accessible reports whether slot s of t passes contrast.AA on t's background.
func Accessible(t *domain.Theme, s domain.Slot) bool {
	ratio, err := contrast.Ratio(t.Colour(s), t.Background)
	return err == nil && ratio > contrast.AA
}

// AccessibleSlots lists the qualifying title slots in their fixed order.
func AccessibleSlots(t *domain.Theme) []domain.Slot {
	if t == nil {
		return nil
	}

	var out []domain.Slot
	for _, s := range domain.TitleSlots() {
		if Accessible(t, s) {
			out = append(out, s)
		}
	}
	return out
}
