package answers

import (
	"fmt"

	"github.com/AshishSharma-0610/form-builder/internal/models"
)

// ClozeSlots tracks the words dropped into a cloze sentence. The
// sentence is split into alternating literal/placeholder segments; the
// odd split indices are the fillable slots and double as the answer
// keys, so re-rendering a stored answer puts every word back into its
// original slot.
type ClozeSlots struct {
	segments []string
	pool     []string
	words    map[int]string
}

func NewClozeSlots(opts models.ClozeOptions) *ClozeSlots {
	return &ClozeSlots{
		segments: models.SplitSentence(opts.Sentence),
		pool:     append([]string{}, opts.Blanks...),
		words:    map[int]string{},
	}
}

// Segments returns the alternating literal/placeholder split of the
// sentence.
func (s *ClozeSlots) Segments() []string {
	return append([]string{}, s.segments...)
}

// WordPool returns the draggable words. Words stay in the pool after
// use; nothing stops a respondent reusing one across slots.
func (s *ClozeSlots) WordPool() []string {
	return append([]string{}, s.pool...)
}

// Drop places a word into a slot, overwriting any previous word there.
func (s *ClozeSlots) Drop(slot int, word string) error {
	if !models.IsSlotIndex(s.segments, slot) {
		return fmt.Errorf("index %d is not a fillable slot", slot)
	}
	s.words[slot] = word
	return nil
}

// Word returns the word currently in the slot, if any.
func (s *ClozeSlots) Word(slot int) (string, bool) {
	w, ok := s.words[slot]
	return w, ok
}

// Restore replays a previously submitted answer into the slots.
func (s *ClozeSlots) Restore(answer models.ClozeAnswer) error {
	for slot, word := range answer {
		if err := s.Drop(slot, word); err != nil {
			return err
		}
	}
	return nil
}

// Answer reduces the slot state to the canonical answer: filled slots
// keyed by split index.
func (s *ClozeSlots) Answer() models.ClozeAnswer {
	answer := models.ClozeAnswer{}
	for slot, word := range s.words {
		answer[slot] = word
	}
	return answer
}
