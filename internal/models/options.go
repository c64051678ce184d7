package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ===== CATEGORIZE =====

// CategorizeOptions describes a drag-into-bucket question: a list of
// named categories, a list of draggable items, and the author's
// intended item-to-category mapping (a subset of items may be left
// unmapped).
type CategorizeOptions struct {
	Categories     []string          `json:"categories"`
	Items          []string          `json:"items"`
	ItemCategories map[string]string `json:"itemCategories"`
}

func NewCategorizeOptions() *CategorizeOptions {
	return &CategorizeOptions{
		Categories:     []string{},
		Items:          []string{},
		ItemCategories: map[string]string{},
	}
}

func (o *CategorizeOptions) QuestionType() QuestionType { return Categorize }

// AddCategory appends a category. Names are trimmed and must be unique.
func (o *CategorizeOptions) AddCategory(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("category name is empty")
	}
	for _, c := range o.Categories {
		if c == name {
			return fmt.Errorf("category %q already exists", name)
		}
	}
	o.Categories = append(o.Categories, name)
	return nil
}

// RemoveCategory drops the category and clears any item assignments
// that pointed at it.
func (o *CategorizeOptions) RemoveCategory(name string) {
	kept := o.Categories[:0]
	for _, c := range o.Categories {
		if c != name {
			kept = append(kept, c)
		}
	}
	o.Categories = kept

	for item, cat := range o.ItemCategories {
		if cat == name {
			delete(o.ItemCategories, item)
		}
	}
}

// AddItem appends a draggable item. Items are trimmed and must be unique.
func (o *CategorizeOptions) AddItem(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("item name is empty")
	}
	for _, it := range o.Items {
		if it == name {
			return fmt.Errorf("item %q already exists", name)
		}
	}
	o.Items = append(o.Items, name)
	return nil
}

// RemoveItem drops the item and its category assignment, if any.
func (o *CategorizeOptions) RemoveItem(name string) {
	kept := o.Items[:0]
	for _, it := range o.Items {
		if it != name {
			kept = append(kept, it)
		}
	}
	o.Items = kept
	delete(o.ItemCategories, name)
}

// AssignItem records the author's intended category for an item. Both
// the item and the category must already exist.
func (o *CategorizeOptions) AssignItem(item, category string) error {
	if !containsString(o.Items, item) {
		return fmt.Errorf("unknown item %q", item)
	}
	if !containsString(o.Categories, category) {
		return fmt.Errorf("unknown category %q", category)
	}
	if o.ItemCategories == nil {
		o.ItemCategories = map[string]string{}
	}
	o.ItemCategories[item] = category
	return nil
}

// ClearItem removes the item's category assignment.
func (o *CategorizeOptions) ClearItem(item string) {
	delete(o.ItemCategories, item)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// ===== CLOZE =====

// ClozeOptions describes a fill-in-the-blank question. Blanks is always
// derived from Sentence ({...} placeholders in left-to-right order) and
// is recomputed on every sentence change, never authored independently.
type ClozeOptions struct {
	Sentence string   `json:"sentence"`
	Blanks   []string `json:"blanks"`
}

func NewClozeOptions(sentence string) *ClozeOptions {
	return &ClozeOptions{
		Sentence: sentence,
		Blanks:   DeriveBlanks(sentence),
	}
}

func (o *ClozeOptions) QuestionType() QuestionType { return Cloze }

// SetSentence replaces the sentence and rederives the blanks.
func (o *ClozeOptions) SetSentence(sentence string) {
	o.Sentence = sentence
	o.Blanks = DeriveBlanks(sentence)
}

// UnmarshalJSON rederives blanks from the decoded sentence so stored or
// client-supplied blanks can never go stale.
func (o *ClozeOptions) UnmarshalJSON(data []byte) error {
	var raw struct {
		Sentence string `json:"sentence"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	o.SetSentence(raw.Sentence)
	return nil
}

// ===== COMPREHENSION =====

// MCQOptionCount is the fixed number of choices per MCQ.
const MCQOptionCount = 4

// MCQQuestion is one multiple-choice question attached to a passage.
type MCQQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correctOption"`
}

// ComprehensionOptions describes a reading-comprehension question: a
// passage followed by an ordered list of 4-choice MCQs.
type ComprehensionOptions struct {
	Passage      string        `json:"passage"`
	MCQQuestions []MCQQuestion `json:"mcqQuestions"`
}

func NewComprehensionOptions() *ComprehensionOptions {
	return &ComprehensionOptions{
		MCQQuestions: []MCQQuestion{},
	}
}

func (o *ComprehensionOptions) QuestionType() QuestionType { return Comprehension }

func (o *ComprehensionOptions) SetPassage(passage string) {
	o.Passage = passage
}

// AddMCQ appends a multiple-choice question. The editor only enables
// the add button once all four options are filled in; the same arity
// rules are enforced here.
func (o *ComprehensionOptions) AddMCQ(question string, options []string, correctOption int) error {
	if strings.TrimSpace(question) == "" {
		return fmt.Errorf("mcq question text is empty")
	}
	if len(options) != MCQOptionCount {
		return fmt.Errorf("mcq requires exactly %d options, got %d", MCQOptionCount, len(options))
	}
	for i, opt := range options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("mcq option %d is empty", i)
		}
	}
	if correctOption < 0 || correctOption >= MCQOptionCount {
		return fmt.Errorf("correct option index %d out of range", correctOption)
	}

	o.MCQQuestions = append(o.MCQQuestions, MCQQuestion{
		Question:      question,
		Options:       append([]string(nil), options...),
		CorrectOption: correctOption,
	})
	return nil
}
