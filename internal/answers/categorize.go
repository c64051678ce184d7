// Package answers holds the interactive answer state for each question
// type and reduces it to the canonical answer shape submitted with a
// response.
package answers

import (
	"fmt"

	"github.com/AshishSharma-0610/form-builder/internal/models"
)

// UnplacedBucket is the virtual bucket holding items the respondent
// has not categorized yet. It is never part of the submitted answer.
const UnplacedBucket = "uncategorized"

// CategorizeBoard tracks which bucket each item currently sits in. All
// items start unplaced; an item belongs to at most one bucket at a
// time.
type CategorizeBoard struct {
	categories []string
	buckets    map[string][]string
}

func NewCategorizeBoard(opts models.CategorizeOptions) *CategorizeBoard {
	buckets := make(map[string][]string, len(opts.Categories)+1)
	for _, c := range opts.Categories {
		buckets[c] = []string{}
	}
	buckets[UnplacedBucket] = append([]string{}, opts.Items...)

	return &CategorizeBoard{
		categories: append([]string{}, opts.Categories...),
		buckets:    buckets,
	}
}

// Place moves an item into a bucket, removing it from wherever it
// currently resides. Re-placing an item into its current bucket is a
// no-op, so an item never appears twice.
func (b *CategorizeBoard) Place(item, category string) error {
	if _, ok := b.buckets[category]; !ok {
		return fmt.Errorf("unknown bucket %q", category)
	}
	current, ok := b.bucketOf(item)
	if !ok {
		return fmt.Errorf("unknown item %q", item)
	}
	if current == category {
		return nil
	}

	b.buckets[current] = removeString(b.buckets[current], item)
	b.buckets[category] = append(b.buckets[category], item)
	return nil
}

// Bucket returns the bucket the item currently sits in.
func (b *CategorizeBoard) Bucket(item string) (string, bool) {
	return b.bucketOf(item)
}

// Items returns the items currently in the given bucket, in placement
// order.
func (b *CategorizeBoard) Items(bucket string) []string {
	return append([]string{}, b.buckets[bucket]...)
}

// Answer reduces the board to the canonical answer: item to bucket
// name, omitting items still unplaced.
func (b *CategorizeBoard) Answer() models.CategorizeAnswer {
	answer := models.CategorizeAnswer{}
	for _, category := range b.categories {
		for _, item := range b.buckets[category] {
			answer[item] = category
		}
	}
	return answer
}

func (b *CategorizeBoard) bucketOf(item string) (string, bool) {
	for bucket, items := range b.buckets {
		for _, it := range items {
			if it == item {
				return bucket, true
			}
		}
	}
	return "", false
}

func removeString(list []string, s string) []string {
	kept := list[:0]
	for _, v := range list {
		if v != s {
			kept = append(kept, v)
		}
	}
	return kept
}
