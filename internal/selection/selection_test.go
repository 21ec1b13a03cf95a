package selection

import (
	"testing"

	"github.com/hsiaochiang/ExamWordPrep/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []models.WordEntry {
	return []models.WordEntry{
		{ID: 1, Word: "abandon", Page: 1, FrequencyGroup: []int{3, 5}},
		{ID: 2, Word: "Benefit", Page: 1, FrequencyGroup: []int{5}},
		{ID: 3, Word: "candidate", Page: 2, FrequencyGroup: []int{1}},
		{ID: 4, Word: "debate", Page: 3, FrequencyGroup: []int{3}},
		{ID: 5, Word: "zealous", Page: 4, FrequencyGroup: nil},
	}
}

func ids(words []models.WordEntry) []int {
	out := make([]int, 0, len(words))
	for _, w := range words {
		out = append(out, w.ID)
	}
	return out
}

func intPtr(v int) *int { return &v }

func TestFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cond models.SelectionCondition
		want []int
	}{
		{
			name: "page range",
			cond: models.SelectionCondition{Type: models.SelectionPageRange, Pages: &[2]int{1, 2}},
			want: []int{1, 2, 3},
		},
		{
			name: "page range without bounds defaults to everything",
			cond: models.SelectionCondition{Type: models.SelectionPageRange},
			want: []int{1, 2, 3, 4, 5},
		},
		{
			name: "page range with no matches",
			cond: models.SelectionCondition{Type: models.SelectionPageRange, Pages: &[2]int{10, 20}},
			want: []int{},
		},
		{
			name: "single page",
			cond: models.SelectionCondition{Type: models.SelectionSinglePage, Pages: &[2]int{2, 0}},
			want: []int{3},
		},
		{
			name: "single page without page returns everything",
			cond: models.SelectionCondition{Type: models.SelectionSinglePage},
			want: []int{1, 2, 3, 4, 5},
		},
		{
			name: "frequency group",
			cond: models.SelectionCondition{Type: models.SelectionFrequency, FrequencyGroup: intPtr(3)},
			want: []int{1, 4},
		},
		{
			name: "frequency group without level returns everything",
			cond: models.SelectionCondition{Type: models.SelectionFrequency},
			want: []int{1, 2, 3, 4, 5},
		},
		{
			name: "alphabet range is case-insensitive on the first letter",
			cond: models.SelectionCondition{Type: models.SelectionAlphabet, AlphabetRange: &[2]string{"a", "c"}},
			want: []int{1, 2, 3},
		},
		{
			name: "alphabet range without bounds defaults to a-z",
			cond: models.SelectionCondition{Type: models.SelectionAlphabet},
			want: []int{1, 2, 3, 4, 5},
		},
		{
			name: "custom list matches case-insensitively",
			cond: models.SelectionCondition{Type: models.SelectionCustomList, CustomWords: []string{"BENEFIT", "zealous"}},
			want: []int{2, 5},
		},
		{
			name: "empty custom list selects nothing",
			cond: models.SelectionCondition{Type: models.SelectionCustomList},
			want: []int{},
		},
		{
			name: "unknown type selects everything",
			cond: models.SelectionCondition{Type: "somethingElse"},
			want: []int{1, 2, 3, 4, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Filter(testCatalog(), tt.cond)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterExcludesEmptyWordsFromAlphabetRange(t *testing.T) {
	t.Parallel()

	catalog := []models.WordEntry{{ID: 1, Word: ""}, {ID: 2, Word: "apple"}}
	got := Filter(catalog, models.SelectionCondition{Type: models.SelectionAlphabet})

	assert.Equal(t, []int{2}, ids(got))
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("caps the result preserving catalog order", func(t *testing.T) {
		t.Parallel()

		got := Apply(testCatalog(), models.SelectionCondition{Type: models.SelectionPageRange, Pages: &[2]int{1, 4}}, 2)
		assert.Equal(t, []int{1, 2}, ids(got))
	})

	t.Run("page range [1,1] keeps exactly the page-1 words", func(t *testing.T) {
		t.Parallel()

		catalog := []models.WordEntry{
			{ID: 1, Word: "one", Page: 1},
			{ID: 2, Word: "two", Page: 1},
			{ID: 3, Word: "three", Page: 2},
		}
		got := Apply(catalog, models.SelectionCondition{Type: models.SelectionPageRange, Pages: &[2]int{1, 1}}, 25)
		assert.Equal(t, []int{1, 2}, ids(got))
	})

	t.Run("no cap when maxCount is zero", func(t *testing.T) {
		t.Parallel()

		got := Apply(testCatalog(), models.SelectionCondition{Type: models.SelectionPageRange}, 0)
		assert.Len(t, got, 5)
	})

	t.Run("output is a subsequence of the catalog", func(t *testing.T) {
		t.Parallel()

		catalog := testCatalog()
		got := Apply(catalog, models.SelectionCondition{Type: models.SelectionAlphabet, AlphabetRange: &[2]string{"a", "z"}}, 3)
		require.LessOrEqual(t, len(got), 3)

		idx := 0
		for _, w := range catalog {
			if idx < len(got) && got[idx].ID == w.ID {
				idx++
			}
		}
		assert.Equal(t, len(got), idx)
	})
}
