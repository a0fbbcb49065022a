package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalizeName verifies whitespace collapsing and trimming.
func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Plain", "Goblin", "Goblin"},
		{"LeadingTrailing", "  Goblin  ", "Goblin"},
		{"InternalRun", "Goblin    King", "Goblin King"},
		{"Newline", "Goblin\nKing", "Goblin King"},
		{"TabsAndNewlines", " \tGoblin \n King\t", "Goblin King"},
		{"WhitespaceOnly", " \n\t ", ""},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.in))
		})
	}
}

// TestBuildSourceMap verifies row filtering and last-wins duplicates.
func TestBuildSourceMap(t *testing.T) {
	t.Run("SkipsNonBooleanAndBlankRows", func(t *testing.T) {
		rows := []SourceRow{
			{Value: nil, Name: "Header"},        // no checkbox
			{Value: "TRUE", Name: "Goblin"},     // string, not a genuine bool
			{Value: 1, Name: "Orc"},             // number, not a bool
			{Value: true, Name: ""},             // blank name
			{Value: true, Name: "   \n "},       // whitespace-only name
			{Value: true, Name: "Troll"},        // valid
			{Value: false, Name: " Dire  Wolf"}, // valid, normalized
		}

		src := BuildSourceMap(rows)
		assert.Equal(t, map[string]bool{
			"Troll":     true,
			"Dire Wolf": false,
		}, src)
	})

	t.Run("DuplicateNamesLastWins", func(t *testing.T) {
		rows := []SourceRow{
			{Value: true, Name: "Goblin"},
			{Value: false, Name: "Goblin"},
			{Value: false, Name: "Goblin\nKing"},
			{Value: true, Name: "Goblin King"},
		}

		src := BuildSourceMap(rows)
		assert.Equal(t, map[string]bool{
			"Goblin":      false,
			"Goblin King": true,
		}, src)
	})

	t.Run("CaseSensitiveKeys", func(t *testing.T) {
		rows := []SourceRow{
			{Value: true, Name: "goblin"},
			{Value: false, Name: "Goblin"},
		}

		src := BuildSourceMap(rows)
		assert.Len(t, src, 2)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		assert.Empty(t, BuildSourceMap(nil))
	})
}

// TestDiffTarget_ScenarioA covers the basic mismatch/match/absent split.
func TestDiffTarget_ScenarioA(t *testing.T) {
	src := map[string]bool{"Goblin": true, "Orc": false}
	rows := []TargetRow{
		{Value: false, Name: "Goblin"}, // mismatch -> update
		{Value: false, Name: "Orc"},    // already matches
		{Value: true, Name: "Troll"},   // absent from source
	}

	updates := DiffTarget(src, rows, 1)
	require.Len(t, updates, 1)
	assert.Equal(t, Update{Row: 1, Value: true}, updates[0])

	batches := GroupBatches(updates)
	require.Len(t, batches, 1)
	assert.Equal(t, Batch{StartRow: 1, Values: []bool{true}}, batches[0])
}

// TestDiffTarget_FormulaInviolability ensures formula rows are never
// updated, even when their value differs from the source.
func TestDiffTarget_FormulaInviolability(t *testing.T) {
	src := map[string]bool{"Goblin": true, "Orc": true}
	rows := []TargetRow{
		{Value: false, Name: "Goblin"},
		{Value: false, Name: "Orc", Formula: true}, // scenario B
	}

	updates := DiffTarget(src, rows, 1)
	require.Len(t, updates, 1)
	assert.Equal(t, 1, updates[0].Row)

	for _, u := range updates {
		assert.False(t, rows[u.Row-1].Formula, "formula row must never receive an update")
	}
}

// TestDiffTarget_NormalizationInvariance covers scenario E: names differing
// only in whitespace placement refer to the same entry.
func TestDiffTarget_NormalizationInvariance(t *testing.T) {
	src := BuildSourceMap([]SourceRow{
		{Value: true, Name: "Goblin King"},
	})

	rows := []TargetRow{
		{Value: false, Name: "  Goblin\n King  "},
	}

	updates := DiffTarget(src, rows, 1)
	require.Len(t, updates, 1)
	assert.Equal(t, Update{Row: 1, Value: true}, updates[0])
}

// TestDiffTarget_Idempotence verifies that a target already matching the
// source produces no updates.
func TestDiffTarget_Idempotence(t *testing.T) {
	src := map[string]bool{"Goblin": true, "Orc": false}
	rows := []TargetRow{
		{Value: false, Name: "Goblin"},
		{Value: true, Name: "Orc"},
	}

	updates := DiffTarget(src, rows, 1)
	require.Len(t, updates, 2)

	// Apply the updates to the snapshot and diff again.
	for _, u := range updates {
		rows[u.Row-1].Value = u.Value
	}
	assert.Empty(t, DiffTarget(src, rows, 1))
}

// TestDiffTarget_NonBooleanTargetState verifies that a non-boolean current
// value (blank cell, string) counts as a mismatch rather than a match.
func TestDiffTarget_NonBooleanTargetState(t *testing.T) {
	src := map[string]bool{"Goblin": false}
	rows := []TargetRow{
		{Value: nil, Name: "Goblin"},
	}

	updates := DiffTarget(src, rows, 5)
	require.Len(t, updates, 1)
	assert.Equal(t, Update{Row: 5, Value: false}, updates[0])
}

// TestDiffTarget_DuplicateRowsUpdatedIndependently ensures every row
// carrying the same name is compared against the same source value.
func TestDiffTarget_DuplicateRowsUpdatedIndependently(t *testing.T) {
	src := map[string]bool{"Goblin": true}
	rows := []TargetRow{
		{Value: false, Name: "Goblin"},
		{Value: true, Name: "Goblin"},
		{Value: false, Name: "Goblin"},
	}

	updates := DiffTarget(src, rows, 1)
	require.Len(t, updates, 2)
	assert.Equal(t, Update{Row: 1, Value: true}, updates[0])
	assert.Equal(t, Update{Row: 3, Value: true}, updates[1])
}

// TestDiffTarget_FirstRowOffset verifies row indices honour the caller's
// first data row.
func TestDiffTarget_FirstRowOffset(t *testing.T) {
	src := map[string]bool{"Goblin": true}
	rows := []TargetRow{
		{Value: false, Name: "Goblin"},
	}

	updates := DiffTarget(src, rows, 4)
	require.Len(t, updates, 1)
	assert.Equal(t, 4, updates[0].Row)
}

// TestGroupBatches covers scenarios C and D plus completeness/maximality.
func TestGroupBatches(t *testing.T) {
	t.Run("EmptyInput", func(t *testing.T) {
		assert.Empty(t, GroupBatches(nil))
		assert.Empty(t, GroupBatches([]Update{}))
	})

	t.Run("SingleUpdate", func(t *testing.T) {
		batches := GroupBatches([]Update{{Row: 7, Value: true}})
		require.Len(t, batches, 1)
		assert.Equal(t, Batch{StartRow: 7, Values: []bool{true}}, batches[0])
	})

	t.Run("AllContiguous", func(t *testing.T) {
		batches := GroupBatches([]Update{
			{Row: 2, Value: true},
			{Row: 3, Value: false},
			{Row: 4, Value: true},
		})
		require.Len(t, batches, 1)
		assert.Equal(t, Batch{StartRow: 2, Values: []bool{true, false, true}}, batches[0])
	})

	t.Run("GapSplitsBatches", func(t *testing.T) {
		// Scenario C: rows 3,4,5 and 9.
		batches := GroupBatches([]Update{
			{Row: 3, Value: true},
			{Row: 4, Value: false},
			{Row: 5, Value: true},
			{Row: 9, Value: false},
		})
		require.Len(t, batches, 2)
		assert.Equal(t, Batch{StartRow: 3, Values: []bool{true, false, true}}, batches[0])
		assert.Equal(t, Batch{StartRow: 9, Values: []bool{false}}, batches[1])
	})

	t.Run("UnsortedInput", func(t *testing.T) {
		batches := GroupBatches([]Update{
			{Row: 9, Value: false},
			{Row: 4, Value: false},
			{Row: 3, Value: true},
			{Row: 5, Value: true},
		})
		require.Len(t, batches, 2)
		assert.Equal(t, 3, batches[0].StartRow)
		assert.Equal(t, []bool{true, false, true}, batches[0].Values)
		assert.Equal(t, 9, batches[1].StartRow)
	})

	t.Run("CompletenessAndMaximality", func(t *testing.T) {
		updates := []Update{
			{Row: 1, Value: true},
			{Row: 2, Value: false},
			{Row: 10, Value: true},
			{Row: 11, Value: true},
			{Row: 12, Value: false},
			{Row: 20, Value: true},
		}

		batches := GroupBatches(updates)

		// Union of batch rows equals exactly the input row set.
		covered := make(map[int]bool)
		for _, b := range batches {
			require.NotEmpty(t, b.Values, "no batch may be empty")
			for i := range b.Values {
				row := b.StartRow + i
				assert.False(t, covered[row], "batches must be disjoint")
				covered[row] = true
			}
		}
		assert.Len(t, covered, len(updates))
		for _, u := range updates {
			assert.True(t, covered[u.Row])
		}

		// Ascending and maximal: no two adjacent batches can be merged.
		for i := 1; i < len(batches); i++ {
			assert.Greater(t, batches[i].StartRow, batches[i-1].EndRow()+1,
				"adjacent batches must not be mergeable")
		}
	})
}

// TestZip verifies the fail-fast contract on mismatched parallel slices.
func TestZip(t *testing.T) {
	t.Run("SourceOK", func(t *testing.T) {
		rows, err := ZipSource([]any{true, "x"}, []string{"Goblin", "Orc"})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, SourceRow{Value: true, Name: "Goblin"}, rows[0])
	})

	t.Run("SourceMismatch", func(t *testing.T) {
		_, err := ZipSource([]any{true}, []string{"Goblin", "Orc"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dimension mismatch")
	})

	t.Run("TargetOK", func(t *testing.T) {
		rows, err := ZipTarget([]any{true}, []string{"Goblin"}, []bool{false})
		require.NoError(t, err)
		assert.Equal(t, []TargetRow{{Value: true, Name: "Goblin"}}, rows)
	})

	t.Run("TargetMismatch", func(t *testing.T) {
		_, err := ZipTarget([]any{true, false}, []string{"Goblin", "Orc"}, []bool{false})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dimension mismatch")

		_, err = ZipTarget([]any{true}, []string{"Goblin", "Orc"}, []bool{false})
		require.Error(t, err)
	})
}

// TestFullPass runs the whole pipeline the way the dispatcher does.
func TestFullPass(t *testing.T) {
	origin := []SourceRow{
		{Value: nil, Name: "Name"}, // header
		{Value: true, Name: "Goblin"},
		{Value: false, Name: "Orc"},
		{Value: true, Name: "Goblin King"},
		{Value: true, Name: "Dragon"},
	}

	target := []TargetRow{
		{Value: nil, Name: "Name"},                       // header, blank state
		{Value: false, Name: "Goblin"},                   // row 2: flip to true
		{Value: false, Name: "Orc"},                      // row 3: matches
		{Value: false, Name: " Goblin\nKing "},           // row 4: flip to true
		{Value: false, Name: "Dragon", Formula: true},    // row 5: protected
		{Value: true, Name: "Basilisk"},                  // row 6: not in source
		{Value: "yes", Name: "Goblin", Formula: false},   // row 7: string state, flip
	}

	src := BuildSourceMap(origin)
	updates := DiffTarget(src, target, 1)
	batches := GroupBatches(updates)

	require.Len(t, updates, 3)
	assert.Equal(t, []Update{
		{Row: 2, Value: true},
		{Row: 4, Value: true},
		{Row: 7, Value: true},
	}, updates)

	require.Len(t, batches, 3)
	assert.Equal(t, 2, batches[0].StartRow)
	assert.Equal(t, 4, batches[1].StartRow)
	assert.Equal(t, 7, batches[2].StartRow)
}
