package choose

import "github.com/samber/lo"

// cycleReplicas is how many times the menu is repeated in the seed sequence
// handed to the prompt engine. The engine only supports linear traversal
// with hard stops, so the replication is what makes navigation feel
// boundary-free: with the anchor placed in the third replica there is always
// at least one full copy of the menu above and below the cursor.
const cycleReplicas = 4

// anchorOffset returns the starting position within the replicated sequence
// for a menu of n entries whose default entry sits at index d. The anchor
// lands on the copy of the default that has exactly d entries above it and
// n-1-d below it inside its own replica.
//
// This arithmetic is the most off-by-one-prone spot in the package, which is
// why it lives in its own pure function with exhaustive tests.
func anchorOffset(n, d int) int {
	return 2*n + d
}

// buildCycle turns the menu entries into the seed sequence for the prompt
// engine: the decorated labels replicated cycleReplicas times, plus the
// anchor position corresponding to the entry at defaultIndex.
func buildCycle(entries []menuEntry, defaultIndex int) ([]string, int) {
	decorated := lo.Map(entries, func(e menuEntry, _ int) string { return e.decorated() })

	n := len(decorated)
	if defaultIndex < 0 || defaultIndex >= n {
		defaultIndex = 0
	}

	seq := make([]string, 0, cycleReplicas*n)
	for i := 0; i < cycleReplicas; i++ {
		seq = append(seq, decorated...)
	}
	return seq, anchorOffset(n, defaultIndex)
}

// resolveDefaultIndex finds the menu position of the default candidate.
// Defaults may be list-valued; only the first element counts. The default is
// matched against labels by exact equality, and an unknown or absent default
// falls back to the first entry.
func resolveDefaultIndex(labels []string, defaults []string) int {
	if len(defaults) == 0 {
		return 0
	}
	want := defaults[0]
	_, index, ok := lo.FindIndexOf(labels, func(label string) bool { return label == want })
	if !ok {
		return 0
	}
	return index
}
