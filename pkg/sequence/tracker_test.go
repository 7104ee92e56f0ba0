package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_OnlyLastTokenIsCurrent(t *testing.T) {
	var tr Tracker

	first := tr.Issue(Key{Date: "2025-10-15"})
	second := tr.Issue(Key{Date: "2025-10-16"})

	assert.False(t, tr.IsCurrent(first))
	assert.True(t, tr.IsCurrent(second))
	assert.Greater(t, second.Seq, first.Seq)
}

func TestTracker_SameKeyReissueInvalidatesOlder(t *testing.T) {
	var tr Tracker
	key := Key{Date: "2025-10-15", SlotID: "1:30 PM - 2:00 PM"}

	first := tr.Issue(key)
	second := tr.Issue(key)

	assert.False(t, tr.IsCurrent(first))
	assert.True(t, tr.IsCurrent(second))
}

func TestTracker_ApplyIfCurrent(t *testing.T) {
	var tr Tracker

	stale := tr.Issue(Key{Date: "2025-10-15"})
	fresh := tr.Issue(Key{Date: "2025-10-16"})

	applied := ""
	assert.True(t, tr.ApplyIfCurrent(fresh, func() { applied = "fresh" }))
	assert.False(t, tr.ApplyIfCurrent(stale, func() { applied = "stale" }))
	assert.Equal(t, "fresh", applied)
}

func TestTracker_ZeroTokenNeverCurrent(t *testing.T) {
	var tr Tracker

	assert.False(t, tr.IsCurrent(Token{}))
	assert.False(t, tr.ApplyIfCurrent(Token{}, func() { t.Fatal("must not apply") }))
}

func TestTracker_ApplyIfLatestFor(t *testing.T) {
	var tr Tracker
	d1 := Key{Date: "2025-10-15"}
	d2 := Key{Date: "2025-10-16"}

	older := tr.Issue(d2)
	other := tr.Issue(d1)
	newer := tr.Issue(d2)

	assert.False(t, tr.ApplyIfLatestFor(older, nil, func() { t.Fatal("older token of the same key must not apply") }))

	applied := 0
	assert.True(t, tr.ApplyIfLatestFor(other, nil, func() { applied++ }))
	assert.True(t, tr.ApplyIfLatestFor(newer, nil, func() { applied++ }))
	assert.Equal(t, 2, applied)
}

func TestTracker_ApplyIfLatestFor_Rejected(t *testing.T) {
	var tr Tracker

	token := tr.Issue(Key{Date: "2025-10-15"})

	assert.False(t, tr.ApplyIfLatestFor(token, func() bool { return false }, func() { t.Fatal("must not apply") }))
	assert.False(t, tr.ApplyIfLatestFor(Token{}, nil, func() { t.Fatal("must not apply") }))
}
