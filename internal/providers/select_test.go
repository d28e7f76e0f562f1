package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func numbered(n int) []Chapter {
	out := make([]Chapter, n)
	for i := range out {
		out[i] = Chapter{Name: string(rune('a' + i))}
	}
	return out
}

func names(chs []Chapter) []string {
	out := make([]string, 0, len(chs))
	for _, c := range chs {
		out = append(out, c.Name)
	}
	return out
}

func TestFilterRange(t *testing.T) {
	all := numbered(5)

	assert.Equal(t, []string{"b", "c", "d"}, names(FilterRange(all, "2-4")))
	assert.Equal(t, []string{"a"}, names(FilterRange(all, " 1 - 1 ")))
	assert.Empty(t, FilterRange(all, "4-2"))
	assert.Empty(t, FilterRange(all, "0-2"))
	assert.Empty(t, FilterRange(all, "1-6"))
	assert.Empty(t, FilterRange(all, "x-2"))
	assert.Empty(t, FilterRange(all, "3"))
}

func TestFilterList(t *testing.T) {
	all := numbered(5)

	assert.Equal(t, []string{"e", "a", "c"}, names(FilterList(all, "5,1, 3")))
	assert.Equal(t, []string{"b"}, names(FilterList(all, "2,,9,x,0")))
	assert.Empty(t, FilterList(all, ""))
}

func TestFilterPrecedence(t *testing.T) {
	all := numbered(5)

	assert.Len(t, Filter(all, "", ""), 5)
	assert.Equal(t, []string{"a", "b"}, names(Filter(all, "1-2", "5")))
	assert.Equal(t, []string{"e"}, names(Filter(all, "", "5")))
}
