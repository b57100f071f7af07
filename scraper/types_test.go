package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelease_AddJEP_DropsDuplicates(t *testing.T) {
	r := &Release{Version: "25"}

	r.AddJEP(JEP{Number: "456", Title: "Virtual Threads"})
	r.AddJEP(JEP{Number: "789", Title: "Structured Concurrency"})
	r.AddJEP(JEP{Number: "456", Title: "A different title"})

	require.Len(t, r.JEPs, 2)
	assert.Equal(t, "Virtual Threads", r.JEPs[0].Title)
	assert.Equal(t, "789", r.JEPs[1].Number)
}

func TestRelease_AddJEP_PreservesOrder(t *testing.T) {
	r := &Release{Version: "25"}
	for _, n := range []string{"3", "1", "2"} {
		r.AddJEP(JEP{Number: n})
	}

	require.Len(t, r.JEPs, 3)
	assert.Equal(t, "3", r.JEPs[0].Number)
	assert.Equal(t, "1", r.JEPs[1].Number)
	assert.Equal(t, "2", r.JEPs[2].Number)
}
