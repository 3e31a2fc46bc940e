package symboltable

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/zendesk/snowcrash/internal/blueprint"
)

func TestDefineAndLookup(t *testing.T) {
	st := New()
	st.Define("User", blueprint.Payload{Body: "{}"})

	got, ok := st.Lookup("User")
	assert.True(t, ok)
	assert.Equal(t, "{}", got.Body)
	assert.True(t, st.Has("User"))
	assert.False(t, st.Has("Other"))
}

func TestCopyIsIndependent(t *testing.T) {
	st := New()
	st.Define("User", blueprint.Payload{Body: "{}"})

	clone := st.Copy()
	clone.Define("User", blueprint.Payload{Body: "{\"changed\":true}"})

	original, _ := st.Lookup("User")
	copied, _ := clone.Lookup("User")
	assert.Equal(t, "{}", original.Body)
	assert.Equal(t, "{\"changed\":true}", copied.Body)
}

func TestCopyOfNilIsEmpty(t *testing.T) {
	var st *SymbolTable
	clone := st.Copy()
	assert.False(t, clone.Has("anything"))
}

func TestLookupOnNilTable(t *testing.T) {
	var st *SymbolTable
	_, ok := st.Lookup("User")
	assert.False(t, ok)
}
