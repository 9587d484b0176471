package argument

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_FirstRegisteredWins(t *testing.T) {
	reg := NewRegistry()
	first := NewStrategy("first", func(s string) (int, bool) { return 1, true })
	second := NewStrategy("second", func(s string) (int, bool) { return 2, true })
	Register(reg, first)
	Register(reg, second)

	found, ok := Find[int](reg)
	require.True(t, ok)
	assert.Same(t, first, found)

	all := FindAll[int](reg)
	require.Len(t, all, 2)
	assert.Same(t, first, all[0])
	assert.Same(t, second, all[1])
}

func TestRegistry_DuplicateSuppressed(t *testing.T) {
	reg := NewRegistry()
	Register(reg, Int)
	Register(reg, Int)
	assert.Len(t, FindAll[int](reg), 1)
}

func TestRegistry_Missing(t *testing.T) {
	reg := NewRegistry()
	_, ok := Find[time.Duration](reg)
	assert.False(t, ok)
	assert.Empty(t, FindAll[time.Duration](reg))
	_, ok = reg.Lookup(KeyOf[time.Duration]())
	assert.False(t, ok)

	assert.PanicsWithError(t, fmt.Sprintf("%s: time.Duration", ErrNoParser), func() {
		reg.MustLookup(KeyOf[time.Duration]())
	})
}

func TestRegistry_HostType(t *testing.T) {
	type world struct{ name string }
	worlds := map[string]*world{"overworld": {name: "overworld"}}
	reg := NewDefaultRegistry()
	Register(reg, Lookup("world", func(id string) (*world, bool) {
		w, ok := worlds[id]
		return w, ok
	}))

	w, ok := ParseWith[*world](NewArgument(0, "overworld"), reg)
	require.True(t, ok)
	assert.Equal(t, "overworld", w.name)

	_, ok = ParseWith[*world](NewArgument(0, "nether"), reg)
	assert.False(t, ok)
	assert.Contains(t, reg.Keys(), KeyOf[*world]())
}

func TestRegistry_Keys(t *testing.T) {
	reg := NewRegistry()
	Register(reg, String)
	Register(reg, Bool)
	keys := reg.Keys()
	require.Len(t, keys, 2)
	assert.Equal(t, "bool", keys[0].String())
	assert.Equal(t, "string", keys[1].String())
}

func TestRegistry_Concurrent(t *testing.T) {
	reg := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Register(reg, NewStrategy("int", func(s string) (int, bool) { return 0, true }))
		}()
		go func() {
			defer wg.Done()
			for _, strategy := range FindAll[int](reg) {
				assert.NotNil(t, strategy)
			}
		}()
	}
	wg.Wait()
	assert.Len(t, FindAll[int](reg), 20)
}

func TestParseWithOrFail(t *testing.T) {
	reg := NewRegistry()
	_, err := ParseWithOrFail[int](NewArgument(0, "1"), reg)
	assert.ErrorIs(t, err, ErrNoParser)

	Register(reg, Int)
	n, err := ParseWithOrFail[int](NewArgument(0, "1"), reg)
	assert.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = ParseWithOrFail[int](EmptyArgument(3), reg)
	assert.ErrorIs(t, err, ErrMissingArgument)
	assert.EqualError(t, err, "argument missing: argument 3 is missing")
}
