package dbg

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	a, b := new(int), new(int)
	name := Name(a)
	assert.NotEmpty(t, name)
	assert.Equal(t, name, Name(a))
	assert.Equal(t, "Ø", Name(nil))
	assert.Equal(t, "Ø", Name((*int)(nil)))

	t.Run("concurrent", func(t *testing.T) {
		var wg sync.WaitGroup
		names := make([]string, 8)
		for i := range names {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				names[i] = Name(b)
			}(i)
		}
		wg.Wait()
		for _, n := range names {
			assert.Equal(t, names[0], n)
		}
	})
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Happy", title("happy"))
	assert.Equal(t, "", title(""))
}
