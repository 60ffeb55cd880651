package cache

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_LRU_AddGet(t *testing.T) {
	c := NewLRU(3)

	c.Add("chat:-1001:bill", "账单 ...")
	c.Add("chat:-1001:summary", "汇总 ...")

	assert.Equal(t, "账单 ...", c.Get("chat:-1001:bill"))
	assert.Equal(t, "汇总 ...", c.Get("chat:-1001:summary"))
	assert.Nil(t, c.Get("user:42:bill"))
	assert.Equal(t, 2, c.Len())
}

func Test_LRU_AddSameKeyReplacesValue(t *testing.T) {
	c := NewLRU(3)

	c.Add("k", "v1")
	c.Add("k", "v2")

	assert.Equal(t, "v2", c.Get("k"))
	assert.Equal(t, 1, c.Len())
}

func Test_LRU_EvictsOldestWhenFull(t *testing.T) {
	c := NewLRU(2)

	c.Add("a", 1)
	c.Add("b", 2)
	// Обращение к "a" делает самым старым "b".
	c.Get("a")
	c.Add("c", 3)

	assert.Equal(t, 1, c.Get("a"))
	assert.Nil(t, c.Get("b"))
	assert.Equal(t, 3, c.Get("c"))
	assert.Equal(t, 2, c.Len())
}

func Test_LRU_Remove(t *testing.T) {
	c := NewLRU(3)

	c.Add("k", "v")
	c.Remove("k")
	// Повторное удаление безопасно.
	c.Remove("k")

	assert.Nil(t, c.Get("k"))
	assert.Equal(t, 0, c.Len())
}

func Test_LRU_ClearDropsAllKeys(t *testing.T) {
	c := NewLRU(3)

	c.Add("user:42:summary", "汇总 ...")
	c.Add("chat:-1001:summary", "汇总 ...")
	c.Clear()

	assert.Nil(t, c.Get("user:42:summary"))
	assert.Nil(t, c.Get("chat:-1001:summary"))
	assert.Equal(t, 0, c.Len())

	// Кэш остается рабочим после сброса.
	c.Add("k", "v")
	assert.Equal(t, "v", c.Get("k"))
}

// Параллельные чтения тоже передвигают элементы очереди,
// поэтому Get должен брать полную блокировку (ловится под -race).
func Test_LRU_ConcurrentGet(t *testing.T) {
	c := NewLRU(10)
	for i := 0; i < 10; i++ {
		c.Add("k"+strconv.Itoa(i), i)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				c.Get("k" + strconv.Itoa(i%10))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, c.Len())
}
