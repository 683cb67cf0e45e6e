package observable_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"moneybox/internal/observable"
)

func TestValue_GetReturnsLastSet(t *testing.T) {
	v := observable.New(1)
	require.Equal(t, 1, v.Get())

	v.Set(2)
	v.Set(3)
	require.Equal(t, 3, v.Get())
}

func TestValue_BindIsNotRetroactive(t *testing.T) {
	v := observable.New("initial")
	v.Set("before bind")

	var got []string
	v.Bind(func(s string) { got = append(got, s) })
	require.Empty(t, got)

	v.Set("after bind")
	require.Equal(t, []string{"after bind"}, got)
}

func TestValue_NoDeduplication(t *testing.T) {
	v := observable.New(false)

	var got []bool
	v.Bind(func(b bool) { got = append(got, b) })

	v.Set(true)
	v.Set(true)
	v.Set(false)
	require.Equal(t, []bool{true, true, false}, got)
}

func TestValue_MultipleSubscribersInBindOrder(t *testing.T) {
	v := observable.New(0)

	var order []string
	v.Bind(func(int) { order = append(order, "presentation") })
	v.Bind(func(int) { order = append(order, "test") })

	v.Set(7)
	require.Equal(t, []string{"presentation", "test"}, order)
}

func TestValue_Unbind(t *testing.T) {
	v := observable.New(0)

	var a, b int
	unbindA := v.Bind(func(n int) { a = n })
	v.Bind(func(n int) { b = n })

	v.Set(1)
	unbindA()
	unbindA() // idempotent
	v.Set(2)

	require.Equal(t, 1, a)
	require.Equal(t, 2, b)
}

func TestValue_SubscriberMayReadValue(t *testing.T) {
	v := observable.New(0)

	var seen int
	v.Bind(func(int) { seen = v.Get() })

	v.Set(42)
	require.Equal(t, 42, seen)
}

func TestValue_ConcurrentSetters(t *testing.T) {
	v := observable.New(0)

	var mu sync.Mutex
	calls := 0
	v.Bind(func(int) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			v.Set(n)
		}(i)
	}
	wg.Wait()

	require.Equal(t, 50, calls)
}
