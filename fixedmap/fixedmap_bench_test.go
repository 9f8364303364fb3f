package fixedmap

import (
	"fmt"
	"testing"
)

func BenchmarkMap_Put(b *testing.B) {
	m, err := New(make([]byte, 1<<16), 1024, 16, 8)
	if err != nil {
		b.Fatal(err)
	}
	keys := make([]string, 512)
	for i := range keys {
		keys[i] = fmt.Sprintf("bench-key-%d", i)
	}
	val := make([]byte, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := m.Put(keys[i%len(keys)], val); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMap_Get(b *testing.B) {
	m, err := New(make([]byte, 1<<16), 1024, 16, 8)
	if err != nil {
		b.Fatal(err)
	}
	keys := make([]string, 512)
	val := make([]byte, 8)
	for i := range keys {
		keys[i] = fmt.Sprintf("bench-key-%d", i)
		if err := m.Put(keys[i], val); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := m.Get(keys[i%len(keys)]); !ok {
			b.Fatal("missing key")
		}
	}
}
