package hybriddeque

import (
	"strconv"
	"testing"
)

func BenchmarkDequeInsertLastRemoveFirst(b *testing.B) {
	for _, bs := range []int{4, 64, 512} {
		b.Run("block"+strconv.Itoa(bs), func(b *testing.B) {
			d, _ := New[int](&Options{BlockSize: bs})

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = d.InsertLast(i)
				if d.Len() > 1024 {
					d.RemoveFirst()
				}
			}
		})
	}
}

func BenchmarkDequeFingerprint(b *testing.B) {
	d, _ := New[int](&Options{BlockSize: 64})
	for i := 0; i < 1024; i++ {
		_ = d.InsertLast(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.Fingerprint()
	}
}
