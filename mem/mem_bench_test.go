package mem

import "testing"

func BenchmarkCopy(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			dst := make([]byte, tc.size)
			src := make([]byte, tc.size)
			fillPattern(src, 5)

			b.SetBytes(int64(tc.size))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				Copy(dst, src)
			}
		})
	}
}

func BenchmarkMoveOverlapping(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			buf := make([]byte, tc.size+8)
			fillPattern(buf, 5)

			b.SetBytes(int64(tc.size))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				Move(buf[8:8+tc.size], buf[:tc.size])
			}
		})
	}
}

func BenchmarkFill(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			buf := make([]byte, tc.size)

			b.SetBytes(int64(tc.size))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				Fill(buf, 0xAB)
			}
		})
	}
}

func BenchmarkCompare(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			x := make([]byte, tc.size)
			y := make([]byte, tc.size)
			fillPattern(x, 5)
			fillPattern(y, 5)

			b.SetBytes(int64(tc.size))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				Compare(x, y)
			}
		})
	}
}
