package fixedmap

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCapacityFromSize(t *testing.T) {
	t.Run("int,int", func(t *testing.T) {
		sizeOfEntry := unsafe.Sizeof(entry[int, int]{})

		tests := []struct {
			name string
			size uintptr
			want int
		}{
			{"zero", 0, 0},
			{"less than one entry", sizeOfEntry - 1, 0},
			{"exactly one entry", sizeOfEntry, 1},
			{"one and a half entries", sizeOfEntry + sizeOfEntry/2, 1},
			{"twenty entries", sizeOfEntry * 20, 20},
			{"one cache line", 64, int(64 / sizeOfEntry)},
			{"1KB", 1024, int(1024 / sizeOfEntry)},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got := CapacityFromSize[int, int](tt.size)
				require.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("string,string", func(t *testing.T) {
		sizeOfEntry := unsafe.Sizeof(entry[string, string]{})

		got := CapacityFromSize[string, string](sizeOfEntry * 5)
		require.Equal(t, 5, got)
	})

	t.Run("struct{},struct{}", func(t *testing.T) {
		// Zero-sized pairs have no per-entry cost to divide by.
		got := CapacityFromSize[struct{}, struct{}](64)
		require.Equal(t, 0, got)
	})

	t.Run("int,struct{}", func(t *testing.T) {
		sizeOfEntry := unsafe.Sizeof(entry[int, struct{}]{})

		got := CapacityFromSize[int, struct{}](sizeOfEntry * 3)
		require.Equal(t, 3, got)
	})

	t.Run("usage with New", func(t *testing.T) {
		sizeOfEntry := unsafe.Sizeof(entry[int, int]{})

		capacity := CapacityFromSize[int, int](sizeOfEntry * 12)
		require.Equal(t, 12, capacity)

		fm := New[int, int](capacity)
		require.Equal(t, 12, fm.Cap())
	})
}
