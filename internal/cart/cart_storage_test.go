package cart_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage(t *testing.T) {
	t.Run("round_trips_the_line_list", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart.json")
		storage := cart.NewFileStorage(path)

		lines := []cart.Line{
			{ID: "Pizza Margherita-medium-120000", Name: "Pizza Margherita", UnitPrice: 120000, Size: "medium", Quantity: 2},
			{ID: "Taco Crispy-45000", Name: "Taco Crispy", UnitPrice: 45000, Quantity: 3},
		}
		require.NoError(t, storage.Save(lines))

		got, err := storage.Load()
		require.NoError(t, err)
		assert.Equal(t, lines, got)
	})

	t.Run("missing_file_loads_as_empty", func(t *testing.T) {
		storage := cart.NewFileStorage(filepath.Join(t.TempDir(), "nope.json"))
		got, err := storage.Load()
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("corrupt_file_returns_an_error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := cart.NewFileStorage(path).Load()
		assert.Error(t, err)
	})

	t.Run("save_overwrites_previous_state", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart.json")
		storage := cart.NewFileStorage(path)

		require.NoError(t, storage.Save([]cart.Line{{ID: "a", Name: "a", Quantity: 1}}))
		require.NoError(t, storage.Save(nil))

		got, err := storage.Load()
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
