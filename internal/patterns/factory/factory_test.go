package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBurger(t *testing.T) {
	cases := []struct {
		kind     string
		wantName string
		contains string
	}{
		{"basic", "basic burger", "regular bun, patty"},
		{"Standard", "standard burger", "cheese"},
		{" premium ", "premium burger", "caramelized onions"},
	}
	for _, c := range cases {
		b, err := NewBurger(c.kind)
		require.NoError(t, err, c.kind)
		assert.Equal(t, c.wantName, b.Name())
		assert.Contains(t, b.Prepare(), c.contains)
	}
}

func TestNewBurgerUnknownKind(t *testing.T) {
	_, err := NewBurger("vegan")
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestFactoryMethodPerBrand(t *testing.T) {
	singh, err := SinghBurger{}.CreateBurger("standard")
	require.NoError(t, err)
	king, err := KingBurger{}.CreateBurger("standard")
	require.NoError(t, err)

	assert.Contains(t, singh.Prepare(), "regular bun")
	assert.Equal(t, "wheat standard burger", king.Name())
	assert.Contains(t, king.Prepare(), "wheat bun")
}

func TestAbstractFactoryKeepsFamilyConsistent(t *testing.T) {
	f, err := ForBrand("King")
	require.NoError(t, err)

	b, err := f.CreateBurger("premium")
	require.NoError(t, err)
	g, err := f.CreateGarlicBread("cheese")
	require.NoError(t, err)

	assert.Contains(t, b.Prepare(), "wheat bun")
	assert.Equal(t, "wheat cheese garlic bread", g.Name())
	assert.Contains(t, g.Prepare(), "wheat dough topped with melted cheese")

	_, err = f.CreateGarlicBread("pesto")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestForBrandUnknown(t *testing.T) {
	_, err := ForBrand("mcburger")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestKindsSorted(t *testing.T) {
	assert.Equal(t, []string{"basic", "premium", "standard"}, Kinds())
}
