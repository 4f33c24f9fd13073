package procurement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newTestLine(t *testing.T, qty, price, gst, tds string) *Line {
	t.Helper()
	l, err := NewLine("Office chairs", "acc-furniture", LineTypeGoods, "nos", dec(qty), dec(price), dec(gst), dec(tds))
	require.NoError(t, err)
	return l
}

func TestParseRate(t *testing.T) {
	assert.True(t, ParseRate("").IsZero())
	assert.True(t, ParseRate("abc").IsZero())
	assert.True(t, ParseRate("18").Equal(dec("18")))
	assert.True(t, ParseRate("2.5").Equal(dec("2.5")))
	assert.True(t, ParseRate("-5").Equal(dec("-5")))
}

func TestLineRecalculate(t *testing.T) {
	t.Run("derives base, taxes and payable", func(t *testing.T) {
		l := newTestLine(t, "10", "100", "18", "2")
		assert.True(t, l.BaseTotal.Equal(dec("1000")))
		assert.True(t, l.GSTAmount.Equal(dec("180")))
		assert.True(t, l.TDSAmount.Equal(dec("20")))
		require.NotNil(t, l.Payable)
		assert.True(t, l.Payable.Equal(dec("1160")))
	})

	t.Run("zero rates leave payable at base", func(t *testing.T) {
		l := newTestLine(t, "3", "250", "0", "0")
		require.NotNil(t, l.Payable)
		assert.True(t, l.Payable.Equal(dec("750")))
	})

	t.Run("idempotent on its own output", func(t *testing.T) {
		l := newTestLine(t, "10", "100", "18", "2")
		before := *l
		l.Recalculate()
		assert.True(t, before.BaseTotal.Equal(l.BaseTotal))
		assert.True(t, before.GSTAmount.Equal(l.GSTAmount))
		assert.True(t, before.TDSAmount.Equal(l.TDSAmount))
		assert.True(t, before.Payable.Equal(*l.Payable))
	})

	t.Run("negative inputs propagate arithmetically", func(t *testing.T) {
		l := newTestLine(t, "-2", "100", "18", "0")
		assert.True(t, l.BaseTotal.Equal(dec("-200")))
		require.NotNil(t, l.Payable)
		assert.True(t, l.Payable.Equal(dec("-236")))
	})
}

func TestLineOverrideBaseTotal(t *testing.T) {
	l := newTestLine(t, "10", "100", "18", "2")

	l.OverrideBaseTotal(dec("2000"))
	assert.True(t, l.BaseTotal.Equal(dec("2000")))
	assert.True(t, l.GSTAmount.Equal(dec("360")))
	assert.True(t, l.TDSAmount.Equal(dec("40")))
	assert.True(t, l.Payable.Equal(dec("2320")))

	// the override sticks across further recalculations
	l.Recalculate()
	assert.True(t, l.BaseTotal.Equal(dec("2000")))
	assert.True(t, l.Payable.Equal(dec("2320")))
}

func TestLinePayableFallback(t *testing.T) {
	// a line loaded from an older snapshot may have no stored payable
	l := newTestLine(t, "10", "100", "18", "2")
	l.Payable = nil

	assert.True(t, l.PayableAmount().Amount().Equal(dec("1160")))
}

func TestNewLineValidation(t *testing.T) {
	_, err := NewLine("", "acc", LineTypeGoods, "", dec("1"), dec("1"), dec("0"), dec("0"))
	assert.Error(t, err)

	_, err = NewLine("Item", "", LineTypeGoods, "", dec("1"), dec("1"), dec("0"), dec("0"))
	assert.Error(t, err)

	_, err = NewLine("Item", "acc", "Rental", "", dec("1"), dec("1"), dec("0"), dec("0"))
	assert.Error(t, err)
}
