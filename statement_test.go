package minibank_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arhyth/minibank"
)

func TestWriteStatement(t *testing.T) {
	t.Run("renders an empty statement", func(tt *testing.T) {
		buf := new(bytes.Buffer)
		require.Nil(tt, minibank.WriteStatement(buf, nil))
		assert.True(tt, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	})

	t.Run("renders both account kinds", func(tt *testing.T) {
		rate := dec("3")
		limit := dec("100")
		descs := []minibank.Description{
			{Kind: minibank.KindSavings, ID: "S1001", Holder: "Alice Smith", Balance: dec("1184.5"), InterestRate: &rate},
			{Kind: minibank.KindChecking, ID: "C2002", Holder: "Bob Johnson", Balance: dec("-50"), OverdraftLimit: &limit},
		}
		buf := new(bytes.Buffer)
		require.Nil(tt, minibank.WriteStatement(buf, descs))
		assert.Greater(tt, buf.Len(), 0)
	})
}
