package corpus

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veda-tools/vedadiff/internal/translit"
	"github.com/veda-tools/vedadiff/internal/verse"
)

func TestConvertPreservesOrder(t *testing.T) {
	raws := make([]RawVerse, 20)
	for i := range raws {
		raws[i] = RawVerse{Label: fmt.Sprintf("10.90.%d", i+1), Text: "puru\\'ShaH"}
	}

	c := NewConverter(verse.NewBuilder(translit.Sanskrit{}), 4)
	doc, diags, err := c.Convert(context.Background(), "rv10-090", "Purusha Sūktam", "test", raws)
	require.NoError(t, err)

	assert.Equal(t, "rv10-090", doc.ID)
	require.Len(t, doc.Verses, len(raws))
	require.Len(t, diags, len(raws))
	for i, v := range doc.Verses {
		assert.Equal(t, raws[i].Label, v.Label)
		assert.Equal(t, "पुरु॑षः", v.Devanagari)
	}
}

func TestConvertCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewConverter(verse.NewBuilder(translit.Sanskrit{}), 2)
	_, _, err := c.Convert(ctx, "id", "title", "source", []RawVerse{{Label: "x", Text: "a"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConvertEmpty(t *testing.T) {
	c := NewConverter(verse.NewBuilder(translit.Sanskrit{}), 1)
	doc, diags, err := c.Convert(context.Background(), "id", "title", "source", nil)
	require.NoError(t, err)
	assert.Empty(t, doc.Verses)
	assert.Empty(t, diags)
}

func TestNewConverterClampsParallelism(t *testing.T) {
	c := NewConverter(verse.NewBuilder(translit.Sanskrit{}), 0)
	_, _, err := c.Convert(context.Background(), "id", "t", "s", []RawVerse{{Label: "x", Text: "a"}})
	assert.NoError(t, err)
}
