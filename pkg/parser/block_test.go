package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/cooklang/pkg/diag"
	"github.com/NVIDIA/cooklang/pkg/token"
)

func blockFor(input string, exts Extensions) (*BlockParser, *diag.Report) {
	report := diag.NewReport()
	return newBlockParser(token.Tokenize(input), input, report, exts), report
}

func TestBlockParserCursor(t *testing.T) {
	bp, _ := blockFor("100 ml", 0)

	assert.Equal(t, token.Int, bp.Peek())
	first := bp.Bump()
	assert.Equal(t, "100", bp.TokenText(first))

	_, ok := bp.Consume(token.Word)
	assert.False(t, ok)
	_, ok = bp.Consume(token.Whitespace)
	assert.True(t, ok)

	assert.Equal(t, token.Word, bp.Peek())
	assert.False(t, bp.AtEnd())

	rest := bp.ConsumeRest()
	require.Len(t, rest, 1)
	assert.True(t, bp.AtEnd())

	// bumping at the end keeps returning EOF
	assert.Equal(t, token.EOF, bp.Bump().Kind)
	assert.Equal(t, token.EOF, bp.Bump().Kind)
}

func TestBlockParserText(t *testing.T) {
	input := "  sea salt  "
	bp, _ := blockFor(input, 0)

	text, span := bp.Text(0, bp.ConsumeRest())
	assert.Equal(t, "sea salt", text)
	assert.Equal(t, "sea salt", span.Text(input))
}

func TestWithRecoverRollsBack(t *testing.T) {
	bp, report := blockFor("abc def", 0)

	_, ok := WithRecover(bp, func(bp *BlockParser) (struct{}, bool) {
		bp.Bump()
		bp.Bump()
		bp.Error(diag.Error("speculative failure"))
		return struct{}{}, false
	})
	assert.False(t, ok)

	// cursor and diagnostics are restored
	assert.Equal(t, 0, bp.pos)
	assert.True(t, report.IsEmpty())
}

func TestWithRecoverKeepsSuccess(t *testing.T) {
	bp, report := blockFor("abc def", 0)

	got, ok := WithRecover(bp, func(bp *BlockParser) (string, bool) {
		t := bp.Bump()
		bp.Warn(diag.Warning("kept"))
		return bp.TokenText(t), true
	})
	require.True(t, ok)
	assert.Equal(t, "abc", got)
	assert.Equal(t, 1, bp.pos)
	assert.Len(t, report.Warnings(), 1)
}

func TestParseExtensions(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		want    Extensions
		wantErr bool
	}{
		{"empty", nil, 0, false},
		{"all", []string{"all"}, AllExtensions(), false},
		{"single", []string{"range-values"}, ExtRangeValues, false},
		{"accumulates", []string{"range-values", "advanced-units"}, ExtRangeValues | ExtAdvancedUnits, false},
		{"none resets", []string{"all", "none", "timer-requires-time"}, ExtTimerRequiresTime, false},
		{"case folds", []string{"Advanced-Units"}, ExtAdvancedUnits, false},
		{"unknown", []string{"frobnicate"}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseExtensions(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
