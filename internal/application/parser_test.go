package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskList(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{"well formed", `{"tasks":["read one page","stretch"]}`, []string{"read one page", "stretch"}, false},
		{"preserves order", `{"tasks":["c","a","b"]}`, []string{"c", "a", "b"}, false},
		{"trims entries", `{"tasks":["  water the plant  ","tidy desk"]}`, []string{"water the plant", "tidy desk"}, false},
		{"drops empty entries", `{"tasks":["","   ","open laptop"]}`, []string{"open laptop"}, false},
		{"empty list is valid", `{"tasks":[]}`, []string{}, false},
		{"extra keys ignored", `{"tasks":["a b"],"mood":"calm"}`, []string{"a b"}, false},
		{"not json", `the model rambled`, nil, true},
		{"empty text", ``, nil, true},
		{"missing tasks key", `{"items":["a"]}`, nil, true},
		{"wrong element type", `{"tasks":[1,2]}`, nil, true},
		{"tasks not a list", `{"tasks":"walk"}`, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTaskList(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformedModelOutput)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseValidation(t *testing.T) {
	t.Run("well formed", func(t *testing.T) {
		res, err := ParseValidation(`{"valid":true,"reason":"ok","confidence":0.91}`)
		require.NoError(t, err)
		assert.True(t, res.Valid)
		assert.Equal(t, "ok", res.Reason)
		assert.InDelta(t, 0.91, res.Confidence, 1e-9)
	})

	t.Run("clamps high confidence", func(t *testing.T) {
		res, err := ParseValidation(`{"valid":true,"reason":"sure","confidence":3.5}`)
		require.NoError(t, err)
		assert.Equal(t, 1.0, res.Confidence)
	})

	t.Run("clamps negative confidence", func(t *testing.T) {
		res, err := ParseValidation(`{"valid":false,"reason":"no","confidence":-0.2}`)
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.Confidence)
	})

	malformed := []struct {
		name string
		raw  string
	}{
		{"not json", "nonsense"},
		{"empty text", ""},
		{"missing valid", `{"reason":"ok","confidence":0.5}`},
		{"missing reason", `{"valid":true,"confidence":0.5}`},
		{"missing confidence", `{"valid":true,"reason":"ok"}`},
		{"wrong types", `{"valid":"yes","reason":1,"confidence":"high"}`},
	}
	for _, tt := range malformed {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ParseValidation(tt.raw)
			require.ErrorIs(t, err, ErrMalformedModelOutput)
			assert.False(t, res.Valid)
			assert.Equal(t, "Failed to parse model output", res.Reason)
			assert.Equal(t, 0.0, res.Confidence)
		})
	}
}
