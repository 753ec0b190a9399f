package extractor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/use-agent/tubescrape/models"
)

const objectVarPage = `<!DOCTYPE html><html><head><title>Chan - YouTube</title></head><body>
<script nonce="x">var ytInitialData = {"responseContext":{"serviceTrackingParams":[]},"estimatedResults":"3","contents":{}};</script>
<script nonce="x">var ytInitialPlayerResponse = null;</script>
</body></html>`

const originalPage = `<html><body><script>
    window["ytInitialData"] = {"estimatedResults":"5","contents":{"a":[1,2]}};
    window["ytInitialPlayerResponse"] = null;
</script></body></html>`

// bothPage matches both patterns; the object_var capture is valid JSON.
const bothPage = `<script>
    window["ytInitialData"] = {"responseContext":{},"estimatedResults":"7"};
    window["ytInitialPlayerResponse"] = null;
</script>`

func TestLocate_ObjectVar(t *testing.T) {
	variant, blob, err := Locate(objectVarPage)
	require.NoError(t, err)
	assert.Equal(t, VariantObjectVar, variant)
	assert.Equal(t, VariantObjectVar, blob.Variant)
	assert.JSONEq(t, `{"responseContext":{"serviceTrackingParams":[]},"estimatedResults":"3","contents":{}}`, string(blob.JSON))
}

func TestLocate_Original(t *testing.T) {
	variant, blob, err := Locate(originalPage)
	require.NoError(t, err)
	assert.Equal(t, VariantOriginal, variant)
	assert.JSONEq(t, `{"estimatedResults":"5","contents":{"a":[1,2]}}`, string(blob.JSON))
}

func TestLocate_ObjectVarWinsWhenBothMatch(t *testing.T) {
	// Sanity: the original pattern alone would match this page too.
	require.True(t, patterns[1].Regexp.MatchString(bothPage))

	variant, blob, err := Locate(bothPage)
	require.NoError(t, err)
	assert.Equal(t, VariantObjectVar, variant)
	assert.JSONEq(t, `{"responseContext":{},"estimatedResults":"7"}`, string(blob.JSON))
}

func TestLocate_ObjectVarInvalidDoesNotFallBack(t *testing.T) {
	// object_var matches but captures broken JSON. The error is reported for
	// the pattern that matched.
	page := `<script>window["ytInitialData"] = {"responseContext":{},"x": };
    window["ytInitialPlayerResponse"] = null;</script>`

	variant, _, err := Locate(page)
	require.Error(t, err)
	assert.Equal(t, VariantObjectVar, variant)
	assert.True(t, errors.Is(err, ErrInvalidJSON))
	assert.Equal(t, models.ErrCodeInvalidJSON, models.CodeOf(err))
}

func TestPatterns_Order(t *testing.T) {
	ps := Patterns()
	require.Len(t, ps, 2)
	assert.Equal(t, VariantObjectVar, ps[0].Variant)
	assert.Equal(t, VariantOriginal, ps[1].Variant)

	// Returned slice is a copy.
	ps[0] = Pattern{}
	assert.Equal(t, VariantObjectVar, Patterns()[0].Variant)
}

func TestLocate_NoMatch(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{"empty", ""},
		{"plain page", `<html><body><p>Before you continue to YouTube</p></body></html>`},
		{"marker without payload", `<script>var ytInitialData = null;</script>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			variant, blob, err := Locate(tt.html)
			require.Error(t, err)
			assert.Nil(t, blob)
			assert.Empty(t, variant)
			assert.True(t, errors.Is(err, ErrNoMatch))
			assert.Equal(t, models.ErrCodeNoMatch, models.CodeOf(err))
		})
	}
}

func TestDecode(t *testing.T) {
	var out struct {
		EstimatedResults string `json:"estimatedResults"`
	}
	variant, err := Decode(originalPage, &out)
	require.NoError(t, err)
	assert.Equal(t, VariantOriginal, variant)
	assert.Equal(t, "5", out.EstimatedResults)
}

func TestDecode_ShapeMismatch(t *testing.T) {
	var out struct {
		EstimatedResults int `json:"estimatedResults"`
	}
	variant, err := Decode(objectVarPage, &out)
	require.Error(t, err)
	assert.Equal(t, VariantObjectVar, variant)
	assert.True(t, errors.Is(err, ErrInvalidJSON))
}
