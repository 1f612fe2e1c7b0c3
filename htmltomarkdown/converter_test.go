package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/docbundle"
	"github.com/fwojciec/docbundle/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements docbundle.Converter at compile time.
var _ docbundle.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("renders headings in ATX style", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Crate serde</h1><h2>Modules</h2><h3>Traits</h3>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Crate serde")
		assert.Contains(t, md, "## Modules")
		assert.Contains(t, md, "### Traits")
		assert.NotContains(t, md, "===")
	})

	t.Run("keeps heading links inline", func(t *testing.T) {
		t.Parallel()

		html := `<h2><a href="trait.Serialize.html">Serialize</a></h2>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "## [Serialize](trait.Serialize.html)")
	})

	t.Run("converts item lists", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li>de</li><li>ser</li></ul>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "- de")
		assert.Contains(t, md, "- ser")
	})

	t.Run("converts inline code", func(t *testing.T) {
		t.Parallel()

		html := `<p>Call <code>to_string</code> on the value.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "`to_string`")
	})

	t.Run("converts code blocks with language hint", func(t *testing.T) {
		t.Parallel()

		html := `<pre><code class="language-rust">fn main() {
    println!("hello");
}
</code></pre>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "```rust")
		assert.Contains(t, md, "fn main() {")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Feature</th><th>Default</th></tr></thead>
<tbody><tr><td>std</td><td>yes</td></tr><tr><td>alloc</td><td>no</td></tr></tbody>
</table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Feature")
		assert.Contains(t, md, "alloc")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("  \n")

		require.Error(t, err)
		assert.Equal(t, docbundle.EINVALID, docbundle.ErrorCode(err))
	})
}
