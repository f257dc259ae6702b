package fetch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainerExtractor_PrefersArticle(t *testing.T) {
	long := strings.Repeat("The senator filed the reform bill in the chamber. ", 5)
	html := `<html><body>
		<nav>Home | About | Contact</nav>
		<article>` + long + `</article>
		<footer>Copyright</footer>
	</body></html>`

	text, err := DefaultExtractor().Extract(html)
	require.NoError(t, err)
	assert.Contains(t, text, "reform bill")
	assert.NotContains(t, text, "Home | About")
	assert.NotContains(t, text, "Copyright")
}

func TestContainerExtractor_SkipsShortContainers(t *testing.T) {
	long := strings.Repeat("Actual page content goes here with enough length to matter. ", 4)
	html := `<html><body>
		<article>Too short</article>
		<main>` + long + `</main>
	</body></html>`

	text, err := DefaultExtractor().Extract(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Actual page content")
}

func TestContainerExtractor_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>tiny</p></body></html>`

	text, err := DefaultExtractor().Extract(html)
	require.NoError(t, err)
	assert.Equal(t, "tiny", text)
}

func TestContainerExtractor_StripsScriptsAndStyles(t *testing.T) {
	long := strings.Repeat("Readable prose for the verification engine to scan. ", 4)
	html := `<html><head><style>.x{color:red}</style></head><body>
		<main><script>var hidden = "secret";</script>` + long + `</main>
	</body></html>`

	text, err := DefaultExtractor().Extract(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Readable prose")
	assert.NotContains(t, text, "secret")
	assert.NotContains(t, text, "color:red")
}

func TestCleanWhitespace(t *testing.T) {
	in := "  line one  \n\n\n\n  line two\t\n\nline three  "
	got := cleanWhitespace(in)
	assert.Equal(t, "line one\n\nline two\n\nline three", got)
}
