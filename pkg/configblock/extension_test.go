package configblock

import (
	"strings"
	"testing"

	"github.com/arthur-debert/configblock/pkg/errors"
	"github.com/arthur-debert/configblock/pkg/formats"
	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseHTML(t *testing.T, out string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(out), "output should be well formed:\n%s", out)
	root := doc.Root()
	require.NotNil(t, root)
	return root
}

func TestSingleHTMLSample(t *testing.T) {
	src := "::: configuration-block\n\n```html\n<div></div>\n```\n\n:::\n"

	out := mustConvert(t, src)

	assert.True(t, strings.HasPrefix(out, `<div class="configuration-block">`+"\n"), out)
	assert.True(t, strings.HasSuffix(out, "</div>\n"), out)

	root := parseHTML(t, out)
	assert.Equal(t, "div", root.Tag)
	assert.Equal(t, ClassName, root.SelectAttrValue("class", ""))

	items := root.FindElements("./ul/li")
	require.Len(t, items, 1)

	em := items[0].FindElement("./p/em")
	require.NotNil(t, em)
	assert.Equal(t, "HTML", em.Text())

	code := items[0].FindElement("./p/pre/code")
	require.NotNil(t, code)
	assert.Equal(t, "language-html", code.SelectAttrValue("class", ""))
	assert.Equal(t, "<div></div>\n", code.Text())
}

func TestSamplesKeepOrder(t *testing.T) {
	src := strings.Join([]string{
		"::: configuration-block",
		"",
		"```php",
		"$x = 1;",
		"```",
		"",
		"```jinja",
		"{{ x }}",
		"```",
		"",
		":::",
		"",
	}, "\n")

	root := parseHTML(t, mustConvert(t, src))
	items := root.FindElements("./ul/li")
	require.Len(t, items, 2)
	assert.Equal(t, "PHP", items[0].FindElement("./p/em").Text())
	assert.Equal(t, "Twig", items[1].FindElement("./p/em").Text())
	assert.Equal(t, "language-php", items[0].FindElement("./p/pre/code").SelectAttrValue("class", ""))
	assert.Equal(t, "language-jinja", items[1].FindElement("./p/pre/code").SelectAttrValue("class", ""))
}

func TestNonCodeContentIsDropped(t *testing.T) {
	src := strings.Join([]string{
		"::: configuration-block",
		"Some prose that is not a sample.",
		"",
		"```xml",
		"<config/>",
		"```",
		"",
		"# A heading",
		"",
		"```ini",
		"key = value",
		"```",
		":::",
		"",
	}, "\n")

	out := mustConvert(t, src)
	assert.NotContains(t, out, "Some prose")
	assert.NotContains(t, out, "A heading")

	root := parseHTML(t, out)
	items := root.FindElements("./ul/li")
	require.Len(t, items, 2)
	assert.Equal(t, "XML", items[0].FindElement("./p/em").Text())
	assert.Equal(t, "INI", items[1].FindElement("./p/em").Text())
}

func TestEmptyDirective(t *testing.T) {
	out := mustConvert(t, "::: configuration-block\njust text\n:::\n")

	root := parseHTML(t, out)
	assert.Equal(t, ClassName, root.SelectAttrValue("class", ""))
	require.NotNil(t, root.FindElement("./ul"))
	assert.Empty(t, root.FindElements("./ul/li"))
}

func TestUnknownFormatFailsConversion(t *testing.T) {
	src := "Intro.\n\n::: configuration-block\n\n```yaml\nkey: value\n```\n\n:::\n"

	_, err := convert(t, src)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownFormat))

	line, ok := errors.Detail(err, "line")
	require.True(t, ok)
	assert.Equal(t, 5, line)

	doc, pc := parse(src)
	failures := Errors(pc)
	require.Len(t, failures, 1)
	assert.True(t, errors.IsErrorCode(failures[0], errors.ErrDirectiveFailed))
	assert.Empty(t, findKind(doc, KindConfigurationBlock))

	directives := findKind(doc, KindDirective)
	require.Len(t, directives, 1)
	assert.Equal(t, 0, directives[0].ChildCount())
}

func TestIndentedCodeHasNoFormat(t *testing.T) {
	_, err := convert(t, "::: configuration-block\n\n    <?php echo 1;\n\n:::\n")
	require.Error(t, err)
	tag, ok := errors.Detail(err, "tag")
	require.True(t, ok)
	assert.Equal(t, "", tag)
}

func TestWithFormats(t *testing.T) {
	table, err := formats.Default().With(map[string]string{"yaml": "YAML"})
	require.NoError(t, err)

	out := mustConvert(t, "::: configuration-block\n```yaml\na: 1\n```\n:::\n", WithFormats(table))
	root := parseHTML(t, out)
	assert.Equal(t, "YAML", root.FindElement("./ul/li/p/em").Text())
}

func TestFlowBackendEmitsNoWrapper(t *testing.T) {
	src := "::: configuration-block\n```html\n<div></div>\n```\n:::\n"

	structural := mustConvert(t, src)
	flow := mustConvert(t, src, WithBackend(FlowBackend))

	assert.NotContains(t, flow, "<div class")
	assert.True(t, strings.HasPrefix(flow, "<ul>"), flow)
	assert.Equal(t, structural, `<div class="configuration-block">`+"\n"+flow+"</div>\n")
}

func TestDocumentAroundDirective(t *testing.T) {
	src := "# Title\n\nBefore.\n\n::: configuration-block\n```php\necho 1;\n```\n:::\n\nAfter.\n"

	out := mustConvert(t, src)
	assert.Contains(t, out, "<h1>Title</h1>")
	assert.Contains(t, out, "<p>Before.</p>")
	assert.Contains(t, out, "<p>After.</p>")
	assert.Less(t, strings.Index(out, "Before."), strings.Index(out, ClassName))
	assert.Less(t, strings.Index(out, ClassName), strings.Index(out, "After."))
}

func TestBackendString(t *testing.T) {
	assert.Equal(t, "structural", StructuralBackend.String())
	assert.Equal(t, "flow", FlowBackend.String())
	assert.Equal(t, "Backend(7)", Backend(7).String())
}
