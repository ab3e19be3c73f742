package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTextContentHTML(t *testing.T) {
	item := ContentItem{
		Title:   "Getting Started",
		Excerpt: "A Quick Intro",
		Content: HTMLContent("<h1>Hello</h1><p>World &amp; more</p>"),
	}
	got := ExtractTextContent(item)
	assert.Equal(t, "getting started a quick intro hello world &amp; more", got)
}

func TestExtractTextContentSections(t *testing.T) {
	item := ContentItem{
		Title: "Guide",
		Content: SectionContent{
			{Text: "First Part"},
			{Content: "Second Part"},
			{Text: "Third", Content: "Fourth"},
			{},
		},
	}
	got := ExtractTextContent(item)
	assert.Equal(t, "guide first part second part third fourth", got)
}

func TestExtractTextContentStructured(t *testing.T) {
	item := ContentItem{
		Content: StructuredContent{
			Title:       "Intro",
			Description: "Short Description",
			Body:        "The Body",
		},
	}
	assert.Equal(t, "intro short description the body", ExtractTextContent(item))
}

func TestExtractTextContentNilBody(t *testing.T) {
	item := ContentItem{Title: "Only Title"}
	assert.Equal(t, "only title", ExtractTextContent(item))

	assert.Equal(t, "", ExtractTextContent(ContentItem{}))
}

func TestExtractTextContentCollapsesWhitespace(t *testing.T) {
	item := ContentItem{
		Title:   "  Spaced\tOut ",
		Content: HTMLContent("a<br>  \n b"),
	}
	assert.Equal(t, "spaced out a b", ExtractTextContent(item))
}

func TestExtractTextContentPersian(t *testing.T) {
	item := ContentItem{
		Title:   "راهنمای خرید",
		Content: HTMLContent("<p>اشتراک ویژه</p>"),
	}
	assert.Equal(t, "راهنمای خرید اشتراک ویژه", ExtractTextContent(item))
}
