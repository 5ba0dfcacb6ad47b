package querysum

import "fmt"

// PromptField produces one argument of a PromptTemplate.
type PromptField func(s *Structure) any

// PromptTemplate is a format string and the ordered fields that fill it.
type PromptTemplate struct {
	Format string
	Fields []PromptField
}

// Render fills the template from a document structure.
func (t PromptTemplate) Render(s *Structure) string {
	args := make([]any, len(t.Fields))
	for i, field := range t.Fields {
		args[i] = field(s)
	}
	return fmt.Sprintf(t.Format, args...)
}

// TitleField renders the document title.
func TitleField(s *Structure) any { return s.Title }

// OutlineField renders the document outline with FormatOutline.
func OutlineField(s *Structure) any { return FormatOutline(s.Outline) }

// SummaryPrompt asks for a five-sentence summary of a page.
// The wording is fixed and must not change.
var SummaryPrompt = PromptTemplate{
	Format: summaryPromptFormat,
	Fields: []PromptField{TitleField, TitleField, OutlineField},
}

const summaryPromptFormat = "\n" +
	"    You are to generate a summary about a webpage with title %s.\n" +
	"    The webpage content will be given to you in its original structure and order of elements.\n" +
	"    \n" +
	"    Example content below\n" +
	"    H1: My Favorite Things (Main heading)\n" +
	"    P: My favorite things to do are go to the mall, eat, and play. (Paragraph of Text)\n" +
	"    A: West Farms Mall (Link to a relevant page, in this case a mall I like to go to)\n" +
	"    H2: Eating (Subheaading)\n" +
	"    P: My favorite restaurant is Chili's. (Another paragraph of text)\n" +
	"\n" +
	"    The content of the %s website is \n %s\n" +
	"\n" +
	"    Return a 5-sentence summary of the website, recounting the most important details. Use the headings and\n" +
	"    paragraphs to inform your decisions of most important details while using link text for extra context.\n" +
	"    Leave out any text not related to this summary in your response.\n" +
	"    "
