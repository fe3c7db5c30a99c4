package jobtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalise_Empty(t *testing.T) {
	assert.Equal(t, "", Normalise(""))
}

func TestNormalise_Idempotent(t *testing.T) {
	inputs := []string{
		"Plain text with   spaces",
		"<p>Senior Engineer</p><li>Build things</li>",
		"Line one\n\n\n\nLine two",
		"Smart “quotes” and – dashes",
		"A\n \n \n \nB",
	}

	for _, input := range inputs {
		once := Normalise(input)
		twice := Normalise(once)
		assert.Equal(t, once, twice, "input: %q", input)
	}
}

func TestNormalise_WhitespaceOnlyLinesCollapse(t *testing.T) {
	// Lines holding only spaces count as blank for newline collapsing.
	assert.Equal(t, "A\n\nB", Normalise("A\n \n \n \nB"))
}

func TestNormalise_InvisibleCharacters(t *testing.T) {
	result := Normalise("Senior Engineer​ wanted\uFEFF")

	assert.Equal(t, "Senior Engineer wanted", result)
}

func TestNormalise_ListStructure(t *testing.T) {
	result := Normalise("<li>Built APIs</li><p>Next line</p>")

	assert.Contains(t, result, "• Built APIs")
	assert.NotContains(t, result, "<")
	assert.NotContains(t, result, ">")

	lines := strings.Split(result, "\n")
	var bulletLine, nextLine int
	for i, line := range lines {
		if strings.Contains(line, "Built APIs") {
			bulletLine = i
		}
		if strings.Contains(line, "Next line") {
			nextLine = i
		}
	}
	assert.Greater(t, nextLine, bulletLine, "Next line should be on a separate later line")
}

func TestNormalise_StripsTags(t *testing.T) {
	result := Normalise(`<div class="job"><strong>Senior</strong> Engineer</div>`)
	assert.Equal(t, "Senior Engineer", result)
}

func TestNormalise_HTMLEntities(t *testing.T) {
	result := Normalise("Design &amp; build systems &lt;fast&gt;")
	assert.Contains(t, result, "Design & build systems")
}

func TestNormalise_UnicodePunctuation(t *testing.T) {
	result := Normalise("We’re looking for a “rockstar” – apply…")

	assert.Contains(t, result, "We're")
	assert.Contains(t, result, `"rockstar"`)
	assert.Contains(t, result, "- apply...")
}

func TestNormalise_BoilerplateLines(t *testing.T) {
	input := strings.Join([]string{
		"Senior Backend Engineer",
		"Apply Now",
		"We build payment infrastructure.",
		"Share this job",
		"Posted 3 days ago",
		"Job ID: REQ-12345",
		"Requirements follow.",
		"Easy Apply",
	}, "\n")

	result := Normalise(input)

	assert.Contains(t, result, "Senior Backend Engineer")
	assert.Contains(t, result, "We build payment infrastructure.")
	assert.Contains(t, result, "Requirements follow.")
	assert.NotContains(t, result, "Apply Now")
	assert.NotContains(t, result, "Share this job")
	assert.NotContains(t, result, "Posted 3 days ago")
	assert.NotContains(t, result, "REQ-12345")
	assert.NotContains(t, result, "Easy Apply")
}

func TestNormalise_BoilerplateOnlyWholeLines(t *testing.T) {
	// "apply now" embedded in a sentence must survive.
	result := Normalise("Candidates should apply now through our careers page.")
	assert.Contains(t, result, "apply now")
}

func TestNormalise_CollapsesWhitespace(t *testing.T) {
	result := Normalise("One\ttwo   three\n\n\n\n\nFour")

	assert.Contains(t, result, "One two three")
	assert.NotContains(t, result, "\n\n\n")
}

func TestNormaliseDocument_Empty(t *testing.T) {
	assert.Equal(t, "", NormaliseDocument(""))
}

func TestNormaliseDocument_DropsPageArtifacts(t *testing.T) {
	input := strings.Join([]string{
		"Jane Doe",
		"2",
		"Page 2 of 3",
		"Software Engineer at Acme",
	}, "\n")

	result := NormaliseDocument(input)

	assert.Contains(t, result, "Jane Doe")
	assert.Contains(t, result, "Software Engineer at Acme")
	assert.NotContains(t, result, "Page 2 of 3")

	for _, line := range strings.Split(result, "\n") {
		assert.NotEqual(t, "2", strings.TrimSpace(line))
	}
}

func TestNormaliseDocument_DropsEmptyLines(t *testing.T) {
	result := NormaliseDocument("First\n\n\nSecond\n   \nThird")

	assert.Equal(t, "First\nSecond\nThird", result)
}
