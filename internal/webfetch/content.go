package webfetch

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/jobfit-labs/jobfit-ingest/internal/core/domain"
	"github.com/jobfit-labs/jobfit-ingest/internal/logger"
)

// removeSelectors are elements stripped before text extraction:
// navigation, chrome, cookie banners and anything script-related.
var removeSelectors = []string{
	"header", "footer", "nav", "aside",
	".nav", ".navigation", ".menu",
	".header", ".footer", ".sidebar",
	".cookie-banner", ".cookie-consent",
	".social-share", ".share-buttons",
	".apply-button", ".apply-now",
	"script", "style", "noscript",
}

// contentSelectors locate the job description container. Entries tagged
// with a platform only apply when that platform was detected; generic
// entries always apply. Checked in order, first match wins.
var contentSelectors = []struct {
	selector string
	platform domain.Platform
}{
	{"div#content", domain.PlatformGreenhouse},
	{"div.job-post-content", domain.PlatformGreenhouse},
	{"div.posting-page", domain.PlatformLever},
	{"div.content", domain.PlatformLever},
	{"article.job-description", domain.PlatformUnknown},
	{"div.job-description", domain.PlatformUnknown},
	{"div.description", domain.PlatformUnknown},
	{"main", domain.PlatformUnknown},
	{"article", domain.PlatformUnknown},
}

var (
	tripleNewlines = regexp.MustCompile(`\n{3,}`)
	spaceRuns      = regexp.MustCompile(`[ \t]+`)
	spaceBeforeNL  = regexp.MustCompile(` \n`)
	spaceAfterNL   = regexp.MustCompile(`\n `)
)

// extractJobText pulls the job description text out of a fetched page.
// Returns an empty string when the document cannot be parsed.
func extractJobText(doc *goquery.Document, platform domain.Platform) string {
	for _, selector := range removeSelectors {
		doc.Find(selector).Remove()
	}

	var content *goquery.Selection
	for _, entry := range contentSelectors {
		if entry.platform != domain.PlatformUnknown && entry.platform != platform {
			continue
		}
		sel := doc.Find(entry.selector)
		if sel.Length() > 0 {
			content = sel.First()
			logger.Debug("content selector matched: %s", entry.selector)
			break
		}
	}
	if content == nil {
		content = doc.Find("body").First()
		if content.Length() == 0 {
			content = doc.Selection
		}
	}

	return textWithStructure(content)
}

// textWithStructure extracts text while preserving paragraph breaks and
// list bullets, so downstream cleaning sees one item per line.
func textWithStructure(sel *goquery.Selection) string {
	var b strings.Builder
	for _, node := range sel.Nodes {
		walkText(node, &b)
	}

	text := b.String()
	text = tripleNewlines.ReplaceAllString(text, "\n\n")
	text = spaceRuns.ReplaceAllString(text, " ")
	text = spaceBeforeNL.ReplaceAllString(text, "\n")
	text = spaceAfterNL.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}

func walkText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.ElementNode:
		switch n.Data {
		case "p", "div", "br", "h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString("\n")
		case "li":
			b.WriteString("\n• ")
		}
	case html.TextNode:
		if text := strings.TrimSpace(n.Data); text != "" {
			b.WriteString(text)
			b.WriteString(" ")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkText(c, b)
	}
}
