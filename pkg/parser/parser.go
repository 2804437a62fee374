// Package parser converts HTML input files into plain text for tokenizing.
package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// blockSelector lists elements that end a line of text. Without a break
// after them, adjacent blocks would glue their words together.
const blockSelector = "address,article,aside,blockquote,br,dd,div,dl,dt,figcaption,footer," +
	"h1,h2,h3,h4,h5,h6,header,hr,li,main,nav,ol,p,pre,section,table,td,th,tr,ul"

type Parser struct{}

// IsHTML reports whether a filename looks like an HTML document.
func IsHTML(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}

// ExtractText returns the readable text of an HTML document.
// go-readability picks the main content first; if it finds nothing the
// whole body is used instead.
func (p *Parser) ExtractText(name string, html []byte) (string, error) {
	pageURL := fileURL(name)

	rp := readability.NewParser()
	article, err := rp.Parse(bytes.NewReader(html), pageURL)
	if err == nil && strings.TrimSpace(article.Content) != "" {
		doc, docErr := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
		if docErr == nil {
			text := documentText(doc.Selection)
			if text != "" {
				return joinTitle(article.Title, text), nil
			}
		}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML %s: %w", name, err)
	}
	title := doc.Find("title").First().Text()
	return joinTitle(title, BodyText(doc)), nil
}

// BodyText returns the text of the document body with scripts and styles removed.
func BodyText(doc *goquery.Document) string {
	doc.Find("script,style,noscript,template").Remove()
	return documentText(doc.Find("body"))
}

func documentText(s *goquery.Selection) string {
	s.Find(blockSelector).Each(func(_ int, block *goquery.Selection) {
		block.AppendHtml("\n")
	})
	return normalizeText(s.Text())
}

func joinTitle(title, text string) string {
	title = normalizeText(title)
	if title == "" || strings.HasPrefix(text, title) {
		return text
	}
	return title + "\n" + text
}

func fileURL(name string) *url.URL {
	abs, err := filepath.Abs(name)
	if err != nil {
		abs = name
	}
	return &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
}

// normalizeText trims every line and drops blank ones, keeping one line per block.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	scanner.Buffer(make([]byte, 0, 64*1024), len(input)+1)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return strings.TrimSpace(b.String())
}
