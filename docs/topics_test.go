package docs

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/rebalance"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md can be loaded, and every .md file is listed.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var listed []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			listed = append(listed, strings.TrimSpace(m[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range listed {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("failed to get topic %q: %v", topic, err)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	for _, topic := range all {
		if !slices.Contains(listed, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestGetTopics_All(t *testing.T) {
	got, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) error = %v", err)
	}
	for _, want := range []string{"# Rebalance", "# File formats", "# Service", "# Configuration"} {
		if !strings.Contains(got, want) {
			t.Errorf("GetTopics(*) does not contain %q", want)
		}
	}
	if strings.Contains(got, "Run `rebal topic <topic>`") {
		t.Errorf("GetTopics(*) includes the readme")
	}
}

func TestGetTopic_Unknown(t *testing.T) {
	if _, err := GetTopic("nope"); err == nil {
		t.Errorf("GetTopic(nope) error = nil, want an error")
	}
}

// block is a fenced code block in a markdown file.
type block struct {
	info    []string // the info string, split in fields
	content string
	file    string
	line    int
}

func TestCodeBlocks(t *testing.T) {
	// JSON examples must stay valid, portfolio and prices examples must be
	// accepted by the decoders.
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		for _, b := range parseMarkdown(t, file) {
			if len(b.info) == 0 || b.info[0] != "json" {
				continue
			}
			if !json.Valid([]byte(b.content)) {
				t.Errorf("%s:%d: invalid json block", b.file, b.line)
				continue
			}
			if len(b.info) < 2 {
				continue
			}
			switch b.info[1] {
			case "portfolio":
				if _, err := rebalance.DecodePortfolio(strings.NewReader(b.content)); err != nil {
					t.Errorf("%s:%d: invalid portfolio: %v", b.file, b.line, err)
				}
			case "prices":
				path := ""
				if len(b.info) > 2 {
					path = b.info[2]
				}
				if _, err := rebalance.DecodePrices(strings.NewReader(b.content), path, "USD"); err != nil {
					t.Errorf("%s:%d: invalid prices: %v", b.file, b.line, err)
				}
			default:
				t.Errorf("%s:%d: unknown json block kind %q", b.file, b.line, b.info[1])
			}
		}
	}
}

// parseMarkdown returns the fenced code blocks of a markdown file.
func parseMarkdown(t *testing.T, file string) []block {
	t.Helper()

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}

	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var blocks []block
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			b.Write(line.Value(content))
		}
		blocks = append(blocks, block{
			info:    strings.Fields(string(fcb.Info.Segment.Value(content))),
			content: b.String(),
			file:    file,
			line:    lineNumber(content, fcb.Info.Segment.Start),
		})
		return ast.WalkContinue, nil
	})
	return blocks
}

// lineNumber computes the line number for a given offset in source.
func lineNumber(source []byte, offset int) int {
	return bytes.Count(source[:offset], []byte{'\n'}) + 1
}
