package main

import (
	"encoding/json"
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var nextDataRe = regexp.MustCompile(`(?s)<script[^>]+id="__NEXT_DATA__"[^>]*>(.*?)</script>`)

// extractNextData pulls the __NEXT_DATA__ payload embedded by Next.js sites.
// Returns nil when the tag is absent or the payload does not parse.
func extractNextData(page string) any {
	match := nextDataRe.FindStringSubmatch(page)
	if match == nil {
		return nil
	}
	body := html.UnescapeString(match[1])
	var decoded any
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		return nil
	}
	return decoded
}

var patternNameKeys = []string{"pattern", "name", "title"}
var patternProblemKeys = []string{"problems", "questions"}

// looksLikePatternList reports whether node is a non-empty list of objects
// that each carry a name-like field and a problems-like field.
func looksLikePatternList(node any) bool {
	list, ok := node.([]any)
	if !ok || len(list) == 0 {
		return false
	}
	for _, item := range list {
		entry, ok := item.(rawEntry)
		if !ok {
			return false
		}
		if !hasAnyKey(entry, patternNameKeys...) || !hasAnyKey(entry, patternProblemKeys...) {
			return false
		}
	}
	return true
}

// patternsFromNextData searches the decoded payload recursively for the
// first list that pattern-matches. The well-known keys "patterns" and
// "leetcodePatterns" are probed before descending into other object values.
func patternsFromNextData(node any) []rawEntry {
	found := walkForPatternList(node)
	out := make([]rawEntry, 0, len(found))
	for _, item := range found {
		if entry, ok := item.(rawEntry); ok {
			out = append(out, entry)
		}
	}
	return out
}

func walkForPatternList(node any) []any {
	if looksLikePatternList(node) {
		return node.([]any)
	}
	switch n := node.(type) {
	case []any:
		for _, item := range n {
			if found := walkForPatternList(item); found != nil {
				return found
			}
		}
	case rawEntry:
		for _, key := range []string{"patterns", "leetcodePatterns"} {
			if v, ok := n[key]; ok && looksLikePatternList(v) {
				return v.([]any)
			}
		}
		for _, value := range n {
			if found := walkForPatternList(value); found != nil {
				return found
			}
		}
	}
	return nil
}

// patternsFromHTML is the heuristic fallback when no structured payload is
// present: each h2/h3 heading is paired with the list items that follow it,
// up to the next heading. Difficulty is unknown at this level.
func patternsFromHTML(page string) []rawEntry {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil
	}

	var blocks []rawEntry
	doc.Find("h2, h3").Each(func(_ int, heading *goquery.Selection) {
		name := collapseSpace(heading.Text())
		if name == "" {
			return
		}
		section := heading.NextUntil("h2, h3")
		items := section.Filter("li").AddSelection(section.Find("li"))

		var problems []any
		items.Each(func(_ int, li *goquery.Selection) {
			text := collapseSpace(li.Text())
			if text == "" {
				return
			}
			problems = append(problems, rawEntry{
				"title":      text,
				"difficulty": "Unknown",
				"url":        "",
			})
		})
		if len(problems) == 0 {
			return
		}
		blocks = append(blocks, rawEntry{"pattern": name, "problems": problems})
	})
	return blocks
}

var innerSpaceRe = regexp.MustCompile(`\s+`)

func collapseSpace(s string) string {
	return strings.TrimSpace(innerSpaceRe.ReplaceAllString(s, " "))
}
