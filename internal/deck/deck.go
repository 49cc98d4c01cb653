// Package deck splits a text document into pages for the roller.
package deck

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Separator is the line that divides pages.
const Separator = "---"

// Deck is an ordered list of pages with a cursor.
type Deck struct {
	Title string
	Pages []string
	Index int
}

// Parse reads pages from r. A line that is exactly Separator (ignoring
// surrounding whitespace) starts a new page. Leading and trailing blank
// lines are trimmed from each page and empty pages are dropped.
func Parse(title string, r io.Reader) (*Deck, error) {
	d := &Deck{Title: title}
	var cur []string
	flush := func() {
		page := strings.Trim(strings.Join(cur, "\n"), "\n")
		if strings.TrimSpace(page) != "" {
			d.Pages = append(d.Pages, page)
		}
		cur = cur[:0]
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == Separator {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", title, err)
	}
	flush()
	if len(d.Pages) == 0 {
		return nil, fmt.Errorf("%s: no pages", title)
	}
	return d, nil
}

// Load parses the file at path.
func Load(path string) (*Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open deck: %w", err)
	}
	defer f.Close()
	return Parse(path, f)
}

// Current returns the page under the cursor.
func (d *Deck) Current() string {
	return d.Pages[d.Index]
}

// Len returns the number of pages.
func (d *Deck) Len() int {
	return len(d.Pages)
}

// Next moves the cursor forward and returns the new page. At the end it
// either wraps to the first page or reports false.
func (d *Deck) Next(wrap bool) (string, bool) {
	if d.Index+1 < len(d.Pages) {
		d.Index++
		return d.Current(), true
	}
	if !wrap || len(d.Pages) < 2 {
		return "", false
	}
	d.Index = 0
	return d.Current(), true
}

// Prev moves the cursor back and returns the new page.
func (d *Deck) Prev(wrap bool) (string, bool) {
	if d.Index > 0 {
		d.Index--
		return d.Current(), true
	}
	if !wrap || len(d.Pages) < 2 {
		return "", false
	}
	d.Index = len(d.Pages) - 1
	return d.Current(), true
}
