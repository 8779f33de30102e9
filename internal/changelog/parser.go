package changelog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// maxLineSize bounds a single changelog line.
const maxLineSize = 1024 * 1024

// linkPattern matches reference definitions like "[1.2.3]: https://...".
var linkPattern = regexp.MustCompile(`^\[(.*)\]: (.*)$`)

func isRelease(line string) bool {
	return strings.HasPrefix(line, "## ")
}

func isCategory(line string) bool {
	return strings.HasPrefix(line, "### ")
}

// parseState is the parser position: the section being filled, if any, and
// the slot its notes currently go to.
type parseState struct {
	change   *Change
	category CategoryKind
}

// step folds one line into c and returns the next state.
func step(c *Changelog, s parseState, line string) parseState {
	if m := linkPattern.FindStringSubmatch(line); m != nil {
		c.lookupOrCreate(m[1]).URL = m[2]
		return s
	}

	if isRelease(line) {
		ch := NewChange(ParseReleaseLine(line))
		// A link seen earlier may already have created the section.
		if prev, ok := c.Get(ch.Version); ok {
			ch.URL = prev.URL
		}
		c.Set(ch)
		return parseState{change: ch, category: Uncategorized}
	}

	if s.change == nil {
		c.Header = append(c.Header, line)
		return s
	}

	s.category = streamlineBody(s.change, s.category, line)
	return s
}

// streamlineBody records a body line of ch and returns the slot that
// following lines go to. Unknown category headers leave the slot unchanged.
func streamlineBody(ch *Change, k CategoryKind, line string) CategoryKind {
	if !isCategory(line) {
		ch.Streamline(k, line)
		return k
	}

	ch.appendRaw(line)
	if next, ok := ParseCategoryKind(line[4:]); ok {
		return next
	}
	return k
}

// Parse builds a document from newline-stripped lines. It never fails:
// unknown shapes degrade to header text, raw text or unparsed dates.
func Parse(lines []string) *Changelog {
	c := New()
	var s parseState
	for _, line := range lines {
		s = step(c, s, line)
	}
	return c
}

// ParseString splits text into lines and parses them.
func ParseString(text string) *Changelog {
	return Parse(splitLines(text))
}

// splitLines splits text on "\n" or "\r\n". A final line terminator does not
// produce an extra empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// LoadFromReader parses a changelog from r.
func LoadFromReader(r io.Reader) (*Changelog, error) {
	c := New()
	var s parseState

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		s = step(c, s, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading changelog: %w", err)
	}

	return c, nil
}

// Load reads and parses the changelog at path.
func Load(path string) (*Changelog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening changelog file: %w", err)
	}
	defer f.Close()

	return LoadFromReader(f)
}
