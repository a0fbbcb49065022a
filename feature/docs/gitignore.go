package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ignorePattern is one compiled .gitignore line.
type ignorePattern struct {
	re       *regexp.Regexp
	negated  bool
	baseOnly bool
}

// ignoreList applies .gitignore patterns in order, last match wins.
type ignoreList struct {
	patterns []ignorePattern
}

// loadIgnoreList parses a .gitignore file. A missing file yields an empty
// list rather than an error.
func loadIgnoreList(path string) (*ignoreList, error) {
	list := &ignoreList{}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return list, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		negated := strings.HasPrefix(line, "!")
		if negated {
			line = line[1:]
		}

		pattern, baseOnly := compileIgnore(line)
		list.patterns = append(list.patterns, ignorePattern{
			re:       pattern,
			negated:  negated,
			baseOnly: baseOnly,
		})
	}
	return list, scanner.Err()
}

// compileIgnore turns one .gitignore line into a regexp over slash-separated
// relative paths. Slashless patterns additionally match on basename alone.
func compileIgnore(line string) (*regexp.Regexp, bool) {
	anchored := strings.HasPrefix(line, "/")
	dirOnly := strings.HasSuffix(line, "/")
	trimmed := strings.Trim(line, "/")

	expr := regexp.QuoteMeta(trimmed)
	expr = strings.ReplaceAll(expr, `\*`, `[^/]*`)
	expr = strings.ReplaceAll(expr, `\?`, `[^/]`)

	if dirOnly {
		expr += `(/.*)?`
	}

	baseOnly := !strings.Contains(trimmed, "/")
	switch {
	case anchored:
		expr = "^" + expr
	case baseOnly:
		expr = `(^|.*/)` + expr
	default:
		expr = "^" + expr
	}

	return regexp.MustCompile(expr + "$"), baseOnly && !anchored
}

// Match reports whether the slash-separated relative path is ignored.
func (l *ignoreList) Match(rel string) bool {
	rel = filepath.ToSlash(rel)
	base := filepath.Base(rel)

	ignored := false
	for _, p := range l.patterns {
		hit := p.re.MatchString(rel)
		if !hit && p.baseOnly {
			hit = p.re.MatchString(base)
		}
		if hit {
			ignored = !p.negated
		}
	}
	return ignored
}
