package docs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Options controls one context bundle generation.
type Options struct {
	// Output is the bundle path, relative to the project root.
	Output string

	// ProjectName names the project in the bundle header.
	ProjectName string

	// Readme is the README path relative to the root.
	Readme string

	// ExtraDocs lists additional Markdown files for the preamble.
	ExtraDocs []string

	// DocFolders lists directories scanned recursively for preamble .md files.
	DocFolders []string

	// ExcludeFiles and ExcludeFolders drop paths from the codebase section.
	ExcludeFiles   []string
	ExcludeFolders []string

	// MaxCharacters caps each output file. Zero means the default budget.
	MaxCharacters int

	// SplitParts writes numbered part files instead of truncating.
	SplitParts bool
}

const defaultMaxCharacters = 500000

// Result reports what the generator wrote.
type Result struct {
	// Parts holds the written file paths, in order.
	Parts []string

	// DocsIncluded lists the preamble documents, sorted.
	DocsIncluded []string

	// FilesIncluded lists the codebase files that made it into the bundle.
	FilesIncluded []string

	// Eligible is the total number of codebase files that qualified.
	Eligible int

	// Truncated is set when the budget cut files from a single-file bundle.
	Truncated bool
}

// Generator builds context bundles for one project root.
type Generator struct {
	root   string
	logger *zap.Logger
	now    func() time.Time
}

// NewGenerator creates a generator rooted at the project directory.
func NewGenerator(root string, logger *zap.Logger) *Generator {
	return &Generator{root: root, logger: logger, now: time.Now}
}

// Generate walks the project, assembles the preamble and codebase sections,
// and writes one or more bundle files under the root.
func (g *Generator) Generate(opts Options) (*Result, error) {
	if opts.Output == "" {
		opts.Output = "output/project_context.md"
	}
	if opts.ProjectName == "" {
		opts.ProjectName = filepath.Base(g.root)
	}
	if opts.Readme == "" {
		opts.Readme = "README.md"
	}
	if opts.MaxCharacters <= 0 {
		opts.MaxCharacters = defaultMaxCharacters
	}

	docPaths, err := g.collectDocs(opts)
	if err != nil {
		return nil, err
	}

	skip := g.preambleSet(opts, docPaths)
	ignore, err := loadIgnoreList(filepath.Join(g.root, ".gitignore"))
	if err != nil {
		return nil, fmt.Errorf("parse .gitignore: %w", err)
	}

	eligible, err := g.collectFiles(opts, skip, ignore)
	if err != nil {
		return nil, err
	}

	preamble, err := g.buildPreamble(opts, docPaths)
	if err != nil {
		return nil, err
	}

	result := &Result{DocsIncluded: docPaths, Eligible: len(eligible)}
	if err := g.writeParts(opts, preamble, eligible, result); err != nil {
		return nil, err
	}

	g.logger.Info("Context bundle generated",
		zap.String("output", opts.Output),
		zap.Int("parts", len(result.Parts)),
		zap.Int("files", len(result.FilesIncluded)),
		zap.Int("eligible", result.Eligible),
		zap.Bool("truncated", result.Truncated),
	)

	return result, nil
}

// collectDocs merges the explicit doc list with every .md file found under
// the doc folders, deduplicated and sorted.
func (g *Generator) collectDocs(opts Options) ([]string, error) {
	seen := make(map[string]struct{})
	for _, p := range opts.ExtraDocs {
		seen[filepath.ToSlash(p)] = struct{}{}
	}

	for _, folder := range opts.DocFolders {
		dir := filepath.Join(g.root, folder)
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}

		err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
				return nil
			}
			rel, err := filepath.Rel(g.root, path)
			if err != nil {
				return err
			}
			seen[filepath.ToSlash(rel)] = struct{}{}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan doc folder %q: %w", folder, err)
		}
	}

	docs := make([]string, 0, len(seen))
	for p := range seen {
		docs = append(docs, p)
	}
	sort.Strings(docs)
	return docs, nil
}

// preambleSet lists files already rendered in the preamble so the codebase
// section does not duplicate them.
func (g *Generator) preambleSet(opts Options, docPaths []string) map[string]struct{} {
	skip := map[string]struct{}{
		filepath.ToSlash(opts.Readme): {},
	}
	for _, p := range docPaths {
		skip[p] = struct{}{}
	}
	for _, p := range opts.ExcludeFiles {
		skip[filepath.ToSlash(p)] = struct{}{}
	}
	return skip
}

// collectFiles walks the root and returns the sorted relative paths of every
// file eligible for the codebase section.
func (g *Generator) collectFiles(opts Options, skip map[string]struct{}, ignore *ignoreList) ([]string, error) {
	outputStem := strings.TrimSuffix(filepath.Base(opts.Output), filepath.Ext(opts.Output))

	excludedDirs := make(map[string]struct{}, len(opts.ExcludeFolders))
	for _, d := range opts.ExcludeFolders {
		excludedDirs[filepath.ToSlash(strings.TrimSuffix(d, "/"))] = struct{}{}
	}

	var files []string
	err := filepath.WalkDir(g.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(g.root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			if _, excluded := excludedDirs[rel]; excluded || ignore.Match(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if _, skipped := skip[rel]; skipped {
			return nil
		}
		if strings.Contains(rel, outputStem) || ignore.Match(rel) {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk project root: %w", err)
	}

	sort.Strings(files)
	return files, nil
}

// buildPreamble renders the bundle header, README, and supplemental docs.
func (g *Generator) buildPreamble(opts Options, docPaths []string) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# Project Context - %s\n\n", opts.ProjectName)
	fmt.Fprintf(&b, "**Generated On:** %s\n\n", g.now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "This document consolidates the %q project: overview, supplemental documentation, and the full current codebase.\n\n", opts.ProjectName)

	readme, err := os.ReadFile(filepath.Join(g.root, opts.Readme))
	switch {
	case err == nil:
		b.Write(readme)
		b.WriteString("\n\n")
	case os.IsNotExist(err):
		fmt.Fprintf(&b, "## Project Overview\n\n`%s` not found.\n\n", opts.Readme)
	default:
		return "", fmt.Errorf("read readme: %w", err)
	}

	for _, docPath := range docPaths {
		content, err := os.ReadFile(filepath.Join(g.root, docPath))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", fmt.Errorf("read doc %q: %w", docPath, err)
		}
		fmt.Fprintf(&b, "## %s\n\n", docTitle(docPath))
		b.Write(content)
		b.WriteString("\n\n")
	}

	b.WriteString("## Current Codebase Files\n\n")
	return b.String(), nil
}

// docTitle derives a section heading from a doc filename.
func docTitle(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	words := strings.Fields(strings.ReplaceAll(stem, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// writeParts streams file blocks into one or more part files, honoring the
// character budget.
func (g *Generator) writeParts(opts Options, preamble string, eligible []string, result *Result) error {
	continuation := fmt.Sprintf("# Project Context - %s (Continued)\n\n## Current Codebase Files (Continued)\n\n", opts.ProjectName)

	var part strings.Builder
	part.WriteString(preamble)
	partNum := 1

	flush := func() error {
		path, err := g.writePart(opts, partNum, part.String())
		if err != nil {
			return err
		}
		result.Parts = append(result.Parts, path)
		part.Reset()
		return nil
	}

	for _, rel := range eligible {
		block, err := g.renderBlock(rel)
		if err != nil {
			return err
		}

		if part.Len()+len(block) > opts.MaxCharacters {
			if !opts.SplitParts {
				result.Truncated = true
				break
			}
			if err := flush(); err != nil {
				return err
			}
			partNum++
			part.WriteString(continuation)
		}

		part.WriteString(block)
		result.FilesIncluded = append(result.FilesIncluded, rel)
	}

	return flush()
}

// renderBlock fences one source file as a Markdown section. Binary files
// get a placeholder instead of raw bytes.
func (g *Generator) renderBlock(rel string) (string, error) {
	content, err := os.ReadFile(filepath.Join(g.root, rel))
	if err != nil {
		return "", fmt.Errorf("read %q: %w", rel, err)
	}

	lang := languageOf(rel)
	body := string(content)
	if !utf8.ValidString(body) {
		body = "[Content not included: file is not UTF-8 encoded, likely binary]"
		lang = "text"
	}

	return fmt.Sprintf("### File: `%s`\n\n```%s\n%s\n```\n\n", rel, lang, body), nil
}

// writePart writes one bundle file, suffixing part numbers past the first.
func (g *Generator) writePart(opts Options, partNum int, content string) (string, error) {
	name := opts.Output
	if partNum > 1 {
		ext := filepath.Ext(name)
		name = strings.TrimSuffix(name, ext) + fmt.Sprintf("_part_%d", partNum) + ext
	}

	path := filepath.Join(g.root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(strings.TrimSpace(content)), 0o644); err != nil {
		return "", fmt.Errorf("write %q: %w", name, err)
	}
	return path, nil
}

// languageOf picks a fence language from the file extension.
func languageOf(rel string) string {
	switch filepath.Ext(rel) {
	case ".go":
		return "go"
	case ".py":
		return "python"
	case ".json":
		return "json"
	case ".md":
		return "markdown"
	case ".yaml", ".yml":
		return "yaml"
	case ".sql":
		return "sql"
	default:
		return "text"
	}
}
