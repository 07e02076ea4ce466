package workflows

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

// titleSeparators are stripped after a matched title prefix.
const titleSeparators = " \t:-|/–—"

// ParseOptions controls how display names are derived.
type ParseOptions struct {
	// TitlePrefix is removed case-insensitively from declared names,
	// together with any separator characters that follow it.
	TitlePrefix string
}

// Parse builds a Record from the raw contents of a workflow file.
//
// relPath is the slash-separated path of the file relative to the
// repository root; it becomes Record.FilePath.
func Parse(relPath string, data []byte, opts ParseOptions) (Record, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Record{}, fmt.Errorf("failed to unmarshal workflow: %w", err)
	}
	if len(root.Content) == 0 || resolveAlias(root.Content[0]).Kind != yaml.MappingNode {
		return Record{}, errors.New("workflow must be a YAML mapping")
	}

	var doc document
	if err := root.Decode(&doc); err != nil {
		return Record{}, fmt.Errorf("failed to decode workflow: %w", err)
	}
	if doc.On.Kind == 0 {
		return Record{}, errors.New("workflow has no 'on' trigger section")
	}

	fileName := path.Base(relPath)
	rec := Record{
		FilePath:    relPath,
		FileName:    fileName,
		Description: ExtractDescription(data),
	}

	title := ""
	if doc.Name != nil {
		title = *doc.Name
	}
	rec.Name = DisplayName(title, fileName, opts.TitlePrefix)

	callNode, reusable := findCallable(&doc.On)
	rec.IsReusable = reusable
	if callNode == nil || isEmpty(callNode) {
		return rec, nil
	}
	if callNode.Kind != yaml.MappingNode {
		return Record{}, fmt.Errorf("line %d: %s must be a mapping", callNode.Line, CallableTrigger)
	}

	var call callable
	if err := callNode.Decode(&call); err != nil {
		return Record{}, fmt.Errorf("failed to decode %s: %w", CallableTrigger, err)
	}

	var err error
	if rec.Inputs, err = decodeParams(&call.Inputs); err != nil {
		return Record{}, fmt.Errorf("inputs: %w", err)
	}
	if rec.Outputs, err = decodeParams(&call.Outputs); err != nil {
		return Record{}, fmt.Errorf("outputs: %w", err)
	}
	if rec.Secrets, err = decodeParams(&call.Secrets); err != nil {
		return Record{}, fmt.Errorf("secrets: %w", err)
	}

	return rec, nil
}

// LoadYAML reads and parses a workflow file.
//
// LoadYAML combines file reading with parsing - it returns an error
// if the file cannot be read or if the workflow content is invalid.
func LoadYAML(filePath, relPath string, opts ParseOptions) (Record, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Record{}, err
	}
	return Parse(relPath, data, opts)
}

// DisplayName derives the name shown in generated documentation.
//
// A declared title has prefix stripped when the prefix matches as a whole
// word. An empty title falls back to the file name without its extension.
func DisplayName(title, fileName, prefix string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return strings.TrimSuffix(fileName, path.Ext(fileName))
	}
	if prefix == "" {
		return title
	}

	titleRunes := []rune(title)
	n := len([]rune(prefix))
	if len(titleRunes) < n {
		return title
	}

	fold := cases.Fold()
	if fold.String(string(titleRunes[:n])) != fold.String(prefix) {
		return title
	}
	if len(titleRunes) > n && !strings.ContainsRune(titleSeparators, titleRunes[n]) {
		return title
	}

	rest := strings.TrimLeft(string(titleRunes[n:]), titleSeparators)
	if rest == "" {
		return title
	}
	return rest
}

// ExtractDescription returns the first non-empty comment body that appears
// before the first non-comment line of data.
//
// Blank lines and empty comments are skipped. NoDescription is returned when
// no such comment exists.
func ExtractDescription(data []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "#") {
			break
		}
		if body := strings.TrimSpace(strings.TrimLeft(line, "#")); body != "" {
			return body
		}
	}
	return NoDescription
}

// IsCallableText reports whether raw workflow text mentions the callable
// trigger. It is a textual check and does not parse the document.
func IsCallableText(data []byte) bool {
	return bytes.Contains(data, []byte(CallableTrigger))
}
