// Package theme discovers and selects the Hugo theme directory the block
// template is written into.
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/technative-website/quiqr-scaffold-block/internal/prompt"
)

// namePattern restricts new theme directory names to filesystem-safe names.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

const createNewLabel = "Create a new theme"

// List returns the theme directory names under <projectRoot>/themes, sorted
// by name. A missing themes directory is an empty list, not an error.
func List(projectRoot string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(projectRoot, "themes"))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading themes directory: %w", err)
	}

	var themes []string
	for _, e := range entries {
		if e.IsDir() {
			themes = append(themes, e.Name())
		}
	}
	return themes, nil
}

// Choose resolves which theme receives the block template. A preferred theme
// that exists wins without prompting. With no themes installed the user
// names a new one; with exactly one it is used as-is; with several the user
// picks from a menu that also offers creating a new theme.
func Choose(projectRoot, preferred string, p *prompt.Prompter) (string, error) {
	themes, err := List(projectRoot)
	if err != nil {
		return "", err
	}

	if preferred != "" {
		for _, t := range themes {
			if t == preferred {
				return t, nil
			}
		}
	}

	switch len(themes) {
	case 0:
		return promptNewTheme(p)
	case 1:
		return themes[0], nil
	}

	items := append(append([]string{}, themes...), createNewLabel)
	idx, err := p.Select("Select theme:", items)
	if err != nil {
		return "", err
	}
	if idx == len(themes) {
		return promptNewTheme(p)
	}
	return themes[idx], nil
}

func promptNewTheme(p *prompt.Prompter) (string, error) {
	return p.Input("Theme name", ValidateName)
}

// ValidateName checks that a theme name is usable as a directory name.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid theme name %q: must match %s", name, namePattern)
	}
	return nil
}
