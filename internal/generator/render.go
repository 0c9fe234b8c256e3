package generator

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/techsavvyash/stencil-cli/internal/manifest"
)

// collectionsFS embeds every collection template set. The all: prefix keeps
// dotfile templates such as .env.example.tmpl in the bundle.
//
//go:embed all:collections
var collectionsFS embed.FS

// ManifestFileName is the metadata file at the root of every collection set.
// It describes the collection and is not part of the generated project.
const ManifestFileName = "collection.yaml"

// Manifest returns the parsed manifest of an embedded collection.
func Manifest(name string) (*manifest.CollectionManifest, error) {
	data, err := fs.ReadFile(collectionsFS, path.Join("collections", name, ManifestFileName))
	if err != nil {
		return nil, fmt.Errorf("collection %q not found: %w", name, err)
	}
	return manifest.ParseBytes(data)
}

// embeddedCollection renders a template set bundled into the binary.
type embeddedCollection struct {
	name string
}

func (c *embeddedCollection) Name() string { return c.name }

// Generate renders the collection's templates into outputDir. Templates may
// live in subdirectories (src/, test/); the directory layout is mirrored in
// the output and the .tmpl extension is stripped from every rendered file.
func (c *embeddedCollection) Generate(data *TemplateData, outputDir string) (*Result, error) {
	templatesDir := path.Join("collections", c.name)

	// Verify the template set exists in the embedded FS.
	if _, err := fs.ReadDir(collectionsFS, templatesDir); err != nil {
		return nil, fmt.Errorf("collection %q not found: %w", c.name, err)
	}

	// Create the output directory.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	// Check for existing files to prevent accidental overwrites.
	existingEntries, err := os.ReadDir(outputDir)
	if err == nil && len(existingEntries) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}

	result := &Result{
		OutputDir: outputDir,
	}

	walkErr := fs.WalkDir(collectionsFS, templatesDir, func(tmplPath string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(tmplPath, templatesDir+"/")
		if rel == ManifestFileName {
			return nil
		}

		tmplBytes, err := fs.ReadFile(collectionsFS, tmplPath)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", tmplPath, err)
		}

		// Strip the .tmpl extension for the output filename.
		outName := strings.TrimSuffix(rel, ".tmpl")
		outPath := filepath.Join(outputDir, filepath.FromSlash(outName))

		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", outName, err)
		}

		// Parse and execute the Go template.
		tmpl, err := template.New(path.Base(tmplPath)).Parse(string(tmplBytes))
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", rel, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return fmt.Errorf("executing template %s: %w", rel, err)
		}

		if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}

		result.Files = append(result.Files, outName)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	// Surface issues in the collection's own manifest as warnings rather
	// than failing a generation that already wrote its files.
	manifestBytes, err := fs.ReadFile(collectionsFS, path.Join(templatesDir, ManifestFileName))
	if err == nil {
		valResult, valErr := manifest.Validate(manifestBytes)
		if valErr != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Could not validate collection manifest: %v", valErr))
		} else if !valResult.Valid {
			for _, issue := range valResult.Issues {
				msg := issue.Message
				if issue.Path != "" {
					msg = issue.Path + ": " + msg
				}
				result.Warnings = append(result.Warnings, msg)
			}
		}
	}

	return result, nil
}
