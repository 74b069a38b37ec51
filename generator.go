// Package safeargs generates strongly-typed Directions classes from a
// navigation graph: one holding class per destination with outgoing actions,
// one nested action class per action, with Bundle-backed argument passing.
//
// The pipeline is ir (validated graph model) → directions (class shapes) →
// java (source text) → sink (output). Generate drives it end to end.
package safeargs

import (
	"context"
	"errors"
	"fmt"

	"github.com/navgen/safeargs/directions"
	"github.com/navgen/safeargs/ir"
	"github.com/navgen/safeargs/java"
	"github.com/navgen/safeargs/sink"
)

// Config holds the configuration for code generation.
type Config struct {
	// DefaultPackage is the application package used to resolve
	// package-relative destination names (names with a leading dot).
	DefaultPackage string

	// OutDir is the directory generated files are written to. When empty,
	// Generate only returns the files in the result.
	OutDir string

	// Header overrides the generated-code marker comment.
	Header string

	// Indent overrides the emitted indentation (default: four spaces).
	Indent string
}

// GeneratedFile is one emitted compilation unit.
type GeneratedFile struct {
	// Path is the sink-relative path, e.g. "com/example/FooDirections.java".
	Path string

	// Package is the Java package of the holding class.
	Package string

	// Directions is the holding class's shape description.
	Directions directions.DirectionsShape

	// Content is the rendered Java source.
	Content []byte
}

// Result contains generation output.
type Result struct {
	// Files holds one entry per destination with outgoing actions,
	// in graph declaration order.
	Files []GeneratedFile
}

// CollisionError reports two destinations whose Directions classes resolve
// to the same fully qualified name.
type CollisionError struct {
	// ClassName is the colliding fully qualified class name.
	ClassName string

	// First and Second identify the colliding destinations.
	First  string
	Second string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("name_collision: destinations %s and %s both generate %s", e.First, e.Second, e.ClassName)
}

// Generate transforms a validated navigation graph into Directions files.
// Destinations without actions are skipped. The whole graph either generates
// or fails: model errors and name collisions abort without partial output.
// Output is deterministic in graph declaration order.
func Generate(ctx context.Context, graph *ir.Graph, cfg *Config) (*Result, error) {
	if graph == nil {
		return nil, errors.New("graph is required")
	}
	cfg = applyConfigDefaults(cfg)

	if errs := graph.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid navigation graph: %w", errors.Join(errs...))
	}

	emitter := java.NewEmitter(java.Config{Indent: cfg.Indent, Header: cfg.Header})

	result := &Result{}
	// The collision check covers the complete result set and names both
	// offending destinations, so files are tracked before any write.
	owners := make(map[string]string)
	for i := range graph.Destinations {
		dest := &graph.Destinations[i]
		file, err := directions.BuildFile(dest, cfg.DefaultPackage)
		if err != nil {
			return nil, err
		}
		if file == nil {
			continue
		}

		fqn := file.Directions.Name.String()
		if owner, taken := owners[fqn]; taken {
			return nil, &CollisionError{
				ClassName: fqn,
				First:     owner,
				Second:    dest.Identity(),
			}
		}
		owners[fqn] = dest.Identity()

		result.Files = append(result.Files, GeneratedFile{
			Path:       java.FilePath(file),
			Package:    file.Package,
			Directions: file.Directions,
			Content:    emitter.EmitFile(file),
		})
	}

	if cfg.OutDir != "" {
		if err := WriteResult(ctx, result, sink.NewFilesystemSink(cfg.OutDir)); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// WriteResult writes every generated file to the given sink.
func WriteResult(ctx context.Context, result *Result, out sink.OutputSink) error {
	for _, f := range result.Files {
		if err := out.WriteFile(ctx, f.Path, f.Content); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.Path, err)
		}
	}
	return nil
}

// applyConfigDefaults applies default values to Config.
func applyConfigDefaults(cfg *Config) *Config {
	if cfg == nil {
		return &Config{}
	}
	// Copy to avoid mutating the input.
	result := *cfg
	return &result
}
