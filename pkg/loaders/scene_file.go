package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/AmineEl59/ProjetRayTracer/pkg/core"
	"github.com/AmineEl59/ProjetRayTracer/pkg/geometry"
	"github.com/AmineEl59/ProjetRayTracer/pkg/lights"
	"github.com/AmineEl59/ProjetRayTracer/pkg/scene"
)

var (
	ErrSyntax          = errors.New("syntax error")
	ErrColorConstraint = errors.New("ambient + diffuse exceeds 1.0")
	ErrLightConstraint = errors.New("sum of light colors exceeds 1.0")
	ErrVertexIndex     = errors.New("vertex index out of range")
	ErrInvalidPath     = errors.New("invalid scene path")
	ErrNoCamera        = scene.ErrNoCamera
)

// ParseError reports the line a scene file was rejected at.
// Line is zero for errors detected after the whole file was read.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("scene: %v", e.Err)
	}
	return fmt.Sprintf("scene line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SceneParser holds the sticky material state while reading a scene file
type SceneParser struct {
	scene     *scene.Scene
	diffuse   core.Color
	specular  core.Color
	shininess float64
	line      int
}

// NewSceneParser creates a parser with the default material state
func NewSceneParser() *SceneParser {
	defaults := geometry.DefaultMaterial()
	return &SceneParser{
		scene:     scene.New(),
		diffuse:   defaults.Diffuse,
		specular:  defaults.Specular,
		shininess: defaults.Shininess,
	}
}

// ParseScene parses a scene description from an io.Reader and validates it
func ParseScene(reader io.Reader) (*scene.Scene, error) {
	parser := NewSceneParser()

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		parser.line++
		if err := parser.processLine(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	if err := parser.finalize(); err != nil {
		return nil, err
	}
	return parser.scene, nil
}

// LoadScene loads and parses a scene file
func LoadScene(filename string) (*scene.Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	return ParseScene(file)
}

// ResolveScenePath maps a bare scene name to a file inside dir.
// Names that would escape dir or that are not scene files are rejected.
func ResolveScenePath(dir, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: name cannot be empty", ErrInvalidPath)
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", fmt.Errorf("%w: directory traversal not allowed", ErrInvalidPath)
	}
	if !slices.Contains(scene.SceneExtensions, strings.ToLower(filepath.Ext(name))) {
		return "", fmt.Errorf("%w: unsupported file type %q", ErrInvalidPath, filepath.Ext(name))
	}
	return filepath.Join(dir, name), nil
}

func (p *SceneParser) fail(text string, err error) error {
	return &ParseError{Line: p.line, Text: text, Err: err}
}

// processLine applies a single command to the scene under construction
func (p *SceneParser) processLine(raw string) error {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	fields := strings.Fields(line)
	command, args := fields[0], fields[1:]
	s := p.scene

	switch command {
	case "size":
		values, err := parseInts(args, 2)
		if err != nil {
			return p.fail(line, err)
		}
		s.Width, s.Height = values[0], values[1]

	case "output":
		if len(args) < 1 {
			return p.fail(line, fmt.Errorf("%w: output needs a file name", ErrSyntax))
		}
		s.Output = args[0]

	case "camera":
		values, err := parseFloats(args, 10)
		if err != nil {
			return p.fail(line, err)
		}
		s.Camera = &scene.Camera{
			LookFrom: core.NewPoint(values[0], values[1], values[2]),
			LookAt:   core.NewPoint(values[3], values[4], values[5]),
			Up:       core.NewVec3(values[6], values[7], values[8]),
			FOV:      values[9],
		}

	case "ambient":
		ambient, err := parseColor(args)
		if err != nil {
			return p.fail(line, err)
		}
		if ambient.ExceedsOne(p.diffuse) {
			return p.fail(line, ErrColorConstraint)
		}
		s.Ambient = ambient

	case "diffuse":
		diffuse, err := parseColor(args)
		if err != nil {
			return p.fail(line, err)
		}
		if s.Ambient.ExceedsOne(diffuse) {
			return p.fail(line, ErrColorConstraint)
		}
		p.diffuse = diffuse

	case "specular":
		specular, err := parseColor(args)
		if err != nil {
			return p.fail(line, err)
		}
		p.specular = specular

	case "shininess":
		values, err := parseFloats(args, 1)
		if err != nil {
			return p.fail(line, err)
		}
		p.shininess = values[0]

	case "directional":
		values, err := parseFloats(args, 6)
		if err != nil {
			return p.fail(line, err)
		}
		s.AddLight(lights.NewDirectional(
			core.NewVec3(values[0], values[1], values[2]),
			core.NewColor(values[3], values[4], values[5]),
		))

	case "point":
		values, err := parseFloats(args, 6)
		if err != nil {
			return p.fail(line, err)
		}
		s.AddLight(lights.NewPoint(
			core.NewPoint(values[0], values[1], values[2]),
			core.NewColor(values[3], values[4], values[5]),
		))

	case "maxverts":
		values, err := parseInts(args, 1)
		if err != nil {
			return p.fail(line, err)
		}
		s.MaxVerts = values[0]

	case "vertex":
		values, err := parseFloats(args, 3)
		if err != nil {
			return p.fail(line, err)
		}
		s.Vertices = append(s.Vertices, core.NewPoint(values[0], values[1], values[2]))

	case "sphere":
		values, err := parseFloats(args, 4)
		if err != nil {
			return p.fail(line, err)
		}
		s.AddShape(geometry.NewSphere(core.NewPoint(values[0], values[1], values[2]), values[3], p.material()))

	case "plane":
		values, err := parseFloats(args, 6)
		if err != nil {
			return p.fail(line, err)
		}
		s.AddShape(geometry.NewPlane(
			core.NewPoint(values[0], values[1], values[2]),
			core.NewVec3(values[3], values[4], values[5]),
			p.material(),
		))

	case "tri":
		indices, err := parseInts(args, 3)
		if err != nil {
			return p.fail(line, err)
		}
		vertices := make([]core.Point, 3)
		for i, idx := range indices {
			if idx < 0 || idx >= s.MaxVerts {
				return p.fail(line, fmt.Errorf("%w: %d not in [0,%d)", ErrVertexIndex, idx, s.MaxVerts))
			}
			if idx >= len(s.Vertices) {
				return p.fail(line, fmt.Errorf("%w: vertex %d is not defined yet", ErrVertexIndex, idx))
			}
			vertices[i] = s.Vertices[idx]
		}
		s.AddShape(geometry.NewTriangle(vertices[0], vertices[1], vertices[2], p.material()))

	case "maxdepth":
		values, err := parseInts(args, 1)
		if err != nil {
			return p.fail(line, err)
		}
		s.MaxDepth = values[0]

	default:
		// Unknown commands are ignored
	}

	return nil
}

// material snapshots the current material state for a new shape
func (p *SceneParser) material() geometry.Material {
	return geometry.Material{
		Diffuse:   p.diffuse,
		Specular:  p.specular,
		Shininess: p.shininess,
	}
}

// finalize runs the whole-scene checks once every line has been read
func (p *SceneParser) finalize() error {
	total := lights.TotalColor(p.scene.Lights)
	if total.ExceedsOne(core.Black) {
		return &ParseError{Err: fmt.Errorf("%w: got (%.2f, %.2f, %.2f)", ErrLightConstraint, total.R, total.G, total.B)}
	}
	if err := p.scene.Validate(); err != nil {
		return &ParseError{Err: err}
	}
	return nil
}

func parseFloats(args []string, n int) ([]float64, error) {
	if len(args) < n {
		return nil, fmt.Errorf("%w: expected %d arguments, got %d", ErrSyntax, n, len(args))
	}
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid number %q", ErrSyntax, args[i])
		}
		values[i] = v
	}
	return values, nil
}

func parseInts(args []string, n int) ([]int, error) {
	if len(args) < n {
		return nil, fmt.Errorf("%w: expected %d arguments, got %d", ErrSyntax, n, len(args))
	}
	values := make([]int, n)
	for i := 0; i < n; i++ {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid integer %q", ErrSyntax, args[i])
		}
		values[i] = v
	}
	return values, nil
}

func parseColor(args []string) (core.Color, error) {
	values, err := parseFloats(args, 3)
	if err != nil {
		return core.Color{}, err
	}
	return core.NewColor(values[0], values[1], values[2]), nil
}
