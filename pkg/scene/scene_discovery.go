package scene

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	TypeBuiltin = "builtin"
	TypeFile    = "file"

	builtinGroup = "Built-in Scenes"
	fileGroup    = "Scene Files"
)

// SceneExtensions lists the file suffixes picked up by ListSceneFiles
var SceneExtensions = []string{".scene", ".test"}

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath"`    // Path to scene file (file type only)
	Variant     string `json:"variant"`     // Variant name (optional)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

type builtin struct {
	info SceneInfo
	make func() *Scene
}

var builtins = []builtin{
	{
		info: SceneInfo{ID: "cornell-box", Name: "Cornell Box", Description: "Cornell box of triangles with a mirror sphere"},
		make: NewCornellScene,
	},
	{
		info: SceneInfo{ID: "basic", Name: "Default Scene", Description: "Spheres, a triangle and a ground plane"},
		make: NewDefaultScene,
	},
	{
		info: SceneInfo{ID: "sphere-grid", Name: "Sphere Grid", Description: "10x10 grid of rainbow-colored reflective spheres"},
		make: NewSphereGridScene,
	},
}

// BuiltinScenes returns the metadata of every scene constructed in code
func BuiltinScenes() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		info := b.info
		info.DisplayName = info.Name
		info.Group = builtinGroup
		info.Type = TypeBuiltin
		infos = append(infos, info)
	}
	return infos
}

// NewBuiltinScene builds the scene registered under id
func NewBuiltinScene(id string) (*Scene, bool) {
	for _, b := range builtins {
		if b.info.ID == id {
			return b.make(), true
		}
	}
	return nil, false
}

// ListSceneFiles scans dir for scene description files. A missing directory yields an empty list.
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	var files []string
	for _, ext := range SceneExtensions {
		matches, err := filepath.Glob(filepath.Join(dir, "*"+ext))
		if err != nil {
			return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
		}
		files = append(files, matches...)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		sceneInfo, err := ParseSceneMetadata(filePath)
		if err != nil {
			// Keep going, one unreadable header should not hide the rest
			log.Warn().Err(err).Str("path", filePath).Msg("failed to parse scene metadata")
			continue
		}
		scenes = append(scenes, sceneInfo)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// ParseSceneMetadata extracts metadata from the leading comment block of a scene file:
//
//	# Scene: Cornell Box
//	# Variant: Mirror
//	# Description: ...
//	# Group: ...
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	sceneInfo := SceneInfo{
		ID:          fmt.Sprintf("%s:%s", TypeFile, nameWithoutExt),
		Name:        titleCase(nameWithoutExt),
		DisplayName: titleCase(nameWithoutExt),
		Group:       fileGroup,
		Type:        TypeFile,
		FilePath:    filePath,
	}

	file, err := os.Open(filePath)
	if err != nil {
		// Unreadable files still get listed under their filename
		return sceneInfo, nil
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "#") {
			break
		}

		content := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		key, value, found := strings.Cut(content, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		switch strings.TrimSpace(key) {
		case "Scene":
			sceneInfo.Name = value
		case "Variant":
			sceneInfo.Variant = value
		case "Description":
			sceneInfo.Description = value
		case "Group":
			sceneInfo.Group = value
		}
	}

	if sceneInfo.Variant != "" {
		sceneInfo.DisplayName = fmt.Sprintf("%s - %s", sceneInfo.Name, sceneInfo.Variant)
	} else {
		sceneInfo.DisplayName = sceneInfo.Name
	}

	return sceneInfo, scanner.Err()
}

// ListAllScenes returns both built-in scenes and the scene files in dir, grouped by category
func ListAllScenes(dir string) (ScenesResponse, error) {
	var response ScenesResponse

	fileScenes, err := ListSceneFiles(dir)
	if err != nil {
		return response, fmt.Errorf("failed to list scene files: %w", err)
	}

	allScenes := append(BuiltinScenes(), fileScenes...)

	groupMap := make(map[string][]SceneInfo)
	for _, scene := range allScenes {
		groupMap[scene.Group] = append(groupMap[scene.Group], scene)
	}

	// Built-in first, then alphabetical
	var groupNames []string
	for groupName := range groupMap {
		if groupName != builtinGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	if group, exists := groupMap[builtinGroup]; exists {
		response.Groups = append(response.Groups, SceneGroup{Name: builtinGroup, Scenes: group})
	}
	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   groupName,
			Scenes: groupMap[groupName],
		})
	}

	return response, nil
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-empty" -> "Cornell Empty"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
