package generator

import (
	"fmt"

	"github.com/uiforge/uiforge/internal/adapter"
	"github.com/uiforge/uiforge/internal/component"
)

// extensions maps each target to the file extension of its component files.
var extensions = map[adapter.Framework]string{
	adapter.FrameworkReact:  "tsx",
	adapter.FrameworkVue:    "vue",
	adapter.FrameworkSvelte: "svelte",
	adapter.FrameworkNextJS: "tsx",
}

// GenerateComponent resolves the adapter for the requested framework and
// renders the component tree with it.
func GenerateComponent(def *component.Definition, framework adapter.Framework) (string, error) {
	a, err := adapter.Lookup(framework)
	if err != nil {
		return "", err
	}
	return a.GenerateComponent(def), nil
}

// GenerateProject renders every component tree for the requested framework
// and returns a mapping of filename to source text, including the target's
// constant scaffolding files. The function performs no I/O; writing the
// mapping anywhere is the caller's responsibility.
func GenerateProject(defs []component.Definition, framework adapter.Framework) (map[string]string, error) {
	a, err := adapter.Lookup(framework)
	if err != nil {
		return nil, err
	}

	files := make(map[string]string, len(defs)+2)
	for i := range defs {
		name := fmt.Sprintf("%s.%s", defs[i].Name, Extension(framework))
		files[name] = a.GenerateComponent(&defs[i])
	}

	for name, content := range scaffoldFiles(framework) {
		files[name] = content
	}

	return files, nil
}

// Extension returns the component-file extension for a framework. Unknown
// frameworks fall back to "tsx".
func Extension(framework adapter.Framework) string {
	if ext, ok := extensions[framework]; ok {
		return ext
	}
	return "tsx"
}
