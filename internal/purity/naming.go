package purity

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/schemaguard/schemaguard/internal/pysrc"
	"github.com/schemaguard/schemaguard/internal/violation"
)

// namingRules are the directory-derived prefix expectations for a schema
// module.
type namingRules struct {
	filePrefix  string
	classPrefix string
}

// namingRulesFor derives the expected prefixes from the file's path. Files
// outside a models/ or enums/ directory are not schema modules and are not
// checked at all.
func namingRulesFor(path string) (namingRules, bool) {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		switch part {
		case "models":
			return namingRules{filePrefix: "model_", classPrefix: "Model"}, true
		case "enums":
			return namingRules{filePrefix: "enum_", classPrefix: "Enum"}, true
		}
	}
	return namingRules{}, false
}

func isInitFile(path string) bool {
	return filepath.Base(path) == "__init__.py"
}

// checkFileName verifies the file-name prefix. This is a pure string check
// and runs before the file is read or parsed.
func checkFileName(path string, rules namingRules) []violation.Violation {
	name := filepath.Base(path)
	if strings.HasPrefix(name, rules.filePrefix) {
		return nil
	}
	return []violation.Violation{{
		File:     path,
		Line:     1,
		Category: violation.CategoryNamingFile,
		Message:  fmt.Sprintf("File '%s' needs prefix '%s'", name, rules.filePrefix),
	}}
}

// checkClassNames verifies top-level class names against the expected class
// prefix. Nested classes are not checked, and a leading underscore marks a
// private class that is exempt.
func checkClassNames(f *pysrc.File, rules namingRules) []violation.Violation {
	var out []violation.Violation
	for _, node := range pysrc.NamedChildren(f.Root()) {
		classNode := node
		if node.Type() == pysrc.KindDecoratedDef {
			if def := node.ChildByFieldName("definition"); def != nil {
				classNode = def
			}
		}
		if classNode.Type() != pysrc.KindClassDef {
			continue
		}
		nameNode := classNode.ChildByFieldName("name")
		if nameNode == nil {
			continue
		}
		name := f.Text(nameNode)
		if strings.HasPrefix(name, rules.classPrefix) || strings.HasPrefix(name, "_") {
			continue
		}
		out = append(out, violation.Violation{
			File:     f.Path,
			Line:     pysrc.Line(classNode),
			Category: violation.CategoryNamingClass,
			Message:  fmt.Sprintf("Class '%s' should start with '%s'", name, rules.classPrefix),
		})
	}
	return out
}
