package manifest

import (
	"path"
	"strings"
)

// SkillFile is the conventional main document inside a skill directory.
const SkillFile = "SKILL.md"

// Resolver maps a declared artifact path to the slash-separated,
// repository-relative path of the document to read. Alternate manifest
// layouts are supported by supplying a different Resolver.
type Resolver func(pluginSource string, kind Kind, artifact string) string

// ResolvePath is the default Resolver. It strips a leading "./" from both the
// plugin source and the artifact path and joins them. Skill paths name a
// directory unless they already end in SkillFile.
func ResolvePath(pluginSource string, kind Kind, artifact string) string {
	p := path.Join(trimDot(pluginSource), trimDot(artifact))
	if kind == KindSkill && !strings.HasSuffix(artifact, SkillFile) {
		p = path.Join(p, SkillFile)
	}
	return p
}

func trimDot(p string) string {
	return strings.TrimPrefix(p, "./")
}
