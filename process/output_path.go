package process

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"cssp/config"
	"cssp/css"
	"cssp/source"
	"cssp/state"
)

// buildOutputPath determines output file name and path based on stylesheet
// origin and configuration. User defined name template takes precedence, when
// it is empty or fails to expand default naming scheme is used.
func buildOutputPath(sheet source.Sheet, parsed *css.Stylesheet, dst string, env *state.LocalEnv) string {
	outDir := determineOutputDir(sheet.Path, dst, env)
	defaultFile := buildFileName(sheet, env)

	if env.Cfg.Output.NameTemplate == "" {
		return filepath.Join(outDir, defaultFile)
	}

	expandedName := expandOutputNameTemplate(sheet, parsed, env)
	if expandedName == "" {
		return filepath.Join(outDir, defaultFile)
	}
	return assemblePathWithSubdirs(outDir, defaultFile, expandedName, env)
}

func determineOutputDir(src, dst string, env *state.LocalEnv) string {
	if env.NoDirs {
		return dst
	}
	return filepath.Join(dst, filepath.Dir(src))
}

// buildFileName derives output name from source base name, embedded
// stylesheets get their number appended: "index.html#2" -> "index-2.txt".
func buildFileName(sheet source.Sheet, env *state.LocalEnv) string {
	baseName := strings.TrimSuffix(filepath.Base(sheet.Path), filepath.Ext(sheet.Path))
	if sheet.Index > 0 {
		baseName += "-" + strconv.Itoa(sheet.Index)
	}
	return cleanPathSegment(baseName, env) + env.Format.Ext()
}

func expandOutputNameTemplate(sheet source.Sheet, parsed *css.Stylesheet, env *state.LocalEnv) string {
	expandedName, err := expandTemplate(config.NameTemplateFieldName, env.Cfg.Output.NameTemplate, sheet, parsed, env.Format)
	if err != nil {
		env.Log.Warn("Unable to prepare output filename", zap.String("source", sheet.Name()), zap.Error(err))
		return ""
	}
	return strings.TrimSpace(expandedName)
}

// assemblePathWithSubdirs places expanded name (which may contain "/"
// separated subdirectories) under outDir cleaning every segment. Segments
// trying to step out of outDir are skipped.
func assemblePathWithSubdirs(outDir, defaultFile, expandedName string, env *state.LocalEnv) string {
	segments := make([]string, 0, 8)
	for seg := range strings.SplitSeq(filepath.ToSlash(expandedName), "/") {
		if seg = strings.TrimSpace(seg); seg == "" || seg == "." || seg == ".." {
			continue
		}
		segments = append(segments, cleanPathSegment(seg, env))
	}
	if len(segments) == 0 {
		return filepath.Join(outDir, defaultFile)
	}

	segments[len(segments)-1] += env.Format.Ext()
	return filepath.Join(append([]string{outDir}, segments...)...)
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg.Output.SlugifyNames {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
