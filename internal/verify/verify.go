package verify

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/amaumene/envrun/internal/config"
	log "github.com/sirupsen/logrus"
)

// groupOtherBits flags env files readable by anyone but the owner.
const groupOtherBits = 0o077

type Result struct {
	Errors   []string
	Warnings []string
}

func (r *Result) OK() bool {
	return len(r.Errors) == 0
}

func (r *Result) addError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) addWarning(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Setup checks that the loaded environment and dispatch target are
// usable before anything is executed. Errors abort the run; warnings
// are logged and the run proceeds.
func Setup(cfg *config.Config, values map[string]string) *Result {
	res := &Result{}

	checkKeys(res, values)
	checkDocPath(res, values)
	checkEnvFilePermissions(res, cfg.EnvFile)
	checkCommand(res, cfg.Command)

	for _, warning := range res.Warnings {
		log.WithField("check", warning).Warn("setup verification")
	}
	for _, failure := range res.Errors {
		log.WithField("check", failure).Error("setup verification")
	}

	return res
}

func checkKeys(res *Result, values map[string]string) {
	if values["OPENAI_API_KEY"] == "" {
		res.addError("OPENAI_API_KEY not set")
	}
	if values["TAVILY_API_KEY"] == "" {
		res.addWarning("TAVILY_API_KEY not set, web search may be limited")
	}
	if values["RETRIEVER"] == "" {
		res.addWarning("RETRIEVER not set, default retriever will be used")
	}
}

func checkDocPath(res *Result, values map[string]string) {
	docPath, ok := values["DOC_PATH"]
	if !ok || docPath == "" {
		res.addWarning("DOC_PATH not set, local document search disabled")
		return
	}

	info, err := os.Stat(docPath)
	if err != nil || !info.IsDir() {
		res.addWarning("DOC_PATH directory not found: %s", docPath)
		return
	}

	log.WithFields(log.Fields{
		"path":  docPath,
		"files": countFiles(docPath),
	}).Info("local documents available")
}

func checkEnvFilePermissions(res *Result, path string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if mode := info.Mode().Perm(); mode&groupOtherBits != 0 {
		res.addWarning("%s is readable by group/other (mode %04o), restrict to owner only", path, mode)
	}
}

func checkCommand(res *Result, command string) {
	if _, err := exec.LookPath(command); err != nil {
		res.addError("command not found on PATH: %s", command)
	}
}

func countFiles(root string) int {
	count := 0
	_ = filepath.WalkDir(root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			count++
		}
		return nil
	})
	return count
}
