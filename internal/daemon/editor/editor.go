// Package editor opens configuration files in the user's editor.
package editor

import (
	"os"
	"os/exec"
	"runtime"

	log "github.com/sirupsen/logrus"
)

// Open launches the user's editor on the given file and blocks until it
// exits. $EDITOR wins, then a platform default.
func Open(path string) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		if runtime.GOOS == "windows" {
			editor = "notepad"
		} else {
			editor = "vi"
		}
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// OpenAndThen edits a file on a background goroutine and runs then once the
// editor exits. The callback must not mutate engine state directly; it
// should enqueue a reload instead.
func OpenAndThen(path string, then func()) {
	go func() {
		if err := Open(path); err != nil {
			log.Warnf("editing %s failed: %v", path, err)
			return
		}
		then()
	}()
}
