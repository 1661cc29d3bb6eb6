package orchestrator

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

// ReleaseLockPath derives the lock file location for a repository rooted at
// dir. The path is stable per directory so concurrent invocations contend
// on the same lock.
func ReleaseLockPath(dir string) string {
	sum := sha256.Sum256([]byte(dir))
	return filepath.Join(os.TempDir(), fmt.Sprintf("gitx-release-%s.lock", hex.EncodeToString(sum[:8])))
}
