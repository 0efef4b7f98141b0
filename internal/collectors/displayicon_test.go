package collectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func always(string) bool { return true }

func never(string) bool { return false }

func TestParseDisplayIcon(t *testing.T) {
	assert.Equal(t, `C:\app\foo.exe`, parseDisplayIcon(`C:\app\foo.exe`, always))
	assert.Equal(t, `C:\app\foo.exe`, parseDisplayIcon(`"C:\app\foo.exe"`, always))
	assert.Equal(t, `C:\app\foo.EXE`, parseDisplayIcon(` C:\app\foo.EXE `, always))
}

func TestParseDisplayIconIconIndexSuffix(t *testing.T) {
	assert.Equal(t, `C:\app\foo.exe`, parseDisplayIcon(`C:\app\foo.exe,0`, always))
	assert.Equal(t, `C:\app\foo.exe`, parseDisplayIcon(`"C:\app\foo.exe",1`, always))
}

func TestParseDisplayIconRejections(t *testing.T) {
	// Not an executable.
	assert.Empty(t, parseDisplayIcon(`C:\app\foo.ico`, always))
	// Executable that no longer exists.
	assert.Empty(t, parseDisplayIcon(`C:\app\gone.exe`, never))
	// Nothing to parse.
	assert.Empty(t, parseDisplayIcon("", always))
	assert.Empty(t, parseDisplayIcon(`""`, always))
}

func TestExpandWindowsEnv(t *testing.T) {
	t.Setenv("APPHUB_TEST_DIR", `C:\Apps`)

	assert.Equal(t, `C:\Apps\foo.exe`, expandWindowsEnv(`%APPHUB_TEST_DIR%\foo.exe`))
	assert.Equal(t, `plain`, expandWindowsEnv(`plain`))
	// Unknown references stay untouched.
	assert.Equal(t, `%APPHUB_NO_SUCH_VAR%\foo`, expandWindowsEnv(`%APPHUB_NO_SUCH_VAR%\foo`))
	// Unterminated reference stays untouched.
	assert.Equal(t, `C:\100%`, expandWindowsEnv(`C:\100%`))
}
