// Package iconpath resolves the filesystem path of the application
// icon.
//
// Resolution order:
//
//  1. The CASTVIEW_ICON_PATH environment variable. Presence wins: the
//     value is used verbatim, so an empty value resolves to the empty
//     path and fails when the file is opened. A misconfigured
//     override stays visible instead of silently falling through.
//  2. The installed default under InstallPrefix (non-portable builds).
//  3. icon.png next to the running executable (portable builds).
//
// InstallPrefix and PortableBuild are meant to be set at build time:
//
//	go build -ldflags "-X .../internal/iconpath.InstallPrefix=/usr" ./...
//	go build -ldflags "-X .../internal/iconpath.PortableBuild=1" ./...
package iconpath

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// EnvVar overrides icon path resolution when present in the
// environment.
const EnvVar = "CASTVIEW_ICON_PATH"

// themePath is the icon location relative to the install prefix.
const themePath = "share/icons/hicolor/256x256/apps/castview.png"

// portableName is the filename looked up next to the executable in
// portable builds.
const portableName = "icon.png"

// Build-time identity, overridable with -ldflags -X.
var (
	// InstallPrefix is the installation prefix of non-portable builds.
	InstallPrefix = "/usr/local"
	// PortableBuild marks portable builds when non-empty.
	PortableBuild = ""
)

// executable is stubbed in tests.
var executable = os.Executable

// Source identifies where a resolved path came from.
type Source int

const (
	// SourceEnv means the environment override supplied the path.
	SourceEnv Source = iota
	// SourceDefault means the compiled-in installed path was used.
	SourceDefault
	// SourcePortable means the path was resolved next to the
	// executable.
	SourcePortable
)

// String returns a human-readable name for the source.
func (s Source) String() string {
	switch s {
	case SourceEnv:
		return "env"
	case SourceDefault:
		return "default"
	case SourcePortable:
		return "portable"
	default:
		return "unknown"
	}
}

// Resolve determines the icon path and reports which source supplied
// it. The environment override wins in every build mode. Only the
// portable branch can fail, when the executable path cannot be
// determined.
func Resolve() (string, Source, error) {
	if v, ok := os.LookupEnv(EnvVar); ok {
		slog.Debug("iconpath: using icon path from environment",
			"var", EnvVar,
			"path", v,
		)
		return v, SourceEnv, nil
	}

	if PortableBuild == "" {
		p := filepath.Join(InstallPrefix, themePath)
		slog.Debug("iconpath: using installed icon path",
			"prefix", InstallPrefix,
			"path", p,
		)
		return p, SourceDefault, nil
	}

	exe, err := executable()
	if err != nil {
		return "", SourcePortable, fmt.Errorf("locate executable: %w", err)
	}
	p := filepath.Join(filepath.Dir(exe), portableName)
	slog.Debug("iconpath: using portable icon path", "path", p)
	return p, SourcePortable, nil
}
