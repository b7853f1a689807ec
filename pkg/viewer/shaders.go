package viewer

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed shaders/*.vert shaders/*.frag
var embeddedShaders embed.FS

// Program names; each has a .vert and .frag source.
const (
	depthShader = "depth"
	sceneShader = "basic"
	skyShader   = "skybox"
	petalShader = "sakura"
)

// shaderFS returns dir when set, otherwise the built-in sources.
func shaderFS(dir string) (fs.FS, error) {
	if dir != "" {
		return os.DirFS(dir), nil
	}
	return fs.Sub(embeddedShaders, "shaders")
}
