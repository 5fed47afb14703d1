// Package shader provides OpenGL shader compilation utilities.
package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Stage names a shader stage for error reporting.
type Stage string

const (
	StageVertex   Stage = "vertex"
	StageFragment Stage = "fragment"
)

// CompileError reports a failed compile or link with the driver's info log.
type CompileError struct {
	Stage Stage // empty for link errors
	Log   string
}

func (e *CompileError) Error() string {
	if e.Stage == "" {
		return "link: " + e.Log
	}
	return fmt.Sprintf("%s shader: %s", e.Stage, e.Log)
}

// CompileProgram compiles a vertex and fragment shader pair and links them.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vert, err := compileStage(vertexSrc, gl.VERTEX_SHADER, StageVertex)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vert)

	frag, err := compileStage(fragmentSrc, gl.FRAGMENT_SHADER, StageFragment)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(frag)

	program := gl.CreateProgram()
	gl.AttachShader(program, vert)
	gl.AttachShader(program, frag)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		info := infoLog(logLen, func(buf []byte) { gl.GetProgramInfoLog(program, logLen, nil, &buf[0]) })
		gl.DeleteProgram(program)
		return 0, &CompileError{Log: info}
	}

	return program, nil
}

func compileStage(source string, kind uint32, stage Stage) (uint32, error) {
	sh := gl.CreateShader(kind)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csource, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		info := infoLog(logLen, func(buf []byte) { gl.GetShaderInfoLog(sh, logLen, nil, &buf[0]) })
		gl.DeleteShader(sh)
		return 0, &CompileError{Stage: stage, Log: info}
	}

	return sh, nil
}

func infoLog(n int32, read func([]byte)) string {
	if n <= 0 {
		return "(no info log)"
	}
	buf := make([]byte, n)
	read(buf)
	return strings.TrimRight(string(buf), "\x00\n")
}

// GetUniform returns the uniform location for name, or -1 if the uniform
// is missing or was optimized away.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// Uniforms looks up several uniform locations at once. Missing names are
// returned in the second value so callers can log them.
func Uniforms(program uint32, names ...string) (map[string]int32, []string) {
	locs := make(map[string]int32, len(names))
	var missing []string
	for _, name := range names {
		loc := GetUniform(program, name)
		if loc < 0 {
			missing = append(missing, name)
		}
		locs[name] = loc
	}
	return locs, missing
}
