package shader

import "testing"

func TestCompileErrorMessage(t *testing.T) {
	tests := []struct {
		err  *CompileError
		want string
	}{
		{&CompileError{Stage: StageVertex, Log: "0:12: syntax error"}, "vertex shader: 0:12: syntax error"},
		{&CompileError{Stage: StageFragment, Log: "bad"}, "fragment shader: bad"},
		{&CompileError{Log: "unresolved vElevation"}, "link: unresolved vElevation"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestInfoLogTrimsTerminator(t *testing.T) {
	got := infoLog(6, func(buf []byte) {
		copy(buf, "oops\n\x00")
	})
	if got != "oops" {
		t.Errorf("infoLog = %q, want %q", got, "oops")
	}
	if got := infoLog(0, nil); got != "(no info log)" {
		t.Errorf("infoLog(0) = %q", got)
	}
}
