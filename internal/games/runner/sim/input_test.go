package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	calls []string
}

func (r *recorder) StartJump()     { r.calls = append(r.calls, "start_jump") }
func (r *recorder) ReleaseJump()   { r.calls = append(r.calls, "release_jump") }
func (r *recorder) StartCrouch()   { r.calls = append(r.calls, "start_crouch") }
func (r *recorder) ReleaseCrouch() { r.calls = append(r.calls, "release_crouch") }

func TestBindingDeduplicatesPresses(t *testing.T) {
	rec := &recorder{}
	b := NewBinding(rec)

	b.Press(ButtonJump)
	b.Press(ButtonJump)
	b.Release(ButtonJump)
	b.Release(ButtonJump)
	b.Press(ButtonCrouch)

	require.Equal(t, []string{"start_jump", "release_jump", "start_crouch"}, rec.calls)
	require.True(t, b.Down(ButtonCrouch))
	require.False(t, b.Down(ButtonJump))
}

func TestBindingApplyLevels(t *testing.T) {
	tests := []struct {
		name   string
		frames [][2]bool
		want   []string
	}{
		{
			name:   "hold jump",
			frames: [][2]bool{{true, false}, {true, false}, {true, false}, {false, false}},
			want:   []string{"start_jump", "release_jump"},
		},
		{
			name:   "crouch then jump",
			frames: [][2]bool{{false, true}, {true, true}, {true, false}},
			want:   []string{"start_crouch", "start_jump", "release_crouch"},
		},
		{
			name:   "idle",
			frames: [][2]bool{{false, false}, {false, false}},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			b := NewBinding(rec)
			for _, f := range tt.frames {
				b.Apply(f[0], f[1])
			}
			require.Equal(t, tt.want, rec.calls)
		})
	}
}

func TestBindingResetIsSilent(t *testing.T) {
	rec := &recorder{}
	b := NewBinding(rec)
	b.Press(ButtonJump)
	b.Reset()
	require.Equal(t, []string{"start_jump"}, rec.calls)

	b.Press(ButtonJump)
	require.Equal(t, []string{"start_jump", "start_jump"}, rec.calls)
}

func TestBindingIgnoresUnknownButton(t *testing.T) {
	rec := &recorder{}
	b := NewBinding(rec)
	b.Press(Button(42))
	b.Release(Button(-1))
	require.Empty(t, rec.calls)
}
