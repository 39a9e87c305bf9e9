package maze

import (
	"strings"
	"testing"
)

func TestRenderASCII_Plain(t *testing.T) {
	m := newTestMap(4, 2,
		withTile(0, 0, testWall),
		withTile(3, 1, -1),
		withTile(1, 1, 300),
		withEntity(KindPlayer, 1, 0),
		withEntity(KindGoal, 2, 1))
	out := RenderASCII(m, PreviewOptions{Plain: true})
	want := "#@..\n.,$ "
	if out != want {
		t.Fatalf("preview:\n%q\nwant:\n%q", out, want)
	}
}

func TestRenderASCII_FOVOnlyHidesFarCells(t *testing.T) {
	m := newTestMap(10, 1, withEntity(KindPlayer, 0, 0))
	out := RenderASCII(m, PreviewOptions{Plain: true, FOVOnly: true, FOVRadius: 2})
	if out != "@.."+strings.Repeat("~", 7) {
		t.Fatalf("unexpected FOV preview %q", out)
	}
}

func TestRenderASCII_CropsAroundPlayer(t *testing.T) {
	m := newTestMap(10, 5, withEntity(KindPlayer, 8, 4))
	out := RenderASCII(m, PreviewOptions{Plain: true, FOVRadius: 20, MaxWidth: 4, MaxHeight: 2})
	want := "....\n..@."
	if out != want {
		t.Fatalf("cropped preview:\n%q\nwant:\n%q", out, want)
	}
}

func TestCropSpan(t *testing.T) {
	cases := []struct {
		c, n, limit int
		lo, hi      int
	}{
		{5, 10, 0, 0, 10},
		{5, 10, 20, 0, 10},
		{5, 10, 4, 3, 7},
		{0, 10, 4, 0, 4},
		{9, 10, 4, 6, 10},
	}
	for _, c := range cases {
		lo, hi := cropSpan(c.c, c.n, c.limit)
		if lo != c.lo || hi != c.hi {
			t.Errorf("cropSpan(%d,%d,%d) = %d,%d want %d,%d", c.c, c.n, c.limit, lo, hi, c.lo, c.hi)
		}
	}
}
