package enclose

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestImage_CellColors(t *testing.T) {
	r := mustBuild(t, square)
	img := r.Image(3, nil)

	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 12 {
		t.Fatalf("Bounds() = %v, want 12x12", b)
	}
	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, WallColor},
		{4, 4, FilledColor},
		{5, 3, FilledColor},
		{11, 11, ExteriorColor},
		{7, 1, WallColor},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestImage_Highlight(t *testing.T) {
	r := mustBuild(t, lShape)
	best := r.MaxEnclosedArea()
	img := r.Image(2, &best)

	if img.Bounds().Dy() <= r.Rows()*2 {
		t.Fatalf("Bounds() = %v, want room for a caption", img.Bounds())
	}
	if got, want := img.RGBAAt(3, 3), mix(FilledColor, HighlightColor); got != want {
		t.Errorf("highlighted interior = %v, want %v", got, want)
	}
	// Cell (4, 0) is a wall outside the (0,0)-(4,10) arm.
	if got := img.RGBAAt(1, 9); got != WallColor {
		t.Errorf("unhighlighted wall = %v, want %v", got, WallColor)
	}

	caption := 0
	for y := r.Rows() * 2; y < img.Bounds().Max.Y; y++ {
		for x := range img.Bounds().Max.X {
			if img.RGBAAt(x, y) == CaptionColor {
				caption++
			}
		}
	}
	if caption == 0 {
		t.Error("no caption pixels drawn")
	}
}

func TestImage_NotFoundHasNoCaption(t *testing.T) {
	r := mustBuild(t, square)
	img := r.Image(0, &Result{})
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Errorf("Bounds() = %v, want 4x4", b)
	}
}

func TestSavePNG(t *testing.T) {
	r := mustBuild(t, step)
	best := r.MaxEnclosedArea()
	path := filepath.Join(t.TempDir(), "step.png")

	if err := r.SavePNG(path, 4, &best); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = f.Close()
	}()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if got, want := img.Bounds().Dx(), r.Cols()*4; got != want {
		t.Errorf("decoded width = %d, want %d", got, want)
	}
}

func TestSavePNG_BadPath(t *testing.T) {
	r := mustBuild(t, square)
	if err := r.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png"), 1, nil); err == nil {
		t.Error("SavePNG() to a missing directory succeeded")
	}
}
