package systems

import "testing"

func TestGlowPixels(t *testing.T) {
	const size = 16
	pix := GlowPixels(size)

	if len(pix) != size*size*4 {
		t.Fatalf("len = %d, want %d", len(pix), size*size*4)
	}

	alphaAt := func(x, y int) byte {
		return pix[(y*size+x)*4+3]
	}

	// 角落完全透明
	for _, c := range [][2]int{{0, 0}, {size - 1, 0}, {0, size - 1}, {size - 1, size - 1}} {
		if a := alphaAt(c[0], c[1]); a != 0 {
			t.Errorf("corner (%d, %d) alpha = %d, want 0", c[0], c[1], a)
		}
	}

	// 中心最亮且向外单调衰减
	center := alphaAt(size/2, size/2)
	if center < 200 {
		t.Errorf("center alpha = %d, want >= 200", center)
	}
	prev := center
	for x := size / 2; x < size; x++ {
		a := alphaAt(x, size/2)
		if a > prev {
			t.Errorf("alpha increased from %d to %d at x=%d", prev, a, x)
		}
		prev = a
	}

	// 预乘：颜色分量不超过透明度
	for i := 0; i < len(pix); i += 4 {
		if pix[i] > pix[i+3] {
			t.Fatalf("pixel %d not premultiplied: r=%d a=%d", i/4, pix[i], pix[i+3])
		}
	}
}
