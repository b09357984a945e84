package pix

import "testing"

func TestColormapBasics(t *testing.T) {
	if _, err := NewColormap(D1); err != ErrBadDepth {
		t.Errorf("NewColormap(D1) error = %v, want ErrBadDepth", err)
	}
	if _, err := NewColormap(D16); err != ErrBadDepth {
		t.Errorf("NewColormap(D16) error = %v, want ErrBadDepth", err)
	}

	cm, err := NewColormap(D2)
	if err != nil {
		t.Fatal(err)
	}
	if cm.Cap() != 4 {
		t.Fatalf("cap = %d, want 4", cm.Cap())
	}
	for i := 0; i < 4; i++ {
		idx, err := cm.AddColor(uint8(i), 0, 0)
		if err != nil {
			t.Fatal(err)
		}
		if idx != i {
			t.Errorf("index = %d, want %d", idx, i)
		}
	}
	if _, err := cm.AddColor(9, 9, 9); err != ErrColormapFull {
		t.Errorf("overfull error = %v, want ErrColormapFull", err)
	}
	if cm.Len() != 4 {
		t.Errorf("len = %d, want 4", cm.Len())
	}

	e, err := cm.Color(2)
	if err != nil {
		t.Fatal(err)
	}
	if e != (RGB{2, 0, 0}) {
		t.Errorf("entry 2 = %+v", e)
	}
	if _, err := cm.Color(4); err == nil {
		t.Error("out-of-range entry returned no error")
	}
}

func TestColormapGrayValue(t *testing.T) {
	cm, err := NewColormap(D8)
	if err != nil {
		t.Fatal(err)
	}
	cm.AddColor(100, 100, 100)
	cm.AddColor(200, 100, 50)

	g, err := cm.GrayValue(0)
	if err != nil {
		t.Fatal(err)
	}
	if g != 100 {
		t.Errorf("uniform gray = %d, want 100", g)
	}
	g, err = cm.GrayValue(1)
	if err != nil {
		t.Fatal(err)
	}
	if g != 120 { // 0.3*200 + 0.5*100 + 0.2*50, rounded
		t.Errorf("weighted gray = %d, want 120", g)
	}
}

func TestColormapFindOrAdd(t *testing.T) {
	cm, err := NewColormap(D4)
	if err != nil {
		t.Fatal(err)
	}
	i, err := cm.FindOrAdd(10, 20, 30)
	if err != nil || i != 0 {
		t.Fatalf("first add = (%d, %v), want (0, nil)", i, err)
	}
	i, err = cm.FindOrAdd(10, 20, 30)
	if err != nil || i != 0 {
		t.Fatalf("repeat = (%d, %v), want (0, nil)", i, err)
	}
	i, err = cm.FindOrAdd(1, 2, 3)
	if err != nil || i != 1 {
		t.Fatalf("second color = (%d, %v), want (1, nil)", i, err)
	}
	if cm.Len() != 2 {
		t.Errorf("len = %d, want 2", cm.Len())
	}
}

func TestColormapAddBlackOrWhite(t *testing.T) {
	cm, err := NewColormap(D2)
	if err != nil {
		t.Fatal(err)
	}
	cm.AddColor(17, 17, 17)

	black, err := cm.AddBlackOrWhite(false)
	if err != nil {
		t.Fatal(err)
	}
	if black != 1 {
		t.Errorf("black index = %d, want 1", black)
	}
	white, err := cm.AddBlackOrWhite(true)
	if err != nil {
		t.Fatal(err)
	}
	if white != 2 {
		t.Errorf("white index = %d, want 2", white)
	}

	// Repeated requests find the existing entries.
	if i, _ := cm.AddBlackOrWhite(false); i != black {
		t.Errorf("repeat black index = %d, want %d", i, black)
	}

	// With a full map the nearest entry is returned.
	cm.AddColor(200, 200, 200)
	full, err := NewColormap(D2)
	if err != nil {
		t.Fatal(err)
	}
	full.AddColor(10, 10, 10)
	full.AddColor(60, 60, 60)
	full.AddColor(120, 120, 120)
	full.AddColor(180, 180, 180)
	if i, _ := full.AddBlackOrWhite(true); i != 3 {
		t.Errorf("nearest white = %d, want 3", i)
	}
	if i, _ := full.AddBlackOrWhite(false); i != 0 {
		t.Errorf("nearest black = %d, want 0", i)
	}
}

func TestColormapClone(t *testing.T) {
	var nilMap *Colormap
	if nilMap.Clone() != nil {
		t.Error("nil clone is not nil")
	}

	cm, err := NewColormap(D4)
	if err != nil {
		t.Fatal(err)
	}
	cm.AddColor(1, 2, 3)
	cp := cm.Clone()
	cp.AddColor(4, 5, 6)
	if cm.Len() != 1 || cp.Len() != 2 {
		t.Errorf("lens = %d and %d, want 1 and 2", cm.Len(), cp.Len())
	}
	if cp.Depth() != D4 {
		t.Errorf("clone depth = %s, want 4 bpp", cp.Depth())
	}
}
