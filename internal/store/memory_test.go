package store

import (
	"context"
	"errors"
	"testing"

	"hangman/internal/game"
)

func TestSaveAndGet(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	g, err := game.New(game.LevelBasic, []string{"apple"})
	if err != nil {
		t.Fatal(err)
	}
	g.ID = "abc"
	if err := st.Save(ctx, g); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := st.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != g {
		t.Error("Get returned a different session")
	}
}

func TestGetMissing(t *testing.T) {
	st := NewMemoryStore()
	if _, err := st.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get err = %v, want ErrNotFound", err)
	}
}

func TestSaveReplaces(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	a, _ := game.New(game.LevelBasic, []string{"apple"})
	a.ID = "same"
	b, _ := game.New(game.LevelBasic, []string{"table"})
	b.ID = "same"

	_ = st.Save(ctx, a)
	_ = st.Save(ctx, b)

	got, err := st.Get(ctx, "same")
	if err != nil {
		t.Fatal(err)
	}
	if got != b {
		t.Error("Save did not replace the stored session")
	}
}
