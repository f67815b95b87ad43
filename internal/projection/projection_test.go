package projection

import (
	"testing"

	"github.com/Harshitv21/Anime-Movie-API/internal/metadata/jikan"
)

const testImageBase = "https://img.test"

func TestImageURL(t *testing.T) {
	p := New(testImageBase)

	if got := p.ImageURL(nil); got != nil {
		t.Errorf("nil path should stay nil, got %v", *got)
	}

	empty := ""
	if got := p.ImageURL(&empty); got != nil {
		t.Errorf("empty path should become nil, got %v", *got)
	}

	path := "/poster.jpg"
	got := p.ImageURL(&path)
	if got == nil || *got != testImageBase+"/poster.jpg" {
		t.Errorf("expected prefixed path, got %v", got)
	}
}

func TestCapItems(t *testing.T) {
	items := make([]int, 25)
	if got := capItems(items, 20); len(got) != 20 {
		t.Errorf("expected 20 items, got %d", len(got))
	}
	if got := capItems(items[:5], 20); len(got) != 5 {
		t.Errorf("short lists pass through, got %d", len(got))
	}
}

func TestPrefixImageFields(t *testing.T) {
	p := New(testImageBase)
	item := map[string]any{
		"backdrop_path": "/b.jpg",
		"poster_path":   nil,
		"title":         "untouched",
	}

	p.PrefixImageFields(item)
	if item["backdrop_path"] != testImageBase+"/b.jpg" {
		t.Errorf("unexpected backdrop: %v", item["backdrop_path"])
	}
	if item["poster_path"] != nil {
		t.Errorf("null poster must stay null, got %v", item["poster_path"])
	}
	if item["title"] != "untouched" {
		t.Errorf("non-image fields must pass through, got %v", item["title"])
	}
}

func TestPicturesParallelArrays(t *testing.T) {
	pictures := []jikan.Picture{
		{
			JPG:  jikan.ImageSet{ImageURL: "j1", SmallImageURL: "js1", LargeImageURL: "jl1"},
			WebP: jikan.ImageSet{ImageURL: "w1", SmallImageURL: "ws1", LargeImageURL: "wl1"},
		},
	}

	data := Pictures(pictures)
	if len(data.JPGs) != len(pictures) || len(data.WebP) != len(pictures) {
		t.Fatalf("arrays must parallel the source list: %d/%d", len(data.JPGs), len(data.WebP))
	}
	if data.JPGs[0].ImageURL != "j1" || data.WebP[0].LargeImageURL != "wl1" {
		t.Errorf("unexpected reshaped entries: %+v", data)
	}
}

func TestPicturesEmpty(t *testing.T) {
	data := Pictures(nil)
	if data.JPGs == nil || data.WebP == nil {
		t.Error("empty source must produce empty lists, not null")
	}
}

func TestEntryNamesAlwaysNonNil(t *testing.T) {
	if entryNames(nil) == nil {
		t.Error("expected non-nil slice for absent entries")
	}
	names := entryNames([]jikan.NamedEntry{{MalID: 1, Name: "Action"}})
	if len(names) != 1 || names[0] != "Action" {
		t.Errorf("unexpected names: %v", names)
	}
}
