package utils

import "testing"

func TestParseStorageURLValid(t *testing.T) {
	_, path, err := ParseStorageURL("https://storage.googleapis.com/my-bucket/cars/m5.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if path != "cars/m5.jpg" {
		t.Errorf("expected 'cars/m5.jpg', got '%s'", path)
	}
}

func TestParseStorageURLReturnsBucket(t *testing.T) {
	bucket, path, err := ParseStorageURL("https://storage.googleapis.com/prestige-media/cars/ghost/1.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if bucket != "prestige-media" {
		t.Errorf("expected bucket 'prestige-media', got '%s'", bucket)
	}
	if path != "cars/ghost/1.jpg" {
		t.Errorf("expected path 'cars/ghost/1.jpg', got '%s'", path)
	}
}

func TestParseStorageURLInvalidPrefix(t *testing.T) {
	_, _, err := ParseStorageURL("https://images.unsplash.com/photo-1555215695-3004980ad54e")
	if err == nil {
		t.Fatal("expected error for invalid prefix")
	}
}

func TestParseStorageURLNoBucketSeparator(t *testing.T) {
	_, _, err := ParseStorageURL("https://storage.googleapis.com/nobucket")
	if err == nil {
		t.Fatal("expected error for no bucket separator")
	}
}

func TestParseStorageURLEmptyObject(t *testing.T) {
	_, _, err := ParseStorageURL("https://storage.googleapis.com/bucket/")
	if err == nil {
		t.Fatal("expected error for empty object path")
	}
}
