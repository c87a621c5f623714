package helper

import (
	"strings"
	"testing"
)

func TestExtractStoragePath(t *testing.T) {
	bucket, path, err := ExtractStoragePath(
		"https://abc.supabase.co/storage/v1/object/public/attendance-selfies/2024/selfie.webp")
	if err != nil {
		t.Fatal(err)
	}
	if bucket != "attendance-selfies" {
		t.Errorf("bucket = %q", bucket)
	}
	if path != "2024/selfie.webp" {
		t.Errorf("path = %q", path)
	}
}

func TestExtractStoragePathRejectsNonPublicURL(t *testing.T) {
	if _, _, err := ExtractStoragePath("https://abc.supabase.co/storage/v1/object/private/x/y"); err == nil {
		t.Fatal("expected error for non-public URL")
	}
	if _, _, err := ExtractStoragePath("https://abc.supabase.co/storage/v1/object/public/onlybucket"); err == nil {
		t.Fatal("expected error when object path is missing")
	}
}

func TestGenerateUniqueFilenameSanitizes(t *testing.T) {
	got := GenerateUniqueFilename("folder", "my report (final)!.pdf")
	if !strings.HasPrefix(got, "folder/") {
		t.Errorf("missing folder prefix: %q", got)
	}
	if strings.ContainsAny(got, " ()!") {
		t.Errorf("unsafe characters survived: %q", got)
	}
	if !strings.HasSuffix(got, ".pdf") {
		t.Errorf("extension lost: %q", got)
	}
}
