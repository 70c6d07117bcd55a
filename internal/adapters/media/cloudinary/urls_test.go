package cloudinary

import "testing"

func TestBuildPhotoUrls(t *testing.T) {
	original := "https://res.cloudinary.com/demo/image/upload/v1700000000/gallos/rojo.jpg"

	urls := BuildPhotoUrls(original)

	if urls.Original != original {
		t.Fatalf("original got %q", urls.Original)
	}
	want := "https://res.cloudinary.com/demo/image/upload/c_fill,w_150,h_150,q_auto/v1700000000/gallos/rojo.jpg"
	if urls.Thumbnail != want {
		t.Fatalf("thumbnail got %q want %q", urls.Thumbnail, want)
	}
	if urls.Medium == "" || urls.Large == "" || urls.Optimized == "" {
		t.Fatalf("variantes incompletas: %+v", urls)
	}
}

func TestBuildPhotoUrls_SinSegmentoUpload(t *testing.T) {
	original := "https://example.com/fotos/rojo.jpg"

	urls := BuildPhotoUrls(original)

	if urls.Original != original {
		t.Fatalf("original got %q", urls.Original)
	}
	if urls.Thumbnail != "" || urls.Medium != "" {
		t.Fatalf("no debía derivar variantes: %+v", urls)
	}
}

func TestBuildPhotoUrls_Trim(t *testing.T) {
	urls := BuildPhotoUrls("  https://res.cloudinary.com/demo/image/upload/x.jpg  ")
	if urls.Original != "https://res.cloudinary.com/demo/image/upload/x.jpg" {
		t.Fatalf("got %q", urls.Original)
	}
}
