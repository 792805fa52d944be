package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDriveImageURL(t *testing.T) {
	direct := "https://drive.google.com/uc?export=view&id=abc123"

	t.Run("file share link", func(t *testing.T) {
		assert.Equal(t, direct,
			DriveImageURL("https://drive.google.com/file/d/abc123/view?usp=sharing"))
	})

	t.Run("open link", func(t *testing.T) {
		assert.Equal(t, direct,
			DriveImageURL("https://drive.google.com/open?id=abc123&usp=drive"))
	})

	t.Run("uc link", func(t *testing.T) {
		assert.Equal(t, direct,
			DriveImageURL("https://drive.google.com/uc?id=abc123#frag"))
	})

	t.Run("already direct", func(t *testing.T) {
		assert.Equal(t, direct, DriveImageURL(direct))
	})

	t.Run("non-drive URL untouched", func(t *testing.T) {
		url := "https://cdn.example.com/toy.jpg"
		assert.Equal(t, url, DriveImageURL(url))
	})

	t.Run("unparseable drive URL untouched", func(t *testing.T) {
		url := "https://drive.google.com/drive/folders/xyz"
		assert.Equal(t, url, DriveImageURL(url))
	})

	t.Run("blank stays blank", func(t *testing.T) {
		assert.Equal(t, "", DriveImageURL("  "))
	})
}
